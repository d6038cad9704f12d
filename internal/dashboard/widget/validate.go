package widget

import (
	"fmt"

	"gridboard/internal/dashboard/model"
)

// ValidationError reports the first rule a widget draft violates. Rules
// are checked in declared order so the caller can surface one
// actionable error at a time.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate enforces the per-type required fields over a widget draft.
// It is a pure function: no network, no persistence, no mutation.
//
// Rule order: title, tag binding, then variant-specific payload rules.
func Validate(w model.Widget) error {
	if _, ok := definitionOf(w.Type); !ok {
		return ErrUnknownWidgetType
	}

	if w.Title == "" {
		return &ValidationError{Field: "title", Reason: "title required"}
	}

	switch w.Type {
	case model.WidgetChart:
		if w.TagID == "" {
			return &ValidationError{Field: "tagId", Reason: "tagId required"}
		}

	case model.WidgetGauge, model.WidgetAdvancedGauge:
		if w.TagID == "" {
			return &ValidationError{Field: "tagId", Reason: "tagId required"}
		}
		if err := validateGaugeRange(w.Config); err != nil {
			return err
		}

	case model.WidgetNumeric, model.WidgetStatus:
		if w.TagID == "" {
			return &ValidationError{Field: "tagId", Reason: "tagId required"}
		}
		if w.Type == model.WidgetStatus && len(w.Config.StatusMap) == 0 {
			return &ValidationError{Field: "statusMap", Reason: "statusMap must have at least one entry"}
		}

	case model.WidgetTable:
		if len(w.TagIDs) == 0 {
			return &ValidationError{Field: "tagIds", Reason: "tagIds required"}
		}
		if len(w.Config.Columns) == 0 {
			return &ValidationError{Field: "columns", Reason: "columns required"}
		}

	case model.WidgetAlert, model.WidgetHeatmap, model.WidgetStateTimeline,
		model.WidgetMultiStat, model.WidgetAdvancedChart:
		// No tag binding required; thresholds still checked below.
	}

	if len(w.Config.Thresholds) > 0 {
		if err := validateThresholds(w.Config.Thresholds); err != nil {
			return err
		}
	}

	return nil
}

func validateGaugeRange(cfg model.WidgetConfig) error {
	if cfg.MinValue == nil {
		return &ValidationError{Field: "minValue", Reason: "minValue required"}
	}
	if cfg.MaxValue == nil {
		return &ValidationError{Field: "maxValue", Reason: "maxValue required"}
	}
	if *cfg.MinValue >= *cfg.MaxValue {
		return &ValidationError{Field: "minValue", Reason: "minValue must be less than maxValue"}
	}
	return nil
}

// validateThresholds rejects two thresholds sharing the same value, so
// color resolution never depends on an arbitrary ordering.
func validateThresholds(ts []model.Threshold) error {
	seen := make(map[float64]bool, len(ts))
	for _, t := range ts {
		if seen[t.Value] {
			return &ValidationError{
				Field:  "thresholds",
				Reason: fmt.Sprintf("duplicate threshold value %g", t.Value),
			}
		}
		seen[t.Value] = true
		if t.Color == "" {
			return &ValidationError{Field: "thresholds", Reason: "threshold color required"}
		}
	}
	return nil
}
