// Package widget owns the per-type knowledge of the widget variants:
// default grid dimensions and payloads, required-field validation, and
// threshold color resolution. The switch over model.WidgetType in this
// package is the single dispatch point for variant behavior.
package widget

import (
	"errors"

	"github.com/google/uuid"

	"gridboard/internal/dashboard/model"
)

var ErrUnknownWidgetType = errors.New("unknown widget type")

const (
	defaultMinW = 2
	defaultMinH = 2
)

// Definition is the per-type metadata exposed to the render layer.
type Definition struct {
	Type          model.WidgetType `json:"type"`
	Name          string           `json:"name"`
	DefaultW      int              `json:"defaultW"`
	DefaultH      int              `json:"defaultH"`
	RequiresTag   bool             `json:"requiresTag"`
	RequiresTags  bool             `json:"requiresTags"`
	HasThresholds bool             `json:"hasThresholds"`
	ConfigFields  []string         `json:"configFields"`
}

var definitions = []Definition{
	{Type: model.WidgetChart, Name: "Chart", DefaultW: 6, DefaultH: 4, RequiresTag: true, ConfigFields: []string{"chartType", "timeRange"}},
	{Type: model.WidgetGauge, Name: "Gauge", DefaultW: 3, DefaultH: 3, RequiresTag: true, HasThresholds: true, ConfigFields: []string{"minValue", "maxValue", "thresholds"}},
	{Type: model.WidgetNumeric, Name: "Numeric", DefaultW: 2, DefaultH: 2, RequiresTag: true, HasThresholds: true, ConfigFields: []string{"unit", "decimals", "thresholds"}},
	{Type: model.WidgetStatus, Name: "Status", DefaultW: 2, DefaultH: 2, RequiresTag: true, ConfigFields: []string{"statusMap"}},
	{Type: model.WidgetTable, Name: "Table", DefaultW: 6, DefaultH: 5, RequiresTags: true, ConfigFields: []string{"columns"}},
	{Type: model.WidgetAlert, Name: "Alert List", DefaultW: 6, DefaultH: 4, ConfigFields: []string{"severity", "maxItems"}},
	{Type: model.WidgetHeatmap, Name: "Heatmap", DefaultW: 6, DefaultH: 4, ConfigFields: []string{"buckets", "colorScheme", "timeRange"}},
	{Type: model.WidgetStateTimeline, Name: "State Timeline", DefaultW: 6, DefaultH: 3, ConfigFields: []string{"statusMap", "timeRange"}},
	{Type: model.WidgetMultiStat, Name: "Multi Stat", DefaultW: 4, DefaultH: 3, HasThresholds: true, ConfigFields: []string{"unit", "decimals", "sparkline", "thresholds"}},
	{Type: model.WidgetAdvancedGauge, Name: "Advanced Gauge", DefaultW: 3, DefaultH: 3, RequiresTag: true, HasThresholds: true, ConfigFields: []string{"minValue", "maxValue", "orientation", "thresholds"}},
	{Type: model.WidgetAdvancedChart, Name: "Advanced Chart", DefaultW: 8, DefaultH: 4, ConfigFields: []string{"chartType", "timeRange", "showLegend", "showPoints"}},
}

// Definitions returns the registry metadata for every widget type, so
// the render layer knows which payload fields to expect per variant.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

func definitionOf(t model.WidgetType) (Definition, bool) {
	for _, d := range definitions {
		if d.Type == t {
			return d, true
		}
	}
	return Definition{}, false
}

// NewDraft seeds a widget of the given type with a generated id, the
// variant's default grid size and payload, and the shared placement
// flags. It has no side effects beyond id generation.
func NewDraft(t model.WidgetType) (model.Widget, error) {
	def, ok := definitionOf(t)
	if !ok {
		return model.Widget{}, ErrUnknownWidgetType
	}

	w := model.Widget{
		ID:   uuid.New().String(),
		Type: t,
		GridPos: model.GridPos{
			W:           def.DefaultW,
			H:           def.DefaultH,
			MinW:        defaultMinW,
			MinH:        defaultMinH,
			IsDraggable: true,
			IsResizable: true,
		},
		Config: defaultConfig(t),
	}
	return w, nil
}

// defaultConfig returns the variant's default payload. Exhaustive over
// the registered types; callers go through NewDraft which has already
// rejected unknown discriminants.
func defaultConfig(t model.WidgetType) model.WidgetConfig {
	switch t {
	case model.WidgetChart:
		return model.WidgetConfig{ChartType: model.ChartTypeLine, TimeRange: "1h"}
	case model.WidgetGauge:
		return model.WidgetConfig{MinValue: f64(0), MaxValue: f64(100)}
	case model.WidgetNumeric:
		return model.WidgetConfig{Decimals: intp(1)}
	case model.WidgetStatus:
		return model.WidgetConfig{StatusMap: map[string]model.StatusEntry{}}
	case model.WidgetTable:
		return model.WidgetConfig{Columns: []model.TableColumn{}}
	case model.WidgetAlert:
		return model.WidgetConfig{Severity: "warning", MaxItems: 10}
	case model.WidgetHeatmap:
		return model.WidgetConfig{Buckets: 10, ColorScheme: "spectral", TimeRange: "24h"}
	case model.WidgetStateTimeline:
		return model.WidgetConfig{StatusMap: map[string]model.StatusEntry{}, TimeRange: "24h"}
	case model.WidgetMultiStat:
		return model.WidgetConfig{Decimals: intp(1), Sparkline: boolp(true)}
	case model.WidgetAdvancedGauge:
		return model.WidgetConfig{MinValue: f64(0), MaxValue: f64(100), Orientation: "horizontal"}
	case model.WidgetAdvancedChart:
		return model.WidgetConfig{ChartType: model.ChartTypeLine, TimeRange: "6h", ShowLegend: boolp(true)}
	default:
		return model.WidgetConfig{}
	}
}

// EffectiveRefresh returns the widget's refresh interval in seconds,
// falling back to the referenced tag's interval when the widget carries
// no override.
func EffectiveRefresh(w model.Widget, tag *model.Tag) int {
	if w.RefreshRate > 0 {
		return w.RefreshRate
	}
	if tag != nil {
		return tag.RefreshInterval
	}
	return 0
}

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }
func boolp(v bool) *bool     { return &v }
