package widget

import (
	"sort"

	"gridboard/internal/dashboard/model"
)

// ResolveColor returns the color of the first threshold whose value is
// less than or equal to the current value, scanning from the highest
// threshold down. Ties keep insertion order (stable sort), and an empty
// list or a value below every threshold yields the fallback color.
//
// Used uniformly by the gauge, numeric, multi_stat and advanced_gauge
// variants.
func ResolveColor(thresholds []model.Threshold, value float64, fallback string) string {
	if len(thresholds) == 0 {
		return fallback
	}

	sorted := make([]model.Threshold, len(thresholds))
	copy(sorted, thresholds)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	for _, t := range sorted {
		if t.Value <= value {
			return t.Color
		}
	}
	return fallback
}
