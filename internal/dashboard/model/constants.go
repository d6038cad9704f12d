package model

// WidgetType discriminates the widget variants. It is fixed at creation
// and never changes for the lifetime of a widget.
type WidgetType string

const (
	WidgetChart         WidgetType = "chart"
	WidgetGauge         WidgetType = "gauge"
	WidgetNumeric       WidgetType = "numeric"
	WidgetStatus        WidgetType = "status"
	WidgetTable         WidgetType = "table"
	WidgetAlert         WidgetType = "alert"
	WidgetHeatmap       WidgetType = "heatmap"
	WidgetStateTimeline WidgetType = "state_timeline"
	WidgetMultiStat     WidgetType = "multi_stat"
	WidgetAdvancedGauge WidgetType = "advanced_gauge"
	WidgetAdvancedChart WidgetType = "advanced_chart"
)

// AllWidgetTypes is the closed set of valid discriminants.
var AllWidgetTypes = map[WidgetType]bool{
	WidgetChart:         true,
	WidgetGauge:         true,
	WidgetNumeric:       true,
	WidgetStatus:        true,
	WidgetTable:         true,
	WidgetAlert:         true,
	WidgetHeatmap:       true,
	WidgetStateTimeline: true,
	WidgetMultiStat:     true,
	WidgetAdvancedGauge: true,
	WidgetAdvancedChart: true,
}

// Tag value kinds
const (
	ValueKindNumeric = "numeric"
	ValueKindBoolean = "boolean"
	ValueKindString  = "string"
)

// Tag health statuses
const (
	TagStatusActive   = "active"
	TagStatusInactive = "inactive"
	TagStatusError    = "error"
)

// Chart render styles
const (
	ChartTypeLine = "line"
	ChartTypeBar  = "bar"
	ChartTypeArea = "area"
)

// DefaultColor is used when no threshold matches a value.
const DefaultColor = "#3b82f6"

// DefaultGridColumns is the column count of the placement grid.
const DefaultGridColumns = 12
