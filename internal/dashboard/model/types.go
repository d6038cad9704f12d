package model

import "time"

// Tag is a named industrial data source (sensor/counter). Tags are
// immutable from the dashboard model's point of view; widgets reference
// them by ID through the tag directory.
type Tag struct {
	ID              string     `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name"`
	ValueKind       string     `json:"valueKind" yaml:"valueKind"`
	Unit            string     `json:"unit,omitempty" yaml:"unit,omitempty"`
	Min             *float64   `json:"min,omitempty" yaml:"min,omitempty"`
	Max             *float64   `json:"max,omitempty" yaml:"max,omitempty"`
	RefreshInterval int        `json:"refreshInterval" yaml:"refreshInterval"` // seconds
	LastValue       any        `json:"lastValue,omitempty" yaml:"lastValue,omitempty"`
	LastUpdated     *time.Time `json:"lastUpdated,omitempty" yaml:"-"`
	Status          string     `json:"status" yaml:"status"`
}

// TagSample is one historical data point for a tag.
type TagSample struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// TagHistory is the result of a history lookup. Fallback is set when the
// directory had no recorded samples and synthesized the series instead,
// so callers can tell degraded data from the real thing.
type TagHistory struct {
	TagID    string      `json:"tagId"`
	Points   []TagSample `json:"points"`
	Fallback bool        `json:"fallback"`
}

// GridPos is a widget's placement on the grid, in integer grid units.
type GridPos struct {
	X           int  `json:"x" bson:"x"`
	Y           int  `json:"y" bson:"y"`
	W           int  `json:"w" bson:"w"`
	H           int  `json:"h" bson:"h"`
	MinW        int  `json:"minW,omitempty" bson:"min_w,omitempty"`
	MinH        int  `json:"minH,omitempty" bson:"min_h,omitempty"`
	MaxW        int  `json:"maxW,omitempty" bson:"max_w,omitempty"`
	MaxH        int  `json:"maxH,omitempty" bson:"max_h,omitempty"`
	Static      bool `json:"static,omitempty" bson:"static,omitempty"`
	IsDraggable bool `json:"isDraggable" bson:"is_draggable"`
	IsResizable bool `json:"isResizable" bson:"is_resizable"`
}

// Threshold is a {value, color} rule used to color-code a displayed
// value. Thresholds are owned by their containing widget.
type Threshold struct {
	Value float64 `json:"value" bson:"value"`
	Color string  `json:"color" bson:"color"`
	Label string  `json:"label,omitempty" bson:"label,omitempty"`
}

// StatusEntry maps a raw tag value to a display label and color.
type StatusEntry struct {
	Label string `json:"label" bson:"label"`
	Color string `json:"color" bson:"color"`
}

// TableColumn describes one column of a table widget.
type TableColumn struct {
	Field string `json:"field" bson:"field"`
	Label string `json:"label" bson:"label"`
	Unit  string `json:"unit,omitempty" bson:"unit,omitempty"`
}

// WidgetConfig carries the variant-specific payload. Which fields are
// meaningful depends on Widget.Type; the widget package owns the
// per-type defaulting and validation switch.
type WidgetConfig struct {
	// chart / advanced_chart
	ChartType  string `json:"chartType,omitempty" bson:"chart_type,omitempty"`
	TimeRange  string `json:"timeRange,omitempty" bson:"time_range,omitempty"`
	ShowLegend *bool  `json:"showLegend,omitempty" bson:"show_legend,omitempty"`
	ShowPoints *bool  `json:"showPoints,omitempty" bson:"show_points,omitempty"`

	// gauge / advanced_gauge
	MinValue    *float64 `json:"minValue,omitempty" bson:"min_value,omitempty"`
	MaxValue    *float64 `json:"maxValue,omitempty" bson:"max_value,omitempty"`
	Orientation string   `json:"orientation,omitempty" bson:"orientation,omitempty"`

	// gauge / numeric / multi_stat / advanced_gauge
	Thresholds []Threshold `json:"thresholds,omitempty" bson:"thresholds,omitempty"`

	// numeric / multi_stat
	Unit      string `json:"unit,omitempty" bson:"unit,omitempty"`
	Decimals  *int   `json:"decimals,omitempty" bson:"decimals,omitempty"`
	Sparkline *bool  `json:"sparkline,omitempty" bson:"sparkline,omitempty"`

	// status / state_timeline
	StatusMap map[string]StatusEntry `json:"statusMap,omitempty" bson:"status_map,omitempty"`

	// table
	Columns []TableColumn `json:"columns,omitempty" bson:"columns,omitempty"`

	// alert
	Severity string `json:"severity,omitempty" bson:"severity,omitempty"`
	MaxItems int    `json:"maxItems,omitempty" bson:"max_items,omitempty"`

	// heatmap
	Buckets     int    `json:"buckets,omitempty" bson:"buckets,omitempty"`
	ColorScheme string `json:"colorScheme,omitempty" bson:"color_scheme,omitempty"`
}

// Widget is one configured visual element on a dashboard. The base
// fields are shared across all variants; Config holds the rest.
type Widget struct {
	ID          string       `json:"id" bson:"id"`
	Type        WidgetType   `json:"type" bson:"type"`
	Title       string       `json:"title" bson:"title"`
	TagID       string       `json:"tagId,omitempty" bson:"tag_id,omitempty"`
	TagIDs      []string     `json:"tagIds,omitempty" bson:"tag_ids,omitempty"`
	RefreshRate int          `json:"refreshRate,omitempty" bson:"refresh_rate,omitempty"` // seconds; 0 falls back to the tag's interval
	GridPos     GridPos      `json:"gridPos" bson:"grid_pos"`
	Config      WidgetConfig `json:"config" bson:"config"`
}

// LayoutItem is one entry of a layout patch as reported by the render
// layer after a user drag/resize. I references the widget ID.
type LayoutItem struct {
	I    string `json:"i"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w"`
	H    int    `json:"h"`
	MinW int    `json:"minW,omitempty"`
	MinH int    `json:"minH,omitempty"`
}

// Dashboard is a named, persisted collection of widgets plus their grid
// layout. It is owned exclusively by whichever caller has it loaded;
// mutations are pure transformations over the in-memory value.
type Dashboard struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Owner       string    `json:"owner"`
	IsPublic    bool      `json:"isPublic"`
	Widgets     []Widget  `json:"widgets"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

// DashboardSummary is the listing shape returned by the store.
type DashboardSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Owner       string    `json:"owner"`
	IsPublic    bool      `json:"isPublic"`
	WidgetCount int       `json:"widgetCount"`
	Updated     time.Time `json:"updated"`
}

// DashboardFilter narrows a dashboard listing.
type DashboardFilter struct {
	Owner      string
	IsPublic   *bool
	SearchText string
}

// DashboardRevision is one append-only save record for a dashboard.
type DashboardRevision struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	DashboardID string    `bson:"dashboard_id" json:"dashboardId"`
	Revision    int       `bson:"revision" json:"revision"`
	SavedBy     string    `bson:"saved_by" json:"savedBy"`
	WidgetCount int       `bson:"widget_count" json:"widgetCount"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}
