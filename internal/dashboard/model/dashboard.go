package model

import "errors"

var (
	ErrDuplicateWidgetID = errors.New("duplicate widget id")
	ErrWidgetNotFound    = errors.New("widget not found")
)

// WidgetPatch carries a partial widget update. Nil fields are left
// untouched; the type discriminant is immutable and has no field here.
type WidgetPatch struct {
	Title       *string       `json:"title,omitempty"`
	TagID       *string       `json:"tagId,omitempty"`
	TagIDs      []string      `json:"tagIds,omitempty"`
	RefreshRate *int          `json:"refreshRate,omitempty"`
	Config      *WidgetConfig `json:"config,omitempty"`
}

// AddWidget appends a widget to the dashboard. The no-duplicate-id
// invariant is enforced here rather than at the store.
func (d *Dashboard) AddWidget(w Widget) error {
	for i := range d.Widgets {
		if d.Widgets[i].ID == w.ID {
			return ErrDuplicateWidgetID
		}
	}
	d.Widgets = append(d.Widgets, w)
	return nil
}

// UpdateWidget merges a partial update into the widget with the given
// id. Returns ErrWidgetNotFound if no widget matches.
func (d *Dashboard) UpdateWidget(id string, patch WidgetPatch) error {
	w := d.widgetByID(id)
	if w == nil {
		return ErrWidgetNotFound
	}
	if patch.Title != nil {
		w.Title = *patch.Title
	}
	if patch.TagID != nil {
		w.TagID = *patch.TagID
	}
	if patch.TagIDs != nil {
		w.TagIDs = patch.TagIDs
	}
	if patch.RefreshRate != nil {
		w.RefreshRate = *patch.RefreshRate
	}
	if patch.Config != nil {
		w.Config = *patch.Config
	}
	return nil
}

// RemoveWidget removes the widget with the given id. Placement lives on
// the widget itself, so removal also clears its layout entry. Returns
// false if no widget matched.
func (d *Dashboard) RemoveWidget(id string) bool {
	for i := range d.Widgets {
		if d.Widgets[i].ID == id {
			d.Widgets = append(d.Widgets[:i], d.Widgets[i+1:]...)
			return true
		}
	}
	return false
}

// Widget returns the widget with the given id, or nil.
func (d *Dashboard) Widget(id string) *Widget {
	return d.widgetByID(id)
}

func (d *Dashboard) widgetByID(id string) *Widget {
	for i := range d.Widgets {
		if d.Widgets[i].ID == id {
			return &d.Widgets[i]
		}
	}
	return nil
}
