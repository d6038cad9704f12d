package model

import "strings"

// AddWidgetReq is phase two of the widget creation flow: the type seeds
// the draft defaults, the remaining fields populate the draft before the
// per-type validation runs in the service.
type AddWidgetReq struct {
	Type        string       `json:"type" validate:"required,min=1,max=30"`
	Title       string       `json:"title" validate:"max=100"`
	TagID       string       `json:"tag_id" validate:"max=100"`
	TagIDs      []string     `json:"tag_ids" validate:"omitempty,dive,min=1,max=100"`
	RefreshRate int          `json:"refresh_rate" validate:"gte=0"`
	Config      WidgetConfig `json:"config"`
}

func (r *AddWidgetReq) Validate() error {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Title = strings.TrimSpace(r.Title)
	r.TagID = strings.TrimSpace(r.TagID)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
