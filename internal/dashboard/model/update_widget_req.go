package model

import "strings"

type UpdateWidgetReq struct {
	Title       *string       `json:"title" validate:"omitempty,min=1,max=100"`
	TagID       *string       `json:"tag_id" validate:"omitempty,max=100"`
	TagIDs      []string      `json:"tag_ids" validate:"omitempty,dive,min=1,max=100"`
	RefreshRate *int          `json:"refresh_rate" validate:"omitempty,gte=0"`
	Config      *WidgetConfig `json:"config"`
}

func (r *UpdateWidgetReq) Validate() error {
	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		r.Title = &trimmed
	}
	if r.TagID != nil {
		trimmed := strings.TrimSpace(*r.TagID)
		r.TagID = &trimmed
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// Patch converts the request into the model-level partial update.
func (r *UpdateWidgetReq) Patch() WidgetPatch {
	return WidgetPatch{
		Title:       r.Title,
		TagID:       r.TagID,
		TagIDs:      r.TagIDs,
		RefreshRate: r.RefreshRate,
		Config:      r.Config,
	}
}
