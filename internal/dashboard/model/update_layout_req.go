package model

type UpdateLayoutReq struct {
	Layout []LayoutItem `json:"layout" validate:"required,min=1,dive"`
}

func (r *UpdateLayoutReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	for _, item := range r.Layout {
		if item.I == "" {
			return &ErrorDetail{Code: "bad_request", Message: "layout entry missing widget id"}
		}
		if item.X < 0 || item.Y < 0 {
			return &ErrorDetail{Code: "bad_request", Message: "layout position must be non-negative"}
		}
		if item.W < 1 || item.H < 1 {
			return &ErrorDetail{Code: "bad_request", Message: "layout size must be at least 1x1"}
		}
	}
	return nil
}
