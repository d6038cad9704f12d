package model

import "strings"

type ListDashboardsReq struct {
	Owner      string `query:"owner" validate:"max=100"`
	IsPublic   *bool  `query:"is_public"`
	SearchText string `query:"q" validate:"max=100"`
}

func (r *ListDashboardsReq) Validate() error {
	r.Owner = strings.TrimSpace(r.Owner)
	r.SearchText = strings.TrimSpace(r.SearchText)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

func (r *ListDashboardsReq) Filter() DashboardFilter {
	return DashboardFilter{
		Owner:      r.Owner,
		IsPublic:   r.IsPublic,
		SearchText: r.SearchText,
	}
}
