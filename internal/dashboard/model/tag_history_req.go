package model

import (
	"strings"
	"time"
)

type TagHistoryReq struct {
	TagID     string `param:"id" validate:"required,min=1,max=100"`
	RangeExpr string `query:"range" validate:"max=20"`
	Points    int    `query:"points" validate:"gte=0,lte=10000"`
}

func (r *TagHistoryReq) Validate() error {
	r.TagID = strings.TrimSpace(r.TagID)
	r.RangeExpr = strings.TrimSpace(r.RangeExpr)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.RangeExpr != "" {
		if _, err := time.ParseDuration(r.RangeExpr); err != nil {
			return &ErrorDetail{Code: "bad_request", Message: "invalid range, expected a duration like 1h or 30m"}
		}
	}
	return nil
}

// Range returns the requested window, defaulting to one hour.
func (r *TagHistoryReq) Range() time.Duration {
	if r.RangeExpr == "" {
		return time.Hour
	}
	d, err := time.ParseDuration(r.RangeExpr)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}
