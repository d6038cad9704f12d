package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gridboard/internal/dashboard/model"
)

// GetTags handles GET /tags
func (h *DashboardHandler) GetTags(c echo.Context) error {
	tags, err := h.Service.ListTags(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	if tags == nil {
		tags = []*model.Tag{}
	}
	return c.JSON(http.StatusOK, tags)
}

// GetTag handles GET /tags/:id
func (h *DashboardHandler) GetTag(c echo.Context) error {
	tag, err := h.Service.GetTag(c.Request().Context(), c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, tag)
}

// GetTagHistory handles GET /tags/:id/history
func (h *DashboardHandler) GetTagHistory(c echo.Context) error {
	var req model.TagHistoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	history, err := h.Service.GetTagHistory(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, history)
}
