package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gridboard/internal/dashboard/model"
)

// PostDashboard handles POST /dashboards
func (h *DashboardHandler) PostDashboard(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateDashboardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	d, err := h.Service.CreateDashboard(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, d)
}

// GetDashboards handles GET /dashboards
func (h *DashboardHandler) GetDashboards(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ListDashboardsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	summaries, err := h.Service.ListDashboards(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	if summaries == nil {
		summaries = []*model.DashboardSummary{}
	}
	return c.JSON(http.StatusOK, summaries)
}

// GetDashboard handles GET /dashboards/:id
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	d, err := h.Service.GetDashboard(c.Request().Context(), callerID, c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, d)
}

// PutDashboard handles PUT /dashboards/:id
func (h *DashboardHandler) PutDashboard(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UpdateDashboardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	d, err := h.Service.UpdateDashboard(c.Request().Context(), callerID, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, d)
}

// DeleteDashboard handles DELETE /dashboards/:id
func (h *DashboardHandler) DeleteDashboard(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	if err := h.Service.DeleteDashboard(c.Request().Context(), callerID, c.Param("id")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetDashboardRevisions handles GET /dashboards/:id/revisions
func (h *DashboardHandler) GetDashboardRevisions(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)

	revisions, err := h.Service.ListRevisions(c.Request().Context(), callerID, c.Param("id"), limit)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	if revisions == nil {
		revisions = []*model.DashboardRevision{}
	}
	return c.JSON(http.StatusOK, revisions)
}
