package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gridboard/internal/dashboard/service"
	"gridboard/internal/dashboard/widget"
)

type DashboardHandler struct {
	Service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

func (h *DashboardHandler) extractCallerID(c echo.Context) (string, error) {
	callerID := c.Request().Header.Get("x-user-id")
	if callerID == "" {
		return "", service.ErrUnauthorized
	}
	return callerID, nil
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetWidgetTypes returns the registry definitions so the render layer
// knows each variant's default size and payload fields.
func (h *DashboardHandler) GetWidgetTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, widget.Definitions())
}
