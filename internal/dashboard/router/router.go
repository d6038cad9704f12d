package router

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gridboard/internal/dashboard/handler"
)

func RegisterRoutes(e *echo.Echo, h *handler.DashboardHandler) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "x-user-id"},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	// Widget type registry (render layer reads payload schemas here)
	v1.GET("/widget-types", h.GetWidgetTypes)

	// Dashboard Routes
	v1.GET("/dashboards", h.GetDashboards)
	v1.POST("/dashboards", h.PostDashboard)
	v1.GET("/dashboards/:id", h.GetDashboard)
	v1.PUT("/dashboards/:id", h.PutDashboard)
	v1.DELETE("/dashboards/:id", h.DeleteDashboard)
	v1.GET("/dashboards/:id/revisions", h.GetDashboardRevisions)

	// Widget Routes (dashboard-scoped)
	v1.POST("/dashboards/:id/widgets", h.PostWidget)
	v1.PUT("/dashboards/:id/widgets/:widgetId", h.PutWidget)
	v1.DELETE("/dashboards/:id/widgets/:widgetId", h.DeleteWidget)
	v1.PUT("/dashboards/:id/layout", h.PutLayout)

	// Tag Directory Routes
	v1.GET("/tags", h.GetTags)
	v1.GET("/tags/:id", h.GetTag)
	v1.GET("/tags/:id/history", h.GetTagHistory)
}
