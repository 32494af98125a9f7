package router

import (
	"etsysync/internal/adapter/api/handler"
	"etsysync/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAnalyticsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	analyticsHandler := handler.GetAnalyticsHandler()

	analytics := e.Group("/v1/stores/:id/analytics")
	analytics.Use(authMiddleware.Authenticate)
	analytics.GET("", analyticsHandler.GetStoreAnalytics)
}
