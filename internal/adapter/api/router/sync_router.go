package router

import (
	"etsysync/internal/adapter/api/handler"
	"etsysync/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupSyncRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, cronMiddleware *middleware.CronMiddleware) {
	syncHandler := handler.GetSyncHandler()

	stores := e.Group("/v1/stores")
	stores.Use(authMiddleware.Authenticate)
	stores.POST("/:id/sync", syncHandler.TriggerSync)
	stores.GET("/:id/sync", syncHandler.GetSyncStatus)
	stores.POST("/:id/mirror/rebuild", syncHandler.RebuildMirror)

	// External cron trigger; authenticates with a shared key.
	e.POST("/v1/sync/run", syncHandler.RunSweep, cronMiddleware.Authenticate)
}
