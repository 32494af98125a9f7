package router

import (
	"etsysync/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, cronMiddleware *middleware.CronMiddleware) {
	SetupStoreRouter(e, authMiddleware)
	SetupSyncRouter(e, authMiddleware, cronMiddleware)
	SetupListingRouter(e, authMiddleware)
	SetupQueueRouter(e, authMiddleware)
	SetupAnalyticsRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
