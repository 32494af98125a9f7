package router

import (
	"etsysync/internal/adapter/api/handler"
	"etsysync/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupStoreRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	storeHandler := handler.GetStoreHandler()

	stores := e.Group("/v1/stores")
	stores.Use(authMiddleware.Authenticate)
	stores.POST("", storeHandler.ConnectStore)
	stores.GET("/:id", storeHandler.GetStore)
	stores.PUT("/:id", storeHandler.UpdateStore)
	stores.DELETE("/:id", storeHandler.DisconnectStore)
	stores.GET("/:id/shipping-profiles", storeHandler.GetShippingProfiles)
	stores.GET("/:id/sections", storeHandler.GetShopSections)
}
