package router

import (
	"etsysync/internal/adapter/api/handler"
	"etsysync/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	listings := e.Group("/v1/stores/:id/listings")
	listings.Use(authMiddleware.Authenticate)
	listings.GET("", listingHandler.ListListings)
	listings.GET("/:listingId", listingHandler.GetListing)
}
