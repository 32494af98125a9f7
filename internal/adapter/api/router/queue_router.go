package router

import (
	"etsysync/internal/adapter/api/handler"
	"etsysync/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupQueueRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	queueHandler := handler.GetQueueHandler()

	queue := e.Group("/v1/queue")
	queue.Use(authMiddleware.Authenticate)
	queue.POST("", queueHandler.Enqueue)
	queue.GET("", queueHandler.ListItems)
	queue.POST("/:id/retry", queueHandler.RetryItem)
	queue.DELETE("/:id", queueHandler.RemoveItem)
	queue.DELETE("", queueHandler.ClearQueue)
	queue.POST("/process", queueHandler.ProcessNext)
}
