package router

import (
	"github.com/labstack/echo/v4"

	"giglance/internal/adapter/api/handler"
	"giglance/internal/adapter/api/middleware"
)

// SetupChatRouter sets up per-order chat routes (excluding WebSocket)
func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.GET("/:id/messages", chatHandler.GetOrderMessages)
	orders.POST("/:id/messages", chatHandler.SendMessage)
}
