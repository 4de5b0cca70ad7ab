package router

import (
	"github.com/labstack/echo/v4"

	"giglance/internal/adapter/api/handler"
	"giglance/internal/adapter/api/middleware"
)

func SetupCheckoutRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	checkoutHandler := handler.GetCheckoutHandler()

	checkout := e.Group("/v1/checkout")
	checkout.Use(authMiddleware.Authenticate)
	checkout.POST("/service", checkoutHandler.CheckoutService)
	checkout.POST("/cart", checkoutHandler.CheckoutCart)
	checkout.POST("/gift-note", checkoutHandler.GenerateGiftNote)
}
