package router

import (
	"github.com/labstack/echo/v4"

	"giglance/internal/adapter/api/handler"
	"giglance/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout, authMiddleware.Authenticate)

	e.GET("/v1/me", authHandler.Me, authMiddleware.Authenticate)
}
