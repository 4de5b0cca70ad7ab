package router

import (
	"github.com/labstack/echo/v4"

	"giglance/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupCatalogRouter(e, authMiddleware, roleMiddleware)
	SetupCheckoutRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware, roleMiddleware)
	SetupChatRouter(e, authMiddleware)
}
