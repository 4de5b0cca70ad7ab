package router

import (
	"github.com/labstack/echo/v4"

	"giglance/internal/adapter/api/handler"
	"giglance/internal/adapter/api/middleware"
)

func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	catalogHandler := handler.GetCatalogHandler()

	// Public catalog
	services := e.Group("/v1/services")
	services.GET("", catalogHandler.ListServices)
	services.GET("/:id", catalogHandler.GetService)

	// Seller-owned listings
	myServices := e.Group("/v1/my-services")
	myServices.Use(authMiddleware.Authenticate)
	myServices.Use(roleMiddleware.SellerOnly)
	myServices.GET("", catalogHandler.ListMyServices)
	myServices.POST("", catalogHandler.CreateService)
	myServices.DELETE("/:id", catalogHandler.DeleteService)

	// Admin curation
	admin := e.Group("/v1/admin/services")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.PUT("/:id/featured", catalogHandler.SetFeatured)
}
