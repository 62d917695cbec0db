package routes

import (
	"github.com/gin-gonic/gin"

	inventoryhandlers "propflow/internal/interfaces/http/handlers/inventory"
	"propflow/internal/interfaces/http/middleware"
)

type InventoryRouteConfig struct {
	InventoryHandler     *inventoryhandlers.InventoryHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
}

func SetupInventoryRoutes(engine *gin.Engine, config *InventoryRouteConfig) {
	inventory := engine.Group("/inventory")
	inventory.Use(config.AuthMiddleware.RequireAuth())
	inventory.Use(config.RateLimitMiddleware.Limit())
	{
		inventory.POST("",
			config.PermissionMiddleware.RequirePermission("inventory", "create"),
			config.InventoryHandler.CreateItem)
		inventory.GET("",
			config.PermissionMiddleware.RequirePermission("inventory", "read"),
			config.InventoryHandler.ListItems)
		inventory.GET("/:id",
			config.PermissionMiddleware.RequirePermission("inventory", "read"),
			config.InventoryHandler.GetItem)
		inventory.PUT("/:id",
			config.PermissionMiddleware.RequirePermission("inventory", "update"),
			config.InventoryHandler.UpdateItem)
		inventory.DELETE("/:id",
			config.PermissionMiddleware.RequirePermission("inventory", "delete"),
			config.InventoryHandler.DeleteItem)
	}
}
