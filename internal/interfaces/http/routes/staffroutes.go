package routes

import (
	"github.com/gin-gonic/gin"

	staffhandlers "propflow/internal/interfaces/http/handlers/staff"
	"propflow/internal/interfaces/http/middleware"
)

type StaffRouteConfig struct {
	StaffHandler         *staffhandlers.StaffHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
}

func SetupStaffRoutes(engine *gin.Engine, config *StaffRouteConfig) {
	staff := engine.Group("/staff")
	staff.Use(config.AuthMiddleware.RequireAuth())
	staff.Use(config.RateLimitMiddleware.Limit())
	{
		staff.POST("",
			config.PermissionMiddleware.RequirePermission("staff", "create"),
			config.StaffHandler.CreateStaff)
		staff.GET("",
			config.PermissionMiddleware.RequirePermission("staff", "read"),
			config.StaffHandler.ListStaff)
		staff.GET("/:id",
			config.PermissionMiddleware.RequirePermission("staff", "read"),
			config.StaffHandler.GetStaff)
		staff.PUT("/:id",
			config.PermissionMiddleware.RequirePermission("staff", "update"),
			config.StaffHandler.UpdateStaff)
		staff.DELETE("/:id",
			config.PermissionMiddleware.RequirePermission("staff", "delete"),
			config.StaffHandler.DeleteStaff)
	}
}
