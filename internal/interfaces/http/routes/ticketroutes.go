package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "propflow/internal/interfaces/http/handlers/ticket"
	"propflow/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	tickets.Use(config.RateLimitMiddleware.Limit())
	{
		// Collection operations
		tickets.POST("",
			config.PermissionMiddleware.RequirePermission("ticket", "create"),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.PermissionMiddleware.RequirePermission("ticket", "read"),
			config.TicketHandler.ListTickets)

		// Action endpoints, registered before the generic /:id routes
		tickets.POST("/:id/assign",
			config.PermissionMiddleware.RequirePermission("ticket", "assign"),
			config.TicketHandler.AssignTicket)
		tickets.POST("/:id/notes",
			config.PermissionMiddleware.RequirePermission("ticket", "note"),
			config.TicketHandler.AddNote)
		tickets.POST("/:id/images",
			config.PermissionMiddleware.RequirePermission("ticket", "image"),
			config.TicketHandler.AddImage)
		tickets.POST("/:id/materials",
			config.PermissionMiddleware.RequirePermission("ticket", "materials"),
			config.TicketHandler.RecordMaterials)
		tickets.POST("/:id/complete",
			config.PermissionMiddleware.RequirePermission("ticket", "complete"),
			config.TicketHandler.CompleteTicket)
		tickets.POST("/:id/cancel",
			config.PermissionMiddleware.RequirePermission("ticket", "cancel"),
			config.TicketHandler.CancelTicket)

		// Generic parameterized routes
		tickets.GET("/:id",
			config.PermissionMiddleware.RequirePermission("ticket", "read"),
			config.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			config.PermissionMiddleware.RequirePermission("ticket", "update"),
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			config.PermissionMiddleware.RequirePermission("ticket", "delete"),
			config.TicketHandler.DeleteTicket)
	}
}
