package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	inventoryUsecases "propflow/internal/application/inventory/usecases"
	staffUsecases "propflow/internal/application/staff/usecases"
	ticketUsecases "propflow/internal/application/ticket/usecases"
	"propflow/internal/infrastructure/auth"
	"propflow/internal/infrastructure/config"
	"propflow/internal/infrastructure/permission"
	"propflow/internal/infrastructure/ratelimit"
	"propflow/internal/infrastructure/repository"
	inventoryhandlers "propflow/internal/interfaces/http/handlers/inventory"
	staffhandlers "propflow/internal/interfaces/http/handlers/staff"
	tickethandlers "propflow/internal/interfaces/http/handlers/ticket"
	"propflow/internal/interfaces/http/middleware"
	"propflow/internal/interfaces/http/routes"
	"propflow/internal/interfaces/http/validation"
	"propflow/internal/shared/db"
	"propflow/internal/shared/logger"
)

// Router wires repositories, use cases, handlers and middleware into a gin
// engine.
type Router struct {
	engine *gin.Engine

	ticketHandler    *tickethandlers.TicketHandler
	staffHandler     *staffhandlers.StaffHandler
	inventoryHandler *inventoryhandlers.InventoryHandler

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware

	log logger.Interface
}

// NewRouter builds the full dependency graph. A nil redis client disables
// rate limiting.
func NewRouter(
	gormDB *gorm.DB,
	cfg *config.Config,
	enforcer *permission.Enforcer,
	redisClient *redis.Client,
	log logger.Interface,
) (*Router, error) {
	if err := validation.RegisterEnumValidators(); err != nil {
		return nil, err
	}

	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(gormDB)
	staffRepo := repository.NewStaffRepository(gormDB)
	inventoryRepo := repository.NewInventoryRepository(gormDB)
	tenancyRepo := repository.NewTenancyRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	tx := db.NewTransactionManager(gormDB)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, tenancyRepo, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, staffRepo, tenancyRepo, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, staffRepo, tenancyRepo, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(ticketRepo, staffRepo, tenancyRepo, tx, log)
	assignTicketUC := ticketUsecases.NewAssignTicketUseCase(ticketRepo, staffRepo, tenancyRepo, tx, log)
	addNoteUC := ticketUsecases.NewAddNoteUseCase(ticketRepo, staffRepo, tenancyRepo, log)
	addImageUC := ticketUsecases.NewAddImageUseCase(ticketRepo, staffRepo, tenancyRepo, log)
	recordMaterialsUC := ticketUsecases.NewRecordMaterialsUseCase(ticketRepo, inventoryRepo, staffRepo, tenancyRepo, tx, log)
	completeTicketUC := ticketUsecases.NewCompleteTicketUseCase(ticketRepo, inventoryRepo, staffRepo, tenancyRepo, tx, log)
	cancelTicketUC := ticketUsecases.NewCancelTicketUseCase(ticketRepo, tx, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, log)

	createStaffUC := staffUsecases.NewCreateStaffUseCase(staffRepo, userRepo, log)
	getStaffUC := staffUsecases.NewGetStaffUseCase(staffRepo, log)
	listStaffUC := staffUsecases.NewListStaffUseCase(staffRepo, log)
	updateStaffUC := staffUsecases.NewUpdateStaffUseCase(staffRepo, log)
	deleteStaffUC := staffUsecases.NewDeleteStaffUseCase(staffRepo, ticketRepo, log)

	createItemUC := inventoryUsecases.NewCreateItemUseCase(inventoryRepo, log)
	getItemUC := inventoryUsecases.NewGetItemUseCase(inventoryRepo, log)
	listItemsUC := inventoryUsecases.NewListItemsUseCase(inventoryRepo, log)
	updateItemUC := inventoryUsecases.NewUpdateItemUseCase(inventoryRepo, log)
	deleteItemUC := inventoryUsecases.NewDeleteItemUseCase(inventoryRepo, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, updateTicketUC,
		assignTicketUC, addNoteUC, addImageUC, recordMaterialsUC,
		completeTicketUC, cancelTicketUC, deleteTicketUC, log,
	)
	staffHandler := staffhandlers.NewStaffHandler(
		createStaffUC, getStaffUC, listStaffUC, updateStaffUC, deleteStaffUC, log,
	)
	inventoryHandler := inventoryhandlers.NewInventoryHandler(
		createItemUC, getItemUC, listItemsUC, updateItemUC, deleteItemUC, log,
	)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)
	permissionMiddleware := middleware.NewPermissionMiddleware(enforcer, log)

	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(limiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
	}, log)

	return &Router{
		engine:               engine,
		ticketHandler:        ticketHandler,
		staffHandler:         staffHandler,
		inventoryHandler:     inventoryHandler,
		authMiddleware:       authMiddleware,
		permissionMiddleware: permissionMiddleware,
		rateLimitMiddleware:  rateLimitMiddleware,
		log:                  log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestLogger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:        r.ticketHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimitMiddleware:  r.rateLimitMiddleware,
	})

	routes.SetupStaffRoutes(r.engine, &routes.StaffRouteConfig{
		StaffHandler:         r.staffHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimitMiddleware:  r.rateLimitMiddleware,
	})

	routes.SetupInventoryRoutes(r.engine, &routes.InventoryRouteConfig{
		InventoryHandler:     r.inventoryHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimitMiddleware:  r.rateLimitMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
