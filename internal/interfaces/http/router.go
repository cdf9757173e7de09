package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	alertusecases "geoshare/internal/application/alert/usecases"
	areausecases "geoshare/internal/application/area/usecases"
	authusecases "geoshare/internal/application/auth/usecases"
	infrausecases "geoshare/internal/application/infrastructure/usecases"
	"geoshare/internal/domain/authorization"
	domaingeocoding "geoshare/internal/domain/geocoding"
	"geoshare/internal/infrastructure/config"
	"geoshare/internal/infrastructure/geocoding"
	"geoshare/internal/infrastructure/repository"
	"geoshare/internal/interfaces/http/handlers"
	"geoshare/internal/interfaces/http/middleware"
	"geoshare/internal/interfaces/http/routes"
	"geoshare/internal/shared/db"
	"geoshare/internal/shared/logger"
)

// Router wires the HTTP surface: repositories, use cases, handlers and
// middleware, in that order.
type Router struct {
	engine                *gin.Engine
	cfg                   *config.Config
	alertHandler          *handlers.AlertHandler
	areaHandler           *handlers.AreaHandler
	authHandler           *handlers.AuthHandler
	infrastructureHandler *handlers.InfrastructureHandler
	authMiddleware        *middleware.AuthMiddleware
	logger                logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	areaRepo := repository.NewAreaRepository(database)
	alertRepo := repository.NewAlertRepository(database)
	infraRepo := repository.NewInfrastructureRepository(database)
	assignmentRepo := repository.NewAssignmentRepository(database)
	sessionRepo := repository.NewSessionRepository(database)

	resolver := authorization.NewResolver(areaRepo)
	txManager := db.NewTransactionManager(database)

	var geocoder domaingeocoding.Reverser = geocoding.NewNominatimClient(cfg.Geocoding, log)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		geocoder = geocoding.NewCachedReverser(geocoder, redisClient, cfg.Geocoding.CacheTTLMinutes, log)
	}

	verifySessionUC := authusecases.NewVerifySessionUseCase(sessionRepo, log)
	createAlertUC := alertusecases.NewCreateAlertUseCase(alertRepo, assignmentRepo, resolver, log)
	deleteAlertUC := alertusecases.NewDeleteAlertUseCase(alertRepo, assignmentRepo, resolver, log)
	listMyAlertsUC := alertusecases.NewListMyAlertsUseCase(alertRepo, assignmentRepo, resolver, log)
	checkAlertsUC := alertusecases.NewCheckAlertsUseCase(geocoder, areaRepo, alertRepo, log)
	listResponsibleUC := areausecases.NewListResponsibleAreasUseCase(areaRepo, assignmentRepo, resolver, log)
	createInfraUC := infrausecases.NewCreateInfrastructureUseCase(infraRepo, assignmentRepo, txManager, log)
	updateInfraUC := infrausecases.NewUpdateInfrastructureUseCase(infraRepo, assignmentRepo, resolver, log)
	deleteInfraUC := infrausecases.NewDeleteInfrastructureUseCase(infraRepo, assignmentRepo, resolver, txManager, log)
	findNearbyUC := infrausecases.NewFindNearbyUseCase(infraRepo, log)
	openingUC := infrausecases.NewOpeningScheduleUseCase(infraRepo, assignmentRepo, resolver, log)

	return &Router{
		engine:                engine,
		cfg:                   cfg,
		alertHandler:          handlers.NewAlertHandler(createAlertUC, deleteAlertUC, listMyAlertsUC, checkAlertsUC),
		areaHandler:           handlers.NewAreaHandler(listResponsibleUC),
		authHandler:           handlers.NewAuthHandler(verifySessionUC),
		infrastructureHandler: handlers.NewInfrastructureHandler(createInfraUC, updateInfraUC, deleteInfraUC, findNearbyUC, openingUC),
		authMiddleware:        middleware.NewAuthMiddleware(verifySessionUC, log),
		logger:                log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})
	routes.SetupAlertRoutes(api, &routes.AlertRouteConfig{
		AlertHandler:   r.alertHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupAreaRoutes(api, &routes.AreaRouteConfig{
		AreaHandler:    r.areaHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupInfrastructureRoutes(api, &routes.InfrastructureRouteConfig{
		InfrastructureHandler: r.infrastructureHandler,
		AuthMiddleware:        r.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
