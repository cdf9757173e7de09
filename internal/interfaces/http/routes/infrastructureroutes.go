package routes

import (
	"github.com/gin-gonic/gin"

	"geoshare/internal/interfaces/http/handlers"
	"geoshare/internal/interfaces/http/middleware"
)

// InfrastructureRouteConfig holds dependencies for infrastructure routes.
type InfrastructureRouteConfig struct {
	InfrastructureHandler *handlers.InfrastructureHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// SetupInfrastructureRoutes configures infrastructure routes.
func SetupInfrastructureRoutes(api *gin.RouterGroup, cfg *InfrastructureRouteConfig) {
	infras := api.Group("/infrastructures")
	{
		// Public capacity lookup, consumed anonymously by the mobile app.
		infras.POST("/nearby", cfg.InfrastructureHandler.FindNearby)

		infrasProtected := infras.Group("")
		infrasProtected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			infrasProtected.POST("", cfg.InfrastructureHandler.Create)
			infrasProtected.PUT("/:id", cfg.InfrastructureHandler.Update)
			infrasProtected.DELETE("/:id", cfg.InfrastructureHandler.Delete)

			infrasProtected.GET("/:id/opening", cfg.InfrastructureHandler.GetOpeningSchedule)
			infrasProtected.PUT("/:id/opening/days", cfg.InfrastructureHandler.ReplaceWeeklyDays)
			infrasProtected.POST("/:id/opening/exceptions", cfg.InfrastructureHandler.AddOpeningException)
			infrasProtected.DELETE("/:id/opening/exceptions/:exception_id", cfg.InfrastructureHandler.DeleteOpeningException)
		}
	}
}
