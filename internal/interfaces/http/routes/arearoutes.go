package routes

import (
	"github.com/gin-gonic/gin"

	"geoshare/internal/interfaces/http/handlers"
	"geoshare/internal/interfaces/http/middleware"
)

// AreaRouteConfig holds dependencies for area routes.
type AreaRouteConfig struct {
	AreaHandler    *handlers.AreaHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAreaRoutes configures area routes.
func SetupAreaRoutes(api *gin.RouterGroup, cfg *AreaRouteConfig) {
	user := api.Group("/user")
	user.Use(cfg.AuthMiddleware.RequireAuth())
	{
		user.GET("/responsible-areas", cfg.AreaHandler.ListResponsibleAreas)
	}
}
