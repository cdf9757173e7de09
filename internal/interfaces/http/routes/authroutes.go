package routes

import (
	"github.com/gin-gonic/gin"

	"geoshare/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for auth routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

// SetupAuthRoutes configures auth routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/verify", cfg.AuthHandler.VerifySession)
	}
}
