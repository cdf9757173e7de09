package routes

import (
	"github.com/gin-gonic/gin"

	"geoshare/internal/interfaces/http/handlers"
	"geoshare/internal/interfaces/http/middleware"
)

// AlertRouteConfig holds dependencies for alert routes.
type AlertRouteConfig struct {
	AlertHandler   *handlers.AlertHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAlertRoutes configures alert routes.
func SetupAlertRoutes(api *gin.RouterGroup, cfg *AlertRouteConfig) {
	alerts := api.Group("/alerts")
	{
		// Public location check, consumed anonymously by the mobile app.
		alerts.POST("/check", cfg.AlertHandler.CheckAlerts)

		alertsProtected := alerts.Group("")
		alertsProtected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			alertsProtected.POST("", cfg.AlertHandler.CreateAlert)
			alertsProtected.GET("/my", cfg.AlertHandler.ListMyAlerts)
			alertsProtected.DELETE("/:id", cfg.AlertHandler.DeleteAlert)
		}
	}
}
