package routes

import (
	"github.com/gin-gonic/gin"

	"subtrack/internal/interfaces/http/handlers/admin"
	"subtrack/internal/interfaces/http/middleware"
	"subtrack/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for admin catalog management routes.
type AdminRouteConfig struct {
	CatalogHandler *admin.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAdminRoutes configures the admin-only catalog write routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	adminGroup := engine.Group("/api/admin",
		cfg.AuthMiddleware.RequireAuth(),
		authorization.RequireAdmin(),
	)
	{
		services := adminGroup.Group("/services")
		{
			services.POST("", cfg.CatalogHandler.CreateService)
			services.PUT("/:id", cfg.CatalogHandler.UpdateService)
			services.DELETE("/:id", cfg.CatalogHandler.DeleteService)
			services.POST("/:id/plans", cfg.CatalogHandler.CreatePlan)
		}

		plans := adminGroup.Group("/plans")
		{
			plans.PUT("/:id", cfg.CatalogHandler.UpdatePlan)
			plans.DELETE("/:id", cfg.CatalogHandler.DeletePlan)
		}
	}
}
