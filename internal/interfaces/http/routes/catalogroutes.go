package routes

import (
	"github.com/gin-gonic/gin"

	"subtrack/internal/interfaces/http/handlers"
)

// CatalogRouteConfig holds dependencies for the public catalog routes.
type CatalogRouteConfig struct {
	ServiceHandler *handlers.ServiceHandler
	// CompareLimiter guards the comparison endpoint; it is the only
	// rate-limited route in the public catalog.
	CompareLimiter gin.HandlerFunc
}

// SetupCatalogRoutes configures the public, unauthenticated catalog routes.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	services := engine.Group("/api/services")
	{
		services.GET("", cfg.ServiceHandler.ListServices)
		services.GET("/compare", cfg.CompareLimiter, cfg.ServiceHandler.CompareServices)
		services.GET("/:id", cfg.ServiceHandler.GetServiceDetail)
		services.GET("/:id/plans", cfg.ServiceHandler.ListPlans)
	}
}
