package routes

import (
	"github.com/gin-gonic/gin"

	"subtrack/internal/interfaces/http/handlers"
	"subtrack/internal/interfaces/http/middleware"
)

// MyRouteConfig holds dependencies for the per-user ledger routes.
type MyRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	BookmarkHandler     *handlers.BookmarkHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupMyRoutes configures the authenticated per-user routes.
func SetupMyRoutes(engine *gin.Engine, cfg *MyRouteConfig) {
	my := engine.Group("/api/my", cfg.AuthMiddleware.RequireAuth())
	{
		subscriptions := my.Group("/subscriptions")
		{
			subscriptions.GET("", cfg.SubscriptionHandler.ListSubscriptions)
			subscriptions.POST("", cfg.SubscriptionHandler.CreateSubscription)
			subscriptions.GET("/export", cfg.SubscriptionHandler.ExportSubscriptions)
			subscriptions.POST("/:id/cancel", cfg.SubscriptionHandler.CancelSubscription)
			subscriptions.POST("/:id/renew", cfg.SubscriptionHandler.RenewSubscription)
			subscriptions.DELETE("/:id", cfg.SubscriptionHandler.DeleteSubscription)
		}

		bookmarks := my.Group("/bookmarks")
		{
			bookmarks.GET("", cfg.BookmarkHandler.ListBookmarks)
			bookmarks.POST("", cfg.BookmarkHandler.AddBookmark)
			bookmarks.DELETE("/:id", cfg.BookmarkHandler.RemoveBookmark)
		}
	}
}
