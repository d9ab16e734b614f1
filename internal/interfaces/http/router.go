package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogusecases "subtrack/internal/application/catalog/usecases"
	ledgerusecases "subtrack/internal/application/ledger/usecases"
	userusecases "subtrack/internal/application/user/usecases"
	"subtrack/internal/infrastructure/auth"
	"subtrack/internal/infrastructure/cache"
	"subtrack/internal/infrastructure/config"
	"subtrack/internal/infrastructure/ratelimit"
	"subtrack/internal/infrastructure/repository"
	"subtrack/internal/interfaces/http/handlers"
	adminhandlers "subtrack/internal/interfaces/http/handlers/admin"
	"subtrack/internal/interfaces/http/middleware"
	"subtrack/internal/interfaces/http/routes"
	"subtrack/internal/shared/logger"
	"subtrack/internal/shared/services/markdown"
)

const oauthStateTTL = 10 * time.Minute

// Router wires repositories, use cases, and handlers onto a gin engine.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface
}

// NewRouter builds the full HTTP surface. redisClient may be nil; rate
// limiting and OAuth state storage then fall back to in-process versions.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.SecurityHeaders(),
	)

	serviceRepo := repository.NewServiceRepository(db, log)
	planRepo := repository.NewPlanRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	bookmarkRepo := repository.NewBookmarkRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)

	markdownSvc := markdown.NewService()
	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	googleClient := auth.NewGoogleOAuthClient(cfg.OAuth.Google)

	var stateStore cache.StateStore
	var compareLimiter ratelimit.Limiter
	if redisClient != nil {
		stateStore = cache.NewRedisStateStore(redisClient, "oauth:state:", oauthStateTTL)
		compareLimiter = ratelimit.NewRedisRateLimiter(redisClient, "ratelimit:compare",
			ratelimit.Window{Duration: time.Minute, Limit: cfg.RateLimit.ComparisonPerMinute},
			ratelimit.Window{Duration: time.Hour, Limit: cfg.RateLimit.ComparisonPerHour},
		)
	} else {
		stateStore = cache.NewMemoryStateStore(oauthStateTTL)
		compareLimiter = ratelimit.NewNoopLimiter()
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	serviceHandler := handlers.NewServiceHandler(
		catalogusecases.NewListServicesUseCase(serviceRepo, log),
		catalogusecases.NewGetServiceDetailUseCase(serviceRepo, planRepo, markdownSvc, log),
		catalogusecases.NewListPlansForServiceUseCase(serviceRepo, planRepo, log),
		catalogusecases.NewCompareServicesUseCase(serviceRepo, planRepo, log),
	)

	catalogAdminHandler := adminhandlers.NewCatalogHandler(
		catalogusecases.NewCreateServiceUseCase(serviceRepo, log),
		catalogusecases.NewUpdateServiceUseCase(serviceRepo, log),
		catalogusecases.NewDeleteServiceUseCase(serviceRepo, log),
		catalogusecases.NewCreatePlanUseCase(serviceRepo, planRepo, log),
		catalogusecases.NewUpdatePlanUseCase(planRepo, log),
		catalogusecases.NewDeletePlanUseCase(planRepo, log),
	)

	subscriptionHandler := handlers.NewSubscriptionHandler(
		ledgerusecases.NewListSubscriptionsUseCase(subscriptionRepo, planRepo, serviceRepo, log),
		ledgerusecases.NewCreateSubscriptionUseCase(subscriptionRepo, planRepo, serviceRepo, markdownSvc, log),
		ledgerusecases.NewCancelSubscriptionUseCase(subscriptionRepo, log),
		ledgerusecases.NewRenewSubscriptionUseCase(subscriptionRepo, planRepo, serviceRepo, log),
		ledgerusecases.NewDeleteSubscriptionUseCase(subscriptionRepo, log),
		ledgerusecases.NewExportSubscriptionsUseCase(subscriptionRepo, planRepo, serviceRepo, &cfg.Export, log),
	)

	bookmarkHandler := handlers.NewBookmarkHandler(
		ledgerusecases.NewListBookmarksUseCase(bookmarkRepo, serviceRepo, log),
		ledgerusecases.NewAddBookmarkUseCase(bookmarkRepo, serviceRepo, markdownSvc, log),
		ledgerusecases.NewRemoveBookmarkUseCase(bookmarkRepo, log),
	)

	authHandler := handlers.NewAuthHandler(
		userusecases.NewRegisterUseCase(userRepo, hasher, jwtService, log),
		userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
		userusecases.NewRefreshTokenUseCase(jwtService, log),
		userusecases.NewLogoutUseCase(log),
		userusecases.NewInitiateGoogleLoginUseCase(googleClient, stateStore, log),
		userusecases.NewHandleGoogleCallbackUseCase(userRepo, googleClient, stateStore, jwtService, log),
	)

	routes.SetupCatalogRoutes(engine, &routes.CatalogRouteConfig{
		ServiceHandler: serviceHandler,
		CompareLimiter: middleware.RateLimit(compareLimiter, log),
	})
	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupMyRoutes(engine, &routes.MyRouteConfig{
		SubscriptionHandler: subscriptionHandler,
		BookmarkHandler:     bookmarkHandler,
		AuthMiddleware:      authMiddleware,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		CatalogHandler: catalogAdminHandler,
		AuthMiddleware: authMiddleware,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,
	}
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the configured address.
func (r *Router) Run() error {
	addr := r.cfg.Server.GetAddr()
	r.logger.Infow("starting HTTP server", "addr", addr)
	return r.engine.Run(addr)
}
