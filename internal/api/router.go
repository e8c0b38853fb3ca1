package api

import (
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/JakeKoks/aicomics/internal/api/handler"
	"github.com/JakeKoks/aicomics/internal/api/middleware"
	"github.com/JakeKoks/aicomics/internal/core/domain"
	"github.com/JakeKoks/aicomics/internal/core/service"
	"github.com/JakeKoks/aicomics/internal/infrastructure/config"
	"github.com/JakeKoks/aicomics/internal/infrastructure/db/postgres"
	"github.com/JakeKoks/aicomics/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Store clients are constructed by the caller and injected; the router owns
// no connection lifecycle.
func NewRouter(db *sqlx.DB, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("aicomics"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	mediaRepo := postgres.NewMediaRepository(db)
	sessionStore := redis.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessionStore, service.AuthConfig{
		SessionTTL: cfg.Session.TTL,
		BcryptCost: cfg.Session.BcryptCost,
	}, log)
	mediaService := service.NewMediaService(mediaRepo, log)

	cookie := middleware.CookieConfig{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.IsProduction(),
	}

	authHandler := handler.NewAuthHandler(authService, cookie)
	mediaHandler := handler.NewMediaHandler(mediaService)
	dashboardHandler := handler.NewDashboardHandler(authService, mediaService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	// Every request under /api resolves the session cookie, if any; the
	// route groups below decide what to do with a missing identity.
	sessionMW := middleware.Session(authService, cookie)
	authLimiter := middleware.AuthRateLimiter()

	// --- Auth routes ---
	auth := e.Group("/api/auth", sessionMW)
	auth.POST("/register", authHandler.Register, authLimiter)
	auth.POST("/login", authHandler.Login, authLimiter)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me)
	auth.GET("/status", authHandler.Status)

	// --- Dashboard ---
	dashboard := e.Group("/api/dashboard", sessionMW, middleware.RequireAuth)
	dashboard.GET("/stats", dashboardHandler.Stats)

	// --- Media catalog ---
	media := e.Group("/api/media", sessionMW, middleware.RequireAuth)
	media.GET("", mediaHandler.List)
	media.GET("/:id", mediaHandler.Get)
	creatorOnly := middleware.RequireRole(authService, domain.RoleCreator)
	media.POST("", mediaHandler.Create, creatorOnly)
	media.PUT("/:id", mediaHandler.Update, creatorOnly)
	media.DELETE("/:id", mediaHandler.Delete, creatorOnly)

	// --- Operational endpoints ---
	e.GET("/", healthHandler.Index)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
