package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pizzastore/ordering-system/internal/api/handler"
	"github.com/pizzastore/ordering-system/internal/api/middleware"
	"github.com/pizzastore/ordering-system/internal/core/domain"
	"github.com/pizzastore/ordering-system/internal/core/service"
	"github.com/pizzastore/ordering-system/internal/infrastructure/db/postgres"
	redisdb "github.com/pizzastore/ordering-system/internal/infrastructure/db/redis"
	"github.com/pizzastore/ordering-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("pizzastore"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	menuCache := redisdb.NewMenuCache(rdb, log)

	// --- Services ---
	gate := service.NewGate(userRepo, log)
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	orderService := service.NewOrderService(orderRepo, catalogRepo, gate, menuCache, log)
	catalogService := service.NewCatalogService(catalogRepo, gate, menuCache, log)
	profileService := service.NewProfileService(userRepo, catalogRepo, gate, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	orderHandler := handler.NewOrderHandler(orderService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	profileHandler := handler.NewProfileHandler(profileService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(jwtSecret))

	v1.GET("/stores", catalogHandler.ListStores)
	v1.GET("/menu", catalogHandler.ListMenu)

	v1.POST("/orders", orderHandler.Begin)
	v1.GET("/orders", orderHandler.List)
	v1.GET("/orders/:id", orderHandler.Get)
	v1.DELETE("/orders/:id", orderHandler.Cancel)
	v1.POST("/orders/:id/lines", orderHandler.AddLine)
	v1.POST("/orders/:id/commit", orderHandler.Commit)
	v1.POST("/orders/:id/status", orderHandler.ToggleStatus)

	v1.GET("/profile", profileHandler.Get)
	v1.PATCH("/profile", profileHandler.Update)

	// Manager-only groups, gated at the route level. The services behind
	// them consult the same gate for data-dependent decisions.
	menuAdmin := v1.Group("/menu", middleware.Require(gate, domain.OpManageMenu))
	menuAdmin.POST("", catalogHandler.AddItem)
	menuAdmin.PUT("/:name", catalogHandler.UpdateItem)
	menuAdmin.DELETE("/:name", catalogHandler.RemoveItem)

	userAdmin := v1.Group("/users", middleware.Require(gate, domain.OpManageUsers))
	userAdmin.GET("", profileHandler.ListUsers)
	userAdmin.PATCH("/:login/role", profileHandler.SetRole)

	return e
}
