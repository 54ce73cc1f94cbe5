package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/manus88/machinery-erp/docs"
	"github.com/manus88/machinery-erp/internal/api/handler"
	"github.com/manus88/machinery-erp/internal/api/middleware"
	"github.com/manus88/machinery-erp/internal/core/service"
	mongodb "github.com/manus88/machinery-erp/internal/infrastructure/db/mongo"
	redisdb "github.com/manus88/machinery-erp/internal/infrastructure/db/redis"
)

// RouterConfig carries the settings the router needs beyond its datastore
// handles. The JWT secret is injected configuration: it is never defaulted or
// embedded in code.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("erp"))

	// --- Dependencies ---
	tenantRepo := mongodb.NewTenantRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	machineryRepo := mongodb.NewMachineryRepository(db)
	statsCache := redisdb.NewStatsCache(rdb)

	authService := service.NewAuthService(userRepo, tenantRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	customerService := service.NewCustomerService(customerRepo, log)
	productService := service.NewProductService(productRepo, log)
	machineryService := service.NewMachineryService(machineryRepo, statsCache, log)

	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	productHandler := handler.NewProductHandler(productService)
	machineryHandler := handler.NewMachineryHandler(machineryService)

	authRequired := middleware.Auth(authService)

	// --- Auth routes ---
	auth := e.Group("/api/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authRequired)

	// --- Customer routes ---
	customers := e.Group("/api/v1/customers", authRequired)
	customers.POST("", customerHandler.Create)
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	// --- Product routes ---
	products := e.Group("/api/v1/products", authRequired)
	products.POST("", productHandler.Create)
	products.GET("", productHandler.List)
	products.GET("/low-stock", productHandler.ListLowStock)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Machinery routes ---
	// Static paths register before :id so /stats and /alerts never shadow.
	machinery := e.Group("/api/v1/machinery", authRequired)
	machinery.POST("", machineryHandler.Create)
	machinery.GET("", machineryHandler.List)
	machinery.GET("/stats", machineryHandler.Stats)
	machinery.GET("/alerts", machineryHandler.Alerts)
	machinery.GET("/:id", machineryHandler.Get)
	machinery.PUT("/:id", machineryHandler.Update)
	machinery.PATCH("/:id/horometer", machineryHandler.UpdateHorometer)
	machinery.DELETE("/:id", machineryHandler.Delete)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// EnsureIndexes creates every collection's indexes. Called once at startup,
// before the server accepts traffic.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	repos := []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		mongodb.NewTenantRepository(db),
		mongodb.NewUserRepository(db),
		mongodb.NewCustomerRepository(db),
		mongodb.NewProductRepository(db),
		mongodb.NewMachineryRepository(db),
	}
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
