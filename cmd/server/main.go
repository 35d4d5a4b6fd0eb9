package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	activityapp "github.com/stockroom/backend/internal/application/activity"
	catalogapp "github.com/stockroom/backend/internal/application/catalog"
	exchangeapp "github.com/stockroom/backend/internal/application/exchange"
	partnerapp "github.com/stockroom/backend/internal/application/partner"
	reportapp "github.com/stockroom/backend/internal/application/report"
	shippingapp "github.com/stockroom/backend/internal/application/shipping"
	tradeapp "github.com/stockroom/backend/internal/application/trade"
	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/infrastructure/cache"
	"github.com/stockroom/backend/internal/infrastructure/config"
	"github.com/stockroom/backend/internal/infrastructure/event"
	"github.com/stockroom/backend/internal/infrastructure/logger"
	"github.com/stockroom/backend/internal/infrastructure/persistence"
	"github.com/stockroom/backend/internal/interfaces/http/handler"
	"github.com/stockroom/backend/internal/interfaces/http/middleware"
	"github.com/stockroom/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Stockroom backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	activityRepo := persistence.NewGormActivityRepository(db.DB)
	carrierRepo := persistence.NewGormCarrierRepository(db.DB)
	shipmentRepo := persistence.NewGormShipmentRepository(db.DB)
	salesReportRepo := persistence.NewGormSalesReportRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Idempotency store: Redis when enabled, in-memory otherwise
	var idempotencyStore shared.IdempotencyStore
	if cfg.Redis.Enabled {
		store, err := cache.NewRedisIdempotencyStore(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		idempotencyStore = store
		log.Info("Redis idempotency store connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		idempotencyStore = cache.NewInMemoryIdempotencyStore()
	}
	defer func() {
		if err := idempotencyStore.Close(); err != nil {
			log.Error("Error closing idempotency store", zap.Error(err))
		}
	}()

	rateCache := cache.NewRateCache(cfg.Cache.RateTTL, cfg.Cache.RateMaxSize, nil)

	// Application services
	productService := catalogapp.NewProductService(productRepo, orderRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	checkoutService := tradeapp.NewCheckoutService(customerRepo, productRepo, orderRepo, txScope, cfg.Checkout.OrderNumberAttempts)
	checkoutService.SetIdempotencyStore(idempotencyStore, cfg.Checkout.IdempotencyTTL)
	orderService := tradeapp.NewOrderService(orderRepo, customerRepo, productRepo)
	carrierService := shippingapp.NewCarrierService(carrierRepo)
	shipmentService := shippingapp.NewShipmentService(shipmentRepo, carrierRepo, orderRepo)
	activityService := activityapp.NewService(activityRepo)
	reportService := reportapp.NewService(salesReportRepo)
	exchangeService := exchangeapp.NewService(rateCache)

	// Event bus and the activity recorder feeding the dashboard feed
	eventBus := event.NewInMemoryEventBus(log)

	recorder := activityapp.NewRecorder(activityRepo, log)
	eventBus.Subscribe(recorder)
	log.Info("Activity recorder registered", zap.Strings("events", recorder.EventTypes()))

	productService.SetEventPublisher(eventBus)
	customerService.SetEventPublisher(eventBus)
	checkoutService.SetEventPublisher(eventBus)
	orderService.SetEventPublisher(eventBus)
	carrierService.SetEventPublisher(eventBus)
	shipmentService.SetEventPublisher(eventBus)

	// HTTP layer
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	router.NewRouter(engine, router.WithAPIVersion("v1")).Register(
		handler.NewSystemHandler(db.DB),
		handler.NewProductHandler(productService),
		handler.NewCustomerHandler(customerService),
		handler.NewOrderHandler(checkoutService, orderService),
		handler.NewCarrierHandler(carrierService),
		handler.NewShipmentHandler(shipmentService),
		handler.NewActivityHandler(activityService),
		handler.NewReportHandler(reportService),
		handler.NewExchangeHandler(exchangeService),
	).Setup()

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
