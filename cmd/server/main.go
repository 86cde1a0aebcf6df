package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	catalogapp "github.com/bizrecords/backend/internal/application/catalog"
	companyapp "github.com/bizrecords/backend/internal/application/company"
	partyapp "github.com/bizrecords/backend/internal/application/party"
	procurementapp "github.com/bizrecords/backend/internal/application/procurement"
	"github.com/bizrecords/backend/internal/domain/shared"
	"github.com/bizrecords/backend/internal/infrastructure/cache"
	"github.com/bizrecords/backend/internal/infrastructure/config"
	"github.com/bizrecords/backend/internal/infrastructure/logger"
	"github.com/bizrecords/backend/internal/infrastructure/persistence"
	"github.com/bizrecords/backend/internal/infrastructure/printing"
	"github.com/bizrecords/backend/internal/infrastructure/telemetry"
	"github.com/bizrecords/backend/internal/interfaces/http/handler"
	"github.com/bizrecords/backend/internal/interfaces/http/middleware"
	"github.com/bizrecords/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("starting bizrecords backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()
	if tracerProvider.IsEnabled() && cfg.Telemetry.DBTraceEnabled {
		if err := db.EnableTracing(); err != nil {
			log.Warn("failed to enable database tracing", zap.Error(err))
		}
	}
	log.Info("database connected")

	// Idempotency store
	var idempotencyStore shared.IdempotencyStore
	switch cfg.Idempotency.Backend {
	case "redis":
		idempotencyStore, err = cache.NewRedisIdempotencyStore(cache.RedisConfig{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		log.Info("idempotency store using redis", zap.String("addr", cfg.Redis.Addr()))
	default:
		idempotencyStore = cache.NewInMemoryIdempotencyStore()
		log.Info("idempotency store using process memory")
	}
	defer func() {
		if err := idempotencyStore.Close(); err != nil {
			log.Error("error closing idempotency store", zap.Error(err))
		}
	}()

	// Document rendering
	templateEngine, err := printing.NewTemplateEngine()
	if err != nil {
		log.Fatal("failed to load document templates", zap.Error(err))
	}
	renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Printing.RenderTimeout,
		ExecPath:       cfg.Printing.ChromePath,
		NoSandbox:      os.Getuid() == 0,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("failed to initialize PDF renderer", zap.Error(err))
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("error closing PDF renderer", zap.Error(err))
		}
	}()

	var documentStorage printing.DocumentStorage
	switch cfg.Storage.Backend {
	case "s3":
		documentStorage, err = printing.NewS3Storage(context.Background(), &printing.S3StorageConfig{
			Bucket:    cfg.Storage.S3Bucket,
			Region:    cfg.Storage.S3Region,
			Endpoint:  cfg.Storage.S3Endpoint,
			KeyPrefix: cfg.Storage.S3KeyPrefix,
			Logger:    log,
		})
		if err != nil {
			log.Fatal("failed to initialize S3 document storage", zap.Error(err))
		}
		log.Info("document archive using s3", zap.String("bucket", cfg.Storage.S3Bucket))
	default:
		documentStorage, err = printing.NewFileSystemStorage(&printing.FileSystemStorageConfig{
			BasePath: cfg.Storage.Dir,
			Logger:   log,
		})
		if err != nil {
			log.Fatal("failed to initialize document storage", zap.Error(err))
		}
		log.Info("document archive using filesystem", zap.String("dir", cfg.Storage.Dir))
	}

	// Repositories
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	partyRepo := persistence.NewGormPartyRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	orderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	sequenceRepo := persistence.NewGormSequenceRepository(db.DB)

	// Application services
	companyService := companyapp.NewService(companyRepo)
	partyService := partyapp.NewService(partyRepo, sequenceRepo)
	itemService := catalogapp.NewService(itemRepo, sequenceRepo)
	orderService := procurementapp.NewService(
		orderRepo, companyRepo, partyRepo, sequenceRepo,
		idempotencyStore, cfg.Idempotency.TTL, log)
	documentService := procurementapp.NewDocumentService(
		orderRepo, companyRepo, partyRepo,
		templateEngine, renderer, documentStorage, log)

	// HTTP surface
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	if tracerProvider.IsEnabled() {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.CompanyContextWithConfig(middleware.CompanyConfig{
		SkipPaths: []string{"/health", "/api/v1/health", "/api/v1/companies"},
		Required:  true,
		Logger:    log,
	}))

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(
			handler.NewSystemHandler(),
			handler.NewCompanyHandler(companyService),
			handler.NewPartyHandler(partyService),
			handler.NewItemHandler(itemService),
			handler.NewPurchaseOrderHandler(orderService, documentService),
		).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
