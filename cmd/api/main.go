package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/driver-registry/internal/api/http"
	"github.com/spec-kit/driver-registry/internal/api/http/handlers"
	"github.com/spec-kit/driver-registry/internal/auth"
	"github.com/spec-kit/driver-registry/internal/cache"
	"github.com/spec-kit/driver-registry/internal/config"
	"github.com/spec-kit/driver-registry/internal/events"
	"github.com/spec-kit/driver-registry/internal/observability"
	"github.com/spec-kit/driver-registry/internal/persistence"
	"github.com/spec-kit/driver-registry/internal/repository"
	"github.com/spec-kit/driver-registry/internal/service"
	"github.com/spec-kit/driver-registry/internal/source"
	"github.com/spec-kit/driver-registry/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var byteCache source.ByteCache
	if workbookCache := persistence.NewWorkbookCache(redis, cfg.Cache.TTL()); workbookCache != nil {
		byteCache = workbookCache
	}

	fetcher := source.NewFetcher(cfg.Source.URL, byteCache, logger)
	documents := cache.New(fetcher.Fetch, cfg.Cache.TTL(), cfg.Source.SheetName, cfg.Source.HeaderRow, logger)

	dispatcher := events.NewInMemoryDispatcher()
	var auditRepo repository.AuditRepository
	if pg.PoolHandle() != nil {
		auditRepo = repository.NewAuditRepository(pg.PoolHandle())
	}
	auditService := service.NewAuditService(dispatcher, auditRepo, logger)
	worker.StartAuditWorker(auditService)

	driverService := service.NewDriverService(documents, dispatcher, logger)

	signer := auth.NewSigner(cfg.Auth.SecretKey)
	tokenMiddleware := auth.NewTokenMiddleware(signer)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.CORS.AllowOrigin)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Metrics:         handlers.NewMetricsHandler(metrics),
		Driver:          handlers.NewDriverHandler(driverService),
		TokenMiddleware: tokenMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
