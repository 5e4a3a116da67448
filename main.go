package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sourcegraph/conc"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/net/netutil"

	"ecommerce/internal/cache"
	"ecommerce/internal/config"
	"ecommerce/internal/handler"
	"ecommerce/internal/logging"
	"ecommerce/internal/metrics"
	custommiddleware "ecommerce/internal/middleware"
	"ecommerce/internal/refcode"
	"ecommerce/internal/repository"
	"ecommerce/internal/service"
	"ecommerce/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.Log)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	registry := metrics.NewRegistry()
	recorder, err := metrics.NewRecorder(registry, &cfg.Metrics, logger)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	var runtimeGatherer prometheus.Gatherer
	if cfg.Metrics.RuntimeEnabled {
		runtimeGatherer, err = metrics.NewRuntimeGatherer()
		if err != nil {
			return fmt.Errorf("failed to register runtime collectors: %w", err)
		}
	}
	exporter := metrics.NewExporter(registry, runtimeGatherer)

	productCache, err := cache.New(cfg.Cache.MaxSizePow2)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer productCache.Close()

	codes, err := refcode.New()
	if err != nil {
		return fmt.Errorf("failed to create reference encoder: %w", err)
	}

	validator, err := validation.New()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	products := service.NewProductService(repository.NewProductRepository(repository.SeedProducts()), productCache, recorder)
	users := service.NewUserService(repository.NewUserRepository(repository.SeedUsers()), recorder)
	services := handler.Services{
		Products: products,
		Orders:   service.NewOrderService(repository.NewOrderRepository(repository.SeedOrders()), products, codes, recorder),
		Users:    users,
		Carts:    service.NewCartService(repository.NewCartRepository(repository.SeedCarts()), products, recorder),
	}

	if err := users.SyncActiveUsers(ctx); err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = handler.SonicSerializer{}
	e.Validator = validator

	// Metrics wraps Recover so panics are counted as 500s.
	e.Use(custommiddleware.Metrics(recorder, logger))
	e.Use(middleware.Recover())
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.AccessLog(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORS.AllowOrigins}))
	e.Use(middleware.BodyLimit(cfg.Server.MaxBodySize))
	if cfg.RateLimit.Enabled {
		e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger, cfg.Metrics.Path, "/health"))
	}

	handler.New(services, validator, exporter, cfg.Metrics.Path, logger).Register(e)

	if custommiddleware.MountPprof(e, &cfg.Pprof) {
		logger.Info("pprof endpoints enabled", slog.String("path", custommiddleware.PprofPrefix+"/*"))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	server := &http.Server{
		Handler:        e,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	logger.Info("server running",
		slog.String("addr", addr),
		slog.String("metrics", cfg.Metrics.Path),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	var wg conc.WaitGroup
	wg.Go(func() {
		collectInfraMetrics(ctx, recorder, productCache, cfg.Metrics.InfraInterval)
	})
	wg.Go(func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	})

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	wg.Wait()
	if err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, productCache *cache.ProductCache, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hits, misses, ratio := productCache.Stats()
			recorder.RecordInfra(metrics.InfraMetric{
				CacheHits:     hits,
				CacheMisses:   misses,
				CacheHitRatio: ratio,
			})
		}
	}
}
