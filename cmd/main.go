package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"campus-ads/db/migrations"
	httpadapter "campus-ads/internal/adapter/http"
	"campus-ads/internal/adapter/memory"
	"campus-ads/internal/adapter/postgres"
	redisadapter "campus-ads/internal/adapter/redis"
	"campus-ads/internal/adapter/usecase"
	"campus-ads/internal/config"
	"campus-ads/internal/config/configs"
	"campus-ads/internal/core/port"
	"campus-ads/internal/db"
	"campus-ads/internal/metrics"
)

// stores bundles the outbound adapters selected by STORE_DRIVER.
type stores struct {
	campaigns port.CampaignStore
	metrics   port.MetricStore
	events    port.EventRecorder
	close     func()
}

// main loads configuration, builds the selected stores and the optional
// spotlight board, then serves the HTTP API until SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		}
		os.Exit(exitCode)
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("store initialisation error", slog.Any("error", err))
		return
	}
	defer st.close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, st.campaigns, st.metrics, port.SystemClock); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo campaigns seeded")
		}
	}

	opts := []usecase.Option{usecase.WithLogger(logger)}

	board, closeBoard, err := openSpotlights(ctx, cfg, logger)
	if err != nil {
		logger.Error("spotlight board error", slog.Any("error", err))
		return
	}
	defer closeBoard()
	if board != nil {
		opts = append(opts, usecase.WithSpotlights(board))
	}

	registry := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, usecase.WithMetrics(metrics.New(registry, cfg.Metrics.Namespace)))
	}

	svc := usecase.NewCampaignUseCase(st.campaigns, st.metrics, st.events, opts...)

	handler := httpadapter.NewHandler(svc, logger)
	if cfg.Metrics.Enabled {
		handler.Mount(cfg.Metrics.Path, metrics.Handler(registry))
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)), slog.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

func openStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (stores, error) {
	if cfg.Store.Driver == configs.DriverMemory {
		return stores{
			campaigns: memory.NewCampaignStore(port.SystemClock),
			metrics:   memory.NewMetricStore(port.SystemClock),
			events:    memory.NewEventRecorder(),
			close:     func() {},
		}, nil
	}

	if cfg.Psql.RunMigrations {
		previous, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return stores{}, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied",
			slog.Uint64("from", uint64(previous)), slog.Uint64("to", uint64(migrations.Version)))
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return stores{}, err
	}
	return stores{
		campaigns: postgres.NewCampaignStore(pool),
		metrics:   postgres.NewMetricStore(pool),
		events:    postgres.NewEventRecorder(pool),
		close:     pool.Close,
	}, nil
}

// openSpotlights returns the Redis board when enabled. The memory driver
// falls back to an in-process board; postgres deployments without Redis
// serve feeds without spotlights.
func openSpotlights(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.SpotlightBoard, func(), error) {
	if cfg.Redis.Enabled {
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("spotlight board connected", slog.String("key", cfg.Redis.SpotlightKey))
		return redisadapter.NewSpotlightBoard(client, cfg.Redis.SpotlightKey), func() { _ = client.Close() }, nil
	}
	if cfg.Store.Driver == configs.DriverMemory {
		return memory.NewSpotlightBoard(), func() {}, nil
	}
	return nil, func() {}, nil
}
