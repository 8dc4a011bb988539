package tutorbooking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/tutor-booking/internal/cache"
	"github.com/magabrotheeeer/tutor-booking/internal/config"
	"github.com/magabrotheeeer/tutor-booking/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tutor-booking/internal/lib/sl"
	"github.com/magabrotheeeer/tutor-booking/internal/metrics"
	"github.com/magabrotheeeer/tutor-booking/internal/migrations"
	"github.com/magabrotheeeer/tutor-booking/internal/services/booking"
	"github.com/magabrotheeeer/tutor-booking/internal/storage/mongodb"
	"github.com/magabrotheeeer/tutor-booking/internal/storage/postgresql"
)

const shutdownTimeout = 15 * time.Second

// Gateway — хранилище, выбранное конфигурацией.
type Gateway interface {
	booking.Repository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Cache — кеш сервиса с освобождением соединения.
type Cache interface {
	booking.Cache
	Close() error
}

type App struct {
	server *http.Server
	logger *slog.Logger
	db     Gateway
	cache  Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.tutorbooking.New"

	db, err := openGateway(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := openCache(ctx, cfg.RedisConnection, logger)
	if err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(reg)

	service := booking.NewService(db, c, collector, cfg.CacheTTL, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, service, db, collector, metrics.Handler(reg), middlewarectx.NewLimiter(cfg.RateLimit))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  c,
	}, nil
}

func openGateway(ctx context.Context, cfg config.Storage) (Gateway, error) {
	switch cfg.Driver {
	case config.DriverMongoDB:
		return mongodb.New(ctx, cfg)
	case config.DriverPostgres:
		s, err := postgresql.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err = migrations.Run(s.DB.DB); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func openCache(ctx context.Context, cfg config.RedisConnection, logger *slog.Logger) (Cache, error) {
	if cfg.Address == "" {
		logger.Info("redis address is empty, cache disabled")
		return cache.Nop{}, nil
	}
	return cache.InitServer(ctx, cfg)
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.release()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.release()
		return err
	}
}

func (a *App) release() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.db.Close(ctx); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close cache", sl.Err(err))
	}
}
