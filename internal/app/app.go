package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/patchbind/core/binder"
	"github.com/dmitrymomot/patchbind/core/handler"
	"github.com/dmitrymomot/patchbind/core/health"
	"github.com/dmitrymomot/patchbind/core/logger"
	"github.com/dmitrymomot/patchbind/core/response"
	"github.com/dmitrymomot/patchbind/core/server"
	"github.com/dmitrymomot/patchbind/integration/database/redis"
	"github.com/dmitrymomot/patchbind/internal/books"
	"github.com/dmitrymomot/patchbind/internal/metrics"
	"github.com/dmitrymomot/patchbind/middleware"
)

// ErrUnknownStoreDriver is returned for a STORE_DRIVER other than memory or redis.
var ErrUnknownStoreDriver = errors.New("unknown store driver")

// App wires the book service, its HTTP surface and its dependencies.
type App struct {
	config   Config
	logger   *slog.Logger
	store    books.Store
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	server   *server.Server

	checks  []func(context.Context) error
	closers []func() error
}

type Option func(*App) error

// WithLogger replaces the logger built from Config.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		a.logger = log
		return nil
	}
}

// WithStore replaces the store selected by Config.StoreDriver.
func WithStore(store books.Store) Option {
	return func(a *App) error {
		if store == nil {
			return errors.New("store cannot be nil")
		}
		a.store = store
		return nil
	}
}

// New builds the application. With the redis driver it connects before returning.
func New(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	a := &App{config: cfg}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.logger == nil {
		a.logger = newLogger(cfg)
	}

	if a.store == nil {
		if err := a.openStore(ctx); err != nil {
			return nil, err
		}
	}

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.metrics = metrics.New(a.registry)

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(a.logger))
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.server = srv

	return a, nil
}

func newLogger(cfg Config) *slog.Logger {
	preset := logger.WithDevelopment(cfg.AppName)
	if cfg.Env == "production" {
		preset = logger.WithProduction(cfg.AppName)
	}
	return logger.New(preset, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
}

func (a *App) openStore(ctx context.Context) error {
	switch a.config.StoreDriver {
	case "", StoreMemory:
		a.store = books.NewMemoryStore()
	case StoreRedis:
		client, err := redis.Connect(ctx, a.config.Redis)
		if err != nil {
			return fmt.Errorf("open redis store: %w", err)
		}
		a.store = books.NewRedisStore(client)
		a.checks = append(a.checks, redis.Healthcheck(client))
		a.closers = append(a.closers, client.Close)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStoreDriver, a.config.StoreDriver)
	}

	a.logger.Info("store ready", logger.Component("app"), slog.String("driver", a.config.StoreDriver))
	return nil
}

// Handler returns the HTTP routes:
// the book endpoints, /livez, /healthz and /metrics.
func (a *App) Handler() http.Handler {
	bind := a.metrics.Instrument(binder.Request(binder.ChiRoute, binder.WithMaxBodySize(a.config.MaxBodySize)))
	newContext := handler.ContextFactoryWithBinder(binder.ChiRoute, bind)
	onError := response.JSONErrorHandler[*handler.BaseContext]

	mw := []handler.Middleware[*handler.BaseContext]{
		middleware.RequestID[*handler.BaseContext](),
		middleware.LoggingWithLogger[*handler.BaseContext](a.logger),
	}

	r := chi.NewRouter()

	svc := books.NewService(a.store, books.WithLogger(a.logger))
	books.NewHandler(svc).Routes(r, newContext, mw...)

	r.Get("/livez", handler.Adapt(health.Liveness[*handler.BaseContext], newContext, onError))
	r.Get("/healthz", handler.Adapt(health.Readiness[*handler.BaseContext](a.logger, a.checks...), newContext, onError))
	r.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx, a.Handler())()
}

// Close releases external connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}
