// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/conductorhq/conductor/internal/adapters/http"
	"github.com/conductorhq/conductor/internal/adapters/http/handlers"
	"github.com/conductorhq/conductor/internal/adapters/http/middleware"

	"github.com/conductorhq/conductor/internal/adapters/clients/resolver"
	"github.com/conductorhq/conductor/internal/adapters/clients/services"
	"github.com/conductorhq/conductor/internal/adapters/storage/sqlite"
	"github.com/conductorhq/conductor/internal/app"
	"github.com/conductorhq/conductor/internal/app/registry"
	"github.com/conductorhq/conductor/internal/platform/config"
	"github.com/conductorhq/conductor/internal/platform/health"
	"github.com/conductorhq/conductor/internal/platform/httpclient"
	"github.com/conductorhq/conductor/internal/platform/logging"
	"github.com/conductorhq/conductor/internal/platform/telemetry"
	"github.com/conductorhq/conductor/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired: the durable store
	// and every downstream HTTP client.
	reg := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[*sqlite.Store](injector)
	clients := do.MustInvoke[*clientSet](injector)
	reg.Register(store)
	for _, c := range clients.all() {
		reg.Register(c)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Release background caches and the store.
	do.MustInvoke[*app.AccountService](injector).Close()
	do.MustInvoke[*app.CredentialManager](injector).Close()
	if err := store.Close(); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// clientSet holds one outbound HTTP client per downstream. Each carries its
// own circuit breaker so one misbehaving provider cannot trip the others.
type clientSet struct {
	slack  *httpclient.Client
	jira   *httpclient.Client
	github *httpclient.Client
	s3     *httpclient.Client
	oauth  *httpclient.Client
}

func (c *clientSet) all() []*httpclient.Client {
	return []*httpclient.Client{c.slack, c.jira, c.github, c.s3, c.oauth}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*clientSet, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return &clientSet{
			slack:  httpclient.New(&cfg.Client, "slack", cfg.Services.Slack.BaseURL, metrics, logger),
			jira:   httpclient.New(&cfg.Client, "jira", cfg.Services.Jira.BaseURL, metrics, logger),
			github: httpclient.New(&cfg.Client, "github", cfg.Services.GitHub.BaseURL, metrics, logger),
			s3:     httpclient.New(&cfg.Client, "s3", cfg.Services.S3.BaseURL, metrics, logger),
			// Token endpoints are absolute provider URLs, so the OAuth
			// client has no base URL.
			oauth: httpclient.New(&cfg.Client, "oauth", "", metrics, logger),
		}, nil
	})

	do.Provide(injector, func(_ do.Injector) (*sqlite.Store, error) {
		return sqlite.Open(&cfg.Store)
	})

	do.Provide(injector, func(i do.Injector) (*app.AccountService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewAccountService(store, cfg.Auth.SessionTTL, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.CredentialManager, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		clients := do.MustInvoke[*clientSet](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewCredentialManager(store, clients.oauth, &cfg.Services, cfg.Auth.HandshakeTTL, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AutomationService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		manager := do.MustInvoke[*app.CredentialManager](i)
		clients := do.MustInvoke[*clientSet](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		catalog, err := registry.Default()
		if err != nil {
			return nil, fmt.Errorf("building capability catalog: %w", err)
		}

		adapters := []ports.ServiceAdapter{
			services.NewSlack(clients.slack, logger),
			services.NewJira(clients.jira, logger),
			services.NewGitHub(clients.github, logger),
			services.NewS3(clients.s3, &cfg.Services.S3, logger),
		}

		return app.NewAutomationService(
			store,
			resolver.New(&cfg.Resolver, logger),
			catalog,
			manager,
			adapters,
			metrics,
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		accounts := do.MustInvoke[*app.AccountService](i)
		manager := do.MustInvoke[*app.CredentialManager](i)
		automations := do.MustInvoke[ports.AutomationService](i)
		reg := do.MustInvoke[ports.HealthRegistry](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(
			handlers.NewAutomationHandler(automations),
			handlers.NewConnectionHandler(manager),
			handlers.NewAccountHandler(accounts),
			handlers.NewHealthHandler(reg),
			middleware.SessionAuth(accounts),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
