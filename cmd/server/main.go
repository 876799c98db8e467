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
	"github.com/zoobzio/capitan"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/clients/vault"
	adapthttp "github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/app"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/app/transform"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/config"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/health"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/logging"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/retry"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
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

	logger := logging.New(cfg.Log, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	if checker, ok := do.MustInvoke[ports.KeyManager](injector).(ports.HealthChecker); ok {
		registry.Register(checker)
	}
	registry.Register(do.MustInvoke[*acl.EdiscoveryClient](injector))

	signals := transform.ObserveSignals(logger)

	logger.Info("transform service wired",
		slog.String("kms_backend", cfg.KMS.Backend),
		slog.Int("max_workers", cfg.Transform.MaxWorkers),
	)

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

	// Deliver queued transform signals before exiting.
	signals.Close()
	capitan.Shutdown()

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

const (
	kmsClientName        = acl.KMSServiceName
	ediscoveryClientName = "ediscovery-api"
)

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.ProvideNamed(injector, kmsClientName, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return acl.NewKMSHTTPClient(&cfg.KMS.Client, metrics, logger), nil
	})

	do.ProvideNamed(injector, ediscoveryClientName, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Ediscovery.Client, ediscoveryClientName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.KeyManager, error) {
		if cfg.KMS.Backend == config.KMSBackendVault {
			km, err := vault.NewKeyManager(cfg.KMS.Vault, logger)
			if err != nil {
				return nil, fmt.Errorf("creating vault key manager: %w", err)
			}
			return km, nil
		}
		client := do.MustInvokeNamed[*httpclient.Client](i, kmsClientName)
		return acl.NewKMSClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.EdiscoveryClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, ediscoveryClientName)
		return acl.NewEdiscoveryClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ReportTransformer, error) {
		km := do.MustInvoke[ports.KeyManager](i)
		lookup := do.MustInvoke[*acl.EdiscoveryClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewEdiscoveryService(km, lookup, logger,
			app.WithReportRetry(retry.FromConfig(cfg.Transform.Retry.ReportContent)),
			app.WithReportMaxWorkers(cfg.Transform.MaxWorkers),
			app.WithReportMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ConversationTransformer, error) {
		km := do.MustInvoke[ports.KeyManager](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewConversationService(km, logger,
			app.WithConversationRetry(retry.FromConfig(cfg.Transform.Retry.Conversation)),
			app.WithConversationMaxWorkers(cfg.Transform.MaxWorkers),
			app.WithConversationMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.KMS.Client.Timeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ReportHandler, error) {
		svc := do.MustInvoke[ports.ReportTransformer](i)
		return handlers.NewReportHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ConversationHandler, error) {
		svc := do.MustInvoke[ports.ConversationTransformer](i)
		return handlers.NewConversationHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		reportH := do.MustInvoke[*handlers.ReportHandler](i)
		conversationH := do.MustInvoke[*handlers.ConversationHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(reportH, conversationH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(requestTimeout(cfg.Server)),
			middleware.AppContext(),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// requestTimeout falls back to the write timeout when no request timeout is
// configured.
func requestTimeout(cfg config.ServerConfig) time.Duration {
	if cfg.RequestTimeout > 0 {
		return cfg.RequestTimeout
	}
	return cfg.WriteTimeout
}
