// Package server wires the diary backend together: configuration, logging,
// telemetry, storage, the entry service and the REST endpoint. It handles
// graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/diary/internal/logging"
	"github.com/dmitrijs2005/diary/internal/observability"
	"github.com/dmitrijs2005/diary/internal/server/config"
	"github.com/dmitrijs2005/diary/internal/server/httpserver"
	"github.com/dmitrijs2005/diary/internal/server/services"
	"github.com/dmitrijs2005/diary/internal/server/storage"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	store        *storage.Store
	telemetry    *observability.Provider
	entryService *services.EntryService
}

// NewApp opens storage (running migrations) and sets up telemetry. Logs go
// to w in the configured format.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	logger, err := logging.New(c.LogFormat, c.LogLevel, w)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	otelCfg := observability.DefaultConfig(c.ServiceName)
	otelCfg.TracingEnabled = c.TracingEnabled
	otelCfg.MetricsEnabled = c.MetricsEnabled
	otelCfg.OTLPEndpoint = c.OTLPEndpoint
	telemetry, err := observability.Init(ctx, otelCfg)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}

	store, err := storage.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		_ = telemetry.Shutdown(ctx)
		return nil, fmt.Errorf("db init error: %w", err)
	}

	logger.Info(ctx, "storage ready", "driver", c.DatabaseDriver)

	es := services.NewEntryService(store.Conn(), store.Repos, logger)

	return &App{config: c, logger: logger, store: store, telemetry: telemetry, entryService: es}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpserver.NewServer(app.config.EndpointAddrHTTP, app.entryService, app.store, app.logger,
		app.telemetry.Tracer, app.telemetry.Meter, app.config.ServiceName)

	if err := s.Run(ctx, app.config.ShutdownTimeout); err != nil {
		app.logger.Error(ctx, "http server error", "error", err)
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases storage and flushes telemetry.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close()
}

func (app *App) close() {
	ctx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	if err := app.telemetry.Shutdown(ctx); err != nil {
		app.logger.Error(ctx, "telemetry shutdown error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
