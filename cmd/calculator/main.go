package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/server"

	"go.uber.org/zap"
)

func main() {

	ctx := context.Background()

	// Config
	if err := loadEnvFile(); err != nil {
		panic(err)
	}
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Tracing, metrics and optional OTLP logs
	telemetryShutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		panic(err)
	}
	defer telemetryShutdown(ctx)

	// Persistence
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		observability.Logger.Fatal("open store failed", zap.String("storage", cfg.Storage), zap.Error(err))
	}
	defer closeStore()

	// Engine, seeded from the last persisted display
	engine := calculator.NewEngine(ctx, store, calculator.WithLogger(observability.Logger.Named("engine")))

	// Router
	router := server.NewRouter(calculator.NewHandler(engine))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	display := engine.Display().String()

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("storage", cfg.Storage),
			zap.String("display", display),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv, cfg)
}

func waitForShutdown(srv *http.Server, cfg config.Config) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Warn("server shutdown", zap.Error(err))
	}
}
