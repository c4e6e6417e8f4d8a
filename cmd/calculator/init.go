package main

import (
	"context"
	"fmt"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/storage/memory"
	"go-chi-calculator/internal/storage/sqlite"
)

// initTelemetry starts the exporters selected by cfg and registers the
// calculator's metric instruments against the resulting provider.
func initTelemetry(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	shutdown, err := observability.Setup(ctx, observability.Settings{
		ServiceName: cfg.ServiceName,
		Enabled:     cfg.OTelEnabled,
		ExportLogs:  cfg.OTelLogs,
	})
	if err != nil {
		return nil, err
	}

	if err := calculator.InitMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	return shutdown, nil
}

// openStore returns the display store selected by cfg and a function that
// releases it.
func openStore(ctx context.Context, cfg config.Config) (calculator.Store, func() error, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return memory.New(), func() error { return nil }, nil
	case config.StorageSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage)
}
