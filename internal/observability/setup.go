package observability

import (
	"context"
	"errors"
)

// Settings selects which OTLP exporters Setup starts.
type Settings struct {
	ServiceName string
	Enabled     bool // traces and metrics
	ExportLogs  bool // logs, only when Enabled
}

// Setup starts the configured exporters and returns one shutdown function
// that flushes all of them. When telemetry is disabled it registers nothing
// and the shutdown function is a no-op.
func Setup(ctx context.Context, settings Settings) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if !settings.Enabled {
		return shutdown, nil
	}

	inits := []func(context.Context, string) (func(context.Context) error, error){
		InitTracing,
		InitMetrics,
	}
	if settings.ExportLogs {
		inits = append(inits, InitLogging)
	}

	for _, start := range inits {
		stop, err := start(ctx, settings.ServiceName)
		if err != nil {
			_ = shutdown(ctx)
			return nil, err
		}
		shutdowns = append(shutdowns, stop)
	}

	return shutdown, nil
}
