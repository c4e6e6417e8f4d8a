package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments. They are no-ops until InitMetrics runs.
var (
	keyCounter          metric.Int64Counter     = noop.Int64Counter{}
	keyHistogram        metric.Float64Histogram = noop.Float64Histogram{}
	evaluationCounter   metric.Int64Counter     = noop.Int64Counter{}
	errorCounter        metric.Int64Counter     = noop.Int64Counter{}
	divByZeroCounter    metric.Int64Counter     = noop.Int64Counter{}
	persistenceFailures metric.Int64Counter     = noop.Int64Counter{}
	resultGauge         metric.Float64Gauge     = noop.Float64Gauge{}
)

// InitMetrics registers the calculator's OTel instruments.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	return initMetrics(otel.Meter("calculator"))
}

func initMetrics(meter metric.Meter) error {
	var err error

	keyCounter, err = meter.Int64Counter("calculator.keys.total",
		metric.WithDescription("Total number of keypad presses handled"),
		metric.WithUnit("{key}"),
	)
	if err != nil {
		return fmt.Errorf("creating key counter: %w", err)
	}

	keyHistogram, err = meter.Float64Histogram("calculator.key.duration",
		metric.WithDescription("Duration of keypad presses in milliseconds, persistence included"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50),
	)
	if err != nil {
		return fmt.Errorf("creating key histogram: %w", err)
	}

	evaluationCounter, err = meter.Int64Counter("calculator.evaluations.total",
		metric.WithDescription("Total number of binary operations evaluated"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating evaluation counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Rejected calculator requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	divByZeroCounter, err = meter.Int64Counter("calculator.division_by_zero.total",
		metric.WithDescription("Evaluations that divided by zero and showed the error token"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating division by zero counter: %w", err)
	}

	persistenceFailures, err = meter.Int64Counter("calculator.persistence.failures.total",
		metric.WithDescription("Display loads and saves that failed"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return fmt.Errorf("creating persistence failure counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("The result of the last evaluated operation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	return nil
}
