package calculator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-chi-calculator/internal/testutil"

	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// collectSums registers the calculator instruments on a manual reader and
// returns a function that sums every counter by metric name.
func collectSums(t *testing.T) func() map[string]int64 {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	if err := initMetrics(provider.Meter("calculator")); err != nil {
		t.Fatalf("init metrics: %v", err)
	}
	t.Cleanup(func() {
		_ = initMetrics(noop.NewMeterProvider().Meter("calculator"))
		_ = provider.Shutdown(context.Background())
	})

	return func() map[string]int64 {
		var rm metricdata.ResourceMetrics
		if err := reader.Collect(context.Background(), &rm); err != nil {
			t.Fatalf("collect: %v", err)
		}
		sums := make(map[string]int64)
		for _, sm := range rm.ScopeMetrics {
			for _, m := range sm.Metrics {
				sum, ok := m.Data.(metricdata.Sum[int64])
				if !ok {
					continue
				}
				for _, dp := range sum.DataPoints {
					sums[m.Name] += dp.Value
				}
			}
		}
		return sums
	}
}

func TestDivisionByZeroHasItsOwnCounter(t *testing.T) {
	collect := collectSums(t)

	e := NewEngine(context.Background(), nil)
	press(t, e, "8", "/", "0", "=")
	press(t, e, "3", "+", "4", "=")

	sums := collect()
	if got := sums["calculator.division_by_zero.total"]; got != 1 {
		t.Fatalf("expected 1 division by zero, got %d", got)
	}
	if got := sums["calculator.errors.total"]; got != 0 {
		t.Fatalf("expected no request errors, got %d", got)
	}
	if got := sums["calculator.evaluations.total"]; got != 1 {
		t.Fatalf("expected 1 evaluation, got %d", got)
	}
}

func TestUnknownKeyCountsAsRequestError(t *testing.T) {
	collect := collectSums(t)

	h, _ := newTestRouter(t, nil)
	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodPost, "/calculator/keys/sqrt", nil), h)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

	sums := collect()
	if got := sums["calculator.errors.total"]; got != 1 {
		t.Fatalf("expected 1 request error, got %d", got)
	}
	if got := sums["calculator.division_by_zero.total"]; got != 0 {
		t.Fatalf("expected no division by zero, got %d", got)
	}
}
