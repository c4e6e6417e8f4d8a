package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestNewRequestIDReturnsUUID(t *testing.T) {
	id := NewRequestID()
	if id == "" {
		t.Fatal("expected non-empty request id")
	}

	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected valid UUID, got %q: %v", id, err)
	}
}

func TestRequestIDContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	want := "abc-123"

	ctx = ContextWithRequestID(ctx, want)
	got := RequestIDFromContext(ctx)

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRequestIDFromContextWhenMissingOrWrongType(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		got := RequestIDFromContext(context.Background())
		if got != "" {
			t.Fatalf("expected empty string, got %q", got)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), RequestIDKey, 42)
		got := RequestIDFromContext(ctx)
		if got != "" {
			t.Fatalf("expected empty string, got %q", got)
		}
	})
}

func TestRequestIDFromRequest(t *testing.T) {
	inbound := uuid.New().String()

	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{name: "no header", header: "", reuse: false},
		{name: "valid uuid", header: inbound, reuse: true},
		{name: "not a uuid", header: "client-supplied", reuse: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/calculator", nil)
			if tc.header != "" {
				r.Header.Set(RequestIDHeader, tc.header)
			}

			got := requestIDFromRequest(r)
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("expected valid UUID, got %q: %v", got, err)
			}
			if reused := got == tc.header; reused != tc.reuse {
				t.Fatalf("expected reuse %t, got id %q for header %q", tc.reuse, got, tc.header)
			}
		})
	}
}
