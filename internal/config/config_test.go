package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected addr %q, got %q", ":8080", cfg.HTTPAddr)
	}
	if cfg.Storage != StorageSQLite {
		t.Fatalf("expected storage %q, got %q", StorageSQLite, cfg.Storage)
	}
	if cfg.SQLitePath != "calculator.db" {
		t.Fatalf("expected sqlite path %q, got %q", "calculator.db", cfg.SQLitePath)
	}
	if cfg.OTelEnabled {
		t.Fatal("expected telemetry to be disabled by default")
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected shutdown timeout 5s, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CALCULATOR_HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("CALCULATOR_STORAGE", "memory")
	t.Setenv("CALCULATOR_OTEL_ENABLED", "true")
	t.Setenv("CALCULATOR_SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("OTEL_SERVICE_NAME", "widget")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTPAddr != "127.0.0.1:9090" {
		t.Fatalf("expected addr %q, got %q", "127.0.0.1:9090", cfg.HTTPAddr)
	}
	if cfg.Storage != StorageMemory {
		t.Fatalf("expected storage %q, got %q", StorageMemory, cfg.Storage)
	}
	if !cfg.OTelEnabled {
		t.Fatal("expected telemetry to be enabled")
	}
	if cfg.ShutdownTimeout != 2*time.Second {
		t.Fatalf("expected shutdown timeout 2s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.ServiceName != "widget" {
		t.Fatalf("expected service name %q, got %q", "widget", cfg.ServiceName)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown storage", env: map[string]string{"CALCULATOR_STORAGE": "redis"}},
		{name: "empty sqlite path", env: map[string]string{"CALCULATOR_SQLITE_PATH": " "}},
		{name: "bad duration", env: map[string]string{"CALCULATOR_SHUTDOWN_TIMEOUT": "soon"}},
		{name: "zero timeout", env: map[string]string{"CALCULATOR_SHUTDOWN_TIMEOUT": "0s"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
