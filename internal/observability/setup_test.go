package observability

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestSetupDisabledReturnsNoopShutdown(t *testing.T) {
	shutdown, err := Setup(context.Background(), Settings{ServiceName: "calculator"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected shutdown function")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	oldLogger := Logger
	t.Cleanup(func() { Logger = oldLogger })

	if err := InitLogger("chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if Logger != oldLogger {
		t.Fatal("expected logger to be left unchanged")
	}

	if err := InitLogger("debug"); err != nil {
		t.Fatalf("init logger: %v", err)
	}
	if !Logger.Core().Enabled(zap.DebugLevel) {
		t.Fatal("expected debug level to be enabled")
	}
}
