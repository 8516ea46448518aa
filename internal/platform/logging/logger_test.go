package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return FromZap(zap.New(core)), logs
}

func TestLogger_KeyValueFields(t *testing.T) {
	logger, logs := observed()

	logger.WarnContext(context.Background(), "detail request failed",
		"player_id", int64(42), "error", errors.New("boom"), "wait", 2*time.Second, "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got entries=%d want=1", len(entries))
	}
	got := entries[0].ContextMap()
	if got["player_id"] != int64(42) {
		t.Fatalf("got player_id=%v want=42", got["player_id"])
	}
	if got["error"] != "boom" {
		t.Fatalf("got error=%v want=boom", got["error"])
	}
	if got["wait"] != 2*time.Second {
		t.Fatalf("got wait=%v want=2s", got["wait"])
	}
	if v, ok := got["dangling"]; !ok || v != nil {
		t.Fatalf("got dangling=%v present=%v want nil present", v, ok)
	}
}

func TestLogger_RedactsCredentials(t *testing.T) {
	logger, logs := observed()

	logger.With("api_key", "sd-secret").Info("sportsdata request", "Password", "hunter2", "position", "QB")

	got := logs.All()[0].ContextMap()
	for _, key := range []string{"api_key", "Password"} {
		if got[key] != redacted {
			t.Fatalf("got %s=%v want=%s", key, got[key], redacted)
		}
	}
	if got["position"] != "QB" {
		t.Fatalf("got position=%v want=QB", got["position"])
	}
}

func TestLogger_TraceFields(t *testing.T) {
	logger, logs := observed()
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{2},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	logger.InfoContext(ctx, "catalog page served")

	got := logs.All()[0].ContextMap()
	if got["trace_id"] != sc.TraceID().String() {
		t.Fatalf("got trace_id=%v want=%s", got["trace_id"], sc.TraceID())
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	logger.With("k", "v").Named("board").Debug("still no panic")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}

func TestNewConsole_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(LevelWarn, &buf).Named("draft")

	logger.Info("hidden")
	logger.Warn("visible", "slot", "QB")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "QB") || !strings.Contains(out, "draft") {
		t.Fatalf("warn line missing: %q", out)
	}
	if logger.Enabled(LevelInfo) || !logger.Enabled(LevelError) {
		t.Fatalf("unexpected Enabled results for warn logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"WARNING": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", in, got, want)
		}
	}
}
