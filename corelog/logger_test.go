package corelog

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewLoggerWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, InfoLevel)

	logger.Info("hello from the validation core")

	if !strings.Contains(buf.String(), "hello from the validation core") {
		t.Fatalf("logger output = %q, want it to contain the logged message", buf.String())
	}
}

func TestNewLoggerRespectsMinimumLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, WarnLevel)

	logger.Debug("debug message below the configured level")

	if strings.Contains(buf.String(), "debug message below the configured level") {
		t.Fatal("a Debug call should be suppressed when the logger's minimum level is Warn")
	}
}

func TestForContextAddsProperty(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, InfoLevel).ForContext("component", "timestamp")

	logger.Info("contextual message")

	if !strings.Contains(buf.String(), "contextual message") {
		t.Fatalf("logger output = %q, want it to contain the logged message", buf.String())
	}
}

func TestLoggerContextVariants(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, DebugLevel)
	ctx := context.Background()

	logger.DebugContext(ctx, "debug")
	logger.InfoContext(ctx, "info")
	logger.WarnContext(ctx, "warn")
	logger.ErrorContext(ctx, "error")

	out := buf.String()
	for _, want := range []string{"debug", "info", "warn", "error"} {
		if !strings.Contains(out, want) {
			t.Fatalf("logger output missing %q message; got %q", want, out)
		}
	}
}

func TestNullLoggerDiscardsEverything(t *testing.T) {
	logger := NewNull()
	// None of these should panic; there is no output to assert on.
	logger.Debug("x")
	logger.Info("x")
	logger.Warn("x")
	logger.Error("x")
	logger.DebugContext(context.Background(), "x")
	if got := logger.ForContext("k", "v"); got == nil {
		t.Fatal("ForContext on the null logger should still return a usable Logger")
	}
}

func TestNewDefaultReturnsUsableLogger(t *testing.T) {
	if NewDefault() == nil {
		t.Fatal("NewDefault should never return nil")
	}
}
