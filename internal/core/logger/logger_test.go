package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{" warn ", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"fatal", LogLevelFatal},
		{"info", LogLevelInfo},
		{"", LogLevelInfo},
		{"verbose", LogLevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func withLogger(t *testing.T, l Logger) {
	t.Helper()
	previous := globalLogger
	globalLogger = l
	t.Cleanup(func() { globalLogger = previous })
}

func TestStdoutLogger_WritesAttributesAndError(t *testing.T) {
	var buf bytes.Buffer
	withLogger(t, newStdoutLogger(&buf, "ecommerce", LogLevelDebug))

	Error(context.Background(), "product: create failed", errors.New("disk full"), map[string]any{"title": "Mug"})

	out := buf.String()
	for _, want := range []string{"level=ERROR", "product: create failed", "service=ecommerce", "title=Mug", `error="disk full"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestStdoutLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	withLogger(t, newStdoutLogger(&buf, "ecommerce", LogLevelWarn))

	Debug(context.Background(), "debug message", nil)
	Info(context.Background(), "info message", nil)
	Warn(context.Background(), "warn message", nil)

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Fatalf("expected debug and info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "warn message") {
		t.Fatalf("expected warn message, got %q", out)
	}
}

func TestFatal_Exits(t *testing.T) {
	var buf bytes.Buffer
	withLogger(t, newStdoutLogger(&buf, "ecommerce", LogLevelInfo))

	code := -1
	previousExit := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = previousExit })

	Fatal(context.Background(), "cannot start", errors.New("boom"), nil)

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "cannot start") {
		t.Fatalf("expected fatal message to be logged, got %q", buf.String())
	}
}

func TestNoopLogger(t *testing.T) {
	withLogger(t, &noopLogger{})

	Info(context.Background(), "dropped", nil)
	if err := Shutdown(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
