package logger

import (
	"log/slog"
	"testing"
)

func TestLoggerInitialization(t *testing.T) {
	logger := Get()
	if logger == nil {
		t.Fatal("Expected logger to be initialized")
	}

	// Multiple calls return the same logger
	if logger != Get() {
		t.Error("Expected same logger instance on multiple calls")
	}
}

func TestLoggerFunctionsDoNotPanic(t *testing.T) {
	// Output cannot easily be captured, but none of these may panic.
	t.Run("Info", func(t *testing.T) {
		Info("validated document", "path", "request.xml")
	})

	t.Run("Warn", func(t *testing.T) {
		Warn("document rejected", "violations", 2)
	})

	t.Run("Error", func(t *testing.T) {
		Error("failed to read document", "error", "sample error")
	})

	t.Run("Debug", func(t *testing.T) {
		Debug("parsed element tree", "children", 2)
	})
}

func TestWith(t *testing.T) {
	withLogger := With("command", "validate")
	if withLogger == nil {
		t.Error("Expected With to return logger")
	}
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Setenv("LTRQ_LOG_LEVEL", tt.value)
		if got := levelFromEnv(); got != tt.want {
			t.Errorf("levelFromEnv() with %q = %v, want %v", tt.value, got, tt.want)
		}
	}
}
