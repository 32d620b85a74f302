package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, test := range tests {
		if got := ParseLogLevel(test.input); got != test.expected {
			t.Errorf("ParseLogLevel(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "component", "cart")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "component=cart") {
		t.Errorf("Expected warn message with attributes, got %q", out)
	}
}
