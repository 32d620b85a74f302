package config

import (
	"io"
	"log/slog"
	"strings"
)

// LogLevelEnv names the environment variable holding the log level
const LogLevelEnv = "STOREFRONT_LOG_LEVEL"

// ParseLogLevel maps debug, info, warn and error to slog levels. Anything
// else is info.
func ParseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// NewLogger creates a text logger writing to w at level
func NewLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLogLevel(level)}))
}
