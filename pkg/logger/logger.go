package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Output io.Writer    `env:"-"` // defaults to os.Stdout
	Level  string       `env:"LOG_LEVEL" envDefault:"info"`
	Format string       `env:"LOG_FORMAT" envDefault:"json"` // "json" or "text"
	Sentry SentryConfig
}

// New creates a logger from cfg. Records pass through the context
// extractors before reaching the output handler and, when a Sentry DSN is
// configured, Sentry.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	if sentryHandler, ok := newSentryHandler(cfg.Sentry, handler); ok {
		handler = newFanout(handler, sentryHandler)
	}

	return slog.New(NewLogHandlerDecorator(handler, extractors...))
}

// ParseLevel converts a level name ("debug", "info", "warn", "error", or
// offsets such as "warn+2") into a slog.Level. Unknown names yield info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
