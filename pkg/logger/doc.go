// Package logger builds slog loggers with context extraction and optional
// Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{Level: "debug", Format: "text"})
//	log.Info("country dataset loaded", "locale", "de")
//
// # Context Extractors
//
// Extractors add request-scoped values to every record logged with a
// context:
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(cfg, requestID)
//	log.InfoContext(ctx, "request handled") // includes request_id
//
// # Sentry
//
// When Config.Sentry.DSN is set, records are sent to both the output and
// Sentry. Errors create Sentry issues; warnings are stored as Sentry logs
// unless MinLevel is error. Without a DSN, or if the SDK fails to
// initialise, only the output handler is used. Call Flush before the
// process exits so buffered events are delivered.
//
// # Configuration
//
// Config carries env tags for github.com/caarlos0/env:
//
//	LOG_LEVEL=debug LOG_FORMAT=text SENTRY_DSN=https://... ./countryd
//
// # Testing
//
// NewNope returns a logger that discards everything. It is also the default
// of every option that takes a logger in this module.
package logger
