// Package observability provides structured logging, metrics, and tracing
// hooks for configuration loads.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds load context to a logger.
// Returns a new logger with load_id and source fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "9f3c...", "config.json")
//	enriched.Info("building sections") // includes load_id, source
func EnrichLogger(logger *slog.Logger, loadID, source string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("load_id", loadID),
		slog.String("source", source),
	)
}

// LogLoadStart logs the start of a configuration load.
func LogLoadStart(logger *slog.Logger, loadID, source string) {
	if logger == nil {
		return
	}
	logger.Debug("config load starting",
		slog.String("load_id", loadID),
		slog.String("source", source),
	)
}

// LogLoadComplete logs a successful configuration load.
func LogLoadComplete(logger *slog.Logger, loadID string, durationMs float64, sections int) {
	if logger == nil {
		return
	}
	logger.Info("config load completed",
		slog.String("load_id", loadID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("sections", sections),
	)
}

// LogLoadError logs a failed configuration load.
func LogLoadError(logger *slog.Logger, loadID string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("config load failed",
		slog.String("load_id", loadID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... load ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
