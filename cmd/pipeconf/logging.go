package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/quantrail/pipeconf/pkg/pipeconf"
	"github.com/quantrail/pipeconf/pkg/pipeconf/observability"
)

// newLoader builds the instrumented loader the CLI uses. Logging goes to
// stderr so the summary on stdout stays machine-consumable.
func newLoader() *pipeconf.Loader {
	return pipeconf.New(
		pipeconf.WithLogger(slog.Default()),
		pipeconf.WithMetrics(observability.NewMetricsRecorder()),
	)
}

func setupLogging() {
	level := parseLevel(logLevel)

	var h slog.Handler
	if jsonLog {
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	} else {
		h = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05.000",
		})
	}

	slog.SetDefault(slog.New(h))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
