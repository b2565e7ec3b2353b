package pipeconf

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/quantrail/pipeconf/pkg/pipeconf/observability"
)

// Loader wraps the pure load functions with structured logging, metrics, and
// tracing. Each load is tagged with a fresh load id so that log lines, span
// attributes, and downstream pipeline logs can be correlated.
//
// A Loader holds no state between calls beyond its observability hooks;
// loads are independent and safe to run concurrently.
type Loader struct {
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for load events. Default: no logging.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Default: no metrics.
//
// Example:
//
//	loader := pipeconf.New(pipeconf.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(l *Loader) {
		if m != nil {
			l.metrics = m
		}
	}
}

// WithSpans sets the span manager. Default: no tracing.
func WithSpans(s observability.SpanManager) Option {
	return func(l *Loader) {
		if s != nil {
			l.spans = s
		}
	}
}

// New creates a Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile loads a configuration file; the result and error semantics are
// those of FromFile.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Config, error) {
	return l.load(ctx, path, func() (*Config, error) {
		return FromFile(path)
	})
}

// LoadString loads an in-memory JSON document; the result and error
// semantics are those of FromString.
func (l *Loader) LoadString(ctx context.Context, text string) (*Config, error) {
	return l.load(ctx, "string", func() (*Config, error) {
		return FromString(text)
	})
}

func (l *Loader) load(ctx context.Context, source string, fn func() (*Config, error)) (*Config, error) {
	loadID := uuid.NewString()
	start := time.Now()

	ctx, span := l.spans.StartLoadSpan(ctx, source, loadID)
	observability.LogLoadStart(l.logger, loadID, source)

	cfg, err := fn()
	elapsed := time.Since(start)

	l.metrics.RecordLoad(ctx, source, elapsed, err)
	if err != nil {
		observability.LogLoadError(l.logger, loadID, err, float64(elapsed.Milliseconds()))
		l.spans.EndSpanWithError(span, err)
		return nil, err
	}

	sections := cfg.Sections()
	l.metrics.RecordSections(ctx, source, sections)
	l.spans.AddSpanEvent(ctx, "config.built",
		attribute.Int("config.sections", sections),
	)
	observability.LogLoadComplete(l.logger, loadID, float64(elapsed.Milliseconds()), sections)
	l.spans.EndSpanWithError(span, nil)
	return cfg, nil
}
