package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records configuration-load metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordLoad records one load attempt with its source ("file" or
	// "string"), duration, and error status.
	RecordLoad(ctx context.Context, source string, duration time.Duration, err error)

	// RecordSections records how many sections a successful load produced.
	RecordSections(ctx context.Context, source string, count int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	loads       metric.Int64Counter
	loadLatency metric.Float64Histogram
	loadErrors  metric.Int64Counter
	sections    metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("pipeconf")

	loads, err := meter.Int64Counter("pipeconf.loads",
		metric.WithDescription("Number of configuration load attempts"),
	)
	if err != nil {
		return nil, err
	}

	loadLatency, err := meter.Float64Histogram("pipeconf.load.latency_ms",
		metric.WithDescription("Configuration load latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	loadErrors, err := meter.Int64Counter("pipeconf.load.errors",
		metric.WithDescription("Number of failed configuration loads"),
	)
	if err != nil {
		return nil, err
	}

	sections, err := meter.Int64Histogram("pipeconf.load.sections",
		metric.WithDescription("Sections present per successful load"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		loads:       loads,
		loadLatency: loadLatency,
		loadErrors:  loadErrors,
		sections:    sections,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordLoad records one load attempt.
func (m *otelMetrics) RecordLoad(ctx context.Context, source string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("source", source),
	}

	m.loads.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.loadLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.loadErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordSections records the section count of a successful load.
func (m *otelMetrics) RecordSections(ctx context.Context, source string, count int) {
	attrs := []attribute.KeyValue{
		attribute.String("source", source),
	}
	m.sections.Record(ctx, int64(count), metric.WithAttributes(attrs...))
}
