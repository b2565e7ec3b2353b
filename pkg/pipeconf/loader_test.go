package pipeconf_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/quantrail/pipeconf/pkg/pipeconf"
	"github.com/quantrail/pipeconf/pkg/pipeconf/observability"
)

func TestLoader_LoadFile(t *testing.T) {
	loader := pipeconf.New()

	cfg, err := loader.LoadFile(context.Background(), filepath.Join("testdata", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Sections())
}

func TestLoader_LoadString(t *testing.T) {
	loader := pipeconf.New()

	cfg, err := loader.LoadString(context.Background(), `{"export": {}}`)
	require.NoError(t, err)
	require.NotNil(t, cfg.Export)
	assert.Equal(t, "parquet", cfg.Export.FileFormat)
}

func TestLoader_ErrorsPassThrough(t *testing.T) {
	loader := pipeconf.New()

	_, err := loader.LoadString(context.Background(), `{`)
	var parseErr *pipeconf.ParseError
	require.ErrorAs(t, err, &parseErr)

	_, err = loader.LoadFile(context.Background(), "missing.json")
	var openErr *pipeconf.OpenError
	require.ErrorAs(t, err, &openErr)
}

func TestLoader_LogsLoadEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	loader := pipeconf.New(pipeconf.WithLogger(logger))

	_, err := loader.LoadString(context.Background(), `{"export": {}}`)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "config load starting")
	assert.Contains(t, out, "config load completed")
	assert.Contains(t, out, "load_id=")
	assert.Contains(t, out, "sections=1")

	buf.Reset()
	_, err = loader.LoadString(context.Background(), `{`)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "config load failed")
}

func TestLoader_RecordsMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	original := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	defer otel.SetMeterProvider(original)

	loader := pipeconf.New(pipeconf.WithMetrics(observability.NewMetricsRecorder()))

	_, err := loader.LoadString(context.Background(), `{"export": {}, "logger": {}}`)
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	assert.True(t, names["pipeconf.loads"])
	assert.True(t, names["pipeconf.load.latency_ms"])
	assert.True(t, names["pipeconf.load.sections"])
}
