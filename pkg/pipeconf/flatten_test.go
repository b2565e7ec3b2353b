package pipeconf_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantrail/pipeconf/pkg/pipeconf"
)

func TestFlatMap_EmptyConfig(t *testing.T) {
	cfg := mustLoad(t, `{}`)
	assert.Empty(t, cfg.FlatMap())
}

func TestFlatMap_ScalarsAndSlices(t *testing.T) {
	cfg := mustLoad(t, `{
		"data_paths": {"export_root": "/out"},
		"data_scope": {"underlyings": ["NIFTY", "BANKNIFTY"], "expiry_limit": 3},
		"acceleration": {"enable_gpu": true}
	}`)

	flat := cfg.FlatMap()

	assert.Equal(t, "/out", flat["data_paths.export_root"])
	assert.Equal(t, "/out", flat["data_paths.log_root"])
	assert.Equal(t, "NIFTY,BANKNIFTY", flat["data_scope.underlyings"])
	assert.Equal(t, "3", flat["data_scope.expiry_limit"])
	assert.Equal(t, "true", flat["acceleration.enable_gpu"])

	// absent sections contribute nothing
	for key := range flat {
		assert.False(t, strings.HasPrefix(key, "execution."))
	}
}

func TestFlatMap_NestedMaps(t *testing.T) {
	cfg := mustLoad(t, `{
		"symbol_registry": {"NIFTY": {"spot": "NIFTY 50"}},
		"market_constants": {
			"calendar_month_map": {"JAN": "F"},
			"expiry_cutoff_time": [15, 30, 0],
			"trading_schedule": {"sessions_per_year": 252}
		}
	}`)

	flat := cfg.FlatMap()

	assert.Equal(t, "NIFTY 50", flat["symbol_registry.NIFTY.spot"])
	assert.Equal(t, "F", flat["market_constants.calendar_month_map.JAN"])
	assert.Equal(t, "15,30,0", flat["market_constants.expiry_cutoff_time"])
	assert.Equal(t, "252", flat["market_constants.trading_schedule.sessions_per_year"])
}

func TestFlatMap_FullFixtureCoversExecution(t *testing.T) {
	cfg, err := pipeconf.FromFile(filepath.Join("testdata", "config.json"))
	require.NoError(t, err)

	flat := cfg.FlatMap()

	assert.Equal(t, "16", flat["execution.global_worker_cap"])
	assert.Equal(t, "false", flat["execution.cache_monthly_expiries"])
	assert.Equal(t, "500000", flat["execution.tte_block_size"])

	executionKeys := 0
	for key := range flat {
		if strings.HasPrefix(key, "execution.") {
			executionKeys++
		}
	}
	assert.Equal(t, 41, executionKeys)
}
