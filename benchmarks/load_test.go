package benchmarks

import (
	"os"
	"testing"

	"github.com/quantrail/pipeconf/pkg/pipeconf"
)

var fullDoc = mustRead("../pkg/pipeconf/testdata/config.json")

func mustRead(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	return data
}

// BenchmarkFromJSON_Full parses and builds the full twelve-section fixture.
func BenchmarkFromJSON_Full(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := pipeconf.FromJSON(fullDoc); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFromString_ScopeOnly builds a single-section document.
func BenchmarkFromString_ScopeOnly(b *testing.B) {
	doc := `{"data_scope": {"underlyings": ["NIFTY"], "date_from": "2023-01-01", "date_to": "2023-12-31"}}`
	for i := 0; i < b.N; i++ {
		if _, err := pipeconf.FromString(doc); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFlatMap projects the full fixture into the flat view.
func BenchmarkFlatMap(b *testing.B) {
	cfg, err := pipeconf.FromJSON(fullDoc)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.FlatMap()
	}
}
