package jsonmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantrail/pipeconf/pkg/pipeconf/jsonmap"
)

// TestNew verifies Map creation from maps.
func TestNew(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"nil map", nil},
		{"empty map", map[string]any{}},
		{"with values", map[string]any{"key": "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := jsonmap.New(tt.data)
			assert.NotNil(t, m.Raw())
		})
	}
}

// TestString verifies string extraction: default on absence, error on mismatch.
func TestString(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal string
		want       string
		wantErr    bool
	}{
		{"key exists", map[string]any{"root": "/data"}, "root", "def", "/data", false},
		{"key missing", map[string]any{"other": "x"}, "root", "def", "def", false},
		{"empty string kept", map[string]any{"root": ""}, "root", "def", "", false},
		{"wrong type number", map[string]any{"root": 123.0}, "root", "def", "", true},
		{"wrong type bool", map[string]any{"root": true}, "root", "def", "", true},
		{"nil map", nil, "root", "def", "def", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := jsonmap.New(tt.data)
			got, err := m.String(tt.key, tt.defaultVal)
			if tt.wantErr {
				var typeErr *jsonmap.TypeError
				require.ErrorAs(t, err, &typeErr)
				assert.Equal(t, tt.key, typeErr.Key)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestBool verifies boolean extraction.
func TestBool(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal bool
		want       bool
		wantErr    bool
	}{
		{"true kept", map[string]any{"flag": true}, "flag", false, true, false},
		{"false kept", map[string]any{"flag": false}, "flag", true, false, false},
		{"missing defaults true", map[string]any{}, "flag", true, true, false},
		{"missing defaults false", map[string]any{}, "flag", false, false, false},
		{"wrong type string", map[string]any{"flag": "true"}, "flag", false, false, true},
		{"wrong type number", map[string]any{"flag": 1.0}, "flag", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := jsonmap.New(tt.data)
			got, err := m.Bool(tt.key, tt.defaultVal)
			if tt.wantErr {
				var typeErr *jsonmap.TypeError
				require.ErrorAs(t, err, &typeErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestInt verifies integer extraction with number coercion.
func TestInt(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal int
		want       int
		wantErr    bool
	}{
		{"float64 whole", map[string]any{"cap": 8.0}, "cap", 10, 8, false},
		{"float64 fractional truncated", map[string]any{"cap": 375.5}, "cap", 0, 375, false},
		{"int direct", map[string]any{"cap": 8}, "cap", 10, 8, false},
		{"int64 direct", map[string]any{"cap": int64(8)}, "cap", 10, 8, false},
		{"missing defaults", map[string]any{}, "cap", 10, 10, false},
		{"negative kept", map[string]any{"cap": -2.0}, "cap", 10, -2, false},
		{"wrong type string", map[string]any{"cap": "8"}, "cap", 10, 0, true},
		{"wrong type bool", map[string]any{"cap": true}, "cap", 10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := jsonmap.New(tt.data)
			got, err := m.Int(tt.key, tt.defaultVal)
			if tt.wantErr {
				var typeErr *jsonmap.TypeError
				require.ErrorAs(t, err, &typeErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestStringSlice verifies string slice extraction.
func TestStringSlice(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]any
		key     string
		want    []string
		wantErr bool
	}{
		{"any slice of strings", map[string]any{"u": []any{"A", "B"}}, "u", []string{"A", "B"}, false},
		{"typed string slice", map[string]any{"u": []string{"A"}}, "u", []string{"A"}, false},
		{"empty slice", map[string]any{"u": []any{}}, "u", []string{}, false},
		{"missing returns default", map[string]any{}, "u", nil, false},
		{"mixed element types", map[string]any{"u": []any{"A", 1.0}}, "u", nil, true},
		{"not a slice", map[string]any{"u": "A"}, "u", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := jsonmap.New(tt.data)
			got, err := m.StringSlice(tt.key, nil)
			if tt.wantErr {
				var typeErr *jsonmap.TypeError
				require.ErrorAs(t, err, &typeErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestIntSlice verifies integer slice extraction.
func TestIntSlice(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]any
		key     string
		want    []int
		wantErr bool
	}{
		{"numbers", map[string]any{"t": []any{15.0, 30.0, 0.0}}, "t", []int{15, 30, 0}, false},
		{"fractional truncated", map[string]any{"t": []any{15.7}}, "t", []int{15}, false},
		{"missing returns nil", map[string]any{}, "t", nil, false},
		{"string element", map[string]any{"t": []any{"15"}}, "t", nil, true},
		{"not a slice", map[string]any{"t": 15.0}, "t", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := jsonmap.New(tt.data)
			got, err := m.IntSlice(tt.key)
			if tt.wantErr {
				var typeErr *jsonmap.TypeError
				require.ErrorAs(t, err, &typeErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestStringMap verifies lenient one-level object extraction.
func TestStringMap(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]any
		key     string
		want    map[string]string
		wantErr bool
	}{
		{
			"object of strings",
			map[string]any{"m": map[string]any{"JAN": "F", "FEB": "G"}},
			"m",
			map[string]string{"JAN": "F", "FEB": "G"},
			false,
		},
		{"missing returns nil", map[string]any{}, "m", nil, false},
		{"non-object returns nil", map[string]any{"m": "JAN"}, "m", nil, false},
		{"array returns nil", map[string]any{"m": []any{"JAN"}}, "m", nil, false},
		{"non-string value", map[string]any{"m": map[string]any{"JAN": 1.0}}, "m", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := jsonmap.New(tt.data)
			got, err := m.StringMap(tt.key)
			if tt.wantErr {
				var typeErr *jsonmap.TypeError
				require.ErrorAs(t, err, &typeErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestSection verifies strict nested object extraction.
func TestSection(t *testing.T) {
	t.Run("present object", func(t *testing.T) {
		m := jsonmap.New(map[string]any{"s": map[string]any{"k": "v"}})
		sub, ok, err := m.Section("s")
		require.NoError(t, err)
		require.True(t, ok)

		v, err := sub.String("k", "")
		require.NoError(t, err)
		assert.Equal(t, "v", v)
	})

	t.Run("absent key", func(t *testing.T) {
		m := jsonmap.New(map[string]any{})
		_, ok, err := m.Section("s")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("present non-object fails", func(t *testing.T) {
		m := jsonmap.New(map[string]any{"s": "scalar"})
		_, _, err := m.Section("s")
		var typeErr *jsonmap.TypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "s", typeErr.Key)
		assert.Equal(t, "object", typeErr.Want)
	})
}

// TestObject verifies the lenient object variant.
func TestObject(t *testing.T) {
	t.Run("present object", func(t *testing.T) {
		m := jsonmap.New(map[string]any{"s": map[string]any{}})
		_, ok := m.Object("s")
		assert.True(t, ok)
	})

	t.Run("non-object treated as absent", func(t *testing.T) {
		m := jsonmap.New(map[string]any{"s": 42.0})
		_, ok := m.Object("s")
		assert.False(t, ok)
	})
}

// TestStringValues verifies whole-map string conversion.
func TestStringValues(t *testing.T) {
	t.Run("all strings", func(t *testing.T) {
		m := jsonmap.New(map[string]any{"spot": "NIFTY 50", "futures": "NIFTY"})
		got, err := m.StringValues()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"spot": "NIFTY 50", "futures": "NIFTY"}, got)
	})

	t.Run("non-string value fails", func(t *testing.T) {
		m := jsonmap.New(map[string]any{"spot": 1.0})
		_, err := m.StringValues()
		var typeErr *jsonmap.TypeError
		require.ErrorAs(t, err, &typeErr)
	})
}

// TestKeysAndHas verifies key enumeration and presence checks.
func TestKeysAndHas(t *testing.T) {
	m := jsonmap.New(map[string]any{"b": 1.0, "a": 2.0, "c": 3.0})

	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("z"))
}
