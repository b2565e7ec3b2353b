package jsonmap

import (
	"fmt"
	"sort"
)

// Map wraps a decoded JSON object (map[string]any) for typed field access.
//
// Every accessor distinguishes two cases:
//   - the key is ABSENT: the caller's default is returned, no error;
//   - the key is PRESENT but holds a value of the wrong type: a *TypeError
//     is returned and the default is NOT applied.
//
// This mirrors how the pipeline treats its configuration files: a missing
// knob means "use the default", a malformed knob is an operator mistake that
// must surface as an error rather than be silently papered over.
type Map struct {
	data map[string]any
}

// New creates a Map from the given decoded object.
// If data is nil, an empty Map is returned.
func New(data map[string]any) Map {
	if data == nil {
		data = make(map[string]any)
	}
	return Map{data: data}
}

// TypeError reports a key that was present with a value of the wrong type.
type TypeError struct {
	// Key is the offending field name.
	Key string
	// Want is the expected JSON shape ("string", "bool", "object", ...).
	Want string
	// Got is the value actually found.
	Got any
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("key %q: expected %s, got %T", e.Key, e.Want, e.Got)
}

// Has returns true if the key exists in the map.
func (m Map) Has(key string) bool {
	_, ok := m.data[key]
	return ok
}

// Keys returns all keys in lexical order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (m Map) Raw() map[string]any {
	return m.data
}

// Len returns the number of keys in the map.
func (m Map) Len() int {
	return len(m.data)
}

// String returns the string value for key, or defaultVal if the key is absent.
func (m Map) String(key, defaultVal string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return defaultVal, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Key: key, Want: "string", Got: v}
	}
	return s, nil
}

// Bool returns the boolean value for key, or defaultVal if the key is absent.
func (m Map) Bool(key string, defaultVal bool) (bool, error) {
	v, ok := m.data[key]
	if !ok {
		return defaultVal, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Key: key, Want: "bool", Got: v}
	}
	return b, nil
}

// Int returns the integer value for key, or defaultVal if the key is absent.
//
// Accepts any JSON number; fractional values are truncated toward zero,
// matching how the pipeline's original configs carried occasional float
// literals for integer knobs.
func (m Map) Int(key string, defaultVal int) (int, error) {
	v, ok := m.data[key]
	if !ok {
		return defaultVal, nil
	}
	n, ok := asInt(v)
	if !ok {
		return 0, &TypeError{Key: key, Want: "number", Got: v}
	}
	return n, nil
}

// Float returns the float64 value for key, or defaultVal if the key is absent.
func (m Map) Float(key string, defaultVal float64) (float64, error) {
	v, ok := m.data[key]
	if !ok {
		return defaultVal, nil
	}
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	}
	return 0, &TypeError{Key: key, Want: "number", Got: v}
}

// StringSlice returns the string slice for key, or defaultVal if the key is
// absent. Every element must be a string.
func (m Map) StringSlice(key string, defaultVal []string) ([]string, error) {
	v, ok := m.data[key]
	if !ok {
		return defaultVal, nil
	}
	switch val := v.(type) {
	case []string:
		return val, nil
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, &TypeError{Key: key, Want: "array of strings", Got: item}
			}
			result = append(result, s)
		}
		return result, nil
	}
	return nil, &TypeError{Key: key, Want: "array of strings", Got: v}
}

// IntSlice returns the integer slice for key, or nil if the key is absent.
// Every element must be a JSON number; fractional values are truncated.
func (m Map) IntSlice(key string) ([]int, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	switch val := v.(type) {
	case []int:
		return val, nil
	case []any:
		result := make([]int, 0, len(val))
		for _, item := range val {
			n, ok := asInt(item)
			if !ok {
				return nil, &TypeError{Key: key, Want: "array of numbers", Got: item}
			}
			result = append(result, n)
		}
		return result, nil
	}
	return nil, &TypeError{Key: key, Want: "array of numbers", Got: v}
}

// StringMap returns the one-level string-to-string object for key.
//
// An absent key or a present non-object value yields (nil, nil); the callers
// that use this shape treat a malformed object the same as a missing one.
// Values inside the object must be strings.
func (m Map) StringMap(key string) (map[string]string, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	obj, ok := toObject(v)
	if !ok {
		return nil, nil
	}
	return New(obj).StringValues()
}

// StringValues converts the whole map into map[string]string.
// Every value must be a string.
func (m Map) StringValues() (map[string]string, error) {
	result := make(map[string]string, len(m.data))
	for k, v := range m.data {
		s, ok := v.(string)
		if !ok {
			return nil, &TypeError{Key: k, Want: "string", Got: v}
		}
		result[k] = s
	}
	return result, nil
}

// Section returns the nested object for key.
//
// Returns (zero, false, nil) when the key is absent, (sub, true, nil) when it
// holds an object, and a *TypeError when it is present with any other shape.
func (m Map) Section(key string) (Map, bool, error) {
	v, ok := m.data[key]
	if !ok {
		return Map{}, false, nil
	}
	obj, ok := toObject(v)
	if !ok {
		return Map{}, false, &TypeError{Key: key, Want: "object", Got: v}
	}
	return New(obj), true, nil
}

// Object returns the nested object for key, treating a present non-object
// value the same as an absent key. Use Section when a wrong shape must fail.
func (m Map) Object(key string) (Map, bool) {
	v, ok := m.data[key]
	if !ok {
		return Map{}, false
	}
	obj, ok := toObject(v)
	if !ok {
		return Map{}, false
	}
	return New(obj), true
}

// asInt converts a decoded JSON number to int, truncating fractions.
func asInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case uint64:
		return int(val), true
	case float64:
		return int(val), true
	}
	return 0, false
}

// toObject normalizes the decoded object forms produced by encoding/json
// (map[string]any) and yaml.v3 (map[string]any since v3, but guard anyway).
func toObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}
