package pipeconf

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quantrail/pipeconf/pkg/pipeconf/jsonmap"
)

// FromFile reads path and builds a Config from its contents, detecting the
// format by extension: ".yaml" and ".yml" are parsed as YAML, everything
// else (including the conventional "config.json") as JSON.
//
// Returns *OpenError when the file cannot be read, *ParseError when the
// contents are not a well-formed document, and *SchemaError when a
// recognized key holds a value of the wrong shape.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return FromJSON(data)
	}
}

// FromString builds a Config from an in-memory JSON document. Useful for
// tests, injected configuration, and dynamic overrides without file I/O.
func FromString(text string) (*Config, error) {
	return FromJSON([]byte(text))
}

// FromJSON builds a Config from JSON data.
func FromJSON(data []byte) (*Config, error) {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		perr := &ParseError{Format: "json", Err: err}
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			perr.Offset = syn.Offset
		}
		return nil, perr
	}
	return build(jsonmap.New(root))
}

// FromYAML builds a Config from YAML data. The document must decode to a
// mapping at the root, mirroring the JSON object requirement.
func FromYAML(data []byte) (*Config, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Format: "yaml", Err: err}
	}
	return build(jsonmap.New(root))
}
