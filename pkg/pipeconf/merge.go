package pipeconf

import (
	"fmt"

	"dario.cat/mergo"
)

// Merge overlays src onto dst. Sections present only in src are attached to
// dst; within sections present in both, non-zero values from src win.
//
// The zero-value caveat of struct merging applies: an overlay cannot force a
// field back to false, zero, or "" when the base holds a non-zero value.
// Overlays are meant to add or raise knobs (a date range, a worker cap), not
// to unset them.
func Merge(dst, src *Config) error {
	if dst == nil || src == nil {
		return fmt.Errorf("merge config: nil %s", nilSide(dst))
	}
	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("merge config: %w", err)
	}
	return nil
}

func nilSide(dst *Config) string {
	if dst == nil {
		return "destination"
	}
	return "source"
}
