/*
Package jsonmap provides typed field access over decoded JSON objects.

# Overview

jsonmap wraps a map[string]any and exposes accessor methods that apply a
caller-supplied default when a key is absent, and return a *TypeError when a
key is present with a value of the wrong shape. This is the access discipline
the pipeline configuration format requires: absent knobs default, malformed
knobs fail.

# Basic Usage

	m := jsonmap.New(map[string]any{
	    "file_format": "parquet",
	    "enable_gpu":  true,
	    "worker_cap":  8,
	})

	format, err := m.String("file_format", "parquet") // "parquet", nil
	gpu, err := m.Bool("enable_gpu", false)           // true, nil
	cap, err := m.Int("missing", 10)                  // 10, nil
	_, err = m.Int("file_format", 10)                 // 0, *TypeError

# Numbers

Int and IntSlice accept any JSON number and truncate fractional values
toward zero; configuration sources occasionally carry float literals for
integer fields.

# Objects

Section returns a nested object and fails with *TypeError when the key holds
a non-object value. Object is the lenient variant that treats a wrong shape
like an absent key; StringMap applies the same leniency for one-level
string-to-string objects.

# Thread Safety

A Map is safe for concurrent read access as long as the underlying map is
not modified after creation.
*/
package jsonmap
