/*
Package pipeconf loads the declarative configuration of a derivatives
data-processing pipeline.

# Overview

A configuration document is one JSON object whose recognized top-level keys
each populate one typed section of Config: data paths, data scope, symbol
registry, symbol matching rules, preprocessing toggles, GPU acceleration,
logging, export format, stream logging, execution tuning, post-compute
toggles, and market constants. Sections are independently optional: an
absent key leaves the section nil, while a present section gets a documented
default for every field the document omits. The two states are
distinguishable — nil means "not configured", non-nil means "configured,
possibly all defaults".

The loader populates values only; it never acts on them. Range validation,
cross-field consistency, and everything the execution knobs describe belong
to the downstream pipeline.

# Basic Usage

	cfg, err := pipeconf.FromFile("config.json")
	if err != nil {
	    log.Fatal(err)
	}

	if cfg.Scope != nil {
	    fmt.Println("underlyings:", cfg.Scope.Underlyings)
	}
	if cfg.Execution != nil {
	    fmt.Println("global worker cap:", cfg.Execution.GlobalWorkerCap)
	}

FromString, FromJSON, and FromYAML build the same Config without file I/O.

# Errors

Loads fail with exactly one of three typed errors, and the failure is always
atomic — no partially populated Config escapes:

  - *OpenError: the file could not be read; parsing was not attempted.
  - *ParseError: the text is not a well-formed document; carries the decoder
    diagnostic and the byte offset when available.
  - *SchemaError: a recognized key held a value of the wrong shape.

Absent keys default; malformed keys fail. No error is downgraded to a
default value.

# Legacy Key Aliases

Two sections carry renamed keys from earlier configuration revisions. The
canonical name wins when both are present:

  - market_constants.trading_schedule: minutes_per_session (legacy
    minutes_per_day), sessions_per_year (legacy trading_days_per_year)
  - execution: cache_monthly_expiries (legacy cache_monthly_expiry_set)

# Instrumented Loads

Loader adds structured logging, OpenTelemetry metrics, and a trace span per
load on top of the pure functions:

	loader := pipeconf.New(
	    pipeconf.WithLogger(slog.Default()),
	    pipeconf.WithMetrics(observability.NewMetricsRecorder()),
	)
	cfg, err := loader.LoadFile(ctx, "config.json")

# Thread Safety

Loads share no state; concurrent calls are safe. A returned Config is
read-only by convention and safe to share once built.
*/
package pipeconf
