package pipeconf

import (
	"github.com/quantrail/pipeconf/pkg/pipeconf/jsonmap"
)

// sectionBuilder constructs one typed section from its raw object.
type sectionBuilder func(jsonmap.Map, *Config) error

// sections enumerates the recognized top-level keys in document order.
// Unrecognized top-level keys are ignored.
var sections = []struct {
	key   string
	build sectionBuilder
}{
	{"data_paths", buildPaths},
	{"data_scope", buildScope},
	{"symbol_registry", buildSymbolRegistry},
	{"symbol_matching", buildSymbolMatching},
	{"preprocessing", buildPreprocessing},
	{"acceleration", buildAcceleration},
	{"logger", buildLogger},
	{"export", buildExport},
	{"stream_logging", buildStreamLogging},
	{"execution", buildExecution},
	{"post_compute", buildPostCompute},
	{"market_constants", buildMarketConstants},
}

// build constructs a Config from a decoded document. A section whose key is
// absent stays nil; a section whose key is present with a non-object value,
// or whose fields hold mismatched types, fails the whole build with a
// *SchemaError. The failure is atomic: on error no Config is returned.
func build(root jsonmap.Map) (*Config, error) {
	cfg := &Config{}
	for _, s := range sections {
		m, ok, err := root.Section(s.key)
		if err != nil {
			return nil, &SchemaError{Section: s.key, Err: err}
		}
		if !ok {
			continue
		}
		if err := s.build(m, cfg); err != nil {
			return nil, &SchemaError{Section: s.key, Err: err}
		}
	}
	return cfg, nil
}

// fields reads typed values out of one section object, latching the first
// type mismatch. The sticky error keeps the per-section builders flat: each
// field is one assignment, and the error is checked once at the end.
type fields struct {
	m   jsonmap.Map
	err error
}

func (f *fields) str(key, def string) string {
	if f.err != nil {
		return def
	}
	v, err := f.m.String(key, def)
	f.err = err
	return v
}

func (f *fields) boolean(key string, def bool) bool {
	if f.err != nil {
		return def
	}
	v, err := f.m.Bool(key, def)
	f.err = err
	return v
}

func (f *fields) integer(key string, def int) int {
	if f.err != nil {
		return def
	}
	v, err := f.m.Int(key, def)
	f.err = err
	return v
}

func (f *fields) strings(key string) []string {
	if f.err != nil {
		return nil
	}
	v, err := f.m.StringSlice(key, nil)
	f.err = err
	return v
}

func (f *fields) ints(key string) []int {
	if f.err != nil {
		return nil
	}
	v, err := f.m.IntSlice(key)
	f.err = err
	return v
}

func (f *fields) stringMap(key string) map[string]string {
	if f.err != nil {
		return nil
	}
	v, err := f.m.StringMap(key)
	f.err = err
	return v
}

// booleanAlias reads key, falling back to the legacy alias when key is
// absent. The canonical key wins when both are present.
func (f *fields) booleanAlias(key, legacy string, def bool) bool {
	if f.m.Has(key) || !f.m.Has(legacy) {
		return f.boolean(key, def)
	}
	return f.boolean(legacy, def)
}

// integerAlias is booleanAlias for integer fields.
func (f *fields) integerAlias(key, legacy string, def int) int {
	if f.m.Has(key) || !f.m.Has(legacy) {
		return f.integer(key, def)
	}
	return f.integer(legacy, def)
}

func buildPaths(m jsonmap.Map, cfg *Config) error {
	f := &fields{m: m}
	p := &Paths{
		DerivativesRoot: f.str("derivatives_root", ""),
		SpotRoot:        f.str("spot_root", ""),
		ExportRoot:      f.str("export_root", ""),
	}
	// log_root falls back to the resolved export_root, even when
	// export_root itself was defaulted.
	p.LogRoot = f.str("log_root", p.ExportRoot)
	if f.err != nil {
		return f.err
	}
	cfg.Paths = p
	return nil
}

func buildScope(m jsonmap.Map, cfg *Config) error {
	f := &fields{m: m}
	s := &Scope{
		Underlyings:       f.strings("underlyings"),
		DateFrom:          f.str("date_from", ""),
		DateTo:            f.str("date_to", ""),
		InstrumentClasses: f.strings("instrument_classes"),
		ExpiryLimit:       f.integer("expiry_limit", 0),
	}
	if f.err != nil {
		return f.err
	}
	cfg.Scope = s
	return nil
}

func buildSymbolRegistry(m jsonmap.Map, cfg *Config) error {
	r := &SymbolRegistry{Mappings: make(map[string]map[string]string)}
	for _, asset := range m.Keys() {
		// Non-object values under an asset key are silently skipped.
		sub, ok := m.Object(asset)
		if !ok {
			continue
		}
		symbols, err := sub.StringValues()
		if err != nil {
			return err
		}
		r.Mappings[asset] = symbols
	}
	cfg.SymbolRegistry = r
	return nil
}

func buildSymbolMatching(m jsonmap.Map, cfg *Config) error {
	f := &fields{m: m}
	s := &SymbolMatching{
		OptionsMode:    f.str("options_mode", ""),
		FuturesMode:    f.str("futures_mode", ""),
		IndexMode:      f.str("index_mode", ""),
		CaseSensitive:  f.boolean("is_case_sensitive", false),
		TrimWhitespace: f.boolean("trim_whitespace", false),
	}
	if f.err != nil {
		return f.err
	}
	cfg.SymbolMatching = s
	return nil
}

func buildPreprocessing(m jsonmap.Map, cfg *Config) error {
	f := &fields{m: m}
	p := &Preprocessing{
		BackwardFill:      f.boolean("backward_fill", false),
		ForwardFill:       f.boolean("forward_fill", false),
		IgnoreEmptyFiles:  f.boolean("ignore_empty_files", false),
		MergeDailyOutputs: f.boolean("merge_daily_outputs", false),
	}
	if f.err != nil {
		return f.err
	}
	cfg.Preprocessing = p
	return nil
}

func buildAcceleration(m jsonmap.Map, cfg *Config) error {
	f := &fields{m: m}
	a := &Acceleration{
		EnableGPU: f.boolean("enable_gpu", false),
	}
	if f.err != nil {
		return f.err
	}
	cfg.Acceleration = a
	return nil
}

func buildLogger(m jsonmap.Map, cfg *Config) error {
	f := &fields{m: m}
	l := &Logger{
		StdoutLevel:     f.str("stdout_level", "info"),
		FileLogLevel:    f.str("file_log_level", "info"),
		LogTemplate:     f.str("log_template", ""),
		TimestampFormat: f.str("timestamp_format", ""),
	}
	if f.err != nil {
		return f.err
	}
	cfg.Logger = l
	return nil
}

func buildExport(m jsonmap.Map, cfg *Config) error {
	f := &fields{m: m}
	e := &Export{
		FileFormat: f.str("file_format", "parquet"),
		Codec:      f.str("codec", "none"),
	}
	if f.err != nil {
		return f.err
	}
	cfg.Export = e
	return nil
}

func buildStreamLogging(m jsonmap.Map, cfg *Config) error {
	f := &fields{m: m}
	s := &StreamLogging{
		Enabled:       f.boolean("is_enabled", false),
		StreamLogRoot: f.str("stream_log_root", ""),
		OutputFormats: f.strings("output_formats"),
	}
	if f.err != nil {
		return f.err
	}
	cfg.StreamLogging = s
	return nil
}

func buildExecution(m jsonmap.Map, cfg *Config) error {
	f := &fields{m: m}
	d := DefaultExecution()
	e := &Execution{
		IOChunkSize:       f.integer("io_chunk_size", d.IOChunkSize),
		LowMemoryMode:     f.boolean("low_memory_mode", d.LowMemoryMode),
		EnableParallelism: f.boolean("enable_parallelism", d.EnableParallelism),
		GlobalWorkerCap:   f.integer("global_worker_cap", d.GlobalWorkerCap),

		ParallelizeDays:      f.boolean("parallelize_days", d.ParallelizeDays),
		DayWorkerCap:         f.integer("day_worker_cap", d.DayWorkerCap),
		BatchDaysMode:        f.boolean("batch_days_mode", d.BatchDaysMode),
		DaysPerBatch:         f.integer("days_per_batch", d.DaysPerBatch),
		RAMLimitedDayWorkers: f.integer("ram_limited_day_workers", d.RAMLimitedDayWorkers),

		ParallelizeAssets: f.boolean("parallelize_assets", d.ParallelizeAssets),
		AssetWorkerCap:    f.integer("asset_worker_cap", d.AssetWorkerCap),
		TotalWorkerCap:    f.integer("total_worker_cap", d.TotalWorkerCap),

		ParallelFileIO:   f.boolean("parallel_file_io", d.ParallelFileIO),
		FileWorkerCap:    f.integer("file_worker_cap", d.FileWorkerCap),
		ZipStreamingMode: f.boolean("zip_streaming_mode", d.ZipStreamingMode),
		ProcessPoolCSV:   f.boolean("process_pool_csv", d.ProcessPoolCSV),

		ParallelFillEngine:     f.boolean("parallel_fill_engine", d.ParallelFillEngine),
		MultiprocessFillEngine: f.boolean("multiprocess_fill_engine", d.MultiprocessFillEngine),
		FillWorkerCap:          f.integer("fill_worker_cap", d.FillWorkerCap),
		FillBatchSize:          f.integer("fill_batch_size", d.FillBatchSize),
		AutoScaleFillWorkers:   f.boolean("auto_scale_fill_workers", d.AutoScaleFillWorkers),

		ParallelMonthlyEngine: f.boolean("parallel_monthly_engine", d.ParallelMonthlyEngine),
		MonthlyWorkerCap:      f.integer("monthly_worker_cap", d.MonthlyWorkerCap),

		ParallelFuturesEngine: f.boolean("parallel_futures_engine", d.ParallelFuturesEngine),
		FuturesWorkerCap:      f.integer("futures_worker_cap", d.FuturesWorkerCap),

		ParallelGreeksEngine: f.boolean("parallel_greeks_engine", d.ParallelGreeksEngine),
		GreeksWorkerCap:      f.integer("greeks_worker_cap", d.GreeksWorkerCap),
		GreeksBlockSize:      f.integer("greeks_block_size", d.GreeksBlockSize),

		TransformWorkerCap: f.integer("transform_worker_cap", d.TransformWorkerCap),
		TransformBlockSize: f.integer("transform_block_size", d.TransformBlockSize),

		ParallelTTEEngine: f.boolean("parallel_tte_engine", d.ParallelTTEEngine),
		TTEWorkerCap:      f.integer("tte_worker_cap", d.TTEWorkerCap),
		TTEBlockSize:      f.integer("tte_block_size", d.TTEBlockSize),

		ParallelSyntheticFutures: f.boolean("parallel_synthetic_futures", d.ParallelSyntheticFutures),
		SynFutWorkerCap:          f.integer("syn_fut_worker_cap", d.SynFutWorkerCap),
		SynFutBlockSize:          f.integer("syn_fut_block_size", d.SynFutBlockSize),

		UseMemoryController:     f.boolean("use_memory_controller", d.UseMemoryController),
		DisableMemoryController: f.boolean("disable_memory_controller", d.DisableMemoryController),

		CacheMonthlyExpiries: f.booleanAlias("cache_monthly_expiries", "cache_monthly_expiry_set", d.CacheMonthlyExpiries),
		OmitSpotIV:           f.boolean("omit_spot_iv", d.OmitSpotIV),

		BatchScalingFactor: f.integer("batch_scaling_factor", d.BatchScalingFactor),
	}
	if f.err != nil {
		return f.err
	}
	cfg.Execution = e
	return nil
}

func buildPostCompute(m jsonmap.Map, cfg *Config) error {
	f := &fields{m: m}
	p := &PostCompute{
		ComputeSyntheticFutures:    f.boolean("compute_synthetic_futures", false),
		RecomputeTheoreticalGreeks: f.boolean("recompute_theoretical_greeks", false),
	}
	if f.err != nil {
		return f.err
	}
	cfg.PostCompute = p
	return nil
}

func buildMarketConstants(m jsonmap.Map, cfg *Config) error {
	f := &fields{m: m}
	c := &MarketConstants{
		ValidUnderlyings: f.strings("valid_underlyings"),
		SymbolExceptions: f.strings("symbol_exceptions"),
		ExpiryCutoffTime: f.ints("expiry_cutoff_time"),
		CalendarMonthMap: f.stringMap("calendar_month_map"),
		NumericMonthMap:  f.stringMap("numeric_month_map"),
		AlphaMonthMap:    f.stringMap("alpha_month_map"),
		ExchangeHolidays: f.strings("exchange_holidays"),
	}
	if f.err != nil {
		return f.err
	}
	// A trading_schedule that is absent or not an object leaves the timing
	// zeroed, matching the month-map leniency above.
	if ts, ok := m.Object("trading_schedule"); ok {
		tf := &fields{m: ts}
		c.Timing = MarketTiming{
			SessionOpen:       tf.str("session_open", ""),
			SessionClose:      tf.str("session_close", ""),
			MinutesPerSession: tf.integerAlias("minutes_per_session", "minutes_per_day", 0),
			SessionsPerYear:   tf.integerAlias("sessions_per_year", "trading_days_per_year", 252),
		}
		if tf.err != nil {
			return tf.err
		}
	}
	cfg.MarketConstants = c
	return nil
}
