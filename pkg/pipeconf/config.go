package pipeconf

// Config is the root configuration container. Each field corresponds to one
// top-level key of the configuration document and is nil when that key is
// absent from the source. A non-nil section is always fully populated: every
// field the source omitted carries its documented default.
//
// Sections are independent; the loader enforces no cross-section
// relationships. A Config is built wholesale by a single load call and is
// not mutated afterwards, so it is safe to share between goroutines for
// reading.
type Config struct {
	// Paths locates the raw input trees and the export/log directories.
	// Key: "data_paths".
	Paths *Paths

	// Scope restricts which underlyings, dates, and instrument classes the
	// pipeline processes. Key: "data_scope".
	Scope *Scope

	// SymbolRegistry maps logical asset names to per-venue symbols.
	// Key: "symbol_registry".
	SymbolRegistry *SymbolRegistry

	// SymbolMatching controls symbol normalization and lookup.
	// Key: "symbol_matching".
	SymbolMatching *SymbolMatching

	// Preprocessing holds data-cleaning toggles. Key: "preprocessing".
	Preprocessing *Preprocessing

	// Acceleration holds GPU offload toggles. Key: "acceleration".
	Acceleration *Acceleration

	// Logger configures the pipeline's log output. Key: "logger".
	Logger *Logger

	// Export configures the output file format. Key: "export".
	Export *Export

	// StreamLogging configures per-stream data snapshots.
	// Key: "stream_logging".
	StreamLogging *StreamLogging

	// Execution holds parallelism, batching, and memory tuning for the
	// downstream engines. The loader only stores these values; it never
	// acts on them. Key: "execution".
	Execution *Execution

	// PostCompute toggles optional transformations applied after the base
	// processing pass. Key: "post_compute".
	PostCompute *PostCompute

	// MarketConstants holds market-wide calendars and time rules.
	// Key: "market_constants".
	MarketConstants *MarketConstants
}

// Paths locates the data trees the pipeline reads and writes.
type Paths struct {
	// DerivativesRoot is the root directory of the raw derivatives data.
	DerivativesRoot string
	// SpotRoot is the root directory of the raw spot data.
	SpotRoot string
	// ExportRoot is the directory processed output is written to.
	ExportRoot string
	// LogRoot is the directory log files are written to.
	// Defaults to ExportRoot when omitted.
	LogRoot string
}

// Scope restricts the slice of the data universe a pipeline run covers.
type Scope struct {
	Underlyings       []string
	DateFrom          string
	DateTo            string
	InstrumentClasses []string
	// ExpiryLimit caps how many expiries per underlying are processed.
	// Zero means no limit.
	ExpiryLimit int
}

// SymbolRegistry maps a logical asset name to its symbols, keyed by symbol
// type (for example "spot", "futures", "options").
type SymbolRegistry struct {
	Mappings map[string]map[string]string
}

// SymbolMatching controls how instrument symbols are normalized and matched.
type SymbolMatching struct {
	OptionsMode    string
	FuturesMode    string
	IndexMode      string
	CaseSensitive  bool
	TrimWhitespace bool
}

// Preprocessing holds data-cleaning and aggregation toggles.
type Preprocessing struct {
	BackwardFill      bool
	ForwardFill       bool
	IgnoreEmptyFiles  bool
	MergeDailyOutputs bool
}

// Acceleration toggles GPU kernel offload where available.
type Acceleration struct {
	EnableGPU bool
}

// Logger configures the pipeline's logging output. Levels default to "info".
type Logger struct {
	StdoutLevel     string
	FileLogLevel    string
	LogTemplate     string
	TimestampFormat string
}

// Export configures the serialization of processed output.
type Export struct {
	// FileFormat is the output file format. Default "parquet".
	FileFormat string
	// Codec is the compression codec. Default "none".
	Codec string
}

// StreamLogging configures optional fine-grained data snapshots used for
// debugging and audit.
type StreamLogging struct {
	Enabled       bool
	StreamLogRoot string
	OutputFormats []string
}

// Execution holds the parallelism, batching, and memory knobs the downstream
// engines read. Defaults assume server-grade hardware; see DefaultExecution.
type Execution struct {
	// IOChunkSize is the read chunk size in rows. Zero means auto.
	IOChunkSize int

	LowMemoryMode     bool
	EnableParallelism bool
	GlobalWorkerCap   int

	ParallelizeDays      bool
	DayWorkerCap         int
	BatchDaysMode        bool
	DaysPerBatch         int
	RAMLimitedDayWorkers int

	ParallelizeAssets bool
	AssetWorkerCap    int
	TotalWorkerCap    int

	ParallelFileIO   bool
	FileWorkerCap    int
	ZipStreamingMode bool
	ProcessPoolCSV   bool

	ParallelFillEngine     bool
	MultiprocessFillEngine bool
	FillWorkerCap          int
	FillBatchSize          int
	AutoScaleFillWorkers   bool

	ParallelMonthlyEngine bool
	MonthlyWorkerCap      int

	ParallelFuturesEngine bool
	FuturesWorkerCap      int

	ParallelGreeksEngine bool
	GreeksWorkerCap      int
	GreeksBlockSize      int

	TransformWorkerCap int
	TransformBlockSize int

	ParallelTTEEngine bool
	TTEWorkerCap      int
	TTEBlockSize      int

	ParallelSyntheticFutures bool
	SynFutWorkerCap          int
	SynFutBlockSize          int

	UseMemoryController     bool
	DisableMemoryController bool

	// CacheMonthlyExpiries enables the monthly expiry set cache.
	// The legacy input key "cache_monthly_expiry_set" is accepted as an
	// alias for "cache_monthly_expiries".
	CacheMonthlyExpiries bool
	OmitSpotIV           bool

	// BatchScalingFactor multiplies batch sizes when auto-scaling workers.
	BatchScalingFactor int
}

// DefaultExecution returns an Execution populated with the documented
// defaults. The section builder starts from this value and overrides each
// field present in the source document.
func DefaultExecution() *Execution {
	return &Execution{
		IOChunkSize:       0,
		LowMemoryMode:     false,
		EnableParallelism: true,
		GlobalWorkerCap:   10,

		ParallelizeDays:      true,
		DayWorkerCap:         10,
		BatchDaysMode:        true,
		DaysPerBatch:         5,
		RAMLimitedDayWorkers: 5,

		ParallelizeAssets: false,
		AssetWorkerCap:    10,
		TotalWorkerCap:    10,

		ParallelFileIO:   true,
		FileWorkerCap:    10,
		ZipStreamingMode: false,
		ProcessPoolCSV:   true,

		ParallelFillEngine:     true,
		MultiprocessFillEngine: true,
		FillWorkerCap:          10,
		FillBatchSize:          50,
		AutoScaleFillWorkers:   true,

		ParallelMonthlyEngine: true,
		MonthlyWorkerCap:      10,

		ParallelFuturesEngine: true,
		FuturesWorkerCap:      10,

		ParallelGreeksEngine: true,
		GreeksWorkerCap:      10,
		GreeksBlockSize:      100000,

		TransformWorkerCap: 10,
		TransformBlockSize: 1000,

		ParallelTTEEngine: true,
		TTEWorkerCap:      10,
		TTEBlockSize:      500000,

		ParallelSyntheticFutures: true,
		SynFutWorkerCap:          10,
		SynFutBlockSize:          500000,

		UseMemoryController:     false,
		DisableMemoryController: true,

		CacheMonthlyExpiries: true,
		OmitSpotIV:           false,

		BatchScalingFactor: 4,
	}
}

// PostCompute toggles optional quantitative transformations applied after
// the base processing pass.
type PostCompute struct {
	ComputeSyntheticFutures    bool
	RecomputeTheoreticalGreeks bool
}

// MarketConstants holds market-wide constants, calendars, and time rules
// shared across all processing stages.
type MarketConstants struct {
	ValidUnderlyings []string
	SymbolExceptions []string

	// ExpiryCutoffTime is the expiry cutoff as [hour, minute, second].
	ExpiryCutoffTime []int

	CalendarMonthMap map[string]string
	NumericMonthMap  map[string]string
	AlphaMonthMap    map[string]string

	// Timing holds the trading-schedule parameters.
	// Key: "trading_schedule".
	Timing MarketTiming

	// ExchangeHolidays lists exchange holiday dates as "YYYY-MM-DD".
	ExchangeHolidays []string
}

// MarketTiming holds the trading-schedule parameters used for time-to-expiry
// and calendar normalization by the downstream engines.
type MarketTiming struct {
	// SessionOpen is the session open time, "HH:MM:SS".
	SessionOpen string
	// SessionClose is the session close time, "HH:MM:SS".
	SessionClose string
	// MinutesPerSession is the session length in minutes. The source value
	// may be fractional and is truncated. The legacy input key
	// "minutes_per_day" is accepted as an alias.
	MinutesPerSession int
	// SessionsPerYear is the number of trading sessions per year.
	// Default 252. The legacy input key "trading_days_per_year" is
	// accepted as an alias.
	SessionsPerYear int
}

// Sections returns how many sections are present on the Config.
func (c *Config) Sections() int {
	n := 0
	for _, present := range []bool{
		c.Paths != nil, c.Scope != nil, c.SymbolRegistry != nil,
		c.SymbolMatching != nil, c.Preprocessing != nil, c.Acceleration != nil,
		c.Logger != nil, c.Export != nil, c.StreamLogging != nil,
		c.Execution != nil, c.PostCompute != nil, c.MarketConstants != nil,
	} {
		if present {
			n++
		}
	}
	return n
}
