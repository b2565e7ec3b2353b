package pipeconf

import (
	"strconv"
	"strings"
)

// FlatMap renders every leaf field of the present sections into a flat
// string map keyed by dotted path ("section.field"). Slices are joined with
// commas; two-level maps contribute one entry per inner key
// ("symbol_registry.NIFTY.options").
//
// The projection is read-only and intended for display and debugging; it is
// not a canonical serialization format.
func (c *Config) FlatMap() map[string]string {
	out := make(map[string]string)

	if p := c.Paths; p != nil {
		out["data_paths.derivatives_root"] = p.DerivativesRoot
		out["data_paths.spot_root"] = p.SpotRoot
		out["data_paths.export_root"] = p.ExportRoot
		out["data_paths.log_root"] = p.LogRoot
	}

	if s := c.Scope; s != nil {
		out["data_scope.underlyings"] = strings.Join(s.Underlyings, ",")
		out["data_scope.date_from"] = s.DateFrom
		out["data_scope.date_to"] = s.DateTo
		out["data_scope.instrument_classes"] = strings.Join(s.InstrumentClasses, ",")
		out["data_scope.expiry_limit"] = strconv.Itoa(s.ExpiryLimit)
	}

	if r := c.SymbolRegistry; r != nil {
		for asset, symbols := range r.Mappings {
			for kind, symbol := range symbols {
				out["symbol_registry."+asset+"."+kind] = symbol
			}
		}
	}

	if s := c.SymbolMatching; s != nil {
		out["symbol_matching.options_mode"] = s.OptionsMode
		out["symbol_matching.futures_mode"] = s.FuturesMode
		out["symbol_matching.index_mode"] = s.IndexMode
		out["symbol_matching.is_case_sensitive"] = strconv.FormatBool(s.CaseSensitive)
		out["symbol_matching.trim_whitespace"] = strconv.FormatBool(s.TrimWhitespace)
	}

	if p := c.Preprocessing; p != nil {
		out["preprocessing.backward_fill"] = strconv.FormatBool(p.BackwardFill)
		out["preprocessing.forward_fill"] = strconv.FormatBool(p.ForwardFill)
		out["preprocessing.ignore_empty_files"] = strconv.FormatBool(p.IgnoreEmptyFiles)
		out["preprocessing.merge_daily_outputs"] = strconv.FormatBool(p.MergeDailyOutputs)
	}

	if a := c.Acceleration; a != nil {
		out["acceleration.enable_gpu"] = strconv.FormatBool(a.EnableGPU)
	}

	if l := c.Logger; l != nil {
		out["logger.stdout_level"] = l.StdoutLevel
		out["logger.file_log_level"] = l.FileLogLevel
		out["logger.log_template"] = l.LogTemplate
		out["logger.timestamp_format"] = l.TimestampFormat
	}

	if e := c.Export; e != nil {
		out["export.file_format"] = e.FileFormat
		out["export.codec"] = e.Codec
	}

	if s := c.StreamLogging; s != nil {
		out["stream_logging.is_enabled"] = strconv.FormatBool(s.Enabled)
		out["stream_logging.stream_log_root"] = s.StreamLogRoot
		out["stream_logging.output_formats"] = strings.Join(s.OutputFormats, ",")
	}

	if e := c.Execution; e != nil {
		out["execution.io_chunk_size"] = strconv.Itoa(e.IOChunkSize)
		out["execution.low_memory_mode"] = strconv.FormatBool(e.LowMemoryMode)
		out["execution.enable_parallelism"] = strconv.FormatBool(e.EnableParallelism)
		out["execution.global_worker_cap"] = strconv.Itoa(e.GlobalWorkerCap)
		out["execution.parallelize_days"] = strconv.FormatBool(e.ParallelizeDays)
		out["execution.day_worker_cap"] = strconv.Itoa(e.DayWorkerCap)
		out["execution.batch_days_mode"] = strconv.FormatBool(e.BatchDaysMode)
		out["execution.days_per_batch"] = strconv.Itoa(e.DaysPerBatch)
		out["execution.ram_limited_day_workers"] = strconv.Itoa(e.RAMLimitedDayWorkers)
		out["execution.parallelize_assets"] = strconv.FormatBool(e.ParallelizeAssets)
		out["execution.asset_worker_cap"] = strconv.Itoa(e.AssetWorkerCap)
		out["execution.total_worker_cap"] = strconv.Itoa(e.TotalWorkerCap)
		out["execution.parallel_file_io"] = strconv.FormatBool(e.ParallelFileIO)
		out["execution.file_worker_cap"] = strconv.Itoa(e.FileWorkerCap)
		out["execution.zip_streaming_mode"] = strconv.FormatBool(e.ZipStreamingMode)
		out["execution.process_pool_csv"] = strconv.FormatBool(e.ProcessPoolCSV)
		out["execution.parallel_fill_engine"] = strconv.FormatBool(e.ParallelFillEngine)
		out["execution.multiprocess_fill_engine"] = strconv.FormatBool(e.MultiprocessFillEngine)
		out["execution.fill_worker_cap"] = strconv.Itoa(e.FillWorkerCap)
		out["execution.fill_batch_size"] = strconv.Itoa(e.FillBatchSize)
		out["execution.auto_scale_fill_workers"] = strconv.FormatBool(e.AutoScaleFillWorkers)
		out["execution.parallel_monthly_engine"] = strconv.FormatBool(e.ParallelMonthlyEngine)
		out["execution.monthly_worker_cap"] = strconv.Itoa(e.MonthlyWorkerCap)
		out["execution.parallel_futures_engine"] = strconv.FormatBool(e.ParallelFuturesEngine)
		out["execution.futures_worker_cap"] = strconv.Itoa(e.FuturesWorkerCap)
		out["execution.parallel_greeks_engine"] = strconv.FormatBool(e.ParallelGreeksEngine)
		out["execution.greeks_worker_cap"] = strconv.Itoa(e.GreeksWorkerCap)
		out["execution.greeks_block_size"] = strconv.Itoa(e.GreeksBlockSize)
		out["execution.transform_worker_cap"] = strconv.Itoa(e.TransformWorkerCap)
		out["execution.transform_block_size"] = strconv.Itoa(e.TransformBlockSize)
		out["execution.parallel_tte_engine"] = strconv.FormatBool(e.ParallelTTEEngine)
		out["execution.tte_worker_cap"] = strconv.Itoa(e.TTEWorkerCap)
		out["execution.tte_block_size"] = strconv.Itoa(e.TTEBlockSize)
		out["execution.parallel_synthetic_futures"] = strconv.FormatBool(e.ParallelSyntheticFutures)
		out["execution.syn_fut_worker_cap"] = strconv.Itoa(e.SynFutWorkerCap)
		out["execution.syn_fut_block_size"] = strconv.Itoa(e.SynFutBlockSize)
		out["execution.use_memory_controller"] = strconv.FormatBool(e.UseMemoryController)
		out["execution.disable_memory_controller"] = strconv.FormatBool(e.DisableMemoryController)
		out["execution.cache_monthly_expiries"] = strconv.FormatBool(e.CacheMonthlyExpiries)
		out["execution.omit_spot_iv"] = strconv.FormatBool(e.OmitSpotIV)
		out["execution.batch_scaling_factor"] = strconv.Itoa(e.BatchScalingFactor)
	}

	if p := c.PostCompute; p != nil {
		out["post_compute.compute_synthetic_futures"] = strconv.FormatBool(p.ComputeSyntheticFutures)
		out["post_compute.recompute_theoretical_greeks"] = strconv.FormatBool(p.RecomputeTheoreticalGreeks)
	}

	if mc := c.MarketConstants; mc != nil {
		out["market_constants.valid_underlyings"] = strings.Join(mc.ValidUnderlyings, ",")
		out["market_constants.symbol_exceptions"] = strings.Join(mc.SymbolExceptions, ",")
		out["market_constants.expiry_cutoff_time"] = joinInts(mc.ExpiryCutoffTime)
		for k, v := range mc.CalendarMonthMap {
			out["market_constants.calendar_month_map."+k] = v
		}
		for k, v := range mc.NumericMonthMap {
			out["market_constants.numeric_month_map."+k] = v
		}
		for k, v := range mc.AlphaMonthMap {
			out["market_constants.alpha_month_map."+k] = v
		}
		out["market_constants.trading_schedule.session_open"] = mc.Timing.SessionOpen
		out["market_constants.trading_schedule.session_close"] = mc.Timing.SessionClose
		out["market_constants.trading_schedule.minutes_per_session"] = strconv.Itoa(mc.Timing.MinutesPerSession)
		out["market_constants.trading_schedule.sessions_per_year"] = strconv.Itoa(mc.Timing.SessionsPerYear)
		out["market_constants.exchange_holidays"] = strings.Join(mc.ExchangeHolidays, ",")
	}

	return out
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
