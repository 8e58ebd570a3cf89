package binning

type options struct {
	workers          int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Binner construction.
type Option func(*options)

// WithWorkers configures how many goroutines Bin fans a batch out to.
//
// Each worker counts a contiguous slice of the batch into a private
// histogram; the partial histograms are merged in slice order once every
// worker is done, so the result equals sequential counting.
//
// If workers <= 1, Bin counts sequentially (default).
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &binning.BasicMetricsCollector{}
//	b, _ := binning.New(0, 1, 100, binning.WithMetricsCollector(metrics))
//	// ... use b ...
//	stats := metrics.GetStats()
//	fmt.Printf("Batches: %d, Avg latency: %dns\n", stats.BinCount, stats.BinAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := binning.NewJSONLogger(os.Stderr, slog.LevelDebug)
//	b, _ := binning.New(0, 1, 100, binning.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:          1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
