package ngramvec

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures Vectorizer constructor behavior.
//
// Options cover ambient concerns only; everything that affects the produced
// vectors lives in Config.
type Option func(*options)

// WithLogger configures the logger used for operation logging.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the metrics collector notified after build
// and transform operations.
//
// If nil is passed, metrics collection stays disabled.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metricsCollector = c
	}
}
