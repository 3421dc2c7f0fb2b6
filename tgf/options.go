package tgf

// Logger receives WARN-level diagnostics for skipped records. The zero
// configuration discards them.
type Logger interface {
	Warnf(format string, args ...any)
}

type discardLogger struct{}

func (discardLogger) Warnf(string, ...any) {}

// Option customizes a Read invocation.
type Option func(*readConfig)

type readConfig struct {
	log Logger
}

func resolveConfig(opts []Option) readConfig {
	cfg := readConfig{log: discardLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes skip warnings to l instead of discarding them.
func WithLogger(l Logger) Option {
	return func(cfg *readConfig) {
		if l != nil {
			cfg.log = l
		}
	}
}
