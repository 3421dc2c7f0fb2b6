package polygonize

// Logger receives WARN-level diagnostics for defective faces. The zero
// configuration discards them.
type Logger interface {
	Warnf(format string, args ...any)
}

type discardLogger struct{}

func (discardLogger) Warnf(string, ...any) {}

// Option customizes a Polygonize invocation.
type Option func(*config)

type config struct {
	log           Logger
	dropDefective bool
}

func resolveConfig(opts []Option) config {
	cfg := config{log: discardLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes defect warnings to l instead of discarding them.
func WithLogger(l Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.log = l
		}
	}
}

// WithoutDefective drops faces whose rings revisit a node instead of
// emitting them. ErrDefect is still returned so the caller knows output
// was withheld.
func WithoutDefective() Option {
	return func(cfg *config) {
		cfg.dropDefective = true
	}
}
