package snap

// Strategy selects how a Snapper rewrites coordinates.
type Strategy int

const (
	// StrategyGrid snaps each (x, y) to the nearest multiple of the
	// tolerance, rounding halves away from zero. Z is preserved untouched.
	StrategyGrid Strategy = iota
	// StrategyClosest adopts the first previously seen coordinate within
	// the tolerance, registering a new representative otherwise.
	StrategyClosest
)

// String renders the Strategy for diagnostics and profile files.
func (s Strategy) String() string {
	switch s {
	case StrategyGrid:
		return "grid"
	case StrategyClosest:
		return "closest"
	default:
		return "unknown"
	}
}

// Option customizes a Snapper.
type Option func(*config)

type config struct {
	tolerance float64
	strategy  Strategy
}

func resolveConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTolerance sets the snapping epsilon. Zero (the default) makes the
// Snapper an identity transform. Panics on a negative tolerance, which is
// meaningless.
func WithTolerance(eps float64) Option {
	if eps < 0 {
		panic("snap: WithTolerance(negative)")
	}
	return func(cfg *config) {
		cfg.tolerance = eps
	}
}

// WithStrategy selects grid or closest-point snapping. Grid is the default.
func WithStrategy(s Strategy) Option {
	return func(cfg *config) {
		cfg.strategy = s
	}
}
