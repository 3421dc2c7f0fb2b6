package builder

import "github.com/katalvlaran/wktgraph/graph"

// Option customizes a Build invocation by mutating a builderConfig before
// construction begins.
type Option func(*builderConfig)

type builderConfig struct {
	target *graph.Graph
}

func resolveConfig(opts []Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithGraph accumulates into an existing graph instead of a fresh one.
// Node indices already assigned in g are preserved; new coordinates extend
// the index space. Lets a caller build one graph from several geometry
// streams without concatenating them into a collection first.
func WithGraph(g *graph.Graph) Option {
	return func(cfg *builderConfig) { cfg.target = g }
}
