package aram

type config struct {
	maxSteps int
	verbose  bool
}

// Option configures Compile and Run.
type Option func(*config)

// WithMaxSteps limits execution to n instructions. Zero, the default,
// means no limit.
func WithMaxSteps(n int) Option {
	return func(cfg *config) {
		cfg.maxSteps = n
	}
}

// WithVerbose enables logging of analysis and execution.
func WithVerbose(verbose bool) Option {
	return func(cfg *config) {
		cfg.verbose = verbose
	}
}

func newConfig(opts ...Option) (cfg config) {
	for _, opt := range opts {
		opt(&cfg)
	}
	return
}
