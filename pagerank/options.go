package pagerank

import "context"

// PageRank configuration defaults.
const (
	// DefaultDampingFactor is the probability of following an edge rather than jumping.
	DefaultDampingFactor = 0.85

	// DefaultMaxIterations bounds the power iteration.
	DefaultMaxIterations = 100

	// DefaultEpsilon is the convergence threshold on the summed absolute change
	// of all scores between two iterations.
	DefaultEpsilon = 1e-8
)

// Options configures the PageRank computation.
type Options struct {
	// DampingFactor must be in [0, 1]. Default: 0.85
	DampingFactor float64

	// MaxIterations must be > 0. Default: 100
	MaxIterations int

	// Epsilon must be > 0. Default: 1e-8
	Epsilon float64

	// Ctx is the parent context for tracing and logging. Default: Background.
	Ctx context.Context
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		DampingFactor: DefaultDampingFactor,
		MaxIterations: DefaultMaxIterations,
		Epsilon:       DefaultEpsilon,
		Ctx:           context.Background(),
	}
}

// Validate replaces out-of-range values with their defaults.
func (o *Options) Validate() {
	if o.DampingFactor < 0 || o.DampingFactor > 1 {
		o.DampingFactor = DefaultDampingFactor
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// Option mutates Options.
type Option func(*Options)

// WithOptions replaces the whole configuration, e.g. one loaded from a config file.
func WithOptions(o Options) Option {
	return func(dst *Options) {
		ctx := dst.Ctx
		*dst = o
		if dst.Ctx == nil {
			dst.Ctx = ctx
		}
	}
}

// WithDampingFactor sets the damping factor.
func WithDampingFactor(d float64) Option {
	return func(o *Options) { o.DampingFactor = d }
}

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithEpsilon sets the convergence threshold.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithContext sets the parent context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Validate()

	return o
}
