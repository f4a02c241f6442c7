package keygen

import "time"

type options struct {
	seed    int64
	hasSeed bool
	clock   func() time.Time
}

type Option func(opts *options)

// WithSeed fixes the seed instead of deriving it from the clock
func WithSeed(seed int64) Option {
	return func(opts *options) {
		opts.seed = seed
		opts.hasSeed = true
	}
}

// WithClock sets the time source used for the default seed and the per-call entropy
func WithClock(clock func() time.Time) Option {
	return func(opts *options) {
		opts.clock = clock
	}
}

func newOptions(opts ...Option) *options {
	var opt options
	for _, o := range opts {
		o(&opt)
	}
	if opt.clock == nil {
		opt.clock = time.Now
	}
	return &opt
}
