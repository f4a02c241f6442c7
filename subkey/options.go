package subkey

import "time"

type options struct {
	masterKey    uint64
	hasMasterKey bool
	clock        func() time.Time
}

type Option func(opts *options)

// WithMasterKey fixes the master key instead of deriving it from the clock
func WithMasterKey(key uint64) Option {
	return func(opts *options) {
		opts.masterKey = key
		opts.hasMasterKey = true
	}
}

// WithClock sets the time source used when no master key is given
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
