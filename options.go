package texprep

import "log/slog"

// Option configures Prepare.
//
// Example:
//
//	tex, err := texprep.Prepare(src,
//	    texprep.WithPremultiplyAlpha(true),
//	    texprep.ForWebGPU(),
//	)
type Option func(*options)

// options holds the policy for one Prepare call.
type options struct {
	premultiplyAlpha    bool
	avoidThreeComponent bool
	inPlace             bool
	parallel            bool
	logger              *slog.Logger
}

// defaultOptions returns the default policy: no premultiplication,
// 3-channel float and integer textures kept, output in a new buffer.
func defaultOptions() options {
	return options{}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}

// WithPremultiplyAlpha requests color channels premultiplied by alpha, as
// expected by shaders that composite premultiplied input.
func WithPremultiplyAlpha(on bool) Option {
	return func(o *options) {
		o.premultiplyAlpha = on
	}
}

// WithAvoidThreeComponent requests that 3-channel float and integer
// textures be expanded to 4 channels. Normalized 3-channel textures are
// always expanded.
func WithAvoidThreeComponent(on bool) Option {
	return func(o *options) {
		o.avoidThreeComponent = on
	}
}

// ForWebGPU configures Prepare for WebGPU devices, which have no
// 3-component texture formats.
func ForWebGPU() Option {
	return WithAvoidThreeComponent(true)
}

// WithInPlace lets Prepare convert into the source buffer when its
// capacity is large enough for the target layout. The source contents are
// overwritten and the returned Texture shares its backing array.
func WithInPlace(on bool) Option {
	return func(o *options) {
		o.inPlace = on
	}
}

// WithParallel splits conversions of large textures across a shared pool
// of GOMAXPROCS goroutines. Expansion into the source buffer always runs
// on the calling goroutine since its texel ranges overlap.
func WithParallel(on bool) Option {
	return func(o *options) {
		o.parallel = on
	}
}

// WithLogger sets the logger for one Prepare call, overriding the package
// default set by SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
