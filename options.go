package surface

import (
	"log/slog"

	"golang.org/x/image/draw"
)

// Option configures surface construction and derived-surface operations.
//
// Example:
//
//	pool := surface.NewPool(4)
//	s, err := surface.New(640, 480, buf, "RGBA8888", surface.WithPool(pool))
type Option func(*options)

// options holds optional configuration.
type options struct {
	pool   *Pool
	scaler draw.Scaler
	logger *slog.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		pool:   nil, // Release frees; pooling is opt-in via WithPool
		scaler: draw.CatmullRom,
		logger: nil, // resolved to Logger() at use
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// WithPool sets the pool the surface buffer is taken from and returned to.
// Without it, Release leaves the buffer to the garbage collector.
// WithPool(nil) disables pooling for the surface.
//
// Example:
//
//	s, err := surface.New(w, h, buf, "RGBA8888", surface.WithPool(surface.DefaultPool()))
func WithPool(p *Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithScaler sets the interpolator used by Resize.
// The default is draw.CatmullRom. A nil scaler keeps the default.
//
// Example:
//
//	small, err := s.Resize(64, 64, surface.WithScaler(draw.NearestNeighbor))
func WithScaler(sc draw.Scaler) Option {
	return func(o *options) {
		if sc != nil {
			o.scaler = sc
		}
	}
}

// WithLogger overrides the package logger for one surface.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
