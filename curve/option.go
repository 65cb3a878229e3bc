package curve

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcurve/sampling"
)

const (
	RandomCoordMin = -1000
	RandomCoordMax = 1000
	RandomValueMin = -100
	RandomValueMax = 100
)

type Options struct {
	points    []Point
	hasPoints bool

	randomCount    int
	hasRandomCount bool

	interpolation Mode
	extrapolation Mode

	prng   sampling.PRNG
	logger l.Wrapper
}

func (opt *Options) check() error {
	if opt.hasPoints && opt.hasRandomCount {
		return fmt.Errorf("%w: %w: explicit points and a random count are mutually exclusive",
			ErrValue, commerr.ErrInvalidArgument)
	}

	if opt.hasRandomCount && (opt.randomCount < 0 || opt.randomCount > RandomCoordMax-RandomCoordMin) {
		return fmt.Errorf("%w: %w: random count %d outside [0, %d]",
			ErrValue, commerr.ErrOutOfRange, opt.randomCount, RandomCoordMax-RandomCoordMin)
	}

	if !opt.interpolation.Valid() {
		return fmt.Errorf("%w: %w: unknown interpolation mode %d", ErrValue, commerr.ErrInvalidArgument, int(opt.interpolation))
	}

	if !opt.extrapolation.Valid() {
		return fmt.Errorf("%w: %w: unknown extrapolation mode %d", ErrValue, commerr.ErrInvalidArgument, int(opt.extrapolation))
	}

	return nil
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		interpolation: ModeNearestNeighbor,
		extrapolation: ModeNearestNeighbor,
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

// WithPoints supplies explicit sample points. Repeated use appends.
func WithPoints(points ...Point) Option {
	return func(o *Options) {
		o.points = append(o.points, points...)
		o.hasPoints = true
	}
}

// WithRandomCount asks for n random points: distinct integer coordinates in
// [RandomCoordMin, RandomCoordMax) paired with values in [RandomValueMin, RandomValueMax).
func WithRandomCount(n int) Option {
	return func(o *Options) {
		o.randomCount = n
		o.hasRandomCount = true
	}
}

func WithInterpolation(m Mode) Option {
	return func(o *Options) {
		o.interpolation = m
	}
}

func WithExtrapolation(m Mode) Option {
	return func(o *Options) {
		o.extrapolation = m
	}
}

// WithPRNG sets the randomness source used by WithRandomCount.
func WithPRNG(prng sampling.PRNG) Option {
	return func(o *Options) {
		o.prng = prng
	}
}

func WithLogger(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}
