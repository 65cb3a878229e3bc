// Package curve models one-dimensional piecewise linear functions: a set of
// (coordinate, value) samples plus the rules used to produce a value anywhere
// on the real line.
//
// Inside the sampled range a Function interpolates, outside it (and exactly
// on the outermost samples) it extrapolates. Each side uses either the nearest
// sample or a straight line through the two nearest samples.
//
// A Function is not safe for concurrent mutation.
package curve

import (
	"fmt"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcurve/sampling"
	"github.com/spf13/cast"
)

type Function struct {
	logger l.Wrapper

	store *pointStore

	interpolation Mode
	extrapolation Mode
}

// New builds a Function from options. Without any point option the Function
// is empty; it can be filled with AddPoint.
func New(opts ...Option) (*Function, error) {
	o := optionNew(opts...)

	logger := o.logger
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "Function"))

	if err := o.check(); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("invalid options")

		return nil, err
	}

	points := o.points

	if o.hasRandomCount {
		var err error

		points, err = randomPoints(sampling.NewSampler(o.prng), o.randomCount)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.IntField("count", o.randomCount)).Error("random points failed")

			return nil, err
		}
	}

	store := newPointStore()

	if err := store.insertAll(points); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("invalid points")

		return nil, err
	}

	return &Function{
		logger:        logger,
		store:         store,
		interpolation: o.interpolation,
		extrapolation: o.extrapolation,
	}, nil
}

func randomPoints(sampler *sampling.Sampler, n int) ([]Point, error) {
	coords, err := sampler.DistinctInts(RandomCoordMin, RandomCoordMax, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValue, err)
	}

	points := make([]Point, 0, n)

	for _, c := range coords {
		v, err := sampler.Float64(RandomValueMin, RandomValueMax)
		if err != nil {
			return nil, err
		}

		points = append(points, Point{Coord: float64(c), Value: v})
	}

	return points, nil
}

// AddPoint inserts a sample. The coordinate must not exist yet.
func (f *Function) AddPoint(coord, value float64) error {
	if err := f.store.insert(coord, value); err != nil {
		f.logger.WithFields(l.StringField("coord", cast.ToString(coord)), l.ErrorField(err)).Error("add point failed")

		return err
	}

	return nil
}

// RemovePoint deletes the sample at coord, which must exist.
func (f *Function) RemovePoint(coord float64) error {
	if err := f.store.remove(coord); err != nil {
		f.logger.WithFields(l.StringField("coord", cast.ToString(coord)), l.ErrorField(err)).Error("remove point failed")

		return err
	}

	return nil
}

func (f *Function) Len() int {
	return f.store.len()
}

// MinCoord returns the smallest sampled coordinate; ok is false when the
// Function has no points.
func (f *Function) MinCoord() (c float64, ok bool) {
	c, _, ok = f.store.bounds()

	return
}

// MaxCoord returns the largest sampled coordinate; ok is false when the
// Function has no points.
func (f *Function) MaxCoord() (c float64, ok bool) {
	_, c, ok = f.store.bounds()

	return
}

// Value returns the sampled value stored at exactly coord.
func (f *Function) Value(coord float64) (float64, bool) {
	return f.store.value(coord)
}

func (f *Function) Modes() (interpolation, extrapolation Mode) {
	return f.interpolation, f.extrapolation
}

// SortedPoints returns the coordinates in ascending order and the matching
// values. The slices are fresh copies.
func (f *Function) SortedPoints() (coords, values []float64) {
	coords = make([]float64, len(f.store.coords))
	values = make([]float64, len(f.store.coords))

	for idx, c := range f.store.coords {
		coords[idx] = c
		values[idx] = f.store.values[c]
	}

	return
}

func (f *Function) Points() []Point {
	points := make([]Point, 0, len(f.store.coords))

	for _, c := range f.store.coords {
		points = append(points, Point{Coord: c, Value: f.store.values[c]})
	}

	return points
}

// Range calls fn for each sample in ascending coordinate order until fn
// returns false. fn must not mutate the Function.
func (f *Function) Range(fn func(coord, value float64) bool) {
	for _, c := range f.store.coords {
		if !fn(c, f.store.values[c]) {
			return
		}
	}
}

// Clone returns an independent copy sharing only the logger.
func (f *Function) Clone() *Function {
	return &Function{
		logger:        f.logger,
		store:         f.store.clone(),
		interpolation: f.interpolation,
		extrapolation: f.extrapolation,
	}
}

func (f *Function) String() string {
	var ss strings.Builder

	ss.WriteString("Function(")
	ss.WriteString(f.interpolation.String())
	ss.WriteString("/")
	ss.WriteString(f.extrapolation.String())
	ss.WriteString("){")

	for idx, c := range f.store.coords {
		if idx > 0 {
			ss.WriteString(", ")
		}

		ss.WriteString(fmt.Sprintf("%v: %v", c, f.store.values[c]))
	}

	ss.WriteString("}")

	return ss.String()
}
