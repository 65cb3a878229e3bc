package curve

import (
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

// Interp evaluates the Function at coord. Coordinates strictly inside the
// sampled range are interpolated; everything else, including the outermost
// samples themselves, goes through Extrap.
func (f *Function) Interp(coord float64) (float64, error) {
	if err := checkFinite("coordinate", coord); err != nil {
		return 0, err
	}

	minCoord, maxCoord, ok := f.store.bounds()
	if !ok {
		return 0, fmt.Errorf("%w: cannot evaluate a function without points", ErrTooFewPoints)
	}

	if coord <= minCoord || coord >= maxCoord {
		return f.Extrap(coord)
	}

	switch f.interpolation {
	case ModeNearestNeighbor:
		return f.nearestValue(coord), nil
	case ModeLinear:
		return f.linear(coord)
	}

	return 0, fmt.Errorf("%w: interpolation mode %v", ErrNotImplemented, f.interpolation)
}

// Extrap evaluates the Function at a coord outside the sampled range, or on
// one of its ends. The extrapolation mode decides how.
func (f *Function) Extrap(coord float64) (float64, error) {
	if err := checkFinite("coordinate", coord); err != nil {
		return 0, err
	}

	minCoord, maxCoord, ok := f.store.bounds()
	if !ok {
		return 0, fmt.Errorf("%w: cannot evaluate a function without points", ErrTooFewPoints)
	}

	switch f.extrapolation {
	case ModeNearestNeighbor:
		if coord <= minCoord {
			return f.store.values[minCoord], nil
		}

		if coord >= maxCoord {
			return f.store.values[maxCoord], nil
		}

		err := fmt.Errorf("%w: coordinate %v lies inside (%v, %v) and must be interpolated",
			ErrLogic, coord, minCoord, maxCoord)

		f.logger.WithFields(l.StringField("coord", cast.ToString(coord)), l.ErrorField(err)).Error("extrapolation routed inside range")

		return 0, err
	case ModeLinear:
		return f.linear(coord)
	}

	return 0, fmt.Errorf("%w: extrapolation mode %v", ErrNotImplemented, f.extrapolation)
}

// InterpAll evaluates the Function at every coordinate of xs. If an output
// slice is given, the results are written to it (and it is still returned).
// Only the first output slice is used.
func (f *Function) InterpAll(xs []float64, out ...[]float64) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}

	if len(out[0]) < len(xs) {
		return nil, fmt.Errorf("%w: output holds %d values, need %d", ErrValue, len(out[0]), len(xs))
	}

	for i, x := range xs {
		v, err := f.Interp(x)
		if err != nil {
			return nil, err
		}

		out[0][i] = v
	}

	return out[0], nil
}

func (f *Function) nearestValue(coord float64) float64 {
	return f.store.values[f.store.nearest(coord, 1)[0]]
}

// linear draws a line through the two samples closest to coord and reads it
// at coord. Inside the range this interpolates, outside it extrapolates.
func (f *Function) linear(coord float64) (float64, error) {
	if f.store.len() < 2 {
		return 0, fmt.Errorf("%w: linear evaluation needs 2 points, have %d", ErrTooFewPoints, f.store.len())
	}

	nearest := f.store.nearest(coord, 2)

	a, b := nearest[0], nearest[1]
	if a > b {
		a, b = b, a
	}

	ratio := (coord - a) / (b - a)

	return f.store.values[a]*(1-ratio) + f.store.values[b]*ratio, nil
}
