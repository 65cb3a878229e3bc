package curve

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func checkFinite(what string, x float64) error {
	if !isFinite(x) {
		return fmt.Errorf("%w: %s must be a finite real, got %v", ErrType, what, x)
	}

	return nil
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}

	return false
}

// toReal converts a loosely typed number, as produced by yaml decoding, into a
// finite float64. Integers are accepted and treated as reals; text is not.
func toReal(what string, v any) (float64, error) {
	if !isNumber(v) {
		return 0, fmt.Errorf("%w: %s must be a real number, got %T(%v)", ErrType, what, v, v)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrType, what, err)
	}

	if err = checkFinite(what, f); err != nil {
		return 0, err
	}

	return f, nil
}

// toCount converts a loosely typed integer. Floats are only accepted when they
// hold an integral value.
func toCount(what string, v any) (int, error) {
	if !isNumber(v) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %T(%v)", ErrType, what, v, v)
	}

	switch f := v.(type) {
	case float32:
		if !isFinite(float64(f)) || float32(math.Trunc(float64(f))) != f {
			return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrType, what, f)
		}
	case float64:
		if !isFinite(f) || math.Trunc(f) != f {
			return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrType, what, f)
		}
	}

	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrType, what, err)
	}

	return n, nil
}

func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)

	return keys
}
