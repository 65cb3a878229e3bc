package curve

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
	"golang.org/x/exp/slices"
)

// pointStore owns the coordinate -> value mapping. coords and the bounds are
// derived from values and are rebuilt by every mutating method before it
// returns.
type pointStore struct {
	values map[float64]float64
	coords []float64
}

func newPointStore() *pointStore {
	return &pointStore{
		values: make(map[float64]float64),
	}
}

func (s *pointStore) refresh() {
	s.coords = sortedKeys(s.values)
}

func (s *pointStore) insert(coord, value float64) error {
	if err := checkFinite("coordinate", coord); err != nil {
		return err
	}

	if err := checkFinite("value", value); err != nil {
		return err
	}

	if _, ok := s.values[coord]; ok {
		return fmt.Errorf("%w: %w: duplicate key %v", ErrValue, commerr.ErrAlreadyExists, coord)
	}

	s.values[coord] = value
	s.refresh()

	return nil
}

// insertAll adds every point or none of them.
func (s *pointStore) insertAll(points []Point) error {
	batch := make(map[float64]struct{}, len(points))

	for _, p := range points {
		if err := checkFinite("coordinate", p.Coord); err != nil {
			return err
		}

		if err := checkFinite("value", p.Value); err != nil {
			return err
		}

		_, inBatch := batch[p.Coord]
		_, inStore := s.values[p.Coord]

		if inBatch || inStore {
			return fmt.Errorf("%w: %w: duplicate key %v", ErrValue, commerr.ErrAlreadyExists, p.Coord)
		}

		batch[p.Coord] = struct{}{}
	}

	for _, p := range points {
		s.values[p.Coord] = p.Value
	}

	s.refresh()

	return nil
}

func (s *pointStore) remove(coord float64) error {
	if err := checkFinite("coordinate", coord); err != nil {
		return err
	}

	if _, ok := s.values[coord]; !ok {
		return fmt.Errorf("%w: %w: coordinate %v does not exist", ErrValue, commerr.ErrNotFound, coord)
	}

	delete(s.values, coord)
	s.refresh()

	return nil
}

func (s *pointStore) value(coord float64) (v float64, ok bool) {
	v, ok = s.values[coord]

	return
}

func (s *pointStore) len() int {
	return len(s.coords)
}

func (s *pointStore) bounds() (minCoord, maxCoord float64, ok bool) {
	if len(s.coords) == 0 {
		return
	}

	return s.coords[0], s.coords[len(s.coords)-1], true
}

// nearest returns up to k stored coordinates ordered by distance to coord.
// Equal distances resolve to the lower coordinate first.
func (s *pointStore) nearest(coord float64, k int) []float64 {
	idx, _ := slices.BinarySearch(s.coords, coord)

	lo, hi := idx-1, idx
	out := make([]float64, 0, k)

	for len(out) < k && (lo >= 0 || hi < len(s.coords)) {
		switch {
		case lo < 0:
			out = append(out, s.coords[hi])
			hi++
		case hi >= len(s.coords):
			out = append(out, s.coords[lo])
			lo--
		case coord-s.coords[lo] <= s.coords[hi]-coord:
			out = append(out, s.coords[lo])
			lo--
		default:
			out = append(out, s.coords[hi])
			hi++
		}
	}

	return out
}

func (s *pointStore) clone() *pointStore {
	c := &pointStore{
		values: make(map[float64]float64, len(s.values)),
		coords: make([]float64, len(s.coords)),
	}

	for coord, v := range s.values {
		c.values[coord] = v
	}

	copy(c.coords, s.coords)

	return c
}
