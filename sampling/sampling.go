// Package sampling draws integers and floats from a PRNG byte stream.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/sgostarter/i/commerr"
)

type Sampler struct {
	prng PRNG
	buf  [8]byte
}

// NewSampler wraps prng. A nil prng falls back to NewPRNG().
func NewSampler(prng PRNG) *Sampler {
	if prng == nil {
		prng = NewPRNG()
	}

	return &Sampler{
		prng: prng,
	}
}

func (s *Sampler) Uint64() (uint64, error) {
	if _, err := io.ReadFull(s.prng, s.buf[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(s.buf[:]), nil
}

// Intn returns a uniform integer in [0, n). Rejection sampling keeps the
// distribution unbiased.
func (s *Sampler) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: intn bound %d", commerr.ErrInvalidArgument, n)
	}

	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound

	for {
		v, err := s.Uint64()
		if err != nil {
			return 0, err
		}

		if v < limit {
			return int(v % bound), nil
		}
	}
}

// Float64 returns a uniform float in [min, max).
func (s *Sampler) Float64(min, max float64) (float64, error) {
	v, err := s.Uint64()
	if err != nil {
		return 0, err
	}

	f := float64(v>>11) / (1 << 53)

	return min + f*(max-min), nil
}

// DistinctInts returns n distinct integers drawn from [min, max) using
// Floyd's algorithm. The order of the result follows the draws, so a keyed
// PRNG always yields the same slice.
func (s *Sampler) DistinctInts(min, max, n int) ([]int, error) {
	if n < 0 || max < min || n > max-min {
		return nil, fmt.Errorf("%w: cannot draw %d distinct values from [%d, %d)",
			commerr.ErrOutOfRange, n, min, max)
	}

	span := max - min
	picked := make(map[int]struct{}, n)
	out := make([]int, 0, n)

	for j := span - n; j < span; j++ {
		t, err := s.Intn(j + 1)
		if err != nil {
			return nil, err
		}

		if _, ok := picked[t]; ok {
			t = j
		}

		picked[t] = struct{}{}
		out = append(out, min+t)
	}

	return out, nil
}
