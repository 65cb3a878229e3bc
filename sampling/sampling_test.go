package sampling

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var utKey = []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb}

func TestKeyedPRNG(t *testing.T) {
	ha, err := NewKeyedPRNG(utKey)
	require.Nil(t, err)

	hb, err := NewKeyedPRNG(utKey)
	require.Nil(t, err)

	sum0 := make([]byte, 256)
	sum1 := make([]byte, 256)

	_, err = ha.Read(sum0)
	assert.Nil(t, err)

	_, err = hb.Read(sum1)
	assert.Nil(t, err)

	assert.Equal(t, sum0, sum1)
	assert.Equal(t, utKey, ha.Key())

	ha.Reset()

	again := make([]byte, 256)
	_, err = ha.Read(again)
	assert.Nil(t, err)
	assert.Equal(t, sum0, again)
}

func TestKeyedPRNGKeyTooLong(t *testing.T) {
	_, err := NewKeyedPRNG(make([]byte, 65))
	assert.NotNil(t, err)
}

func TestIntn(t *testing.T) {
	prng, err := NewKeyedPRNG(utKey)
	require.Nil(t, err)

	s := NewSampler(prng)

	for i := 0; i < 1000; i++ {
		v, err := s.Intn(7)
		require.Nil(t, err)
		assert.True(t, v >= 0 && v < 7)
	}

	_, err = s.Intn(0)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestFloat64(t *testing.T) {
	s := NewSampler(nil)

	for i := 0; i < 1000; i++ {
		v, err := s.Float64(-100, 100)
		require.Nil(t, err)
		assert.True(t, v >= -100 && v < 100)
	}
}

func TestDistinctInts(t *testing.T) {
	prng, err := NewKeyedPRNG(utKey)
	require.Nil(t, err)

	s := NewSampler(prng)

	vs, err := s.DistinctInts(-1000, 1000, 50)
	require.Nil(t, err)
	assert.Len(t, vs, 50)

	seen := make(map[int]bool)

	for _, v := range vs {
		assert.True(t, v >= -1000 && v < 1000)
		assert.False(t, seen[v])
		seen[v] = true
	}

	// the whole range
	vs, err = s.DistinctInts(0, 10, 10)
	require.Nil(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, vs)

	vs, err = s.DistinctInts(0, 10, 0)
	assert.Nil(t, err)
	assert.Empty(t, vs)

	_, err = s.DistinctInts(0, 10, 11)
	assert.True(t, errors.Is(err, commerr.ErrOutOfRange))

	_, err = s.DistinctInts(0, 10, -1)
	assert.True(t, errors.Is(err, commerr.ErrOutOfRange))
}

func TestDistinctIntsReproducible(t *testing.T) {
	pa, err := NewKeyedPRNG([]byte("seed"))
	require.Nil(t, err)

	pb, err := NewKeyedPRNG([]byte("seed"))
	require.Nil(t, err)

	va, err := NewSampler(pa).DistinctInts(-1000, 1000, 20)
	require.Nil(t, err)

	vb, err := NewSampler(pb).DistinctInts(-1000, 1000, 20)
	require.Nil(t, err)

	assert.Equal(t, va, vb)
}
