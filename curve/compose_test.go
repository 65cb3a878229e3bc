package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddScalar(t *testing.T) {
	f := mustNew(t, WithPoints(pts(1, 2, 2, 3, 3, 4)...))

	op, err := OperandOf(5)
	require.Nil(t, err)

	sum, err := f.Add(op)
	require.Nil(t, err)
	assert.Equal(t, pts(1, 7, 2, 8, 3, 9), sum.Points())

	// operands are left untouched
	assert.Equal(t, pts(1, 2, 2, 3, 3, 4), f.Points())

	sum, err = f.Add(ScalarOperand{Value: -1.5})
	require.Nil(t, err)
	assert.Equal(t, pts(1, 0.5, 2, 1.5, 3, 2.5), sum.Points())
}

func TestAddScalarNotFinite(t *testing.T) {
	f := mustNew(t, WithPoints(pts(1, 2)...))

	_, err := f.Add(ScalarOperand{Value: math.NaN()})
	assert.True(t, errors.Is(err, ErrType))

	_, err = OperandOf(math.Inf(1))
	assert.True(t, errors.Is(err, ErrType))
}

func TestAddFunction(t *testing.T) {
	f := mustNew(t, WithPoints(pts(0, 0, 2, 2)...), WithInterpolation(ModeLinear))
	g := mustNew(t, WithPoints(pts(1, 10, 3, 30)...), WithInterpolation(ModeLinear))

	op, err := OperandOf(g)
	require.Nil(t, err)

	sum, err := f.Add(op)
	require.Nil(t, err)

	// f(0)+g(0)=0+10, f(2)+g(2)=2+20, f(1)+g(1)=1+10, f(3)+g(3)=2+30
	assert.Equal(t, pts(0, 10, 1, 11, 2, 22, 3, 32), sum.Points())

	interpolation, extrapolation := sum.Modes()
	assert.Equal(t, ModeNearestNeighbor, interpolation)
	assert.Equal(t, ModeNearestNeighbor, extrapolation)

	sum, err = f.Add(op, WithInterpolation(ModeLinear))
	require.Nil(t, err)

	interpolation, _ = sum.Modes()
	assert.Equal(t, ModeLinear, interpolation)
}

func TestAddPointwiseLaw(t *testing.T) {
	f := mustNew(t, WithPoints(pts(0, 1, 4, 5, 8, -3)...), WithInterpolation(ModeLinear))
	g := mustNew(t, WithPoints(pts(2, 2, 4, 4, 6, 0)...), WithInterpolation(ModeLinear))

	sum, err := f.Add(FunctionOperand{Function: g})
	require.Nil(t, err)

	for _, c := range []float64{0, 2, 4, 6, 8} {
		fv, err := f.Interp(c)
		require.Nil(t, err)

		gv, err := g.Interp(c)
		require.Nil(t, err)

		v, ok := sum.Value(c)
		assert.True(t, ok)
		assert.InDelta(t, fv+gv, v, 1e-12, "coord %v", c)
	}
}

func TestAddAssign(t *testing.T) {
	g := mustNew(t, WithPoints(pts(1, 1, 5, 5)...))

	f := mustNew(t, WithPoints(pts(0, 3, 3, 4)...), WithExtrapolation(ModeLinear))
	orig := f.Clone()

	want, err := orig.Add(FunctionOperand{Function: g})
	require.Nil(t, err)

	require.Nil(t, f.AddAssign(FunctionOperand{Function: g}))
	assert.Equal(t, want.Points(), f.Points())

	checkBounds(t, f, 0, 5)

	_, extrapolation := f.Modes()
	assert.Equal(t, ModeLinear, extrapolation)

	require.Nil(t, f.AddAssign(ScalarOperand{Value: 1}))

	want, err = want.Add(ScalarOperand{Value: 1})
	require.Nil(t, err)
	assert.Equal(t, want.Points(), f.Points())
}

func TestAddAssignSelf(t *testing.T) {
	f := mustNew(t, WithPoints(pts(1, 1, 2, 4)...))

	require.Nil(t, f.AddAssign(FunctionOperand{Function: f}))
	assert.Equal(t, pts(1, 2, 2, 8), f.Points())
}

func TestAddAssignFailureKeepsReceiver(t *testing.T) {
	f := mustNew(t, WithPoints(pts(1, 1, 2, 4)...))
	empty := mustNew(t)

	err := f.AddAssign(FunctionOperand{Function: empty})
	assert.True(t, errors.Is(err, ErrTooFewPoints))
	assert.Equal(t, pts(1, 1, 2, 4), f.Points())
}

func TestAddEmptyReceiver(t *testing.T) {
	f := mustNew(t)

	sum, err := f.Add(ScalarOperand{Value: 3})
	require.Nil(t, err)
	assert.EqualValues(t, 0, sum.Len())
}

func TestOperandOfBadTypes(t *testing.T) {
	for _, v := range []any{"5", true, nil, []float64{1}, (*Function)(nil)} {
		_, err := OperandOf(v)
		assert.True(t, errors.Is(err, ErrType), "%T", v)
	}

	for _, v := range []any{int8(1), uint32(2), float32(1.5), 4.25} {
		op, err := OperandOf(v)
		assert.Nil(t, err)
		assert.IsType(t, ScalarOperand{}, op)
	}
}

func TestAddNilOperand(t *testing.T) {
	f := mustNew(t, WithPoints(pts(1, 1)...))

	_, err := f.Add(nil)
	assert.True(t, errors.Is(err, ErrType))

	_, err = f.Add(FunctionOperand{})
	assert.True(t, errors.Is(err, ErrType))
}
