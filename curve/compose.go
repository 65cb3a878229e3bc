package curve

import (
	"fmt"

	"github.com/sgostarter/i/l"
)

// Operand is the right-hand side of Add. The set of operands is closed:
// FunctionOperand and ScalarOperand.
type Operand interface {
	sumWith(f *Function) ([]Point, error)
}

// FunctionOperand adds another Function pointwise.
type FunctionOperand struct {
	Function *Function
}

// ScalarOperand offsets every sample by Value.
type ScalarOperand struct {
	Value float64
}

// OperandOf resolves a loosely typed right-hand side: a *Function or a Go
// number. Anything else is rejected with ErrType.
func OperandOf(v any) (Operand, error) {
	switch o := v.(type) {
	case *Function:
		if o == nil {
			break
		}

		return FunctionOperand{Function: o}, nil
	case FunctionOperand:
		return o, nil
	case ScalarOperand:
		return o, nil
	}

	if !isNumber(v) {
		return nil, fmt.Errorf("%w: unsupported operand %T(%v)", ErrType, v, v)
	}

	x, err := toReal("operand", v)
	if err != nil {
		return nil, err
	}

	return ScalarOperand{Value: x}, nil
}

// The result covers the union of both coordinate sets. Each coordinate keeps
// its own value and receives the other side's evaluation at that coordinate.
func (o FunctionOperand) sumWith(f *Function) ([]Point, error) {
	g := o.Function
	if g == nil {
		return nil, fmt.Errorf("%w: nil function operand", ErrType)
	}

	points := make([]Point, 0, f.store.len()+g.store.len())

	for _, c := range f.store.coords {
		gv, err := g.Interp(c)
		if err != nil {
			return nil, err
		}

		points = append(points, Point{Coord: c, Value: f.store.values[c] + gv})
	}

	for _, c := range g.store.coords {
		if _, ok := f.store.values[c]; ok {
			continue
		}

		fv, err := f.Interp(c)
		if err != nil {
			return nil, err
		}

		points = append(points, Point{Coord: c, Value: fv + g.store.values[c]})
	}

	return points, nil
}

func (o ScalarOperand) sumWith(f *Function) ([]Point, error) {
	if err := checkFinite("scalar operand", o.Value); err != nil {
		return nil, err
	}

	points := make([]Point, 0, f.store.len())

	for _, c := range f.store.coords {
		points = append(points, Point{Coord: c, Value: f.store.values[c] + o.Value})
	}

	return points, nil
}

// Add returns a new Function holding f + op. The result does not inherit the
// modes or the logger of f; pass opts to choose them.
func (f *Function) Add(op Operand, opts ...Option) (*Function, error) {
	if op == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrType)
	}

	points, err := op.sumWith(f)
	if err != nil {
		f.logger.WithFields(l.ErrorField(err)).Error("add failed")

		return nil, err
	}

	return New(append([]Option{WithPoints(points...)}, opts...)...)
}

// AddAssign replaces the samples of f with those of f + op. The modes and
// the logger of f are kept. On error f is unchanged.
func (f *Function) AddAssign(op Operand) error {
	sum, err := f.Add(op)
	if err != nil {
		return err
	}

	f.store = sum.store

	return nil
}
