package vec

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/autodx/internal/autodiff"
	"github.com/born-ml/autodx/internal/expr"
)

// Operand is a Node, a Go numeric literal (promoted to a size-1 constant,
// exactly as the scalar builder promotes it) or a []float64 (promoted to a
// constant vector).
type Operand = any

func shapeError(op string, a, b int) error {
	return errors.Wrapf(autodiff.ErrShapeMismatch, "%s: sizes %d and %d", op, a, b)
}

// Lift converts an operand to a Node. It panics on unsupported types.
func Lift(x Operand) Node {
	switch v := x.(type) {
	case nil:
		panic("vec: nil operand")
	case Node:
		return v
	case []float64:
		return NewConst(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return Scalar(expr.Lift(v).Value())
	default:
		panic(fmt.Sprintf("vec: cannot use %T as an operand", x))
	}
}

// Add returns the elementwise sum a + b.
func Add(a, b Operand) (Node, error) { return elementwiseBinary(OpAdd, a, b) }

// Sub returns the elementwise difference a - b.
func Sub(a, b Operand) (Node, error) { return elementwiseBinary(OpSub, a, b) }

// Mul returns the elementwise product a * b.
func Mul(a, b Operand) (Node, error) { return elementwiseBinary(OpMul, a, b) }

// Div returns the elementwise quotient a / b.
func Div(a, b Operand) (Node, error) { return elementwiseBinary(OpDiv, a, b) }

func elementwiseBinary(op Op, a, b Operand) (Node, error) {
	l, r := Lift(a), Lift(b)
	switch {
	case l.Size() == r.Size():
	case l.Size() == 1:
		l = Expand(l, r.Size())
	case r.Size() == 1:
		r = Expand(r, l.Size())
	default:
		return nil, shapeError(op.String(), l.Size(), r.Size())
	}
	return &Binary{state: state{size: l.Size()}, op: op, left: l, right: r}, nil
}

// Dot returns the inner product of a and b as a size-1 node. The sizes
// must match exactly; scalars are not expanded.
func Dot(a, b Operand) (Node, error) {
	l, r := Lift(a), Lift(b)
	if l.Size() != r.Size() {
		return nil, shapeError("dot", l.Size(), r.Size())
	}
	return &Binary{state: state{size: 1}, op: OpDot, left: l, right: r}, nil
}

// Sin returns the elementwise sine of a.
func Sin(a Operand) Node {
	x := Lift(a)
	return &Unary{state: state{size: x.Size()}, op: OpSin, operand: x}
}

// Ln returns the elementwise natural logarithm of a.
func Ln(a Operand) Node {
	x := Lift(a)
	return &Unary{state: state{size: x.Size()}, op: OpLn, operand: x}
}

// Sum returns the sum of a's elements as a size-1 node.
func Sum(a Operand) Node {
	return &Unary{state: state{size: 1}, op: OpSum, operand: Lift(a)}
}

// Expand repeats a size-1 operand n times. It panics if the operand is
// not a scalar or n < 1.
func Expand(a Operand, n int) Node {
	x := Lift(a)
	if x.Size() != 1 {
		panic(fmt.Sprintf("vec: expand of size %d operand", x.Size()))
	}
	if n < 1 {
		panic(fmt.Sprintf("vec: expand to size %d", n))
	}
	return &Unary{state: state{size: n}, op: OpExpand, operand: x}
}

// Must panics if err is non-nil and returns n otherwise. It is meant for
// trees whose shapes are known to agree.
func Must(n Node, err error) Node {
	if err != nil {
		panic(err)
	}
	return n
}
