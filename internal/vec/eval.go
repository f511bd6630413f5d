package vec

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/autodx/internal/autodiff/ops"
)

// Eval computes root bottom-up, caches the value at every node and returns
// a copy of the root's value.
func Eval(root Node) []float64 {
	return append([]float64(nil), eval(root)...)
}

// eval returns node-owned slices; callers must not modify them.
func eval(root Node) []float64 {
	switch n := root.(type) {
	case *Const, *Var:
		return n.Value()

	case *Binary:
		l, r := eval(n.left), eval(n.right)
		out := make([]float64, n.size)
		switch n.op {
		case OpAdd:
			floats.AddTo(out, l, r)
		case OpSub:
			floats.SubTo(out, l, r)
		case OpMul:
			floats.MulTo(out, l, r)
		case OpDiv:
			floats.DivTo(out, l, r)
		case OpDot:
			out[0] = floats.Dot(l, r)
		default:
			panic(fmt.Sprintf("vec: unknown binary operator %s", n.op))
		}
		n.cache(out)
		return out

	case *Unary:
		x := eval(n.operand)
		out := make([]float64, n.size)
		switch n.op {
		case OpSin, OpLn:
			rule := ops.Unary(elementwise[n.op])
			for i, e := range x {
				out[i] = rule.Apply(e)
			}
		case OpSum:
			out[0] = floats.Sum(x)
		case OpExpand:
			for i := range out {
				out[i] = x[0]
			}
		default:
			panic(fmt.Sprintf("vec: unknown unary operator %s", n.op))
		}
		n.cache(out)
		return out

	default:
		panic(fmt.Sprintf("vec: unknown node type %T", root))
	}
}

// Seed assigns a tangent vector to each variable for a forward-mode pass.
// Variables absent from the seed have a zero tangent.
type Seed map[*Var][]float64

// Forward evaluates root and its directional derivative along seed in one
// pass without touching node state. Each seed entry must have the size of
// its variable, otherwise Forward fails with ErrShapeMismatch.
func Forward(root Node, seed Seed) ([]float64, []float64, error) {
	for v, d := range seed {
		if len(d) != v.size {
			return nil, nil, shapeError("seed "+v.String(), v.size, len(d))
		}
	}
	value, tangent := forward(root, seed)
	return append([]float64(nil), value...), tangent, nil
}

func forward(root Node, seed Seed) ([]float64, []float64) {
	switch n := root.(type) {
	case *Const:
		return n.value, make([]float64, n.size)

	case *Var:
		d := make([]float64, n.size)
		if s, ok := seed[n]; ok {
			copy(d, s)
		}
		return n.value, d

	case *Binary:
		l, dl := forward(n.left, seed)
		r, dr := forward(n.right, seed)
		if n.op == OpDot {
			// d(l·r) = l·dr + r·dl
			return []float64{floats.Dot(l, r)}, []float64{floats.Dot(l, dr) + floats.Dot(r, dl)}
		}
		rule := ops.Binary(elementwise[n.op])
		value := make([]float64, n.size)
		tangent := make([]float64, n.size)
		for i := range value {
			value[i] = rule.Apply(l[i], r[i])
			tangent[i] = rule.Tangent(l[i], r[i], dl[i], dr[i])
		}
		return value, tangent

	case *Unary:
		x, dx := forward(n.operand, seed)
		switch n.op {
		case OpSum:
			return []float64{floats.Sum(x)}, []float64{floats.Sum(dx)}
		case OpExpand:
			value := make([]float64, n.size)
			tangent := make([]float64, n.size)
			for i := range value {
				value[i], tangent[i] = x[0], dx[0]
			}
			return value, tangent
		}
		rule := ops.Unary(elementwise[n.op])
		value := make([]float64, n.size)
		tangent := make([]float64, n.size)
		for i := range value {
			value[i] = rule.Apply(x[i])
			tangent[i] = rule.Tangent(x[i], dx[i])
		}
		return value, tangent

	default:
		panic(fmt.Sprintf("vec: unknown node type %T", root))
	}
}
