package vec

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/autodx/internal/autodiff"
	"github.com/born-ml/autodx/internal/autodiff/ops"
)

// Backward propagates adjoints from root down to its variables. The root
// is seeded with ones, so every variable ends up holding the gradient of
// the sum of root's elements. Like the scalar engine it zeroes all
// adjoints first and fails with ErrUninitialized before Eval.
func Backward(root Node) error {
	if !root.Evaluated() {
		return errors.Wrapf(autodiff.ErrUninitialized, "root %s", root)
	}
	walk(root, func(n Node) {
		s := n.base()
		s.adjoint = make([]float64, s.size)
	})

	seed := make([]float64, root.Size())
	for i := range seed {
		seed[i] = 1
	}
	propagate(root, seed)
	return nil
}

// propagate adds g into n's adjoint (constants excepted) and pushes the
// vector-Jacobian product down to n's operands. g is never modified.
func propagate(n Node, g []float64) {
	switch n := n.(type) {
	case *Const:
		// constants are not differentiation targets

	case *Var:
		floats.Add(n.adjoint, g)

	case *Binary:
		floats.Add(n.adjoint, g)
		l, r := n.left.Value(), n.right.Value()
		if n.op == OpDot {
			gl := append([]float64(nil), r...)
			floats.Scale(g[0], gl)
			gr := append([]float64(nil), l...)
			floats.Scale(g[0], gr)
			propagate(n.left, gl)
			propagate(n.right, gr)
			return
		}
		rule := ops.Binary(elementwise[n.op])
		gl := make([]float64, n.size)
		gr := make([]float64, n.size)
		for i := range g {
			dl, dr := rule.Partials(l[i], r[i])
			gl[i], gr[i] = g[i]*dl, g[i]*dr
		}
		propagate(n.left, gl)
		propagate(n.right, gr)

	case *Unary:
		floats.Add(n.adjoint, g)
		x := n.operand.Value()
		gx := make([]float64, n.operand.Size())
		switch n.op {
		case OpSum:
			for i := range gx {
				gx[i] = g[0]
			}
		case OpExpand:
			gx[0] = floats.Sum(g)
		default:
			rule := ops.Unary(elementwise[n.op])
			for i := range gx {
				gx[i] = g[i] * rule.Partial(x[i])
			}
		}
		propagate(n.operand, gx)

	default:
		panic(fmt.Sprintf("vec: unknown node type %T", n))
	}
}

// Gradient returns the adjoints of vars after Backward on root. Variables
// that do not appear in root get a zero vector of their own size.
func Gradient(root Node, vars ...*Var) [][]float64 {
	present := make(map[*Var]struct{})
	for _, v := range Vars(root) {
		present[v] = struct{}{}
	}

	out := make([][]float64, len(vars))
	for i, v := range vars {
		if _, ok := present[v]; ok && v.adjoint != nil {
			out[i] = append([]float64(nil), v.adjoint...)
			continue
		}
		out[i] = make([]float64, v.size)
	}
	return out
}

// Grad evaluates root, runs Backward and returns root's value and the
// gradients for vars.
func Grad(root Node, vars ...*Var) ([]float64, [][]float64, error) {
	y := Eval(root)
	if err := Backward(root); err != nil {
		return nil, nil, err
	}
	return y, Gradient(root, vars...), nil
}
