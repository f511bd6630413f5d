package autodiff

import (
	"fmt"

	"github.com/born-ml/autodx/internal/autodiff/ops"
	"github.com/born-ml/autodx/internal/expr"
)

// Seed assigns a tangent to each variable for a forward-mode pass.
// Variables absent from the seed have tangent 0.
type Seed map[*expr.Var]float64

// OneHot returns the seed selecting v: tangent 1 at v, 0 elsewhere.
func OneHot(v *expr.Var) Seed {
	return Seed{v: 1}
}

// Dual is a value together with its derivative along the seed direction.
type Dual struct {
	Value float64
	Deriv float64
}

// Forward evaluates root and its directional derivative along seed in a
// single bottom-up pass.
//
// Forward reads variable values and never writes node state, so passes
// with different seeds may run concurrently on the same tree.
func Forward(root expr.Node, seed Seed) Dual {
	switch n := root.(type) {
	case *expr.Const:
		return Dual{Value: n.Value()}

	case *expr.Var:
		return Dual{Value: n.Value(), Deriv: seed[n]}

	case *expr.Binary:
		l := Forward(n.Left(), seed)
		r := Forward(n.Right(), seed)
		rule := ops.Binary(n.Op())
		return Dual{
			Value: rule.Apply(l.Value, r.Value),
			Deriv: rule.Tangent(l.Value, r.Value, l.Deriv, r.Deriv),
		}

	case *expr.Unary:
		x := Forward(n.Operand(), seed)
		rule := ops.Unary(n.Op())
		return Dual{
			Value: rule.Apply(x.Value),
			Deriv: rule.Tangent(x.Value, x.Deriv),
		}

	default:
		panic(fmt.Sprintf("autodiff: unknown node type %T", root))
	}
}

// forwardGradient runs one one-hot pass per variable. Passes are
// independent; forEach decides whether they run sequentially or in parallel.
func forwardGradient(root expr.Node, vars []*expr.Var, forEach func(n int, f func(i int))) (float64, []float64) {
	if len(vars) == 0 {
		return Forward(root, nil).Value, []float64{}
	}

	values := make([]float64, len(vars))
	grad := make([]float64, len(vars))
	forEach(len(vars), func(i int) {
		d := Forward(root, OneHot(vars[i]))
		values[i] = d.Value
		grad[i] = d.Deriv
	})
	return values[0], grad
}
