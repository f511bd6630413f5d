package autodiff

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/autodx/internal/autodiff/ops"
	"github.com/born-ml/autodx/internal/expr"
)

// Eval is the value pass: it computes root bottom-up and caches the value
// at every node, then returns the root's value.
//
// Evaluating again with unchanged variables yields the same values.
func Eval(root expr.Node) float64 {
	switch n := root.(type) {
	case *expr.Const, *expr.Var:
		return n.Value()

	case *expr.Binary:
		l := Eval(n.Left())
		r := Eval(n.Right())
		n.Cache(ops.Binary(n.Op()).Apply(l, r))
		return n.Value()

	case *expr.Unary:
		x := Eval(n.Operand())
		n.Cache(ops.Unary(n.Op()).Apply(x))
		return n.Value()

	default:
		panic(fmt.Sprintf("autodiff: unknown node type %T", root))
	}
}

// ResetAdjoints zeroes the adjoint of every node reachable from root.
func ResetAdjoints(root expr.Node) {
	expr.Walk(root, func(n expr.Node) {
		n.ClearAdjoint()
	})
}

// Backward is the adjoint pass. It requires a completed value pass on root
// and fails with ErrUninitialized otherwise.
//
// Algorithm:
//  1. Zero every adjoint reachable from root, so each call is a fresh pass.
//  2. Seed the root with d(root)/d(root) = 1.
//  3. Walk top-down: each operator adds its incoming contribution to its
//     own adjoint and hands contribution·∂node/∂child to each child, using
//     the values cached by Eval.
//  4. Variables sum the contributions of every path that reaches them.
//
// After Backward, v.Adjoint() is d(root)/d(v) for every variable v in the
// tree. Trees sharing variables must not be differentiated concurrently.
func Backward(root expr.Node) error {
	if !root.Evaluated() {
		return errors.Wrapf(ErrUninitialized, "root %s", root)
	}
	ResetAdjoints(root)
	propagate(root, 1)
	return nil
}

// propagate pushes the contribution d(root)/d(n) along one path into n and
// on to n's operands. Contributions are passed as arguments, so nodes need
// no parent links.
func propagate(n expr.Node, contribution float64) {
	n.Accumulate(contribution)

	switch n := n.(type) {
	case *expr.Const, *expr.Var:
		// leaves end the path

	case *expr.Binary:
		l, r := n.Left(), n.Right()
		dl, dr := ops.Binary(n.Op()).Partials(l.Value(), r.Value())
		propagate(l, contribution*dl)
		propagate(r, contribution*dr)

	case *expr.Unary:
		x := n.Operand()
		propagate(x, contribution*ops.Unary(n.Op()).Partial(x.Value()))

	default:
		panic(fmt.Sprintf("autodiff: unknown node type %T", n))
	}
}

// Gradient maps each variable of a differentiated tree to its partial.
type Gradient map[*expr.Var]float64

// Collect reads the adjoints left by Backward for every variable of root.
func Collect(root expr.Node) Gradient {
	grad := make(Gradient)
	for _, v := range expr.Vars(root) {
		grad[v] = v.Adjoint()
	}
	return grad
}

// Get returns the partial for v, or exactly 0 when v is not in the tree.
func (g Gradient) Get(v *expr.Var) float64 {
	return g[v]
}

// Lookup returns the partial for v, or ErrUnknownVariable when v is not in
// the tree.
func (g Gradient) Lookup(v *expr.Var) (float64, error) {
	d, ok := g[v]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownVariable, "%s", v)
	}
	return d, nil
}

// Slice returns the partials for vars in order; variables absent from the
// tree read as 0.
func (g Gradient) Slice(vars ...*expr.Var) []float64 {
	out := make([]float64, len(vars))
	for i, v := range vars {
		out[i] = g[v]
	}
	return out
}

// Grad runs the value pass and the backward pass on root and returns its
// value together with the partials for vars.
func Grad(root expr.Node, vars ...*expr.Var) (float64, []float64, error) {
	y := Eval(root)
	if err := Backward(root); err != nil {
		return 0, nil, err
	}
	return y, Collect(root).Slice(vars...), nil
}
