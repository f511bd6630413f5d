package autodiff

import (
	"fmt"

	"github.com/born-ml/autodx/internal/expr"
)

// Func adapts root into a plain function of its variables, for numeric
// tools that know nothing about trees (such as package fd). Each call
// moves vars to x, runs a value pass and moves vars back to where they
// were, so probing nearby points never shifts the tree's input. Node
// caches are left at the probed point: run Eval again before Backward.
// The function panics if len(x) != len(vars).
func Func(root expr.Node, vars []*expr.Var) func(x []float64) float64 {
	return func(x []float64) float64 {
		if len(x) != len(vars) {
			panic(fmt.Sprintf("autodiff: got %d inputs for %d variables", len(x), len(vars)))
		}
		saved := make([]float64, len(vars))
		for i, v := range vars {
			saved[i] = v.Value()
			v.SetValue(x[i])
		}
		y := Eval(root)
		for i, v := range vars {
			v.SetValue(saved[i])
		}
		return y
	}
}
