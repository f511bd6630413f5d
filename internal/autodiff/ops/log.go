package ops

import "math"

// LogOp is the natural logarithm: output = ln(x).
//
// Forward:
//
//	d(ln x) = dx / x
//
// Backward:
//
//	∂L/∂x = ∂L/∂output · (1 / x)
//
// Note: ln is only defined for x > 0. ln(0) is -Inf and negative inputs
// give NaN; both propagate through the rest of the expression.
type LogOp struct{}

func (LogOp) Apply(x float64) float64 { return math.Log(x) }

func (LogOp) Tangent(x, dx float64) float64 { return dx / x }

func (LogOp) Partial(x float64) float64 { return 1 / x }
