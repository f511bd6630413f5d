package ops

import "math"

// SinOp is the sine: output = sin(x).
//
// Since d(sin(x))/dx = cos(x):
//   - forward:  d(sin x) = cos(x)·dx
//   - backward: grad_x = grad_output · cos(x)
type SinOp struct{}

func (SinOp) Apply(x float64) float64 { return math.Sin(x) }

func (SinOp) Tangent(x, dx float64) float64 { return math.Cos(x) * dx }

func (SinOp) Partial(x float64) float64 { return math.Cos(x) }
