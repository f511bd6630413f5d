package ops

// MulOp is multiplication: output = a * b.
//
// Forward (product rule):
//
//	d(a*b) = a·db + b·da
//
// Backward:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
type MulOp struct{}

func (MulOp) Apply(a, b float64) float64 { return a * b }

func (MulOp) Tangent(a, b, da, db float64) float64 {
	return a*db + b*da
}

func (MulOp) Partials(a, b float64) (float64, float64) {
	return b, a
}
