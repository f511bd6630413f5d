package ops

// DivOp is division: output = a / b.
//
// Forward (quotient rule):
//
//	d(a/b) = (da·b - a·db) / b²
//
// Backward:
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b²
//
// b == 0 is not special-cased; the results are IEEE ±Inf or NaN.
type DivOp struct{}

func (DivOp) Apply(a, b float64) float64 { return a / b }

func (DivOp) Tangent(a, b, da, db float64) float64 {
	return (da*b - a*db) / (b * b)
}

func (DivOp) Partials(a, b float64) (float64, float64) {
	return 1 / b, -a / (b * b)
}
