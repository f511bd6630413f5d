package ops_test

import (
	"math"
	"testing"

	"github.com/born-ml/autodx/internal/autodiff/ops"
	"github.com/born-ml/autodx/internal/expr"
	"github.com/stretchr/testify/assert"
)

const (
	epsilonGrad = 1e-6
	tolerance   = 1e-6
)

// centralDiff approximates f'(x) with a central difference.
func centralDiff(f func(float64) float64, x float64) float64 {
	return (f(x+epsilonGrad) - f(x-epsilonGrad)) / (2 * epsilonGrad)
}

// TestBinaryOps_Partials checks each binary rule against central differences
// at a point away from singularities.
func TestBinaryOps_Partials(t *testing.T) {
	a, b := 1.7, -2.3

	for _, op := range []expr.Op{expr.OpAdd, expr.OpSub, expr.OpMul, expr.OpDiv} {
		rule := ops.Binary(op)
		da, db := rule.Partials(a, b)

		wantA := centralDiff(func(x float64) float64 { return rule.Apply(x, b) }, a)
		wantB := centralDiff(func(x float64) float64 { return rule.Apply(a, x) }, b)

		assert.InDelta(t, wantA, da, tolerance, "%s d/da", op)
		assert.InDelta(t, wantB, db, tolerance, "%s d/db", op)
	}
}

// TestBinaryOps_TangentMatchesPartials checks that the forward rule is the
// directional derivative built from the reverse-mode partials.
func TestBinaryOps_TangentMatchesPartials(t *testing.T) {
	a, b := 0.8, 3.1
	da, db := 0.25, -1.5

	for _, op := range []expr.Op{expr.OpAdd, expr.OpSub, expr.OpMul, expr.OpDiv} {
		rule := ops.Binary(op)
		pa, pb := rule.Partials(a, b)
		assert.InDelta(t, pa*da+pb*db, rule.Tangent(a, b, da, db), 1e-12, "%s", op)
	}
}

func TestUnaryOps(t *testing.T) {
	x := 0.9

	for _, op := range []expr.Op{expr.OpSin, expr.OpLn} {
		rule := ops.Unary(op)
		want := centralDiff(rule.Apply, x)
		assert.InDelta(t, want, rule.Partial(x), tolerance, "%s", op)
		assert.InDelta(t, rule.Partial(x)*2, rule.Tangent(x, 2), 1e-12, "%s", op)
	}
}

func TestMulOp_Partials(t *testing.T) {
	da, db := ops.MulOp{}.Partials(2, 5)
	assert.Equal(t, 5.0, da)
	assert.Equal(t, 2.0, db)
}

func TestDivOp_ByZero(t *testing.T) {
	div := ops.DivOp{}
	assert.True(t, math.IsInf(div.Apply(1, 0), 1))
	assert.True(t, math.IsInf(div.Apply(-1, 0), -1))
	assert.True(t, math.IsNaN(div.Apply(0, 0)))

	da, db := div.Partials(1, 0)
	assert.True(t, math.IsInf(da, 1))
	assert.True(t, math.IsInf(db, -1))
}

func TestLogOp_Domain(t *testing.T) {
	ln := ops.LogOp{}
	assert.True(t, math.IsNaN(ln.Apply(-1)))
	assert.True(t, math.IsInf(ln.Apply(0), -1))
	assert.True(t, math.IsInf(ln.Partial(0), 1))
}

func TestLookup_Panics(t *testing.T) {
	assert.Panics(t, func() { ops.Binary(expr.OpSin) })
	assert.Panics(t, func() { ops.Unary(expr.OpMul) })
}
