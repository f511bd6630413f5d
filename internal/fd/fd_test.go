package fd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	gfd "gonum.org/v1/gonum/diff/fd"
)

// rosenbrock is f(x, y) = (1-x)² + 100(y-x²)².
func rosenbrock(x []float64) float64 {
	a := 1 - x[0]
	b := x[1] - x[0]*x[0]
	return a*a + 100*b*b
}

func rosenbrockGrad(x []float64) []float64 {
	return []float64{
		-2*(1-x[0]) - 400*x[0]*(x[1]-x[0]*x[0]),
		200 * (x[1] - x[0]*x[0]),
	}
}

func TestGradient_Forward(t *testing.T) {
	x := []float64{0.5, -0.3}
	got := Gradient(rosenbrock, x, 1e-7)

	// Forward differences lose about half the digits.
	assert.InDeltaSlice(t, rosenbrockGrad(x), got, 1e-4)
}

// TestGradient_ForwardQuotient checks the exact forward quotient: for x²
// it is 2x + h.
func TestGradient_ForwardQuotient(t *testing.T) {
	f := func(v []float64) float64 { return v[0] * v[0] }
	for _, h := range []float64{0.5, 0.25, 0.125} {
		assert.Equal(t, 6+h, Gradient(f, []float64{3}, h)[0], "h=%g", h)
	}
}

func TestGradient_LeavesInputUnchanged(t *testing.T) {
	x := []float64{0.1, 0.7, 123.456}
	want := append([]float64(nil), x...)

	Gradient(func(v []float64) float64 { return v[0] * v[1] * v[2] }, x, 1e-3)
	assert.Equal(t, want, x)

	GradientWith(func(v []float64) float64 { return v[0] + v[2] }, x, Settings{Step: 0.1, Formula: Central})
	assert.Equal(t, want, x)
}

func TestGradient_EvaluationCount(t *testing.T) {
	calls := 0
	f := func(v []float64) float64 {
		calls++
		return v[0] + v[1] + v[2]
	}

	Gradient(f, []float64{1, 2, 3}, 1e-6)
	assert.Equal(t, 4, calls, "f(x) once plus one call per coordinate")

	calls = 0
	GradientWith(f, []float64{1, 2, 3}, Settings{Step: 1e-6, Formula: Central})
	assert.Equal(t, 6, calls)
}

func TestGradientWith_CentralIsMoreAccurate(t *testing.T) {
	f := func(v []float64) float64 { return math.Sin(v[0]) }
	x := 1.2
	want := math.Cos(x)

	fwd := GradientWith(f, []float64{x}, Settings{Step: 1e-3, Formula: Forward})[0]
	cen := GradientWith(f, []float64{x}, Settings{Step: 1e-3, Formula: Central})[0]

	assert.Less(t, math.Abs(cen-want), math.Abs(fwd-want))
	assert.InDelta(t, want, cen, 1e-6)
}

// TestGradient_StepDegradation documents that tiny steps on large inputs
// lose accuracy to cancellation.
func TestGradient_StepDegradation(t *testing.T) {
	f := func(v []float64) float64 { return v[0] * v[0] }
	x := []float64{1e6}
	want := 2e6

	good := Gradient(f, x, 1)[0]
	bad := Gradient(f, x, 1e-10)[0]

	assert.InEpsilon(t, want, good, 1e-6)
	assert.Greater(t, math.Abs(bad-want), math.Abs(good-want))
}

func TestDerivative(t *testing.T) {
	d := Derivative(math.Log, 2, Settings{Step: 1e-5, Formula: Central})
	assert.InDelta(t, 0.5, d, 1e-8)
}

func TestGradientWith_InvalidSettings(t *testing.T) {
	f := func(v []float64) float64 { return v[0] }
	assert.Panics(t, func() { Gradient(f, []float64{1}, 0) })
	assert.Panics(t, func() { Gradient(f, []float64{1}, -1e-3) })
	assert.Panics(t, func() { Gradient(f, []float64{1}, math.NaN()) })
	assert.Panics(t, func() { Gradient(f, []float64{1}, math.Inf(1)) })
	assert.Panics(t, func() { GradientWith(f, []float64{1}, Settings{Step: 1, Formula: gfd.Central2nd}) })
	assert.Panics(t, func() { GradientWith(f, []float64{1}, Settings{Step: 1}) })
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, Forward, s.Formula)
	assert.Equal(t, 1e-6, s.Step)
}
