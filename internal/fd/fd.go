// Package fd approximates gradients numerically with finite differences.
//
// It knows nothing about expression trees and serves as an independent
// check on the analytic derivatives of package autodiff. The difference
// quotients are gonum's; this package fixes the step explicitly so that
// callers pick it (and any comparison tolerance) for the magnitude of their
// inputs: too large a step leaves truncation error, too small a step loses
// digits to cancellation.
package fd

import (
	"fmt"
	"math"

	gfd "gonum.org/v1/gonum/diff/fd"
)

// Formula is a first-derivative difference stencil.
type Formula = gfd.Formula

var (
	// Forward is (f(x+h·e_i) - f(x)) / h, error O(h), one extra call per
	// coordinate.
	Forward = gfd.Forward
	// Central is (f(x+h·e_i) - f(x-h·e_i)) / 2h, error O(h²), two calls
	// per coordinate.
	Central = gfd.Central
)

// Settings configures GradientWith.
type Settings struct {
	Step    float64 // Perturbation h, must be positive and finite.
	Formula Formula
}

// DefaultSettings returns a forward difference with h = 1e-6.
func DefaultSettings() Settings {
	return Settings{Step: 1e-6, Formula: Forward}
}

// Gradient approximates the gradient of f at x with forward differences
// of step h. x is left unchanged and f(x) itself is evaluated once.
func Gradient(f func(x []float64) float64, x []float64, h float64) []float64 {
	return GradientWith(f, x, Settings{Step: h, Formula: Forward})
}

// GradientWith approximates the gradient of f at x under s. It panics if
// s.Step is not a positive finite number or s.Formula is not a first
// derivative stencil.
func GradientWith(f func(x []float64) float64, x []float64, s Settings) []float64 {
	return gfd.Gradient(nil, f, x, s.gonum())
}

// Derivative approximates f'(x) for a function of one variable.
func Derivative(f func(x float64) float64, x float64, s Settings) float64 {
	return gfd.Derivative(f, x, s.gonum())
}

// gonum validates s and converts it. A zero gonum step means "use the
// formula default", so the step is checked here rather than passed through.
func (s Settings) gonum() *gfd.Settings {
	if !(s.Step > 0) || math.IsInf(s.Step, 1) {
		panic(fmt.Sprintf("fd: invalid step %v", s.Step))
	}
	if s.Formula.Derivative != 1 || len(s.Formula.Stencil) == 0 {
		panic(fmt.Sprintf("fd: not a first derivative formula (order %d)", s.Formula.Derivative))
	}
	return &gfd.Settings{Formula: s.Formula, Step: s.Step}
}
