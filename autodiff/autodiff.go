// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation of scalar expression
// trees.
//
// Expressions are built from variables, constants and the operators
// + - * / sin ln. Two analytic strategies compute derivatives:
//   - Forward mode: Forward and ForwardGradient carry a tangent alongside
//     each value, one pass per seed direction.
//   - Reverse mode: Eval caches every node's value, then Backward
//     accumulates adjoints in a single top-down pass.
//
// FiniteDifference is an independent numeric check of either.
//
// Example:
//
//	import "github.com/born-ml/autodx/autodiff"
//
//	func main() {
//	    x1 := autodiff.NewVar(2, "x1")
//	    x2 := autodiff.NewVar(5, "x2")
//	    y := autodiff.Sub(autodiff.Add(autodiff.Ln(x1), autodiff.Mul(x1, x2)), autodiff.Sin(x2))
//
//	    value, grad, err := autodiff.Grad(y, x1, x2)
//	    // value = 11.6521, grad = [5.5 1.7163]
//	}
package autodiff

import (
	"github.com/born-ml/autodx/internal/autodiff"
	"github.com/born-ml/autodx/internal/expr"
	"github.com/born-ml/autodx/internal/fd"
	"github.com/born-ml/autodx/internal/parallel"
)

// Nodes

// Node is a vertex of an expression tree.
type Node = expr.Node

// Var is a differentiation target. Variables compare by identity.
type Var = expr.Var

// Const is a leaf with a fixed value and zero derivative.
type Const = expr.Const

// Binary is an Add, Sub, Mul or Div node.
type Binary = expr.Binary

// Unary is a Sin or Ln node.
type Unary = expr.Unary

// Op identifies an operator.
type Op = expr.Op

// Operators.
const (
	OpAdd = expr.OpAdd
	OpSub = expr.OpSub
	OpMul = expr.OpMul
	OpDiv = expr.OpDiv
	OpSin = expr.OpSin
	OpLn  = expr.OpLn
)

// NewVar creates a variable holding x. The name is used when printing.
func NewVar(x float64, name string) *Var {
	return expr.NewVar(x, name)
}

// NewConst creates a constant leaf.
func NewConst(x float64) *Const {
	return expr.NewConst(x)
}

// Builder

// Add returns a + b. Operands are Nodes or numeric literals.
func Add(a, b any) Node { return expr.Add(a, b) }

// Sub returns a - b.
func Sub(a, b any) Node { return expr.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b any) Node { return expr.Mul(a, b) }

// Div returns a / b. Division by zero yields IEEE ±Inf or NaN.
func Div(a, b any) Node { return expr.Div(a, b) }

// Sin returns sin(a).
func Sin(a any) Node { return expr.Sin(a) }

// Ln returns the natural logarithm of a. Non-positive arguments yield
// NaN or -Inf.
func Ln(a any) Node { return expr.Ln(a) }

// Forward mode

// Seed assigns a tangent to each variable for a forward pass.
type Seed = autodiff.Seed

// Dual is a value with its derivative along a seed.
type Dual = autodiff.Dual

// OneHot returns the seed selecting v.
func OneHot(v *Var) Seed {
	return autodiff.OneHot(v)
}

// Forward evaluates root and its directional derivative along seed.
// Node state is not modified.
func Forward(root Node, seed Seed) Dual {
	return autodiff.Forward(root, seed)
}

// ForwardGradient returns root's value and its partials with respect to
// vars, one forward pass per variable.
func ForwardGradient(root Node, vars []*Var) (float64, []float64) {
	return autodiff.ForwardGradient(root, vars)
}

// Reverse mode

// Gradient maps variables to partials read after Backward.
type Gradient = autodiff.Gradient

// Eval computes and caches the value of every node under root.
func Eval(root Node) float64 {
	return autodiff.Eval(root)
}

// Backward accumulates adjoints from root down to its variables. It
// returns ErrUninitialized if root has not been evaluated.
func Backward(root Node) error {
	return autodiff.Backward(root)
}

// ResetAdjoints zeroes every adjoint reachable from root.
func ResetAdjoints(root Node) {
	autodiff.ResetAdjoints(root)
}

// Collect reads the partials of every variable in root after Backward.
func Collect(root Node) Gradient {
	return autodiff.Collect(root)
}

// Grad evaluates root, runs Backward and returns the value together with
// the partials for vars. Variables absent from root get 0.
func Grad(root Node, vars ...*Var) (float64, []float64, error) {
	return autodiff.Grad(root, vars...)
}

// Func adapts root into a function of vars' values.
func Func(root Node, vars []*Var) func(x []float64) float64 {
	return autodiff.Func(root, vars)
}

// Engine

// Config controls an Engine.
type Config = autodiff.Config

// ParallelConfig controls fan-out of forward-mode passes.
type ParallelConfig = parallel.Config

// Engine runs differentiation passes with logging and parallelism
// settings.
type Engine = autodiff.Engine

// DefaultConfig returns the configuration used by the package-level
// functions.
func DefaultConfig() Config {
	return autodiff.DefaultConfig()
}

// New creates an Engine.
func New(cfg Config) *Engine {
	return autodiff.New(cfg)
}

// Inspection

// Trace returns one "v<i> = <expr>" line per distinct node in preorder,
// assigning indices where needed.
func Trace(root Node) []string {
	return expr.Trace(root)
}

// AssignIndices numbers the unindexed nodes of root in preorder starting
// at first and returns the next free index.
func AssignIndices(root Node, first int) int {
	return expr.AssignIndices(root, first)
}

// Nodes returns the distinct nodes of root in preorder.
func Nodes(root Node) []Node {
	return expr.Nodes(root)
}

// Vars returns the distinct variables of root in preorder.
func Vars(root Node) []*Var {
	return expr.Vars(root)
}

// Finite differences

// FDSettings configures the finite-difference oracle.
type FDSettings = fd.Settings

// Difference formulas.
var (
	ForwardDifference = fd.Forward
	CentralDifference = fd.Central
)

// FiniteDifference approximates the gradient of f at x with forward
// differences of step h.
func FiniteDifference(f func(x []float64) float64, x []float64, h float64) []float64 {
	return fd.Gradient(f, x, h)
}

// FiniteDifferenceWith approximates the gradient of f at x using s.
func FiniteDifferenceWith(f func(x []float64) float64, x []float64, s FDSettings) []float64 {
	return fd.GradientWith(f, x, s)
}

// Errors

var (
	// ErrUninitialized is returned by Backward before Eval.
	ErrUninitialized = autodiff.ErrUninitialized

	// ErrUnknownVariable is returned by Gradient.Lookup for variables not
	// in the tree.
	ErrUnknownVariable = autodiff.ErrUnknownVariable

	// ErrShapeMismatch is returned by the vector extension.
	ErrShapeMismatch = autodiff.ErrShapeMismatch
)
