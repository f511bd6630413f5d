// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vec extends automatic differentiation to fixed-size vectors.
//
// Elementwise Add, Sub, Mul, Div, Sin and Ln work on equally sized
// operands; a size-1 operand is expanded to match the other one. Dot and
// Sum reduce to size 1. Incompatible sizes fail with ErrShapeMismatch.
//
// Example:
//
//	a := vec.NewVar([]float64{1, 3, 5}, "a")
//	b := vec.NewVar([]float64{9, 7, 0}, "b")
//	c := vec.NewVar([]float64{99}, "c")
//
//	y := vec.Must(vec.Add(vec.Must(vec.Mul(a, b)), c)) // [108 120 99]
//	_, grads, err := vec.Grad(y, a, b, c)
//	// grads = [[9 7 0] [1 3 5] [3]]
package vec

import (
	"github.com/born-ml/autodx/internal/vec"
)

// Node is a vector-valued expression node.
type Node = vec.Node

// Var is a vector differentiation target.
type Var = vec.Var

// Const is a constant vector.
type Const = vec.Const

// Seed assigns a tangent vector to each variable for a forward pass.
type Seed = vec.Seed

// NewVar creates a variable holding a copy of x. x must not be empty.
func NewVar(x []float64, name string) *Var {
	return vec.NewVar(x, name)
}

// NewConst creates a constant holding a copy of x.
func NewConst(x []float64) *Const {
	return vec.NewConst(x)
}

// Scalar creates a size-1 constant.
func Scalar(x float64) *Const {
	return vec.Scalar(x)
}

// Add returns a + b elementwise.
func Add(a, b any) (Node, error) { return vec.Add(a, b) }

// Sub returns a - b elementwise.
func Sub(a, b any) (Node, error) { return vec.Sub(a, b) }

// Mul returns a * b elementwise.
func Mul(a, b any) (Node, error) { return vec.Mul(a, b) }

// Div returns a / b elementwise.
func Div(a, b any) (Node, error) { return vec.Div(a, b) }

// Dot returns the inner product of two vectors of equal size.
func Dot(a, b any) (Node, error) { return vec.Dot(a, b) }

// Sin returns sin applied elementwise.
func Sin(a any) Node { return vec.Sin(a) }

// Ln returns ln applied elementwise.
func Ln(a any) Node { return vec.Ln(a) }

// Sum returns the sum of a's elements.
func Sum(a any) Node { return vec.Sum(a) }

// Expand repeats a size-1 operand n times.
func Expand(a any, n int) Node { return vec.Expand(a, n) }

// Must panics if err is non-nil and returns n otherwise.
func Must(n Node, err error) Node { return vec.Must(n, err) }

// Eval computes and caches every node's value and returns root's value.
func Eval(root Node) []float64 {
	return vec.Eval(root)
}

// Forward returns root's value and its directional derivative along seed.
func Forward(root Node, seed Seed) ([]float64, []float64, error) {
	return vec.Forward(root, seed)
}

// Backward accumulates adjoints of the sum of root's elements.
func Backward(root Node) error {
	return vec.Backward(root)
}

// Gradient returns the adjoints of vars after Backward.
func Gradient(root Node, vars ...*Var) [][]float64 {
	return vec.Gradient(root, vars...)
}

// Grad evaluates root, runs Backward and returns the value and gradients.
func Grad(root Node, vars ...*Var) ([]float64, [][]float64, error) {
	return vec.Grad(root, vars...)
}
