// Package ops defines the differentiation rules of each expression operator.
//
// Every operator provides three things, all on float64 scalars:
//   - Apply: the value, given operand values
//   - Tangent: forward-mode rule, the derivative of the value given operand
//     values and operand derivatives
//   - Partials: reverse-mode rule, the local partial derivative of the value
//     with respect to each operand, given operand values
//
// Supported operators:
//   - AddOp: d(a+b)/da = 1, d(a+b)/db = 1
//   - SubOp: d(a-b)/da = 1, d(a-b)/db = -1
//   - MulOp: d(a*b)/da = b, d(a*b)/db = a
//   - DivOp: d(a/b)/da = 1/b, d(a/b)/db = -a/b²
//   - SinOp: d(sin x)/dx = cos x
//   - LogOp: d(ln x)/dx = 1/x
//
// Rules never guard against domain errors: division by zero and logarithms
// of non-positive values produce ±Inf or NaN as float64 arithmetic does.
package ops

import (
	"fmt"

	"github.com/born-ml/autodx/internal/expr"
)

// BinaryOperation is the rule set of a two-operand operator.
type BinaryOperation interface {
	// Apply returns the operator's value.
	Apply(a, b float64) float64

	// Tangent returns the derivative of the value given the operand
	// derivatives da and db along some direction.
	Tangent(a, b, da, db float64) float64

	// Partials returns the local partials with respect to a and b.
	//
	// Example for MulOp at (a, b) = (2, 5):
	//   returns (5, 2)
	Partials(a, b float64) (float64, float64)
}

// UnaryOperation is the rule set of a one-operand operator.
type UnaryOperation interface {
	Apply(x float64) float64
	Tangent(x, dx float64) float64
	Partial(x float64) float64
}

var (
	binaryOps = map[expr.Op]BinaryOperation{
		expr.OpAdd: AddOp{},
		expr.OpSub: SubOp{},
		expr.OpMul: MulOp{},
		expr.OpDiv: DivOp{},
	}
	unaryOps = map[expr.Op]UnaryOperation{
		expr.OpSin: SinOp{},
		expr.OpLn:  LogOp{},
	}
)

// Binary returns the rules for op. It panics if op is not a binary operator.
func Binary(op expr.Op) BinaryOperation {
	rule, ok := binaryOps[op]
	if !ok {
		panic(fmt.Sprintf("ops: no binary rule for %s", op))
	}
	return rule
}

// Unary returns the rules for op. It panics if op is not a unary operator.
func Unary(op expr.Op) UnaryOperation {
	rule, ok := unaryOps[op]
	if !ok {
		panic(fmt.Sprintf("ops: no unary rule for %s", op))
	}
	return rule
}
