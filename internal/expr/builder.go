package expr

import "fmt"

// Operand is anything the builder accepts as a child: a Node or a Go
// numeric literal. Literals are promoted to *Const.
type Operand = any

// Add returns the node a + b.
func Add(a, b Operand) Node { return newBinary(OpAdd, a, b) }

// Sub returns the node a - b.
func Sub(a, b Operand) Node { return newBinary(OpSub, a, b) }

// Mul returns the node a * b.
func Mul(a, b Operand) Node { return newBinary(OpMul, a, b) }

// Div returns the node a / b.
//
// A right operand that evaluates to zero is not special-cased: the value
// pass yields ±Inf or NaN exactly as float64 division does.
func Div(a, b Operand) Node { return newBinary(OpDiv, a, b) }

// Sin returns the node sin(a).
func Sin(a Operand) Node { return newUnary(OpSin, a) }

// Ln returns the node ln(a). Non-positive operands evaluate to NaN or -Inf.
func Ln(a Operand) Node { return newUnary(OpLn, a) }

// BinaryOf builds a binary node for op. It panics if op is unary.
func BinaryOf(op Op, a, b Operand) Node {
	if !op.IsBinary() {
		panic(fmt.Sprintf("expr: %s is not a binary operator", op))
	}
	return newBinary(op, a, b)
}

// UnaryOf builds a unary node for op. It panics if op is binary.
func UnaryOf(op Op, a Operand) Node {
	if op != OpSin && op != OpLn {
		panic(fmt.Sprintf("expr: %s is not a unary operator", op))
	}
	return newUnary(op, a)
}

func newBinary(op Op, a, b Operand) *Binary {
	return &Binary{
		state: newState(),
		op:    op,
		left:  Lift(a),
		right: Lift(b),
	}
}

func newUnary(op Op, a Operand) *Unary {
	return &Unary{
		state:   newState(),
		op:      op,
		operand: Lift(a),
	}
}

// Lift converts an operand to a Node, wrapping numeric literals in *Const.
// It panics on nil and on unsupported types.
func Lift(x Operand) Node {
	switch v := x.(type) {
	case nil:
		panic("expr: nil operand")
	case Node:
		return v
	case float64:
		return NewConst(v)
	case float32:
		return NewConst(float64(v))
	case int:
		return NewConst(float64(v))
	case int8:
		return NewConst(float64(v))
	case int16:
		return NewConst(float64(v))
	case int32:
		return NewConst(float64(v))
	case int64:
		return NewConst(float64(v))
	case uint:
		return NewConst(float64(v))
	case uint8:
		return NewConst(float64(v))
	case uint16:
		return NewConst(float64(v))
	case uint32:
		return NewConst(float64(v))
	case uint64:
		return NewConst(float64(v))
	default:
		panic(fmt.Sprintf("expr: cannot use %T as an operand", x))
	}
}
