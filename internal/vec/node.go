// Package vec lifts expression trees to small fixed-size vectors.
//
// Every node has a static size fixed at construction; size 1 plays the
// role of a scalar. Elementwise operators (+ - * / sin ln) keep the size,
// Dot and Sum reduce to size 1, and Expand repeats a scalar n times. A
// scalar combined with a vector in an elementwise operator is expanded
// automatically; any other size disagreement is an ErrShapeMismatch.
//
// Reverse mode seeds the output adjoint with ones, so Backward yields the
// gradient of the sum of the outputs (for a scalar output, its plain
// gradient). Each variable's adjoint is a vector of its own size.
package vec

import (
	"fmt"
	"strings"

	"github.com/born-ml/autodx/internal/expr"
)

// Op identifies a vector operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpDot
	OpSin
	OpLn
	OpSum
	OpExpand
)

var opNames = map[Op]string{
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpDot:    "dot",
	OpSin:    "sin",
	OpLn:     "ln",
	OpSum:    "sum",
	OpExpand: "expand",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return "?"
}

// elementwise maps the scalar operators onto their vector counterparts.
var elementwise = map[Op]expr.Op{
	OpAdd: expr.OpAdd,
	OpSub: expr.OpSub,
	OpMul: expr.OpMul,
	OpDiv: expr.OpDiv,
	OpSin: expr.OpSin,
	OpLn:  expr.OpLn,
}

// Node is a vertex of a vector expression tree.
type Node interface {
	// Size returns the number of elements of the node's value.
	Size() int
	// Value returns the value cached by the most recent Eval.
	Value() []float64
	// Evaluated reports whether Value holds a computed result.
	Evaluated() bool
	// Adjoint returns d(sum of outputs)/d(node) after Backward.
	Adjoint() []float64
	// Children returns the operands in order.
	Children() []Node
	String() string

	base() *state
}

type state struct {
	size      int
	value     []float64
	evaluated bool
	adjoint   []float64
}

func (s *state) Size() int { return s.size }

func (s *state) Value() []float64 { return s.value }

func (s *state) Evaluated() bool { return s.evaluated }

func (s *state) Adjoint() []float64 { return s.adjoint }

func (s *state) base() *state { return s }

func (s *state) cache(v []float64) {
	s.value = v
	s.evaluated = true
}

// Const is an immutable vector leaf.
type Const struct {
	state
}

// NewConst creates a constant holding a copy of x.
func NewConst(x []float64) *Const {
	return &Const{state: leafState(x)}
}

// Scalar creates a size-1 constant.
func Scalar(x float64) *Const {
	return NewConst([]float64{x})
}

func (c *Const) Children() []Node { return nil }

func (c *Const) String() string { return formatVector(c.value) }

// Var is a vector differentiation target.
type Var struct {
	state
	name string
}

// NewVar creates a variable holding a copy of x. It panics if x is empty.
func NewVar(x []float64, name string) *Var {
	return &Var{state: leafState(x), name: name}
}

// Name returns the variable's name, possibly empty.
func (v *Var) Name() string { return v.name }

// SetValue moves the variable to x. It fails with ErrShapeMismatch if
// len(x) differs from the variable's size.
func (v *Var) SetValue(x []float64) error {
	if len(x) != v.size {
		return shapeError("set", v.size, len(x))
	}
	v.cache(append([]float64(nil), x...))
	return nil
}

func (v *Var) Children() []Node { return nil }

func (v *Var) String() string {
	if v.name != "" {
		return v.name
	}
	return "Var(" + formatVector(v.value) + ")"
}

// Binary applies OpAdd, OpSub, OpMul, OpDiv or OpDot.
type Binary struct {
	state
	op          Op
	left, right Node
}

// Op returns the operator.
func (b *Binary) Op() Op { return b.op }

// Left returns the left operand.
func (b *Binary) Left() Node { return b.left }

// Right returns the right operand.
func (b *Binary) Right() Node { return b.right }

func (b *Binary) Children() []Node { return []Node{b.left, b.right} }

func (b *Binary) String() string {
	if b.op == OpDot {
		return fmt.Sprintf("dot(%s, %s)", b.left, b.right)
	}
	return fmt.Sprintf("(%s %s %s)", b.left, b.op, b.right)
}

// Unary applies OpSin, OpLn, OpSum or OpExpand.
type Unary struct {
	state
	op      Op
	operand Node
}

// Op returns the operator.
func (u *Unary) Op() Op { return u.op }

// Operand returns the single operand.
func (u *Unary) Operand() Node { return u.operand }

func (u *Unary) Children() []Node { return []Node{u.operand} }

func (u *Unary) String() string {
	if u.op == OpExpand {
		return fmt.Sprintf("expand(%s, %d)", u.operand, u.size)
	}
	return fmt.Sprintf("%s(%s)", u.op, u.operand)
}

func leafState(x []float64) state {
	if len(x) == 0 {
		panic("vec: empty vector")
	}
	v := append([]float64(nil), x...)
	return state{size: len(v), value: v, evaluated: true}
}

func formatVector(x []float64) string {
	parts := make([]string, len(x))
	for i, e := range x {
		parts[i] = fmt.Sprintf("%g", e)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// walk visits every distinct node reachable from root in preorder.
func walk(root Node, visit func(Node)) {
	seen := make(map[Node]struct{})
	var rec func(n Node)
	rec = func(n Node) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		visit(n)
		for _, c := range n.Children() {
			rec(c)
		}
	}
	rec(root)
}

// Vars returns the distinct variables of the tree in preorder.
func Vars(root Node) []*Var {
	var vars []*Var
	walk(root, func(n Node) {
		if v, ok := n.(*Var); ok {
			vars = append(vars, v)
		}
	})
	return vars
}
