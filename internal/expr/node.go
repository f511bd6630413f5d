// Package expr defines the expression-tree model differentiated by autodiff.
//
// An expression is a tree of Nodes. Leaves are constants (*Const) and
// differentiation targets (*Var); interior nodes apply a binary operator
// (*Binary: +, -, *, /) or a unary operator (*Unary: sin, ln).
//
// Ownership model:
//   - Var nodes may be shared by any number of parents, within one
//     expression or across expressions built from the same inputs.
//   - Const, Binary and Unary nodes belong to exactly one parent.
//
// Nodes carry per-pass state that evaluators fill in: the cached value
// (set by the value pass), the adjoint (set by the backward pass) and a
// preorder index (set by AssignIndices, used for tracing).
//
// Variables compare by identity: two *Var holding the same number are two
// distinct differentiation targets.
package expr

// Op identifies the operator applied by an interior node.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpSin
	OpLn
)

var opSymbols = map[Op]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpSin: "sin",
	OpLn:  "ln",
}

// String returns the operator symbol ("+", "sin", ...).
func (o Op) String() string {
	if s, ok := opSymbols[o]; ok {
		return s
	}
	return "?"
}

// IsBinary reports whether o takes two operands.
func (o Op) IsBinary() bool {
	return o == OpAdd || o == OpSub || o == OpMul || o == OpDiv
}

// Node is a vertex of an expression tree.
//
// The mutating methods (Cache, Accumulate, ClearAdjoint, SetIndex) exist
// for evaluators and traversal utilities; user code builds trees with the
// constructors in builder.go and reads results through the accessors.
type Node interface {
	// Value returns the value cached by the most recent value pass.
	Value() float64
	// Evaluated reports whether Value holds a computed result.
	Evaluated() bool
	// Cache stores v as the node's value.
	Cache(v float64)

	// Adjoint returns d(root)/d(node) after a backward pass.
	Adjoint() float64
	// Accumulate adds d to the adjoint.
	Accumulate(d float64)
	// ClearAdjoint zeroes the adjoint.
	ClearAdjoint()

	// Index returns the preorder index, or -1 when unassigned.
	Index() int
	// SetIndex assigns the preorder index.
	SetIndex(i int)

	// Children returns the operands in left-to-right order.
	Children() []Node
	// IsLeaf reports whether the node has no operands.
	IsLeaf() bool

	String() string
}

// state is the per-pass bookkeeping shared by all node variants.
type state struct {
	value     float64
	evaluated bool
	adjoint   float64
	index     int
}

func newState() state {
	return state{index: -1}
}

func (s *state) Value() float64 { return s.value }

func (s *state) Evaluated() bool { return s.evaluated }

func (s *state) Cache(v float64) {
	s.value = v
	s.evaluated = true
}

func (s *state) Adjoint() float64 { return s.adjoint }

func (s *state) Accumulate(d float64) { s.adjoint += d }

func (s *state) ClearAdjoint() { s.adjoint = 0 }

func (s *state) Index() int { return s.index }

func (s *state) SetIndex(i int) { s.index = i }

// Const is an immutable numeric leaf. Its derivative with respect to
// every variable is zero, and it never accumulates an adjoint.
type Const struct {
	state
}

// NewConst creates a constant leaf.
func NewConst(x float64) *Const {
	c := &Const{state: newState()}
	c.state.Cache(x)
	return c
}

// Cache is a no-op: constants keep the value they were built with.
func (c *Const) Cache(float64) {}

// Accumulate is a no-op: constants are not differentiation targets.
func (c *Const) Accumulate(float64) {}

func (c *Const) Children() []Node { return nil }

func (c *Const) IsLeaf() bool { return true }

// Var is a differentiation target.
type Var struct {
	state
	name string
}

// NewVar creates a variable holding x. The name is used for printing and
// may be empty.
func NewVar(x float64, name string) *Var {
	v := &Var{state: newState(), name: name}
	v.state.Cache(x)
	return v
}

// Name returns the variable's name, possibly empty.
func (v *Var) Name() string { return v.name }

// SetValue moves the variable to x. Values cached at interior nodes are
// stale until the next value pass.
func (v *Var) SetValue(x float64) {
	v.state.Cache(x)
}

// Cache is a no-op: a variable's value only changes through SetValue.
func (v *Var) Cache(float64) {}

func (v *Var) Children() []Node { return nil }

func (v *Var) IsLeaf() bool { return true }

// Binary applies one of OpAdd, OpSub, OpMul, OpDiv to two operands.
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

func (b *Binary) IsLeaf() bool { return false }

// Unary applies OpSin or OpLn to one operand.
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

func (u *Unary) IsLeaf() bool { return false }
