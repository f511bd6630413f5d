package expr

import "fmt"

// Clone returns a structural copy of n with fresh operator and constant
// nodes and no per-pass state. Variables are shared, not copied, so the
// clone differentiates with respect to the same targets.
func Clone(n Node) Node {
	switch n := n.(type) {
	case *Const:
		return NewConst(n.value)
	case *Var:
		return n
	case *Binary:
		return newBinary(n.op, Clone(n.left), Clone(n.right))
	case *Unary:
		return newUnary(n.op, Clone(n.operand))
	default:
		panic(fmt.Sprintf("expr: unknown node type %T", n))
	}
}
