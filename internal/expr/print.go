package expr

import (
	"fmt"
	"strconv"
)

func formatValue(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func (c *Const) String() string {
	return formatValue(c.value)
}

func (v *Var) String() string {
	if v.name != "" {
		return v.name
	}
	return fmt.Sprintf("Var(%.4f)", v.value)
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.left, b.op, b.right)
}

func (u *Unary) String() string {
	return fmt.Sprintf("%s(%s)", u.op, u.operand)
}

// Ref returns the trace name of n, "v<index>".
func Ref(n Node) string {
	return "v" + strconv.Itoa(n.Index())
}

// Trace returns one "v<i> = <expr>" line per distinct node, in preorder.
// Unindexed nodes are numbered first, continuing after the largest index
// already present. Leaves render their current value; operator nodes
// render in terms of their operands' references. For ln(x1) + x1*x2 -
// sin(x2) at (2, 5):
//
//	v0 = v1 - v6
//	v1 = v2 + v4
//	v2 = ln v3
//	v3 = 2
//	v4 = v3 * v5
//	v5 = 5
//	v6 = sin v5
func Trace(root Node) []string {
	AssignIndices(root, NextIndex(root))

	var lines []string
	Walk(root, func(n Node) {
		lines = append(lines, Ref(n)+" = "+traceExpr(n))
	})
	return lines
}

func traceExpr(n Node) string {
	switch n := n.(type) {
	case *Const:
		return formatValue(n.value)
	case *Var:
		return formatValue(n.value)
	case *Binary:
		return fmt.Sprintf("%s %s %s", Ref(n.left), n.op, Ref(n.right))
	case *Unary:
		return fmt.Sprintf("%s %s", n.op, Ref(n.operand))
	default:
		panic(fmt.Sprintf("expr: unknown node type %T", n))
	}
}
