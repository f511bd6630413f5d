package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// example builds ln(x1) + x1*x2 - sin(x2) at (2, 5).
func example() (Node, *Var, *Var) {
	x1 := NewVar(2, "x1")
	x2 := NewVar(5, "x2")
	y := Sub(Add(Ln(x1), Mul(x1, x2)), Sin(x2))
	return y, x1, x2
}

func TestLift_PromotesLiterals(t *testing.T) {
	for _, lit := range []Operand{3, int8(3), int16(3), int32(3), int64(3), uint(3), uint8(3), uint16(3), uint32(3), uint64(3), float32(3), 3.0} {
		n := Lift(lit)
		c, ok := n.(*Const)
		require.True(t, ok, "%T should lift to *Const", lit)
		assert.Equal(t, 3.0, c.Value())
	}
}

func TestLift_KeepsNodes(t *testing.T) {
	x := NewVar(1, "x")
	assert.Same(t, x, Lift(x))
}

func TestLift_PanicsOnBadOperand(t *testing.T) {
	assert.Panics(t, func() { Lift("two") })
	assert.Panics(t, func() { Lift(nil) })
	assert.Panics(t, func() { Add(NewVar(1, ""), []float64{1}) })
}

func TestBuilder_PreservesOperandOrder(t *testing.T) {
	x := NewVar(1, "x")

	sub := Sub(5, x).(*Binary)
	assert.Equal(t, OpSub, sub.Op())
	assert.IsType(t, &Const{}, sub.Left())
	assert.Same(t, x, sub.Right())

	div := Div(x, 2).(*Binary)
	assert.Equal(t, OpDiv, div.Op())
	assert.Same(t, x, div.Left())
	assert.Equal(t, 2.0, div.Right().Value())
}

func TestBuilder_NoEvaluationAtConstruction(t *testing.T) {
	y := Mul(NewVar(3, "x"), 4)
	assert.False(t, y.Evaluated())
	assert.Equal(t, 0.0, y.Value())
}

func TestBinaryOf_UnaryOf(t *testing.T) {
	x := NewVar(1, "x")
	assert.Equal(t, OpMul, BinaryOf(OpMul, x, 2).(*Binary).Op())
	assert.Equal(t, OpLn, UnaryOf(OpLn, x).(*Unary).Op())
	assert.Panics(t, func() { BinaryOf(OpSin, x, x) })
	assert.Panics(t, func() { UnaryOf(OpAdd, x) })
}

func TestLeavesHoldValues(t *testing.T) {
	c := NewConst(7)
	c.Cache(1)
	c.Accumulate(5)
	assert.Equal(t, 7.0, c.Value())
	assert.Equal(t, 0.0, c.Adjoint())

	v := NewVar(2, "x")
	v.Cache(9)
	assert.Equal(t, 2.0, v.Value())
	v.SetValue(9)
	assert.Equal(t, 9.0, v.Value())
	assert.True(t, v.Evaluated())
}

func TestString(t *testing.T) {
	y, _, _ := example()
	assert.Equal(t, "((ln(x1) + (x1 * x2)) - sin(x2))", y.String())
	assert.Equal(t, "Var(1.5000)", NewVar(1.5, "").String())
	assert.Equal(t, "0.25", NewConst(0.25).String())
}

func TestNodes_PreorderDistinct(t *testing.T) {
	y, x1, x2 := example()
	nodes := Nodes(y)
	require.Len(t, nodes, 7)
	assert.Same(t, y, nodes[0])
	assert.Same(t, x1, nodes[3])
	assert.Same(t, x2, nodes[5])

	assert.Equal(t, []*Var{x1, x2}, Vars(y))
	assert.Len(t, Leaves(y), 2)
	assert.Len(t, Internal(y), 5)
}

func TestContains(t *testing.T) {
	y, x1, _ := example()
	assert.True(t, Contains(y, x1))
	assert.False(t, Contains(y, NewVar(2, "x1")))
}

func TestClusters(t *testing.T) {
	x := NewVar(1, "x")
	y := Mul(Sin(x), Add(x, 1))
	clusters := Clusters(y)
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0], 2)

	assert.Empty(t, Clusters(Mul(x, x)))
}

func TestAssignIndices_Preorder(t *testing.T) {
	y, x1, x2 := example()
	next := AssignIndices(y, 0)
	assert.Equal(t, 7, next)
	assert.Equal(t, 0, y.Index())
	assert.Equal(t, 3, x1.Index())
	assert.Equal(t, 5, x2.Index())
}

func TestAssignIndices_Idempotent(t *testing.T) {
	y, x1, x2 := example()
	AssignIndices(y, 0)
	before := make([]int, 0, 7)
	for _, n := range Nodes(y) {
		before = append(before, n.Index())
	}

	assert.Equal(t, 100, AssignIndices(y, 100))

	// Overlapping tree reusing indexed variables numbers only its new nodes.
	z := Add(x1, Mul(x2, 3))
	next := AssignIndices(z, NextIndex(y))
	assert.Equal(t, 10, next)
	assert.Equal(t, 3, x1.Index())
	assert.Equal(t, 5, x2.Index())

	for i, n := range Nodes(y) {
		assert.Equal(t, before[i], n.Index())
	}
}

func TestAssignIndicesInputsFirst(t *testing.T) {
	y, x1, x2 := example()
	next := AssignIndicesInputsFirst(y, 0)
	assert.Equal(t, 7, next)

	// x2 sits one level higher (under sin) than x1, so it is found first.
	assert.Equal(t, 0, x2.Index())
	assert.Equal(t, 1, x1.Index())

	// Operators follow their operands; the root comes last.
	assert.Equal(t, 6, y.Index())
	for _, n := range Internal(y) {
		for _, c := range n.Children() {
			assert.Less(t, c.Index(), n.Index(), "%s before %s", c, n)
		}
	}
	assert.Equal(t, []string{
		"v6 = v4 - v5",
		"v4 = v2 + v3",
		"v2 = ln v1",
		"v1 = 2",
		"v3 = v1 * v0",
		"v0 = 5",
		"v5 = sin v0",
	}, Trace(y))
}

func TestAssignIndicesInputsFirst_Constants(t *testing.T) {
	x := NewVar(1, "x")
	y := Mul(Add(x, 2), 3)

	assert.Equal(t, 5, AssignIndicesInputsFirst(y, 0))
	assert.Equal(t, 0, x.Index())
	assert.Equal(t, []string{
		"v4 = v2 * v3",
		"v2 = v0 + v1",
		"v0 = 1",
		"v1 = 2",
		"v3 = 3",
	}, Trace(y))
}

func TestClearIndices(t *testing.T) {
	y, _, _ := example()
	AssignIndices(y, 0)
	ClearIndices(y)
	assert.Equal(t, 0, NextIndex(y))
	for _, n := range Nodes(y) {
		assert.Equal(t, -1, n.Index())
	}
}

func TestTrace(t *testing.T) {
	y, _, _ := example()
	assert.Equal(t, []string{
		"v0 = v1 - v6",
		"v1 = v2 + v4",
		"v2 = ln v3",
		"v3 = 2",
		"v4 = v3 * v5",
		"v5 = 5",
		"v6 = sin v5",
	}, Trace(y))

	// A second trace reuses the ids from the first.
	assert.Equal(t, Trace(y), Trace(y))
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "/", OpDiv.String())
	assert.Equal(t, "ln", OpLn.String())
	assert.Equal(t, "?", Op(99).String())
	assert.True(t, OpSub.IsBinary())
	assert.False(t, OpSin.IsBinary())
}

func TestClone_SharesVariablesOnly(t *testing.T) {
	y, x1, x2 := example()
	AssignIndices(y, 0)

	c := Clone(y)
	assert.Equal(t, y.String(), c.String())
	assert.NotSame(t, y, c)
	assert.Equal(t, -1, c.Index())
	assert.Equal(t, []*Var{x1, x2}, Vars(c))

	orig := Internal(y)
	for i, n := range Internal(c) {
		assert.NotSame(t, orig[i], n)
	}
}
