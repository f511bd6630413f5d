package expr

// AssignIndices numbers the tree in preorder, operands left to right,
// starting at first. Nodes that already carry an index keep it, so
// repeated calls on overlapping trees never reshuffle ids. It returns the
// next unused index.
func AssignIndices(root Node, first int) int {
	next := first
	Walk(root, func(n Node) {
		if n.Index() >= 0 {
			return
		}
		n.SetIndex(next)
		next++
	})
	return next
}

// AssignIndicesInputsFirst numbers the variables first, in breadth-first
// order, so inputs read as v0, v1, ...; every other node is then numbered
// after its operands (postorder), so an id never precedes the ids it is
// computed from. Already indexed nodes keep their index.
func AssignIndicesInputsFirst(root Node, first int) int {
	next := first
	for _, v := range breadthFirstVars(root) {
		if v.Index() >= 0 {
			continue
		}
		v.SetIndex(next)
		next++
	}
	return assignPostorder(root, next)
}

func assignPostorder(n Node, next int) int {
	if n.Index() >= 0 {
		return next
	}
	for _, c := range n.Children() {
		next = assignPostorder(c, next)
	}
	n.SetIndex(next)
	return next + 1
}

// NextIndex returns one past the largest index present in the tree, or 0
// when nothing is indexed.
func NextIndex(root Node) int {
	next := 0
	Walk(root, func(n Node) {
		if n.Index() >= next {
			next = n.Index() + 1
		}
	})
	return next
}

// ClearIndices resets every index in the tree to -1.
func ClearIndices(root Node) {
	Walk(root, func(n Node) {
		n.SetIndex(-1)
	})
}
