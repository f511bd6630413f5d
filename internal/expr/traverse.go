package expr

// Walk calls visit on every distinct node reachable from root, in
// preorder with operands visited left to right. A shared variable is
// visited once, at its first occurrence.
func Walk(root Node, visit func(Node)) {
	seen := make(map[Node]struct{})
	var walk func(n Node)
	walk = func(n Node) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		visit(n)
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)
}

// Nodes returns every distinct node of the tree in preorder.
func Nodes(root Node) []Node {
	var all []Node
	Walk(root, func(n Node) {
		all = append(all, n)
	})
	return all
}

// Leaves returns the distinct leaves (constants and variables) in preorder.
func Leaves(root Node) []Node {
	var leaves []Node
	Walk(root, func(n Node) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	})
	return leaves
}

// Internal returns the operator nodes in preorder.
func Internal(root Node) []Node {
	var internal []Node
	Walk(root, func(n Node) {
		if !n.IsLeaf() {
			internal = append(internal, n)
		}
	})
	return internal
}

// Vars returns the distinct variables in preorder.
func Vars(root Node) []*Var {
	var vars []*Var
	Walk(root, func(n Node) {
		if v, ok := n.(*Var); ok {
			vars = append(vars, v)
		}
	})
	return vars
}

// Contains reports whether v is reachable from root.
func Contains(root Node, v *Var) bool {
	found := false
	Walk(root, func(n Node) {
		if n == Node(v) {
			found = true
		}
	})
	return found
}

// Clusters groups sibling operands that are not variables, level by level
// (breadth first). Only groups of two or more are reported; diagram
// renderers lay each group out side by side.
func Clusters(root Node) [][]Node {
	var clusters [][]Node
	work := []Node{root}
	for len(work) > 0 {
		n := work[0]
		work = work[1:]
		kids := n.Children()
		work = append(work, kids...)

		var group []Node
		for _, k := range kids {
			if _, isVar := k.(*Var); !isVar {
				group = append(group, k)
			}
		}
		if len(group) > 1 {
			clusters = append(clusters, group)
		}
	}
	return clusters
}

// breadthFirstVars returns the distinct variables in breadth-first order.
func breadthFirstVars(root Node) []*Var {
	var vars []*Var
	seen := make(map[*Var]struct{})
	work := []Node{root}
	for len(work) > 0 {
		n := work[0]
		work = work[1:]
		if v, ok := n.(*Var); ok {
			if _, dup := seen[v]; !dup {
				seen[v] = struct{}{}
				vars = append(vars, v)
			}
			continue
		}
		work = append(work, n.Children()...)
	}
	return vars
}
