package router

import (
	"github.com/vyrodovalexey/avroutemap/internal/util"
)

// Flatten walks the tree rooted at the given node depth-first and
// returns the root and every descendant exactly once. The traversal is
// read-only. A cycle among children is structural corruption and
// yields an InvalidTreeError; a well-formed tree never cycles.
func Flatten(root *Node) ([]*Node, error) {
	if root == nil {
		return nil, util.NewInvalidTreeError("", "nil root node")
	}

	visited := make(map[*Node]bool)
	var nodes []*Node

	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[n] {
			return nil, util.NewInvalidTreeError(n.segment, "cycle detected during traversal")
		}
		visited[n] = true
		nodes = append(nodes, n)

		// Push in reverse so children pop in registration order.
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}

	return nodes, nil
}
