package router

import (
	"strings"

	"github.com/vyrodovalexey/avroutemap/internal/util"
)

// RelativeKey returns the path of to expressed relative to from, where
// from is an ancestor of to or the same node. Each step contributes
// "<segment>_", concatenated in root-to-leaf order; from's own segment
// is excluded. Resolving a node against itself yields the node's own
// segment suffixed with an underscore, which distinguishes a node's
// local endpoints from its descendants' keys.
//
// Invoking the resolver with a node outside from's subtree is caller
// misuse and returns a NotAnAncestorError.
func RelativeKey(from, to *Node) (string, error) {
	if from == nil || to == nil {
		return "", util.NewInvalidTreeError("", "nil node passed to resolver")
	}

	if from == to {
		return to.segment + "_", nil
	}

	var parts []string
	seen := make(map[*Node]bool)

	for n := to; n != nil; n = n.parent {
		if n == from {
			// Reverse into root-to-leaf order.
			var b strings.Builder
			for i := len(parts) - 1; i >= 0; i-- {
				b.WriteString(parts[i])
			}
			return b.String(), nil
		}
		if seen[n] {
			return "", util.NewInvalidTreeError(n.segment, "cycle detected in parent chain")
		}
		seen[n] = true
		parts = append(parts, n.segment+"_")
	}

	return "", util.NewNotAnAncestorError(from.segment, to.segment)
}
