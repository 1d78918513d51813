package router

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Node is one router in a composable tree. Each node contributes a
// single path segment, owns its children, and holds the routes
// registered directly on it. The parent pointer is a back-reference
// only; ownership runs top-down.
type Node struct {
	segment  string
	parent   *Node
	children []*Node
	routes   []*Route

	// group binds the node to a live gin router group. Unbound trees
	// are valid and used by tests; registration then only records
	// route metadata.
	group gin.IRouter
}

// NewTree creates an unbound tree root with the given segment. The
// root segment may be empty.
func NewTree(segment string) *Node {
	return &Node{segment: segment}
}

// NewTreeWithEngine creates a tree root bound to a gin engine. Routes
// registered anywhere in the tree are registered on the engine as
// real handlers.
func NewTreeWithEngine(segment string, engine *gin.Engine) *Node {
	n := &Node{segment: segment}
	if engine != nil {
		if segment == "" {
			n.group = engine
		} else {
			n.group = engine.Group(segment)
		}
	}
	return n
}

// Segment returns the path fragment this node contributes.
func (n *Node) Segment() string {
	return n.segment
}

// Parent returns the owning node, or nil for the tree root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's child routers in registration order.
func (n *Node) Children() []*Node {
	return n.children
}

// Routes returns the routes registered directly on this node.
func (n *Node) Routes() []*Route {
	return n.routes
}

// Child returns the child router for the given segment, creating it if
// it does not exist yet. Reusing the child for a duplicate segment
// keeps relative keys unique per node.
func (n *Node) Child(segment string) *Node {
	for _, child := range n.children {
		if child.segment == segment {
			return child
		}
	}

	child := &Node{segment: segment, parent: n}
	if n.group != nil {
		child.group = n.group.Group(segment)
	}
	n.children = append(n.children, child)
	return child
}

// Handle registers a handler set for the given method and URL suffix
// on this node. Methods registered for the same suffix aggregate into
// a single route; suffix order preserves first registration.
func (n *Node) Handle(method, suffix string, handlers ...gin.HandlerFunc) *Node {
	method = strings.ToUpper(method)

	route := n.findRoute(suffix)
	if route == nil {
		route = &Route{
			node:    n,
			suffix:  suffix,
			methods: make(map[string]struct{}),
		}
		n.routes = append(n.routes, route)
	}
	route.methods[method] = struct{}{}

	if n.group != nil && len(handlers) > 0 {
		n.group.Handle(method, suffix, handlers...)
	}
	return n
}

// GET registers a GET handler on this node.
func (n *Node) GET(suffix string, handlers ...gin.HandlerFunc) *Node {
	return n.Handle("GET", suffix, handlers...)
}

// POST registers a POST handler on this node.
func (n *Node) POST(suffix string, handlers ...gin.HandlerFunc) *Node {
	return n.Handle("POST", suffix, handlers...)
}

// PUT registers a PUT handler on this node.
func (n *Node) PUT(suffix string, handlers ...gin.HandlerFunc) *Node {
	return n.Handle("PUT", suffix, handlers...)
}

// PATCH registers a PATCH handler on this node.
func (n *Node) PATCH(suffix string, handlers ...gin.HandlerFunc) *Node {
	return n.Handle("PATCH", suffix, handlers...)
}

// DELETE registers a DELETE handler on this node.
func (n *Node) DELETE(suffix string, handlers ...gin.HandlerFunc) *Node {
	return n.Handle("DELETE", suffix, handlers...)
}

// AbsolutePath reconstructs the node's path by concatenating segments
// from the root down to this node.
func (n *Node) AbsolutePath() string {
	var segments []string
	for cur := n; cur != nil; cur = cur.parent {
		if cur.segment != "" {
			segments = append(segments, cur.segment)
		}
	}

	if len(segments) == 0 {
		return "/"
	}

	var b strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		b.WriteString("/")
		b.WriteString(strings.Trim(segments[i], "/"))
	}
	return b.String()
}

// findRoute returns the route registered for the given suffix, if any.
func (n *Node) findRoute(suffix string) *Route {
	for _, route := range n.routes {
		if route.suffix == suffix {
			return route
		}
	}
	return nil
}
