package router

import (
	"sort"
	"strings"
)

// Route describes one registered endpoint: the URL suffix under its
// owning node and the set of HTTP methods it accepts. A route only
// exists once at least one method has been registered, so the method
// set is never empty.
type Route struct {
	node    *Node
	suffix  string
	methods map[string]struct{}
}

// Suffix returns the URL suffix under the owning node's absolute path.
func (r *Route) Suffix() string {
	return r.suffix
}

// Methods returns the accepted HTTP methods in sorted order.
func (r *Route) Methods() []string {
	methods := make([]string, 0, len(r.methods))
	for method := range r.methods {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return methods
}

// URL returns the full URL pattern for this route.
func (r *Route) URL() string {
	return joinPaths(r.node.AbsolutePath(), r.suffix)
}

// joinPaths appends a suffix to an absolute base path, normalizing
// slashes at the seam.
func joinPaths(base, suffix string) string {
	suffix = strings.Trim(suffix, "/")
	if suffix == "" {
		return base
	}
	if base == "/" {
		return "/" + suffix
	}
	return base + "/" + suffix
}
