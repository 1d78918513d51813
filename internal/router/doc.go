// Package router implements a tree of composable routers and the
// flattened endpoint map derived from it.
//
// A Node contributes one path segment and owns its children; routes are
// registered directly on the node that serves them. The tree is built
// once during application startup and is read-only afterwards, so every
// operation in this package is a synchronous pure read with no locking.
//
// BuildEndpointMap walks the tree rooted at an arbitrary node and
// produces a deterministic mapping from relative-path keys (segment
// names joined with a trailing underscore per step) to the endpoints
// registered under each node. Nodes without local routes are omitted.
//
// Structural corruption (a cycle) surfaces as InvalidTreeError and
// resolver misuse as NotAnAncestorError; both are programming-contract
// violations that are propagated, never swallowed.
package router
