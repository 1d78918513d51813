package router

import (
	"sort"
)

// Endpoint is the serialized form of one registered route.
type Endpoint struct {
	URL             string   `json:"url"`
	AcceptedMethods []string `json:"accepted_methods"`
}

// EndpointMap maps relative-path keys to the endpoints registered on
// the node each key names. encoding/json serializes map keys in
// lexicographic order, which carries the map's ordering guarantee onto
// the wire; Keys exposes the same order for direct iteration.
type EndpointMap map[string][]Endpoint

// Keys returns the map's keys in lexicographic order.
func (m EndpointMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// BuildEndpointMap flattens the tree rooted at top and assembles the
// endpoint map: every node with at least one local route appears under
// its key relative to top, each route expanded to its full URL pattern
// and sorted method list. Endpoint order within a key preserves
// registration order; nodes without local routes are omitted entirely.
//
// Building is all-or-nothing: collaborator failures propagate and no
// partial map is returned. The map is recomputed on every call, never
// cached, so it always reflects the tree as registered.
func BuildEndpointMap(top *Node) (EndpointMap, error) {
	nodes, err := Flatten(top)
	if err != nil {
		return nil, err
	}

	m := make(EndpointMap)
	for _, n := range nodes {
		if len(n.routes) == 0 {
			continue
		}

		key, err := RelativeKey(top, n)
		if err != nil {
			return nil, err
		}

		endpoints := make([]Endpoint, 0, len(n.routes))
		for _, route := range n.routes {
			endpoints = append(endpoints, Endpoint{
				URL:             route.URL(),
				AcceptedMethods: route.Methods(),
			})
		}
		m[key] = append(m[key], endpoints...)
	}

	return m, nil
}
