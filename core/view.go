// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating views: Subgraph builds a new graph from a selection of members.
// Determinism:
//   - Identities and attributes are preserved; the view carries no marks.
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

import "fmt"

// Subgraph returns a new, unmarked graph made of exactly the selected member
// nodes and edges. The source graph is not mutated.
//
// Returns ErrNodeNotFound / ErrEdgeNotFound for non-members, and
// ErrInvariantViolation when a selected edge has an endpoint outside the selection.
//
// Complexity: O((n+m)·log(N+M)).
func (g *Graph) Subgraph(nodes []NodeID, edges []EdgeID) (*Graph, error) {
	g.mu.RLock()
	ns := make([]Node, 0, len(nodes))
	for _, nid := range nodes {
		n, ok := g.nodes.Get(nid)
		if !ok {
			g.mu.RUnlock()
			return nil, fmt.Errorf("core: subgraph: %s: %w", nid, ErrNodeNotFound)
		}
		ns = append(ns, n)
	}
	es := make([]Edge, 0, len(edges))
	for _, eid := range edges {
		e, ok := g.edges.Get(eid)
		if !ok {
			g.mu.RUnlock()
			return nil, fmt.Errorf("core: subgraph: %s: %w", eid, ErrEdgeNotFound)
		}
		es = append(es, e)
	}
	g.mu.RUnlock()

	out := NewGraph()
	if err := out.Add(ns, es); err != nil {
		return nil, fmt.Errorf("core: subgraph: %w", err)
	}

	return out, nil
}
