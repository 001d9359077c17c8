// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge queries and attribute updates: HasEdge/Edge/Edges/EdgeCount/UpdateEdge.
// Determinism:
//   - Edges() returns edges sorted by EdgeID asc (creation order).
// Concurrency:
//   - Queries under read lock; UpdateEdge under write lock.

package core

import "fmt"

// HasEdge reports whether eid is a member.
// Complexity: O(log M).
func (g *Graph) HasEdge(eid EdgeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges.Get(eid)

	return ok
}

// Edge returns the member edge with identity eid, or ErrEdgeNotFound.
// Complexity: O(log M).
func (g *Graph) Edge(eid EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges.Get(eid)
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all member edges sorted by identity.
// Complexity: O(M).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.Values()
}

// EdgeIDs returns all member edge identities in ascending order.
// Complexity: O(M).
func (g *Graph) EdgeIDs() []EdgeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.Keys()
}

// EdgeCount returns the number of member edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.Len()
}

// UpdateEdge merges attrs into the attributes of member edge eid. Identity and
// endpoints are unchanged. Returns ErrEdgeNotFound or ErrInvariantViolation.
func (g *Graph) UpdateEdge(eid EdgeID, attrs Attrs) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges.Get(eid)
	if !ok {
		return fmt.Errorf("core: update %s: %w", eid, ErrEdgeNotFound)
	}
	updated, err := e.WithAttrs(attrs)
	if err != nil {
		return err
	}
	g.edges.Set(eid, updated)

	return nil
}
