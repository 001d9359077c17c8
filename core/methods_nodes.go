// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node queries and attribute updates: HasNode/Node/Nodes/NodeCount/UpdateNode.
// Determinism:
//   - Nodes() returns nodes sorted by NodeID asc (creation order).
// Concurrency:
//   - Queries under read lock; UpdateNode under write lock.

package core

import "fmt"

// HasNode reports whether nid is a member.
// Complexity: O(log N).
func (g *Graph) HasNode(nid NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes.Get(nid)

	return ok
}

// Node returns the member node with identity nid, or ErrNodeNotFound.
// Complexity: O(log N).
func (g *Graph) Node(nid NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes.Get(nid)
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return n, nil
}

// Nodes returns all member nodes sorted by identity.
// Complexity: O(N).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Values()
}

// NodeIDs returns all member node identities in ascending order.
// Complexity: O(N).
func (g *Graph) NodeIDs() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Keys()
}

// NodeCount returns the number of member nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Len()
}

// UpdateNode merges attrs into the attributes of member node nid. The identity
// is unchanged. Returns ErrNodeNotFound or ErrInvariantViolation (bad value kind).
func (g *Graph) UpdateNode(nid NodeID, attrs Attrs) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes.Get(nid)
	if !ok {
		return fmt.Errorf("core: update %s: %w", nid, ErrNodeNotFound)
	}
	updated, err := n.WithAttrs(attrs)
	if err != nil {
		return err
	}
	g.nodes.Set(nid, updated)

	return nil
}
