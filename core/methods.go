// SPDX-License-Identifier: MIT
// Package core: Graph mutation methods.
//
// This file provides the atomic, invariant-checking mutations of the Graph
// type defined in types.go: batch addition, strict and cascading removal,
// and marking. Every mutation validates first and mutates second, so a
// rejected call leaves the graph untouched.

package core

import "fmt"

// Add inserts nodes and edges in one atomic step.
//
// Every edge endpoint must be a member already or be among nodes, else
// ErrInvariantViolation is returned and nothing is added. Re-adding an
// identity that is already a member is a no-op (the stored value is kept).
// With Marked(), every element passed to the call is marked.
//
// Complexity: O((n+m)·log(N+M)).
func (g *Graph) Add(nodes []Node, edges []Edge, opts ...AddOption) error {
	var ao addOptions
	for _, opt := range opts {
		opt(&ao)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Validate against members ∪ nodes
	incoming := make(map[NodeID]struct{}, len(nodes))
	for _, n := range nodes {
		if n.IsZero() {
			return fmt.Errorf("core: add: %w: zero node", ErrInvariantViolation)
		}
		incoming[n.id] = struct{}{}
	}
	for _, e := range edges {
		if e.IsZero() {
			return fmt.Errorf("core: add: %w: zero edge", ErrInvariantViolation)
		}
		for _, end := range [2]NodeID{e.source, e.target} {
			if _, ok := incoming[end]; ok {
				continue
			}
			if _, ok := g.nodes.Get(end); !ok {
				return fmt.Errorf("core: add %s: %w: endpoint %s is not a member", e.id, ErrInvariantViolation, end)
			}
		}
	}

	// 2) Mutate
	for _, n := range nodes {
		g.insertNode(n)
		if ao.marked {
			g.markedNodes.Insert(n.id)
		}
	}
	for _, e := range edges {
		g.insertEdge(e)
		if ao.marked {
			g.markedEdges.Insert(e.id)
		}
	}

	return nil
}

// AddNode inserts a single node. See Add.
func (g *Graph) AddNode(n Node, opts ...AddOption) error {
	return g.Add([]Node{n}, nil, opts...)
}

// AddEdge inserts a single edge whose endpoints are already members. See Add.
func (g *Graph) AddEdge(e Edge, opts ...AddOption) error {
	return g.Add(nil, []Edge{e}, opts...)
}

// Remove deletes nodes and edges in one atomic step.
//
// Every edge incident to a removed node must itself be in edges, else
// ErrDanglingEdge is returned and nothing is removed. Identities that are not
// members are ignored. Removed elements are also unmarked.
//
// Complexity: O((n·d + m)·log(N+M)) where d is the maximum node degree.
func (g *Graph) Remove(nodes []NodeID, edges []EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	removing := make(map[EdgeID]struct{}, len(edges))
	for _, eid := range edges {
		removing[eid] = struct{}{}
	}
	for _, nid := range nodes {
		for eid := range g.incident[nid] {
			if _, ok := removing[eid]; !ok {
				return fmt.Errorf("core: remove %s: %w: %s is still incident", nid, ErrDanglingEdge, eid)
			}
		}
	}

	for _, eid := range edges {
		g.deleteEdge(eid)
	}
	for _, nid := range nodes {
		g.deleteNode(nid)
	}

	return nil
}

// Detach deletes nodes together with every incident edge. Identities that
// are not members are ignored.
//
// Complexity: O(n·d·log(N+M)).
func (g *Graph) Detach(nodes ...NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, nid := range nodes {
		for _, eid := range g.incidentSorted(nid) {
			g.deleteEdge(eid)
		}
		g.deleteNode(nid)
	}
}

// Mark adds member elements to the marked subset.
// Returns ErrInvariantViolation (and marks nothing) if any identity is not a member.
func (g *Graph) Mark(nodes []NodeID, edges []EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, nid := range nodes {
		if _, ok := g.nodes.Get(nid); !ok {
			return fmt.Errorf("core: mark %s: %w: not a member", nid, ErrInvariantViolation)
		}
	}
	for _, eid := range edges {
		if _, ok := g.edges.Get(eid); !ok {
			return fmt.Errorf("core: mark %s: %w: not a member", eid, ErrInvariantViolation)
		}
	}
	for _, nid := range nodes {
		g.markedNodes.Insert(nid)
	}
	for _, eid := range edges {
		g.markedEdges.Insert(eid)
	}

	return nil
}

// Unmark removes elements from the marked subset. Unmarked or absent
// identities are ignored.
func (g *Graph) Unmark(nodes []NodeID, edges []EdgeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, nid := range nodes {
		g.markedNodes.Delete(nid)
	}
	for _, eid := range edges {
		g.markedEdges.Delete(eid)
	}
}

// insertNode stores n unless its identity is already a member. Caller holds mu.
func (g *Graph) insertNode(n Node) {
	if _, ok := g.nodes.Get(n.id); ok {
		return
	}
	g.nodes.Set(n.id, n)
	ensureIncident(g, n.id)
}

// insertEdge stores e unless its identity is already a member. Caller holds mu
// and has checked the endpoints.
func (g *Graph) insertEdge(e Edge) {
	if _, ok := g.edges.Get(e.id); ok {
		return
	}
	g.edges.Set(e.id, e)
	linkIncident(g, e)
}

// deleteEdge removes eid if present. Caller holds mu.
func (g *Graph) deleteEdge(eid EdgeID) {
	e, ok := g.edges.Delete(eid)
	if !ok {
		return
	}
	unlinkIncident(g, e)
	g.markedEdges.Delete(eid)
}

// deleteNode removes nid if present. Caller holds mu and has removed the incident edges.
func (g *Graph) deleteNode(nid NodeID) {
	if _, ok := g.nodes.Delete(nid); !ok {
		return
	}
	delete(g.incident, nid)
	g.markedNodes.Delete(nid)
}
