// SPDX-License-Identifier: MIT
//
// File: algebra.go
// Role: Set algebra over graphs: Union, Intersection, Difference,
//       SymmetricDifference, UnionWith and identity Equal.
// Determinism:
//   - Operations are pointwise over node, edge and marked identity sets.
//   - For an identity present in both operands the receiver's value wins.
// Concurrency:
//   - The argument is snapshotted under its own read lock before the receiver
//     is locked; the two locks are never held together.

package core

import "fmt"

// contents is an immutable snapshot of a graph's members and marks.
type contents struct {
	nodes       []Node
	edges       []Edge
	markedNodes []NodeID
	markedEdges []EdgeID
}

func (g *Graph) snapshot() contents {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return contents{
		nodes:       g.nodes.Values(),
		edges:       g.edges.Values(),
		markedNodes: g.markedNodes.Keys(),
		markedEdges: g.markedEdges.Keys(),
	}
}

// selection is a pointwise result before it is materialized.
type selection struct {
	nodes       []Node
	edges       []Edge
	markedNodes map[NodeID]struct{}
	markedEdges map[EdgeID]struct{}
}

// build materializes s, failing with ErrDanglingEdge when an edge lost an endpoint.
// Marks on elements that are not members of the result are dropped.
func (s selection) build(op string) (*Graph, error) {
	out := NewGraph()
	for _, n := range s.nodes {
		out.insertNode(n)
	}
	for _, e := range s.edges {
		for _, end := range [2]NodeID{e.source, e.target} {
			if _, ok := out.nodes.Get(end); !ok {
				return nil, fmt.Errorf("core: %s: %w: %s lost endpoint %s", op, ErrDanglingEdge, e.id, end)
			}
		}
		out.insertEdge(e)
	}
	for nid := range s.markedNodes {
		if _, ok := out.nodes.Get(nid); ok {
			out.markedNodes.Insert(nid)
		}
	}
	for eid := range s.markedEdges {
		if _, ok := out.edges.Get(eid); ok {
			out.markedEdges.Insert(eid)
		}
	}

	return out, nil
}

func nodeSet(ns []Node) map[NodeID]struct{} {
	out := make(map[NodeID]struct{}, len(ns))
	for _, n := range ns {
		out[n.id] = struct{}{}
	}
	return out
}

func edgeSet(es []Edge) map[EdgeID]struct{} {
	out := make(map[EdgeID]struct{}, len(es))
	for _, e := range es {
		out[e.id] = struct{}{}
	}
	return out
}

func idSet[K comparable](ids []K) map[K]struct{} {
	out := make(map[K]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

// Union returns g ∪ other. Both operands are left untouched.
// Complexity: O((N+M)·log(N+M)).
func (g *Graph) Union(other *Graph) *Graph {
	b := other.snapshot()
	a := g.snapshot()

	s := selection{
		nodes:       append(append([]Node{}, a.nodes...), b.nodes...),
		edges:       append(append([]Edge{}, a.edges...), b.edges...),
		markedNodes: idSet(append(append([]NodeID{}, a.markedNodes...), b.markedNodes...)),
		markedEdges: idSet(append(append([]EdgeID{}, a.markedEdges...), b.markedEdges...)),
	}
	// Both operands satisfy the invariants, so their union does too.
	out, _ := s.build("union")

	return out
}

// UnionWith adds every member and mark of other to g in place.
func (g *Graph) UnionWith(other *Graph) {
	b := other.snapshot()

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, n := range b.nodes {
		g.insertNode(n)
	}
	for _, e := range b.edges {
		g.insertEdge(e)
	}
	for _, nid := range b.markedNodes {
		g.markedNodes.Insert(nid)
	}
	for _, eid := range b.markedEdges {
		g.markedEdges.Insert(eid)
	}
}

// Intersection returns g ∩ other: members and marks present in both.
// Complexity: O((N+M)·log(N+M)).
func (g *Graph) Intersection(other *Graph) *Graph {
	b := other.snapshot()
	a := g.snapshot()

	bn, be := nodeSet(b.nodes), edgeSet(b.edges)
	bmn, bme := idSet(b.markedNodes), idSet(b.markedEdges)
	s := selection{markedNodes: map[NodeID]struct{}{}, markedEdges: map[EdgeID]struct{}{}}
	for _, n := range a.nodes {
		if _, ok := bn[n.id]; ok {
			s.nodes = append(s.nodes, n)
		}
	}
	for _, e := range a.edges {
		if _, ok := be[e.id]; ok {
			s.edges = append(s.edges, e)
		}
	}
	for _, nid := range a.markedNodes {
		if _, ok := bmn[nid]; ok {
			s.markedNodes[nid] = struct{}{}
		}
	}
	for _, eid := range a.markedEdges {
		if _, ok := bme[eid]; ok {
			s.markedEdges[eid] = struct{}{}
		}
	}
	// An edge in both operands has its endpoints in both node sets.
	out, _ := s.build("intersection")

	return out
}

// Difference returns g − other pointwise. Returns ErrDanglingEdge when an
// edge of g survives while one of its endpoints is removed.
// Complexity: O((N+M)·log(N+M)).
func (g *Graph) Difference(other *Graph) (*Graph, error) {
	b := other.snapshot()
	a := g.snapshot()

	bn, be := nodeSet(b.nodes), edgeSet(b.edges)
	bmn, bme := idSet(b.markedNodes), idSet(b.markedEdges)
	s := selection{markedNodes: map[NodeID]struct{}{}, markedEdges: map[EdgeID]struct{}{}}
	for _, n := range a.nodes {
		if _, ok := bn[n.id]; !ok {
			s.nodes = append(s.nodes, n)
		}
	}
	for _, e := range a.edges {
		if _, ok := be[e.id]; !ok {
			s.edges = append(s.edges, e)
		}
	}
	for _, nid := range a.markedNodes {
		if _, ok := bmn[nid]; !ok {
			s.markedNodes[nid] = struct{}{}
		}
	}
	for _, eid := range a.markedEdges {
		if _, ok := bme[eid]; !ok {
			s.markedEdges[eid] = struct{}{}
		}
	}

	return s.build("difference")
}

// SymmetricDifference returns g △ other pointwise. Returns ErrDanglingEdge
// when an edge present in only one operand has an endpoint present in both.
// Complexity: O((N+M)·log(N+M)).
func (g *Graph) SymmetricDifference(other *Graph) (*Graph, error) {
	b := other.snapshot()
	a := g.snapshot()

	an, ae := nodeSet(a.nodes), edgeSet(a.edges)
	bn, be := nodeSet(b.nodes), edgeSet(b.edges)
	s := selection{markedNodes: map[NodeID]struct{}{}, markedEdges: map[EdgeID]struct{}{}}
	for _, n := range a.nodes {
		if _, ok := bn[n.id]; !ok {
			s.nodes = append(s.nodes, n)
		}
	}
	for _, n := range b.nodes {
		if _, ok := an[n.id]; !ok {
			s.nodes = append(s.nodes, n)
		}
	}
	for _, e := range a.edges {
		if _, ok := be[e.id]; !ok {
			s.edges = append(s.edges, e)
		}
	}
	for _, e := range b.edges {
		if _, ok := ae[e.id]; !ok {
			s.edges = append(s.edges, e)
		}
	}
	amn, ame := idSet(a.markedNodes), idSet(a.markedEdges)
	bmn, bme := idSet(b.markedNodes), idSet(b.markedEdges)
	for nid := range amn {
		if _, ok := bmn[nid]; !ok {
			s.markedNodes[nid] = struct{}{}
		}
	}
	for nid := range bmn {
		if _, ok := amn[nid]; !ok {
			s.markedNodes[nid] = struct{}{}
		}
	}
	for eid := range ame {
		if _, ok := bme[eid]; !ok {
			s.markedEdges[eid] = struct{}{}
		}
	}
	for eid := range bme {
		if _, ok := ame[eid]; !ok {
			s.markedEdges[eid] = struct{}{}
		}
	}

	return s.build("symmetric difference")
}

// Equal reports whether g and other have the same node, edge and marked
// identities. Attributes are not compared: equality is identity.
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	b := other.snapshot()
	a := g.snapshot()

	if len(a.nodes) != len(b.nodes) || len(a.edges) != len(b.edges) ||
		len(a.markedNodes) != len(b.markedNodes) || len(a.markedEdges) != len(b.markedEdges) {
		return false
	}
	// Snapshots are ordered by identity, so a pairwise walk suffices.
	for i := range a.nodes {
		if a.nodes[i].id != b.nodes[i].id {
			return false
		}
	}
	for i := range a.edges {
		if a.edges[i].id != b.edges[i].id {
			return false
		}
	}
	for i := range a.markedNodes {
		if a.markedNodes[i] != b.markedNodes[i] {
			return false
		}
	}
	for i := range a.markedEdges {
		if a.markedEdges[i] != b.markedEdges[i] {
			return false
		}
	}

	return true
}
