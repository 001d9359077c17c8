// SPDX-License-Identifier: MIT

// Package component splits a graph into its weakly connected components.
//
// Edge direction is ignored when deciding connectivity; self-loops stay with
// their node. Connectivity is computed by gonum's topo.ConnectedComponents
// over an undirected projection whose node IDs are the core.NodeID values.
//
// Determinism:
//   - Split orders components by their lowest node identity.
package component

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/knob/core"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// project builds the undirected view of g. Parallel and antiparallel edges
// collapse into one undirected edge; self-loops are dropped.
func project(g *core.Graph) (*simple.UndirectedGraph, error) {
	ug := simple.NewUndirectedGraph()
	for _, nid := range g.NodeIDs() {
		if uint64(nid) > math.MaxInt64 {
			return nil, fmt.Errorf("component: %s: %w: identity overflows int64", nid, core.ErrInvariantViolation)
		}
		ug.AddNode(simple.Node(int64(nid)))
	}
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		ug.SetEdge(ug.NewEdge(simple.Node(int64(e.Source())), simple.Node(int64(e.Target()))))
	}

	return ug, nil
}

func components(g *core.Graph) ([][]core.NodeID, error) {
	ug, err := project(g)
	if err != nil {
		return nil, err
	}
	raw := topo.ConnectedComponents(ug)

	out := make([][]core.NodeID, 0, len(raw))
	for _, comp := range raw {
		ids := make([]core.NodeID, len(comp))
		for i, n := range comp {
			ids[i] = core.NodeID(n.ID())
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out, nil
}

// Split returns the weakly connected components of g as separate graphs.
// Each component keeps the identities, attributes and marks of its elements.
// An empty graph has no components.
//
// Complexity: O((N+M)·log(N+M)).
func Split(g *core.Graph) ([]*core.Graph, error) {
	snap := g.Clone()
	comps, err := components(snap)
	if err != nil {
		return nil, err
	}

	owner := make(map[core.NodeID]int, snap.NodeCount())
	for i, ids := range comps {
		for _, nid := range ids {
			owner[nid] = i
		}
	}
	edges := make([][]core.EdgeID, len(comps))
	for _, e := range snap.Edges() {
		i := owner[e.Source()]
		edges[i] = append(edges[i], e.ID())
	}

	out := make([]*core.Graph, 0, len(comps))
	for i, ids := range comps {
		sub, err := snap.Subgraph(ids, edges[i])
		if err != nil {
			return nil, fmt.Errorf("component: split: %w", err)
		}
		if err = sub.Mark(keepNodes(snap.MarkedNodes(), sub), keepEdges(snap.MarkedEdges(), sub)); err != nil {
			return nil, fmt.Errorf("component: split: %w", err)
		}
		out = append(out, sub)
	}

	return out, nil
}

// Count returns the number of weakly connected components of g.
func Count(g *core.Graph) (int, error) {
	comps, err := components(g.Clone())
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

// IsConnected reports whether g has exactly one weakly connected component.
func IsConnected(g *core.Graph) (bool, error) {
	n, err := Count(g)
	return n == 1, err
}

// Of returns the component of g containing nid, or core.ErrNodeNotFound.
func Of(g *core.Graph, nid core.NodeID) (*core.Graph, error) {
	if !g.HasNode(nid) {
		return nil, fmt.Errorf("component: %s: %w", nid, core.ErrNodeNotFound)
	}
	parts, err := Split(g)
	if err != nil {
		return nil, err
	}
	for _, part := range parts {
		if part.HasNode(nid) {
			return part, nil
		}
	}

	// Removed concurrently between the check and the split.
	return nil, fmt.Errorf("component: %s: %w", nid, core.ErrNodeNotFound)
}

func keepNodes(ids []core.NodeID, g *core.Graph) []core.NodeID {
	var out []core.NodeID
	for _, id := range ids {
		if g.HasNode(id) {
			out = append(out, id)
		}
	}
	return out
}

func keepEdges(ids []core.EdgeID, g *core.Graph) []core.EdgeID {
	var out []core.EdgeID
	for _, id := range ids {
		if g.HasEdge(id) {
			out = append(out, id)
		}
	}
	return out
}
