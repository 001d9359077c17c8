// SPDX-License-Identifier: MIT
// Package edit_test contains fixtures for graft/prune tests.

package edit_test

import (
	"testing"

	"github.com/katalvlaran/knob/core"
	"github.com/stretchr/testify/require"
)

type attrs = core.Attrs

// world remembers every node it creates so graphs can be built from edges
// alone, their endpoints being added implicitly.
type world struct {
	t     *testing.T
	nodes map[core.NodeID]core.Node
}

func newWorld(t *testing.T) *world {
	return &world{t: t, nodes: make(map[core.NodeID]core.Node)}
}

func (w *world) N(a attrs) core.Node {
	n := core.MustNode(a)
	w.nodes[n.ID()] = n
	return n
}

func (w *world) E(s, d core.Node, a attrs) core.Edge {
	return core.MustEdge(s.ID(), d.ID(), a)
}

// G builds an unmarked graph from elems.
func (w *world) G(elems ...core.Element) *core.Graph {
	return w.GM(nil, elems...)
}

// GM builds a graph from elems and marks the elements in marked.
func (w *world) GM(marked []core.Element, elems ...core.Element) *core.Graph {
	w.t.Helper()
	var (
		nodes []core.Node
		edges []core.Edge
	)
	for _, el := range elems {
		switch x := el.(type) {
		case core.Node:
			nodes = append(nodes, x)
		case core.Edge:
			edges = append(edges, x)
			nodes = append(nodes, w.nodes[x.Source()], w.nodes[x.Target()])
		}
	}
	g := core.NewGraph()
	require.NoError(w.t, g.Add(nodes, edges))

	var (
		mn []core.NodeID
		me []core.EdgeID
	)
	for _, el := range marked {
		switch x := el.(type) {
		case core.Node:
			mn = append(mn, x.ID())
		case core.Edge:
			me = append(me, x.ID())
		}
	}
	require.NoError(w.t, g.Mark(mn, me))
	return g
}

// els is shorthand for a marked-set literal.
func els(elems ...core.Element) []core.Element { return elems }
