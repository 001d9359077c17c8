// SPDX-License-Identifier: MIT
// Package match_test contains fixtures for pattern-matching tests.

package match_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/katalvlaran/knob/core"
	"github.com/katalvlaran/knob/match"
	"github.com/stretchr/testify/require"
)

// world remembers every node it creates so graphs can be built from edges
// alone, their endpoints being added implicitly.
type world struct {
	t     *testing.T
	nodes map[core.NodeID]core.Node
}

func newWorld(t *testing.T) *world {
	return &world{t: t, nodes: make(map[core.NodeID]core.Node)}
}

// N creates a node with attrs.
func (w *world) N(attrs core.Attrs) core.Node {
	n := core.MustNode(attrs)
	w.nodes[n.ID()] = n
	return n
}

// Ns creates k attribute-less nodes.
func (w *world) Ns(k int) []core.Node {
	out := make([]core.Node, k)
	for i := range out {
		out[i] = w.N(nil)
	}
	return out
}

// E creates an edge from s to d with attrs.
func (w *world) E(s, d core.Node, attrs core.Attrs) core.Edge {
	return core.MustEdge(s.ID(), d.ID(), attrs)
}

// Es creates the complete edge matrix over ns: es[i][j] goes from ns[i] to ns[j].
func (w *world) Es(ns []core.Node) [][]core.Edge {
	out := make([][]core.Edge, len(ns))
	for i := range ns {
		out[i] = make([]core.Edge, len(ns))
		for j := range ns {
			out[i][j] = w.E(ns[i], ns[j], nil)
		}
	}
	return out
}

// G builds a graph from nodes and edges; edge endpoints join implicitly.
func (w *world) G(elems ...core.Element) *core.Graph {
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
	return g
}

// key renders the identity content of g.
func key(g *core.Graph) string {
	return fmt.Sprint(g.NodeIDs(), g.EdgeIDs())
}

// images returns the distinct image subgraphs of pattern in target, sorted.
func images(pattern, target *core.Graph) []string {
	set := make(map[string]struct{})
	for sub := range match.Match(pattern, target) {
		set[key(sub)] = struct{}{}
	}
	return sorted(set)
}

// graphs returns the keys of gs as a sorted set.
func graphs(gs ...*core.Graph) []string {
	set := make(map[string]struct{})
	for _, g := range gs {
		set[key(g)] = struct{}{}
	}
	return sorted(set)
}

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
