// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for knob/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep goroutine bodies free of *testing.T assertions.

package core_test

import (
	"testing"

	"github.com/katalvlaran/knob/core"
	"github.com/stretchr/testify/require"
)

// Attribute fixtures used across core tests.
var (
	AttrsX1 = core.Attrs{"x": 1}
	AttrsX2 = core.Attrs{"x": 2}
	AttrsY1 = core.Attrs{"y": 1}
)

// chain builds a graph n1 -> n2 -> ... -> nk and returns it with its elements.
func chain(t *testing.T, k int) (*core.Graph, []core.Node, []core.Edge) {
	t.Helper()
	nodes := make([]core.Node, k)
	for i := range nodes {
		nodes[i] = core.MustNode(core.Attrs{"i": i})
	}
	edges := make([]core.Edge, 0, k)
	for i := 0; i+1 < k; i++ {
		edges = append(edges, core.MustEdge(nodes[i].ID(), nodes[i+1].ID(), nil))
	}
	g := core.NewGraph()
	require.NoError(t, g.Add(nodes, edges))

	return g, nodes, edges
}

// nodeIDs projects nodes onto their identities.
func nodeIDs(ns []core.Node) []core.NodeID {
	out := make([]core.NodeID, len(ns))
	for i, n := range ns {
		out[i] = n.ID()
	}
	return out
}

// edgeIDs projects edges onto their identities.
func edgeIDs(es []core.Edge) []core.EdgeID {
	out := make([]core.EdgeID, len(es))
	for i, e := range es {
		out[i] = e.ID()
	}
	return out
}
