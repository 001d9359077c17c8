// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Immutable, position-based snapshot of a graph used by the search.
// Determinism:
//   - Positions follow identity order; incident lists are ascending.

package match

import "github.com/katalvlaran/knob/core"

// index is a dense view of a graph: nodes and edges addressed by position.
type index struct {
	graph *core.Graph // private clone the positions refer to

	nodes []core.Node
	edges []core.Edge

	src, dst []int   // edge position → endpoint node positions
	incident [][]int // node position → incident edge positions, self-loops once
}

// newIndex snapshots g. A nil graph is treated as empty.
func newIndex(g *core.Graph) *index {
	if g == nil {
		g = core.NewGraph()
	} else {
		g = g.Clone()
	}
	ix := &index{
		graph: g,
		nodes: g.Nodes(),
		edges: g.Edges(),
	}

	pos := make(map[core.NodeID]int, len(ix.nodes))
	for i, n := range ix.nodes {
		pos[n.ID()] = i
	}
	ix.src = make([]int, len(ix.edges))
	ix.dst = make([]int, len(ix.edges))
	ix.incident = make([][]int, len(ix.nodes))
	for i, e := range ix.edges {
		s, d := pos[e.Source()], pos[e.Target()]
		ix.src[i], ix.dst[i] = s, d
		ix.incident[s] = append(ix.incident[s], i)
		if d != s {
			ix.incident[d] = append(ix.incident[d], i)
		}
	}

	return ix
}

// adjacent returns the endpoint of edge position e opposite to node position n,
// and whether e enters n.
func (ix *index) adjacent(e, n int) (other int, incoming bool) {
	if ix.src[e] == n {
		return ix.dst[e], ix.dst[e] == n
	}

	return ix.src[e], true
}
