// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: Compact, deterministic rendering of a whole graph.
// Format:
//   {n1(x=1), +n2, e1[n1->n2](y=1)}
//   - nodes first, then edges, each numbered from 1 in identity order;
//   - edge endpoints refer to the local node numbers;
//   - a leading '+' marks a marked element.

package core

import (
	"strconv"
	"strings"
)

// String renders g in its compact form. Local numbers are stable for a given
// graph because they follow identity order.
func (g *Graph) String() string {
	c := g.snapshot()
	marked := idSet(c.markedNodes)
	markedE := idSet(c.markedEdges)

	local := make(map[NodeID]int, len(c.nodes))
	parts := make([]string, 0, len(c.nodes)+len(c.edges))
	for i, n := range c.nodes {
		local[n.id] = i + 1
		var sb strings.Builder
		if _, ok := marked[n.id]; ok {
			sb.WriteByte('+')
		}
		sb.WriteString("n" + strconv.Itoa(i+1))
		sb.WriteString(n.attrs.String())
		parts = append(parts, sb.String())
	}
	for i, e := range c.edges {
		var sb strings.Builder
		if _, ok := markedE[e.id]; ok {
			sb.WriteByte('+')
		}
		sb.WriteString("e" + strconv.Itoa(i+1))
		sb.WriteString("[n" + strconv.Itoa(local[e.source]) + "->n" + strconv.Itoa(local[e.target]) + "]")
		sb.WriteString(e.attrs.String())
		parts = append(parts, sb.String())
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
