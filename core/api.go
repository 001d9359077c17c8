// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: marks, emptiness and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function takes the read lock once.

package core

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	NodeCount       int // member nodes
	EdgeCount       int // member edges
	MarkedNodeCount int // marked nodes
	MarkedEdgeCount int // marked edges
	LoopCount       int // edges whose source is their target
}

// Stats returns a consistent snapshot of counts.
// Complexity: O(M) for the loop count.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount:       g.nodes.Len(),
		EdgeCount:       g.edges.Len(),
		MarkedNodeCount: g.markedNodes.Len(),
		MarkedEdgeCount: g.markedEdges.Len(),
	}
	g.edges.Scan(func(_ EdgeID, e Edge) bool {
		if e.IsLoop() {
			stats.LoopCount++
		}
		return true
	})

	return stats
}

// IsEmpty reports whether the graph has no nodes (and therefore no edges).
// Complexity: O(1).
func (g *Graph) IsEmpty() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Len() == 0
}

// IsNodeMarked reports whether nid is in the marked subset.
func (g *Graph) IsNodeMarked(nid NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.markedNodes.Contains(nid)
}

// IsEdgeMarked reports whether eid is in the marked subset.
func (g *Graph) IsEdgeMarked(eid EdgeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.markedEdges.Contains(eid)
}

// MarkedNodes returns the marked node identities in ascending order.
func (g *Graph) MarkedNodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.markedNodes.Keys()
}

// MarkedEdges returns the marked edge identities in ascending order.
func (g *Graph) MarkedEdges() []EdgeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.markedEdges.Keys()
}
