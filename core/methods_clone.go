// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - A clone holds the same identities, attributes and marks as its source.
// Concurrency:
//   - Clone takes the source's write lock: copy-on-write tables mark the source
//     tree as shared, which is a write.

package core

import "github.com/tidwall/btree"

// Clone returns an independent copy of the graph: nodes, edges, incident index and marks.
// Mutating either graph afterwards never affects the other.
//
// Complexity: O(1) for the node/edge tables (copy-on-write) plus O(N+M) for the incident index.
func (g *Graph) Clone() *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()

	clone := &Graph{
		nodes:       g.nodes.Copy(),
		edges:       g.edges.Copy(),
		incident:    make(map[NodeID]map[EdgeID]struct{}, len(g.incident)),
		markedNodes: g.markedNodes.Copy(),
		markedEdges: g.markedEdges.Copy(),
	}
	var (
		nid    NodeID
		bucket map[EdgeID]struct{}
		eid    EdgeID
	)
	for nid, bucket = range g.incident {
		cp := make(map[EdgeID]struct{}, len(bucket))
		for eid = range bucket {
			cp[eid] = struct{}{}
		}
		clone.incident[nid] = cp
	}

	return clone
}

// Clear removes every node, edge and mark.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = new(btree.Map[NodeID, Node])
	g.edges = new(btree.Map[EdgeID, Edge])
	g.incident = make(map[NodeID]map[EdgeID]struct{})
	g.markedNodes = new(btree.Set[NodeID])
	g.markedEdges = new(btree.Set[EdgeID])
}
