// SPDX-License-Identifier: MIT

// Package core provides the element model and the mutable Graph container
// the knob pattern matcher operates on.
//
// A Graph G = (N, E, M) holds a set of nodes N, a set of directed edges E
// and a "marked" subset M ⊆ N ∪ E used by pattern graphs that drive
// grafting and pruning (see package edit).
//
// Elements:
//
//   - Node and Edge are immutable values carrying an identity (NodeID/EdgeID)
//     and an attribute map (string keys → string, int64 or bool values).
//   - Identities come from one process-wide atomic counter, so the same
//     element may be a member of many graphs at once (a pattern and the
//     target it is matched against may even share elements).
//   - Equality is identity: two elements with identical attributes are
//     distinct unless they carry the same ID.
//   - Matching is attribute-subset containment and is NOT symmetric:
//     pattern.Matches(candidate) reports whether every pattern attribute is
//     present with an equal value in the candidate.
//
// Graph invariants:
//
//   - Every edge's source and target are member nodes.
//   - Marked elements are members.
//   - Removing a node requires removing its incident edges in the same call
//     (Remove), or asking for the cascade explicitly (Detach).
//
// Determinism:
//
//   - Nodes(), Edges(), IncidentEdges(), MarkedNodes(), MarkedEdges() return
//     results ordered by identity (creation order).
//
// Concurrency:
//
//   - Graph methods are safe for concurrent use; a single sync.RWMutex guards
//     the node/edge tables, the incident-edge index and the marked sets.
//   - Operations combining two graphs snapshot the argument first and never
//     hold both locks at once.
//
// Core Methods:
//
//	// Construction
//	NewNode(attrs) (Node, error)            NewEdge(src, dst, attrs) (Edge, error)
//	NewGraph() *Graph
//	Add(nodes, edges, opts...) error        // atomic; Marked() marks what is added
//	AddNode(n, opts...) error               AddEdge(e, opts...) error
//
//	// Removal
//	Remove(nodes, edges) error              // strict, ErrDanglingEdge
//	Detach(nodes...)                        // cascades incident edges
//
//	// Marks
//	Mark(nodes, edges) error                Unmark(nodes, edges)
//
//	// Queries
//	Node(id) / Edge(id) / Nodes() / Edges() / IncidentEdges(ids...)
//	Degree(id) / Stats() / String()
//
//	// Copies
//	Clone() *Graph                          Subgraph(nodes, edges) (*Graph, error)
//
//	// Set algebra
//	Union / Intersection / Difference / SymmetricDifference / UnionWith / Equal
//
// Errors:
//
//	ErrInvariantViolation – bad attribute kind, missing edge endpoint, marking a non-member
//	ErrDanglingEdge       – a removal or set operation would orphan an edge
//	ErrNodeNotFound       – lookup/update of an absent node
//	ErrEdgeNotFound       – lookup/update of an absent edge
package core
