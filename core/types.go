// SPDX-License-Identifier: MIT
// Package core defines the Node, Edge and Graph types, identity allocation,
// sentinel errors and the options accepted by Graph mutations.
//
// Errors:
//
//	ErrInvariantViolation - bad attribute kind, missing endpoint, non-member mark.
//	ErrDanglingEdge       - a node would be removed while an incident edge stays.
//	ErrNodeNotFound       - requested node does not exist.
//	ErrEdgeNotFound       - requested edge does not exist.
package core

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/tidwall/btree"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvariantViolation indicates an element or graph invariant would be broken:
	// an attribute of an unsupported kind, an edge whose endpoints are not members,
	// or a mark on an element that is not a member.
	ErrInvariantViolation = errors.New("core: invariant violation")

	// ErrDanglingEdge indicates a node removal that leaves one of its incident edges behind.
	ErrDanglingEdge = errors.New("core: dangling edge")

	// ErrNodeNotFound indicates an operation referenced a node that is not a member.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge that is not a member.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// NodeID identifies a node. The zero value never identifies a real node.
type NodeID uint64

// EdgeID identifies an edge. The zero value never identifies a real edge.
type EdgeID uint64

// String renders the identity as "n#<id>".
func (id NodeID) String() string { return "n#" + strconv.FormatUint(uint64(id), 10) }

// String renders the identity as "e#<id>".
func (id EdgeID) String() string { return "e#" + strconv.FormatUint(uint64(id), 10) }

// lastID is the process-wide identity counter shared by nodes and edges,
// so identities also order elements by creation.
var lastID atomic.Uint64

// nextID returns a fresh, strictly increasing identity.
func nextID() uint64 {
	return lastID.Add(1)
}

// Kind distinguishes the two concrete element kinds.
type Kind uint8

const (
	// KindNode is the kind of Node.
	KindNode Kind = iota + 1
	// KindEdge is the kind of Edge.
	KindEdge
)

// String returns "node" or "edge".
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// Element is the behavior shared by Node and Edge.
type Element interface {
	// Kind reports the concrete element kind.
	Kind() Kind
	// Attrs returns a copy of the element's attributes.
	Attrs() Attrs
	// String renders the element in compact form.
	String() string
}

// AddOption configures a single Add/AddNode/AddEdge call.
type AddOption func(*addOptions)

type addOptions struct {
	marked bool // mark every element added by the call
}

// Marked marks every element added by the call.
func Marked() AddOption {
	return func(o *addOptions) { o.marked = true }
}

// Graph is a mutable set of nodes and directed edges with an optional
// marked subset.
//
// nodes and edges are ordered by identity; incident maps a node to the
// edges having it as source or target (self-loops appear once).
type Graph struct {
	mu sync.RWMutex // guards everything below

	nodes *btree.Map[NodeID, Node]
	edges *btree.Map[EdgeID, Edge]

	// incident[node][edge] = struct{}{}
	incident map[NodeID]map[EdgeID]struct{}

	markedNodes *btree.Set[NodeID]
	markedEdges *btree.Set[EdgeID]
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:       new(btree.Map[NodeID, Node]),
		edges:       new(btree.Map[EdgeID, Edge]),
		incident:    make(map[NodeID]map[EdgeID]struct{}),
		markedNodes: new(btree.Set[NodeID]),
		markedEdges: new(btree.Set[EdgeID]),
	}
}
