// SPDX-License-Identifier: MIT
//
// File: element.go
// Role: Node and Edge value types, constructors, pattern matching predicates.
// Determinism:
//   - Every constructor call draws a fresh identity; identities never repeat.

package core

import "fmt"

// Node is a graph node: an identity plus attributes.
// Node values are immutable; WithAttrs derives a new value with the same identity.
type Node struct {
	id    NodeID
	attrs Attrs
}

// NewNode constructs a node with a fresh identity and a copy of attrs.
// Returns ErrInvariantViolation if an attribute value is not a string, integer or bool.
func NewNode(attrs Attrs) (Node, error) {
	norm, err := normalizeAttrs(attrs)
	if err != nil {
		return Node{}, fmt.Errorf("core: new node: %w", err)
	}

	return Node{id: NodeID(nextID()), attrs: norm}, nil
}

// MustNode is like NewNode but panics on error. Intended for literals and tests.
func MustNode(attrs Attrs) Node {
	n, err := NewNode(attrs)
	if err != nil {
		panic(err)
	}

	return n
}

// ID returns the node identity.
func (n Node) ID() NodeID { return n.id }

// IsZero reports whether n is the zero Node (never constructed).
func (n Node) IsZero() bool { return n.id == 0 }

// Kind returns KindNode.
func (n Node) Kind() Kind { return KindNode }

// Attrs returns a copy of the node attributes.
func (n Node) Attrs() Attrs { return n.attrs.Clone() }

// Attr returns a single attribute value.
func (n Node) Attr(key string) (any, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// Matches reports whether n, used as a pattern, matches the candidate node:
// every attribute of n must be present in other with an equal value.
func (n Node) Matches(other Node) bool {
	return n.attrs.SubsetOf(other.attrs)
}

// WithAttrs returns a node with the same identity and attributes merged with update.
func (n Node) WithAttrs(update Attrs) (Node, error) {
	attrs, err := n.attrs.merged(update)
	if err != nil {
		return Node{}, fmt.Errorf("core: update %s: %w", n.id, err)
	}

	return Node{id: n.id, attrs: attrs}, nil
}

// String renders the node as "n#<id>" followed by its attributes.
func (n Node) String() string {
	return n.id.String() + n.attrs.String()
}

// Edge is a directed arc from Source to Target carrying attributes.
// An edge references its endpoints by identity and does not own them.
type Edge struct {
	id     EdgeID
	source NodeID
	target NodeID
	attrs  Attrs
}

// NewEdge constructs an edge with a fresh identity.
// Returns ErrInvariantViolation for a zero endpoint or a bad attribute value.
func NewEdge(source, target NodeID, attrs Attrs) (Edge, error) {
	if source == 0 || target == 0 {
		return Edge{}, fmt.Errorf("core: new edge: %w: zero endpoint", ErrInvariantViolation)
	}
	norm, err := normalizeAttrs(attrs)
	if err != nil {
		return Edge{}, fmt.Errorf("core: new edge: %w", err)
	}

	return Edge{id: EdgeID(nextID()), source: source, target: target, attrs: norm}, nil
}

// MustEdge is like NewEdge but panics on error. Intended for literals and tests.
func MustEdge(source, target NodeID, attrs Attrs) Edge {
	e, err := NewEdge(source, target, attrs)
	if err != nil {
		panic(err)
	}

	return e
}

// ID returns the edge identity.
func (e Edge) ID() EdgeID { return e.id }

// IsZero reports whether e is the zero Edge (never constructed).
func (e Edge) IsZero() bool { return e.id == 0 }

// Kind returns KindEdge.
func (e Edge) Kind() Kind { return KindEdge }

// Source returns the source node identity.
func (e Edge) Source() NodeID { return e.source }

// Target returns the target node identity.
func (e Edge) Target() NodeID { return e.target }

// IsLoop reports whether source and target are the same node.
func (e Edge) IsLoop() bool { return e.source == e.target }

// Attrs returns a copy of the edge attributes.
func (e Edge) Attrs() Attrs { return e.attrs.Clone() }

// Attr returns a single attribute value.
func (e Edge) Attr(key string) (any, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// Adjacent returns the endpoint other than n. For a self-loop it returns n.
// The boolean is false when n is not an endpoint of e.
func (e Edge) Adjacent(n NodeID) (NodeID, bool) {
	switch n {
	case e.source:
		return e.target, true
	case e.target:
		return e.source, true
	default:
		return 0, false
	}
}

// IsIncoming reports whether e enters n, i.e. n is the edge target.
func (e Edge) IsIncoming(n NodeID) bool {
	return n == e.target
}

// Matches reports whether e, used as a pattern, matches the candidate edge's
// attributes. Endpoint and direction consistency are the matcher's concern.
func (e Edge) Matches(other Edge) bool {
	return e.attrs.SubsetOf(other.attrs)
}

// WithAttrs returns an edge with the same identity and endpoints and attributes merged with update.
func (e Edge) WithAttrs(update Attrs) (Edge, error) {
	attrs, err := e.attrs.merged(update)
	if err != nil {
		return Edge{}, fmt.Errorf("core: update %s: %w", e.id, err)
	}

	return Edge{id: e.id, source: e.source, target: e.target, attrs: attrs}, nil
}

// String renders the edge as "e#<id>[n#<src>->n#<dst>]" followed by its attributes.
func (e Edge) String() string {
	return e.id.String() + "[" + e.source.String() + "->" + e.target.String() + "]" + e.attrs.String()
}

// Matches reports whether pattern matches candidate: both must be of the same
// kind and every pattern attribute must be present in the candidate.
func Matches(pattern, candidate Element) bool {
	switch p := pattern.(type) {
	case Node:
		c, ok := candidate.(Node)
		return ok && p.Matches(c)
	case Edge:
		c, ok := candidate.(Edge)
		return ok && p.Matches(c)
	default:
		return false
	}
}
