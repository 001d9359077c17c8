// SPDX-License-Identifier: MIT
//
// File: symbols.go
// Role: Key ↔ identity tables produced by Decode and consumed by Encode.

package codec

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/knob/core"
)

// Symbols maps document keys to element identities and back.
// The zero value is not usable; use NewSymbols.
type Symbols struct {
	nodes    map[string]core.NodeID
	edges    map[string]core.EdgeID
	nodeKeys map[core.NodeID]string
	edgeKeys map[core.EdgeID]string
}

// NewSymbols returns empty tables.
func NewSymbols() *Symbols {
	return &Symbols{
		nodes:    make(map[string]core.NodeID),
		edges:    make(map[string]core.EdgeID),
		nodeKeys: make(map[core.NodeID]string),
		edgeKeys: make(map[core.EdgeID]string),
	}
}

// Node returns the identity bound to a node key.
func (s *Symbols) Node(key string) (core.NodeID, bool) {
	id, ok := s.nodes[key]
	return id, ok
}

// Edge returns the identity bound to an edge key.
func (s *Symbols) Edge(key string) (core.EdgeID, bool) {
	id, ok := s.edges[key]
	return id, ok
}

// NodeKey returns the key of a node identity, or "n<id>" when unbound.
// A nil receiver behaves as empty tables.
func (s *Symbols) NodeKey(id core.NodeID) string {
	if s != nil {
		if k, ok := s.nodeKeys[id]; ok {
			return k
		}
	}
	return "n" + strconv.FormatUint(uint64(id), 10)
}

// EdgeKey returns the key of an edge identity, or "e<id>" when unbound.
// A nil receiver behaves as empty tables.
func (s *Symbols) EdgeKey(id core.EdgeID) string {
	if s != nil {
		if k, ok := s.edgeKeys[id]; ok {
			return k
		}
	}
	return "e" + strconv.FormatUint(uint64(id), 10)
}

// boundNode returns the key bound to id, if any. Nil-safe.
func (s *Symbols) boundNode(id core.NodeID) (string, bool) {
	if s == nil {
		return "", false
	}
	k, ok := s.nodeKeys[id]
	return k, ok
}

// boundEdge returns the key bound to id, if any. Nil-safe.
func (s *Symbols) boundEdge(id core.EdgeID) (string, bool) {
	if s == nil {
		return "", false
	}
	k, ok := s.edgeKeys[id]
	return k, ok
}

// BindNode binds key to id. Returns ErrDuplicateKey if key is already bound
// to a different identity.
func (s *Symbols) BindNode(key string, id core.NodeID) error {
	if old, ok := s.nodes[key]; ok && old != id {
		return fmt.Errorf("codec: node %q: %w", key, ErrDuplicateKey)
	}
	s.nodes[key] = id
	s.nodeKeys[id] = key

	return nil
}

// BindEdge binds key to id. Returns ErrDuplicateKey if key is already bound
// to a different identity.
func (s *Symbols) BindEdge(key string, id core.EdgeID) error {
	if old, ok := s.edges[key]; ok && old != id {
		return fmt.Errorf("codec: edge %q: %w", key, ErrDuplicateKey)
	}
	s.edges[key] = id
	s.edgeKeys[id] = key

	return nil
}

// Merge copies every binding of other into s. Bindings of s win on conflict.
func (s *Symbols) Merge(other *Symbols) {
	if other == nil {
		return
	}
	for k, id := range other.nodes {
		if _, ok := s.nodes[k]; ok {
			continue
		}
		if _, ok := s.nodeKeys[id]; ok {
			continue
		}
		s.nodes[k] = id
		s.nodeKeys[id] = k
	}
	for k, id := range other.edges {
		if _, ok := s.edges[k]; ok {
			continue
		}
		if _, ok := s.edgeKeys[id]; ok {
			continue
		}
		s.edges[k] = id
		s.edgeKeys[id] = k
	}
}
