// SPDX-License-Identifier: MIT

// Package codec reads and writes graphs as keyed documents in YAML, JSON or
// MessagePack.
//
// A document names its elements with string keys; edges refer to their
// endpoints by node key:
//
//	nodes:
//	  - key: a
//	    attrs: {x: 1}
//	  - key: b
//	    marked: true
//	edges:
//	  - key: ab
//	    source: a
//	    target: b
//	    attrs: {y: 1}
//
// Decoding draws fresh identities for every element; Symbols records the
// key ↔ identity correspondence so results can be reported by key.
//
// Errors:
//
//	ErrEmptyKey     - a node without a key.
//	ErrDuplicateKey - two nodes or two edges sharing a key.
//	ErrUnknownKey   - an edge endpoint naming no node.
//	ErrFormat       - an unsupported format or file extension.
package codec

import "errors"

// Sentinel errors for document decoding.
var (
	// ErrEmptyKey indicates a node document without a key.
	ErrEmptyKey = errors.New("codec: empty key")

	// ErrDuplicateKey indicates that a key names two elements of the same kind.
	ErrDuplicateKey = errors.New("codec: duplicate key")

	// ErrUnknownKey indicates an edge endpoint that names no node.
	ErrUnknownKey = errors.New("codec: unknown key")

	// ErrFormat indicates an unsupported serialization format.
	ErrFormat = errors.New("codec: unsupported format")
)

// Format is a serialization format.
type Format string

const (
	// FormatYAML is YAML 1.2 (the default).
	FormatYAML Format = "yaml"
	// FormatJSON is JSON.
	FormatJSON Format = "json"
	// FormatMsgpack is MessagePack.
	FormatMsgpack Format = "msgpack"
)

// Document is the serialized form of a graph.
type Document struct {
	Nodes []NodeDoc `yaml:"nodes,omitempty" json:"nodes,omitempty" msgpack:"nodes,omitempty"`
	Edges []EdgeDoc `yaml:"edges,omitempty" json:"edges,omitempty" msgpack:"edges,omitempty"`
}

// NodeDoc is one node of a Document.
type NodeDoc struct {
	Key    string         `yaml:"key" json:"key" msgpack:"key"`
	Attrs  map[string]any `yaml:"attrs,omitempty" json:"attrs,omitempty" msgpack:"attrs,omitempty"`
	Marked bool           `yaml:"marked,omitempty" json:"marked,omitempty" msgpack:"marked,omitempty"`
}

// EdgeDoc is one edge of a Document. The key may be empty.
type EdgeDoc struct {
	Key    string         `yaml:"key,omitempty" json:"key,omitempty" msgpack:"key,omitempty"`
	Source string         `yaml:"source" json:"source" msgpack:"source"`
	Target string         `yaml:"target" json:"target" msgpack:"target"`
	Attrs  map[string]any `yaml:"attrs,omitempty" json:"attrs,omitempty" msgpack:"attrs,omitempty"`
	Marked bool           `yaml:"marked,omitempty" json:"marked,omitempty" msgpack:"marked,omitempty"`
}
