// SPDX-License-Identifier: MIT
// Package: knob/builder
//
// api.go - BuildGraph plus the node/edge helpers every constructor uses.
//
// Contract:
//   - BuildGraph creates the graph, resolves the config, runs constructors in order.
//   - Constructors address nodes by key; a key seen before resolves to the
//     same node, so compositions overlap where their keys coincide.
//   - Edges are emitted in a stable, documented order per constructor.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/knob/codec"
	"github.com/katalvlaran/knob/core"
)

// Constructor applies one topology to the graph under construction.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(b *build, cfg builderConfig) error

// build is the graph under construction plus its key tables.
type build struct {
	g    *core.Graph
	syms *codec.Symbols
}

// BuildGraph creates a new graph, resolves the builder configuration from
// bopts and applies all constructors in order. The returned symbols name
// every node and edge. Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, *codec.Symbols, error) {
	b := &build{g: core.NewGraph(), syms: codec.NewSymbols()}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.g, b.syms, nil
}

// node returns the node keyed key, creating it with attrs on first use.
func (b *build) node(key string, attrs core.Attrs) (core.NodeID, error) {
	if id, ok := b.syms.Node(key); ok {
		return id, nil
	}
	n, err := core.NewNode(attrs)
	if err != nil {
		return 0, fmt.Errorf("node %q: %w", key, err)
	}
	if err = b.g.AddNode(n); err != nil {
		return 0, fmt.Errorf("node %q: %w: %w", key, ErrConstructFailed, err)
	}
	if err = b.syms.BindNode(key, n.ID()); err != nil {
		return 0, err
	}

	return n.ID(), nil
}

// nodeAt is node keyed by the configured scheme at index i.
func (b *build) nodeAt(cfg builderConfig, i int) (core.NodeID, error) {
	return b.node(cfg.idFn(i), cfg.nodeAttrs(i))
}

// nodes creates the nodes at indices 0..n-1 in order and returns their identities.
func (b *build) nodes(cfg builderConfig, n int) ([]core.NodeID, error) {
	ids := make([]core.NodeID, n)
	for i := range ids {
		id, err := b.nodeAt(cfg, i)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	return ids, nil
}

// edge adds src→dst (and dst→src when symmetric). u and v are the
// constructor-local indices handed to the edge attribute function.
func (b *build) edge(cfg builderConfig, src, dst core.NodeID, u, v int) error {
	if err := b.arc(src, dst, cfg.edgeAttrs(u, v)); err != nil {
		return err
	}
	if cfg.symmetric && src != dst {
		return b.arc(dst, src, cfg.edgeAttrs(v, u))
	}

	return nil
}

func (b *build) arc(src, dst core.NodeID, attrs core.Attrs) error {
	e, err := core.NewEdge(src, dst, attrs)
	if err != nil {
		return err
	}
	if err = b.g.AddEdge(e); err != nil {
		return fmt.Errorf("%w: %w", ErrConstructFailed, err)
	}

	base := b.syms.NodeKey(src) + ">" + b.syms.NodeKey(dst)
	key := base
	for k := 2; ; k++ {
		if _, taken := b.syms.Edge(key); !taken {
			break
		}
		key = base + "#" + strconv.Itoa(k)
	}

	return b.syms.BindEdge(key, e.ID())
}
