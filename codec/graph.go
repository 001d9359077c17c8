// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Document ↔ core.Graph conversion.

package codec

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/knob/core"
)

// Decode builds a graph from doc with fresh identities. The graph is built
// in one atomic Add; marked elements are marked.
//
// Errors: ErrEmptyKey, ErrDuplicateKey, ErrUnknownKey, or a wrapped
// core.ErrInvariantViolation for attribute values of unsupported kinds.
func Decode(doc Document) (*core.Graph, *Symbols, error) {
	syms := NewSymbols()
	var (
		nodes       = make([]core.Node, 0, len(doc.Nodes))
		edges       = make([]core.Edge, 0, len(doc.Edges))
		markedNodes []core.NodeID
		markedEdges []core.EdgeID
	)

	for i, nd := range doc.Nodes {
		if nd.Key == "" {
			return nil, nil, fmt.Errorf("codec: node #%d: %w", i, ErrEmptyKey)
		}
		if _, dup := syms.Node(nd.Key); dup {
			return nil, nil, fmt.Errorf("codec: node %q: %w", nd.Key, ErrDuplicateKey)
		}
		n, err := core.NewNode(nd.Attrs)
		if err != nil {
			return nil, nil, fmt.Errorf("codec: node %q: %w", nd.Key, err)
		}
		if err = syms.BindNode(nd.Key, n.ID()); err != nil {
			return nil, nil, err
		}
		nodes = append(nodes, n)
		if nd.Marked {
			markedNodes = append(markedNodes, n.ID())
		}
	}

	for i, ed := range doc.Edges {
		name := ed.Key
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		src, ok := syms.Node(ed.Source)
		if !ok {
			return nil, nil, fmt.Errorf("codec: edge %s: source %q: %w", name, ed.Source, ErrUnknownKey)
		}
		dst, ok := syms.Node(ed.Target)
		if !ok {
			return nil, nil, fmt.Errorf("codec: edge %s: target %q: %w", name, ed.Target, ErrUnknownKey)
		}
		e, err := core.NewEdge(src, dst, ed.Attrs)
		if err != nil {
			return nil, nil, fmt.Errorf("codec: edge %s: %w", name, err)
		}
		if ed.Key != "" {
			if _, dup := syms.Edge(ed.Key); dup {
				return nil, nil, fmt.Errorf("codec: edge %q: %w", ed.Key, ErrDuplicateKey)
			}
			if err = syms.BindEdge(ed.Key, e.ID()); err != nil {
				return nil, nil, err
			}
		}
		edges = append(edges, e)
		if ed.Marked {
			markedEdges = append(markedEdges, e.ID())
		}
	}

	g := core.NewGraph()
	if err := g.Add(nodes, edges); err != nil {
		return nil, nil, fmt.Errorf("codec: decode: %w", err)
	}
	if err := g.Mark(markedNodes, markedEdges); err != nil {
		return nil, nil, fmt.Errorf("codec: decode: %w", err)
	}

	return g, syms, nil
}

// Encode renders g as a Document, naming elements through syms (which may
// be nil). Elements are listed in identity order. An element with no key gets
// "n<id>"/"e<id>", suffixed "#2", "#3", ... while that name is already taken,
// so the document always decodes.
func Encode(g *core.Graph, syms *Symbols) Document {
	nodes, edges := g.Nodes(), g.Edges()

	nodeKeys := make(map[core.NodeID]string, len(nodes))
	taken := make(map[string]bool, len(nodes))
	var unbound []core.NodeID
	for _, n := range nodes {
		if k, ok := syms.boundNode(n.ID()); ok {
			nodeKeys[n.ID()] = k
			taken[k] = true
			continue
		}
		unbound = append(unbound, n.ID())
	}
	for _, id := range unbound {
		nodeKeys[id] = fresh(syms.NodeKey(id), taken)
	}

	edgeKeys := make(map[core.EdgeID]string, len(edges))
	taken = make(map[string]bool, len(edges))
	var loose []core.EdgeID
	for _, e := range edges {
		if k, ok := syms.boundEdge(e.ID()); ok {
			edgeKeys[e.ID()] = k
			taken[k] = true
			continue
		}
		loose = append(loose, e.ID())
	}
	for _, id := range loose {
		edgeKeys[id] = fresh(syms.EdgeKey(id), taken)
	}

	var doc Document
	for _, n := range nodes {
		doc.Nodes = append(doc.Nodes, NodeDoc{
			Key:    nodeKeys[n.ID()],
			Attrs:  plain(n.Attrs()),
			Marked: g.IsNodeMarked(n.ID()),
		})
	}
	for _, e := range edges {
		doc.Edges = append(doc.Edges, EdgeDoc{
			Key:    edgeKeys[e.ID()],
			Source: nodeKeys[e.Source()],
			Target: nodeKeys[e.Target()],
			Attrs:  plain(e.Attrs()),
			Marked: g.IsEdgeMarked(e.ID()),
		})
	}

	return doc
}

// fresh returns base, or base#k for the lowest k ≥ 2 not in taken, and takes it.
func fresh(base string, taken map[string]bool) string {
	key := base
	for k := 2; taken[key]; k++ {
		key = base + "#" + strconv.Itoa(k)
	}
	taken[key] = true

	return key
}

// plain turns attributes into a document map; empty becomes nil so it is omitted.
func plain(a core.Attrs) map[string]any {
	if len(a) == 0 {
		return nil
	}
	return map[string]any(a)
}
