// SPDX-License-Identifier: MIT
//
// File: edit.go
// Role: Graft and Prune.

package edit

import (
	"fmt"

	"github.com/katalvlaran/knob/core"
	"github.com/katalvlaran/knob/match"
)

// embeddings runs the matcher under o and fails with ErrMismatch when nothing matches.
func embeddings(op string, pattern, host *core.Graph, o Options) ([]match.Mapping, error) {
	mopts := []match.Option{match.WithContext(o.Ctx), match.WithWorkers(o.Workers)}
	if o.Policy == FirstOnly {
		mopts = append(mopts, match.WithLimit(1))
	}
	ms, err := match.Collect(pattern, host, mopts...)
	if err != nil {
		return nil, fmt.Errorf("edit: %s: %w", op, err)
	}
	if len(ms) == 0 {
		return nil, fmt.Errorf("edit: %s: %w", op, ErrMismatch)
	}

	return ms, nil
}

// Graft returns host extended with the marked part of donor, attached
// wherever donor's unmarked context matches host. The host's marks are kept;
// the added elements are not marked.
//
// Marked donor nodes and internal marked edges keep their identities, so
// material the host already holds is not added again; grafting the same
// donor twice only adds a second copy of each external edge.
//
// Errors: ErrGraphNil, ErrMismatch when the context does not embed into host, the
// context error when cancelled, core.ErrInvariantViolation when the result
// would be inconsistent.
func Graft(host, donor *core.Graph, opts ...Option) (*core.Graph, error) {
	if host == nil || donor == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)
	d := donor.Clone()

	// 1) Split the donor into context and material.
	markedNodes := d.MarkedNodes()
	markedEdges := d.MarkedEdges()
	isMarked := make(map[core.NodeID]bool, len(markedNodes))
	for _, nid := range markedNodes {
		isMarked[nid] = true
	}

	pattern := d.Clone()
	if err := pattern.Remove(nil, markedEdges); err != nil {
		return nil, fmt.Errorf("edit: graft: %w", err)
	}
	pattern.Detach(markedNodes...)

	nodes := make([]core.Node, 0, len(markedNodes))
	for _, nid := range markedNodes {
		n, err := d.Node(nid)
		if err != nil {
			return nil, fmt.Errorf("edit: graft: %w", err)
		}
		nodes = append(nodes, n)
	}
	var internal, external []core.Edge
	for _, eid := range markedEdges {
		e, err := d.Edge(eid)
		if err != nil {
			return nil, fmt.Errorf("edit: graft: %w", err)
		}
		if isMarked[e.Source()] && isMarked[e.Target()] {
			internal = append(internal, e)
		} else {
			external = append(external, e)
		}
	}

	// 2) Anchor the context.
	ms, err := embeddings("graft", pattern, host, o)
	if err != nil {
		return nil, err
	}

	// 3) Rewrite external edges through every applied embedding.
	edges := internal
	for _, m := range ms {
		for _, e := range external {
			src, dst := e.Source(), e.Target()
			if !isMarked[src] {
				src = m.Nodes[src]
			}
			if !isMarked[dst] {
				dst = m.Nodes[dst]
			}
			ne, err := core.NewEdge(src, dst, e.Attrs())
			if err != nil {
				return nil, fmt.Errorf("edit: graft: %w", err)
			}
			edges = append(edges, ne)
		}
	}

	out := host.Clone()
	if err = out.Add(nodes, edges); err != nil {
		return nil, fmt.Errorf("edit: graft: %w", err)
	}

	return out, nil
}

// Prune returns host without the images of donor's marked elements, for
// every embedding of donor into host. Embeddings are computed against the
// unmodified host; removals accumulate.
//
// Errors: ErrGraphNil, ErrMismatch when donor does not embed into host, the context
// error when cancelled.
func Prune(host, donor *core.Graph, opts ...Option) (*core.Graph, error) {
	if host == nil || donor == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)
	d := donor.Clone()

	ms, err := embeddings("prune", d, host, o)
	if err != nil {
		return nil, err
	}

	markedNodes := d.MarkedNodes()
	markedEdges := d.MarkedEdges()
	out := host.Clone()
	for _, m := range ms {
		edges := make([]core.EdgeID, 0, len(markedEdges))
		for _, eid := range markedEdges {
			edges = append(edges, m.Edges[eid])
		}
		// Edge-only removal never dangles.
		if err = out.Remove(nil, edges); err != nil {
			return nil, fmt.Errorf("edit: prune: %w", err)
		}
		nodes := make([]core.NodeID, 0, len(markedNodes))
		for _, nid := range markedNodes {
			nodes = append(nodes, m.Nodes[nid])
		}
		out.Detach(nodes...)
	}

	return out, nil
}
