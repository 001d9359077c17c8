// SPDX-License-Identifier: MIT
//
// File: match.go
// Role: Public entry points over the search: lazy sequences and eager collectors.

package match

import (
	"iter"

	"github.com/katalvlaran/knob/core"
)

// DetailedMatch returns every embedding of pattern into target, lazily.
// Both graphs are snapshotted when iteration starts. Breaking out of the
// loop stops the search. A cancelled context ends the sequence early; use
// Collect to observe the context error.
func DetailedMatch(pattern, target *core.Graph, opts ...Option) iter.Seq[Mapping] {
	o := buildOptions(opts)

	return func(yield func(Mapping) bool) {
		s := newSearcher(newIndex(pattern), newIndex(target))
		_ = s.run(o.Ctx, o.Limit, yield)
	}
}

// Match returns, for every embedding, the subgraph of target made of exactly
// the mapped nodes and edges. The subgraphs carry no marks.
func Match(pattern, target *core.Graph, opts ...Option) iter.Seq[*core.Graph] {
	o := buildOptions(opts)

	return func(yield func(*core.Graph) bool) {
		tgt := newIndex(target)
		s := newSearcher(newIndex(pattern), tgt)
		_ = s.run(o.Ctx, o.Limit, func(m Mapping) bool {
			sub, err := tgt.graph.Subgraph(m.TargetNodes(), m.TargetEdges())
			if err != nil {
				// Images of mapped edges always have mapped endpoints.
				return false
			}
			return yield(sub)
		})
	}
}

// Matches reports whether pattern has at least one embedding into target.
// The search stops at the first one.
func Matches(pattern, target *core.Graph, opts ...Option) bool {
	o := buildOptions(opts)
	found := false
	s := newSearcher(newIndex(pattern), newIndex(target))
	_ = s.run(o.Ctx, 1, func(Mapping) bool {
		found = true
		return false
	})

	return found
}

// Collect returns every embedding of pattern into target in enumeration order.
//
// With WithWorkers(n > 1) the candidates of the first pattern node are
// explored concurrently; the result is identical to the sequential one.
// The OnMatch hook, if any, sees the mappings in result order.
//
// Errors: the context error when cancelled, or the hook's error.
func Collect(pattern, target *core.Graph, opts ...Option) ([]Mapping, error) {
	o := buildOptions(opts)
	pat, tgt := newIndex(pattern), newIndex(target)
	if o.Workers > 1 && len(pat.nodes) > 0 {
		return collectParallel(o, pat, tgt)
	}

	var (
		out     []Mapping
		hookErr error
	)
	err := newSearcher(pat, tgt).run(o.Ctx, o.Limit, func(m Mapping) bool {
		if o.OnMatch != nil {
			if hookErr = o.OnMatch(m); hookErr != nil {
				return false
			}
		}
		out = append(out, m)
		return true
	})
	if hookErr != nil {
		return nil, hookErr
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Count returns the number of embeddings. Options apply as for Collect.
func Count(pattern, target *core.Graph, opts ...Option) (int, error) {
	ms, err := Collect(pattern, target, opts...)
	if err != nil {
		return 0, err
	}

	return len(ms), nil
}
