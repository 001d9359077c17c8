// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: Explicit-stack backtracking over partial mappings.
//
// A search state is a partial mapping plus a continuation: a linked stack of
// frames saying what to extend next.
//
//	subgraphs          map the lowest unmapped pattern node onto every free,
//	                   compatible target node; each child continues with
//	                   components(p,t) on top of subgraphs. Over a total
//	                   mapping it emits.
//	components(p,t)    map the lowest unmapped pattern edge around p onto every
//	                   free target edge around t with the same direction and
//	                   a consistent far endpoint. A newly reached pair (pa,ta)
//	                   pushes components(pa,ta). With no unmapped edge left
//	                   around p the frame pops.
//
// Children are pushed in reverse so the lowest candidate is explored first.

package match

import (
	"context"
	"slices"

	"github.com/katalvlaran/knob/core"
)

// checkEvery is the number of search steps between context checks, minus one.
const checkEvery = 0xff

type frameKind uint8

const (
	frameSubgraphs frameKind = iota
	frameComponents
)

// frame is an immutable continuation cell shared between sibling states.
type frame struct {
	kind frameKind
	p, t int // node positions for frameComponents
	next *frame
}

// state is one partial mapping, owned by the stack slot holding it.
type state struct {
	nodeMap   []int // pattern node position → target node position, -1 when unmapped
	edgeMap   []int // pattern edge position → target edge position, -1 when unmapped
	usedNodes []bool
	usedEdges []bool
	cont      *frame
}

func (st *state) child(cont *frame) *state {
	return &state{
		nodeMap:   slices.Clone(st.nodeMap),
		edgeMap:   slices.Clone(st.edgeMap),
		usedNodes: slices.Clone(st.usedNodes),
		usedEdges: slices.Clone(st.usedEdges),
		cont:      cont,
	}
}

func (st *state) mapNode(p, t int) {
	st.nodeMap[p] = t
	st.usedNodes[t] = true
}

func (st *state) mapEdge(p, t int) {
	st.edgeMap[p] = t
	st.usedEdges[t] = true
}

// searcher owns the stack and the set of already emitted mappings.
type searcher struct {
	pat, tgt *index
	stack    []*state
	seen     map[Key]struct{}
	steps    uint
}

func newSearcher(pat, tgt *index) *searcher {
	root := &state{
		nodeMap:   filled(len(pat.nodes)),
		edgeMap:   filled(len(pat.edges)),
		usedNodes: make([]bool, len(tgt.nodes)),
		usedEdges: make([]bool, len(tgt.edges)),
		cont:      &frame{kind: frameSubgraphs},
	}

	return &searcher{
		pat:   pat,
		tgt:   tgt,
		stack: []*state{root},
		seen:  make(map[Key]struct{}),
	}
}

// newSeededSearcher starts from the branch where pattern node position 0 is
// mapped onto target node position t. Requires a non-empty pattern.
func newSeededSearcher(pat, tgt *index, t int) *searcher {
	s := newSearcher(pat, tgt)
	root := s.stack[0]
	seeded := root.child(&frame{kind: frameComponents, p: 0, t: t, next: root.cont})
	seeded.mapNode(0, t)
	s.stack[0] = seeded

	return s
}

// seeds returns the target node positions compatible with pattern node position 0.
func seeds(pat, tgt *index) []int {
	var out []int
	for t, n := range tgt.nodes {
		if pat.nodes[0].Matches(n) {
			out = append(out, t)
		}
	}

	return out
}

func filled(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = -1
	}

	return out
}

// run feeds mappings to yield until the search is exhausted, yield returns
// false, limit mappings were produced (limit > 0) or ctx is done.
func (s *searcher) run(ctx context.Context, limit int, yield func(Mapping) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	produced := 0
	for limit <= 0 || produced < limit {
		m, ok, err := s.next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		produced++
		if !yield(m) {
			return nil
		}
	}

	return nil
}

// next advances the search to the following unseen mapping.
func (s *searcher) next(ctx context.Context) (Mapping, bool, error) {
	for len(s.stack) > 0 {
		s.steps++
		if s.steps&checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Mapping{}, false, err
			}
		}

		st := s.stack[len(s.stack)-1]
		s.stack[len(s.stack)-1] = nil
		s.stack = s.stack[:len(s.stack)-1]

		switch st.cont.kind {
		case frameSubgraphs:
			if !s.expandSubgraphs(st) {
				continue
			}
			m := s.mapping(st)
			key := m.Key()
			if _, dup := s.seen[key]; dup {
				continue
			}
			s.seen[key] = struct{}{}
			return m, true, nil
		case frameComponents:
			s.expandComponents(st)
		}
	}

	return Mapping{}, false, nil
}

// expandSubgraphs pushes one child per candidate of the lowest unmapped
// pattern node and reports whether st is already total.
func (s *searcher) expandSubgraphs(st *state) (total bool) {
	p := slices.Index(st.nodeMap, -1)
	if p < 0 {
		return true
	}
	pn := s.pat.nodes[p]
	for t := len(s.tgt.nodes) - 1; t >= 0; t-- {
		if st.usedNodes[t] || !pn.Matches(s.tgt.nodes[t]) {
			continue
		}
		c := st.child(&frame{kind: frameComponents, p: p, t: t, next: st.cont})
		c.mapNode(p, t)
		s.stack = append(s.stack, c)
	}

	return false
}

// expandComponents extends st along the lowest unmapped pattern edge around
// the frame's node pair, or pops the frame when none is left.
func (s *searcher) expandComponents(st *state) {
	f := st.cont
	pe := -1
	for _, e := range s.pat.incident[f.p] {
		if st.edgeMap[e] < 0 {
			pe = e
			break
		}
	}
	if pe < 0 {
		// st is not shared once popped, so the frame can be dropped in place.
		st.cont = f.next
		s.stack = append(s.stack, st)
		return
	}

	pa, pIncoming := s.pat.adjacent(pe, f.p)
	pEdge := s.pat.edges[pe]
	cands := s.tgt.incident[f.t]
	for i := len(cands) - 1; i >= 0; i-- {
		te := cands[i]
		if st.usedEdges[te] || !pEdge.Matches(s.tgt.edges[te]) {
			continue
		}
		ta, tIncoming := s.tgt.adjacent(te, f.t)
		if pIncoming != tIncoming {
			continue
		}
		// A self-loop must meet a self-loop.
		if (pa == f.p) != (ta == f.t) {
			continue
		}

		if mapped := st.nodeMap[pa]; mapped >= 0 {
			if mapped != ta {
				continue
			}
			c := st.child(f)
			c.mapEdge(pe, te)
			s.stack = append(s.stack, c)
			continue
		}

		if st.usedNodes[ta] || !s.pat.nodes[pa].Matches(s.tgt.nodes[ta]) {
			continue
		}
		c := st.child(&frame{kind: frameComponents, p: pa, t: ta, next: f})
		c.mapEdge(pe, te)
		c.mapNode(pa, ta)
		s.stack = append(s.stack, c)
	}
}

// mapping converts a total state into identities.
func (s *searcher) mapping(st *state) Mapping {
	m := Mapping{
		Nodes: make(map[core.NodeID]core.NodeID, len(st.nodeMap)),
		Edges: make(map[core.EdgeID]core.EdgeID, len(st.edgeMap)),
	}
	for p, t := range st.nodeMap {
		m.Nodes[s.pat.nodes[p].ID()] = s.tgt.nodes[t].ID()
	}
	for p, t := range st.edgeMap {
		m.Edges[s.pat.edges[p].ID()] = s.tgt.edges[t].ID()
	}

	return m
}
