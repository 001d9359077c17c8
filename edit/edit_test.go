// SPDX-License-Identifier: MIT
// Package edit_test verifies Graft and Prune.

package edit_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/knob/core"
	"github.com/katalvlaran/knob/edit"
	"github.com/katalvlaran/knob/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraft_Empty(t *testing.T) {
	w := newWorld(t)

	got, err := edit.Graft(w.G(), w.G())
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())

	g := w.G(w.E(w.N(attrs{"x": 1}), w.N(attrs{"x": 2}), nil))
	got, err = edit.Graft(g, w.G())
	require.NoError(t, err)
	assert.True(t, got.Equal(g), "empty donor changes nothing")
	assert.NotSame(t, g, got)
}

func TestGraft_Mismatch(t *testing.T) {
	w := newWorld(t)
	e := w.E(w.N(attrs{"x": 1}), w.N(attrs{"x": 2}), nil)

	_, err := edit.Graft(w.G(), w.GM(els(e), e))
	require.ErrorIs(t, err, edit.ErrMismatch)

	_, err = edit.Graft(nil, w.G())
	require.ErrorIs(t, err, edit.ErrGraphNil)
}

func TestGraft_NodeToNull(t *testing.T) {
	w := newWorld(t)
	n := w.N(nil)

	got, err := edit.Graft(w.G(), w.GM(els(n), n))
	require.NoError(t, err)
	assert.True(t, got.Equal(w.G(n)))
}

func TestGraft_NodeToNonNull(t *testing.T) {
	w := newWorld(t)
	n1, n2 := w.N(nil), w.N(nil)

	got, err := edit.Graft(w.G(n1), w.GM(els(n2), n2))
	require.NoError(t, err)
	assert.True(t, got.Equal(w.G(n1, n2)))
}

func TestGraft_EdgeToNull(t *testing.T) {
	w := newWorld(t)
	src, dst := w.N(nil), w.N(nil)
	e := w.E(src, dst, nil)

	for _, marked := range [][]core.Element{nil, els(e), els(e, src), els(e, dst)} {
		_, err := edit.Graft(w.G(), w.GM(marked, e))
		require.ErrorIs(t, err, edit.ErrMismatch, "marked %v", marked)
	}

	got, err := edit.Graft(w.G(), w.GM(els(e, src, dst), e))
	require.NoError(t, err)
	assert.True(t, got.Equal(w.G(e)))
}

func TestGraft_EdgeToNonNull(t *testing.T) {
	w := newWorld(t)
	n1, n2, n3 := w.N(attrs{"x": 1}), w.N(attrs{"x": 2}), w.N(attrs{"x": 3})
	e12, e13, e23 := w.E(n1, n2, nil), w.E(n1, n3, nil), w.E(n2, n3, nil)

	_, err := edit.Graft(w.G(n1, n2), w.G(e12))
	require.ErrorIs(t, err, edit.ErrMismatch, "unmarked edge must already exist")

	got, err := edit.Graft(w.G(n1, n2), w.GM(els(e12), e12))
	require.NoError(t, err)
	assert.True(t, match.Matches(got, w.G(e12)))
	assert.False(t, got.HasEdge(e12.ID()), "external edges get fresh identities")

	_, err = edit.Graft(w.G(n1, n2), w.GM(els(e13), e13))
	require.ErrorIs(t, err, edit.ErrMismatch, "n3 is context and absent from host")

	got, err = edit.Graft(w.G(n1, n2), w.GM(els(e13, n3), e13))
	require.NoError(t, err)
	assert.True(t, match.Matches(got, w.G(e13, n2)))
	assert.True(t, got.HasNode(n3.ID()), "marked nodes keep their identity")

	cases := []struct {
		name   string
		host   *core.Graph
		marked []core.Element
	}{
		{"triangle onto one node", w.G(n1), els(e12, e13, e23, n2, n3)},
		{"triangle onto two nodes", w.G(n1, n2), els(e12, e13, e23, n3)},
		{"triangle onto three nodes", w.G(n1, n2, n3), els(e12, e13, e23)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := edit.Graft(tc.host, w.GM(tc.marked, e12, e13, e23))
			require.NoError(t, err)
			assert.True(t, match.Matches(got, w.G(e12, e13, e23)))
			assert.Equal(t, 3, got.NodeCount())
			assert.Equal(t, 3, got.EdgeCount())
		})
	}
}

func TestGraft_Topographic(t *testing.T) {
	w := newWorld(t)
	var n [2][3]core.Node
	for loop := range n {
		for node := range n[loop] {
			n[loop][node] = w.N(attrs{"loop": loop, "node": node})
		}
	}
	elems := []core.Element{
		w.E(n[0][0], n[0][1], nil), w.E(n[0][1], n[0][2], nil), w.E(n[0][2], n[0][0], nil),
		w.E(n[1][0], n[1][1], nil), w.E(n[1][1], n[1][2], nil), w.E(n[1][2], n[1][0], nil),
		w.E(n[0][0], n[1][0], nil),
	}
	g := w.G(elems...)
	newEdges := els(w.E(n[0][1], n[1][1], nil), w.E(n[0][2], n[1][2], nil))
	gp := w.GM(newEdges, append(elems, newEdges...)...)

	got, err := edit.Graft(g, gp)
	require.NoError(t, err)
	assert.True(t, match.Matches(gp, got))
	assert.Equal(t, 9, got.EdgeCount())
	assert.Equal(t, 7, g.EdgeCount(), "host is untouched")
}

func TestGraft_Policy(t *testing.T) {
	w := newWorld(t)
	a, b := w.N(attrs{"x": 1}), w.N(attrs{"x": 1})
	host := w.G(a, b)
	require.NoError(t, host.Mark([]core.NodeID{a.ID()}, nil))

	anchor, leaf := w.N(attrs{"x": 1}), w.N(attrs{"leaf": true})
	link := w.E(anchor, leaf, nil)
	donor := w.GM(els(leaf, link), link)

	all, err := edit.Graft(host, donor)
	require.NoError(t, err)
	assert.Equal(t, 3, all.NodeCount())
	assert.Equal(t, 2, all.EdgeCount(), "one attachment per embedding")
	assert.Len(t, all.IncidentEdges(leaf.ID()), 2)

	first, err := edit.Graft(host, donor, edit.WithPolicy(edit.FirstOnly))
	require.NoError(t, err)
	require.Equal(t, 1, first.EdgeCount())
	e := first.Edges()[0]
	assert.Equal(t, a.ID(), e.Source(), "first embedding anchors on the lowest identity")
	assert.Equal(t, leaf.ID(), e.Target())

	// Host marks survive, added material is unmarked.
	assert.Equal(t, []core.NodeID{a.ID()}, first.MarkedNodes())
	assert.Empty(t, first.MarkedEdges())
	assert.Equal(t, 2, host.NodeCount())
}

func TestGraft_Twice(t *testing.T) {
	w := newWorld(t)
	a := w.N(attrs{"x": 1})
	host := w.G(a)

	anchor, leaf := w.N(attrs{"x": 1}), w.N(attrs{"leaf": true})
	link := w.E(anchor, leaf, nil)
	donor := w.GM(els(leaf, link), link)

	once, err := edit.Graft(host, donor)
	require.NoError(t, err)
	assert.Equal(t, 2, once.NodeCount())
	assert.Equal(t, 1, once.EdgeCount())

	// The marked node keeps its identity: it is already there, only the
	// external edge is attached again.
	twice, err := edit.Graft(once, donor)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{a.ID(), leaf.ID()}, twice.NodeIDs())
	require.Equal(t, 2, twice.EdgeCount())
	for _, e := range twice.Edges() {
		assert.Equal(t, a.ID(), e.Source())
		assert.Equal(t, leaf.ID(), e.Target())
	}
}

func TestGraft_RoundTrip(t *testing.T) {
	w := newWorld(t)
	h1, h2 := w.N(attrs{"h": 1}), w.N(attrs{"h": 2})
	host := w.G(w.E(h1, h2, nil))

	s1, s2 := w.N(attrs{"s": 1}), w.N(attrs{"s": 2})
	se := w.E(s1, s2, attrs{"s": true})
	donor := w.GM(els(s1, s2, se), se)

	got, err := edit.Graft(host, donor)
	require.NoError(t, err)
	assert.True(t, got.Equal(host.Union(w.G(se))), "H ∪ marked")

	pruned, err := edit.Prune(got, donor)
	require.NoError(t, err)
	assert.True(t, pruned.Equal(host), "pruning the grafted subgraph restores the host")
}

func TestPrune_Empty(t *testing.T) {
	w := newWorld(t)

	got, err := edit.Prune(w.G(), w.G())
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())

	g := w.G(w.E(w.N(attrs{"x": 1}), w.N(attrs{"x": 2}), nil))
	got, err = edit.Prune(g, w.G())
	require.NoError(t, err)
	assert.True(t, got.Equal(g))
}

func TestPrune_Mismatch(t *testing.T) {
	w := newWorld(t)
	e := w.E(w.N(attrs{"x": 1}), w.N(attrs{"x": 2}), nil)

	_, err := edit.Prune(w.G(), w.GM(els(e), e))
	require.ErrorIs(t, err, edit.ErrMismatch)
	_, err = edit.Prune(w.G(), nil)
	require.ErrorIs(t, err, edit.ErrGraphNil)
}

func TestPrune_NodeCascades(t *testing.T) {
	w := newWorld(t)
	a, b, c := w.N(attrs{"k": "a"}), w.N(attrs{"k": "b"}), w.N(attrs{"k": "c"})
	host := w.G(w.E(a, b, nil), w.E(b, c, nil))

	p := w.N(attrs{"k": "b"})
	got, err := edit.Prune(host, w.GM(els(p), p))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{a.ID(), c.ID()}, got.NodeIDs())
	assert.Zero(t, got.EdgeCount())
	assert.Equal(t, 3, host.NodeCount(), "host is untouched")
}

func TestPrune_EdgeOnly(t *testing.T) {
	w := newWorld(t)
	a, b := w.N(attrs{"x": 1}), w.N(attrs{"x": 2})
	ab := w.E(a, b, attrs{"y": 1})
	ba := w.E(b, a, nil)
	host := w.G(ab, ba)

	pe := w.E(w.N(attrs{"x": 1}), w.N(attrs{"x": 2}), attrs{"y": 1})
	got, err := edit.Prune(host, w.GM(els(pe), pe))
	require.NoError(t, err)
	assert.Equal(t, 2, got.NodeCount())
	assert.Equal(t, []core.EdgeID{ba.ID()}, got.EdgeIDs())
}

func TestPrune_Cumulative(t *testing.T) {
	w := newWorld(t)
	a, b, c := w.N(attrs{"t": 1}), w.N(attrs{"t": 1}), w.N(attrs{"t": 2})
	host := w.G(a, b, c)
	p := w.N(attrs{"t": 1})
	donor := w.GM(els(p), p)

	all, err := edit.Prune(host, donor)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{c.ID()}, all.NodeIDs())

	first, err := edit.Prune(host, donor, edit.WithPolicy(edit.FirstOnly))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{b.ID(), c.ID()}, first.NodeIDs())
}

func TestEdit_Cancelled(t *testing.T) {
	w := newWorld(t)
	n := w.N(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := edit.Graft(w.G(n), w.GM(els(n), n), edit.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	_, err = edit.Prune(w.G(n), w.G(n), edit.WithContext(ctx), edit.WithWorkers(2))
	require.ErrorIs(t, err, context.Canceled)
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "union-all", edit.UnionAll.String())
	assert.Equal(t, "first-only", edit.FirstOnly.String())
}
