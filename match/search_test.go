// SPDX-License-Identifier: MIT
// Package match_test verifies the enumeration contract: structure
// preservation, injectivity, determinism, limits, cancellation and the
// parallel collector.

package match_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/knob/builder"
	"github.com/katalvlaran/knob/core"
	"github.com/katalvlaran/knob/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// complete builds a graph with an edge between every ordered pair of distinct nodes.
func complete(w *world, k int) *core.Graph {
	ns := w.Ns(k)
	var elems []core.Element
	for i := range ns {
		elems = append(elems, ns[i])
		for j := range ns {
			if i != j {
				elems = append(elems, w.E(ns[i], ns[j], nil))
			}
		}
	}
	return w.G(elems...)
}

// path builds a pattern p0 -> p1 -> ... -> pk-1.
func path(w *world, k int) *core.Graph {
	ns := w.Ns(k)
	elems := []core.Element{ns[0]}
	for i := 1; i < k; i++ {
		elems = append(elems, w.E(ns[i-1], ns[i], nil))
	}
	return w.G(elems...)
}

// assertEmbedding checks every structural property of m.
func assertEmbedding(t *testing.T, pattern, target *core.Graph, m match.Mapping) {
	t.Helper()
	require.Len(t, m.Nodes, pattern.NodeCount())
	require.Len(t, m.Edges, pattern.EdgeCount())

	usedN := make(map[core.NodeID]bool)
	for _, pn := range pattern.Nodes() {
		tid, ok := m.TargetNode(pn.ID())
		require.True(t, ok)
		tn, err := target.Node(tid)
		require.NoError(t, err)
		assert.True(t, pn.Matches(tn))
		assert.False(t, usedN[tid], "node images are distinct")
		usedN[tid] = true
	}
	usedE := make(map[core.EdgeID]bool)
	for _, pe := range pattern.Edges() {
		tid, ok := m.TargetEdge(pe.ID())
		require.True(t, ok)
		te, err := target.Edge(tid)
		require.NoError(t, err)
		assert.True(t, pe.Matches(te))
		assert.Equal(t, m.Nodes[pe.Source()], te.Source(), "source preserved")
		assert.Equal(t, m.Nodes[pe.Target()], te.Target(), "target preserved")
		assert.False(t, usedE[tid], "edge images are distinct")
		usedE[tid] = true
	}
}

func collectSeq(pattern, target *core.Graph, opts ...match.Option) []match.Mapping {
	var out []match.Mapping
	for m := range match.DetailedMatch(pattern, target, opts...) {
		out = append(out, m)
	}
	return out
}

func TestDetailedMatch_EmptyPattern(t *testing.T) {
	w := newWorld(t)
	for _, target := range []*core.Graph{w.G(), complete(w, 3)} {
		ms := collectSeq(w.G(), target)
		require.Len(t, ms, 1)
		assert.Zero(t, ms[0].Len())
	}
	assert.Empty(t, collectSeq(w.G(w.N(nil)), w.G()))
	assert.Empty(t, collectSeq(w.G(w.N(nil)), nil), "nil target is empty")
}

func TestDetailedMatch_Rotations(t *testing.T) {
	w := newWorld(t)
	n := w.Ns(3)
	p := w.Ns(3)
	target := w.G(w.E(n[0], n[1], nil), w.E(n[1], n[2], nil), w.E(n[2], n[0], nil))
	pattern := w.G(w.E(p[0], p[1], nil), w.E(p[1], p[2], nil), w.E(p[2], p[0], nil))

	ms := collectSeq(pattern, target)
	require.Len(t, ms, 3, "one embedding per rotation")
	keys := make(map[match.Key]bool)
	for _, m := range ms {
		assert.Equal(t, 6, m.Len())
		assertEmbedding(t, pattern, target, m)
		keys[m.Key()] = true
	}
	assert.Len(t, keys, 3, "no duplicates")
}

func TestDetailedMatch_PathsInComplete(t *testing.T) {
	w := newWorld(t)
	target := complete(w, 4)
	pattern := path(w, 3)

	ms := collectSeq(pattern, target)
	require.Len(t, ms, 4*3*2, "ordered triples of distinct nodes")
	keys := make(map[match.Key]bool)
	for _, m := range ms {
		assertEmbedding(t, pattern, target, m)
		keys[m.Key()] = true
	}
	assert.Len(t, keys, len(ms))
}

func TestDetailedMatch_Injective(t *testing.T) {
	w := newWorld(t)
	one := w.G(w.N(nil))
	two := w.G(w.N(nil), w.N(nil))

	assert.Empty(t, collectSeq(two, one), "two pattern nodes cannot share one image")
	assert.Len(t, collectSeq(two, two), 2)
}

func TestDetailedMatch_AttributeMonotonicity(t *testing.T) {
	w := newWorld(t)
	target := w.G(
		w.N(attrs{"x": 1, "y": 1}),
		w.N(attrs{"x": 1, "y": 2}),
		w.N(attrs{"x": 2}),
	)
	patterns := []attrs{nil, {"x": 1}, {"x": 1, "y": 1}, {"x": 1, "y": 1, "z": 0}}
	counts := make([]int, len(patterns))
	for i, a := range patterns {
		c, err := match.Count(w.G(w.N(a)), target)
		require.NoError(t, err)
		counts[i] = c
	}
	assert.Equal(t, []int{3, 2, 1, 0}, counts, "adding pattern attributes never adds matches")
}

func TestDetailedMatch_Deterministic(t *testing.T) {
	w := newWorld(t)
	target := complete(w, 4)
	pattern := path(w, 3)

	assert.Equal(t, collectSeq(pattern, target), collectSeq(pattern, target))
}

func TestDetailedMatch_EarlyStop(t *testing.T) {
	w := newWorld(t)
	target := complete(w, 4)
	pattern := path(w, 2)

	got := 0
	for range match.DetailedMatch(pattern, target) {
		got++
		if got == 2 {
			break
		}
	}
	assert.Equal(t, 2, got)

	assert.Len(t, collectSeq(pattern, target, match.WithLimit(5)), 5)
	all := collectSeq(pattern, target)
	assert.Equal(t, all[:5], collectSeq(pattern, target, match.WithLimit(5)), "limit keeps the prefix")
}

func TestDetailedMatch_Snapshot(t *testing.T) {
	w := newWorld(t)
	target := complete(w, 3)
	pattern := path(w, 2)
	want := len(collectSeq(pattern, target))

	got := 0
	for m := range match.DetailedMatch(pattern, target) {
		if got == 0 {
			// Mutating the target mid-iteration does not disturb the search.
			target.Detach(m.TargetNodes()[0])
		}
		got++
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 2, target.NodeCount())
}

func TestMatch_ImagesCarryNoMarks(t *testing.T) {
	w := newWorld(t)
	a, b := w.N(nil), w.N(nil)
	ab := w.E(a, b, nil)
	target := w.G(ab)
	require.NoError(t, target.Mark([]core.NodeID{a.ID()}, []core.EdgeID{ab.ID()}))

	subs := 0
	for sub := range match.Match(w.G(w.E(w.N(nil), w.N(nil), nil)), target) {
		subs++
		assert.True(t, sub.HasEdge(ab.ID()))
		assert.Empty(t, sub.MarkedNodes())
		assert.Empty(t, sub.MarkedEdges())
	}
	assert.Equal(t, 1, subs)
}

func TestMatches(t *testing.T) {
	w := newWorld(t)
	target := complete(w, 3)

	assert.True(t, match.Matches(path(w, 3), target))
	assert.False(t, match.Matches(path(w, 4), target))
	assert.True(t, match.Matches(w.G(), w.G()))
}

func TestCollect_ParallelEqualsSequential(t *testing.T) {
	w := newWorld(t)
	target := complete(w, 5)
	pattern := path(w, 3)

	seq, err := match.Collect(pattern, target)
	require.NoError(t, err)
	par, err := match.Collect(pattern, target, match.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
	assert.Len(t, par, 5*4*3)

	seq, err = match.Collect(pattern, target, match.WithLimit(7))
	require.NoError(t, err)
	par, err = match.Collect(pattern, target, match.WithLimit(7), match.WithWorkers(3))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
	assert.Len(t, par, 7)
}

func TestCollect_Cancelled(t *testing.T) {
	w := newWorld(t)
	target := complete(w, 4)
	pattern := path(w, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := match.Collect(pattern, target, match.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	_, err = match.Collect(pattern, target, match.WithContext(ctx), match.WithWorkers(2))
	require.ErrorIs(t, err, context.Canceled)
	_, err = match.Count(pattern, target, match.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	assert.Empty(t, collectSeq(pattern, target, match.WithContext(ctx)))
}

func TestCollect_OnMatch(t *testing.T) {
	w := newWorld(t)
	target := complete(w, 4)
	pattern := path(w, 2)
	stop := errors.New("stop")

	for _, workers := range []int{1, 3} {
		seen := 0
		_, err := match.Collect(pattern, target, match.WithWorkers(workers), match.WithOnMatch(func(match.Mapping) error {
			seen++
			if seen == 3 {
				return stop
			}
			return nil
		}))
		require.ErrorIs(t, err, stop)
		assert.Equal(t, 3, seen)
	}

	var order []match.Key
	ms, err := match.Collect(pattern, target, match.WithWorkers(2), match.WithOnMatch(func(m match.Mapping) error {
		order = append(order, m.Key())
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, order, len(ms))
	for i, m := range ms {
		assert.Equal(t, m.Key(), order[i], "hook sees result order")
	}
}

func TestCount(t *testing.T) {
	w := newWorld(t)
	target := complete(w, 4)

	n, err := match.Count(path(w, 2), target)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = match.Count(path(w, 2), target, match.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestMapping_KeyString(t *testing.T) {
	m := match.Mapping{
		Nodes: map[core.NodeID]core.NodeID{2: 6, 1: 5},
		Edges: map[core.EdgeID]core.EdgeID{3: 7},
	}
	same := match.Mapping{
		Nodes: map[core.NodeID]core.NodeID{1: 5, 2: 6},
		Edges: map[core.EdgeID]core.EdgeID{3: 7},
	}
	other := match.Mapping{
		Nodes: map[core.NodeID]core.NodeID{1: 6, 2: 5},
		Edges: map[core.EdgeID]core.EdgeID{3: 7},
	}

	assert.Equal(t, "{n#1->n#5, n#2->n#6, e#3->e#7}", m.String())
	assert.Equal(t, m.Key(), same.Key())
	assert.NotEqual(t, m.Key(), other.Key())
	assert.Len(t, m.Key().String(), 64)
	assert.Equal(t, []core.NodeID{5, 6}, m.TargetNodes())
	assert.Equal(t, []core.EdgeID{7}, m.TargetEdges())
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, "{}", match.Mapping{}.String())
}

func TestMatch_BuiltFixtures(t *testing.T) {
	build := func(opts []builder.BuilderOption, con builder.Constructor) *core.Graph {
		g, _, err := builder.BuildGraph(opts, con)
		require.NoError(t, err)
		return g
	}

	// C4 into C4: one embedding per rotation.
	n, err := match.Count(build(nil, builder.Cycle(4)), build(nil, builder.Cycle(4)))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// A directed grid is acyclic.
	assert.False(t, match.Matches(build(nil, builder.Cycle(4)), build(nil, builder.Grid(3, 3))))

	// Wheel spokes make every rim node adjacent to the hub.
	n, err = match.Count(build(nil, builder.Star(2)), build(nil, builder.Wheel(6)))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}
