// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/knob/core"
)

// BenchmarkAdd measures appending a node plus one edge per iteration.
func BenchmarkAdd(b *testing.B) {
	root := core.MustNode(nil)
	g := core.NewGraph()
	_ = g.AddNode(root)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		leaf := core.MustNode(nil)
		_ = g.Add([]core.Node{leaf}, []core.Edge{core.MustEdge(root.ID(), leaf.ID(), nil)})
	}
}

// BenchmarkClone measures copy-on-write cloning of a mid-size graph.
func BenchmarkClone(b *testing.B) {
	g := core.NewGraph()
	prev := core.MustNode(nil)
	_ = g.AddNode(prev)
	for i := 0; i < 1000; i++ {
		n := core.MustNode(nil)
		_ = g.Add([]core.Node{n}, []core.Edge{core.MustEdge(prev.ID(), n.ID(), nil)})
		prev = n
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
