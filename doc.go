// SPDX-License-Identifier: MIT

// Package knob is your in-memory toolkit for matching small pattern graphs
// against larger directed multigraphs and rewriting graphs with patterns.
//
// What is knob?
//
//	A thread-safe graph library that brings together:
//		• Core primitives: identity-bearing nodes & edges, marks, set algebra
//		• Matching: lazy, deterministic enumeration of pattern embeddings
//		• Editing: graft (add marked material) and prune (remove it)
//		• Components: weakly connected components on gonum
//		• Documents: YAML, JSON and MessagePack graph files
//
// Everything is organized under six subpackages and one command:
//
//	core/      - Graph, Node, Edge, Attrs, marks and set algebra
//	match/     - DetailedMatch, Match, Matches, Collect, Count
//	edit/      - Graft and Prune driven by a donor's marked elements
//	component/ - Split, Count, IsConnected, Of
//	codec/     - document model, key symbols and file I/O
//	builder/   - deterministic fixture graphs (path, cycle, star, grid, ...)
//	cmd/knob   - CLI: match, graft, prune, inspect, gen
//
// Quick ASCII example:
//
//	pattern      target
//	 x ─▶ y      a ─▶ b ─▶ c
//
//	has two embeddings: {x→a, y→b} and {x→b, y→c}.
//
//	go get github.com/katalvlaran/knob
package knob
