// SPDX-License-Identifier: MIT

// Package match enumerates embeddings of a pattern graph into a target graph.
//
// An embedding (Mapping) sends every pattern node to a distinct target node
// and every pattern edge to a distinct target edge such that:
//
//   - each pattern element matches its image (attribute-subset containment,
//     see core.Node.Matches / core.Edge.Matches);
//   - a pattern edge s→d is sent to a target edge image(s)→image(d), so edge
//     direction and self-loops are preserved;
//   - no two pattern elements share an image.
//
// Search:
//
//	The search maps one weakly connected piece of the pattern at a time. It
//	picks the lowest unmapped pattern node, tries every compatible free target
//	node, then walks the pattern edges around each freshly mapped node,
//	extending the mapping along target edges of the same direction. It runs
//	on an explicit stack, so deep patterns never grow the goroutine stack.
//
//	Both graphs are snapshotted before the search starts; concurrent
//	mutation of the inputs never affects a running enumeration.
//
// Determinism:
//
//	Results come in a fixed order for fixed inputs: candidates are tried in
//	ascending identity order. Collect with WithWorkers returns the same
//	sequence as a sequential run.
//
// Edge cases:
//
//   - An empty pattern has exactly one embedding, the empty Mapping.
//   - A non-empty pattern has no embedding into an empty target.
//   - A Mapping is emitted at most once (keyed by a BLAKE3 digest of its
//     canonical form).
//
// API:
//
//	DetailedMatch(pattern, target, opts...) iter.Seq[Mapping]   // lazy
//	Match(pattern, target, opts...) iter.Seq[*core.Graph]      // image subgraphs
//	Matches(pattern, target, opts...) bool                     // first hit only
//	Collect(pattern, target, opts...) ([]Mapping, error)       // eager, parallel-capable
//	Count(pattern, target, opts...) (int, error)
package match
