// SPDX-License-Identifier: MIT

// Package builder provides functional-options style constructors for
// deterministic graph fixtures: paths, cycles, stars, wheels, complete
// graphs, grids and random sparse graphs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates the graph and runs constructors in order.
//     – Constructor:       one topology applied to the graph under construction.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, key scheme, attribute functions.
//   - Node-key schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//
// Guarantees:
//
//   - Nodes are addressed by key: constructors composed in one BuildGraph
//     call share every node whose key they both produce.
//   - Edges get keys "<src>><dst>" ("<src>><dst>#k" for the k-th parallel edge).
//   - Same inputs, options, seed and constructor order ⇒ identical documents.
//   - Fast-fail on meaningless option parameters via panics in option constructors;
//     constructors themselves return sentinel errors.
//
// Node and edge identities are fresh on every build; the returned
// codec.Symbols name them.
package builder
