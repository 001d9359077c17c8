// SPDX-License-Identifier: MIT

// Package main provides the knob CLI: pattern matching and pattern-driven
// editing over graph documents.
//
// Usage:
//
//	knob [flags] <command> [args]
//
// Commands:
//
//	match    - enumerate embeddings of a pattern into a target
//	graft    - add a donor's marked elements where its context matches
//	prune    - remove a donor's marked elements wherever it matches
//	inspect  - print counts, components and the compact form of a graph
//	gen      - generate fixture graphs (path, cycle, star, wheel, complete, grid, random)
//
// Graph files are YAML, JSON or MessagePack documents; the format follows
// the file extension.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/knob/cmd/knob/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
