// SPDX-License-Identifier: MIT
// Package: knob/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   • Node keys are "r,c" regardless of the key scheme; the attribute
//     index of cell (r,c) is r*cols+c.
//   • Edges point right then down, cells visited row-major.
//
// Complexity: O(R·C) nodes + O(2·R·C) edges.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(b *build, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if _, err := b.node(id(r, c), cfg.nodeAttrs(r*cols+c)); err != nil {
					return fmt.Errorf("%s: %w", methodGrid, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u, _ := b.syms.Node(id(r, c))
				if c+1 < cols {
					v, _ := b.syms.Node(id(r, c+1))
					if err := b.edge(cfg, u, v, r*cols+c, r*cols+c+1); err != nil {
						return fmt.Errorf("%s: edge %s→%s: %w", methodGrid, id(r, c), id(r, c+1), err)
					}
				}
				if r+1 < rows {
					v, _ := b.syms.Node(id(r+1, c))
					if err := b.edge(cfg, u, v, r*cols+c, (r+1)*cols+c); err != nil {
						return fmt.Errorf("%s: edge %s→%s: %w", methodGrid, id(r, c), id(r+1, c), err)
					}
				}
			}
		}

		return nil
	}
}
