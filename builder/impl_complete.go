// SPDX-License-Identifier: MIT
// Package: knob/builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   • Emits i → j for every i < j, in (i, j) lexicographic order.
//   • With WithSymmetric every ordered pair is connected.
//
// Complexity: O(n) nodes + O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(b *build, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := b.nodes(cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = b.edge(cfg, ids[i], ids[j], i, j); err != nil {
					return fmt.Errorf("%s: edge %d→%d: %w", methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}
