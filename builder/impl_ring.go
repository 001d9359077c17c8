// SPDX-License-Identifier: MIT
// Package: knob/builder
//
// impl_ring.go - Path(n) and Cycle(n).
//
// Contract:
//   • Nodes at indices 0..n-1, created in ascending order.
//   • Path emits i → i+1 for i=0..n-2; Cycle also closes n-1 → 0.
//   • Cycle(1) is a single self-loop, Cycle(2) a pair of opposite edges.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import "fmt"

const (
	methodPath   = "Path"
	methodCycle  = "Cycle"
	minPathNodes = 1
	minCycleNode = 1
)

// Path returns a Constructor that builds the directed path P_n.
func Path(n int) Constructor {
	return func(b *build, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := b.nodes(cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := 0; i+1 < n; i++ {
			if err = b.edge(cfg, ids[i], ids[i+1], i, i+1); err != nil {
				return fmt.Errorf("%s: edge %d→%d: %w", methodPath, i, i+1, err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the directed cycle C_n.
func Cycle(n int) Constructor {
	return func(b *build, cfg builderConfig) error {
		if n < minCycleNode {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNode, ErrTooFewVertices)
		}
		ids, err := b.nodes(cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if err = b.edge(cfg, ids[i], ids[j], i, j); err != nil {
				return fmt.Errorf("%s: edge %d→%d: %w", methodCycle, i, j, err)
			}
		}

		return nil
	}
}
