// SPDX-License-Identifier: MIT
// Package: knob/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi style directed graph.
//
// Contract:
//   • n ≥ 1, p ∈ [0,1].
//   • Ordered pairs (i, j), i ≠ j (i = j too under WithLoops), are visited
//     i-major then j ascending; each becomes an edge with probability p.
//   • p = 0 and p = 1 need no RNG; otherwise WithSeed/WithRand is required.
//   • WithSymmetric is ignored: both directions are drawn independently.
//
// Complexity: O(n²) draws.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that includes each ordered pair with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *build, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := b.nodes(cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		once := cfg
		once.symmetric = false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				var take bool
				switch {
				case p == probMax:
					take = true
				case p == probMin:
					take = false
				default:
					take = rng.Float64() < p
				}
				if !take {
					continue
				}
				if err = b.edge(once, ids[i], ids[j], i, j); err != nil {
					return fmt.Errorf("%s: edge %d→%d: %w", methodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}
