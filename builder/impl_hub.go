// SPDX-License-Identifier: MIT
// Package: knob/builder
//
// impl_hub.go - Star(n) and Wheel(n).
//
// Contract:
//   • The hub has the fixed key "Center"; its attribute index is -1.
//   • Star: leaves at indices 0..n-2, spokes Center → leaf[i] in index order.
//   • Wheel: rim C_{n-1} at indices 0..n-2, then spokes Center → rim[i].
//
// Complexity: Star O(n) edges, Wheel O(2n) edges.

package builder

import "fmt"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4

	// CenterKey is the key of the hub node of Star and Wheel.
	CenterKey = "Center"
	hubIndex  = -1
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(b *build, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		return spokes(b, cfg, methodStar, n-1)
	}
}

// Wheel returns a Constructor that builds a wheel: a rim cycle of n-1 nodes
// plus a hub with a spoke to every rim node.
func Wheel(n int) Constructor {
	return func(b *build, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(b, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}

		return spokes(b, cfg, methodWheel, n-1)
	}
}

// spokes links the hub to the nodes at indices 0..k-1.
func spokes(b *build, cfg builderConfig, method string, k int) error {
	hub, err := b.node(CenterKey, cfg.nodeAttrs(hubIndex))
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	ids, err := b.nodes(cfg, k)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	for i, id := range ids {
		if err = b.edge(cfg, hub, id, hubIndex, i); err != nil {
			return fmt.Errorf("%s: spoke %d: %w", method, i, err)
		}
	}

	return nil
}
