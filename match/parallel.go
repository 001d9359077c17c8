// SPDX-License-Identifier: MIT
//
// File: parallel.go
// Role: Fork-join Collect: one search branch per candidate of the first
//       pattern node, run on a bounded errgroup.
// Determinism:
//   - Each branch fills its own slot; slots are concatenated in candidate
//     order, which is the order a sequential search visits them.

package match

import (
	"context"

	"golang.org/x/sync/errgroup"
)

func collectParallel(o Options, pat, tgt *index) ([]Mapping, error) {
	roots := seeds(pat, tgt)
	slots := make([][]Mapping, len(roots))

	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for i, t := range roots {
		g.Go(func() error {
			return collectSeed(ctx, pat, tgt, t, o.Limit, &slots[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup cancels its derived context on return; the caller's may be done too.
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	seen := make(map[Key]struct{})
	var out []Mapping
	for _, slot := range slots {
		for _, m := range slot {
			if o.Limit > 0 && len(out) >= o.Limit {
				return out, nil
			}
			key := m.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if o.OnMatch != nil {
				if err := o.OnMatch(m); err != nil {
					return nil, err
				}
			}
			out = append(out, m)
		}
	}

	return out, nil
}

// collectSeed runs the branch rooted at target node position t into dst.
// A positive limit bounds each branch: no branch can contribute more than
// limit mappings to the merged prefix.
func collectSeed(ctx context.Context, pat, tgt *index, t, limit int, dst *[]Mapping) error {
	s := newSeededSearcher(pat, tgt, t)
	return s.run(ctx, limit, func(m Mapping) bool {
		*dst = append(*dst, m)
		return true
	})
}
