// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Mapping (one embedding), its canonical Key, and the matcher options.

package match

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/katalvlaran/knob/core"
	"lukechampine.com/blake3"
)

// Mapping is one embedding of a pattern into a target: pattern identity → target identity.
type Mapping struct {
	Nodes map[core.NodeID]core.NodeID
	Edges map[core.EdgeID]core.EdgeID
}

// Len returns the number of mapped elements (nodes plus edges).
func (m Mapping) Len() int { return len(m.Nodes) + len(m.Edges) }

// TargetNode returns the image of pattern node p.
func (m Mapping) TargetNode(p core.NodeID) (core.NodeID, bool) {
	t, ok := m.Nodes[p]
	return t, ok
}

// TargetEdge returns the image of pattern edge p.
func (m Mapping) TargetEdge(p core.EdgeID) (core.EdgeID, bool) {
	t, ok := m.Edges[p]
	return t, ok
}

// TargetNodes returns the node images in ascending order.
func (m Mapping) TargetNodes() []core.NodeID {
	out := make([]core.NodeID, 0, len(m.Nodes))
	for _, t := range m.Nodes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// TargetEdges returns the edge images in ascending order.
func (m Mapping) TargetEdges() []core.EdgeID {
	out := make([]core.EdgeID, 0, len(m.Edges))
	for _, t := range m.Edges {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

type nodePair struct{ p, t core.NodeID }

type edgePair struct{ p, t core.EdgeID }

func (m Mapping) sortedPairs() ([]nodePair, []edgePair) {
	ns := make([]nodePair, 0, len(m.Nodes))
	for p, t := range m.Nodes {
		ns = append(ns, nodePair{p, t})
	}
	sort.Slice(ns, func(i, j int) bool { return ns[i].p < ns[j].p })
	es := make([]edgePair, 0, len(m.Edges))
	for p, t := range m.Edges {
		es = append(es, edgePair{p, t})
	}
	sort.Slice(es, func(i, j int) bool { return es[i].p < es[j].p })

	return ns, es
}

// Key identifies a Mapping by content: equal mappings have equal keys.
type Key [32]byte

// String returns the key in hex.
func (k Key) String() string { return hex.EncodeToString(k[:]) }

// Key returns the BLAKE3 digest of the canonical form of m: node pairs then
// edge pairs, each sorted by pattern identity.
func (m Mapping) Key() Key {
	ns, es := m.sortedPairs()
	buf := make([]byte, 0, 1+17*(len(ns)+len(es)))
	for _, pr := range ns {
		buf = append(buf, 'n')
		buf = binary.BigEndian.AppendUint64(buf, uint64(pr.p))
		buf = binary.BigEndian.AppendUint64(buf, uint64(pr.t))
	}
	for _, pr := range es {
		buf = append(buf, 'e')
		buf = binary.BigEndian.AppendUint64(buf, uint64(pr.p))
		buf = binary.BigEndian.AppendUint64(buf, uint64(pr.t))
	}

	return blake3.Sum256(buf)
}

// String renders m as "{n#1->n#7, e#3->e#9}", nodes first, ordered by pattern identity.
func (m Mapping) String() string {
	ns, es := m.sortedPairs()
	parts := make([]string, 0, len(ns)+len(es))
	for _, pr := range ns {
		parts = append(parts, pr.p.String()+"->"+pr.t.String())
	}
	for _, pr := range es {
		parts = append(parts, pr.p.String()+"->"+pr.t.String())
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Option configures a match call.
type Option func(*Options)

// Options holds configurable parameters for a match call.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Limit, if positive, stops the enumeration after that many mappings.
	Limit int

	// Workers, if greater than one, lets Collect and Count explore the
	// candidates of the first pattern node concurrently.
	Workers int

	// OnMatch, if non-nil, is called by Collect and Count for every mapping
	// in result order. Returning an error aborts the call with that error.
	OnMatch func(Mapping) error
}

// DefaultOptions returns Options with:
//   - Background context
//   - No limit
//   - Sequential search (Workers = 1)
//   - No hook
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Limit:   0,
		Workers: 1,
		OnMatch: nil,
	}
}

// WithContext sets the context checked during the search.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLimit stops the enumeration after n mappings. n <= 0 means no limit.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

// WithWorkers sets the number of concurrent search branches used by Collect and Count.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithOnMatch installs fn as a per-mapping hook for Collect and Count.
func WithOnMatch(fn func(Mapping) error) Option {
	return func(o *Options) {
		o.OnMatch = fn
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
