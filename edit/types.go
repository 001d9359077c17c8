// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, embedding policy and options for Graft/Prune.

package edit

import (
	"context"
	"errors"
)

var (
	// ErrMismatch indicates that the donor (Prune) or its context (Graft) has no
	// embedding into the host.
	ErrMismatch = errors.New("edit: mismatch")

	// ErrGraphNil is returned when host or donor is nil.
	ErrGraphNil = errors.New("edit: graph is nil")
)

// Policy selects which embeddings an edit applies.
type Policy uint8

const (
	// UnionAll applies the edit for every embedding.
	UnionAll Policy = iota
	// FirstOnly applies the edit for the first embedding only.
	FirstOnly
)

// String returns "union-all" or "first-only".
func (p Policy) String() string {
	switch p {
	case UnionAll:
		return "union-all"
	case FirstOnly:
		return "first-only"
	default:
		return "unknown"
	}
}

// Option configures Graft and Prune.
type Option func(*Options)

// Options holds configurable parameters for Graft and Prune.
type Options struct {
	// Ctx allows cancellation of the underlying match; defaults to context.Background().
	Ctx context.Context

	// Policy selects the embeddings applied; default UnionAll.
	Policy Policy

	// Workers is forwarded to the matcher (see match.WithWorkers).
	Workers int
}

// DefaultOptions returns Options with a background context, UnionAll and a
// sequential matcher.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Policy:  UnionAll,
		Workers: 1,
	}
}

// WithContext sets the context. Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPolicy selects the embedding policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithWorkers sets the matcher's worker count.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
