// SPDX-License-Identifier: MIT

// Package edit rewrites graphs with patterns: Graft adds the marked part of
// a donor pattern where its unmarked context matches, Prune removes the
// images of the marked part wherever the whole donor matches.
//
// Graft(host, donor):
//
//	context  = donor − marked edges − marked nodes (with their incident edges)
//	internal = marked edges whose endpoints are both marked
//	external = the other marked edges; one endpoint lies in the context
//
//	For every embedding of context into host, external edges are re-created
//	(fresh identity, same attributes) with their context endpoint rewritten
//	through the embedding. Marked nodes and internal edges keep their own
//	identities. An empty context matches once.
//
// Prune(host, donor):
//
//	For every embedding of donor into host (computed up front against the
//	unmodified host), the images of marked edges are removed, then the
//	images of marked nodes together with whatever edges still touch them.
//
// Both return a new graph and never mutate their inputs. When nothing
// matches they return ErrMismatch.
//
// Policy:
//
//	UnionAll (default) applies every embedding; FirstOnly applies only the
//	first one in enumeration order.
package edit
