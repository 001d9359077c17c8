// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Incident-edge index: IncidentEdges plus the private helpers keeping
//       incident[node][edge] in sync with the edge table.
// Determinism:
//   - IncidentEdges returns edges sorted by EdgeID asc; self-loops appear once.
// Concurrency:
//   - IncidentEdges takes the read lock; helpers expect the caller to hold mu.

package core

import "sort"

// IncidentEdges returns every member edge whose source or target is one of ids,
// sorted by identity. Absent node identities contribute nothing.
//
// Complexity: O(k·log k) for k matching edges.
func (g *Graph) IncidentEdges(ids ...NodeID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[EdgeID]struct{})
	for _, nid := range ids {
		for eid := range g.incident[nid] {
			seen[eid] = struct{}{}
		}
	}
	eids := make([]EdgeID, 0, len(seen))
	for eid := range seen {
		eids = append(eids, eid)
	}
	sort.Slice(eids, func(i, j int) bool { return eids[i] < eids[j] })

	out := make([]Edge, 0, len(eids))
	for _, eid := range eids {
		e, _ := g.edges.Get(eid)
		out = append(out, e)
	}

	return out
}

// Degree returns the number of edges entering and leaving nid.
// A self-loop counts once in each direction.
// Returns ErrNodeNotFound if nid is not a member.
func (g *Graph) Degree(nid NodeID) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes.Get(nid); !ok {
		return 0, 0, ErrNodeNotFound
	}
	for eid := range g.incident[nid] {
		e, _ := g.edges.Get(eid)
		if e.target == nid {
			in++
		}
		if e.source == nid {
			out++
		}
	}

	return in, out, nil
}

// ensureIncident lazily creates the incident bucket for nid.
func ensureIncident(g *Graph, nid NodeID) {
	if _, ok := g.incident[nid]; !ok {
		g.incident[nid] = make(map[EdgeID]struct{})
	}
}

// linkIncident records e under both endpoints (once for a self-loop).
func linkIncident(g *Graph, e Edge) {
	ensureIncident(g, e.source)
	g.incident[e.source][e.id] = struct{}{}
	ensureIncident(g, e.target)
	g.incident[e.target][e.id] = struct{}{}
}

// unlinkIncident drops e from both endpoint buckets.
func unlinkIncident(g *Graph, e Edge) {
	delete(g.incident[e.source], e.id)
	delete(g.incident[e.target], e.id)
}

// incidentSorted returns the identities of edges incident to nid, sorted.
func (g *Graph) incidentSorted(nid NodeID) []EdgeID {
	bucket := g.incident[nid]
	out := make([]EdgeID, 0, len(bucket))
	for eid := range bucket {
		out = append(out, eid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
