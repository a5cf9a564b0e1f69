// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only policy getters and the mixed-graph constructor.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after construction; getters take muVert read lock only.

package core

// NewMixedGraph creates a Graph that allows per-edge directedness overrides via
// WithEdgeDirected. The caller's opts slice is never mutated.
//
// Complexity: O(len(opts)).
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges()) // mixed-mode first, caller options after
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the default directedness applied to newly created edges.
// It does not indicate whether the graph currently holds directed edges.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are
// permitted by policy. Isomorphism inspection rejects such graphs up front,
// whether or not a parallel edge is currently stored.
//
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// IsNil reports whether the receiver is nil; safe for typed-nil inside interfaces.
func (g *Graph) IsNil() bool { return g == nil }
