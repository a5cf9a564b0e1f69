package iso

import (
	"fmt"

	"github.com/katalvlaran/isomorph/core"
)

// edgeLabel is one (sourceRank, targetRank) pair. Directed and undirected
// contributions are kept apart so a directed 2-cycle never equals a single
// undirected edge.
type edgeLabel struct {
	from, to int
	directed bool
}

// GraphOrdering is an immutable snapshot of a graph's edges expressed as
// rank pairs relative to a fixed vertex order.
//
// Rank is strictly the position in the order it was built from, so two
// orderings are only comparable when built from corresponding vertex orders.
// Undirected edges contribute both (s,t) and (t,s); a self-loop contributes a
// single (r,r). Parallel edges would collapse, which is why multigraphs are
// rejected before encoding.
type GraphOrdering struct {
	order  []string
	rank   map[string]int
	labels map[edgeLabel]struct{}
}

// NewGraphOrdering encodes edges relative to order.
//
// Errors:
//   - ErrDuplicateVertex: order lists a vertex twice.
//   - ErrVertexNotRanked: an edge endpoint does not appear in order.
//
// Complexity: O(V+E) time and space.
func NewGraphOrdering(order []string, edges []*core.Edge) (*GraphOrdering, error) {
	o := &GraphOrdering{
		order:  make([]string, len(order)),
		rank:   make(map[string]int, len(order)),
		labels: make(map[edgeLabel]struct{}, 2*len(edges)),
	}
	copy(o.order, order)
	for i, v := range order {
		if _, dup := o.rank[v]; dup {
			return nil, fmt.Errorf("NewGraphOrdering: %q: %w", v, ErrDuplicateVertex)
		}
		o.rank[v] = i
	}

	for _, e := range edges {
		s, ok := o.rank[e.From]
		if !ok {
			return nil, fmt.Errorf("NewGraphOrdering: edge %s source %q: %w", e.ID, e.From, ErrVertexNotRanked)
		}
		t, ok := o.rank[e.To]
		if !ok {
			return nil, fmt.Errorf("NewGraphOrdering: edge %s target %q: %w", e.ID, e.To, ErrVertexNotRanked)
		}
		o.labels[edgeLabel{s, t, e.Directed}] = struct{}{}
		if !e.Directed {
			o.labels[edgeLabel{t, s, false}] = struct{}{}
		}
	}

	return o, nil
}

// EqualsByEdgeOrder reports whether both orderings hold the same label set.
// Complexity: O(L) for L labels.
func (o *GraphOrdering) EqualsByEdgeOrder(other *GraphOrdering) bool {
	if other == nil || len(o.labels) != len(other.labels) {
		return false
	}
	for l := range o.labels {
		if _, ok := other.labels[l]; !ok {
			return false
		}
	}

	return true
}

// Rank returns the position of v in the ordering.
func (o *GraphOrdering) Rank(v string) (int, bool) {
	r, ok := o.rank[v]
	return r, ok
}

// Order returns a copy of the vertex order.
func (o *GraphOrdering) Order() []string {
	out := make([]string, len(o.order))
	copy(out, o.order)

	return out
}

// VertexCount returns the number of ranked vertices.
func (o *GraphOrdering) VertexCount() int { return len(o.order) }

// LabelCount returns the number of distinct label pairs.
func (o *GraphOrdering) LabelCount() int { return len(o.labels) }

// HasLabel reports whether the ordering contains the pair (from,to) with the
// given directedness. Undirected pairs are present in both orientations.
func (o *GraphOrdering) HasLabel(from, to int, directed bool) bool {
	_, ok := o.labels[edgeLabel{from, to, directed}]
	return ok
}
