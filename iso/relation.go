package iso

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/isomorph/core"
)

// edgeIndex gives O(1) edge membership and endpoint lookups for one graph.
// Undirected edges are registered under both orientations.
type edgeIndex struct {
	byID   map[string]*core.Edge
	byEnds map[[2]string]*core.Edge
}

func newEdgeIndex(edges []*core.Edge) *edgeIndex {
	idx := &edgeIndex{
		byID:   make(map[string]*core.Edge, len(edges)),
		byEnds: make(map[[2]string]*core.Edge, 2*len(edges)),
	}
	for _, e := range edges {
		idx.byID[e.ID] = e
		idx.byEnds[[2]string{e.From, e.To}] = e
		if !e.Directed {
			idx.byEnds[[2]string{e.To, e.From}] = e
		}
	}

	return idx
}

// contains reports whether e is the edge catalogued under e.ID.
func (idx *edgeIndex) contains(e *core.Edge) bool {
	if e == nil {
		return false
	}
	got, ok := idx.byID[e.ID]

	return ok && got.From == e.From && got.To == e.To && got.Directed == e.Directed
}

// Relation is one discovered isomorphism: graph1's vertex order and the
// matching permutation of graph2's vertices, position by position.
// A Relation is immutable once created.
type Relation struct {
	g1, g2         Graph
	order1, order2 []string
	fwd, inv       map[string]string
	edges1, edges2 *edgeIndex
}

func newRelation(g1, g2 Graph, order1, order2 []string, edges1, edges2 *edgeIndex) *Relation {
	r := &Relation{
		g1:     g1,
		g2:     g2,
		order1: order1,
		order2: order2,
		fwd:    make(map[string]string, len(order1)),
		inv:    make(map[string]string, len(order2)),
		edges1: edges1,
		edges2: edges2,
	}
	for i := range order1 {
		r.fwd[order1[i]] = order2[i]
		r.inv[order2[i]] = order1[i]
	}

	return r
}

// Graph1 returns the first graph.
func (r *Relation) Graph1() Graph { return r.g1 }

// Graph2 returns the second graph.
func (r *Relation) Graph2() Graph { return r.g2 }

// Graph1Order returns a copy of graph1's vertex order.
func (r *Relation) Graph1Order() []string {
	out := make([]string, len(r.order1))
	copy(out, r.order1)

	return out
}

// Graph2Order returns a copy of the graph2 permutation paired with Graph1Order.
func (r *Relation) Graph2Order() []string {
	out := make([]string, len(r.order2))
	copy(out, r.order2)

	return out
}

// Mapping returns the bijection as a fresh graph1 → graph2 map.
func (r *Relation) Mapping() map[string]string {
	out := make(map[string]string, len(r.fwd))
	for k, v := range r.fwd {
		out[k] = v
	}

	return out
}

// VertexCorrespondence maps v through the relation. forward maps a graph1
// vertex to graph2; otherwise a graph2 vertex is mapped back to graph1.
//
// Errors:
//   - ErrVertexNotInGraph: v is not a vertex of the source graph.
func (r *Relation) VertexCorrespondence(v string, forward bool) (string, error) {
	m, side := r.fwd, 1
	if !forward {
		m, side = r.inv, 2
	}
	out, ok := m[v]
	if !ok {
		return "", fmt.Errorf("VertexCorrespondence: %q in graph%d: %w", v, side, ErrVertexNotInGraph)
	}

	return out, nil
}

// EdgeCorrespondence maps e through the relation: its endpoints are mapped
// and the edge linking them in the target graph is returned. Undirected
// edges match in either orientation; directedness must agree.
//
// Errors:
//   - ErrEdgeNotInGraph:      e is not an edge of the source graph.
//   - ErrNoCorrespondingEdge: the mapped endpoints are not linked.
func (r *Relation) EdgeCorrespondence(e *core.Edge, forward bool) (*core.Edge, error) {
	src, dst, m, side := r.edges1, r.edges2, r.fwd, 1
	if !forward {
		src, dst, m, side = r.edges2, r.edges1, r.inv, 2
	}
	if !src.contains(e) {
		id := "<nil>"
		if e != nil {
			id = e.ID
		}
		return nil, fmt.Errorf("EdgeCorrespondence: edge %s in graph%d: %w", id, side, ErrEdgeNotInGraph)
	}

	from, to := m[e.From], m[e.To]
	out, ok := dst.byEnds[[2]string{from, to}]
	if !ok || out.Directed != e.Directed {
		return nil, fmt.Errorf("EdgeCorrespondence: %s→%s: %w", from, to, ErrNoCorrespondingEdge)
	}

	return out, nil
}

// String renders the relation as "A=W B=X ...", in graph1 order.
func (r *Relation) String() string {
	var sb strings.Builder
	for i := range r.order1 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(r.order1[i])
		sb.WriteByte('=')
		sb.WriteString(r.order2[i])
	}

	return sb.String()
}
