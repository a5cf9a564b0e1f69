package iso

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/isomorph/core"
	"github.com/katalvlaran/isomorph/prefetch"
)

// Inspector lazily enumerates isomorphisms from graph1 to graph2.
//
// Construction snapshots both graphs, asks the strategy for a permutation
// source and encodes graph1 once. Each search step then pulls candidates
// until one passes the group check (if required), the encoding comparison
// and the edge comparator (if set).
type Inspector struct {
	g1, g2   Graph
	strategy Strategy
	edgeCmp  EdgeComparator // nil disables edge verification
	logger   *slog.Logger

	order1    []string
	ordering1 *GraphOrdering
	edgeList1 []*core.Edge
	edgeList2 []*core.Edge
	edges1    *edgeIndex
	edges2    *edgeIndex
	src       PermutationSource // nil when no bijection is possible

	results  *prefetch.Iterator[*Relation]
	searched bool
	found    bool
	stats    Stats
}

// newInspector assumes g1 and g2 are non-nil simple graphs; New checks that.
func newInspector(g1, g2 Graph, strategy Strategy, edgeCmp EdgeComparator, logger *slog.Logger) (*Inspector, error) {
	in := &Inspector{
		g1:       g1,
		g2:       g2,
		strategy: strategy,
		edgeCmp:  edgeCmp,
		logger:   logger,
	}

	vertices1, vertices2 := g1.Vertices(), g2.Vertices()
	in.edgeList1, in.edgeList2 = g1.Edges(), g2.Edges()
	in.edges1, in.edges2 = newEdgeIndex(in.edgeList1), newEdgeIndex(in.edgeList2)

	in.order1 = vertices1
	switch {
	case len(vertices1) != len(vertices2):
		in.debug("no isomorphism possible", "reason", "vertex count", "v1", len(vertices1), "v2", len(vertices2))
	case len(in.edgeList1) != len(in.edgeList2):
		in.debug("no isomorphism possible", "reason", "edge count", "e1", len(in.edgeList1), "e2", len(in.edgeList2))
	default:
		order1, src, ok := strategy.CreatePermutationSource(vertices1, vertices2)
		if ok {
			in.order1, in.src = order1, src
		} else {
			in.debug("no isomorphism possible", "reason", "equivalence groups differ")
		}
	}

	ordering1, err := NewGraphOrdering(in.order1, in.edgeList1)
	if err != nil {
		return nil, fmt.Errorf("newInspector: graph1: %w", err)
	}
	in.ordering1 = ordering1
	in.results = prefetch.New[*Relation](in.step)

	in.debug("inspector ready",
		"vertices", len(vertices1),
		"edges", len(in.edgeList1),
		"edgeCheck", edgeCmp != nil,
		"searchable", in.src != nil)

	return in, nil
}

// step runs one search step: it returns the next relation or ok == false
// once the permutation source is exhausted.
func (in *Inspector) step() (*Relation, bool) {
	in.searched = true
	if in.src == nil {
		return nil, false
	}

	for {
		cand, ok := in.src.Next()
		if !ok {
			in.debug("search exhausted", "candidates", in.stats.Candidates, "relations", in.stats.Relations)
			return nil, false
		}
		in.stats.Candidates++

		if in.strategy.RequiresGroupCheck() && !in.strategy.AreVertexSetsOfTheSameEqualityGroup(in.order1, cand) {
			continue
		}

		ordering2, err := NewGraphOrdering(cand, in.edgeList2)
		if err != nil {
			// graph2 has an edge endpoint outside its own vertex set
			in.debug("candidate rejected", "error", err)
			continue
		}
		if !in.ordering1.EqualsByEdgeOrder(ordering2) {
			continue
		}
		in.stats.EncodingMatches++

		rel := newRelation(in.g1, in.g2, in.order1, cand, in.edges1, in.edges2)
		if in.edgeCmp != nil && !in.edgesEquivalent(rel) {
			continue
		}

		in.found = true
		in.stats.Relations++
		in.debug("isomorphism found", "relation", rel.String())

		return rel, true
	}
}

// edgesEquivalent checks every edge of graph1 against its image in graph2.
// A single failing edge rejects the relation.
func (in *Inspector) edgesEquivalent(rel *Relation) bool {
	for _, e1 := range in.edgeList1 {
		e2, err := rel.EdgeCorrespondence(e1, true)
		if err != nil || !in.edgeCmp(e1, e2, in.g1, in.g2) {
			return false
		}
	}

	return true
}

func (in *Inspector) debug(msg string, args ...any) {
	if in.logger != nil {
		in.logger.Debug(msg, args...)
	}
}

// HasNext reports whether another relation exists, computing at most one
// search step ahead.
func (in *Inspector) HasNext() bool { return in.results.HasNext() }

// Next returns the next relation or ErrNoMoreRelations.
func (in *Inspector) Next() (*Relation, error) { return in.results.Next() }

// Remove is unsupported; it always returns ErrUnsupported.
func (in *Inspector) Remove() error { return in.results.Remove() }

// All returns the remaining relations as a single-use sequence.
func (in *Inspector) All() iter.Seq[*Relation] { return in.results.All() }

// IsIsomorphic reports whether at least one isomorphism has ever been
// produced. If no search step has run yet, exactly one is triggered (its
// result stays cached for Next); afterwards the call is O(1).
func (in *Inspector) IsIsomorphic() bool {
	if !in.searched {
		in.results.HasNext()
	}

	return in.found
}

// IsEnumerationStartedEmpty reports whether the very first search step found nothing.
func (in *Inspector) IsEnumerationStartedEmpty() bool {
	return in.results.IsEnumerationStartedEmpty()
}

// Stats returns a snapshot of the work done so far.
func (in *Inspector) Stats() Stats { return in.stats }

// Order1 returns a copy of the graph1 vertex order relations are expressed in.
func (in *Inspector) Order1() []string { return in.ordering1.Order() }
