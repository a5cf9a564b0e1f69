package iso

import (
	"errors"

	"github.com/katalvlaran/isomorph/core"
	"github.com/katalvlaran/isomorph/prefetch"
)

// Sentinel errors for isomorphism inspection.
var (
	// ErrGraphNil indicates a nil graph was passed to the factory.
	ErrGraphNil = errors.New("iso: graph is nil")

	// ErrMultigraphUnsupported indicates a graph that permits parallel edges.
	// Such graphs are rejected before any encoding, since parallel edges would
	// collapse silently in a GraphOrdering.
	ErrMultigraphUnsupported = errors.New("iso: multigraphs are not supported")

	// ErrUnknownStrategy indicates an invalid StrategyKind.
	ErrUnknownStrategy = errors.New("iso: unknown strategy")

	// ErrVertexNotInGraph indicates a correspondence query for a vertex that is
	// absent from the relation's source graph.
	ErrVertexNotInGraph = errors.New("iso: vertex not in source graph")

	// ErrEdgeNotInGraph indicates a correspondence query for an edge that is
	// absent from the relation's source graph.
	ErrEdgeNotInGraph = errors.New("iso: edge not in source graph")

	// ErrNoCorrespondingEdge indicates that the mapped endpoints of an edge are
	// not linked by an edge of the same directedness in the target graph.
	ErrNoCorrespondingEdge = errors.New("iso: no corresponding edge")

	// ErrVertexNotRanked indicates an edge endpoint missing from a vertex order.
	ErrVertexNotRanked = errors.New("iso: edge endpoint not in vertex order")

	// ErrDuplicateVertex indicates a vertex order listing a vertex twice.
	ErrDuplicateVertex = errors.New("iso: duplicate vertex in order")

	// ErrNoMoreRelations is returned by Inspector.Next past the end.
	ErrNoMoreRelations = prefetch.ErrExhausted

	// ErrUnsupported is returned by Inspector.Remove.
	ErrUnsupported = prefetch.ErrUnsupported
)

// Graph is the read-only contract the engine consumes. *core.Graph satisfies it.
// Vertices and Edges must return a deterministic order for a fixed graph.
type Graph interface {
	Vertices() []string
	Edges() []*core.Edge
	Degree(id string) (in, out, undirected int, err error)
	HasVertex(id string) bool
	Multigraph() bool
}

// VertexComparator reports whether v1 (a vertex of g1) and v2 (a vertex of g2)
// are interchangeable. It must be reflexive, symmetric and transitive over the
// candidate vertices. Strategies also call it with g1 == g2 to partition one graph.
type VertexComparator func(v1, v2 string, g1, g2 Graph) bool

// EdgeComparator reports whether e1 (an edge of g1) and e2 (an edge of g2)
// are interchangeable.
type EdgeComparator func(e1, e2 *core.Edge, g1, g2 Graph) bool

// Stats counts the work an Inspector has done so far.
type Stats struct {
	// Candidates is the number of orderings pulled from the permutation source.
	Candidates int

	// EncodingMatches is the number of candidates whose GraphOrdering equalled graph1's.
	EncodingMatches int

	// Relations is the number of relations emitted.
	Relations int
}
