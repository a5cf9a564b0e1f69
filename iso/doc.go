// Package iso enumerates isomorphisms between two graphs: bijections between
// their vertex sets that preserve edge structure, optionally filtered by
// vertex and edge equivalence comparators.
//
// What:
//
//   - GraphOrdering: canonical integer-labelled encoding of a graph's edges
//     relative to a fixed vertex order. Two orderings are edge-order-equal iff
//     their label sets are equal.
//   - Strategy: decides which orderings of graph2's vertices are tested
//     against graph1. EquivalenceStrategy partitions both vertex sets into
//     equivalence groups and permutes only inside groups. PermutationStrategy
//     tries every ordering and filters positionally with the vertex comparator.
//   - Inspector: pulls candidates from the strategy, compares encodings,
//     verifies edge equivalence and emits Relation values lazily.
//   - New: factory selecting a strategy. The default (StrategyAuto) chains the
//     built-in DegreeComparator ahead of any user vertex comparator.
//
// Comparators:
//
//   - A nil vertex comparator behaves like AlwaysEquivalent.
//   - A nil edge comparator DISABLES edge verification. This differs from
//     passing AlwaysEquivalentEdges, which runs a full O(E) pass per match
//     that always succeeds.
//
// No match possible (different vertex or edge counts, different equivalence
// group shapes) is not an error: the result sequence is empty and
// IsIsomorphic reports false.
//
// Errors:
//
//   - ErrGraphNil                 nil graph passed to the factory
//   - ErrMultigraphUnsupported    graph permits parallel edges
//   - ErrUnknownStrategy          invalid StrategyKind
//   - ErrVertexNotInGraph         correspondence query with a foreign vertex
//   - ErrEdgeNotInGraph           correspondence query with a foreign edge
//   - ErrNoCorrespondingEdge      mapped endpoints are not linked in the target
//   - ErrVertexNotRanked          GraphOrdering edge endpoint missing from order
//   - ErrDuplicateVertex          GraphOrdering order repeats a vertex
//   - ErrNoMoreRelations          Next past the end
//   - ErrUnsupported              Remove on the result sequence
//
// Complexity:
//
//   - Worst case O(n!·(n+E)) for PermutationStrategy; EquivalenceStrategy
//     explores Π(sᵢ!) candidates for group sizes sᵢ.
//   - Memory O(n+E) for the current candidate and group bookkeeping.
//
// Concurrency: an Inspector is single-threaded and pull-based. Input graphs
// must not be mutated while an Inspector is in use (unchecked precondition).
package iso
