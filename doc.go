// Package isomorph enumerates graph isomorphisms lazily, one vertex bijection
// at a time, with optional vertex and edge equivalence filters.
//
// 🚀 What is isomorph?
//
//	A small, dependency-light engine built around four ideas:
//		• Canonical encoding: a graph under a vertex order becomes a set of rank pairs
//		• Equivalence pruning: vertices are grouped and only permuted inside their group
//		• Lazy search: each Next() runs the search just far enough to find one match
//		• Pluggable predicates: vertex and edge comparators narrow what "equal" means
//
// Packages:
//
//	core/        - thread-safe in-memory Graph with directed, mixed, weighted and looped edges
//	iso/         - Inspector, strategies, GraphOrdering, Relation and built-in comparators
//	equivalence/ - generic partitioning into equivalence sets and cross-set matching
//	permutation/ - lexicographic and compound (per-group) permutation generators
//	prefetch/    - lazy "compute next or end" iterator adapter
//	graphio/     - YAML/JSON graph documents
//	cmd/isocheck - command-line front end
//
// Quick example:
//
//	g1 := core.NewGraph(core.WithDirected(true))
//	g1.AddEdge("A", "B", 0)
//	g2 := core.NewGraph(core.WithDirected(true))
//	g2.AddEdge("X", "Y", 0)
//
//	in, _ := iso.New(g1, g2)
//	for rel := range in.All() {
//		fmt.Println(rel) // A=X B=Y
//	}
package isomorph
