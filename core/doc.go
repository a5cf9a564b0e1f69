// Package core provides the thread-safe in-memory Graph consumed by the
// isomorphism engine, with a minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Per-vertex metadata (SetVertexMetadata / VertexMetadata)
//
// Determinism:
//
//	Vertices() returns IDs sorted lexicographically; Edges() returns edges in
//	creation order. Isomorphism inspection relies on this: the same graph always
//	yields the same vertex order and therefore the same enumeration order.
//
// Read-only contract used by package iso:
//
//	Vertices() []string
//	Edges() []*Edge
//	Degree(id string) (in, out, undirected int, err error)
//	HasVertex(id string) bool
//	Multigraph() bool
//
// Errors:
//
//	ErrEmptyVertexID        - zero-length vertex ID
//	ErrVertexNotFound       - missing vertex
//	ErrEdgeNotFound         - missing edge
//	ErrBadWeight            - non-zero weight on unweighted graph
//	ErrLoopNotAllowed       - self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed - per-edge override without mixed-mode
package core
