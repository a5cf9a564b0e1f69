// Package graphio reads graph documents in YAML or JSON and builds core graphs
// from them.
//
// A document describes the graph policy (directed, mixed, loops, multi,
// weighted), optional labelled vertices and the edge list:
//
//	directed: true
//	vertices:
//	  - {id: A, label: red}
//	edges:
//	  - {from: A, to: B}
//	  - {from: B, to: C, weight: 3}
//
// Vertices referenced only by edges are created implicitly. Labels are stored
// as vertex metadata under LabelKey.
package graphio
