package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/isomorph/core"
)

// BenchmarkAddEdge_Unweighted measures adding edges to a default graph.
func BenchmarkAddEdge_Unweighted(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), 0)
	}
}

// BenchmarkEdges measures the sorted edge snapshot the inspector takes.
func BenchmarkEdges(b *testing.B) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1), 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}

// BenchmarkDegree measures the degree triple used by comparators.
func BenchmarkDegree(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		_, _ = g.AddEdge("Hub", fmt.Sprintf("N%d", i), 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _ = g.Degree("Hub")
	}
}
