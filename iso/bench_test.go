package iso_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/isomorph/core"
	"github.com/katalvlaran/isomorph/iso"
)

// cycle returns an undirected n-cycle with vertices prefixed by p.
func cycle(b *testing.B, p string, n int) *core.Graph {
	b.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if _, err := g.AddEdge(fmt.Sprintf("%s%02d", p, i), fmt.Sprintf("%s%02d", p, (i+1)%n), 0); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

// star returns an undirected star with n leaves around a hub.
func star(b *testing.B, p string, n int) *core.Graph {
	b.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if _, err := g.AddEdge(p+"hub", fmt.Sprintf("%s%02d", p, i), 0); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

func BenchmarkIsIsomorphic_Cycle6(b *testing.B) {
	g1, g2 := cycle(b, "a", 6), cycle(b, "b", 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in, err := iso.New(g1, g2)
		if err != nil {
			b.Fatal(err)
		}
		if !in.IsIsomorphic() {
			b.Fatal("cycles must be isomorphic")
		}
	}
}

func BenchmarkAll_Star6(b *testing.B) {
	for _, kind := range []iso.StrategyKind{iso.StrategyAuto, iso.StrategyPermutation} {
		b.Run(kind.String(), func(b *testing.B) {
			g1, g2 := star(b, "a", 5), star(b, "b", 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				in, err := iso.New(g1, g2, iso.WithStrategy(kind))
				if err != nil {
					b.Fatal(err)
				}
				for range in.All() {
				}
			}
		})
	}
}
