package iso

import "github.com/katalvlaran/isomorph/permutation"

// PermutationStrategy is the naive strategy: every ordering of graph2's
// vertices is a candidate, filtered positionally by the vertex comparator
// before the costlier encoding comparison.
type PermutationStrategy struct {
	g1, g2 Graph
	cmp    VertexComparator
}

// NewPermutationStrategy returns the naive strategy. A nil cmp behaves like
// AlwaysEquivalent.
func NewPermutationStrategy(g1, g2 Graph, cmp VertexComparator) *PermutationStrategy {
	if cmp == nil {
		cmp = AlwaysEquivalent
	}

	return &PermutationStrategy{g1: g1, g2: g2, cmp: cmp}
}

// CreatePermutationSource ignores equivalence groups and yields all n!
// orderings of vertices2.
func (s *PermutationStrategy) CreatePermutationSource(vertices1, vertices2 []string) ([]string, PermutationSource, bool) {
	if len(vertices1) != len(vertices2) {
		return nil, nil, false
	}
	order1 := make([]string, len(vertices1))
	copy(order1, vertices1)

	return order1, permutation.NewArray(vertices2), true
}

// RequiresGroupCheck is true: candidates are unfiltered.
func (s *PermutationStrategy) RequiresGroupCheck() bool { return true }

// AreVertexSetsOfTheSameEqualityGroup reports whether the sets have equal size
// and every positional pair satisfies the vertex comparator.
func (s *PermutationStrategy) AreVertexSetsOfTheSameEqualityGroup(order1, candidate []string) bool {
	if len(order1) != len(candidate) {
		return false
	}
	for i := range order1 {
		if !s.cmp(order1[i], candidate[i], s.g1, s.g2) {
			return false
		}
	}

	return true
}
