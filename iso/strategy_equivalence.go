package iso

import (
	"github.com/katalvlaran/isomorph/equivalence"
	"github.com/katalvlaran/isomorph/permutation"
)

// EquivalenceStrategy prunes the search with equivalence groups: both vertex
// sets are partitioned under the comparator, groups are paired across graphs,
// and candidates only permute vertices inside their group.
//
// For group sizes {1,2,2} this explores 1!·2!·2! = 4 candidates instead of 5! = 120.
type EquivalenceStrategy struct {
	g1, g2 Graph
	cmp    VertexComparator
	sizes  []int
}

// NewEquivalenceStrategy returns an equivalence-pruned strategy. A nil cmp
// behaves like AlwaysEquivalent: one group, no pruning.
func NewEquivalenceStrategy(g1, g2 Graph, cmp VertexComparator) *EquivalenceStrategy {
	if cmp == nil {
		cmp = AlwaysEquivalent
	}

	return &EquivalenceStrategy{g1: g1, g2: g2, cmp: cmp}
}

// CreatePermutationSource partitions vertices1 and vertices2, pairs the groups
// by (size, signature) and the comparator on group representatives, and
// returns graph1's vertices flattened in group order plus a source permuting
// graph2's paired groups independently.
func (s *EquivalenceStrategy) CreatePermutationSource(vertices1, vertices2 []string) ([]string, PermutationSource, bool) {
	if len(vertices1) != len(vertices2) {
		return nil, nil, false
	}

	groups1 := equivalence.Partition(vertices1,
		func(a, b string) bool { return s.cmp(a, b, s.g1, s.g1) },
		func(v string) uint64 { return degreeSignature(s.g1, v) })
	groups2 := equivalence.Partition(vertices2,
		func(a, b string) bool { return s.cmp(a, b, s.g2, s.g2) },
		func(v string) uint64 { return degreeSignature(s.g2, v) })

	paired, ok := equivalence.Match(groups1, groups2, func(l, r *equivalence.Set[string]) bool {
		return s.cmp(l.Representative(), r.Representative(), s.g1, s.g2)
	})
	if !ok {
		return nil, nil, false
	}
	s.sizes = equivalence.Sizes(groups1)

	return equivalence.Flatten(groups1), permutation.NewCompound(equivalence.Groups(paired)), true
}

// RequiresGroupCheck is false: candidates never cross group boundaries.
func (s *EquivalenceStrategy) RequiresGroupCheck() bool { return false }

// AreVertexSetsOfTheSameEqualityGroup always holds for candidates produced by
// this strategy, by construction.
func (s *EquivalenceStrategy) AreVertexSetsOfTheSameEqualityGroup(_, _ []string) bool { return true }

// GroupSizes returns the group sizes found by the last successful
// CreatePermutationSource call, in group order.
func (s *EquivalenceStrategy) GroupSizes() []int {
	out := make([]int, len(s.sizes))
	copy(out, s.sizes)

	return out
}
