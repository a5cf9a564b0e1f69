package iso

// PermutationSource yields candidate orderings of graph2's vertices, one per
// call, returning ok == false once exhausted. Each returned slice is owned by
// the caller.
type PermutationSource interface {
	Next() ([]string, bool)
}

// Strategy decides which orderings of graph2's vertices the Inspector tests.
//
// CreatePermutationSource receives both vertex sets in the graphs' own
// iteration order. It returns the order of graph1's vertices every candidate
// is compared against (a new slice; the input is never modified) and the
// candidate source. ok == false means no bijection is structurally possible
// and the result sequence is empty.
//
// RequiresGroupCheck tells the Inspector whether each candidate must pass
// AreVertexSetsOfTheSameEqualityGroup before its encoding is compared.
// Strategies that only ever produce group-respecting candidates return false
// to avoid an O(n) check per candidate.
type Strategy interface {
	CreatePermutationSource(vertices1, vertices2 []string) (order1 []string, src PermutationSource, ok bool)
	RequiresGroupCheck() bool
	AreVertexSetsOfTheSameEqualityGroup(order1, candidate []string) bool
}
