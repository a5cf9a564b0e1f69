package permutation

import "math/big"

// Array enumerates all orderings of a fixed slice.
type Array[T any] struct {
	items   []T   // private copy of the input
	idx     []int // current ordering as input positions
	started bool
	done    bool
}

// NewArray returns a generator over all orderings of items.
// The input slice is copied; later changes to it are not observed.
// An empty input yields exactly one (empty) ordering.
func NewArray[T any](items []T) *Array[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}

	return &Array[T]{items: cp, idx: idx}
}

// Len returns the number of elements being permuted.
func (a *Array[T]) Len() int { return len(a.items) }

// Next returns the next ordering, or ok == false after the last one.
func (a *Array[T]) Next() ([]T, bool) {
	if a.done {
		return nil, false
	}
	if !a.started {
		a.started = true
		return a.current(), true
	}
	if !nextIndices(a.idx) {
		a.done = true
		return nil, false
	}

	return a.current(), true
}

// NextIndices is Next expressed as input positions. The returned slice is a copy.
func (a *Array[T]) NextIndices() ([]int, bool) {
	if _, ok := a.Next(); !ok {
		return nil, false
	}
	out := make([]int, len(a.idx))
	copy(out, a.idx)

	return out, true
}

// Reset rewinds the generator to the identity ordering.
func (a *Array[T]) Reset() {
	for i := range a.idx {
		a.idx[i] = i
	}
	a.started, a.done = false, false
}

func (a *Array[T]) current() []T {
	out := make([]T, len(a.idx))
	for i, p := range a.idx {
		out[i] = a.items[p]
	}

	return out
}

// nextIndices rearranges p into its lexicographic successor.
// It returns false, leaving p untouched, when p is the last permutation.
func nextIndices(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}

// Factorial returns n! (1 for n <= 1).
func Factorial(n int) *big.Int {
	out := big.NewInt(1)
	for i := 2; i <= n; i++ {
		out.Mul(out, big.NewInt(int64(i)))
	}

	return out
}
