package equivalence

import "sort"

// Comparator reports whether a and b are interchangeable.
type Comparator[T any] func(a, b T) bool

// Signer maps an element to a structural signature. Equivalent elements must
// have equal signatures for cross-partition matching to be meaningful.
type Signer[T any] func(T) uint64

// Set is one maximal group of mutually equivalent elements.
type Set[T any] struct {
	members   []T
	signature uint64
}

// Len returns the number of members.
func (s *Set[T]) Len() int { return len(s.members) }

// Signature returns the aggregate structural signature of the group.
func (s *Set[T]) Signature() uint64 { return s.signature }

// Representative returns the first member; every other member is equivalent to it.
func (s *Set[T]) Representative() T { return s.members[0] }

// Members returns a copy of the group members in discovery order.
func (s *Set[T]) Members() []T {
	out := make([]T, len(s.members))
	copy(out, s.members)

	return out
}

// SameKey reports whether s and other agree on (size, signature).
// Equal keys are necessary, not sufficient, for the groups to correspond.
func (s *Set[T]) SameKey(other *Set[T]) bool {
	return s.Len() == other.Len() && s.signature == other.signature
}

// Partition groups items under eq. A nil eq treats every pair as equivalent
// (one group); a nil sign gives every element signature 0.
func Partition[T any](items []T, eq Comparator[T], sign Signer[T]) []*Set[T] {
	if eq == nil {
		eq = func(T, T) bool { return true }
	}
	if sign == nil {
		sign = func(T) uint64 { return 0 }
	}

	var sets []*Set[T]
	for _, item := range items {
		placed := false
		for _, s := range sets {
			if eq(s.Representative(), item) {
				s.members = append(s.members, item)
				s.signature += sign(item)
				placed = true
				break
			}
		}
		if !placed {
			sets = append(sets, &Set[T]{members: []T{item}, signature: sign(item)})
		}
	}

	sort.SliceStable(sets, func(i, j int) bool {
		if sets[i].Len() != sets[j].Len() {
			return sets[i].Len() > sets[j].Len()
		}
		return sets[i].signature < sets[j].signature
	})

	return sets
}

// Sizes returns the group sizes in group order.
func Sizes[T any](sets []*Set[T]) []int {
	out := make([]int, len(sets))
	for i, s := range sets {
		out[i] = s.Len()
	}

	return out
}

// Flatten concatenates the members of sets in group order.
func Flatten[T any](sets []*Set[T]) []T {
	n := 0
	for _, s := range sets {
		n += s.Len()
	}
	out := make([]T, 0, n)
	for _, s := range sets {
		out = append(out, s.members...)
	}

	return out
}

// Groups returns the member slices of sets (copies) in group order.
func Groups[T any](sets []*Set[T]) [][]T {
	out := make([][]T, len(sets))
	for i, s := range sets {
		out[i] = s.Members()
	}

	return out
}

// Match reorders right so that right[i] corresponds to left[i].
//
// A right-hand group is a candidate for left[i] when it is unconsumed, shares
// (size, signature) with left[i] and, if exact is non-nil, exact(left[i], r)
// holds. The first candidate in right order wins. It returns ok == false when
// the partitions differ in group count or some left group has no candidate.
func Match[T any](left, right []*Set[T], exact func(l, r *Set[T]) bool) ([]*Set[T], bool) {
	if len(left) != len(right) {
		return nil, false
	}

	used := make([]bool, len(right))
	out := make([]*Set[T], len(left))
	for i, l := range left {
		found := -1
		for j, r := range right {
			if used[j] || !l.SameKey(r) {
				continue
			}
			if exact != nil && !exact(l, r) {
				continue // key collision; keep scanning
			}
			found = j
			break
		}
		if found < 0 {
			return nil, false
		}
		used[found] = true
		out[i] = right[found]
	}

	return out, true
}
