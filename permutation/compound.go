package permutation

import "math/big"

// Compound enumerates the Cartesian product of per-group permutations.
//
// The output of Next is the concatenation of one ordering of every group, in
// group order. The last group varies fastest, like an odometer.
type Compound[T any] struct {
	gens    []*Array[T]
	parts   [][]T // current ordering of each group
	bounds  []int // bounds[k] is the output offset of group k
	size    int
	started bool
	done    bool
}

// NewCompound returns a generator permuting each group independently.
// Groups are copied. Zero groups yield exactly one (empty) ordering.
func NewCompound[T any](groups [][]T) *Compound[T] {
	c := &Compound[T]{
		gens:   make([]*Array[T], len(groups)),
		parts:  make([][]T, len(groups)),
		bounds: make([]int, len(groups)),
	}
	for k, grp := range groups {
		c.gens[k] = NewArray(grp)
		c.bounds[k] = c.size
		c.size += len(grp)
	}

	return c
}

// Len returns the total number of elements across all groups.
func (c *Compound[T]) Len() int { return c.size }

// GroupRange reports the half-open output index range [lo, hi) owned by group k.
func (c *Compound[T]) GroupRange(k int) (lo, hi int) {
	lo = c.bounds[k]
	return lo, lo + c.gens[k].Len()
}

// Groups returns the number of groups.
func (c *Compound[T]) Groups() int { return len(c.gens) }

// Next returns the next combined ordering, or ok == false after the last one.
func (c *Compound[T]) Next() ([]T, bool) {
	if c.done {
		return nil, false
	}
	if !c.started {
		c.started = true
		for k, g := range c.gens {
			c.parts[k], _ = g.Next() // every group has at least its identity ordering
		}
		return c.flatten(), true
	}

	// Advance the rightmost group that still has orderings left; every group
	// to its right restarts from its identity ordering.
	for k := len(c.gens) - 1; k >= 0; k-- {
		if next, ok := c.gens[k].Next(); ok {
			c.parts[k] = next
			return c.flatten(), true
		}
		c.gens[k].Reset()
		c.parts[k], _ = c.gens[k].Next()
	}
	c.done = true

	return nil, false
}

func (c *Compound[T]) flatten() []T {
	out := make([]T, 0, c.size)
	for _, p := range c.parts {
		out = append(out, p...)
	}

	return out
}

// CompoundCount returns Π(sizes[i]!), the number of orderings a Compound over
// groups of the given sizes produces.
func CompoundCount(sizes []int) *big.Int {
	out := big.NewInt(1)
	for _, s := range sizes {
		out.Mul(out, Factorial(s))
	}

	return out
}
