package permutation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomorph/permutation"
)

// drainArray collects every ordering of a as joined strings.
func drainArray(a *permutation.Array[string]) []string {
	var out []string
	for {
		p, ok := a.Next()
		if !ok {
			return out
		}
		out = append(out, strings.Join(p, ""))
	}
}

func TestArray_LexicographicOrder(t *testing.T) {
	got := drainArray(permutation.NewArray([]string{"a", "b", "c"}))
	assert.Equal(t, []string{"abc", "acb", "bac", "bca", "cab", "cba"}, got)
}

func TestArray_PositionalNotValueOrder(t *testing.T) {
	// positions are permuted, so unsorted input starts with itself
	got := drainArray(permutation.NewArray([]string{"c", "a"}))
	assert.Equal(t, []string{"ca", "ac"}, got)
}

func TestArray_Counts(t *testing.T) {
	for n := 0; n <= 6; n++ {
		items := make([]int, n)
		a := permutation.NewArray(items)
		count := 0
		for {
			if _, ok := a.Next(); !ok {
				break
			}
			count++
		}
		assert.Equal(t, permutation.Factorial(n).Int64(), int64(count), "n=%d", n)
	}
}

func TestArray_InputIsCopied(t *testing.T) {
	in := []string{"x", "y"}
	a := permutation.NewArray(in)
	in[0] = "z"
	p, ok := a.Next()
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, p)

	p[0] = "mutated"
	q, ok := a.Next()
	require.True(t, ok)
	assert.Equal(t, []string{"y", "x"}, q)
}

func TestArray_ResetAndIndices(t *testing.T) {
	a := permutation.NewArray([]string{"a", "b"})
	idx, ok := a.NextIndices()
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, idx)
	idx, ok = a.NextIndices()
	require.True(t, ok)
	assert.Equal(t, []int{1, 0}, idx)
	_, ok = a.NextIndices()
	assert.False(t, ok)
	_, ok = a.Next()
	assert.False(t, ok, "stays exhausted")

	a.Reset()
	p, ok := a.Next()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, p)
}

func TestCompound_StaysInsideGroups(t *testing.T) {
	groups := [][]string{{"a"}, {"b", "c"}, {"d", "e"}}
	c := permutation.NewCompound(groups)
	require.Equal(t, 5, c.Len())
	require.Equal(t, 3, c.Groups())

	members := make([]map[string]bool, len(groups))
	for k, grp := range groups {
		members[k] = map[string]bool{}
		for _, v := range grp {
			members[k][v] = true
		}
	}

	seen := map[string]bool{}
	for {
		p, ok := c.Next()
		if !ok {
			break
		}
		require.Len(t, p, 5)
		for k := range groups {
			lo, hi := c.GroupRange(k)
			for i := lo; i < hi; i++ {
				assert.True(t, members[k][p[i]], "%s escaped group %d", p[i], k)
			}
		}
		key := strings.Join(p, "")
		assert.False(t, seen[key], "duplicate ordering %s", key)
		seen[key] = true
	}

	// 1!·2!·2! = 4, versus 5! = 120 unrestricted
	assert.Len(t, seen, 4)
	assert.Equal(t, int64(4), permutation.CompoundCount([]int{1, 2, 2}).Int64())
	assert.Equal(t, int64(120), permutation.Factorial(5).Int64())
}

func TestCompound_OdometerOrder(t *testing.T) {
	c := permutation.NewCompound([][]string{{"a", "b"}, {"x", "y"}})
	var got []string
	for {
		p, ok := c.Next()
		if !ok {
			break
		}
		got = append(got, strings.Join(p, ""))
	}
	assert.Equal(t, []string{"abxy", "abyx", "baxy", "bayx"}, got)
}

func TestCompound_Empty(t *testing.T) {
	c := permutation.NewCompound[string](nil)
	p, ok := c.Next()
	require.True(t, ok)
	assert.Empty(t, p)
	_, ok = c.Next()
	assert.False(t, ok)
}

func TestCompound_CountMatchesProduct(t *testing.T) {
	sizes := []int{3, 1, 2, 2}
	var groups [][]int
	for _, s := range sizes {
		groups = append(groups, make([]int, s))
	}
	c := permutation.NewCompound(groups)
	count := 0
	for {
		if _, ok := c.Next(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, permutation.CompoundCount(sizes).Int64(), int64(count))
	assert.Equal(t, 24, count)
}
