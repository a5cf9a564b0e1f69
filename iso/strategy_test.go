package iso_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomorph/iso"
)

func TestEquivalenceStrategy_GroupsAndOrder(t *testing.T) {
	// path on five vertices; degree groups {B,C,D} and {A,E}
	g1 := buildGraph(t, undirected(), [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "E"})
	g2 := buildGraph(t, undirected(), [2]string{"v", "w"}, [2]string{"w", "x"}, [2]string{"x", "y"}, [2]string{"y", "z"})

	s := iso.NewEquivalenceStrategy(g1, g2, iso.DegreeComparator)
	assert.False(t, s.RequiresGroupCheck())
	assert.True(t, s.AreVertexSetsOfTheSameEqualityGroup(nil, nil))

	v1 := g1.Vertices()
	order1, src, ok := s.CreatePermutationSource(v1, g2.Vertices())
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, v1, "input must not be reordered")
	assert.Equal(t, []string{"B", "C", "D", "A", "E"}, order1)
	assert.Equal(t, []int{3, 2}, s.GroupSizes())

	inner := map[string]bool{"w": true, "x": true, "y": true}
	count := 0
	for {
		cand, ok := src.Next()
		if !ok {
			break
		}
		count++
		for i, v := range cand {
			assert.Equal(t, i < 3, inner[v], "candidate %v crosses a group boundary", cand)
		}
	}
	assert.Equal(t, 12, count)
}

func TestEquivalenceStrategy_NoBijection(t *testing.T) {
	path := buildGraph(t, undirected(), [2]string{"A", "B"}, [2]string{"B", "C"})
	tri := buildGraph(t, undirected(), [2]string{"X", "Y"}, [2]string{"Y", "Z"}, [2]string{"Z", "X"})

	s := iso.NewEquivalenceStrategy(path, tri, iso.DegreeComparator)
	_, src, ok := s.CreatePermutationSource(path.Vertices(), tri.Vertices())
	assert.False(t, ok)
	assert.Nil(t, src)

	_, _, ok = s.CreatePermutationSource([]string{"A"}, tri.Vertices())
	assert.False(t, ok, "sizes differ")
}

func TestEquivalenceStrategy_DefaultComparatorIsOneGroup(t *testing.T) {
	g := buildGraph(t, undirected(), [2]string{"A", "B"}, [2]string{"B", "C"})
	s := iso.NewEquivalenceStrategy(g, g, nil)
	_, src, ok := s.CreatePermutationSource(g.Vertices(), g.Vertices())
	require.True(t, ok)
	assert.Equal(t, []int{3}, s.GroupSizes())

	count := 0
	for {
		if _, ok := src.Next(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, 6, count)
}

func TestPermutationStrategy(t *testing.T) {
	g1 := buildGraph(t, undirected(), [2]string{"A", "B"})
	g2 := buildGraph(t, undirected(), [2]string{"X", "Y"})

	onlyAX := func(v1, v2 string, _, _ iso.Graph) bool {
		return (v1 == "A") == (v2 == "X")
	}
	s := iso.NewPermutationStrategy(g1, g2, onlyAX)
	assert.True(t, s.RequiresGroupCheck())

	order1, src, ok := s.CreatePermutationSource(g1.Vertices(), g2.Vertices())
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, order1)

	first, ok := src.Next()
	require.True(t, ok)
	assert.True(t, s.AreVertexSetsOfTheSameEqualityGroup(order1, first))
	second, ok := src.Next()
	require.True(t, ok)
	assert.False(t, s.AreVertexSetsOfTheSameEqualityGroup(order1, second))
	_, ok = src.Next()
	assert.False(t, ok)

	assert.False(t, s.AreVertexSetsOfTheSameEqualityGroup(order1, []string{"X"}))
	_, _, ok = s.CreatePermutationSource([]string{"A"}, g2.Vertices())
	assert.False(t, ok)
}

func TestNewWithStrategy(t *testing.T) {
	g1 := buildGraph(t, undirected(), [2]string{"A", "B"})
	g2 := buildGraph(t, undirected(), [2]string{"X", "Y"})

	in, err := iso.NewWithStrategy(g1, g2, iso.NewPermutationStrategy(g1, g2, nil))
	require.NoError(t, err)
	assert.Len(t, drain(t, in), 2)

	_, err = iso.NewWithStrategy(g1, g2, nil)
	assert.ErrorIs(t, err, iso.ErrUnknownStrategy)
}
