package iso_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomorph/core"
	"github.com/katalvlaran/isomorph/iso"
)

func TestNew_RejectsInvalidGraphs(t *testing.T) {
	simple := core.NewGraph()
	multi := core.NewGraph(core.WithMultiEdges())
	var typedNil *core.Graph

	tests := []struct {
		name   string
		g1, g2 iso.Graph
		want   error
	}{
		{"nil first", nil, simple, iso.ErrGraphNil},
		{"nil second", simple, nil, iso.ErrGraphNil},
		{"typed nil", typedNil, simple, iso.ErrGraphNil},
		{"multigraph first", multi, simple, iso.ErrMultigraphUnsupported},
		{"multigraph second", simple, multi, iso.ErrMultigraphUnsupported},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, err := iso.New(tc.g1, tc.g2)
			assert.Nil(t, in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_MultigraphRejectedEvenWithoutParallelEdges(t *testing.T) {
	multi := buildGraph(t, []core.GraphOption{core.WithMultiEdges()}, [2]string{"A", "B"})
	simple := buildGraph(t, undirected(), [2]string{"A", "B"})
	_, err := iso.New(simple, multi)
	assert.ErrorIs(t, err, iso.ErrMultigraphUnsupported)
}

func TestNew_UnknownStrategy(t *testing.T) {
	_, err := iso.New(core.NewGraph(), core.NewGraph(), iso.WithStrategy(iso.StrategyKind(42)))
	assert.ErrorIs(t, err, iso.ErrUnknownStrategy)
	assert.Equal(t, "StrategyKind(42)", iso.StrategyKind(42).String())
}

func TestParseStrategy(t *testing.T) {
	for _, k := range []iso.StrategyKind{iso.StrategyAuto, iso.StrategyEquivalence, iso.StrategyPermutation} {
		got, err := iso.ParseStrategy(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := iso.ParseStrategy("vf2")
	assert.ErrorIs(t, err, iso.ErrUnknownStrategy)
}

func TestDefaultOptions(t *testing.T) {
	o := iso.DefaultOptions()
	assert.Equal(t, iso.StrategyAuto, o.Strategy)
	assert.Nil(t, o.VertexComparator)
	assert.Nil(t, o.EdgeComparator)
	assert.Nil(t, o.Logger)
}

func TestNew_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g1 := buildGraph(t, undirected(), [2]string{"A", "B"})
	g2 := buildGraph(t, undirected(), [2]string{"X", "Y"})
	in, err := iso.New(g1, g2, iso.WithLogger(logger))
	require.NoError(t, err)
	drain(t, in)

	out := buf.String()
	assert.Contains(t, out, "inspector ready")
	assert.Contains(t, out, "isomorphism found")
	assert.Contains(t, out, "search exhausted")
}

func TestComparators(t *testing.T) {
	g := buildGraph(t, directed(), [2]string{"A", "B"}, [2]string{"B", "C"})
	assert.True(t, iso.AlwaysEquivalent("A", "C", g, g))
	assert.False(t, iso.DegreeComparator("A", "C", g, g), "source vs sink")
	assert.True(t, iso.DegreeComparator("B", "B", g, g))
	assert.False(t, iso.DegreeComparator("A", "missing", g, g))

	never := func(_, _ string, _, _ iso.Graph) bool { return false }
	chain := iso.ChainVertexComparators(nil, iso.AlwaysEquivalent, never)
	assert.False(t, chain("A", "A", g, g))
	assert.True(t, iso.ChainVertexComparators()("A", "C", g, g))

	require.NoError(t, g.SetVertexMetadata("A", "label", []string{"x"}))
	require.NoError(t, g.SetVertexMetadata("C", "label", []string{"x"}))
	byLabel := iso.VertexMetadataComparator("label")
	assert.True(t, byLabel("A", "C", g, g))
	assert.False(t, byLabel("A", "B", g, g), "key missing on one side")
	assert.True(t, iso.VertexMetadataComparator("absent")("A", "B", g, g))

	e1 := &core.Edge{ID: "e1", Weight: 2}
	e2 := &core.Edge{ID: "e2", Weight: 2}
	assert.True(t, iso.EdgeWeightComparator(e1, e2, g, g))
	e2.Weight = 3
	assert.False(t, iso.EdgeWeightComparator(e1, e2, g, g))
	assert.True(t, iso.AlwaysEquivalentEdges(e1, e2, g, g))
}
