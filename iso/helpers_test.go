package iso_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomorph/core"
	"github.com/katalvlaran/isomorph/iso"
)

// buildGraph creates a simple graph from "u>v" edge pairs.
func buildGraph(t *testing.T, opts []core.GraphOption, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g
}

func undirected() []core.GraphOption { return nil }

func directed() []core.GraphOption { return []core.GraphOption{core.WithDirected(true)} }

// drain collects every remaining relation of in.
func drain(t *testing.T, in *iso.Inspector) []*iso.Relation {
	t.Helper()
	var out []*iso.Relation
	for in.HasNext() {
		r, err := in.Next()
		require.NoError(t, err)
		out = append(out, r)
	}

	return out
}

// mappings renders each relation with Relation.String.
func mappings(rels []*iso.Relation) []string {
	out := make([]string, len(rels))
	for i, r := range rels {
		out[i] = r.String()
	}

	return out
}
