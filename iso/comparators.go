package iso

import (
	"encoding/binary"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/isomorph/core"
)

// AlwaysEquivalent treats every pair of vertices as interchangeable.
func AlwaysEquivalent(_, _ string, _, _ Graph) bool { return true }

// AlwaysEquivalentEdges treats every pair of edges as interchangeable. Unlike a
// nil EdgeComparator, it still forces a full edge pass for every match.
func AlwaysEquivalentEdges(_, _ *core.Edge, _, _ Graph) bool { return true }

// degreeTriple is the loop-aware degree of a vertex as reported by Graph.Degree.
type degreeTriple struct{ in, out, undirected int }

func degreeOf(g Graph, v string) (degreeTriple, bool) {
	in, out, und, err := g.Degree(v)
	if err != nil {
		return degreeTriple{}, false
	}

	return degreeTriple{in, out, und}, true
}

// DegreeComparator judges two vertices equivalent iff their in-, out- and
// undirected degrees agree. No isomorphism maps vertices of different degree
// onto each other, so chaining it ahead of other comparators is always sound.
func DegreeComparator(v1, v2 string, g1, g2 Graph) bool {
	d1, ok1 := degreeOf(g1, v1)
	d2, ok2 := degreeOf(g2, v2)

	return ok1 && ok2 && d1 == d2
}

// ChainVertexComparators returns a comparator that holds iff every non-nil
// comparator holds, evaluated left to right with short-circuit.
func ChainVertexComparators(cmps ...VertexComparator) VertexComparator {
	chain := make([]VertexComparator, 0, len(cmps))
	for _, c := range cmps {
		if c != nil {
			chain = append(chain, c)
		}
	}

	return func(v1, v2 string, g1, g2 Graph) bool {
		for _, c := range chain {
			if !c(v1, v2, g1, g2) {
				return false
			}
		}
		return true
	}
}

// MetadataGraph is implemented by graphs exposing per-vertex metadata,
// such as *core.Graph.
type MetadataGraph interface {
	VertexMetadata(id, key string) (interface{}, bool)
}

// VertexMetadataComparator judges two vertices equivalent iff both graphs
// expose metadata and the values stored under key are deeply equal. A key
// missing on both sides counts as equal; missing on one side does not.
func VertexMetadataComparator(key string) VertexComparator {
	return func(v1, v2 string, g1, g2 Graph) bool {
		m1, ok1 := g1.(MetadataGraph)
		m2, ok2 := g2.(MetadataGraph)
		if !ok1 || !ok2 {
			return false
		}
		a, hasA := m1.VertexMetadata(v1, key)
		b, hasB := m2.VertexMetadata(v2, key)
		if hasA != hasB {
			return false
		}

		return reflect.DeepEqual(a, b)
	}
}

// EdgeWeightComparator judges two edges equivalent iff their weights are equal.
func EdgeWeightComparator(e1, e2 *core.Edge, _, _ Graph) bool {
	return e1.Weight == e2.Weight
}

// degreeSignature hashes the degree triple of v. Isomorphisms preserve it, so
// sums over corresponding groups agree between two isomorphic graphs.
func degreeSignature(g Graph, v string) uint64 {
	d, ok := degreeOf(g, v)
	if !ok {
		return 0
	}
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(d.in))
	binary.LittleEndian.PutUint64(buf[8:], uint64(d.out))
	binary.LittleEndian.PutUint64(buf[16:], uint64(d.undirected))

	return xxhash.Sum64(buf[:])
}
