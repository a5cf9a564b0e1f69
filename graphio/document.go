package graphio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/isomorph/core"
)

// LabelKey is the vertex metadata key vertex labels are stored under.
const LabelKey = "label"

var (
	// ErrUnknownFormat is returned for a format name or file extension that is
	// neither YAML nor JSON.
	ErrUnknownFormat = errors.New("graphio: unknown document format")

	// ErrEmptyDocument is returned when a document has no content.
	ErrEmptyDocument = errors.New("graphio: empty document")
)

// Document is the serialized form of a graph.
type Document struct {
	Directed bool `yaml:"directed" json:"directed"`
	Mixed    bool `yaml:"mixed" json:"mixed"`
	Loops    bool `yaml:"loops" json:"loops"`
	Multi    bool `yaml:"multi" json:"multi"`
	Weighted bool `yaml:"weighted" json:"weighted"`

	Vertices []VertexDoc `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Edges    []EdgeDoc   `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// VertexDoc declares a vertex and its optional label.
type VertexDoc struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
}

// EdgeDoc declares one edge. Directed overrides the document default and is
// only accepted in mixed documents.
type EdgeDoc struct {
	From     string `yaml:"from" json:"from"`
	To       string `yaml:"to" json:"to"`
	Weight   int64  `yaml:"weight,omitempty" json:"weight,omitempty"`
	Directed *bool  `yaml:"directed,omitempty" json:"directed,omitempty"`
}

// Options returns the core graph options matching the document policy.
func (d *Document) Options() []core.GraphOption {
	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Mixed {
		opts = append(opts, core.WithMixedEdges())
	}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	if d.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	if d.Weighted {
		opts = append(opts, core.WithWeighted())
	}

	return opts
}

// Build creates a core.Graph from the document. Vertices are added in
// declaration order, then edges; errors name the offending entry.
func (d *Document) Build() (*core.Graph, error) {
	g := core.NewGraph(d.Options()...)

	for i, v := range d.Vertices {
		if err := g.AddVertex(v.ID); err != nil {
			return nil, fmt.Errorf("Build: vertex #%d: %w", i, err)
		}
		if v.Label == "" {
			continue
		}
		if err := g.SetVertexMetadata(v.ID, LabelKey, v.Label); err != nil {
			return nil, fmt.Errorf("Build: vertex %q: %w", v.ID, err)
		}
	}

	for i, e := range d.Edges {
		var opts []core.EdgeOption
		if e.Directed != nil {
			opts = append(opts, core.WithEdgeDirected(*e.Directed))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight, opts...); err != nil {
			return nil, fmt.Errorf("Build: edge #%d %s-%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a document. Edge directedness is written per edge
// only when g is mixed.
func FromGraph(g *core.Graph) *Document {
	d := &Document{
		Directed: g.Directed(),
		Mixed:    g.MixedEdges(),
		Loops:    g.Looped(),
		Multi:    g.Multigraph(),
		Weighted: g.Weighted(),
	}

	for _, id := range g.Vertices() {
		v := VertexDoc{ID: id}
		if label, ok := g.VertexMetadata(id, LabelKey); ok {
			if s, ok := label.(string); ok {
				v.Label = s
			}
		}
		d.Vertices = append(d.Vertices, v)
	}

	for _, e := range g.Edges() {
		ed := EdgeDoc{From: e.From, To: e.To, Weight: e.Weight}
		if d.Mixed {
			directed := e.Directed
			ed.Directed = &directed
		}
		d.Edges = append(d.Edges, ed)
	}

	return d
}
