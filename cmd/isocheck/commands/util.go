package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isomorph/core"
	"github.com/katalvlaran/isomorph/graphio"
	"github.com/katalvlaran/isomorph/iso"
)

// matchFlags are shared by inspect and stats.
type matchFlags struct {
	strategy     string
	matchLabels  bool
	labelKey     string
	matchWeights bool
	limit        int
	output       string
}

func (f *matchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.strategy, "strategy", iso.StrategyAuto.String(), "search strategy: auto, equivalence or permutation")
	cmd.Flags().BoolVar(&f.matchLabels, "match-labels", false, "only map vertices with equal labels")
	cmd.Flags().StringVar(&f.labelKey, "label-key", graphio.LabelKey, "vertex metadata key compared by --match-labels")
	cmd.Flags().BoolVar(&f.matchWeights, "match-weights", false, "only map edges with equal weights")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "stop after N relations (0: all)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "text", "output format: text or yaml")
}

func (f *matchFlags) reset() {
	*f = matchFlags{strategy: iso.StrategyAuto.String(), labelKey: graphio.LabelKey, output: "text"}
}

func (f *matchFlags) validate() error {
	if f.output != "text" && f.output != "yaml" {
		return fmt.Errorf("unknown output format %q, want text or yaml", f.output)
	}
	if f.limit < 0 {
		return fmt.Errorf("limit must be >= 0, got %d", f.limit)
	}

	return nil
}

// session is a prepared comparison of two loaded graphs.
type session struct {
	g1, g2     *core.Graph
	kind       iso.StrategyKind
	inspector  *iso.Inspector
	groupSizes []int // nil for the permutation strategy
}

// loadPair loads both graph documents.
func loadPair(path1, path2 string) (*core.Graph, *core.Graph, error) {
	g1, err := graphio.LoadGraph(path1)
	if err != nil {
		return nil, nil, err
	}
	g2, err := graphio.LoadGraph(path2)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("graphs loaded",
		"g1", path1, "v1", g1.VertexCount(), "e1", g1.EdgeCount(),
		"g2", path2, "v2", g2.VertexCount(), "e2", g2.EdgeCount())

	return g1, g2, nil
}

// newSession builds the inspector selected by f. The equivalence strategies
// are constructed here so their group sizes can be reported.
func newSession(f *matchFlags, path1, path2 string) (*session, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	kind, err := iso.ParseStrategy(f.strategy)
	if err != nil {
		return nil, err
	}
	g1, g2, err := loadPair(path1, path2)
	if err != nil {
		return nil, err
	}

	var vcmp iso.VertexComparator
	if f.matchLabels {
		vcmp = iso.VertexMetadataComparator(f.labelKey)
	}
	opts := []iso.Option{iso.WithLogger(logger)}
	if f.matchWeights {
		opts = append(opts, iso.WithEdgeComparator(iso.EdgeWeightComparator))
	}

	s := &session{g1: g1, g2: g2, kind: kind}
	switch kind {
	case iso.StrategyPermutation:
		s.inspector, err = iso.New(g1, g2, append(opts, iso.WithStrategy(kind), iso.WithVertexComparator(vcmp))...)
	default:
		if kind == iso.StrategyAuto {
			vcmp = iso.ChainVertexComparators(iso.DegreeComparator, vcmp)
		}
		eq := iso.NewEquivalenceStrategy(g1, g2, vcmp)
		s.inspector, err = iso.NewWithStrategy(g1, g2, eq, opts...)
		if err == nil {
			s.groupSizes = eq.GroupSizes()
		}
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

// collect pulls up to limit relations (0: all).
func (s *session) collect(limit int) []*iso.Relation {
	var out []*iso.Relation
	for rel := range s.inspector.All() {
		out = append(out, rel)
		if limit > 0 && len(out) >= limit {
			break
		}
	}

	return out
}
