package iso

import (
	"fmt"
	"log/slog"
)

// StrategyKind selects the permutation strategy used by New.
type StrategyKind int

const (
	// StrategyAuto is the equivalence-pruned strategy with DegreeComparator
	// chained ahead of the user vertex comparator. Default.
	StrategyAuto StrategyKind = iota

	// StrategyEquivalence is the equivalence-pruned strategy using only the
	// user vertex comparator.
	StrategyEquivalence

	// StrategyPermutation tries every ordering of graph2's vertices.
	StrategyPermutation
)

// String returns the lower-case name of k.
func (k StrategyKind) String() string {
	switch k {
	case StrategyAuto:
		return "auto"
	case StrategyEquivalence:
		return "equivalence"
	case StrategyPermutation:
		return "permutation"
	default:
		return fmt.Sprintf("StrategyKind(%d)", int(k))
	}
}

// ParseStrategy maps a name produced by StrategyKind.String back to its kind.
func ParseStrategy(name string) (StrategyKind, error) {
	for _, k := range []StrategyKind{StrategyAuto, StrategyEquivalence, StrategyPermutation} {
		if k.String() == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseStrategy: %q: %w", name, ErrUnknownStrategy)
}

// Option configures New.
type Option func(*Options)

// Options holds the configuration resolved by New.
type Options struct {
	// Strategy selects the permutation strategy. Default StrategyAuto.
	Strategy StrategyKind

	// VertexComparator filters vertex pairings; nil means AlwaysEquivalent.
	VertexComparator VertexComparator

	// EdgeComparator verifies edge pairings; nil disables edge verification.
	EdgeComparator EdgeComparator

	// Logger receives debug logs; nil keeps the inspector silent.
	Logger *slog.Logger
}

// DefaultOptions returns StrategyAuto with no comparators and no logger.
func DefaultOptions() Options {
	return Options{Strategy: StrategyAuto}
}

// WithStrategy selects the permutation strategy.
func WithStrategy(k StrategyKind) Option {
	return func(o *Options) { o.Strategy = k }
}

// WithVertexComparator installs a vertex comparator.
func WithVertexComparator(cmp VertexComparator) Option {
	return func(o *Options) { o.VertexComparator = cmp }
}

// WithEdgeComparator installs an edge comparator. Passing nil disables edge
// verification, which is also the default.
func WithEdgeComparator(cmp EdgeComparator) Option {
	return func(o *Options) { o.EdgeComparator = cmp }
}

// WithLogger installs a structured logger for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// New validates both graphs, selects a strategy and returns an Inspector.
//
// Errors:
//   - ErrGraphNil:              g1 or g2 is nil.
//   - ErrMultigraphUnsupported: either graph permits parallel edges.
//   - ErrUnknownStrategy:       invalid Options.Strategy.
//   - ErrVertexNotRanked:       graph1 reports an edge whose endpoint is not one of its vertices.
func New(g1, g2 Graph, opts ...Option) (*Inspector, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateGraphs(g1, g2); err != nil {
		return nil, err
	}

	var s Strategy
	switch o.Strategy {
	case StrategyAuto:
		s = NewEquivalenceStrategy(g1, g2, ChainVertexComparators(DegreeComparator, o.VertexComparator))
	case StrategyEquivalence:
		s = NewEquivalenceStrategy(g1, g2, o.VertexComparator)
	case StrategyPermutation:
		s = NewPermutationStrategy(g1, g2, o.VertexComparator)
	default:
		return nil, fmt.Errorf("New: %s: %w", o.Strategy, ErrUnknownStrategy)
	}

	return newInspector(g1, g2, s, o.EdgeComparator, o.Logger)
}

// NewWithStrategy builds an Inspector around a caller-supplied Strategy.
// Options.Strategy and Options.VertexComparator are ignored; the strategy
// owns vertex comparison.
func NewWithStrategy(g1, g2 Graph, s Strategy, opts ...Option) (*Inspector, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateGraphs(g1, g2); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("NewWithStrategy: nil strategy: %w", ErrUnknownStrategy)
	}

	return newInspector(g1, g2, s, o.EdgeComparator, o.Logger)
}

// validateGraphs rejects nil graphs and graph kinds permitting parallel edges.
func validateGraphs(g1, g2 Graph) error {
	for i, g := range []Graph{g1, g2} {
		if isNilGraph(g) {
			return fmt.Errorf("graph%d: %w", i+1, ErrGraphNil)
		}
		if g.Multigraph() {
			return fmt.Errorf("graph%d: %w", i+1, ErrMultigraphUnsupported)
		}
	}

	return nil
}

// nilable is implemented by pointer-backed graphs that can detect a typed nil.
type nilable interface{ IsNil() bool }

func isNilGraph(g Graph) bool {
	if g == nil {
		return true
	}
	if n, ok := g.(nilable); ok {
		return n.IsNil()
	}

	return false
}
