package importance

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors returned by the importance package.
var (
	// ErrNoImportanceAttribute indicates a model exposing neither
	// Importances() nor Coefficients().
	ErrNoImportanceAttribute = errors.New("importance: model exposes neither importances nor coefficients")

	// ErrNameCountMismatch indicates feature names whose length differs
	// from the model's importance vector.
	ErrNameCountMismatch = errors.New("importance: feature name count differs from importance vector")

	// ErrEmptyImportances indicates a model yielding a zero-length vector.
	ErrEmptyImportances = errors.New("importance: model yields no importance values")
)

// ImportanceSource is the per-feature importance capability of a fitted
// model (e.g. impurity decrease in a tree ensemble).
type ImportanceSource interface {
	Importances() []float64
}

// CoefficientSource is the per-feature coefficient capability of a fitted
// model (e.g. linear weights).
type CoefficientSource interface {
	Coefficients() []float64
}

// Options configures Rank.
//
// Relative – sort by absolute magnitude (default). With raw sorting,
// large negative coefficients sink to the bottom instead of ranking high.
// Names    – optional display names, index-aligned with features.
type Options struct {
	Relative bool
	Names    []string
}

// Option is a functional option for configuring Rank.
type Option func(*Options)

// WithRaw sorts by signed magnitude instead of absolute magnitude.
func WithRaw() Option {
	return func(o *Options) { o.Relative = false }
}

// WithNames attaches display names, index-aligned with the model's
// feature order.
func WithNames(names []string) Option {
	return func(o *Options) { o.Names = append([]string(nil), names...) }
}

// DefaultOptions returns the documented defaults: relative ordering, no names.
func DefaultOptions() Options { return Options{Relative: true} }

// Ranking is the ordered view of a model's feature importances.
type Ranking struct {
	// Features is a permutation of 0..F-1: original feature indices in
	// ranked order, most important first.
	Features []int

	// Values holds the raw importance value of each ranked feature,
	// aligned with Features.
	Values []float64

	// Names holds display names aligned with Features; nil when unnamed.
	Names []string

	// Relative records the ordering key that was used.
	Relative bool
}

// Len reports the number of ranked features.
func (r *Ranking) Len() int { return len(r.Features) }

// Rank orders the features of a fitted model by importance.
//
// model must satisfy ImportanceSource or CoefficientSource; when it
// satisfies both, Importances() wins.
func Rank(model any, opts ...Option) (*Ranking, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Probe capabilities in preference order.
	var values []float64
	switch m := model.(type) {
	case ImportanceSource:
		values = m.Importances()
	case CoefficientSource:
		values = m.Coefficients()
	default:
		return nil, fmt.Errorf("%w: %T", ErrNoImportanceAttribute, model)
	}
	if len(values) == 0 {
		return nil, ErrEmptyImportances
	}
	if cfg.Names != nil && len(cfg.Names) != len(values) {
		return nil, fmt.Errorf("%w: %d names for %d values", ErrNameCountMismatch, len(cfg.Names), len(values))
	}

	// 2) Sort indices descending by the chosen key; ties break by original
	//    feature index ascending.
	key := func(i int) float64 {
		if cfg.Relative {
			return math.Abs(values[i])
		}

		return values[i]
	}
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ka, kb := key(order[a]), key(order[b])
		if ka != kb {
			return ka > kb
		}

		return order[a] < order[b]
	})

	// 3) Materialize the ranking, copying values so the model's slice
	//    cannot alias the result.
	r := &Ranking{
		Features: order,
		Values:   make([]float64, len(order)),
		Relative: cfg.Relative,
	}
	if cfg.Names != nil {
		r.Names = make([]string, len(order))
	}
	for pos, idx := range order {
		r.Values[pos] = values[idx]
		if r.Names != nil {
			r.Names[pos] = cfg.Names[idx]
		}
	}

	return r, nil
}
