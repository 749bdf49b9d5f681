// Package importance_test validates ordering, stable tie-breaking and the
// capability probing of Rank.
package importance_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/featviz/importance"
)

// stubImportances satisfies ImportanceSource only.
type stubImportances struct{ v []float64 }

func (s stubImportances) Importances() []float64 { return s.v }

// stubCoefficients satisfies CoefficientSource only.
type stubCoefficients struct{ v []float64 }

func (s stubCoefficients) Coefficients() []float64 { return s.v }

// stubBoth satisfies both capabilities with different vectors.
type stubBoth struct{ imp, coef []float64 }

func (s stubBoth) Importances() []float64  { return s.imp }
func (s stubBoth) Coefficients() []float64 { return s.coef }

// stubNeither exposes no capability at all.
type stubNeither struct{}

func TestRank_DescendingByMagnitude(t *testing.T) {
	r, err := importance.Rank(stubImportances{v: []float64{0.1, 0.7, 0.2}})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 0}, r.Features)
	assert.Equal(t, []float64{0.7, 0.2, 0.1}, r.Values)
}

func TestRank_IsPermutation(t *testing.T) {
	r, err := importance.Rank(stubImportances{v: []float64{3, 1, 4, 1, 5, 9, 2, 6}})
	require.NoError(t, err)

	perm := append([]int(nil), r.Features...)
	sort.Ints(perm)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, perm)
}

func TestRank_TiesBreakByOriginalIndex(t *testing.T) {
	// Features 0 and 2 share an importance; 0 must come first.
	r, err := importance.Rank(stubImportances{v: []float64{0.5, 0.9, 0.5}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, r.Features)

	// All-equal vector degenerates to the identity permutation.
	r, err = importance.Rank(stubImportances{v: []float64{0.3, 0.3, 0.3, 0.3}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, r.Features)
}

func TestRank_RelativeVersusRawForNegativeCoefficients(t *testing.T) {
	model := stubCoefficients{v: []float64{-2.0, 0.5, 1.0}}

	// Relative (default): |-2| ranks first.
	r, err := importance.Rank(model)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, r.Features)

	// Raw: the negative coefficient sinks to the bottom.
	r, err = importance.Rank(model, importance.WithRaw())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, r.Features)
	assert.False(t, r.Relative)
}

func TestRank_PrefersImportancesOverCoefficients(t *testing.T) {
	model := stubBoth{
		imp:  []float64{0.0, 1.0},
		coef: []float64{1.0, 0.0},
	}

	r, err := importance.Rank(model)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, r.Features, "importances must win over coefficients")
}

func TestRank_NamesFollowTheOrdering(t *testing.T) {
	r, err := importance.Rank(
		stubImportances{v: []float64{0.2, 0.8}},
		importance.WithNames([]string{"alpha", "beta"}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta", "alpha"}, r.Names)
}

func TestRank_ValuesDoNotAliasModelSlice(t *testing.T) {
	v := []float64{0.4, 0.6}
	r, err := importance.Rank(stubImportances{v: v})
	require.NoError(t, err)

	v[0] = 99
	assert.Equal(t, []float64{0.6, 0.4}, r.Values)
}

func TestRank_Errors(t *testing.T) {
	_, err := importance.Rank(stubNeither{})
	require.ErrorIs(t, err, importance.ErrNoImportanceAttribute)

	_, err = importance.Rank(stubImportances{})
	require.ErrorIs(t, err, importance.ErrEmptyImportances)

	_, err = importance.Rank(
		stubImportances{v: []float64{1, 2}},
		importance.WithNames([]string{"only-one"}),
	)
	require.ErrorIs(t, err, importance.ErrNameCountMismatch)
}
