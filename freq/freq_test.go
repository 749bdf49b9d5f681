// Package freq_test covers ranking order, the count-conservation property
// and the vocabulary contract.
package freq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/featviz/dataset"
	"github.com/katalvlaran/featviz/freq"
	"github.com/katalvlaran/featviz/preprocess"
)

func TestCount_RanksByDescendingTotal(t *testing.T) {
	X := [][]float64{
		{1, 0, 3},
		{0, 2, 1},
		{1, 0, 2},
	}
	vocab := []string{"ant", "bee", "cat"}

	r, err := freq.Count(X, vocab)
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", "ant", "bee"}, r.Tokens)
	assert.Equal(t, []float64{6, 2, 2}, r.Totals, "tie between ant and bee keeps vocabulary order")
}

func TestCount_ConservesTotalMass(t *testing.T) {
	X := [][]float64{
		{2, 1, 0, 4},
		{0, 3, 1, 1},
	}
	r, err := freq.Count(X, []string{"a", "b", "c", "d"})
	require.NoError(t, err)

	var fromMatrix, fromRanking float64
	for _, row := range X {
		for _, v := range row {
			fromMatrix += v
		}
	}
	for _, v := range r.Totals {
		fromRanking += v
	}

	assert.Equal(t, fromMatrix, fromRanking)
}

func TestTop_TruncatesAndCopies(t *testing.T) {
	X := [][]float64{{5, 1, 3, 2}}
	r, err := freq.Count(X, []string{"a", "b", "c", "d"})
	require.NoError(t, err)

	top := r.Top(2)
	assert.Equal(t, []string{"a", "c"}, top.Tokens)
	assert.Equal(t, []float64{5, 3}, top.Totals)

	top.Totals[0] = -1
	assert.Equal(t, 5.0, r.Totals[0], "Top must not alias the parent ranking")

	assert.Equal(t, 4, r.Top(10).Len(), "oversized n clamps to the vocabulary")
	assert.Equal(t, 0, r.Top(-1).Len())
}

func TestCount_Errors(t *testing.T) {
	_, err := freq.Count(nil, nil)
	require.ErrorIs(t, err, freq.ErrEmptyInput)

	_, err = freq.Count([][]float64{{1, 2}}, []string{"only"})
	require.ErrorIs(t, err, freq.ErrVocabMismatch)
}

func TestFromDataset_BuiltinCorpus(t *testing.T) {
	ds, err := dataset.Load(dataset.HobbiesMini)
	require.NoError(t, err)

	counted, err := preprocess.Transform(ds, preprocess.Count)
	require.NoError(t, err)

	r, err := freq.FromDataset(counted)
	require.NoError(t, err)
	require.Equal(t, counted.Dim(), r.Len())

	for i := 1; i < r.Len(); i++ {
		assert.GreaterOrEqual(t, r.Totals[i-1], r.Totals[i], "totals must descend")
	}
}
