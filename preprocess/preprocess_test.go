// Package preprocess_test exercises the column scalers, row normalizers,
// text vectorizers and the one-shot Transform dispatcher.
package preprocess_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/featviz/dataset"
	"github.com/katalvlaran/featviz/preprocess"
)

// ------------------------------------------------------------------------
// 1. Column scalers.
// ------------------------------------------------------------------------

func TestFitMinMax_HandComputed(t *testing.T) {
	X := [][]float64{{0, 10}, {5, 20}, {10, 30}}

	s, err := preprocess.FitMinMax(X)
	require.NoError(t, err)

	out, err := s.Transform(X)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {0.5, 0.5}, {1, 1}}, out)
}

func TestFitMinMax_ConstantColumnMapsToZero(t *testing.T) {
	X := [][]float64{{7, 1}, {7, 2}}

	s, err := preprocess.FitMinMax(X)
	require.NoError(t, err)

	out, err := s.Transform(X)
	require.NoError(t, err)
	assert.Equal(t, 0.0, out[0][0])
	assert.Equal(t, 0.0, out[1][0])
}

func TestFitMaxAbs_PreservesSign(t *testing.T) {
	X := [][]float64{{-4, 0}, {2, 0}}

	s, err := preprocess.FitMaxAbs(X)
	require.NoError(t, err)

	out, err := s.Transform(X)
	require.NoError(t, err)
	assert.Equal(t, -1.0, out[0][0])
	assert.Equal(t, 0.5, out[1][0])
	// All-zero column stays zero.
	assert.Equal(t, 0.0, out[0][1])
}

func TestFitStandard_ZeroMeanUnitStd(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}, {4}}

	s, err := preprocess.FitStandard(X)
	require.NoError(t, err)

	out, err := s.Transform(X)
	require.NoError(t, err)

	mean, sq := 0.0, 0.0
	for _, row := range out {
		mean += row[0]
	}
	mean /= float64(len(out))
	for _, row := range out {
		sq += (row[0] - mean) * (row[0] - mean)
	}
	assert.InDelta(t, 0.0, mean, 1e-12)
	assert.InDelta(t, 1.0, math.Sqrt(sq/float64(len(out))), 1e-12)
}

func TestFittedScaler_ReusedAcrossDatasets(t *testing.T) {
	s, err := preprocess.FitMinMax([][]float64{{0}, {10}})
	require.NoError(t, err)

	// Fitted state applies to new data, including values outside [min,max].
	out, err := s.Transform([][]float64{{5}, {20}})
	require.NoError(t, err)
	assert.Equal(t, 0.5, out[0][0])
	assert.Equal(t, 2.0, out[1][0])
}

func TestFittedScaler_DimensionMismatch(t *testing.T) {
	s, err := preprocess.FitMinMax([][]float64{{0, 1}})
	require.NoError(t, err)

	_, err = s.Transform([][]float64{{1, 2, 3}})
	require.ErrorIs(t, err, preprocess.ErrDimensionMismatch)
}

// ------------------------------------------------------------------------
// 2. Row normalizers.
// ------------------------------------------------------------------------

func TestNormalizeL1_UnitNorms(t *testing.T) {
	out, err := preprocess.NormalizeL1([][]float64{{1, -3}, {0, 0}})
	require.NoError(t, err)

	assert.InDelta(t, 0.25, out[0][0], 1e-12)
	assert.InDelta(t, -0.75, out[0][1], 1e-12)
	// Zero row passes through untouched.
	assert.Equal(t, []float64{0, 0}, out[1])
}

func TestNormalizeL2_UnitNorms(t *testing.T) {
	out, err := preprocess.NormalizeL2([][]float64{{3, 4}})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, out[0][0], 1e-12)
	assert.InDelta(t, 0.8, out[0][1], 1e-12)
}

// ------------------------------------------------------------------------
// 3. Text vectorizers.
// ------------------------------------------------------------------------

func TestTokenize_LowercasesAndSplits(t *testing.T) {
	assert.Equal(t,
		[]string{"go", "1", "21", "is", "here"},
		preprocess.Tokenize("Go 1.21 — is HERE!"))
}

func TestFitCount_VocabularyFirstSeenOrder(t *testing.T) {
	v, err := preprocess.FitCount([]string{"b a b", "a c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, v.Vocabulary())

	X, err := v.Transform([]string{"b a b", "a c"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 1, 0}, {0, 1, 1}}, X)
}

func TestFitCount_UnseenTokensIgnored(t *testing.T) {
	v, err := preprocess.FitCount([]string{"a b"})
	require.NoError(t, err)

	X, err := v.Transform([]string{"a z z"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}}, X)
}

func TestFitCount_EmptyVocabulary(t *testing.T) {
	_, err := preprocess.FitCount([]string{"...", "—"})
	require.ErrorIs(t, err, preprocess.ErrEmptyVocabulary)
}

func TestFitTFIDF_RowsAreL2Normalized(t *testing.T) {
	v, err := preprocess.FitTFIDF([]string{"a a b", "a c", "c d"})
	require.NoError(t, err)

	X, err := v.Transform([]string{"a a b", "a c", "c d"})
	require.NoError(t, err)

	for i, row := range X {
		norm := 0.0
		for _, x := range row {
			norm += x * x
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9, "row %d", i)
	}
}

func TestFitTFIDF_RareTokenOutweighsCommon(t *testing.T) {
	docs := []string{"a b", "a c", "a d"}
	v, err := preprocess.FitTFIDF(docs)
	require.NoError(t, err)

	X, err := v.Transform(docs)
	require.NoError(t, err)

	// In document 0, "b" (df=1) must carry more weight than "a" (df=3).
	vocab := v.Vocabulary()
	var ai, bi int
	for j, tok := range vocab {
		switch tok {
		case "a":
			ai = j
		case "b":
			bi = j
		}
	}
	assert.Greater(t, X[0][bi], X[0][ai])
}

// ------------------------------------------------------------------------
// 4. One-shot dispatcher.
// ------------------------------------------------------------------------

func TestTransform_PreservesRowCountAndMetadata(t *testing.T) {
	ds, err := dataset.New(
		[][]float64{{1, 2}, {3, 4}, {5, 6}},
		dataset.WithTarget([]float64{0, 1, 0}),
	)
	require.NoError(t, err)

	out, err := preprocess.Transform(ds, preprocess.Standard)
	require.NoError(t, err)
	assert.Equal(t, ds.Len(), out.Len())
	assert.Equal(t, ds.Dim(), out.Dim())
	assert.Equal(t, ds.Target(), out.Target())
}

func TestTransform_NoneIsIdentity(t *testing.T) {
	ds, err := dataset.New([][]float64{{1}})
	require.NoError(t, err)

	out, err := preprocess.Transform(ds, preprocess.None)
	require.NoError(t, err)
	assert.Same(t, ds, out)
}

func TestTransform_TextOnCorpusDerivesVocabularyNames(t *testing.T) {
	ds, err := dataset.FromDocuments([]string{"spam spam ham", "ham eggs"})
	require.NoError(t, err)

	out, err := preprocess.Transform(ds, preprocess.Count)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len())
	assert.Equal(t, []string{"spam", "ham", "eggs"}, out.FeatureNames())
	assert.Equal(t, [][]float64{{2, 1, 0}, {0, 1, 1}}, out.Features())
}

func TestTransform_KindMismatches(t *testing.T) {
	numeric, err := dataset.New([][]float64{{1}})
	require.NoError(t, err)
	corpus, err := dataset.FromDocuments([]string{"a"})
	require.NoError(t, err)

	_, err = preprocess.Transform(numeric, preprocess.TFIDF)
	require.ErrorIs(t, err, preprocess.ErrNeedCorpus)

	_, err = preprocess.Transform(corpus, preprocess.MinMax)
	require.ErrorIs(t, err, preprocess.ErrNeedNumeric)
}

func TestTransform_UnsupportedMethod(t *testing.T) {
	ds, err := dataset.New([][]float64{{1}})
	require.NoError(t, err)

	_, err = preprocess.Transform(ds, preprocess.Method(99))
	require.ErrorIs(t, err, preprocess.ErrUnsupportedMethod)
}

func TestParseMethod_NamesAndMinabsAlias(t *testing.T) {
	m, err := preprocess.ParseMethod("standard")
	require.NoError(t, err)
	assert.Equal(t, preprocess.Standard, m)

	m, err = preprocess.ParseMethod("minabs")
	require.NoError(t, err)
	assert.Equal(t, preprocess.MaxAbs, m)

	_, err = preprocess.ParseMethod("bogus")
	require.ErrorIs(t, err, preprocess.ErrUnsupportedMethod)
}
