package preprocess

import (
	"fmt"

	"github.com/katalvlaran/featviz/dataset"
)

// Transform applies method to ds in one shot (fit on ds, transform ds) and
// returns a derived Dataset; ds itself is never modified.
//
// Numeric methods require a numeric dataset and preserve both row and
// column counts. Text methods require a corpus dataset and derive the
// column count from the fitted vocabulary, which also becomes the derived
// dataset's feature names.
func Transform(ds *dataset.Dataset, method Method) (*dataset.Dataset, error) {
	switch method {
	case None:
		return ds, nil
	case MinMax, MaxAbs, Standard, L1, L2:
		return transformNumeric(ds, method)
	case TFIDF, Count:
		return transformText(ds, method)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMethod, method)
	}
}

func transformNumeric(ds *dataset.Dataset, method Method) (*dataset.Dataset, error) {
	if ds.IsCorpus() {
		return nil, fmt.Errorf("%w: %s", ErrNeedNumeric, method)
	}

	X := ds.Features()
	var (
		out [][]float64
		err error
	)
	switch method {
	case MinMax:
		var s *MinMaxScaler
		if s, err = FitMinMax(X); err == nil {
			out, err = s.Transform(X)
		}
	case MaxAbs:
		var s *MaxAbsScaler
		if s, err = FitMaxAbs(X); err == nil {
			out, err = s.Transform(X)
		}
	case Standard:
		var s *StandardScaler
		if s, err = FitStandard(X); err == nil {
			out, err = s.Transform(X)
		}
	case L1:
		out, err = NormalizeL1(X)
	case L2:
		out, err = NormalizeL2(X)
	}
	if err != nil {
		return nil, err
	}

	return ds.WithFeatures(out, nil)
}

func transformText(ds *dataset.Dataset, method Method) (*dataset.Dataset, error) {
	if !ds.IsCorpus() {
		return nil, fmt.Errorf("%w: %s", ErrNeedCorpus, method)
	}

	docs := ds.Documents()
	var (
		out   [][]float64
		vocab []string
		err   error
	)
	switch method {
	case Count:
		var v *CountVectorizer
		if v, err = FitCount(docs); err == nil {
			vocab = v.Vocabulary()
			out, err = v.Transform(docs)
		}
	case TFIDF:
		var v *TFIDFVectorizer
		if v, err = FitTFIDF(docs); err == nil {
			vocab = v.Vocabulary()
			out, err = v.Transform(docs)
		}
	}
	if err != nil {
		return nil, err
	}

	return ds.WithFeatures(out, vocab)
}
