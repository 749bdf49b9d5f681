package preprocess

import "errors"

// Sentinel errors returned by the preprocess package.
var (
	// ErrUnsupportedMethod indicates a method outside the enumerated set.
	ErrUnsupportedMethod = errors.New("preprocess: unsupported method")

	// ErrEmptyVocabulary indicates that text vectorization produced zero
	// columns (no token survived tokenization).
	ErrEmptyVocabulary = errors.New("preprocess: text vectorization yields empty vocabulary")

	// ErrDimensionMismatch indicates that a fitted transformer received a
	// matrix whose column count differs from the fitting data.
	ErrDimensionMismatch = errors.New("preprocess: column count differs from fitted data")

	// ErrNeedCorpus indicates a text method applied to a numeric dataset.
	ErrNeedCorpus = errors.New("preprocess: method requires a document corpus")

	// ErrNeedNumeric indicates a numeric method applied to a raw corpus.
	ErrNeedNumeric = errors.New("preprocess: method requires a numeric feature matrix")

	// ErrEmptyInput indicates an empty matrix or corpus.
	ErrEmptyInput = errors.New("preprocess: empty input")
)

// Method enumerates the supported preprocessing transforms.
type Method int

const (
	// None leaves the dataset untouched.
	None Method = iota

	// MinMax scales each column into [0,1] by its observed range.
	MinMax

	// MaxAbs scales each column by its maximum absolute value.
	MaxAbs

	// Standard centers each column to zero mean and unit variance.
	Standard

	// L1 divides each row by its 1-norm.
	L1

	// L2 divides each row by its 2-norm.
	L2

	// TFIDF vectorizes a corpus into idf-weighted, L2-normalized counts.
	TFIDF

	// Count vectorizes a corpus into raw token counts.
	Count
)

// methodNames is index-aligned with the Method constants.
var methodNames = [...]string{"none", "minmax", "maxabs", "standard", "l1", "l2", "tfidf", "count"}

// String returns the canonical lower-case name of the method.
func (m Method) String() string {
	if m < None || int(m) >= len(methodNames) {
		return "unknown"
	}

	return methodNames[m]
}

// ParseMethod resolves a canonical name back to its Method. The historical
// spelling "minabs" is accepted as an alias for MaxAbs.
func ParseMethod(name string) (Method, error) {
	if name == "minabs" {
		return MaxAbs, nil
	}
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}

	return None, ErrUnsupportedMethod
}
