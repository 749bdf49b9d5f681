package manifold

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/featviz/dataset"
)

// Embedding is the 2-D manifold projection of a dataset. It is a pure
// value: renderers read it, nothing mutates it.
type Embedding struct {
	// Points holds one (x, y) pair per instance, in row order.
	Points [][2]float64

	// Target carries the dataset's labels for class coloring; nil when
	// unlabeled.
	Target []float64
}

// Rows reports the number of embedded instances.
func (e *Embedding) Rows() int { return len(e.Points) }

// Embed computes the isomap embedding of ds.
//
// The neighborhood size trades locality against connectivity: small k keeps
// the geodesics faithful to the manifold but risks ErrDisconnected on
// sparse data.
func Embed(ds *dataset.Dataset, opts ...Option) (*Embedding, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if ds == nil || ds.Len() == 0 {
		return nil, ErrInsufficientSamples
	}
	n := ds.Len()
	if ds.Dim() == 0 {
		return nil, ErrNoFeatures
	}
	if n <= cfg.Neighbors {
		return nil, fmt.Errorf("%w: N=%d, k=%d", ErrInsufficientSamples, n, cfg.Neighbors)
	}

	X := ds.Features()

	// 1) Pairwise Euclidean distances.
	D := pairwiseDistances(X)

	// 2) Symmetrized k-nearest-neighbor adjacency.
	adj := neighborGraph(D, cfg.Neighbors)

	// 3) Geodesic distance matrix: Dijkstra from every vertex.
	G := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		dist := shortestFrom(i, adj)
		for j := i + 1; j < n; j++ {
			if math.IsInf(dist[j], 1) {
				return nil, fmt.Errorf("%w: no path between instances %d and %d (k=%d)", ErrDisconnected, i, j, cfg.Neighbors)
			}
			G.SetSym(i, j, dist[j])
		}
	}

	// 4) Classical MDS on the geodesic matrix.
	points, err := classicalMDS(G)
	if err != nil {
		return nil, err
	}

	return &Embedding{Points: points, Target: ds.Target()}, nil
}

// pairwiseDistances returns the full N×N Euclidean distance matrix of X.
func pairwiseDistances(X [][]float64) [][]float64 {
	n := len(X)
	D := make([][]float64, n)
	for i := range D {
		D[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := 0.0
			for c := range X[i] {
				d := X[i][c] - X[j][c]
				s += d * d
			}
			d := math.Sqrt(s)
			D[i][j] = d
			D[j][i] = d
		}
	}

	return D
}

// neighborGraph links each vertex to its k nearest neighbors and
// symmetrizes the result: the edge i–j exists when either endpoint
// selected the other, weighted by the Euclidean distance.
func neighborGraph(D [][]float64, k int) [][]edge {
	n := len(D)
	linked := make([]map[int]bool, n)
	for i := range linked {
		linked[i] = make(map[int]bool, 2*k)
	}

	order := make([]int, n)
	for i := 0; i < n; i++ {
		for j := range order {
			order[j] = j
		}
		// Sort candidates by distance from i; ties break on index for
		// determinism. i itself sits at distance 0 and is skipped below.
		sort.Slice(order, func(a, b int) bool {
			da, db := D[i][order[a]], D[i][order[b]]
			if da != db {
				return da < db
			}

			return order[a] < order[b]
		})

		picked := 0
		for _, j := range order {
			if j == i {
				continue
			}
			linked[i][j] = true
			linked[j][i] = true
			picked++
			if picked == k {
				break
			}
		}
	}

	adj := make([][]edge, n)
	for i := range linked {
		neighbors := make([]int, 0, len(linked[i]))
		for j := range linked[i] {
			neighbors = append(neighbors, j)
		}
		sort.Ints(neighbors)
		adj[i] = make([]edge, len(neighbors))
		for t, j := range neighbors {
			adj[i][t] = edge{to: j, w: D[i][j]}
		}
	}

	return adj
}

// classicalMDS recovers 2-D coordinates from the geodesic distance matrix:
// B = −½·J·D²·J is double-centered, then the two leading eigenpairs give
// the coordinates x_i = v_i·√λ.
func classicalMDS(G *mat.SymDense) ([][2]float64, error) {
	n := G.SymmetricDim()

	// 1) Double-center the squared distances.
	rowMean := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := G.At(i, j)
			rowMean[i] += d * d
		}
		rowMean[i] /= float64(n)
		total += rowMean[i]
	}
	total /= float64(n)

	B := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			d := G.At(i, j)
			B.SetSym(i, j, -0.5*(d*d-rowMean[i]-rowMean[j]+total))
		}
	}

	// 2) Eigendecomposition of the centered Gram matrix.
	var eig mat.EigenSym
	if ok := eig.Factorize(B, true); !ok {
		return nil, ErrDecomposition
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// 3) Eigenvalues come back ascending; the last two are the leading
	//    pair. Negative eigenvalues (numerical noise from non-Euclidean
	//    geodesics) collapse to a zero coordinate.
	points := make([][2]float64, n)
	for axis := 0; axis < 2; axis++ {
		idx := n - 1 - axis
		lambda := values[idx]
		if lambda < 0 {
			lambda = 0
		}
		scale := math.Sqrt(lambda)
		for i := 0; i < n; i++ {
			points[i][axis] = vectors.At(i, idx) * scale
		}
	}

	return points, nil
}
