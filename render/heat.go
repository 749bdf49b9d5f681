package render

import (
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/featviz/rank"
)

// heatShades is the number of discrete colors in the heat palette.
const heatShades = 255

// lowerTriangle adapts a pairwise score matrix to plotter.GridXYZ,
// exposing only the lower triangle; cells above the diagonal report NaN,
// which the heat map leaves blank.
type lowerTriangle struct {
	m *rank.Matrix
}

func (g lowerTriangle) Dims() (c, r int) { return g.m.Dim(), g.m.Dim() }

func (g lowerTriangle) X(c int) float64 { return float64(c) }

func (g lowerTriangle) Y(r int) float64 { return float64(r) }

func (g lowerTriangle) Z(c, r int) float64 {
	if c > r {
		return math.NaN()
	}

	return g.m.At(r, c)
}

// HeatGrid draws the lower triangle of a pairwise score matrix as a heat
// map and writes the PNG to w. Row r, column c shows the score of feature
// pair (r, c); the blank upper triangle avoids repeating the symmetric
// half.
func HeatGrid(w io.Writer, m *rank.Matrix, opts ...Option) error {
	cfg := buildOptions(opts)
	if m == nil || m.Dim() == 0 {
		return ErrEmptyResult
	}

	p := plot.New()
	p.Title.Text = cfg.Title

	// Diverging palette centered on zero suits both correlation and
	// covariance scores.
	heat := plotter.NewHeatMap(lowerTriangle{m: m}, moreland.SmoothBlueRed().Palette(heatShades))
	if m.Algorithm == rank.Pearson {
		heat.Min, heat.Max = -1, 1
	}
	p.Add(heat)

	if names := m.FeatureNames; len(names) == m.Dim() {
		ticks := make([]plot.Tick, len(names))
		for i, name := range names {
			ticks[i] = plot.Tick{Value: float64(i), Label: name}
		}
		p.X.Tick.Marker = plot.ConstantTicks(ticks)
		p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	}

	return writePNG(p, w, &cfg)
}
