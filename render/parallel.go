package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/featviz/parallel"
)

// ParallelCoordinates draws one polyline per kept instance across the
// layout's vertical axes and writes the PNG to w. Axis i sits at x = i,
// labeled with the layout's feature names when present.
func ParallelCoordinates(w io.Writer, layout *parallel.Layout, opts ...Option) error {
	cfg := buildOptions(opts)
	if layout == nil || layout.Rows() == 0 {
		return ErrEmptyResult
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.Y.Label.Text = "normalized value"
	p.Y.Min, p.Y.Max = 0, 1
	if names := layout.FeatureNames; len(names) == layout.Axes() {
		p.NominalX(names...)
	}

	// 1) Vertical axis guides, one per feature.
	for j := 0; j < layout.Axes(); j++ {
		axis, err := plotter.NewLine(plotter.XYs{
			{X: float64(j), Y: 0},
			{X: float64(j), Y: 1},
		})
		if err != nil {
			return fmt.Errorf("render: axis guide: %w", err)
		}
		axis.LineStyle.Color = classPalette[7] // gray
		axis.LineStyle.Width = vg.Points(0.5)
		p.Add(axis)
	}

	// 2) One polyline per instance, colored by class. Lines are grouped by
	//    label so every class contributes a single legend entry.
	labels, groups := classGroups(layout.Rows(), layout.Target)
	for k, members := range groups {
		var legendLine *plotter.Line
		for _, i := range members {
			pts := make(plotter.XYs, layout.Axes())
			for j, v := range layout.Lines[i] {
				pts[j] = plotter.XY{X: float64(j), Y: v}
			}
			line, err := plotter.NewLine(pts)
			if err != nil {
				return fmt.Errorf("render: polyline: %w", err)
			}
			if len(layout.Target) == 0 {
				line.LineStyle.Color = neutral
			} else {
				line.LineStyle.Color = classColor(k)
			}
			p.Add(line)
			legendLine = line
		}
		if name := legendName(&cfg, labels[k]); name != "" && legendLine != nil {
			p.Legend.Add(name, legendLine)
		}
	}

	return writePNG(p, w, &cfg)
}
