package render

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// barPixelsPerPoint converts the vg-based canvas size onto go-chart's
// pixel dimensions at the usual 96 dpi.
const barPixelsPerPoint = 96.0 / 72.0

// Bar draws one vertical bar per label, in the given order, and writes the
// PNG to w. Callers pass pre-ranked values (token frequencies, feature
// importances), so the chart reads left to right from largest to smallest.
func Bar(w io.Writer, labels []string, values []float64, opts ...Option) error {
	cfg := buildOptions(opts)
	if len(values) == 0 {
		return ErrEmptyResult
	}
	if len(labels) != len(values) {
		return fmt.Errorf("%w: %d labels for %d values", ErrEmptyResult, len(labels), len(values))
	}

	fill := drawing.Color{R: neutral.R, G: neutral.G, B: neutral.B, A: neutral.A}
	bars := make([]chart.Value, len(values))
	for i, v := range values {
		bars[i] = chart.Value{
			Label: labels[i],
			Value: v,
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		}
	}

	graph := chart.BarChart{
		Title:    cfg.Title,
		Width:    int(float64(cfg.Width) * barPixelsPerPoint),
		Height:   int(float64(cfg.Height) * barPixelsPerPoint),
		BarWidth: 30,
		Bars:     bars,
		XAxis:    chart.Style{TextRotationDegrees: 45},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render: bar chart: %w", err)
	}

	return nil
}
