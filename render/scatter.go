package render

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// circleSegments controls how finely the anchor circle is approximated.
const circleSegments = 128

// Scatter draws a 2-D point cloud colored by class and writes the PNG to w.
//
// Points from radial, principal-component, manifold and t-SNE layouts all
// arrive as (x, y) pairs; the target slice (nil for unlabeled data) selects
// the color of each point and populates the legend. WithAnchors adds the
// radial frame: the unit circle plus one labeled anchor per feature.
func Scatter(w io.Writer, points [][2]float64, target []float64, opts ...Option) error {
	cfg := buildOptions(opts)
	if len(points) == 0 {
		return ErrEmptyResult
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	// 1) Continuous targets (more distinct values than the palette) get a
	//    single series colored along the ramp instead of per-class series.
	if len(target) > 0 && isContinuous(target) {
		if err := addContinuous(p, points, target); err != nil {
			return err
		}
		if len(cfg.anchors) > 0 {
			if err := addAnchors(p, &cfg); err != nil {
				return err
			}
		}

		return writePNG(p, w, &cfg)
	}

	// 2) One scatter series per class, so each gets its own color and
	//    legend entry.
	labels, groups := classGroups(len(points), target)
	for k, members := range groups {
		pts := make(plotter.XYs, len(members))
		for t, i := range members {
			pts[t] = plotter.XY{X: points[i][0], Y: points[i][1]}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("render: scatter series: %w", err)
		}
		s.GlyphStyle.Radius = vg.Points(3)
		if len(target) == 0 {
			s.GlyphStyle.Color = neutral
		} else {
			s.GlyphStyle.Color = classColor(k)
		}
		p.Add(s)
		if name := legendName(&cfg, labels[k]); name != "" {
			p.Legend.Add(name, s)
		}
	}

	// 3) Optional radial frame: unit circle, anchor glyphs, anchor labels.
	if len(cfg.anchors) > 0 {
		if err := addAnchors(p, &cfg); err != nil {
			return err
		}
	}

	return writePNG(p, w, &cfg)
}

// addContinuous draws all points as one series whose glyph color follows
// the target value along the ramp.
func addContinuous(p *plot.Plot, points [][2]float64, target []float64) error {
	pts := make(plotter.XYs, len(points))
	for i, pt := range points {
		pts[i] = plotter.XY{X: pt[0], Y: pt[1]}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("render: scatter series: %w", err)
	}

	lo, hi := targetRange(target)
	span := hi - lo
	base := s.GlyphStyle
	base.Radius = vg.Points(3)
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		style := base
		t := 0.0
		if span > 0 {
			t = (target[i] - lo) / span
		}
		style.Color = continuousColor(t)

		return style
	}
	p.Add(s)

	return nil
}

// addAnchors draws the unit circle and one labeled square glyph per anchor.
func addAnchors(p *plot.Plot, cfg *Options) error {
	circle := make(plotter.XYs, circleSegments+1)
	for i := range circle {
		theta := 2 * math.Pi * float64(i) / circleSegments
		circle[i] = plotter.XY{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	ring, err := plotter.NewLine(circle)
	if err != nil {
		return fmt.Errorf("render: anchor circle: %w", err)
	}
	ring.LineStyle.Color = classPalette[7] // gray
	p.Add(ring)

	pts := make(plotter.XYs, len(cfg.anchors))
	for i, a := range cfg.anchors {
		pts[i] = plotter.XY{X: a[0], Y: a[1]}
	}
	glyphs, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("render: anchor glyphs: %w", err)
	}
	glyphs.GlyphStyle.Shape = draw.BoxGlyph{}
	glyphs.GlyphStyle.Radius = vg.Points(4)
	p.Add(glyphs)

	if len(cfg.anchorNames) == len(cfg.anchors) {
		// Nudge each label outward so it clears its glyph.
		tagged := make(plotter.XYs, len(cfg.anchors))
		for i, a := range cfg.anchors {
			tagged[i] = plotter.XY{X: a[0] * 1.08, Y: a[1] * 1.08}
		}
		names, err := plotter.NewLabels(plotter.XYLabels{XYs: tagged, Labels: cfg.anchorNames})
		if err != nil {
			return fmt.Errorf("render: anchor labels: %w", err)
		}
		p.Add(names)
	}

	return nil
}

// writePNG encodes the finished plot onto w at the configured size.
func writePNG(p *plot.Plot, w io.Writer, cfg *Options) error {
	wt, err := p.WriterTo(cfg.Width, cfg.Height, "png")
	if err != nil {
		return fmt.Errorf("render: encode: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}

	return nil
}
