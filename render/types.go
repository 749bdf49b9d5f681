package render

import (
	"errors"

	"gonum.org/v1/plot/vg"
)

// Sentinel errors returned by the render package.
var (
	// ErrEmptyResult indicates an analyzer result with nothing to draw.
	ErrEmptyResult = errors.New("render: empty analyzer result")

	// ErrBadSize indicates a non-positive canvas dimension.
	ErrBadSize = errors.New("render: canvas dimensions must be positive")
)

// Default canvas sizes, in points (1/72 inch).
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// Options configures a single chart.
//
// Title        – drawn above the plot area; empty means no title.
// Width/Height – canvas size in points.
// Classes      – legend names keyed by class label; labels without an entry
// fall back to a numeric legend entry.
type Options struct {
	Title   string
	Width   vg.Length
	Height  vg.Length
	Classes map[float64]string

	// anchors and anchorNames carry the optional feature-anchor overlay
	// for Scatter.
	anchors     [][2]float64
	anchorNames []string
}

// Option is a functional option for configuring a chart.
type Option func(*Options)

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithSize sets the canvas size in points. Panics on non-positive
// dimensions: programmer error.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(ErrBadSize.Error())
	}

	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithClasses sets legend names keyed by class label, as carried by
// dataset.ClassNames.
func WithClasses(names map[float64]string) Option {
	return func(o *Options) {
		o.Classes = make(map[float64]string, len(names))
		for k, v := range names {
			o.Classes[k] = v
		}
	}
}

// WithAnchors overlays labeled anchor points and the unit circle on a
// Scatter chart — the frame of a radial layout. Ignored by other charts.
func WithAnchors(anchors [][2]float64, names []string) Option {
	return func(o *Options) {
		o.anchors = anchors
		o.anchorNames = names
	}
}

// DefaultOptions returns the documented defaults: untitled 6×6-inch canvas.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth, Height: DefaultHeight}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
