package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// classPalette is the fixed categorical palette. Label k always maps to
// entry k mod len(classPalette), so colors are stable across renders.
var classPalette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // blue
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}, // orange
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}, // green
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, // red
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}, // purple
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff}, // brown
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff}, // pink
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}, // gray
	{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff}, // olive
	{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff}, // cyan
}

// neutral is the single-series color for unlabeled data.
var neutral = color.RGBA{R: 0x41, G: 0x69, B: 0xe1, A: 0xff}

// Endpoints of the continuous ramp used when a target has more distinct
// values than the categorical palette can distinguish.
var (
	rampLow  = color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff} // light gray
	rampHigh = color.RGBA{R: 0x08, G: 0x30, B: 0x6b, A: 0xff} // dark blue
)

// continuousColor blends the ramp endpoints at position t ∈ [0,1].
func continuousColor(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	blend := func(a, b uint8) uint8 {
		return uint8(float64(a) + t*(float64(b)-float64(a)))
	}

	return color.RGBA{
		R: blend(rampLow.R, rampHigh.R),
		G: blend(rampLow.G, rampHigh.G),
		B: blend(rampLow.B, rampHigh.B),
		A: 0xff,
	}
}

// isContinuous reports whether the target carries more distinct values than
// the categorical palette distinguishes, in which case charts fall back to
// the continuous ramp.
func isContinuous(target []float64) bool {
	distinct := make(map[float64]struct{}, len(classPalette)+1)
	for _, v := range target {
		distinct[v] = struct{}{}
		if len(distinct) > len(classPalette) {
			return true
		}
	}

	return false
}

// targetRange returns the min and max of target; equal bounds mean every
// value maps to ramp position 0.
func targetRange(target []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range target {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// classColor maps a class index onto the palette.
func classColor(k int) color.RGBA {
	if k < 0 {
		k = -k
	}

	return classPalette[k%len(classPalette)]
}

// classGroups splits instance indices by their target label, returning the
// distinct labels in ascending order and the member indices per label.
// A nil target yields a single anonymous group holding every index.
func classGroups(n int, target []float64) ([]float64, [][]int) {
	if len(target) == 0 {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}

		return []float64{math.NaN()}, [][]int{all}
	}

	byLabel := make(map[float64][]int, 8)
	for i := 0; i < n; i++ {
		byLabel[target[i]] = append(byLabel[target[i]], i)
	}

	labels := make([]float64, 0, len(byLabel))
	for l := range byLabel {
		labels = append(labels, l)
	}
	sort.Float64s(labels)

	groups := make([][]int, len(labels))
	for k, l := range labels {
		groups[k] = byLabel[l]
	}

	return labels, groups
}

// legendName resolves the display name of a class: the configured name for
// its label when available, the numeric label otherwise.
func legendName(cfg *Options, label float64) string {
	if name, ok := cfg.Classes[label]; ok {
		return name
	}
	if math.IsNaN(label) {
		return ""
	}

	return fmt.Sprintf("class %g", label)
}
