// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package plotting

import (
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/go-a2a/plotmcp/types"
)

// DefaultMarkerSize is the scatter marker area in points squared.
const DefaultMarkerSize = 36.0

// pairs zips xs and ys, dropping pairs with a non-finite coordinate. It
// returns the indices of the kept pairs.
func pairs(xs, ys []float64) ([]int, plotter.XYs, error) {
	if len(xs) != len(ys) {
		return nil, nil, types.InvalidArgument("y", "has %d values but x has %d", len(ys), len(xs))
	}
	idx := make([]int, 0, len(xs))
	xys := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			continue
		}
		idx = append(idx, i)
		xys = append(xys, plotter.XY{X: xs[i], Y: ys[i]})
	}
	if len(xys) == 0 {
		return nil, nil, types.InvalidArgument("x", "no finite (x, y) pairs to plot")
	}
	return idx, xys, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Line draws ys against xs as a 2pt line.
func Line(a *Axes, xs, ys []float64, style types.StyleOptions) error {
	_, xys, err := pairs(xs, ys)
	if err != nil {
		return err
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = WithAlpha(plotutil.Color(0), style.AlphaOr(1))
	a.Add(l)
	return nil
}

// Scatter draws one circular marker per point.
//
// sizes holds marker areas in points squared, either one for every point or a
// single value for all of them; nil uses [DefaultMarkerSize]. values, when not
// nil, colors the markers through the style colormap and adds a color bar.
func Scatter(a *Axes, xs, ys, sizes, values []float64, style types.StyleOptions) error {
	idx, xys, err := pairs(xs, ys)
	if err != nil {
		return err
	}

	switch len(sizes) {
	case 0:
		sizes = []float64{DefaultMarkerSize}
	case 1, len(xs):
	default:
		return types.InvalidArgument("size", "has %d values but x has %d", len(sizes), len(xs))
	}
	for _, s := range sizes {
		if s < 0 {
			return types.InvalidArgument("size", "marker sizes must not be negative, got %g", s)
		}
	}
	if values != nil && len(values) != len(xs) {
		return types.InvalidArgument("color", "has %d values but x has %d", len(values), len(xs))
	}

	var cm palette.ColorMap
	if values != nil {
		if cm, err = Colormap(style.Colormap); err != nil {
			return err
		}
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, k := range idx {
			if v := values[k]; finite(v) {
				lo, hi = min(lo, v), max(hi, v)
			}
		}
		SetRange(cm, lo, hi)
		a.SetColorBar(cm)
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	alpha := style.AlphaOr(1)
	base := plotutil.Color(0)
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		k := idx[i]
		area := sizes[0]
		if len(sizes) > 1 {
			area = sizes[k]
		}
		clr := base
		if cm != nil {
			clr = ColorAt(cm, values[k])
		}
		return draw.GlyphStyle{
			Color:  WithAlpha(clr, alpha),
			Radius: vg.Points(math.Sqrt(max(area, 0)) / 2),
			Shape:  draw.CircleGlyph{},
		}
	}
	a.Add(s)
	return nil
}

// Bar draws one bar per category. Missing heights draw as zero.
func Bar(a *Axes, categories []string, heights []float64, horizontal bool, style types.StyleOptions) error {
	if len(categories) != len(heights) {
		return types.InvalidArgument("y", "has %d values but x has %d", len(heights), len(categories))
	}
	if len(heights) == 0 {
		return types.InvalidArgument("y", "no bars to plot")
	}

	vs := make(plotter.Values, len(heights))
	for i, h := range heights {
		if finite(h) {
			vs[i] = h
		}
	}

	span := a.width
	if horizontal {
		span = a.height
	}
	b, err := plotter.NewBarChart(vs, slotWidth(span, len(vs)))
	if err != nil {
		return err
	}
	b.Horizontal = horizontal
	b.Color = WithAlpha(plotutil.Color(0), style.AlphaOr(1))
	b.LineStyle.Width = 0
	a.Add(b)

	if horizontal {
		a.Plot.NominalY(categories...)
	} else {
		a.Plot.NominalX(categories...)
	}
	return nil
}

// slotWidth returns the width of one of n evenly spaced items along span,
// leaving room for the axes and gaps between items.
func slotWidth(span vg.Length, n int) vg.Length {
	return span * 0.8 * 0.7 / vg.Length(max(n, 1))
}
