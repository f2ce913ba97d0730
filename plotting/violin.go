// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package plotting

import (
	"image/color"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/go-a2a/plotmcp/types"
)

// kdePoints is the number of points the density is evaluated at.
const kdePoints = 100

// Violin draws the Gaussian kernel density estimate of a sample, mirrored
// around a location on the x axis.
type Violin struct {
	// Location is the x position of the violin center.
	Location float64

	// Width is the widest extent of the violin in data units.
	Width float64

	// FillColor fills the density body.
	FillColor color.Color

	// LineStyle outlines the body and draws the extrema.
	LineStyle draw.LineStyle

	// MedianStyle and MeanStyle draw the horizontal statistic markers.
	MedianStyle draw.LineStyle
	MeanStyle   draw.LineStyle

	ShowExtrema, ShowMedian, ShowMean bool

	min, max, mean, median float64
	ys, density            []float64
}

var (
	_ plot.Plotter    = (*Violin)(nil)
	_ plot.DataRanger = (*Violin)(nil)
)

// NewViolin returns a violin for values at loc. NaN values are ignored; at
// least one value must remain.
//
// The bandwidth follows Scott's rule, the sample standard deviation scaled by n^(-1/5).
func NewViolin(loc float64, values []float64) (*Violin, error) {
	vs := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vs = append(vs, v)
		}
	}
	if len(vs) == 0 {
		return nil, types.InvalidArgument("data", "violin at %g has no finite values", loc)
	}
	slices.Sort(vs)

	v := &Violin{
		Location:    loc,
		Width:       0.5,
		FillColor:   color.Gray{Y: 128},
		LineStyle:   plotter.DefaultLineStyle,
		MedianStyle: plotter.DefaultLineStyle,
		MeanStyle:   plotter.DefaultLineStyle,
		ShowExtrema: true,
		ShowMedian:  true,
		ShowMean:    true,
		min:         vs[0],
		max:         vs[len(vs)-1],
		mean:        stat.Mean(vs, nil),
		median:      stat.Quantile(0.5, stat.Empirical, vs, nil),
	}
	v.MeanStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}

	n := float64(len(vs))
	bw := stat.StdDev(vs, nil) * math.Pow(n, -1.0/5)
	lo, hi := v.min, v.max
	if len(vs) < 2 || bw == 0 || math.IsNaN(bw) {
		bw = 0.01 * max(1, math.Abs(v.mean))
		lo, hi = v.mean-3*bw, v.mean+3*bw
	}

	v.ys = make([]float64, kdePoints)
	v.density = make([]float64, kdePoints)
	kernel := distuv.Normal{Sigma: bw}
	for i := range kdePoints {
		y := lo + (hi-lo)*float64(i)/float64(kdePoints-1)
		var d float64
		for _, x := range vs {
			kernel.Mu = x
			d += kernel.Prob(y)
		}
		v.ys[i] = y
		v.density[i] = d / n
	}
	return v, nil
}

// Plot implements [plot.Plotter].
func (v *Violin) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	peak := slices.Max(v.density)
	half := v.Width / 2
	offset := func(d float64) float64 {
		if peak == 0 {
			return 0
		}
		return half * d / peak
	}

	body := make([]vg.Point, 0, 2*len(v.ys)+1)
	for i, y := range v.ys {
		body = append(body, vg.Point{X: trX(v.Location + offset(v.density[i])), Y: trY(y)})
	}
	for i := len(v.ys) - 1; i >= 0; i-- {
		body = append(body, vg.Point{X: trX(v.Location - offset(v.density[i])), Y: trY(v.ys[i])})
	}
	c.FillPolygon(v.FillColor, c.ClipPolygonXY(body))
	c.StrokeLines(v.LineStyle, c.ClipLinesXY(append(body, body[0]))...)

	tick := func(sty draw.LineStyle, y, w float64) {
		line := []vg.Point{
			{X: trX(v.Location - w), Y: trY(y)},
			{X: trX(v.Location + w), Y: trY(y)},
		}
		c.StrokeLines(sty, c.ClipLinesXY(line)...)
	}
	if v.ShowExtrema {
		spine := []vg.Point{
			{X: trX(v.Location), Y: trY(v.min)},
			{X: trX(v.Location), Y: trY(v.max)},
		}
		c.StrokeLines(v.LineStyle, c.ClipLinesXY(spine)...)
		tick(v.LineStyle, v.min, half/4)
		tick(v.LineStyle, v.max, half/4)
	}
	if v.ShowMedian {
		tick(v.MedianStyle, v.median, half/2)
	}
	if v.ShowMean {
		tick(v.MeanStyle, v.mean, half/2)
	}
}

// DataRange implements [plot.DataRanger].
func (v *Violin) DataRange() (xmin, xmax, ymin, ymax float64) {
	return v.Location - v.Width/2, v.Location + v.Width/2, v.ys[0], v.ys[len(v.ys)-1]
}

// Stats returns the minimum, maximum, mean and median of the sample.
func (v *Violin) Stats() (minimum, maximum, mean, median float64) {
	return v.min, v.max, v.mean, v.median
}
