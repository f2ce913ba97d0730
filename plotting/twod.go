// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package plotting

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"

	"github.com/go-a2a/plotmcp/types"
)

// Shading modes of [Mesh].
const (
	ShadingAuto    = "auto"
	ShadingFlat    = "flat"
	ShadingNearest = "nearest"
	ShadingGouraud = "gouraud"
)

// Contour defaults.
const (
	DefaultLevels = 10

	// paletteSize is the number of colors continuous color scales are sampled at.
	paletteSize = 255

	// fineCells is the number of cells a smooth surface is resampled to along its longest axis.
	fineCells = 200
)

// Heatmap draws m as colored cells with row 0 at the top and adds a color bar.
//
// xLabels and yLabels, when given, must have one entry per column and per row.
// With annotate, every cell is labeled with its value; labels are light on
// cells below the matrix mean and dark otherwise.
func Heatmap(a *Axes, m *mat.Dense, xLabels, yLabels []string, annotate bool, style types.StyleOptions) error {
	rows, cols := m.Dims()
	xLabels, err := axisLabels("x_labels", xLabels, cols)
	if err != nil {
		return err
	}
	yLabels, err = axisLabels("y_labels", yLabels, rows)
	if err != nil {
		return err
	}

	cm, err := scaledColormap(style, m)
	if err != nil {
		return err
	}
	h := plotter.NewHeatMap(&Grid{Data: m, TopDown: true}, cm.Palette(paletteSize))
	h.Min, h.Max = cm.Min(), cm.Max()
	h.NaN = color.Transparent
	a.Add(h)
	a.SetColorBar(cm)

	xTicks := make([]plot.Tick, cols)
	for c := range cols {
		xTicks[c] = plot.Tick{Value: float64(c), Label: xLabels[c]}
	}
	yTicks := make([]plot.Tick, rows)
	for r := range rows {
		yTicks[r] = plot.Tick{Value: float64(rows - 1 - r), Label: yLabels[r]}
	}
	a.Plot.X.Tick.Marker = plot.ConstantTicks(xTicks)
	a.Plot.Y.Tick.Marker = plot.ConstantTicks(yTicks)

	if annotate {
		labels, err := annotations(m)
		if err != nil {
			return err
		}
		a.Add(labels)
	}
	return nil
}

func axisLabels(argument string, labels []string, n int) ([]string, error) {
	if len(labels) == 0 {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
		return labels, nil
	}
	if len(labels) != n {
		return nil, types.InvalidArgument(argument, "has %d labels, expected %d", len(labels), n)
	}
	return labels, nil
}

func annotations(m *mat.Dense) (*plotter.Labels, error) {
	rows, cols := m.Dims()
	mean := finiteMean(m)

	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, rows*cols),
		Labels: make([]string, 0, rows*cols),
	}
	light := make([]bool, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			v := m.At(r, c)
			xyl.XYs = append(xyl.XYs, plotter.XY{X: float64(c), Y: float64(rows - 1 - r)})
			xyl.Labels = append(xyl.Labels, fmt.Sprintf("%.2f", v))
			light = append(light, v < mean)
		}
	}

	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
		labels.TextStyle[i].Color = color.Black
		if light[i] {
			labels.TextStyle[i].Color = color.White
		}
	}
	return labels, nil
}

func finiteMean(m mat.Matrix) float64 {
	rows, cols := m.Dims()
	var sum float64
	var n int
	for r := range rows {
		for c := range cols {
			if v := m.At(r, c); finite(v) {
				sum += v
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Contour draws g as filled bands or as iso-lines at levels values evenly
// spaced inside the range of g, and adds a color bar.
//
// Filled bands are a heat map of g resampled bilinearly onto a fine grid with
// a palette of levels+1 colors.
func Contour(a *Axes, g *Grid, levels int, filled bool, style types.StyleOptions) error {
	if levels <= 0 {
		return types.InvalidArgument("levels", "must be positive, got %d", levels)
	}
	if c, r := g.Dims(); c < 2 || r < 2 {
		return types.InvalidArgument("z", "needs at least 2 rows and 2 columns, got %dx%d", r, c)
	}

	cm, err := scaledColormap(style, g.Data)
	if err != nil {
		return err
	}
	if filled {
		fine := Upsample(g, fineFactor(g))
		h := plotter.NewHeatMap(fine, cm.Palette(levels+1))
		h.Min, h.Max = cm.Min(), cm.Max()
		h.NaN = color.Transparent
		a.Add(h)
	} else {
		ls := Levels(cm.Min(), cm.Max(), levels)
		ct := plotter.NewContour(g, ls, cm.Palette(levels))
		a.Add(ct)
	}
	a.SetColorBar(cm)
	return nil
}

// Mesh draws g as colored cells and adds a color bar. With [ShadingGouraud]
// the colors are interpolated bilinearly between cell centers.
func Mesh(a *Axes, g *Grid, shading string, style types.StyleOptions) error {
	cm, err := scaledColormap(style, g.Data)
	if err != nil {
		return err
	}
	if shading == ShadingGouraud {
		g = Upsample(g, fineFactor(g))
	}
	h := plotter.NewHeatMap(g, cm.Palette(paletteSize))
	h.Min, h.Max = cm.Min(), cm.Max()
	h.NaN = color.Transparent
	a.Add(h)
	a.SetColorBar(cm)
	return nil
}

func scaledColormap(style types.StyleOptions, m mat.Matrix) (palette.ColorMap, error) {
	cm, err := Colormap(style.Colormap)
	if err != nil {
		return nil, err
	}
	lo, hi := Range(m)
	SetRange(cm, lo, hi)
	cm.SetAlpha(style.AlphaOr(1))
	return cm, nil
}

func fineFactor(g *Grid) int {
	c, r := g.Dims()
	n := max(c, r) - 1
	if n <= 0 {
		return 1
	}
	return min(max(fineCells/n, 1), 32)
}
