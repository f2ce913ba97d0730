// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package plotting

import (
	"sync"
	"sync/atomic"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/go-a2a/plotmcp/types"
)

var initOnce sync.Once

// Init sets the process-wide plotting defaults. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		plot.DefaultFont = font.Font{Typeface: "Liberation", Variant: "Sans"}
	})
}

var openFigures atomic.Int64

// OpenFigures returns the number of figures created and not yet closed.
func OpenFigures() int {
	return int(openFigures.Load())
}

// Figure is a drawing surface of a fixed physical size with one plotting region.
type Figure struct {
	Axes *Axes

	width  vg.Length
	height vg.Length
	closed atomic.Bool
}

// NewFigure returns a figure of the given size in centimeters.
func NewFigure(widthCM, heightCM float64) (*Figure, error) {
	if widthCM <= 0 {
		return nil, types.InvalidArgument("output.width", "must be positive, got %g", widthCM)
	}
	if heightCM <= 0 {
		return nil, types.InvalidArgument("output.height", "must be positive, got %g", heightCM)
	}
	Init()

	w := vg.Length(widthCM) * vg.Centimeter
	h := vg.Length(heightCM) * vg.Centimeter
	openFigures.Add(1)
	return &Figure{
		Axes:   &Axes{Plot: plot.New(), grid: true, width: w, height: h},
		width:  w,
		height: h,
	}, nil
}

// Size returns the physical size of f.
func (f *Figure) Size() (width, height vg.Length) {
	return f.width, f.height
}

// Close releases f. Closing a closed figure is a no-op.
func (f *Figure) Close() {
	if f == nil || !f.closed.CompareAndSwap(false, true) {
		return
	}
	openFigures.Add(-1)
	f.Axes = nil
}

// Closed reports whether f was closed.
func (f *Figure) Closed() bool {
	return f.closed.Load()
}

// Axes is the plotting region of a [Figure].
//
// Data layers are collected with [Axes.Add] and attached to the plot when the
// figure is rendered, after the gridlines so that the grid stays underneath.
type Axes struct {
	Plot *plot.Plot

	grid     bool
	layers   []plot.Plotter
	colorbar *plotter.ColorBar

	// size of the enclosing figure, used to scale bars and boxes
	width, height vg.Length
}

// Add adds data layers, drawn in order.
func (a *Axes) Add(ps ...plot.Plotter) {
	a.layers = append(a.layers, ps...)
}

// SetGrid turns the gridlines on or off.
func (a *Axes) SetGrid(on bool) {
	a.grid = on
}

// Grid reports whether gridlines will be drawn.
func (a *Axes) Grid() bool {
	return a.grid
}

// SetColorBar attaches a vertical color bar for cm beside the plotting region.
// The range of cm must already be set.
func (a *Axes) SetColorBar(cm palette.ColorMap) {
	a.colorbar = &plotter.ColorBar{ColorMap: cm, Vertical: true}
}

// HasColorBar reports whether a color bar is attached.
func (a *Axes) HasColorBar() bool {
	return a.colorbar != nil
}

// compose attaches the grid and the data layers to the plot.
func (a *Axes) compose() {
	if a.grid {
		a.Plot.Add(plotter.NewGrid())
	}
	a.Plot.Add(a.layers...)
	a.layers = nil
}
