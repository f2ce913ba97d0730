// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package plotting builds figures with gonum/plot and encodes them as PNG, PDF or SVG.
//
// A figure is sized in centimeters and has one plotting region. Chart
// primitives add data layers to that region, [ApplyStyle] sets its texts and
// gridlines, and [Render] encodes and closes the figure:
//
//	fig, err := plotting.NewFigure(15, 10)
//	if err != nil {
//		return nil, err
//	}
//	defer fig.Close()
//
//	if err := plotting.Line(fig.Axes, xs, ys, style); err != nil {
//		return nil, err
//	}
//	plotting.ApplyStyle(fig.Axes, style)
//	return plotting.Render(ctx, fig, types.FormatPNG, 300)
//
// # Colormaps
//
// [Colormap] resolves the perceptually uniform maps (viridis, plasma, inferno,
// magma, cividis), Moreland's diverging and black body maps, and every
// ColorBrewer palette. A "_r" suffix reverses any of them.
//
// # Resources
//
// Every figure counts towards [OpenFigures] until it is closed. Render closes
// the figure on every path, so a figure that reached Render never leaks.
package plotting
