// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package plotting

import (
	"image/color"

	"github.com/go-a2a/plotmcp/types"
)

// ApplyStyle sets the title, the axis labels and the gridlines of a.
//
// Empty strings leave the corresponding text unset. Colormap and alpha are
// consumed by the chart primitives, not here.
func ApplyStyle(a *Axes, style types.StyleOptions) {
	if style.Title != "" {
		a.Plot.Title.Text = style.Title
	}
	if style.XLabel != "" {
		a.Plot.X.Label.Text = style.XLabel
	}
	if style.YLabel != "" {
		a.Plot.Y.Label.Text = style.YLabel
	}
	a.SetGrid(style.GridEnabled())
}

// WithAlpha returns c with its opacity scaled by alpha, which is clamped to [0, 1].
func WithAlpha(c color.Color, alpha float64) color.Color {
	alpha = min(max(alpha, 0), 1)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}
