// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package plotting

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"

	"github.com/go-a2a/plotmcp/internal/xmaps"
	"github.com/go-a2a/plotmcp/types"
)

// reverseSuffix selects the reversed variant of a colormap, as in "viridis_r".
const reverseSuffix = "_r"

// Perceptually uniform maps, sampled at nine evenly spaced positions.
var (
	viridis = []string{"#440154", "#472d7b", "#3b528b", "#2c728e", "#21918c", "#28ae80", "#5ec962", "#addc30", "#fde725"}
	plasma  = []string{"#0d0887", "#4c02a1", "#7e03a8", "#a92395", "#cc4778", "#e56b5d", "#f89441", "#fdc328", "#f0f921"}
	inferno = []string{"#000004", "#1f0c48", "#550f6d", "#88226a", "#ba3655", "#e35933", "#f98e09", "#f9cb35", "#fcffa4"}
	magma   = []string{"#000004", "#1c1044", "#4f127b", "#812581", "#b5367a", "#e55964", "#fb8761", "#fec287", "#fcfdbf"}
	cividis = []string{"#00224e", "#123570", "#3b496c", "#575d6d", "#707173", "#8a8678", "#a59c74", "#c3b369", "#fee838"}
)

var colormaps = map[string]func() palette.ColorMap{
	"viridis":            func() palette.ColorMap { return hexGradient(viridis) },
	"plasma":             func() palette.ColorMap { return hexGradient(plasma) },
	"inferno":            func() palette.ColorMap { return hexGradient(inferno) },
	"magma":              func() palette.ColorMap { return hexGradient(magma) },
	"cividis":            func() palette.ColorMap { return hexGradient(cividis) },
	"coolwarm":           func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"purple_orange":      func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
	"hot":                func() palette.ColorMap { return moreland.BlackBody() },
	"blackbody":          func() palette.ColorMap { return moreland.BlackBody() },
	"extended_blackbody": func() palette.ColorMap { return moreland.ExtendedBlackBody() },
	"kindlmann":          func() palette.ColorMap { return moreland.Kindlmann() },
	"extended_kindlmann": func() palette.ColorMap { return moreland.ExtendedKindlmann() },
	"heat":               func() palette.ColorMap { return newGradient(palette.Heat(16, 1).Colors()) },
	"gray":               func() palette.ColorMap { return newGradient([]color.Color{color.Black, color.White}) },
}

// ColormapNames returns the names of the built-in colormaps. Any ColorBrewer
// palette name is accepted as well.
func ColormapNames() []string {
	return xmaps.SortedKeys(colormaps)
}

// Colormap returns a new colormap for name with the range [0, 1] and full opacity.
//
// A "_r" suffix reverses the map.
func Colormap(name string) (palette.ColorMap, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = types.DefaultColormap
	}

	base, reverse := strings.CutSuffix(name, reverseSuffix)
	cm, err := lookupColormap(base)
	if err != nil {
		if !reverse {
			return nil, err
		}
		// a ColorBrewer name may itself end in the suffix
		if cm, err = lookupColormap(name); err != nil {
			return nil, err
		}
		reverse = false
	}
	if reverse {
		cm = reversed{cm}
	}

	cm.SetMin(0)
	cm.SetMax(1)
	cm.SetAlpha(1)
	return cm, nil
}

func lookupColormap(name string) (palette.ColorMap, error) {
	if xmaps.Contains(colormaps, name) {
		return colormaps[name](), nil
	}
	for n := 11; n >= 3; n-- {
		if p, err := brewer.GetPalette(brewer.TypeAny, name, n); err == nil {
			return newGradient(p.Colors()), nil
		}
	}
	return nil, types.InvalidArgument("style.colormap", "unknown colormap %q. available colormaps: %s, or any ColorBrewer palette name",
		name, strings.Join(ColormapNames(), ", "))
}

// SetRange sets the value range of cm to [lo, hi], widening an empty or
// non-finite range so that every value maps to a color.
func SetRange(cm palette.ColorMap, lo, hi float64) {
	lo, hi = span(lo, hi)
	cm.SetMin(lo)
	cm.SetMax(hi)
}

func span(lo, hi float64) (float64, float64) {
	if math.IsNaN(lo) || math.IsInf(lo, 0) {
		lo = 0
	}
	if math.IsNaN(hi) || math.IsInf(hi, 0) {
		hi = lo + 1
	}
	if hi <= lo {
		lo, hi = lo-0.5, lo+0.5
	}
	return lo, hi
}

// ColorAt returns the color of v in cm, clamping values outside of its range.
// NaN maps to transparent.
func ColorAt(cm palette.ColorMap, v float64) color.Color {
	if math.IsNaN(v) {
		return color.Transparent
	}
	v = min(max(v, cm.Min()), cm.Max())
	c, err := cm.At(v)
	if err != nil {
		return color.Transparent
	}
	return c
}

// gradient linearly interpolates between evenly spaced anchor colors.
type gradient struct {
	anchors  []color.NRGBA
	min, max float64
	alpha    float64
}

func newGradient(cs []color.Color) *gradient {
	anchors := make([]color.NRGBA, len(cs))
	for i, c := range cs {
		anchors[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return &gradient{anchors: anchors, max: 1, alpha: 1}
}

func hexGradient(hex []string) *gradient {
	cs := make([]color.Color, len(hex))
	for i, h := range hex {
		rgb, err := strconv.ParseUint(strings.TrimPrefix(h, "#"), 16, 32)
		if err != nil {
			panic(fmt.Sprintf("plotting: invalid color %q", h))
		}
		cs[i] = color.NRGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
	}
	return newGradient(cs)
}

// At implements [palette.ColorMap].
func (g *gradient) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < g.min:
		return nil, palette.ErrUnderflow
	case v > g.max:
		return nil, palette.ErrOverflow
	case g.max <= g.min:
		return nil, fmt.Errorf("plotting: colormap range [%g, %g] is empty", g.min, g.max)
	}
	if len(g.anchors) == 1 {
		return g.blend(g.anchors[0], g.anchors[0], 0), nil
	}

	pos := (v - g.min) / (g.max - g.min) * float64(len(g.anchors)-1)
	i := min(int(pos), len(g.anchors)-2)
	return g.blend(g.anchors[i], g.anchors[i+1], pos-float64(i)), nil
}

func (g *gradient) blend(a, b color.NRGBA, t float64) color.Color {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: uint8(float64(lerp(a.A, b.A))*g.alpha + 0.5),
	}
}

func (g *gradient) Max() float64 { return g.max }

func (g *gradient) SetMax(v float64) { g.max = v }

func (g *gradient) Min() float64 { return g.min }

func (g *gradient) SetMin(v float64) { g.min = v }

func (g *gradient) Alpha() float64 { return g.alpha }

func (g *gradient) SetAlpha(alpha float64) { g.alpha = alpha }

// Palette implements [palette.ColorMap].
func (g *gradient) Palette(n int) palette.Palette {
	return sample(g, n)
}

// reversed flips a colormap over its range.
type reversed struct {
	palette.ColorMap
}

// At implements [palette.ColorMap].
func (r reversed) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, palette.ErrNaN
	}
	return r.ColorMap.At(r.Max() - (v - r.Min()))
}

// Palette implements [palette.ColorMap].
func (r reversed) Palette(n int) palette.Palette {
	cs := slices.Clone(r.ColorMap.Palette(n).Colors())
	slices.Reverse(cs)
	return colors(cs)
}

// colors is a fixed [palette.Palette].
type colors []color.Color

// Colors implements [palette.Palette].
func (c colors) Colors() []color.Color { return c }

func sample(cm palette.ColorMap, n int) palette.Palette {
	if n <= 0 {
		return colors(nil)
	}
	out := make(colors, n)
	lo, hi := cm.Min(), cm.Max()
	for i := range out {
		v := lo
		if n > 1 {
			v = lo + (hi-lo)*float64(i)/float64(n-1)
		}
		c, err := cm.At(v)
		if err != nil {
			c = color.Transparent
		}
		out[i] = c
	}
	return out
}
