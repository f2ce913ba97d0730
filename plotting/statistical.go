// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package plotting

import (
	"math"
	"slices"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/go-a2a/plotmcp/types"
)

// Histogram defaults.
const (
	DefaultBins           = 30
	DefaultHistogramAlpha = 0.7
)

// Histogram bins values into bins equal-width bins spanning their range and
// draws the counts, or the density when density is true.
//
// The returned histogram is already added to a.
func Histogram(a *Axes, values []float64, bins int, density bool, style types.StyleOptions) (*plotter.Histogram, error) {
	if bins <= 0 {
		return nil, types.InvalidArgument("bins", "must be positive, got %d", bins)
	}
	vs := finiteSorted(values)
	if len(vs) == 0 {
		return nil, types.InvalidArgument("data", "no finite values to bin")
	}

	lo, hi := vs[0], vs[len(vs)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := floats.Span(make([]float64, bins+1), lo, hi)
	dividers := slices.Clone(edges)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, vs, nil)

	h := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, bins),
		Width:     (hi - lo) / float64(bins),
		FillColor: WithAlpha(plotutil.Color(0), style.AlphaOr(DefaultHistogramAlpha)),
		LineStyle: plotter.DefaultLineStyle,
	}
	for i, c := range counts {
		h.Bins[i] = plotter.HistogramBin{Min: edges[i], Max: edges[i+1], Weight: c}
	}

	if density {
		h.Normalize(1)
		a.Plot.Y.Label.Text = "Density"
	} else {
		a.Plot.Y.Label.Text = "Frequency"
	}
	a.Add(h)
	return h, nil
}

// Box draws one box plot per group at x positions 0, 1, ... labeled with labels.
func Box(a *Axes, groups [][]float64, labels []string, style types.StyleOptions) error {
	labels, err := groupLabels(groups, labels)
	if err != nil {
		return err
	}

	w := slotWidth(a.width, len(groups))
	for i, g := range groups {
		vs := finiteSorted(g)
		if len(vs) == 0 {
			return types.InvalidArgument("data", "group %q has no finite values", labels[i])
		}
		b, err := plotter.NewBoxPlot(w, float64(i), plotter.Values(vs))
		if err != nil {
			return err
		}
		b.FillColor = WithAlpha(plotutil.Color(i), style.AlphaOr(1))
		a.Add(b)
	}
	a.Plot.NominalX(labels...)
	return nil
}

// ViolinGroups draws one [Violin] per group at x positions 0, 1, ... labeled with labels.
func ViolinGroups(a *Axes, groups [][]float64, labels []string, style types.StyleOptions) error {
	labels, err := groupLabels(groups, labels)
	if err != nil {
		return err
	}

	for i, g := range groups {
		v, err := NewViolin(float64(i), g)
		if err != nil {
			return types.InvalidArgument("data", "group %q has no finite values", labels[i])
		}
		v.FillColor = WithAlpha(plotutil.Color(i), style.AlphaOr(DefaultHistogramAlpha))
		a.Add(v)
	}
	a.Plot.NominalX(labels...)
	return nil
}

// groupLabels returns labels, or "1", "2", ... when labels is empty.
func groupLabels(groups [][]float64, labels []string) ([]string, error) {
	if len(groups) == 0 {
		return nil, types.InvalidArgument("data", "no groups to plot")
	}
	if len(labels) == 0 {
		labels = make([]string, len(groups))
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
		return labels, nil
	}
	if len(labels) != len(groups) {
		return nil, types.InvalidArgument("labels", "has %d labels for %d groups", len(labels), len(groups))
	}
	return labels, nil
}

func finiteSorted(values []float64) []float64 {
	vs := make([]float64, 0, len(values))
	for _, v := range values {
		if finite(v) {
			vs = append(vs, v)
		}
	}
	slices.Sort(vs)
	return vs
}
