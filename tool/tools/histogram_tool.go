// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/go-a2a/plotmcp/plotting"
	"github.com/go-a2a/plotmcp/tool"
	"github.com/go-a2a/plotmcp/types"
)

// HistogramToolName is the name of the histogram tool.
const HistogramToolName = "plot_histogram"

// HistogramRequest holds the arguments of [PlotHistogram].
type HistogramRequest struct {
	Data types.ColumnRef `json:"data"`

	// Bins is the number of bins; nil means [plotting.DefaultBins].
	Bins *int `json:"bins,omitempty"`

	// Density normalizes the bars to a total area of one.
	Density bool `json:"density,omitempty"`

	Options
}

// PlotHistogram draws the distribution of data.
func PlotHistogram(ctx context.Context, req *HistogramRequest) (*types.Result, error) {
	bins := types.Deref(req.Bins, plotting.DefaultBins)
	if bins <= 0 {
		return nil, types.InvalidArgument("bins", "must be positive, got %d", bins)
	}

	j, err := newJob(ctx, req.Options)
	if err != nil {
		return nil, err
	}
	defer j.Release()

	values, err := j.floats("data", req.Data)
	if err != nil {
		return nil, err
	}

	return j.render(ctx, func(a *plotting.Axes) error {
		_, err := plotting.Histogram(a, values, bins, req.Density, j.style)
		return err
	})
}

// NewHistogramTool returns the plot_histogram tool.
func NewHistogramTool() *tool.Tool {
	desc := heredoc.Doc(`
		Create a histogram of the distribution of data.

		data is a column name or a list of numbers. bins sets the number of
		equal-width bins (default: 30). With density the bars are normalized to
		a total area of 1; the bin edges do not change.
	`)
	schema := objectSchema(map[string]*jsonschema.Schema{
		"data":    columnSchema("Values: column name or list of numbers."),
		"bins":    positiveIntSchema("Number of bins (default: 30)."),
		"density": boolSchema("Normalize to a probability density (default: false)."),
	}, "data")

	return newPlotTool(HistogramToolName, desc, schema, PlotHistogram)
}
