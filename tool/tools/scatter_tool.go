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

// ScatterToolName is the name of the scatter plot tool.
const ScatterToolName = "plot_scatter"

// ScatterRequest holds the arguments of [PlotScatter].
type ScatterRequest struct {
	X types.ColumnRef `json:"x"`
	Y types.ColumnRef `json:"y"`

	// Size is the marker area in points squared, for all markers or per marker.
	Size *types.SizeRef `json:"size,omitempty"`

	// Color, when set, colors every marker through the style colormap.
	Color types.ColumnRef `json:"color"`

	Options
}

// PlotScatter draws one marker per (x, y) pair.
func PlotScatter(ctx context.Context, req *ScatterRequest) (*types.Result, error) {
	j, err := newJob(ctx, req.Options)
	if err != nil {
		return nil, err
	}
	defer j.Release()

	xs, err := j.floats("x", req.X)
	if err != nil {
		return nil, err
	}
	ys, err := j.floats("y", req.Y)
	if err != nil {
		return nil, err
	}

	var sizes []float64
	switch {
	case req.Size == nil:
	case req.Size.Scalar != nil:
		sizes = []float64{*req.Size.Scalar}
	case !req.Size.Ref.IsZero():
		if sizes, err = j.floats("size", req.Size.Ref); err != nil {
			return nil, err
		}
	}

	var values []float64
	if !req.Color.IsZero() {
		if values, err = j.floats("color", req.Color); err != nil {
			return nil, err
		}
	}

	return j.render(ctx, func(a *plotting.Axes) error {
		return plotting.Scatter(a, xs, ys, sizes, values, j.style)
	})
}

// NewScatterTool returns the plot_scatter tool.
func NewScatterTool() *tool.Tool {
	desc := heredoc.Doc(`
		Create a scatter plot of y against x.

		size is a marker area in points squared, either one number for every
		marker or a column name or list with one value per point (default: 36).
		color is a column name or list of numbers mapped through style.colormap;
		a color bar is added when it is given.
	`)
	schema := objectSchema(map[string]*jsonschema.Schema{
		"x": columnSchema("X values: column name or list of numbers."),
		"y": columnSchema("Y values: column name or list of numbers."),
		"size": {
			Description: "Marker area in points squared: a number, a column name or a list of numbers.",
			AnyOf: []*jsonschema.Schema{
				{Type: "number"},
				{Type: "string"},
				{Type: "array", Items: &jsonschema.Schema{Type: "number"}},
			},
		},
		"color": columnSchema("Values mapped to marker colors: column name or list of numbers."),
	}, "x", "y")

	return newPlotTool(ScatterToolName, desc, schema, PlotScatter)
}
