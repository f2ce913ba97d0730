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

// LineToolName is the name of the line plot tool.
const LineToolName = "plot_line"

// LineRequest holds the arguments of [PlotLine].
type LineRequest struct {
	X types.ColumnRef `json:"x"`
	Y types.ColumnRef `json:"y"`
	Options
}

// PlotLine draws y against x as a line.
func PlotLine(ctx context.Context, req *LineRequest) (*types.Result, error) {
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

	return j.render(ctx, func(a *plotting.Axes) error {
		return plotting.Line(a, xs, ys, j.style)
	})
}

// NewLineTool returns the plot_line tool.
func NewLineTool() *tool.Tool {
	desc := heredoc.Doc(`
		Create a line plot of y against x.

		x and y are column names of data_input or lists of numbers of equal length.
		Use it for trends, time series and training curves.
	`)
	schema := objectSchema(map[string]*jsonschema.Schema{
		"x": columnSchema("X values: column name or list of numbers."),
		"y": columnSchema("Y values: column name or list of numbers."),
	}, "x", "y")

	return newPlotTool(LineToolName, desc, schema, PlotLine)
}
