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

// HeatmapToolName is the name of the heatmap tool.
const HeatmapToolName = "plot_heatmap"

// HeatmapRequest holds the arguments of [PlotHeatmap].
type HeatmapRequest struct {
	// Data is a list of rows, or a flat list or column of square length.
	Data types.ColumnRef `json:"data"`

	XLabels []string `json:"x_labels,omitempty"`
	YLabels []string `json:"y_labels,omitempty"`

	// Annotate writes the value into every cell.
	Annotate bool `json:"annotate,omitempty"`

	Options
}

// PlotHeatmap draws a matrix as colored cells with row 0 at the top.
// Gridlines are always off.
func PlotHeatmap(ctx context.Context, req *HeatmapRequest) (*types.Result, error) {
	j, err := newJob(ctx, req.Options)
	if err != nil {
		return nil, err
	}
	defer j.Release()

	seq, err := j.sequence("data", req.Data)
	if err != nil {
		return nil, err
	}
	m, err := plotting.ToMatrix("data", seq)
	if err != nil {
		return nil, err
	}

	j.style.Grid = types.ToPtr(false)
	return j.render(ctx, func(a *plotting.Axes) error {
		return plotting.Heatmap(a, m, req.XLabels, req.YLabels, req.Annotate, j.style)
	})
}

// NewHeatmapTool returns the plot_heatmap tool.
func NewHeatmapTool() *tool.Tool {
	desc := heredoc.Doc(`
		Create a heatmap of a matrix, e.g. a correlation or confusion matrix.

		data is a list of rows, or a column name or flat list whose length is a
		perfect square. x_labels and y_labels name the columns and the rows.
		With annotate every cell shows its value. A color bar is added.
	`)
	schema := objectSchema(map[string]*jsonschema.Schema{
		"data":     matrixSchema("Matrix: list of rows, or column name or flat list of square length."),
		"x_labels": stringsSchema("One label per column."),
		"y_labels": stringsSchema("One label per row."),
		"annotate": boolSchema("Write the value into every cell (default: false)."),
	}, "data")

	return newPlotTool(HeatmapToolName, desc, schema, PlotHeatmap)
}
