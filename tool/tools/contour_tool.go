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

// ContourToolName is the name of the contour plot tool.
const ContourToolName = "plot_contour"

// SurfaceRequest holds the x, y and z arguments of [PlotContour] and [PlotPcolormesh].
type SurfaceRequest struct {
	X types.ColumnRef `json:"x"`
	Y types.ColumnRef `json:"y"`

	// Z is a list of rows, or a flat list or column of square length.
	Z types.ColumnRef `json:"z"`

	Options
}

// ContourRequest holds the arguments of [PlotContour].
type ContourRequest struct {
	SurfaceRequest

	// Levels is the number of contour levels; nil means [plotting.DefaultLevels].
	Levels *int `json:"levels,omitempty"`

	// Filled draws filled bands instead of lines; nil means true.
	Filled *bool `json:"filled,omitempty"`
}

// grid resolves z into a matrix and x and y into its coordinates. With edges,
// an axis may also hold the n+1 cell edges; it is returned unchanged then.
func (req *SurfaceRequest) grid(j *job, edges bool) (*plotting.Grid, error) {
	zs, err := j.sequence("z", req.Z)
	if err != nil {
		return nil, err
	}
	m, err := plotting.ToMatrix("z", zs)
	if err != nil {
		return nil, err
	}
	rows, cols := m.Dims()

	xseq, err := j.sequence("x", req.X)
	if err != nil {
		return nil, err
	}
	xs, err := plotting.Axis("x", xseq, cols, rows, cols, true, edges)
	if err != nil {
		return nil, err
	}
	yseq, err := j.sequence("y", req.Y)
	if err != nil {
		return nil, err
	}
	ys, err := plotting.Axis("y", yseq, rows, rows, cols, false, edges)
	if err != nil {
		return nil, err
	}

	return &plotting.Grid{Data: m, Xs: xs, Ys: ys}, nil
}

// PlotContour draws the levels of z over the x-y plane.
func PlotContour(ctx context.Context, req *ContourRequest) (*types.Result, error) {
	levels := types.Deref(req.Levels, plotting.DefaultLevels)
	if levels <= 0 {
		return nil, types.InvalidArgument("levels", "must be positive, got %d", levels)
	}
	filled := types.Deref(req.Filled, true)

	j, err := newJob(ctx, req.Options)
	if err != nil {
		return nil, err
	}
	defer j.Release()

	g, err := req.grid(j, false)
	if err != nil {
		return nil, err
	}

	return j.render(ctx, func(a *plotting.Axes) error {
		return plotting.Contour(a, g, levels, filled, j.style)
	})
}

// NewContourTool returns the plot_contour tool.
func NewContourTool() *tool.Tool {
	desc := heredoc.Doc(`
		Create a contour plot of z over the x-y plane.

		z is a list of rows (one row per y value), or a column name or flat list
		of square length. x and y hold one coordinate per column and per row;
		long-format columns of length rows*cols are reduced to their distinct
		values. levels sets the number of contour levels (default: 10). With
		filled (default: true) the bands between levels are colored, otherwise
		only the contour lines are drawn. A color bar is added.
	`)
	schema := objectSchema(map[string]*jsonschema.Schema{
		"x":      columnSchema("X coordinates: column name or list of numbers."),
		"y":      columnSchema("Y coordinates: column name or list of numbers."),
		"z":      matrixSchema("Z values: list of rows, or column name or flat list of square length."),
		"levels": positiveIntSchema("Number of contour levels (default: 10)."),
		"filled": boolSchema("Fill the bands between levels (default: true)."),
	}, "x", "y", "z")

	return newPlotTool(ContourToolName, desc, schema, PlotContour)
}
