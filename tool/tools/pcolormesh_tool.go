// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/go-a2a/plotmcp/plotting"
	"github.com/go-a2a/plotmcp/tool"
	"github.com/go-a2a/plotmcp/types"
)

// PcolormeshToolName is the name of the pseudocolor mesh tool.
const PcolormeshToolName = "plot_pcolormesh"

// PcolormeshRequest holds the arguments of [PlotPcolormesh].
type PcolormeshRequest struct {
	SurfaceRequest

	// Shading is one of auto, flat, nearest and gouraud; empty means auto.
	Shading string `json:"shading,omitempty"`
}

// PlotPcolormesh draws z as colored quadrilaterals over the x-y plane.
//
// flat takes cell edges (n+1 values per axis), nearest takes cell centers (n
// values) and auto chooses per axis by length. gouraud interpolates the colors
// between the given centers.
func PlotPcolormesh(ctx context.Context, req *PcolormeshRequest) (*types.Result, error) {
	shading := req.Shading
	if shading == "" {
		shading = plotting.ShadingAuto
	}
	if !slices.Contains(shadingValues, shading) {
		return nil, types.InvalidArgument("shading", "must be one of %v, got %q", shadingValues, shading)
	}

	j, err := newJob(ctx, req.Options)
	if err != nil {
		return nil, err
	}
	defer j.Release()

	edges := shading == plotting.ShadingAuto || shading == plotting.ShadingFlat
	g, err := req.grid(j, edges)
	if err != nil {
		return nil, err
	}

	cols, rows := g.Dims()
	if shading == plotting.ShadingFlat && (len(g.Xs) != cols+1 || len(g.Ys) != rows+1) {
		return nil, types.InvalidArgument("shading", "flat shading needs %d x edges and %d y edges, got %d and %d", cols+1, rows+1, len(g.Xs), len(g.Ys))
	}
	if len(g.Xs) == cols+1 {
		g.Xs = plotting.Centers(g.Xs)
	}
	if len(g.Ys) == rows+1 {
		g.Ys = plotting.Centers(g.Ys)
	}

	return j.render(ctx, func(a *plotting.Axes) error {
		return plotting.Mesh(a, g, shading, j.style)
	})
}

// NewPcolormeshTool returns the plot_pcolormesh tool.
func NewPcolormeshTool() *tool.Tool {
	desc := heredoc.Doc(`
		Create a pseudocolor plot of z over a rectangular grid.

		z is a list of rows (one row per y value), or a column name or flat list
		of square length. x and y hold the cell coordinates: with shading "flat"
		they are the cell edges (one more value than cells), with "nearest" the
		cell centers, and "auto" (default) decides by their length. "gouraud"
		interpolates colors smoothly between the centers. A color bar is added.
	`)
	schema := objectSchema(map[string]*jsonschema.Schema{
		"x":       columnSchema("X coordinates: column name or list of numbers."),
		"y":       columnSchema("Y coordinates: column name or list of numbers."),
		"z":       matrixSchema("Z values: list of rows, or column name or flat list of square length."),
		"shading": enumSchema("Cell shading (default: auto).", shadingValues...),
	}, "x", "y", "z")

	return newPlotTool(PcolormeshToolName, desc, schema, PlotPcolormesh)
}
