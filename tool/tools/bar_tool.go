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

// BarToolName is the name of the bar chart tool.
const BarToolName = "plot_bar"

// Bar orientations.
const (
	OrientationVertical   = "vertical"
	OrientationHorizontal = "horizontal"
)

// BarRequest holds the arguments of [PlotBar].
type BarRequest struct {
	// X holds the category of each bar.
	X types.ColumnRef `json:"x"`

	// Y holds the height of each bar.
	Y types.ColumnRef `json:"y"`

	Orientation string `json:"orientation,omitempty"`

	Options
}

// PlotBar draws one bar per category.
func PlotBar(ctx context.Context, req *BarRequest) (*types.Result, error) {
	var horizontal bool
	switch req.Orientation {
	case "", OrientationVertical:
	case OrientationHorizontal:
		horizontal = true
	default:
		return nil, types.InvalidArgument("orientation", "must be %q or %q, got %q", OrientationVertical, OrientationHorizontal, req.Orientation)
	}

	j, err := newJob(ctx, req.Options)
	if err != nil {
		return nil, err
	}
	defer j.Release()

	cats, err := j.sequence("x", req.X)
	if err != nil {
		return nil, err
	}
	if cats.IsNested() {
		return nil, types.InvalidArgument("x", "must be a flat list of categories")
	}
	heights, err := j.floats("y", req.Y)
	if err != nil {
		return nil, err
	}

	return j.render(ctx, func(a *plotting.Axes) error {
		return plotting.Bar(a, cats.Strings(), heights, horizontal, j.style)
	})
}

// NewBarTool returns the plot_bar tool.
func NewBarTool() *tool.Tool {
	desc := heredoc.Doc(`
		Create a bar chart with one bar per category.

		x holds the categories and y the bar heights. Set orientation to
		"horizontal" for horizontal bars (default: vertical).
	`)
	schema := objectSchema(map[string]*jsonschema.Schema{
		"x":           columnSchema("Categories: column name or list of labels."),
		"y":           columnSchema("Bar heights: column name or list of numbers."),
		"orientation": enumSchema("Bar direction (default: vertical).", OrientationVertical, OrientationHorizontal),
	}, "x", "y")

	return newPlotTool(BarToolName, desc, schema, PlotBar)
}
