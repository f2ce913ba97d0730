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

// BoxToolName is the name of the box plot tool.
const BoxToolName = "plot_box"

// GroupsRequest holds the arguments of [PlotBox] and [PlotViolin].
type GroupsRequest struct {
	// Data holds one reference per group.
	Data types.ColumnRefs `json:"data"`

	// Labels names the groups; empty means "1", "2", ...
	Labels []string `json:"labels,omitempty"`

	Options
}

// PlotBox draws one box plot per group.
func PlotBox(ctx context.Context, req *GroupsRequest) (*types.Result, error) {
	j, err := newJob(ctx, req.Options)
	if err != nil {
		return nil, err
	}
	defer j.Release()

	groups, err := j.groups("data", req.Data)
	if err != nil {
		return nil, err
	}

	return j.render(ctx, func(a *plotting.Axes) error {
		return plotting.Box(a, groups, req.Labels, j.style)
	})
}

// NewBoxTool returns the plot_box tool.
func NewBoxTool() *tool.Tool {
	desc := heredoc.Doc(`
		Create box plots comparing the distributions of one or more groups.

		data is a column name, a list of column names, or a list of lists of
		numbers with one inner list per group. labels names the groups.
	`)
	schema := objectSchema(map[string]*jsonschema.Schema{
		"data":   columnsSchema("Groups: column name(s) or list(s) of numbers."),
		"labels": stringsSchema("One label per group."),
	}, "data")

	return newPlotTool(BoxToolName, desc, schema, PlotBox)
}
