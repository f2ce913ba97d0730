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

// ViolinToolName is the name of the violin plot tool.
const ViolinToolName = "plot_violin"

// PlotViolin draws one violin per group with its mean, median and extrema.
func PlotViolin(ctx context.Context, req *GroupsRequest) (*types.Result, error) {
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
		return plotting.ViolinGroups(a, groups, req.Labels, j.style)
	})
}

// NewViolinTool returns the plot_violin tool.
func NewViolinTool() *tool.Tool {
	desc := heredoc.Doc(`
		Create violin plots showing the estimated density of one or more groups.

		data is a column name, a list of column names, or a list of lists of
		numbers with one inner list per group. labels names the groups. Each
		violin marks the mean, the median and the extrema of its group.
	`)
	schema := objectSchema(map[string]*jsonschema.Schema{
		"data":   columnsSchema("Groups: column name(s) or list(s) of numbers."),
		"labels": stringsSchema("One label per group."),
	}, "data")

	return newPlotTool(ViolinToolName, desc, schema, PlotViolin)
}
