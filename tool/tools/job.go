// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/go-a2a/plotmcp/data"
	"github.com/go-a2a/plotmcp/pkg/logging"
	"github.com/go-a2a/plotmcp/plotting"
	"github.com/go-a2a/plotmcp/tool"
	"github.com/go-a2a/plotmcp/types"
)

// Options holds the arguments shared by every plotting tool.
type Options struct {
	// DataInput, when set, loads the table that column names refer to.
	DataInput *types.DataInput `json:"data_input,omitempty"`

	Style  *types.StyleOptions  `json:"style,omitempty"`
	Output *types.OutputOptions `json:"output,omitempty"`
}

// job is the state of one tool call: the normalized options and the loaded table.
type job struct {
	table  *data.Table
	style  types.StyleOptions
	output types.OutputOptions
}

func newJob(ctx context.Context, opts Options) (*job, error) {
	style, err := opts.Style.Normalize()
	if err != nil {
		return nil, err
	}
	output, err := opts.Output.Normalize()
	if err != nil {
		return nil, err
	}

	j := &job{style: style, output: output}
	if opts.DataInput != nil {
		if j.table, err = data.Load(ctx, opts.DataInput); err != nil {
			return nil, err
		}
	}
	return j, nil
}

// Release releases the loaded table, if any.
func (j *job) Release() {
	j.table.Release()
}

// sequence resolves the required argument ref.
func (j *job) sequence(argument string, ref types.ColumnRef) (types.Sequence, error) {
	if ref.IsZero() {
		return nil, types.InvalidArgument(argument, "is required")
	}
	seq, err := data.Extract(j.table, ref)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", argument, err)
	}
	return seq, nil
}

// floats resolves the required argument ref as numbers.
func (j *job) floats(argument string, ref types.ColumnRef) ([]float64, error) {
	seq, err := j.sequence(argument, ref)
	if err != nil {
		return nil, err
	}
	if seq.IsNested() {
		return nil, types.InvalidArgument(argument, "must be a flat list of numbers")
	}
	vs, err := seq.Floats()
	if err != nil {
		return nil, types.InvalidArgument(argument, "%v", err)
	}
	return vs, nil
}

// groups resolves refs into one numeric group per reference. A single
// literal holding a list of lists yields one group per inner list.
func (j *job) groups(argument string, refs types.ColumnRefs) ([][]float64, error) {
	if len(refs) == 0 {
		return nil, types.InvalidArgument(argument, "is required")
	}
	seqs, err := data.ExtractAll(j.table, refs)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", argument, err)
	}
	if len(seqs) == 1 && seqs[0].IsNested() {
		rows, err := seqs[0].Rows()
		if err != nil {
			return nil, types.InvalidArgument(argument, "%v", err)
		}
		return rows, nil
	}

	out := make([][]float64, len(seqs))
	for i, seq := range seqs {
		if seq.IsNested() {
			return nil, types.InvalidArgument(argument, "group %d must be a flat list of numbers", i+1)
		}
		if out[i], err = seq.Floats(); err != nil {
			return nil, types.InvalidArgument(argument, "group %d: %v", i+1, err)
		}
	}
	return out, nil
}

// render builds a figure of the requested size, lets draw add the chart,
// applies the style and encodes the figure.
func (j *job) render(ctx context.Context, draw func(a *plotting.Axes) error) (*types.Result, error) {
	fig, err := plotting.NewFigure(j.output.Width, j.output.Height)
	if err != nil {
		return nil, err
	}
	defer fig.Close()

	if err := draw(fig.Axes); err != nil {
		return nil, err
	}
	plotting.ApplyStyle(fig.Axes, j.style)

	return plotting.Render(ctx, fig, j.output.Format, j.output.DPI)
}

// newPlotTool returns a tool which binds its arguments to a Req and passes it to plot.
func newPlotTool[Req any](name, description string, schema *jsonschema.Schema, plot func(context.Context, *Req) (*types.Result, error)) *tool.Tool {
	return tool.New(name, description,
		tool.WithInputSchema(schema),
		tool.WithExecuteFunc(func(ctx context.Context, args map[string]any) (*types.Result, error) {
			req := new(Req)
			if err := bind(args, req); err != nil {
				return nil, err
			}

			start := time.Now()
			res, err := plot(ctx, req)
			logging.FromContext(ctx).DebugContext(ctx, "plot finished",
				"tool", name,
				"duration", time.Since(start),
				"error", err,
			)
			return res, err
		}),
	)
}

// bind decodes the JSON arguments args into v.
func bind(args map[string]any, v any) error {
	b, err := sonic.ConfigStd.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	if err := sonic.ConfigStd.Unmarshal(b, v); err != nil {
		return types.InvalidArgument("", "decode arguments: %v", err)
	}
	return nil
}
