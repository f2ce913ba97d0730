// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tool_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/go-a2a/plotmcp/tool"
	"github.com/go-a2a/plotmcp/types"
)

func TestNew(t *testing.T) {
	schema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"x"},
		Properties: map[string]*jsonschema.Schema{
			"x": {Type: "string"},
		},
	}

	tests := map[string]struct {
		opts       []tool.ToolOption
		wantSchema *jsonschema.Schema
	}{
		"default schema": {
			wantSchema: &jsonschema.Schema{Type: "object"},
		},
		"with schema": {
			opts:       []tool.ToolOption{tool.WithInputSchema(schema)},
			wantSchema: schema,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tl := tool.New("plot_test", "A test tool.", tt.opts...)
			if got, want := tl.Name(), "plot_test"; got != want {
				t.Errorf("Name() = %q, want %q", got, want)
			}
			if got, want := tl.Description(), "A test tool."; got != want {
				t.Errorf("Description() = %q, want %q", got, want)
			}
			if diff := cmp.Diff(tt.wantSchema, tl.InputSchema()); diff != "" {
				t.Errorf("InputSchema() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRun(t *testing.T) {
	t.Run("no executor", func(t *testing.T) {
		tl := tool.New("plot_test", "")
		_, err := tl.Run(t.Context(), nil)
		var nie types.NotImplementedError
		if !errors.As(err, &nie) {
			t.Fatalf("Run() error = %v, want NotImplementedError", err)
		}
	})

	t.Run("executor gets a copy", func(t *testing.T) {
		want := &types.Result{Format: types.FormatSVG, Data: []byte("<svg/>")}
		tl := tool.New("plot_test", "", tool.WithExecuteFunc(func(ctx context.Context, args map[string]any) (*types.Result, error) {
			args["x"] = "changed"
			return want, nil
		}))

		args := map[string]any{"x": "col"}
		got, err := tl.Run(t.Context(), args)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if got != want {
			t.Errorf("Run() = %v, want %v", got, want)
		}
		if args["x"] != "col" {
			t.Errorf("caller args were modified: %v", args)
		}
	})

	t.Run("nil args", func(t *testing.T) {
		var seen map[string]any
		tl := tool.New("plot_test", "", tool.WithExecuteFunc(func(ctx context.Context, args map[string]any) (*types.Result, error) {
			seen = args
			return nil, nil
		}))
		if _, err := tl.Run(t.Context(), nil); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if seen == nil {
			t.Error("executor got nil args")
		}
	})
}
