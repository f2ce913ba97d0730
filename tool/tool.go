// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"maps"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/go-a2a/plotmcp/types"
)

// Tool represents a named tool with an input schema and an executor.
type Tool struct {
	// The name of the tool.
	name string

	// The description of the tool.
	description string

	// The JSON Schema of the tool arguments.
	inputSchema *jsonschema.Schema

	executor ExecuteFunc
}

var _ types.Tool = (*Tool)(nil)

// New returns the tool with the given name and description.
func New(name, description string, opts ...ToolOption) *Tool {
	return FromConfig(NewConfig(name, description, opts...))
}

// FromConfig returns the tool described by c.
func FromConfig(c *Config) *Tool {
	schema := c.inputSchema
	if schema == nil {
		schema = &jsonschema.Schema{Type: "object"}
	}
	return &Tool{
		name:        c.name,
		description: c.description,
		inputSchema: schema,
		executor:    c.executor,
	}
}

// Name implements [types.Tool].
func (t *Tool) Name() string {
	return t.name
}

// Description implements [types.Tool].
func (t *Tool) Description() string {
	return t.description
}

// InputSchema implements [types.Tool].
func (t *Tool) InputSchema() *jsonschema.Schema {
	return t.inputSchema
}

// Run implements [types.Tool].
//
// The executor receives a shallow copy of args.
func (t *Tool) Run(ctx context.Context, args map[string]any) (*types.Result, error) {
	if t.executor == nil {
		return nil, types.NotImplementedError("tool " + t.name + " has no executor")
	}
	if args == nil {
		args = map[string]any{}
	}

	return t.executor(ctx, maps.Clone(args))
}
