// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/go-a2a/plotmcp/types"
)

// ExecuteFunc is the function type that executes a tool.
type ExecuteFunc func(ctx context.Context, args map[string]any) (*types.Result, error)

// Config is the configuration for a [Tool].
type Config struct {
	name        string
	description string
	inputSchema *jsonschema.Schema
	executor    ExecuteFunc
}

// ToolOption configures a [Config].
type ToolOption func(*Config)

// WithInputSchema sets the input schema of the [Config].
func WithInputSchema(schema *jsonschema.Schema) ToolOption {
	return func(c *Config) {
		c.inputSchema = schema
	}
}

// WithExecuteFunc sets the execute function of the [Config].
func WithExecuteFunc(fn ExecuteFunc) ToolOption {
	return func(c *Config) {
		c.executor = fn
	}
}

// NewConfig creates a new [Config] with the given name and description.
func NewConfig(name, description string, opts ...ToolOption) *Config {
	c := &Config{
		name:        name,
		description: description,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
