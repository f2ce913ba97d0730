// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
)

// Tool defines the interface that all plotting tools must implement.
type Tool interface {
	// Name returns the name of the tool.
	Name() string

	// Description returns the description of the tool.
	Description() string

	// InputSchema returns the JSON Schema of the tool arguments.
	InputSchema() *jsonschema.Schema

	// Run runs the tool with the given decoded JSON arguments.
	Run(ctx context.Context, args map[string]any) (*Result, error)
}
