// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package tool provides the base type of the plotting tools.
//
// A [Tool] couples a name, a description and a JSON Schema for its arguments
// with an [ExecuteFunc] that turns decoded JSON arguments into a rendered
// [types.Result]. Tools are assembled with functional options:
//
//	t := tool.New(
//		"plot_line",
//		"Create a line plot.",
//		tool.WithInputSchema(schema),
//		tool.WithExecuteFunc(func(ctx context.Context, args map[string]any) (*types.Result, error) {
//			...
//		}),
//	)
//
// The ready-made plotting tools live in the tools subpackage.
package tool
