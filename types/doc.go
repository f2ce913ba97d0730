// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package types provides the shared data model of the plotting server.
//
// The types package defines the values that flow between the data loader, the
// plotting primitives and the MCP tools, together with the error taxonomy every
// component reports through.
//
// # Column References
//
// Plot arguments refer to data either by column name or by literal values:
//
//	x := types.ColumnName("time")
//	y := types.Literal(types.FloatSequence(1, 4, 9))
//
// A [ColumnRef] decodes from JSON as a name when given a string and as a literal
// when given an array. [ColumnRefs] accepts the wider set of shapes used by
// distribution plots, and [SizeRef] additionally accepts a single number.
//
// # Options
//
// [StyleOptions] and [OutputOptions] carry the cosmetic and encoding options
// shared by every tool. Both are normalized into copies with defaults filled in:
//
//	style, err := req.Style.Normalize()   // grid on, "viridis"
//	output, err := req.Output.Normalize() // png, 15x10 cm, 300 dpi
//
// # Errors
//
// Every failure matches one sentinel with [errors.Is]:
//
//	if errors.Is(err, types.ErrColumnNotFound) {
//		var cnf *types.ColumnNotFoundError
//		errors.As(err, &cnf)
//		fmt.Println(cnf.Available)
//	}
//
// # Tools
//
// The [Tool] interface is implemented by every plotting tool and consumed by the
// MCP server, which turns a [Result] into image or resource content.
package types
