// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package data loads tabular data and resolves column references against it.
//
// Tables are backed by Apache Arrow. They come from a CSV file (header row,
// inferred column types), a JSON file (an array of records or an object of
// columns) or a literal column mapping passed in a tool call:
//
//	t, err := data.Load(ctx, &types.DataInput{FilePath: "runs.csv"})
//	if err != nil {
//		return err
//	}
//	defer t.Release()
//
//	loss, err := data.Extract(t, types.ColumnName("loss"))
//
// [Extract] returns literal references unchanged, so tools can mix column
// names and inline values in one call.
package data
