// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package tools provides the plotting tools.
//
// # Available Tools
//
// Basic plots:
//   - plot_line: y against x as a line
//   - plot_scatter: markers with optional per-point sizes and colors
//   - plot_bar: one bar per category, vertical or horizontal
//
// Statistical plots:
//   - plot_histogram: binned distribution, counts or density
//   - plot_box: box plots of one or more groups
//   - plot_violin: kernel density violins of one or more groups
//
// Two dimensional plots:
//   - plot_heatmap: matrix cells with optional value annotations
//   - plot_contour: filled or line contours of z over x and y
//   - plot_pcolormesh: pseudocolor grid with flat, nearest or gouraud shading
//
// # Arguments
//
// Every data argument is either a column name, resolved against the table
// loaded from data_input, or a literal list of values:
//
//	{
//	  "x": "epoch",
//	  "y": "loss",
//	  "data_input": {"file_path": "metrics.csv"},
//	  "style": {"title": "Training loss", "grid": true},
//	  "output": {"format": "svg"}
//	}
//
// The typed entry points ([PlotLine], [PlotHeatmap], ...) take the same
// arguments as request structs and can be called without the tool layer.
//
// # Results
//
// Each call renders one figure and returns a [types.Result]. PNG results carry
// the decoded image and its encoding; PDF and SVG results carry the document.
// The table and the figure of a call are released before it returns.
package tools
