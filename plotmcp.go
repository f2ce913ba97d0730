// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package plotmcp is an MCP server that renders scientific plots from tabular data.
//
// Nine tools cover line, scatter, bar, histogram, box, violin, heatmap,
// contour and pseudocolor mesh plots. Data comes from a CSV or JSON file, a
// literal column mapping, or literal lists passed directly to a tool. Plots are
// returned as PNG images or as PDF and SVG documents.
package plotmcp

// Version is the version of the plotmcp server.
var Version = "v0.0.0"
