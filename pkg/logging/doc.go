// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging provides context-based structured logging utilities using Go's standard slog package.
//
// Loggers are stored in and retrieved from [context.Context] values so that the
// MCP server, the plotting tools and the data loader all log through the logger
// configured by the process entry point.
//
// # Basic Usage
//
// Creating a logger context:
//
//	level, err := logging.ParseLevel("debug")
//	ctx := logging.NewContext(ctx, logging.New(level))
//
// Retrieving logger from context:
//
//	logger := logging.FromContext(ctx)
//	logger.Debug("loaded table", slog.Int("rows", rows), slog.Any("columns", cols))
//
// # Output
//
// [New] writes JSON records to standard error. Standard output carries the
// stdio MCP transport and must stay free of log output, which is also why
// [FromContext] falls back to a discarding logger rather than a stdout one.
package logging
