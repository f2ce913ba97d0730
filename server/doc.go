// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes plotting tools over the Model Context Protocol.
//
// Each tool is registered with its JSON Schema. A PNG plot is returned as
// image content; a PDF or SVG plot is returned as an embedded resource whose
// base64 blob is addressed by a plot://<uuid>.<ext> URI. Failed calls become
// tool results flagged as errors that carry the error message.
package server
