// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package xjson decodes arbitrary JSON documents while keeping the order of object members.
//
// Column names of tabular data are taken from JSON object keys, and users expect the
// columns to appear in the order they wrote them. Decoding into map[string]any loses that
// order, so this package walks the token stream of [jsontext.Decoder] instead and returns
// [*Object] values that remember their key order.
//
// Decoded values are one of:
//
//   - nil for null
//   - bool
//   - float64 for numbers
//   - string
//   - []any for arrays
//   - [*Object] for objects
package xjson
