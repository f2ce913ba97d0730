// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package xmaps provides generic helpers for maps that the standard maps package lacks.
//
//	if !xmaps.Contains(colormaps, name) {
//		return fmt.Errorf("unknown colormap %q, available: %v", name, xmaps.SortedKeys(colormaps))
//	}
//
// [SortedKeys] gives a deterministic order, which keeps error messages and
// schema enumerations stable between runs.
package xmaps
