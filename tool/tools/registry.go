// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"github.com/go-a2a/plotmcp/types"
)

// All returns every plotting tool in a stable order.
func All() []types.Tool {
	return []types.Tool{
		NewLineTool(),
		NewScatterTool(),
		NewBarTool(),
		NewHistogramTool(),
		NewBoxTool(),
		NewViolinTool(),
		NewHeatmapTool(),
		NewContourTool(),
		NewPcolormeshTool(),
	}
}
