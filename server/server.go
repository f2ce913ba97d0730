// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/go-a2a/plotmcp/pkg/logging"
	"github.com/go-a2a/plotmcp/types"
)

// Name is the MCP server name announced to clients.
const Name = "plotmcp"

// ResourceScheme is the URI scheme of the embedded vector resources.
const ResourceScheme = "plot"

// New returns an MCP server exposing tools. logger is put into the context
// of every tool call.
func New(version string, logger *slog.Logger, tools ...types.Tool) (*mcpserver.MCPServer, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := mcpserver.NewMCPServer(Name, version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
		mcpserver.WithToolHandlerMiddleware(loggingMiddleware(logger)),
	)

	for _, t := range tools {
		schema, err := sonic.ConfigStd.Marshal(t.InputSchema())
		if err != nil {
			return nil, fmt.Errorf("marshal input schema of %s: %w", t.Name(), err)
		}
		s.AddTool(mcp.NewToolWithRawSchema(t.Name(), t.Description(), schema), Handler(t))
	}

	return s, nil
}

// Handler adapts t to an MCP tool handler. Tool failures are returned as
// error results, never as protocol errors.
func Handler(t types.Tool) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := t.Run(ctx, req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return ToolResult(t.Name(), res)
	}
}

// ToolResult converts a rendered plot into MCP content: PNG becomes image
// content and PDF or SVG an embedded blob resource.
func ToolResult(name string, res *types.Result) (*mcp.CallToolResult, error) {
	if res == nil {
		return mcp.NewToolResultError(name + " produced no output"), nil
	}
	blob := base64.StdEncoding.EncodeToString(res.Data)

	if !res.Format.IsVector() {
		w, h := res.Size()
		text := fmt.Sprintf("%s: %dx%d %s image", name, w, h, res.Format)
		return mcp.NewToolResultImage(text, blob, res.MIMEType()), nil
	}

	uri := fmt.Sprintf("%s://%s.%s", ResourceScheme, uuid.NewString(), res.Extension())
	text := fmt.Sprintf("%s: %d byte %s document", name, len(res.Data), res.Format)
	return mcp.NewToolResultResource(text, mcp.BlobResourceContents{
		URI:      uri,
		MIMEType: res.MIMEType(),
		Blob:     blob,
	}), nil
}

// loggingMiddleware installs logger into the call context and logs every call.
func loggingMiddleware(logger *slog.Logger) mcpserver.ToolHandlerMiddleware {
	return func(next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			log := logger.With("tool", req.Params.Name)
			ctx = logging.NewContext(ctx, log)

			start := time.Now()
			res, err := next(ctx, req)
			attrs := []any{"duration", time.Since(start)}
			switch {
			case err != nil:
				log.ErrorContext(ctx, "tool call failed", append(attrs, "error", err)...)
			case res != nil && res.IsError:
				log.WarnContext(ctx, "tool returned an error", append(attrs, "message", errorText(res))...)
			default:
				log.InfoContext(ctx, "tool call", attrs...)
			}
			return res, err
		}
	}
}

func errorText(res *mcp.CallToolResult) string {
	for _, c := range res.Content {
		if tc, ok := mcp.AsTextContent(c); ok {
			return tc.Text
		}
	}
	return ""
}
