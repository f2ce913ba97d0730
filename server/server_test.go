// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package server_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"log/slog"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/go-cmp/cmp"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/go-a2a/plotmcp/server"
	"github.com/go-a2a/plotmcp/tool/tools"
	"github.com/go-a2a/plotmcp/types"
)

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func TestToolResult(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		res := &types.Result{
			Format: types.FormatPNG,
			Image:  image.NewRGBA(image.Rect(0, 0, 4, 3)),
			Data:   []byte("\x89PNG"),
		}
		got, err := server.ToolResult("plot_line", res)
		if err != nil {
			t.Fatalf("ToolResult() error = %v", err)
		}
		if got.IsError {
			t.Fatal("ToolResult() returned an error result")
		}

		var img *mcp.ImageContent
		for _, c := range got.Content {
			if ic, ok := mcp.AsImageContent(c); ok {
				img = ic
			}
		}
		if img == nil {
			t.Fatalf("no image content in %#v", got.Content)
		}
		if img.MIMEType != "image/png" {
			t.Errorf("MIMEType = %q, want image/png", img.MIMEType)
		}
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			t.Fatalf("decode image data: %v", err)
		}
		if diff := cmp.Diff(res.Data, data); diff != "" {
			t.Errorf("image data mismatch (-want +got):\n%s", diff)
		}
	})

	for _, format := range []types.Format{types.FormatPDF, types.FormatSVG} {
		t.Run(string(format), func(t *testing.T) {
			res := &types.Result{Format: format, Data: []byte("document")}
			got, err := server.ToolResult("plot_line", res)
			if err != nil {
				t.Fatalf("ToolResult() error = %v", err)
			}

			var blob *mcp.BlobResourceContents
			for _, c := range got.Content {
				if er, ok := mcp.AsEmbeddedResource(c); ok {
					blob, _ = mcp.AsBlobResourceContents(er.Resource)
				}
			}
			if blob == nil {
				t.Fatalf("no blob resource in %#v", got.Content)
			}
			if blob.MIMEType != format.MIMEType() {
				t.Errorf("MIMEType = %q, want %q", blob.MIMEType, format.MIMEType())
			}
			if !strings.HasPrefix(blob.URI, "plot://") || !strings.HasSuffix(blob.URI, "."+string(format)) {
				t.Errorf("URI = %q, want plot://<uuid>.%s", blob.URI, format)
			}
			data, err := base64.StdEncoding.DecodeString(blob.Blob)
			if err != nil {
				t.Fatalf("decode blob: %v", err)
			}
			if string(data) != "document" {
				t.Errorf("blob = %q, want %q", data, "document")
			}
		})
	}
}

func TestHandler(t *testing.T) {
	h := server.Handler(tools.NewLineTool())

	t.Run("success", func(t *testing.T) {
		got, err := h(t.Context(), callRequest(tools.LineToolName, map[string]any{
			"x":      []any{1.0, 2.0, 3.0},
			"y":      []any{1.0, 4.0, 9.0},
			"output": map[string]any{"format": "png", "dpi": 50.0},
		}))
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if got.IsError {
			t.Fatalf("handler returned an error result: %#v", got.Content)
		}
		var found bool
		for _, c := range got.Content {
			if _, ok := mcp.AsImageContent(c); ok {
				found = true
			}
		}
		if !found {
			t.Error("no image content")
		}
	})

	t.Run("tool error", func(t *testing.T) {
		got, err := h(t.Context(), callRequest(tools.LineToolName, map[string]any{
			"x": "epoch",
			"y": "loss",
		}))
		if err != nil {
			t.Fatalf("handler error = %v, want an error result", err)
		}
		if !got.IsError {
			t.Fatal("IsError = false, want true")
		}
		var text string
		for _, c := range got.Content {
			if tc, ok := mcp.AsTextContent(c); ok {
				text = tc.Text
			}
		}
		if !strings.Contains(text, "epoch") {
			t.Errorf("error text = %q, want it to name the column", text)
		}
	})
}

func TestNew(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := server.New("test", logger, tools.All()...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("tools/list", func(t *testing.T) {
		msg := s.HandleMessage(t.Context(), []byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
		b, err := sonic.ConfigStd.Marshal(msg)
		if err != nil {
			t.Fatalf("marshal response: %v", err)
		}

		var resp struct {
			Result struct {
				Tools []struct {
					Name        string `json:"name"`
					InputSchema struct {
						Type     string   `json:"type"`
						Required []string `json:"required"`
					} `json:"inputSchema"`
				} `json:"tools"`
			} `json:"result"`
		}
		if err := sonic.ConfigStd.Unmarshal(b, &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}

		got := make(map[string][]string)
		for _, tl := range resp.Result.Tools {
			if tl.InputSchema.Type != "object" {
				t.Errorf("%s: schema type = %q, want object", tl.Name, tl.InputSchema.Type)
			}
			got[tl.Name] = tl.InputSchema.Required
		}
		want := make(map[string][]string)
		for _, tl := range tools.All() {
			want[tl.Name()] = tl.InputSchema().Required
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("tools/list mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("tools/call", func(t *testing.T) {
		msg := s.HandleMessage(t.Context(), []byte(`{
			"jsonrpc": "2.0",
			"id": 2,
			"method": "tools/call",
			"params": {
				"name": "plot_line",
				"arguments": {"x": [1, 2, 3], "y": [1, 4, 9], "output": {"format": "svg"}}
			}
		}`))
		b, err := sonic.ConfigStd.Marshal(msg)
		if err != nil {
			t.Fatalf("marshal response: %v", err)
		}
		if !bytes.Contains(b, []byte("plot://")) {
			t.Errorf("response lacks a plot:// resource: %s", b[:min(len(b), 200)])
		}
		if !bytes.Contains(logs.Bytes(), []byte(`"tool":"plot_line"`)) {
			t.Errorf("call was not logged: %s", logs.String())
		}
	})
}
