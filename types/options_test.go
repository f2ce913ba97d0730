// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-a2a/plotmcp/types"
)

func TestStyleOptionsNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      *types.StyleOptions
		want    types.StyleOptions
		wantErr error
	}{
		{
			name: "nil",
			in:   nil,
			want: types.StyleOptions{Grid: types.ToPtr(true), Colormap: "viridis"},
		},
		{
			name: "explicit values kept",
			in:   &types.StyleOptions{Title: "t", Grid: types.ToPtr(false), Colormap: "plasma", Alpha: types.ToPtr(0.5)},
			want: types.StyleOptions{Title: "t", Grid: types.ToPtr(false), Colormap: "plasma", Alpha: types.ToPtr(0.5)},
		},
		{
			name:    "alpha out of range",
			in:      &types.StyleOptions{Alpha: types.ToPtr(1.5)},
			wantErr: types.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Normalize()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Normalize() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStyleOptionsNormalizeDoesNotMutate(t *testing.T) {
	in := &types.StyleOptions{Title: "keep"}
	if _, err := in.Normalize(); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if in.Grid != nil || in.Colormap != "" {
		t.Errorf("Normalize() mutated its receiver: %+v", in)
	}
}

func TestOutputOptionsNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      *types.OutputOptions
		want    types.OutputOptions
		wantErr bool
	}{
		{
			name: "defaults",
			want: types.OutputOptions{Format: types.FormatPNG, Width: 15, Height: 10, DPI: 300},
		},
		{
			name: "partial",
			in:   &types.OutputOptions{Format: types.FormatSVG, Width: 8},
			want: types.OutputOptions{Format: types.FormatSVG, Width: 8, Height: 10, DPI: 300},
		},
		{
			name:    "negative dpi",
			in:      &types.OutputOptions{DPI: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Normalize()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Normalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); !tt.wantErr && diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatMIMEType(t *testing.T) {
	tests := map[types.Format]string{
		types.FormatPNG: "image/png",
		types.FormatPDF: "application/pdf",
		types.FormatSVG: "image/svg+xml",
		"gif":           "application/octet-stream",
	}
	for f, want := range tests {
		if got := f.MIMEType(); got != want {
			t.Errorf("%s.MIMEType() = %q, want %q", f, got, want)
		}
	}
}
