// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"

	deepcopy "github.com/tiendc/go-deepcopy"
)

// Format is the output encoding of a rendered plot.
type Format string

const (
	// FormatPNG is the raster encoding.
	FormatPNG Format = "png"
	// FormatPDF is the PDF vector encoding.
	FormatPDF Format = "pdf"
	// FormatSVG is the SVG vector encoding.
	FormatSVG Format = "svg"
)

// SupportedFormats lists the accepted output encodings.
var SupportedFormats = []string{string(FormatPNG), string(FormatPDF), string(FormatSVG)}

// IsVector reports whether f is a vector encoding.
func (f Format) IsVector() bool {
	return f == FormatPDF || f == FormatSVG
}

// MIMEType returns the media type of f.
func (f Format) MIMEType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatSVG:
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

// Defaults applied by [StyleOptions.Normalize] and [OutputOptions.Normalize].
const (
	DefaultColormap = "viridis"
	DefaultWidth    = 15.0
	DefaultHeight   = 10.0
	DefaultDPI      = 300
)

// StyleOptions holds the cosmetic options shared by every plotting tool.
//
// Empty strings leave the corresponding attribute unset.
type StyleOptions struct {
	Title    string   `json:"title,omitempty"`
	XLabel   string   `json:"xlabel,omitempty"`
	YLabel   string   `json:"ylabel,omitempty"`
	Grid     *bool    `json:"grid,omitempty"`
	Colormap string   `json:"colormap,omitempty"`
	Alpha    *float64 `json:"alpha,omitempty"`
}

// Normalize returns a copy of s with defaults filled in. A nil s yields the defaults.
func (s *StyleOptions) Normalize() (StyleOptions, error) {
	var out StyleOptions
	if s != nil {
		if err := deepcopy.Copy(&out, s); err != nil {
			return StyleOptions{}, fmt.Errorf("copy style options: %w", err)
		}
	}
	if out.Grid == nil {
		out.Grid = ToPtr(true)
	}
	if out.Colormap == "" {
		out.Colormap = DefaultColormap
	}
	if out.Alpha != nil && (*out.Alpha < 0 || *out.Alpha > 1) {
		return StyleOptions{}, InvalidArgument("style.alpha", "must be between 0 and 1, got %g", *out.Alpha)
	}
	return out, nil
}

// GridEnabled reports whether gridlines are requested. Unset means enabled.
func (s StyleOptions) GridEnabled() bool {
	return Deref(s.Grid, true)
}

// AlphaOr returns the requested transparency, or def if none was given.
func (s StyleOptions) AlphaOr(def float64) float64 {
	return Deref(s.Alpha, def)
}

// OutputOptions controls the encoding and the physical size of a rendered plot.
type OutputOptions struct {
	Format Format  `json:"format,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	DPI    int     `json:"dpi,omitempty"`
}

// Normalize returns a copy of o with zero fields replaced by the defaults.
//
// Negative sizes are kept so that the figure builder can reject them.
func (o *OutputOptions) Normalize() (OutputOptions, error) {
	var out OutputOptions
	if o != nil {
		if err := deepcopy.Copy(&out, o); err != nil {
			return OutputOptions{}, fmt.Errorf("copy output options: %w", err)
		}
	}
	if out.Format == "" {
		out.Format = FormatPNG
	}
	if out.Width == 0 {
		out.Width = DefaultWidth
	}
	if out.Height == 0 {
		out.Height = DefaultHeight
	}
	if out.DPI == 0 {
		out.DPI = DefaultDPI
	}
	if out.DPI < 0 {
		return OutputOptions{}, InvalidArgument("output.dpi", "must be positive, got %d", out.DPI)
	}
	return out, nil
}

// ToPtr returns a pointer to the given value.
func ToPtr[T any](v T) *T {
	return &v
}

// Deref dereferences ptr and returns the value it points to if no nil, or else returns def.
func Deref[T any](ptr *T, def T) T {
	if ptr != nil {
		return *ptr
	}
	return def
}
