// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"image"
)

// Result is a rendered plot.
//
// For [FormatPNG] both Image and Data are set, Data holding the PNG encoding of
// Image. For vector formats only Data is set.
type Result struct {
	Format Format
	Image  image.Image
	Data   []byte
}

// MIMEType returns the media type of the encoded bytes.
func (r *Result) MIMEType() string {
	return r.Format.MIMEType()
}

// Extension returns the file name extension for the encoded bytes, without the dot.
func (r *Result) Extension() string {
	return string(r.Format)
}

// Size returns the pixel dimensions of a raster result, or zero for vector results.
func (r *Result) Size() (width, height int) {
	if r.Image == nil {
		return 0, 0
	}
	b := r.Image.Bounds()
	return b.Dx(), b.Dy()
}
