// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package plotting

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/go-a2a/plotmcp/internal/pool"
	"github.com/go-a2a/plotmcp/pkg/logging"
	"github.com/go-a2a/plotmcp/types"
)

// colorBarShare is the fraction of the figure width given to a color bar.
const colorBarShare = 0.14

// ErrFigureClosed is returned when rendering a figure twice.
var ErrFigureClosed = errors.New("plotting: figure is closed")

// Render encodes fig as format and closes it, whatever the outcome.
//
// PNG output is rasterized at dpi and cropped to its content plus a small
// margin. PDF and SVG output keep the physical size of the figure.
func Render(ctx context.Context, fig *Figure, format types.Format, dpi int) (*types.Result, error) {
	if fig == nil {
		return nil, ErrFigureClosed
	}
	defer fig.Close()
	if fig.Closed() {
		return nil, ErrFigureClosed
	}

	var (
		res *types.Result
		err error
	)
	switch format {
	case types.FormatPNG:
		res, err = renderPNG(fig, dpi)
	case types.FormatPDF:
		res, err = renderVector(fig, format, vgpdf.New(fig.width, fig.height))
	case types.FormatSVG:
		res, err = renderVector(fig, format, vgsvg.New(fig.width, fig.height))
	default:
		return nil, &types.UnsupportedFormatError{Format: string(format), Supported: types.SupportedFormats}
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	logging.FromContext(ctx).DebugContext(ctx, "rendered figure",
		slog.String("format", string(format)),
		slog.Int("bytes", len(res.Data)),
	)
	return res, nil
}

type vectorCanvas interface {
	vg.CanvasSizer
	io.WriterTo
}

func renderVector(fig *Figure, format types.Format, c vectorCanvas) (*types.Result, error) {
	fig.draw(draw.New(c))

	buf := pool.Buffer.Get()
	defer pool.Buffer.Put(buf)
	if _, err := c.WriteTo(buf); err != nil {
		return nil, err
	}
	return &types.Result{Format: format, Data: bytes.Clone(buf.Bytes())}, nil
}

func renderPNG(fig *Figure, dpi int) (*types.Result, error) {
	if dpi <= 0 {
		return nil, types.InvalidArgument("output.dpi", "must be positive, got %d", dpi)
	}

	c := vgimg.NewWith(vgimg.UseWH(fig.width, fig.height), vgimg.UseDPI(dpi))
	fig.draw(draw.New(c))
	img := trim(c.Image(), max(dpi/10, 1))

	buf := pool.Buffer.Get()
	defer pool.Buffer.Put(buf)
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return &types.Result{Format: types.FormatPNG, Image: img, Data: bytes.Clone(buf.Bytes())}, nil
}

// draw lays out the plot and, when present, its color bar on dc.
func (f *Figure) draw(dc draw.Canvas) {
	a := f.Axes
	a.compose()
	if a.colorbar == nil {
		a.Plot.Draw(dc)
		return
	}

	w := dc.Max.X - dc.Min.X
	barW := w * colorBarShare
	a.Plot.Draw(draw.Crop(dc, 0, -barW, 0, 0))

	bar := plot.New()
	bar.HideX()
	bar.Add(a.colorbar)
	bar.Draw(draw.Crop(dc, w-barW, 0, 0, 0))
}

// trim crops img to the bounding box of its non-white pixels grown by pad.
func trim(img image.Image, pad int) image.Image {
	b := img.Bounds()
	box := image.Rectangle{Min: b.Max, Max: b.Min}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r == 0xffff && g == 0xffff && bl == 0xffff {
				continue
			}
			box.Min.X, box.Min.Y = min(box.Min.X, x), min(box.Min.Y, y)
			box.Max.X, box.Max.Y = max(box.Max.X, x+1), max(box.Max.Y, y+1)
		}
	}
	if box.Empty() {
		return img
	}

	box = box.Inset(-pad).Intersect(b)
	sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	})
	if !ok {
		return img
	}
	return sub.SubImage(box)
}
