// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/pheatmap/base/iox/imagex"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Figure is a rendered heatmap that can be drawn onto any
// gonum canvas and saved in raster or vector formats.
type Figure struct {

	// Plot is the heatmap plot.
	Plot *plot.Plot

	// Width and Height are the size of the figure.
	Width, Height vg.Length

	// Options are the options the figure was rendered with.
	Options Options

	// bar is the color bar plot, drawn in a strip on the right.
	bar *plot.Plot

	rows, cols int
}

// HasColorBar returns whether the figure has a color bar legend.
func (f *Figure) HasColorBar() bool {
	return f.bar != nil
}

// size returns the figure size: the size in the options if set,
// otherwise one with square cells of the option cell size.
func (f *Figure) size() (w, h vg.Length) {
	w, h = f.Options.Width, f.Options.Height
	cs := f.Options.CellSize
	if w <= 0 {
		w = vg.Length(f.cols) * cs
		if !f.Options.Fast {
			w += vg.Inch
			if f.bar != nil {
				w += barWidth
			}
		}
		w = clamp(w)
	}
	if h <= 0 {
		h = vg.Length(f.rows) * cs
		if !f.Options.Fast {
			h += 0.75 * vg.Inch
			if f.Options.Title != "" {
				h += 0.25 * vg.Inch
			}
		}
		h = clamp(h)
	}
	return w, h
}

func clamp(l vg.Length) vg.Length {
	return min(max(l, minFigure), maxFigure)
}

// Draw draws the figure onto the given canvas.
func (f *Figure) Draw(c draw.Canvas) {
	if f.bar == nil {
		f.Plot.Draw(c)
		return
	}
	f.Plot.Draw(draw.Crop(c, 0, -barWidth, 0, 0))
	bc := draw.Crop(c, c.Max.X-c.Min.X-barWidth+0.25*vg.Inch, 0, 0, 0)
	if f.Plot.Title.Text != "" {
		bc = draw.Crop(bc, 0, 0, 0, -0.25*vg.Inch)
	}
	f.bar.Draw(bc)
}

// Image renders the figure as a raster image at the option DPI.
func (f *Figure) Image() *image.RGBA {
	c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.Options.DPI))
	f.Draw(draw.New(c))
	return imagex.AsRGBA(c.Image())
}

// Save saves the figure to the given file, with the format given by
// its extension: png, jpg, jpeg, gif, tif, tiff, bmp, svg, pdf or eps.
func (f *Figure) Save(filename string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !IsFormat(format) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := f.Write(bw, format); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return fp.Close()
}

// vectorFormats are the formats written by vector canvases.
var vectorFormats = map[string]bool{"svg": true, "pdf": true, "eps": true}

// IsFormat returns whether the given format, a file extension
// without the dot, can be written.
func IsFormat(format string) bool {
	format = strings.ToLower(format)
	if vectorFormats[format] {
		return true
	}
	imf, err := imagex.ExtToFormat(format)
	return err == nil && imf.CanWrite()
}

// Write writes the figure to the given writer in the given format,
// a file extension without the dot.
func (f *Figure) Write(w io.Writer, format string) error {
	format = strings.ToLower(format)
	var c vg.CanvasWriterTo
	switch format {
	case "svg":
		c = vgsvg.New(f.Width, f.Height)
	case "pdf":
		c = vgpdf.New(f.Width, f.Height)
	case "eps":
		c = vgeps.NewTitle(f.Width, f.Height, f.Plot.Title.Text)
	default:
		imf, err := imagex.ExtToFormat(format)
		if err != nil || !imf.CanWrite() {
			return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
		}
		return imagex.Write(f.Image(), w, imf)
	}
	f.Draw(draw.New(rgbaCanvas{c}))
	_, err := c.WriteTo(w)
	return err
}

// rgbaCanvas draws images as 8-bit RGBA. gonum draws color bars
// and rasterized heatmaps as 16-bit images, which vgpdf cannot embed.
type rgbaCanvas struct {
	vg.CanvasSizer
}

func (c rgbaCanvas) DrawImage(rect vg.Rectangle, img image.Image) {
	c.CanvasSizer.DrawImage(rect, imagex.AsRGBA(img))
}
