// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heatmap renders a grid of values as a heatmap figure
// using gonum/plot, and saves the figure as a raster or vector file.
package heatmap

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"cogentcore.org/pheatmap/colors"
	"cogentcore.org/pheatmap/colors/colormap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

var (
	// ErrUnsupportedFormat is returned when saving to a file
	// extension that no canvas supports.
	ErrUnsupportedFormat = errors.New("heatmap: unsupported output format")

	// ErrLabelCount is returned when the number of tick labels
	// does not match the grid size.
	ErrLabelCount = errors.New("heatmap: tick label count does not match grid")

	// ErrEmpty is returned for a grid with no cells.
	ErrEmpty = errors.New("heatmap: empty grid")
)

// Grid is a rows x cols grid of values, such as a [table.Table].
type Grid interface {

	// Dims returns the number of rows and columns.
	Dims() (rows, cols int)

	// At returns the value at the given row and column.
	At(r, c int) float64
}

// Options are the rendering options of a heatmap.
type Options struct {

	// Fast renders a bare raster image of the grid with
	// no axes, tick labels, color bar or title.
	Fast bool

	// Width and Height are the figure size. When zero, they are
	// derived from the grid so that cells are CellSize squares.
	Width, Height vg.Length

	// CellSize is the edge length of a cell for derived sizes.
	CellSize vg.Length

	// DPI is the resolution of raster output.
	DPI int

	// NaNColor is the color of NaN cells.
	NaNColor color.RGBA

	// Title is an optional figure title.
	Title string

	// ColorBar is whether an annotated heatmap has a color bar legend.
	ColorBar bool
}

// Defaults sets the default options.
func (o *Options) Defaults() {
	o.CellSize = 12
	o.DPI = 96
	o.NaNColor = colors.Transparent
	o.ColorBar = true
}

// DefaultOptions returns options with default values.
func DefaultOptions() Options {
	var o Options
	o.Defaults()
	return o
}

const (
	minFigure = 2 * vg.Inch
	maxFigure = 30 * vg.Inch

	// barWidth is the width of the color bar strip.
	barWidth = 0.9 * vg.Inch

	// rotateAbove is the number of columns above which x tick
	// labels are drawn vertically.
	rotateAbove = 20
)

// gridXYZ adapts a [Grid] to [plotter.GridXYZ] with row 0 at the top.
type gridXYZ struct {
	Grid
	rows, cols int
}

func (g gridXYZ) Dims() (c, r int)   { return g.cols, g.rows }
func (g gridXYZ) Z(c, r int) float64 { return g.At(g.rows-1-r, c) }
func (g gridXYZ) X(c int) float64    { return float64(c) }
func (g gridXYZ) Y(r int) float64    { return float64(r) }

// Render renders the given grid as a heatmap with the given tick labels
// and color map. Empty labels are not shown, and the labels are ignored
// in fast mode, but there must be one per column and row.
func Render(g Grid, xLabels, yLabels []string, cm *colormap.Map, opts Options) (*Figure, error) {
	rows, cols := g.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmpty
	}
	if len(xLabels) != cols {
		return nil, fmt.Errorf("%w: %d x labels for %d columns", ErrLabelCount, len(xLabels), cols)
	}
	if len(yLabels) != rows {
		return nil, fmt.Errorf("%w: %d y labels for %d rows", ErrLabelCount, len(yLabels), rows)
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 12
	}
	if opts.DPI <= 0 {
		opts.DPI = 96
	}
	zmin, zmax := valueRange(g, rows, cols)
	pal := cm.Clone().SetRange(zmin, zmax)

	hm := plotter.NewHeatMap(gridXYZ{g, rows, cols}, pal.Palette(pal.NumColors()))
	hm.Min, hm.Max = zmin, zmax
	hm.NaN = opts.NaNColor

	p := plot.New()
	p.Add(hm)
	p.X.Padding, p.Y.Padding = 0, 0
	fig := &Figure{Plot: p, Options: opts, rows: rows, cols: cols}
	if opts.Fast {
		hm.Rasterized = true
		p.HideAxes()
	} else {
		p.Title.Text = opts.Title
		setTicks(&p.X, xLabels, func(i int) float64 { return float64(i) })
		setTicks(&p.Y, yLabels, func(i int) float64 { return float64(rows - 1 - i) })
		if cols > rotateAbove {
			p.X.Tick.Label.Rotation = math.Pi / 2
			p.X.Tick.Label.XAlign = text.XRight
			p.X.Tick.Label.YAlign = text.YCenter
		}
		if opts.ColorBar {
			fig.bar = colorBar(pal)
		}
	}
	fig.Width, fig.Height = fig.size()
	slog.Debug("rendered heatmap", "rows", rows, "cols", cols, "min", zmin, "max", zmax, "cmap", cm.Title, "fast", opts.Fast)
	return fig, nil
}

// valueRange returns the range of the non-NaN values,
// widened to a unit range when they are all equal.
func valueRange(g Grid, rows, cols int) (zmin, zmax float64) {
	zmin, zmax = math.Inf(1), math.Inf(-1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := g.At(r, c)
			if math.IsNaN(v) {
				continue
			}
			zmin = math.Min(zmin, v)
			zmax = math.Max(zmax, v)
		}
	}
	if math.IsInf(zmin, 1) {
		return 0, 1
	}
	if zmin == zmax {
		zmax = zmin + 1
	}
	return zmin, zmax
}

// setTicks puts the non-empty labels on the given axis
// and hides its line.
func setTicks(ax *plot.Axis, labels []string, pos func(i int) float64) {
	ts := make([]plot.Tick, 0, len(labels))
	for i, lb := range labels {
		if lb == "" {
			continue
		}
		ts = append(ts, plot.Tick{Value: pos(i), Label: lb})
	}
	ax.Tick.Marker = plot.ConstantTicks(ts)
	ax.Width = 0
}

// colorBar returns a plot with a vertical color bar for the given map.
func colorBar(cm *colormap.Map) *plot.Plot {
	bar := plot.New()
	bar.HideX()
	bar.X.Padding, bar.Y.Padding = 0, 0
	bar.Y.Width = 0
	cb := &plotter.ColorBar{ColorMap: cm, Vertical: true}
	if cm.Indexed {
		cb.Colors = len(cm.Colors)
	}
	bar.Add(cb)
	return bar
}
