// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides a rectangular grid of float64 values
// loaded from delimited text files or single-channel images.
package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrUnsupportedFormat is returned for a file whose extension
	// is neither delimited text nor a supported image format.
	ErrUnsupportedFormat = errors.New("table: unsupported file format")

	// ErrMalformedData is returned when the content of a file cannot
	// be interpreted as a rectangular numeric grid.
	ErrMalformedData = errors.New("table: malformed data")
)

// Axes are the two axes of a [Table].
type Axes int32

const (
	// Rows is the row axis, drawn along the y axis of a heatmap.
	Rows Axes = iota

	// Cols is the column axis, drawn along the x axis of a heatmap.
	Cols
)

func (a Axes) String() string {
	switch a {
	case Rows:
		return "Rows"
	case Cols:
		return "Cols"
	}
	return "Axes(" + strconv.Itoa(int(a)) + ")"
}

// Kinds are the kinds of source a [Table] was loaded from.
type Kinds int32

const (
	// CSV is delimited numeric text.
	CSV Kinds = iota

	// Image is a single-channel raster image.
	Image
)

func (k Kinds) String() string {
	switch k {
	case CSV:
		return "CSV"
	case Image:
		return "Image"
	}
	return "Kinds(" + strconv.Itoa(int(k)) + ")"
}

// Table is a rows x cols grid of values, with optional labels
// for each axis taken from the source. A Table is not modified
// after it is loaded.
type Table struct {

	// Source is the path the table was loaded from, if any.
	Source string

	// Kind is the kind of source the table was loaded from.
	Kind Kinds

	data      *mat.Dense
	rowLabels []string
	colLabels []string
}

// New returns a new table holding a copy of the given rows,
// which must be non-empty and all of the same length.
func New(data [][]float64) (*Table, error) {
	rows := len(data)
	if rows == 0 || len(data[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedData)
	}
	cols := len(data[0])
	flat := make([]float64, 0, rows*cols)
	for r, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrMalformedData, r, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return &Table{data: mat.NewDense(rows, cols, flat)}, nil
}

// newDense returns a table backed by the given row-major values,
// taking ownership of them.
func newDense(rows, cols int, flat []float64) *Table {
	return &Table{data: mat.NewDense(rows, cols, flat)}
}

// Dims returns the number of rows and columns.
func (t *Table) Dims() (rows, cols int) {
	return t.data.Dims()
}

// At returns the value at the given row and column.
func (t *Table) At(r, c int) float64 {
	return t.data.At(r, c)
}

// Row returns a copy of the given row.
func (t *Table) Row(r int) []float64 {
	return mat.Row(nil, r, t.data)
}

// Size returns the number of entries along the given axis.
func (t *Table) Size(axis Axes) int {
	rows, cols := t.Dims()
	if axis == Cols {
		return cols
	}
	return rows
}

// SourceLabels returns the labels the source carries for the given
// axis, or nil if it has none.
func (t *Table) SourceLabels(axis Axes) []string {
	if axis == Cols {
		return t.colLabels
	}
	return t.rowLabels
}

// MinMax returns the minimum and maximum non-NaN values.
// ok is false if every value is NaN.
func (t *Table) MinMax() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range t.data.RawMatrix().Data {
		if math.IsNaN(v) {
			continue
		}
		ok = true
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if !ok {
		return 0, 0, false
	}
	return
}

func (t *Table) String() string {
	rows, cols := t.Dims()
	if t.Source == "" {
		return fmt.Sprintf("%s table %dx%d", t.Kind, rows, cols)
	}
	return fmt.Sprintf("%s table %dx%d from %s", t.Kind, rows, cols, t.Source)
}

func indexLabels(n int) []string {
	lbls := make([]string, n)
	for i := range lbls {
		lbls[i] = strconv.Itoa(i)
	}
	return lbls
}
