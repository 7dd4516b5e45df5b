// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"cogentcore.org/pheatmap/base/errors"
	"cogentcore.org/pheatmap/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestNew(t *testing.T) {
	tb, err := New([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	rows, cols := tb.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 6.0, tb.At(1, 2))
	assert.Equal(t, []float64{4, 5, 6}, tb.Row(1))
	assert.Equal(t, 2, tb.Size(Rows))
	assert.Equal(t, 3, tb.Size(Cols))
	assert.Nil(t, tb.SourceLabels(Rows))

	_, err = New([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrMalformedData)
	_, err = New(nil)
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestMinMax(t *testing.T) {
	tb, err := New([][]float64{{math.NaN(), 2}, {-1, 7}})
	require.NoError(t, err)
	mn, mx, ok := tb.MinMax()
	assert.True(t, ok)
	assert.Equal(t, -1.0, mn)
	assert.Equal(t, 7.0, mx)

	tb, err = New([][]float64{{math.NaN()}})
	require.NoError(t, err)
	_, _, ok = tb.MinMax()
	assert.False(t, ok)
}

func TestOpenCSV(t *testing.T) {
	fn := writeFile(t, "grid.csv", "1,2,3\n4,5,6\n")
	tb, err := Open(fn)
	require.NoError(t, err)
	rows, cols := tb.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, CSV, tb.Kind)
	assert.Equal(t, fn, tb.Source)
	assert.Equal(t, 5.0, tb.At(1, 1))
	assert.Equal(t, []string{"0", "1"}, tb.SourceLabels(Rows))
	assert.Equal(t, []string{"0", "1", "2"}, tb.SourceLabels(Cols))
}

func TestReadCSVValues(t *testing.T) {
	tb, err := ReadCSV(strings.NewReader("1, nan,3\n\n,NA, 2.5e1\n"), Comma)
	require.NoError(t, err)
	rows, cols := tb.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.True(t, math.IsNaN(tb.At(0, 1)))
	assert.True(t, math.IsNaN(tb.At(1, 0)))
	assert.True(t, math.IsNaN(tb.At(1, 1)))
	assert.Equal(t, 25.0, tb.At(1, 2))
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("1,2\n3\n"), Comma)
	assert.ErrorIs(t, err, ErrMalformedData)
	_, err = ReadCSV(strings.NewReader("1,x\n"), Comma)
	assert.ErrorIs(t, err, ErrMalformedData)
	assert.ErrorContains(t, err, "row 0 col 1")
	_, err = ReadCSV(strings.NewReader(""), Comma)
	assert.ErrorIs(t, err, ErrMalformedData)
	_, err = ReadCSV(strings.NewReader("\n  \n"), Space)
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestDetectDelim(t *testing.T) {
	assert.Equal(t, Tab, detectDelim([]byte("\n1\t2\n")))
	assert.Equal(t, Comma, detectDelim([]byte("1,2\n")))
	assert.Equal(t, Space, detectDelim([]byte("1   2\n")))

	fn := writeFile(t, "grid.txt", "1  2   3\n4 5 6\n")
	tb, err := Open(fn)
	require.NoError(t, err)
	_, cols := tb.Dims()
	assert.Equal(t, 3, cols)
	assert.Equal(t, 6.0, tb.At(1, 2))

	fn = writeFile(t, "grid.tsv", "1\t2\n3\t4\n")
	tb, err = Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 4.0, tb.At(1, 1))
}

func TestLoaderDelim(t *testing.T) {
	fn := writeFile(t, "grid.csv", "1;2\n")
	ld := NewLoader()
	ld.Delim = Space
	tb, err := ld.Open(writeFile(t, "grid.csv", "1 2\n3 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, tb.At(1, 0))

	_, err = Open(fn)
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(writeFile(t, "grid.json", "[]"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Open(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Open(writeFile(t, "fake.png", "1,2,3"))
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{"data/grid.csv": {Data: []byte("1,2\n3,4\n")}}
	tb, err := OpenFS(fsys, "data/grid.csv")
	require.NoError(t, err)
	assert.Equal(t, 4.0, tb.At(1, 1))
	assert.Equal(t, "data/grid.csv", tb.Source)
}

func TestOpenGrayImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(2, 0, color.Gray{200})
	img.SetGray(0, 1, color.Gray{17})
	fn := filepath.Join(t.TempDir(), "gray.png")
	require.NoError(t, imagex.Save(img, fn))

	tb, err := Open(fn)
	require.NoError(t, err)
	rows, cols := tb.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, Image, tb.Kind)
	assert.Equal(t, 200.0, tb.At(0, 2))
	assert.Equal(t, 17.0, tb.At(1, 0))
	assert.Nil(t, tb.SourceLabels(Rows))
	assert.Nil(t, tb.SourceLabels(Cols))
}

func TestImage16(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 2, 1))
	img.SetGray16(1, 0, color.Gray16{40000})
	tb, err := FromImage(img, Strict)
	require.NoError(t, err)
	assert.Equal(t, 40000.0, tb.At(0, 1))
}

func TestImageSqueeze(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			v := uint8(10*x + 100*y)
			img.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}
	fn := filepath.Join(t.TempDir(), "rgb.bmp")
	require.NoError(t, imagex.Save(img, fn))
	tb, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 110.0, tb.At(1, 1))

	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	_, err = FromImage(img, Strict)
	assert.True(t, errors.Is(err, ErrMalformedData))

	tb, err = FromImage(img, Luminance)
	require.NoError(t, err)
	assert.InDelta(t, 0.3*255, tb.At(0, 0), 2)
	assert.InDelta(t, 110.0, tb.At(1, 1), 1)
}

func TestEnumText(t *testing.T) {
	var dl Delims
	require.NoError(t, dl.UnmarshalText([]byte("Space")))
	assert.Equal(t, Space, dl)
	assert.Error(t, dl.UnmarshalText([]byte("semicolon")))

	var rd Reductions
	require.NoError(t, rd.UnmarshalText([]byte("luminance")))
	assert.Equal(t, Luminance, rd)
	b, err := rd.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "luminance", string(b))
	assert.Equal(t, "Cols", Cols.String())
}
