// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"cogentcore.org/pheatmap/base/iox/imagex"
	"github.com/anthonynsimon/bild/effect"
	"github.com/h2non/filetype"
)

// ReadImage reads a table from an encoded image. The image must be
// single-channel, or reducible to one channel with the given reduction.
// Rows are image y and columns are image x. Values keep the native
// depth of the image: 0-255 for 8-bit images and 0-65535 for 16-bit.
// Image tables have no source labels.
func ReadImage(r io.Reader, reduce Reductions) (*Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !filetype.IsImage(b) {
		return nil, fmt.Errorf("%w: content is not an image", ErrMalformedData)
	}
	img, _, err := imagex.Read(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	return FromImage(img, reduce)
}

// FromImage returns a table holding the single channel of the given image.
func FromImage(img image.Image, reduce Reductions) (*Table, error) {
	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrMalformedData)
	}
	flat := make([]float64, rows*cols)
	switch im := img.(type) {
	case *image.Gray:
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				flat[y*cols+x] = float64(im.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
	case *image.Gray16:
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				flat[y*cols+x] = float64(im.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
	default:
		if !squeeze(img, flat) {
			if reduce != Luminance {
				return nil, fmt.Errorf("%w: color image cannot be reduced to a single channel", ErrMalformedData)
			}
			gray := effect.Grayscale(img)
			gb := gray.Bounds()
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					flat[y*cols+x] = float64(gray.RGBAAt(gb.Min.X+x, gb.Min.Y+y).R)
				}
			}
		}
	}
	t := newDense(rows, cols, flat)
	t.Kind = Image
	return t, nil
}

// squeeze fills flat with the shared channel value of an opaque image
// whose pixels all have R = G = B, returning false if it is not one.
func squeeze(img image.Image, flat []float64) bool {
	bounds := img.Bounds()
	cols := bounds.Dx()
	deep := imagex.Is16Bit(img)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if r != g || g != b || a != 0xffff {
				return false
			}
			v := r
			if !deep {
				v >>= 8
			}
			flat[(y-bounds.Min.Y)*cols+(x-bounds.Min.X)] = float64(v)
		}
	}
	return true
}
