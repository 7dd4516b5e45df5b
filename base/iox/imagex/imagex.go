// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex opens and saves raster images in the formats
// supported by the standard library and golang.org/x/image.
package imagex

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnknownFormat is returned for a file extension or
// decoder name that is not a supported image format.
var ErrUnknownFormat = errors.New("imagex: unknown image format")

// Formats are the supported image formats.
type Formats int32

const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP

	// WebP can only be decoded.
	WebP
)

var formatNames = [...]string{"None", "PNG", "JPEG", "GIF", "TIFF", "BMP", "WebP"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// extFormats maps lower case extensions and decoder names to formats.
var extFormats = map[string]Formats{
	"png":  PNG,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"gif":  GIF,
	"tif":  TIFF,
	"tiff": TIFF,
	"bmp":  BMP,
	"webp": WebP,
}

// jpegQuality is the quality of written JPEG images.
const jpegQuality = 90

var encoders = map[Formats]func(w io.Writer, im image.Image) error{
	PNG: png.Encode,
	JPEG: func(w io.Writer, im image.Image) error {
		return jpeg.Encode(w, im, &jpeg.Options{Quality: jpegQuality})
	},
	GIF: func(w io.Writer, im image.Image) error {
		return gif.Encode(w, im, nil)
	},
	TIFF: func(w io.Writer, im image.Image) error {
		return tiff.Encode(w, im, nil)
	},
	BMP: bmp.Encode,
}

// CanWrite returns whether images can be encoded in the format.
func (f Formats) CanWrite() bool {
	_, ok := encoders[f]
	return ok
}

// ExtToFormat returns the format of a file extension,
// with or without the leading dot.
func ExtToFormat(ext string) (Formats, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// IsImageExt returns whether the extension of the given filename
// is one of the supported image formats.
func IsImageExt(filename string) bool {
	_, err := ExtToFormat(filepath.Ext(filename))
	return err == nil
}

// Open opens an image file, returning the format it was
// decoded as, which need not match the file extension.
func Open(filename string) (image.Image, Formats, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer fp.Close()
	return Read(fp)
}

// Read decodes an image from the reader, sniffing its format.
func Read(r io.Reader) (image.Image, Formats, error) {
	im, name, err := image.Decode(r)
	if err != nil {
		return nil, None, err
	}
	f, err := ExtToFormat(name)
	return im, f, err
}

// Save saves the image to the given file, in the format
// given by its extension.
func Save(im image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	if !f.CanWrite() {
		return fmt.Errorf("imagex: cannot write %s images", f)
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := Write(im, bw, f); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return fp.Close()
}

// Write encodes the image to the writer in the given format.
func Write(im image.Image, w io.Writer, f Formats) error {
	enc, ok := encoders[f]
	if !ok {
		return fmt.Errorf("imagex: cannot write %s images", f)
	}
	return enc(w, im)
}
