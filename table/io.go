// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/pheatmap/base/errors"
	"cogentcore.org/pheatmap/base/iox/imagex"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value.
	// Runs of spaces count as one delimiter.
	Space

	// Detect is used during reading a file: reads the first line and detects tabs or commas
	Detect
)

var delimNames = [...]string{"tab", "comma", "space", "detect"}

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

func (dl Delims) String() string {
	if dl < 0 || int(dl) >= len(delimNames) {
		return "Delims(" + strconv.Itoa(int(dl)) + ")"
	}
	return delimNames[dl]
}

// MarshalText implements [encoding.TextMarshaler].
func (dl Delims) MarshalText() ([]byte, error) {
	return []byte(dl.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (dl *Delims) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, nm := range delimNames {
		if s == nm {
			*dl = Delims(i)
			return nil
		}
	}
	return fmt.Errorf("table: invalid delimiter %q", s)
}

// detectDelim returns the delimiter used by the first non-blank line
// of the given content.
func detectDelim(b []byte) Delims {
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" {
			continue
		}
		switch {
		case strings.ContainsRune(ln, '\t'):
			return Tab
		case strings.ContainsRune(ln, ','):
			return Comma
		}
		return Space
	}
	return Comma
}

// Reductions are the ways a color image is reduced to a single channel.
type Reductions int32

const (
	// Strict only accepts images that are already single-channel, or
	// opaque color images whose pixels all have R = G = B.
	Strict Reductions = iota

	// Luminance converts color images to gray by luminance.
	Luminance
)

var reductionNames = [...]string{"strict", "luminance"}

func (rd Reductions) String() string {
	if rd < 0 || int(rd) >= len(reductionNames) {
		return "Reductions(" + strconv.Itoa(int(rd)) + ")"
	}
	return reductionNames[rd]
}

// MarshalText implements [encoding.TextMarshaler].
func (rd Reductions) MarshalText() ([]byte, error) {
	return []byte(rd.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (rd *Reductions) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, nm := range reductionNames {
		if s == nm {
			*rd = Reductions(i)
			return nil
		}
	}
	return fmt.Errorf("table: invalid image reduction %q", s)
}

// Loader loads tables from files.
type Loader struct {

	// Delim is the delimiter for text files. When it is Detect,
	// .csv files use commas, .tsv files use tabs, and other text
	// files are sniffed from their first line.
	Delim Delims

	// Reduce is how color images are reduced to a single channel.
	Reduce Reductions
}

// Defaults sets the default loader settings.
func (ld *Loader) Defaults() {
	ld.Delim = Detect
	ld.Reduce = Strict
}

// NewLoader returns a new loader with default settings.
func NewLoader() *Loader {
	ld := &Loader{}
	ld.Defaults()
	return ld
}

// Open loads the given file with default loader settings.
func Open(path string) (*Table, error) {
	return NewLoader().Open(path)
}

// OpenFS loads the given file from the given filesystem with
// default loader settings.
func OpenFS(fsys fs.FS, name string) (*Table, error) {
	return NewLoader().OpenFS(fsys, name)
}

// Open loads a table from the given file, dispatching on its extension.
func (ld *Loader) Open(path string) (*Table, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ld.read(fp, path)
}

// OpenFS is the version of [Loader.Open] that uses an [fs.FS] filesystem.
func (ld *Loader) OpenFS(fsys fs.FS, name string) (*Table, error) {
	fp, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ld.read(fp, name)
}

func (ld *Loader) read(r io.Reader, path string) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var t *Table
	var err error
	switch {
	case ext == ".csv" || ext == ".tsv" || ext == ".txt" || ext == ".dat":
		delim := ld.Delim
		if delim == Detect {
			switch ext {
			case ".csv":
				delim = Comma
			case ".tsv":
				delim = Tab
			}
		}
		t, err = ReadCSV(r, delim)
	case imagex.IsImageExt(path):
		t, err = ReadImage(r, ld.Reduce)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.Source = path
	rows, cols := t.Dims()
	slog.Debug("loaded table", "file", path, "kind", t.Kind, "rows", rows, "cols", cols)
	return t, nil
}

// ReadCSV reads a numeric table from delimited text. Every line is
// a row of data: there is no header row or index column. Empty fields
// and nan / NA values become NaN. Blank lines are skipped.
// The source labels of both axes are the positional indexes.
func ReadCSV(r io.Reader, delim Delims) (*Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if delim == Detect {
		delim = detectDelim(b)
	}
	var recs [][]string
	if delim == Space {
		recs = splitFields(b)
	} else {
		cr := csv.NewReader(bytes.NewReader(b))
		cr.Comma = delim.Rune()
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		recs, err = cr.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
		}
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: no data", ErrMalformedData)
	}
	rows, cols := len(recs), len(recs[0])
	flat := make([]float64, 0, rows*cols)
	for ri, rec := range recs {
		if len(rec) != cols {
			return nil, fmt.Errorf("%w: row %d has %d fields, expected %d", ErrMalformedData, ri, len(rec), cols)
		}
		for ci, str := range rec {
			v, err := parseValue(str)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %q is not a number", ErrMalformedData, ri, ci, str)
			}
			flat = append(flat, v)
		}
	}
	t := newDense(rows, cols, flat)
	t.Kind = CSV
	t.rowLabels = indexLabels(rows)
	t.colLabels = indexLabels(cols)
	return t, nil
}

func splitFields(b []byte) [][]string {
	var recs [][]string
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		flds := strings.Fields(sc.Text())
		if len(flds) == 0 {
			continue
		}
		recs = append(recs, flds)
	}
	errors.Log(sc.Err())
	return recs
}

func parseValue(str string) (float64, error) {
	str = strings.TrimSpace(str)
	switch str {
	case "", "nan", "NaN", "-NaN", "NA":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(str, 64)
}
