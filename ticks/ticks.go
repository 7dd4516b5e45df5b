// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks selects the tick labels shown along each axis of a
// heatmap: none, the labels carried by the data source, or row and
// column numbers at a fixed stride.
package ticks

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/pheatmap/table"
)

// ErrInvalidStride is returned for a number stride that is not
// a positive integer.
var ErrInvalidStride = errors.New("ticks: stride must be a positive integer")

// Modes are the ways of choosing tick labels for an axis.
type Modes int32

const (
	// None shows no tick labels.
	None Modes = iota

	// FromSource shows the labels carried by the data source.
	FromSource

	// Numbers shows the index of every Stride-th entry.
	Numbers
)

var modeNames = [...]string{"None", "From file", "Numbers"}

var modeKeys = [...]string{"none", "file", "numbers"}

func (m Modes) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "Modes(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// ModesValues returns all of the modes.
func ModesValues() []Modes {
	return []Modes{None, FromSource, Numbers}
}

// ParseMode parses a mode, ignoring case. It accepts the display names
// and the short forms none, file, from-file, source, numbers and numeric.
func ParseMode(s string) (Modes, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return None, nil
	}
	for _, m := range ModesValues() {
		if s == modeKeys[m] || s == strings.ToLower(modeNames[m]) {
			return m, nil
		}
	}
	switch s {
	case "from-file", "source":
		return FromSource, nil
	case "numeric":
		return Numbers, nil
	}
	return None, fmt.Errorf("ticks: unknown label mode %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (m Modes) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(modeKeys) {
		return nil, fmt.Errorf("ticks: invalid mode %d", int(m))
	}
	return []byte(modeKeys[m]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Modes) UnmarshalText(text []byte) error {
	md, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = md
	return nil
}

// Spec specifies the tick labels of one axis.
type Spec struct {

	// Mode is how the labels are chosen.
	Mode Modes `toml:"mode" yaml:"mode"`

	// Stride is the spacing of numbered labels in Numbers mode.
	// Zero means unspecified, which is a stride of 1.
	Stride int `toml:"stride" yaml:"stride"`
}

func (sp Spec) String() string {
	if sp.Mode == Numbers {
		return fmt.Sprintf("%s (stride %d)", sp.Mode, max(sp.Stride, 1))
	}
	return sp.Mode.String()
}

// Sizer is a source of axis sizes and labels, such as a [table.Table].
type Sizer interface {

	// Size returns the number of entries along the given axis.
	Size(axis table.Axes) int

	// SourceLabels returns the source labels of the given axis, or nil.
	SourceLabels(axis table.Axes) []string
}

// Labels returns one tick label for each entry along the given axis,
// with empty strings where no label is shown. In FromSource mode, a
// source without labels for the axis gives all empty labels.
func Labels(src Sizer, axis table.Axes, spec Spec) ([]string, error) {
	n := src.Size(axis)
	lbls := make([]string, n)
	switch spec.Mode {
	case None:
	case FromSource:
		sl := src.SourceLabels(axis)
		if len(sl) != n {
			slog.Debug("no source labels, leaving axis unlabeled", "axis", axis, "labels", len(sl), "size", n)
			break
		}
		copy(lbls, sl)
	case Numbers:
		stride := spec.Stride
		if stride == 0 {
			stride = 1
		}
		if stride < 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidStride, stride)
		}
		for i := 0; i < n; i += stride {
			lbls[i] = strconv.Itoa(i)
		}
	default:
		return nil, fmt.Errorf("ticks: invalid mode %d", int(spec.Mode))
	}
	return lbls, nil
}

// XY returns the x axis labels, taken from the columns, and the
// y axis labels, taken from the rows.
func XY(src Sizer, x, y Spec) (xLabels, yLabels []string, err error) {
	xLabels, err = Labels(src, table.Cols, x)
	if err != nil {
		return nil, nil, fmt.Errorf("x axis: %w", err)
	}
	yLabels, err = Labels(src, table.Rows, y)
	if err != nil {
		return nil, nil, fmt.Errorf("y axis: %w", err)
	}
	return xLabels, yLabels, nil
}

// ParseStride parses a stride typed by a user. An empty string
// is a stride of 1, and anything but a positive integer gives
// [ErrInvalidStride].
func ParseStride(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidStride, s)
	}
	return v, nil
}
