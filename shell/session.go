// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shell is the presentation layer of pheatmap: a session
// holding the selected file, axis label settings, color map and the
// last plotted figure, with the operations a user performs on them.
// Dialogs are delegated to a [Prompter].
package shell

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/pheatmap/base/fsx"
	"cogentcore.org/pheatmap/colors/colormap"
	"cogentcore.org/pheatmap/heatmap"
	"cogentcore.org/pheatmap/table"
	"cogentcore.org/pheatmap/ticks"
	"github.com/jinzhu/copier"
)

var (
	// ErrNoPlot is returned when saving before anything has been plotted.
	ErrNoPlot = errors.New("no plotting done yet")

	// ErrCancelled is returned when the user cancels a dialog.
	ErrCancelled = errors.New("cancelled")

	// ErrFeatureDisabled is returned for an operation whose
	// feature is not enabled in the session.
	ErrFeatureDisabled = errors.New("feature not enabled")

	// ErrNoFile is returned when plotting before a file is selected.
	ErrNoFile = errors.New("no data file selected")
)

// Features are the optional features of a session.
type Features struct {

	// EnableFastPlot enables the fast plot option.
	EnableFastPlot bool `toml:"enable_fast_plot" yaml:"enable_fast_plot"`

	// EnableColorMapPicker enables the interactive color map chooser.
	EnableColorMapPicker bool `toml:"enable_color_map_picker" yaml:"enable_color_map_picker"`
}

// Defaults enables all features.
func (f *Features) Defaults() {
	f.EnableFastPlot = true
	f.EnableColorMapPicker = true
}

// Settings are the plot settings of a session.
type Settings struct {

	// X is the tick label spec of the x axis, for columns.
	X ticks.Spec

	// Y is the tick label spec of the y axis, for rows.
	Y ticks.Spec

	// Fast is whether to make a fast plot.
	Fast bool

	// Render are the other rendering options.
	Render heatmap.Options
}

// Defaults sets the default settings.
func (st *Settings) Defaults() {
	st.X = ticks.Spec{Mode: ticks.None}
	st.Y = ticks.Spec{Mode: ticks.None}
	st.Fast = false
	st.Render.Defaults()
}

// Session is the state of an interactive pheatmap session.
// All operations run on the caller's goroutine, and a Session
// is not safe for concurrent use.
type Session struct {

	// Features are the enabled optional features.
	Features Features

	// Prompter handles the dialogs of the session.
	Prompter Prompter

	// Loader loads the data file.
	Loader table.Loader

	// Filename is the data file to plot.
	Filename string

	// Settings are the current plot settings.
	Settings Settings

	// TrashExisting is whether an existing file is moved
	// to the trash before being overwritten by Save.
	TrashExisting bool

	// ColorMap is the current color map.
	ColorMap *colormap.Map

	// Table is the data of the last successful plot.
	Table *table.Table

	// Figure is the last successful plot, or nil.
	Figure *heatmap.Figure

	// Plotted are the settings of the last successful plot.
	Plotted Settings
}

// NewSession returns a new session with the given prompter and features
// and default settings.
func NewSession(p Prompter, f Features) *Session {
	s := &Session{Features: f, Prompter: p}
	s.Loader.Defaults()
	s.Settings.Defaults()
	s.ColorMap = colormap.Default()
	return s
}

// Browse selects the data file to plot. The path must name
// an existing file; a leading ~ is expanded.
func (s *Session) Browse(path string) error {
	fn, err := fsx.ExpandHome(path)
	if err != nil {
		return err
	}
	if fn == "" {
		return ErrNoFile
	}
	ok, err := fsx.FileExists(fn)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: file does not exist", fn)
	}
	s.Filename = fn
	return nil
}

// SetAxisLabels sets the tick label mode of the given axis. The stride
// is only used in [ticks.Numbers] mode, where an empty stride is 1 and
// anything but a positive integer is an error that leaves the axis
// unchanged.
func (s *Session) SetAxisLabels(axis table.Axes, mode ticks.Modes, stride string) error {
	spec := ticks.Spec{Mode: mode}
	if mode == ticks.Numbers {
		st, err := ticks.ParseStride(stride)
		if err != nil {
			return err
		}
		spec.Stride = st
	}
	if axis == table.Cols {
		s.Settings.X = spec
	} else {
		s.Settings.Y = spec
	}
	return nil
}

// SetFast sets whether to make fast plots.
func (s *Session) SetFast(fast bool) error {
	if fast && !s.Features.EnableFastPlot {
		return fmt.Errorf("fast plot: %w", ErrFeatureDisabled)
	}
	s.Settings.Fast = fast
	return nil
}

// SetColorMap sets the current color map.
func (s *Session) SetColorMap(cm *colormap.Map) {
	s.ColorMap = cm
	slog.Debug("set color map", "title", cm.Title)
}

// ChooseColorMap runs the color map chooser: a kind and reverse option,
// then a catalog name for standard maps, or a seed color and number of
// colors for light and dark palettes. The current map is only replaced
// when a valid map is chosen.
func (s *Session) ChooseColorMap() error {
	if !s.Features.EnableColorMapPicker {
		return fmt.Errorf("color map chooser: %w", ErrFeatureDisabled)
	}
	kind, reverse, ok, err := s.Prompter.ChooseKind()
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	var cm *colormap.Map
	switch kind {
	case colormap.Standard:
		name, ok, err := s.Prompter.ChooseName(colormap.ChoiceList(reverse))
		if err != nil {
			return err
		}
		if !ok {
			return ErrCancelled
		}
		cm, err = colormap.Named(name, false)
		if err != nil {
			return err
		}
	default:
		rgb, ok, err := s.Prompter.EnterRGB(kind)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCancelled
		}
		cm, err = colormap.SeededFromStrings(rgb.R, rgb.G, rgb.B, rgb.N, kind == colormap.LightPalette, reverse)
		if err != nil {
			return err
		}
	}
	s.SetColorMap(cm)
	return nil
}

// Plot loads the selected file and renders it with the current settings
// and color map. On any error, the previous table and figure are kept.
func (s *Session) Plot() error {
	if s.Filename == "" {
		return ErrNoFile
	}
	tb, err := s.Loader.Open(s.Filename)
	if err != nil {
		return err
	}
	st := Settings{}
	if err := copier.CopyWithOption(&st, &s.Settings, copier.Option{DeepCopy: true}); err != nil {
		return err
	}
	xl, yl, err := ticks.XY(tb, st.X, st.Y)
	if err != nil {
		return err
	}
	opts := st.Render
	opts.Fast = st.Fast && s.Features.EnableFastPlot
	fig, err := heatmap.Render(tb, xl, yl, s.ColorMap, opts)
	if err != nil {
		return err
	}
	s.Table, s.Figure, s.Plotted = tb, fig, st
	return nil
}

// Save saves the last plot to the given file, with the format given by
// its extension. An existing file is only overwritten if the prompter
// confirms it, and only once the new figure has been written.
func (s *Session) Save(path string) error {
	if s.Figure == nil {
		return ErrNoPlot
	}
	fn, err := fsx.ExpandHome(path)
	if err != nil {
		return err
	}
	if fn == "" {
		return ErrCancelled
	}
	ext := filepath.Ext(fn)
	if !heatmap.IsFormat(strings.TrimPrefix(ext, ".")) {
		return fmt.Errorf("%w: %q", heatmap.ErrUnsupportedFormat, fn)
	}
	exists, err := fsx.FileExists(fn)
	if err != nil {
		return err
	}
	if exists {
		ok, err := s.Prompter.Confirm("Overwrite?", "File exists - overwrite?")
		if err != nil {
			return err
		}
		if !ok {
			return ErrCancelled
		}
	}
	dir, base := filepath.Split(fn)
	tf, err := os.CreateTemp(dir, "."+strings.TrimSuffix(base, ext)+"-*"+ext)
	if err != nil {
		return err
	}
	tmp := tf.Name()
	tf.Close()
	defer os.Remove(tmp)
	if err := s.Figure.Save(tmp); err != nil {
		return err
	}
	if exists && s.TrashExisting {
		if err := fsx.Trash(fn); err != nil {
			return fmt.Errorf("moving %s to trash: %w", fn, err)
		}
	}
	if err := os.Rename(tmp, fn); err != nil {
		return err
	}
	s.Prompter.Info("Saved file", "Saved file to "+fn)
	return nil
}

// Status returns a multi-line summary of the session state.
func (s *Session) Status() string {
	sb := &strings.Builder{}
	file := s.Filename
	if file == "" {
		file = "(none)"
	}
	fmt.Fprintf(sb, "file:      %s\n", file)
	fmt.Fprintf(sb, "color map: %s\n", s.ColorMap.Title)
	fmt.Fprintf(sb, "x labels:  %s\n", s.Settings.X)
	fmt.Fprintf(sb, "y labels:  %s\n", s.Settings.Y)
	if s.Features.EnableFastPlot {
		fmt.Fprintf(sb, "fast plot: %v\n", s.Settings.Fast)
	}
	if s.Table != nil {
		fmt.Fprintf(sb, "plotted:   %s\n", s.Table)
	}
	return sb.String()
}
