// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the configuration of the pheatmap command,
// read from a TOML or YAML file and overridden by command line flags.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/pheatmap/base/iox/tomlx"
	"cogentcore.org/pheatmap/base/iox/yamlx"
	"cogentcore.org/pheatmap/colors/colormap"
	"cogentcore.org/pheatmap/heatmap"
	"cogentcore.org/pheatmap/shell"
	"cogentcore.org/pheatmap/table"
	"cogentcore.org/pheatmap/ticks"
	"gonum.org/v1/plot/vg"
)

// Config is the configuration of the pheatmap command.
type Config struct {

	// ColorMap is the name of the catalog color map.
	ColorMap string `toml:"color_map" yaml:"color_map"`

	// Reverse is whether to reverse the color map.
	Reverse bool `toml:"reverse" yaml:"reverse"`

	// Light is a light palette as "R,G,B,N", used instead of ColorMap if set.
	Light string `toml:"light" yaml:"light"`

	// Dark is a dark palette as "R,G,B,N", used instead of ColorMap if set.
	Dark string `toml:"dark" yaml:"dark"`

	// Fast is whether to make fast plots.
	Fast bool `toml:"fast" yaml:"fast"`

	// X are the x axis tick labels.
	X ticks.Spec `toml:"x_labels" yaml:"x_labels"`

	// Y are the y axis tick labels.
	Y ticks.Spec `toml:"y_labels" yaml:"y_labels"`

	// Title is the figure title.
	Title string `toml:"title" yaml:"title"`

	// DPI is the resolution of raster output.
	DPI int `toml:"dpi" yaml:"dpi"`

	// CellSize is the cell edge in points.
	CellSize float64 `toml:"cell_size" yaml:"cell_size"`

	// ColorBar is whether to draw a color bar.
	ColorBar bool `toml:"color_bar" yaml:"color_bar"`

	// Delim is the delimiter of text files.
	Delim table.Delims `toml:"delim" yaml:"delim"`

	// Reduce is how color images are reduced to one channel.
	Reduce table.Reductions `toml:"reduce" yaml:"reduce"`

	// Trash moves files to the trash before overwriting them.
	Trash bool `toml:"trash" yaml:"trash"`

	// Features are the optional shell features.
	Features shell.Features `toml:"features" yaml:"features"`
}

// Defaults sets the default configuration.
func (c *Config) Defaults() {
	c.ColorMap = colormap.DefaultName
	c.X = ticks.Spec{Mode: ticks.None}
	c.Y = ticks.Spec{Mode: ticks.None}
	c.DPI = 96
	c.CellSize = 12
	c.ColorBar = true
	c.Delim = table.Detect
	c.Reduce = table.Strict
	c.Features.Defaults()
}

// New returns a new config with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Open reads the config from the given file, as TOML or YAML
// depending on its extension. Fields not in the file are unchanged.
func (c *Config) Open(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Open(c, filename)
	case ".yaml", ".yml":
		return yamlx.Open(c, filename)
	}
	return fmt.Errorf("config: %s: unknown config file type, must be .toml, .yaml or .yml", filename)
}

// Save writes the config to the given file, as TOML or YAML
// depending on its extension.
func (c *Config) Save(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Save(c, filename)
	case ".yaml", ".yml":
		return yamlx.Save(c, filename)
	}
	return fmt.Errorf("config: %s: unknown config file type, must be .toml, .yaml or .yml", filename)
}

// NewColorMap returns the color map of the config: a light or dark
// palette if one is set, otherwise the named catalog map.
func (c *Config) NewColorMap() (*colormap.Map, error) {
	if c.Light != "" && c.Dark != "" {
		return nil, fmt.Errorf("%w: only one of light and dark can be set", colormap.ErrInvalidColorSpec)
	}
	spec, light := c.Dark, false
	if c.Light != "" {
		spec, light = c.Light, true
	}
	if spec == "" {
		return colormap.Named(c.ColorMap, c.Reverse)
	}
	return colormap.ParseSeeded(spec, light, c.Reverse)
}

// RenderOptions returns the heatmap options of the config.
func (c *Config) RenderOptions() heatmap.Options {
	o := heatmap.DefaultOptions()
	o.Fast = c.Fast
	o.Title = c.Title
	o.ColorBar = c.ColorBar
	if c.DPI > 0 {
		o.DPI = c.DPI
	}
	if c.CellSize > 0 {
		o.CellSize = vg.Length(c.CellSize)
	}
	return o
}

// NewSession returns a new session configured by the config.
func (c *Config) NewSession(p shell.Prompter) (*shell.Session, error) {
	s := shell.NewSession(p, c.Features)
	s.Loader.Delim = c.Delim
	s.Loader.Reduce = c.Reduce
	s.TrashExisting = c.Trash
	s.Settings.X = c.X
	s.Settings.Y = c.Y
	s.Settings.Render = c.RenderOptions()
	if err := s.SetFast(c.Fast); err != nil {
		return nil, err
	}
	cm, err := c.NewColorMap()
	if err != nil {
		return nil, err
	}
	s.SetColorMap(cm)
	return s, nil
}
