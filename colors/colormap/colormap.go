// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides color maps that map normalized scalar
// values onto colors: a fixed catalog of named maps and palettes
// seeded from a single color.
package colormap

import (
	"errors"
	"image/color"
	"math"

	"cogentcore.org/pheatmap/colors"
	"gonum.org/v1/plot/palette"
)

var (
	// ErrUnknownPalette is returned for a name that is not in the catalog.
	ErrUnknownPalette = errors.New("colormap: unknown palette")

	// ErrInvalidColorSpec is returned for an invalid seed color or count.
	ErrInvalidColorSpec = errors.New("colormap: invalid color specification")
)

// Map maps a normalized value in [0, 1] onto a color by blending
// between an ordered list of color stops. A Map also carries a data
// range, which makes it usable as a [palette.ColorMap].
type Map struct {

	// Name is the catalog name or the seeded palette kind.
	Name string

	// Title is the display string for the map.
	Title string

	// Colors are the color stops, ordered from low to high values.
	Colors []color.RGBA

	// Reversed is whether the stops are in reverse of their catalog order.
	Reversed bool

	// Indexed is whether the stops are discrete bins
	// instead of points to blend between.
	Indexed bool

	// NoColor is the color used for NaN values.
	NoColor color.RGBA

	min, max float64
}

func newMap(name string, stops []color.RGBA, indexed bool) *Map {
	return &Map{Name: name, Title: name, Colors: stops, Indexed: indexed, max: 1}
}

// Clone returns a deep copy of the map.
func (cm *Map) Clone() *Map {
	cp := *cm
	cp.Colors = append([]color.RGBA(nil), cm.Colors...)
	return &cp
}

// Map returns the color for the given normalized value in [0, 1].
// Values outside that range are clamped, and NaN maps to [Map.NoColor].
func (cm *Map) Map(v float64) color.RGBA {
	nc := len(cm.Colors)
	switch {
	case math.IsNaN(v) || nc == 0:
		return cm.NoColor
	case nc == 1 || v <= 0:
		return cm.Colors[0]
	case v >= 1:
		return cm.Colors[nc-1]
	}
	if cm.Indexed {
		return cm.Colors[min(int(v*float64(nc)), nc-1)]
	}
	pos := v * float64(nc-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo >= nc-1 {
		return cm.Colors[nc-1]
	}
	return colors.BlendRGB(100*frac, cm.Colors[lo+1], cm.Colors[lo])
}

// Reverse reverses the order of the stops in place.
func (cm *Map) Reverse() *Map {
	cm.Colors = colors.Reverse(cm.Colors)
	cm.Reversed = !cm.Reversed
	return cm
}

// At implements [palette.ColorMap], returning the color for the
// given value in the data range set by [Map.SetMin] and [Map.SetMax].
func (cm *Map) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < cm.min:
		return nil, palette.ErrUnderflow
	case v > cm.max:
		return nil, palette.ErrOverflow
	}
	var nv float64
	if cm.max > cm.min {
		nv = (v - cm.min) / (cm.max - cm.min)
	}
	return cm.Map(nv), nil
}

// Min returns the minimum of the data range.
func (cm *Map) Min() float64 { return cm.min }

// Max returns the maximum of the data range.
func (cm *Map) Max() float64 { return cm.max }

// SetMin sets the minimum of the data range.
func (cm *Map) SetMin(v float64) { cm.min = v }

// SetMax sets the maximum of the data range.
func (cm *Map) SetMax(v float64) { cm.max = v }

// Alpha implements [palette.ColorMap]. Map colors are always opaque.
func (cm *Map) Alpha() float64 { return 1 }

// SetAlpha implements [palette.ColorMap]. It is a no-op.
func (cm *Map) SetAlpha(float64) {}

// SetRange sets the data range.
func (cm *Map) SetRange(min, max float64) *Map {
	cm.min, cm.max = min, max
	return cm
}

// Palette implements [palette.ColorMap], returning n colors evenly
// spaced across the map. For an indexed map with n equal to the
// number of stops, these are exactly the stops.
func (cm *Map) Palette(n int) palette.Palette {
	p := make(stops, n)
	for i := range p {
		if n == 1 {
			p[i] = cm.Map(0)
			continue
		}
		p[i] = cm.Map(float64(i) / float64(n-1))
	}
	return p
}

// NumColors returns the number of colors a palette for this map
// should have: the number of stops for indexed maps, otherwise 256.
func (cm *Map) NumColors() int {
	if cm.Indexed {
		return len(cm.Colors)
	}
	return 256
}

func (cm *Map) String() string {
	return cm.Title
}

type stops []color.Color

func (s stops) Colors() []color.Color { return s }
