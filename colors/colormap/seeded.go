// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/pheatmap/colors"
)

// Kinds are the kinds of color map a chooser can build.
type Kinds int32

const (
	// Standard is a map from the catalog.
	Standard Kinds = iota

	// LightPalette blends from a near-white tint of a seed color to the seed.
	LightPalette

	// DarkPalette blends from a near-black gray to a seed color.
	DarkPalette
)

var kindNames = [...]string{"Standard", "Light Palette", "Dark Palette"}

func (k Kinds) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kinds(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// KindsValues returns all of the kinds.
func KindsValues() []Kinds {
	return []Kinds{Standard, LightPalette, DarkPalette}
}

// ParseKind parses a kind from its display name or a short form
// (standard, light, dark), ignoring case.
func ParseKind(s string) (Kinds, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range KindsValues() {
		if s == strings.ToLower(k.String()) {
			return k, nil
		}
	}
	switch s {
	case "std", "named":
		return Standard, nil
	case "light":
		return LightPalette, nil
	case "dark":
		return DarkPalette, nil
	}
	return Standard, fmt.Errorf("colormap: unknown kind %q", s)
}

// lightness is the HSL lightness of the light end of a light palette.
const lightness = 0.95

// darkEnd is the dark end of a dark palette.
var darkEnd = color.RGBA{0x22, 0x22, 0x22, 0xff}

// Seeded returns an indexed map of count stops blending from an endpoint
// to the seed color r, g, b: a near-white tint of the seed if light is
// set, otherwise a near-black gray. Channels must be in [0, 255] and
// count must be positive, or [ErrInvalidColorSpec] is returned.
func Seeded(r, g, b, count int, light, reverse bool) (*Map, error) {
	for _, ch := range []int{r, g, b} {
		if ch < 0 || ch > 255 {
			return nil, fmt.Errorf("%w: channel %d not in [0, 255]", ErrInvalidColorSpec, ch)
		}
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: number of colors must be positive, got %d", ErrInvalidColorSpec, count)
	}
	seed := colors.FromRGB(uint8(r), uint8(g), uint8(b))
	kind := DarkPalette
	end := darkEnd
	if light {
		kind = LightPalette
		end = colors.WithLightness(seed, lightness)
	}
	cs := make([]color.RGBA, count)
	if count == 1 {
		cs[0] = seed
	} else {
		for i := range cs {
			cs[i] = colors.BlendRGB(100*float64(i)/float64(count-1), seed, end)
		}
	}
	cm := newMap(kind.String(), cs, true)
	cm.Title = fmt.Sprintf("%s - %d,%d,%d - %d colors", kind, r, g, b, count)
	if reverse {
		cm.Reverse()
	}
	return cm, nil
}

// ParseSeeded returns a light or dark palette from a seed given
// as R,G,B,N: the seed channels and the number of colors.
func ParseSeeded(spec string, light, reverse bool) (*Map, error) {
	f := strings.Split(spec, ",")
	if len(f) != 4 {
		return nil, fmt.Errorf("%w: %q must be R,G,B,N", ErrInvalidColorSpec, spec)
	}
	return SeededFromStrings(f[0], f[1], f[2], f[3], light, reverse)
}

// SeededFromStrings is like [Seeded], with the channels and count
// given as decimal strings as typed by a user. Non-integer fields
// return [ErrInvalidColorSpec].
func SeededFromStrings(r, g, b, count string, light, reverse bool) (*Map, error) {
	names := [...]string{"red", "green", "blue", "number of colors"}
	vals := [4]int{}
	for i, s := range [...]string{r, g, b, count} {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidColorSpec, names[i], s)
		}
		vals[i] = v
	}
	return Seeded(vals[0], vals[1], vals[2], vals[3], light, reverse)
}
