// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color conversion, parsing and blending
// helpers built on [color.RGBA] and go-colorful.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// Black is opaque black.
	Black = color.RGBA{0, 0, 0, 255}

	// White is opaque white.
	White = color.RGBA{255, 255, 255, 255}

	// Transparent is fully transparent.
	Transparent = color.RGBA{}
)

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromRGB makes a new opaque RGBA color from the given
// RGB uint8 values.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// FromHex parses the given hex color string, with or without
// a leading #, and returns the resulting opaque color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	return fromColorful(c), nil
}

// AsHex returns the given color as a lowercase #rrggbb hex string.
func AsHex(c color.Color) string {
	return toColorful(c).Hex()
}

// BlendRGB returns a color that is the given percent blend between
// the first and second color; 10 = 10% of the first and 90% of the
// second, etc. Blending is done directly on non-premultiplied RGB
// values, and the alpha of the second color is kept.
func BlendRGB(pct float64, x, y color.Color) color.RGBA {
	b := toColorful(y).BlendRgb(toColorful(x), pct/100)
	res := fromColorful(b)
	res.A = AsRGBA(y).A
	return res
}

// WithLightness returns the given color with its HSL lightness
// set to the given value in [0, 1].
func WithLightness(c color.Color, l float64) color.RGBA {
	h, s, _ := toColorful(c).Hsl()
	return fromColorful(colorful.Hsl(h, s, l))
}

// Reverse returns a copy of the given colors in reverse order.
func Reverse(cs []color.RGBA) []color.RGBA {
	rv := make([]color.RGBA, len(cs))
	for i, c := range cs {
		rv[len(cs)-1-i] = c
	}
	return rv
}

func toColorful(c color.Color) colorful.Color {
	rc := AsRGBA(c)
	return colorful.Color{R: float64(rc.R) / 255, G: float64(rc.G) / 255, B: float64(rc.B) / 255}
}

func fromColorful(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
