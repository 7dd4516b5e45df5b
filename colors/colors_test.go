// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lightblue = color.RGBA{173, 216, 230, 255}
	darkblue  = color.RGBA{0, 0, 139, 255}
)

func ExampleBlendRGB() {
	fmt.Println(BlendRGB(30, lightblue, darkblue))
	// Output: {52 65 166 255}
}

func TestFromHex(t *testing.T) {
	c, err := FromHex("#67001F")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x67, 0x00, 0x1f, 255}, c)

	c, err = FromHex("053061")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x05, 0x30, 0x61, 255}, c)
	assert.Equal(t, "#053061", AsHex(c))

	_, err = FromHex("#zz0000")
	assert.Error(t, err)
}

func TestBlendRGB(t *testing.T) {
	assert.Equal(t, darkblue, BlendRGB(0, lightblue, darkblue))
	assert.Equal(t, lightblue, BlendRGB(100, lightblue, darkblue))
}

func TestWithLightness(t *testing.T) {
	c := WithLightness(color.RGBA{200, 40, 40, 255}, 0.95)
	assert.Greater(t, int(c.R), 240)
	assert.Greater(t, int(c.G), 230)
	assert.Greater(t, c.R, c.G)
	assert.Equal(t, c.G, c.B)

	assert.Equal(t, White, WithLightness(Black, 1))
}

func TestReverse(t *testing.T) {
	cs := []color.RGBA{Black, White, Transparent}
	assert.Equal(t, []color.RGBA{Transparent, White, Black}, Reverse(cs))
	assert.Equal(t, Black, cs[0])
}
