// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image"
	"image/draw"
)

// Preview returns a horizontal strip of the given size showing
// the map from its low end on the left to its high end on the right.
func Preview(cm *Map, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	for x := range width {
		v := 0.0
		if width > 1 {
			v = float64(x) / float64(width-1)
		}
		col := image.Rect(x, 0, x+1, height)
		draw.Draw(img, col, image.NewUniform(cm.Map(v)), image.Point{}, draw.Src)
	}
	return img
}
