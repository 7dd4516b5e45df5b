// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is the part of *testing.T used by [Assert].
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages is whether [Assert] replaces the saved images
// instead of comparing against them. It is set when the environment
// variable PHEATMAP_UPDATE_TESTDATA is "true", and should only be used
// once after a change that is meant to alter the rendered images.
var UpdateTestImages = os.Getenv("PHEATMAP_UPDATE_TESTDATA") == "true"

// AssertTolerance is the largest per channel difference
// [Assert] accepts between two pixels.
// Font rasterization differs slightly across platforms.
var AssertTolerance = 10

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// CompareColors returns whether every channel of the two
// colors is within tol of each other.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	return int(absDiff(cc.R, ic.R)) <= tol && int(absDiff(cc.G, ic.G)) <= tol &&
		int(absDiff(cc.B, ic.B)) <= tol && int(absDiff(cc.A, ic.A)) <= tol
}

// DiffImage returns an opaque image of the per channel absolute
// difference between the two images, over the bounds of a.
func DiffImage(a, b image.Image) image.Image {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			ac, bc := toRGBA(a.At(x, y)), toRGBA(b.At(x, y))
			di.SetRGBA(x, y, color.RGBA{absDiff(ac.R, bc.R), absDiff(ac.G, bc.G), absDiff(ac.B, bc.B), 255})
		}
	}
	return di
}

// firstMismatch returns the first pixel at which the images
// differ by more than tol, and whether there is one.
func firstMismatch(img, want image.Image, tol int) (image.Point, bool) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !CompareColors(toRGBA(img.At(x, y)), toRGBA(want.At(x, y)), tol) {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

// Assert checks that the image matches the one saved in the testdata
// directory under the given name, with .png added if it has no
// extension. A missing saved image is created. On a mismatch, the test
// fails and the image and its difference from the saved one are
// written next to it with .fail and .diff before the extension.
func Assert(t TestingT, img image.Image, name string) {
	fn := filepath.Join("testdata", name)
	if filepath.Ext(fn) == "" {
		fn += ".png"
	}
	if err := os.MkdirAll(filepath.Dir(fn), 0750); err != nil {
		t.Errorf("imagex.Assert: %v", err)
		return
	}
	ext := filepath.Ext(fn)
	base := strings.TrimSuffix(fn, ext)
	failFn, diffFn := base+".fail"+ext, base+".diff"+ext
	clean := func() {
		os.Remove(failFn)
		os.Remove(diffFn)
	}

	want, _, err := Open(fn)
	if UpdateTestImages || errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, fn); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", fn, err)
		}
		clean()
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: opening %s: %v", fn, err)
		return
	}

	if img.Bounds() != want.Bounds() {
		t.Errorf("imagex.Assert: %s: expected bounds %v, but got %v; see %s", fn, want.Bounds(), img.Bounds(), failFn)
	} else if p, bad := firstMismatch(img, want, AssertTolerance); bad {
		t.Errorf("imagex.Assert: %s: expected color %v at %v, but got %v; see %s and %s",
			fn, toRGBA(want.At(p.X, p.Y)), p, toRGBA(img.At(p.X, p.Y)), failFn, diffFn)
	} else {
		clean()
		return
	}
	if err := Save(img, failFn); err != nil {
		t.Errorf("imagex.Assert: saving %s: %v", failFn, err)
	}
	if err := Save(DiffImage(img, want), diffFn); err != nil {
		t.Errorf("imagex.Assert: saving %s: %v", diffFn, err)
	}
}
