// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"cogentcore.org/pheatmap/base/errors"
	"cogentcore.org/pheatmap/colors"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// ReverseSuffix marks a catalog name as the reverse of the map it names.
const ReverseSuffix = "_r"

// DefaultName is the name of the map returned by [Default].
const DefaultName = "RdBu"

// morelandStops is the number of stops sampled from each Moreland map.
const morelandStops = 33

var morelandMaps = map[string]func() palette.ColorMap{
	"coolwarm":           func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"blackbody":          moreland.BlackBody,
	"extended_blackbody": moreland.ExtendedBlackBody,
	"kindlmann":          moreland.Kindlmann,
	"extended_kindlmann": moreland.ExtendedKindlmann,
}

// AvailableMaps is the catalog of named color maps, in their
// low to high orientation. Use [Named] to get a copy of one.
var AvailableMaps = map[string]*Map{}

func init() {
	for name, hexes := range hexMaps {
		cs := make([]color.RGBA, len(hexes))
		for i, h := range hexes {
			cs[i] = errors.Must1(colors.FromHex(h))
		}
		AvailableMaps[name] = newMap(name, cs, false)
	}
	for name, fn := range morelandMaps {
		AvailableMaps[name] = newMap(name, sample(fn(), morelandStops), false)
	}
}

// sample returns n colors evenly spaced across the given color map.
func sample(cm palette.ColorMap, n int) []color.RGBA {
	cm.SetMin(0)
	cm.SetMax(1)
	pc := cm.Palette(n).Colors()
	cs := make([]color.RGBA, len(pc))
	for i, c := range pc {
		cs[i] = colors.AsRGBA(c)
	}
	return cs
}

// AvailableMapsList returns a sorted list of the names in [AvailableMaps].
func AvailableMapsList() []string {
	sl := make([]string, 0, len(AvailableMaps))
	for k := range AvailableMaps {
		sl = append(sl, k)
	}
	sort.Strings(sl)
	return sl
}

// ChoiceList returns the sorted catalog names offered by a chooser:
// the plain names, or the names with [ReverseSuffix] if reverse is set.
func ChoiceList(reverse bool) []string {
	sl := AvailableMapsList()
	if reverse {
		for i, nm := range sl {
			sl[i] = nm + ReverseSuffix
		}
	}
	return sl
}

// Named returns a copy of the catalog map with the given name,
// reversed if reverse is set. A name ending in [ReverseSuffix]
// names the reverse of the map without it.
func Named(name string, reverse bool) (*Map, error) {
	base := name
	if strings.HasSuffix(name, ReverseSuffix) {
		if _, ok := AvailableMaps[name]; !ok {
			base = strings.TrimSuffix(name, ReverseSuffix)
			reverse = !reverse
		}
	}
	cm, ok := AvailableMaps[base]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	cm = cm.Clone()
	if reverse {
		cm.Reverse()
		cm.Name = base + ReverseSuffix
		cm.Title = cm.Name
	}
	return cm, nil
}

// Default returns a copy of the default map.
func Default() *Map {
	return errors.Must1(Named(DefaultName, false))
}
