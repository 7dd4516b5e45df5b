// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/pheatmap/base/iox/imagex"
	"cogentcore.org/pheatmap/colors"
	"cogentcore.org/pheatmap/colors/colormap"
	"github.com/spf13/cobra"
)

func newColormapsCmd() *cobra.Command {
	var preview string
	var reverse, stops bool
	cmd := &cobra.Command{
		Use:   "colormaps",
		Short: "List the named color maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := colormap.ChoiceList(reverse)
			for _, n := range names {
				if !stops {
					fmt.Fprintln(cmd.OutOrStdout(), n)
					continue
				}
				cm, err := colormap.Named(n, false)
				if err != nil {
					return err
				}
				hex := make([]string, len(cm.Colors))
				for i, c := range cm.Colors {
					hex[i] = colors.AsHex(c)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", n, strings.Join(hex, " "))
			}
			if preview == "" {
				return nil
			}
			return writePreviews(preview, names)
		},
	}
	cmd.Flags().StringVar(&preview, "preview", "", "directory to write a png swatch of each map to")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "also list the reversed maps")
	cmd.Flags().BoolVar(&stops, "stops", false, "show the color stops of each map")
	return cmd
}

// previewWidth and previewHeight are the size of a swatch.
const (
	previewWidth  = 256
	previewHeight = 24
)

func writePreviews(dir string, names []string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, n := range names {
		cm, err := colormap.Named(n, false)
		if err != nil {
			return err
		}
		img := colormap.Preview(cm, previewWidth, previewHeight)
		if err := imagex.Save(img, filepath.Join(dir, n+".png")); err != nil {
			return err
		}
	}
	return nil
}
