// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"cogentcore.org/pheatmap/base/logx"
	"cogentcore.org/pheatmap/cmd/pheatmap/config"
	"cogentcore.org/pheatmap/shell"
	"cogentcore.org/pheatmap/table"
	"cogentcore.org/pheatmap/ticks"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// plotFlags are the flags of the plot command that are not
// config fields.
type plotFlags struct {
	input, output string
	yes           bool
	watch         bool
	luminance     bool
	xlabels       string
	ylabels       string
	xstride       string
	ystride       string
}

func newPlotCmd(cfg *config.Config) *cobra.Command {
	pf := &plotFlags{}
	cmd := &cobra.Command{
		Use:   "plot -i <data> -o <figure>",
		Short: "Plot a CSV file or gray image to an image or vector file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, cfg, pf)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&pf.input, "input", "i", "", "data file: .csv, .tsv, .txt, .dat or an image")
	fs.StringVarP(&pf.output, "output", "o", "", "figure file: png, jpg, gif, tif, bmp, svg, pdf or eps")
	fs.StringVar(&cfg.ColorMap, "cmap", cfg.ColorMap, "name of the color map (see colormaps)")
	fs.BoolVar(&cfg.Reverse, "reverse", cfg.Reverse, "reverse the color map")
	fs.StringVar(&cfg.Light, "light", cfg.Light, "light palette from a seed color, as R,G,B,N")
	fs.StringVar(&cfg.Dark, "dark", cfg.Dark, "dark palette from a seed color, as R,G,B,N")
	fs.BoolVar(&cfg.Fast, "fast", cfg.Fast, "fast plot with no axes, labels or color bar")
	fs.StringVar(&pf.xlabels, "xlabels", "none", "x tick labels: none, file or numbers")
	fs.StringVar(&pf.xstride, "xstride", "", "stride of numbered x tick labels")
	fs.StringVar(&pf.ylabels, "ylabels", "none", "y tick labels: none, file or numbers")
	fs.StringVar(&pf.ystride, "ystride", "", "stride of numbered y tick labels")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "figure title")
	fs.IntVar(&cfg.DPI, "dpi", cfg.DPI, "resolution of raster output")
	fs.BoolVarP(&pf.yes, "yes", "y", false, "overwrite an existing output file without asking")
	fs.BoolVar(&cfg.Trash, "trash", cfg.Trash, "move an existing output file to the trash first")
	fs.BoolVarP(&pf.watch, "watch", "w", false, "replot each time the data file changes")
	fs.BoolVar(&pf.luminance, "luminance", false, "reduce color images to their luminance")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}

// yesPrompter is a terminal prompter that confirms everything.
type yesPrompter struct {
	*shell.Terminal
}

func (p yesPrompter) Confirm(title, msg string) (bool, error) { return true, nil }

func runPlot(cmd *cobra.Command, cfg *config.Config, pf *plotFlags) error {
	fs := cmd.Flags()
	if pf.luminance {
		cfg.Reduce = table.Luminance
	}
	if err := labelFlags(fs, "xlabels", "xstride", pf.xlabels, pf.xstride, &cfg.X); err != nil {
		return err
	}
	if err := labelFlags(fs, "ylabels", "ystride", pf.ylabels, pf.ystride, &cfg.Y); err != nil {
		return err
	}
	term := shell.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	var p shell.Prompter = term
	if pf.yes || pf.watch {
		p = yesPrompter{term}
	}
	s, err := cfg.NewSession(p)
	if err != nil {
		return err
	}
	if err := s.Browse(pf.input); err != nil {
		return err
	}
	if err := s.Plot(); err != nil {
		return err
	}
	if err := s.Save(pf.output); err != nil {
		return err
	}
	if !pf.watch {
		return nil
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return shell.Watch(ctx, s, pf.output, func(err error) {
		if err == nil {
			logx.PrintlnInfo("replotted", s.Filename)
		}
	})
}

// labelFlags applies the label mode and stride flags of one axis
// to the axis spec, when set on the command line.
func labelFlags(fs *pflag.FlagSet, modeFlag, strideFlag, mode, stride string, spec *ticks.Spec) error {
	if fs.Changed(modeFlag) {
		m, err := ticks.ParseMode(mode)
		if err != nil {
			return fmt.Errorf("--%s: %w", modeFlag, err)
		}
		spec.Mode = m
	}
	if fs.Changed(strideFlag) {
		st, err := ticks.ParseStride(stride)
		if err != nil {
			return fmt.Errorf("--%s: %w", strideFlag, err)
		}
		spec.Stride = st
		if !fs.Changed(modeFlag) {
			spec.Mode = ticks.Numbers
		}
	}
	return nil
}
