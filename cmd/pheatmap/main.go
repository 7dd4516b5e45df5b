// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pheatmap plots numeric grids from CSV files and gray images
// as heatmaps, from the command line or an interactive shell.
package main

import (
	"os"

	"cogentcore.org/pheatmap/base/logx"
	"cogentcore.org/pheatmap/cmd/pheatmap/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalFlags are the flags of all commands.
type globalFlags struct {
	config string
	v, vv  bool
	q      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	cfg := config.New()
	root := &cobra.Command{
		Use:          "pheatmap",
		Short:        "Plot numeric grids and gray images as heatmaps",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(gf.vv, gf.v, gf.q)
			logx.SetDefaultLogger()
			if gf.config == "" {
				return nil
			}
			// flags given on the command line override the file
			changed := map[string]string{}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				changed[f.Name] = f.Value.String()
			})
			if err := cfg.Open(gf.config); err != nil {
				return err
			}
			for name, val := range changed {
				if err := cmd.Flags().Set(name, val); err != nil {
					return err
				}
			}
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&gf.config, "config", "", "config file (.toml, .yaml or .yml)")
	pf.BoolVarP(&gf.v, "verbose", "v", false, "show info messages")
	pf.BoolVar(&gf.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&gf.q, "quiet", "q", false, "only show errors")

	root.AddCommand(
		newPlotCmd(cfg),
		newColormapsCmd(),
		newShellCmd(cfg),
		newVersionCmd(),
	)
	return root
}
