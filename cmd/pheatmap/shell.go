// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/pheatmap/cmd/pheatmap/config"
	"cogentcore.org/pheatmap/shell"
	"github.com/spf13/cobra"
)

func newShellCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "shell [file]",
		Short: "Start an interactive session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := shell.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
			s, err := cfg.NewSession(term)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := s.Browse(args[0]); err != nil {
					term.Error(err)
				}
			}
			return shell.Run(s, term)
		},
	}
}
