// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/pheatmap/colors/colormap"
	"cogentcore.org/pheatmap/table"
	"cogentcore.org/pheatmap/ticks"
	"github.com/mattn/go-shellwords"
)

// errQuit is returned by [Exec] for the quit command.
var errQuit = errors.New("quit")

// command is one command of the interactive shell.
type command struct {
	name  string
	usage string
	doc   string
	run   func(s *Session, w io.Writer, args []string) error
}

var commands []*command

func init() {
	commands = []*command{
		{"browse", "<file>", "select the data file to plot", runBrowse},
		{"plot", "", "plot the selected file", runPlot},
		{"cmap", "[name | light|dark R,G,B,N]", "set the color map, or choose one", runCmap},
		{"xlabels", "none|file|numbers [stride]", "set the x axis tick labels", runLabels(table.Cols)},
		{"ylabels", "none|file|numbers [stride]", "set the y axis tick labels", runLabels(table.Rows)},
		{"fast", "on|off", "turn fast plotting on or off", runFast},
		{"save", "<file>", "save the last plot", runSave},
		{"status", "", "show the session state", runStatus},
		{"colormaps", "", "list the named color maps", runColormaps},
		{"help", "", "show this help", runHelp},
		{"quit", "", "exit the shell", func(*Session, io.Writer, []string) error { return errQuit }},
	}
}

func lookup(name string) *command {
	for _, c := range commands {
		if c.name == name {
			return c
		}
	}
	if name == "exit" {
		return lookup("quit")
	}
	return nil
}

// Exec parses and runs one command line on the session, writing any
// output to w. It returns whether the command was quit.
func Exec(s *Session, w io.Writer, line string) (bool, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}
	c := lookup(args[0])
	if c == nil {
		return false, fmt.Errorf("unknown command %q (try help)", args[0])
	}
	err = c.run(s, w, args[1:])
	if err == errQuit {
		return true, nil
	}
	return false, err
}

// Run runs the interactive shell on the session, reading commands from
// the terminal until quit or end of input. Errors of commands are
// reported through the session prompter.
func Run(s *Session, t *Terminal) error {
	for {
		line, err := t.readLine("pheatmap>")
		if err == io.EOF {
			fmt.Fprintln(t.out)
			return nil
		}
		if err != nil {
			return err
		}
		quit, err := Exec(s, t.out, line)
		if err != nil {
			s.Prompter.Error(err)
		}
		if quit {
			return nil
		}
	}
}

func runBrowse(s *Session, w io.Writer, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: browse <file>")
	}
	return s.Browse(args[0])
}

func runPlot(s *Session, w io.Writer, args []string) error {
	if err := s.Plot(); err != nil {
		return err
	}
	fmt.Fprintln(w, "plotted", s.Table)
	return nil
}

func runCmap(s *Session, w io.Writer, args []string) error {
	if len(args) == 0 {
		return s.ChooseColorMap()
	}
	if kind, err := colormap.ParseKind(args[0]); err == nil && kind != colormap.Standard {
		if len(args) != 2 {
			return fmt.Errorf("usage: cmap %s R,G,B,N", strings.ToLower(args[0]))
		}
		cm, err := colormap.ParseSeeded(args[1], kind == colormap.LightPalette, false)
		if err != nil {
			return err
		}
		s.SetColorMap(cm)
		return nil
	}
	cm, err := colormap.Named(args[0], false)
	if err != nil {
		return err
	}
	s.SetColorMap(cm)
	return nil
}

func runLabels(axis table.Axes) func(s *Session, w io.Writer, args []string) error {
	return func(s *Session, w io.Writer, args []string) error {
		if len(args) < 1 || len(args) > 2 {
			return errors.New("usage: none|file|numbers [stride]")
		}
		mode, err := ticks.ParseMode(args[0])
		if err != nil {
			return err
		}
		stride := ""
		if len(args) == 2 {
			stride = args[1]
		}
		return s.SetAxisLabels(axis, mode, stride)
	}
}

func runFast(s *Session, w io.Writer, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: fast on|off")
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "yes":
		return s.SetFast(true)
	case "off", "false", "no":
		return s.SetFast(false)
	}
	return fmt.Errorf("fast: %q is not on or off", args[0])
}

func runSave(s *Session, w io.Writer, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: save <file>")
	}
	return s.Save(args[0])
}

func runStatus(s *Session, w io.Writer, args []string) error {
	fmt.Fprint(w, s.Status())
	return nil
}

func runColormaps(s *Session, w io.Writer, args []string) error {
	for _, n := range colormap.AvailableMapsList() {
		fmt.Fprintln(w, n)
	}
	return nil
}

func runHelp(s *Session, w io.Writer, args []string) error {
	for _, c := range commands {
		if c.name == "fast" && !s.Features.EnableFastPlot {
			continue
		}
		fmt.Fprintf(w, "  %-10s %-28s %s\n", c.name, c.usage, c.doc)
	}
	return nil
}
