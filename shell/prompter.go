// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/pheatmap/colors/colormap"
	"github.com/muesli/termenv"
)

// RGBFields are the raw fields of a seed color dialog.
type RGBFields struct {
	R, G, B string

	// N is the number of colors.
	N string
}

// Prompter handles the dialogs of a [Session]. The ok results are false
// when the user cancels the dialog.
type Prompter interface {

	// Confirm asks a yes or no question.
	Confirm(title, msg string) (bool, error)

	// ChooseKind asks for the kind of color map and whether to reverse it.
	ChooseKind() (kind colormap.Kinds, reverse bool, ok bool, err error)

	// ChooseName asks for one of the given color map names.
	ChooseName(names []string) (string, bool, error)

	// EnterRGB asks for the seed color and number of colors
	// of a palette of the given kind.
	EnterRGB(kind colormap.Kinds) (RGBFields, bool, error)

	// Error reports an error to the user.
	Error(err error)

	// Info reports a message to the user.
	Info(title, msg string)
}

// Terminal is a [Prompter] reading answers line by line from a reader
// and writing styled questions to a writer. An empty answer or end of
// input cancels a dialog.
type Terminal struct {
	in  *bufio.Reader
	out *termenv.Output
}

// NewTerminal returns a new terminal prompter on the given streams.
func NewTerminal(in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: termenv.NewOutput(out, opts...)}
}

// readLine writes the prompt and returns the trimmed line read,
// or [io.EOF] at the end of input with nothing read.
func (t *Terminal) readLine(prompt string) (string, error) {
	fmt.Fprint(t.out, t.out.String(prompt).Bold().String()+" ")
	line, err := t.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimSpace(line), err
}

// ask is [Terminal.readLine] with ok false on an empty
// answer or the end of input.
func (t *Terminal) ask(prompt string) (string, bool, error) {
	line, err := t.readLine(prompt)
	if err == io.EOF {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return line, line != "", nil
}

func (t *Terminal) Confirm(title, msg string) (bool, error) {
	fmt.Fprintln(t.out, t.out.String(title).Foreground(termenv.ANSIYellow).Bold())
	ans, ok, err := t.ask(msg + " [y/N]")
	if err != nil || !ok {
		return false, err
	}
	switch strings.ToLower(ans) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// choose lists the options numbered from 1 and returns the index of
// the option chosen by number or name.
func (t *Terminal) choose(title string, options []string) (int, bool, error) {
	fmt.Fprintln(t.out, t.out.String(title).Bold())
	for i, o := range options {
		fmt.Fprintf(t.out, "  %s %s\n", t.out.String(fmt.Sprintf("%3d", i+1)).Faint(), o)
	}
	for {
		ans, ok, err := t.ask(">")
		if err != nil || !ok {
			return -1, false, err
		}
		if n, err := strconv.Atoi(ans); err == nil && n >= 1 && n <= len(options) {
			return n - 1, true, nil
		}
		for i, o := range options {
			if strings.EqualFold(ans, o) {
				return i, true, nil
			}
		}
		fmt.Fprintln(t.out, t.out.String(fmt.Sprintf("%q is not an option", ans)).Foreground(termenv.ANSIRed))
	}
}

func (t *Terminal) ChooseKind() (colormap.Kinds, bool, bool, error) {
	kinds := colormap.KindsValues()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	i, ok, err := t.choose("Color map kind", names)
	if err != nil || !ok {
		return colormap.Standard, false, false, err
	}
	rev, err := t.Confirm("Reverse", "Reverse the color map?")
	if err != nil {
		return colormap.Standard, false, false, err
	}
	return kinds[i], rev, true, nil
}

func (t *Terminal) ChooseName(names []string) (string, bool, error) {
	i, ok, err := t.choose("Color map", names)
	if err != nil || !ok {
		return "", false, err
	}
	return names[i], true, nil
}

func (t *Terminal) EnterRGB(kind colormap.Kinds) (RGBFields, bool, error) {
	fmt.Fprintln(t.out, t.out.String(kind.String()+" seed color").Bold())
	f := RGBFields{}
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"0 <= red <= 255:", &f.R},
		{"0 <= green <= 255:", &f.G},
		{"0 <= blue <= 255:", &f.B},
		{"Number of colors:", &f.N},
	}
	for _, fd := range fields {
		ans, ok, err := t.ask(fd.prompt)
		if err != nil || !ok {
			return f, false, err
		}
		*fd.dst = ans
	}
	return f, true, nil
}

func (t *Terminal) Error(err error) {
	fmt.Fprintln(t.out, t.out.String("Error: "+err.Error()).Foreground(termenv.ANSIRed).Bold())
}

func (t *Terminal) Info(title, msg string) {
	fmt.Fprintln(t.out, t.out.String(title+":").Foreground(termenv.ANSIGreen).Bold(), msg)
}
