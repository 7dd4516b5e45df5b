// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/pheatmap/colors/colormap"
	"cogentcore.org/pheatmap/heatmap"
	"cogentcore.org/pheatmap/table"
	"cogentcore.org/pheatmap/ticks"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePrompter answers dialogs with fixed values and records messages.
type fakePrompter struct {
	confirm  bool
	kind     colormap.Kinds
	reverse  bool
	cancel   bool
	name     string
	rgb      RGBFields
	confirms int
	errs     []error
	infos    []string
}

func (p *fakePrompter) Confirm(title, msg string) (bool, error) {
	p.confirms++
	return p.confirm, nil
}

func (p *fakePrompter) ChooseKind() (colormap.Kinds, bool, bool, error) {
	return p.kind, p.reverse, !p.cancel, nil
}

func (p *fakePrompter) ChooseName(names []string) (string, bool, error) {
	return p.name, p.name != "", nil
}

func (p *fakePrompter) EnterRGB(kind colormap.Kinds) (RGBFields, bool, error) {
	return p.rgb, true, nil
}

func (p *fakePrompter) Error(err error) { p.errs = append(p.errs, err) }

func (p *fakePrompter) Info(title, msg string) { p.infos = append(p.infos, msg) }

func allFeatures() Features {
	f := Features{}
	f.Defaults()
	return f
}

func writeCSV(t *testing.T, dir, name, data string) string {
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	return fn
}

func TestNewSession(t *testing.T) {
	s := NewSession(&fakePrompter{}, allFeatures())
	assert.Equal(t, colormap.DefaultName, s.ColorMap.Name)
	assert.Equal(t, ticks.None, s.Settings.X.Mode)
	assert.False(t, s.Settings.Fast)
	assert.True(t, s.Settings.Render.ColorBar)
	assert.Equal(t, table.Detect, s.Loader.Delim)
	assert.Nil(t, s.Figure)
	assert.Contains(t, s.Status(), "file:      (none)")
}

func TestBrowse(t *testing.T) {
	dir := t.TempDir()
	s := NewSession(&fakePrompter{}, allFeatures())
	assert.Error(t, s.Browse(filepath.Join(dir, "missing.csv")))
	assert.ErrorIs(t, s.Browse(""), ErrNoFile)
	assert.Equal(t, "", s.Filename)

	fn := writeCSV(t, dir, "a.csv", "1,2\n3,4\n")
	require.NoError(t, s.Browse(fn))
	assert.Equal(t, fn, s.Filename)
}

func TestSetAxisLabels(t *testing.T) {
	s := NewSession(&fakePrompter{}, allFeatures())
	require.NoError(t, s.SetAxisLabels(table.Cols, ticks.Numbers, "5"))
	assert.Equal(t, ticks.Spec{Mode: ticks.Numbers, Stride: 5}, s.Settings.X)

	require.NoError(t, s.SetAxisLabels(table.Rows, ticks.Numbers, ""))
	assert.Equal(t, ticks.Spec{Mode: ticks.Numbers, Stride: 1}, s.Settings.Y)

	assert.ErrorIs(t, s.SetAxisLabels(table.Cols, ticks.Numbers, "0"), ticks.ErrInvalidStride)
	assert.ErrorIs(t, s.SetAxisLabels(table.Cols, ticks.Numbers, "x"), ticks.ErrInvalidStride)
	assert.Equal(t, 5, s.Settings.X.Stride)

	require.NoError(t, s.SetAxisLabels(table.Cols, ticks.FromSource, "x"))
	assert.Equal(t, ticks.Spec{Mode: ticks.FromSource}, s.Settings.X)
}

func TestSetFast(t *testing.T) {
	s := NewSession(&fakePrompter{}, allFeatures())
	require.NoError(t, s.SetFast(true))
	assert.True(t, s.Settings.Fast)

	s = NewSession(&fakePrompter{}, Features{})
	assert.ErrorIs(t, s.SetFast(true), ErrFeatureDisabled)
	assert.False(t, s.Settings.Fast)
	assert.NoError(t, s.SetFast(false))
}

func TestChooseColorMap(t *testing.T) {
	p := &fakePrompter{kind: colormap.Standard, name: "viridis_r"}
	s := NewSession(p, allFeatures())
	require.NoError(t, s.ChooseColorMap())
	assert.Equal(t, "viridis_r", s.ColorMap.Name)
	assert.True(t, s.ColorMap.Reversed)

	p.name = ""
	assert.ErrorIs(t, s.ChooseColorMap(), ErrCancelled)
	assert.Equal(t, "viridis_r", s.ColorMap.Name)

	p.kind = colormap.LightPalette
	p.rgb = RGBFields{R: "200", G: "40", B: "40", N: "5"}
	require.NoError(t, s.ChooseColorMap())
	assert.Equal(t, "Light Palette - 200,40,40 - 5 colors", s.ColorMap.Title)
	assert.Len(t, s.ColorMap.Colors, 5)

	prev := s.ColorMap
	p.kind = colormap.DarkPalette
	p.rgb = RGBFields{R: "300", G: "40", B: "40", N: "5"}
	assert.ErrorIs(t, s.ChooseColorMap(), colormap.ErrInvalidColorSpec)
	assert.Same(t, prev, s.ColorMap)

	p.cancel = true
	assert.ErrorIs(t, s.ChooseColorMap(), ErrCancelled)

	s = NewSession(p, Features{})
	assert.ErrorIs(t, s.ChooseColorMap(), ErrFeatureDisabled)
}

func TestPlotAndSave(t *testing.T) {
	dir := t.TempDir()
	p := &fakePrompter{}
	s := NewSession(p, allFeatures())
	assert.ErrorIs(t, s.Plot(), ErrNoFile)
	assert.ErrorIs(t, s.Save(filepath.Join(dir, "out.png")), ErrNoPlot)

	require.NoError(t, s.Browse(writeCSV(t, dir, "a.csv", "1,2,3\n4,5,6\n")))
	require.NoError(t, s.SetAxisLabels(table.Cols, ticks.Numbers, "2"))
	require.NoError(t, s.Plot())
	require.NotNil(t, s.Figure)
	assert.Equal(t, 2, s.Plotted.X.Stride)
	fig := s.Figure

	// later changes do not affect the plotted settings
	require.NoError(t, s.SetAxisLabels(table.Cols, ticks.None, ""))
	assert.Equal(t, ticks.Numbers, s.Plotted.X.Mode)

	// a failed plot keeps the previous one
	require.NoError(t, s.Browse(writeCSV(t, dir, "bad.csv", "1,x\n")))
	assert.ErrorIs(t, s.Plot(), table.ErrMalformedData)
	assert.Same(t, fig, s.Figure)

	out := filepath.Join(dir, "out.png")
	require.NoError(t, s.Save(out))
	assert.Equal(t, 0, p.confirms)
	assert.Equal(t, []string{"Saved file to " + out}, p.infos)

	assert.ErrorIs(t, s.Save(out), ErrCancelled)
	assert.Equal(t, 1, p.confirms)

	p.confirm = true
	require.NoError(t, s.Save(out))
	assert.Equal(t, 2, p.confirms)
	assert.Len(t, p.infos, 2)

	assert.ErrorIs(t, s.Save(filepath.Join(dir, "out.xyz")), heatmap.ErrUnsupportedFormat)

	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range ents {
		assert.False(t, strings.HasPrefix(e.Name(), "."), e.Name())
	}
}

func TestSaveUnsupportedKeepsFile(t *testing.T) {
	dir := t.TempDir()
	p := &fakePrompter{confirm: true}
	s := NewSession(p, allFeatures())
	s.TrashExisting = true
	require.NoError(t, s.Browse(writeCSV(t, dir, "a.csv", "1,2\n3,4\n")))
	require.NoError(t, s.Plot())

	notes := writeCSV(t, dir, "notes.txt", "keep me\n")
	assert.ErrorIs(t, s.Save(notes), heatmap.ErrUnsupportedFormat)
	assert.Equal(t, 0, p.confirms)
	b, err := os.ReadFile(notes)
	require.NoError(t, err)
	assert.Equal(t, "keep me\n", string(b))
	assert.Empty(t, p.infos)
}

func TestExec(t *testing.T) {
	dir := t.TempDir()
	fn := writeCSV(t, dir, "grid data.csv", "1,2\n3,4\n")
	s := NewSession(&fakePrompter{}, allFeatures())
	buf := &bytes.Buffer{}

	quit, err := Exec(s, buf, `browse "`+fn+`"`)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, fn, s.Filename)

	for _, line := range []string{"xlabels numbers 2", "ylabels file", "cmap Greys_r", "fast on", "", "plot"} {
		_, err := Exec(s, buf, line)
		require.NoError(t, err, line)
	}
	assert.Equal(t, ticks.Spec{Mode: ticks.Numbers, Stride: 2}, s.Settings.X)
	assert.Equal(t, ticks.FromSource, s.Settings.Y.Mode)
	assert.Equal(t, "Greys_r", s.ColorMap.Name)
	assert.True(t, s.Settings.Fast)
	assert.NotNil(t, s.Figure)
	assert.Contains(t, buf.String(), "plotted")

	_, err = Exec(s, buf, "fast maybe")
	assert.Error(t, err)
	_, err = Exec(s, buf, "cmap nope")
	assert.ErrorIs(t, err, colormap.ErrUnknownPalette)
	_, err = Exec(s, buf, "cmap light 200,40,40,5")
	require.NoError(t, err)
	assert.Equal(t, colormap.LightPalette.String(), s.ColorMap.Name)
	assert.Len(t, s.ColorMap.Colors, 5)
	_, err = Exec(s, buf, "cmap Dark 10,20,30")
	assert.ErrorIs(t, err, colormap.ErrInvalidColorSpec)
	_, err = Exec(s, buf, "cmap dark")
	assert.Error(t, err)
	assert.Equal(t, colormap.LightPalette.String(), s.ColorMap.Name)
	_, err = Exec(s, buf, "frobnicate")
	assert.Error(t, err)
	_, err = Exec(s, buf, `browse "unterminated`)
	assert.Error(t, err)

	buf.Reset()
	_, err = Exec(s, buf, "colormaps")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(buf.String(), "\n"), "viridis")

	quit, err = Exec(s, buf, "exit")
	assert.NoError(t, err)
	assert.True(t, quit)
}

func TestRun(t *testing.T) {
	in := strings.NewReader("status\nfast sideways\nquit\nstatus\n")
	out := &bytes.Buffer{}
	term := NewTerminal(in, out, termenv.WithProfile(termenv.Ascii))
	s := NewSession(term, allFeatures())
	require.NoError(t, Run(s, term))
	assert.Equal(t, 1, strings.Count(out.String(), "color map: RdBu"))
	assert.Contains(t, out.String(), `Error: fast: "sideways" is not on or off`)
}

func TestTerminal(t *testing.T) {
	in := strings.NewReader("2\nyes\n10\n20\n30\n4\nnope\nviridis\n")
	out := &bytes.Buffer{}
	term := NewTerminal(in, out, termenv.WithProfile(termenv.Ascii))

	kind, rev, ok, err := term.ChooseKind()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, colormap.LightPalette, kind)
	assert.True(t, rev)

	rgb, ok, err := term.EnterRGB(kind)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, RGBFields{R: "10", G: "20", B: "30", N: "4"}, rgb)
	assert.Contains(t, out.String(), "0 <= red <= 255:")

	name, ok, err := term.ChooseName([]string{"RdBu", "viridis"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "viridis", name)
	assert.Contains(t, out.String(), `"nope" is not an option`)

	// end of input cancels
	ok, err = term.Confirm("Overwrite?", "File exists - overwrite?")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := writeCSV(t, dir, "a.csv", "1,2\n3,4\n")
	out := filepath.Join(dir, "a.png")
	s := NewSession(&fakePrompter{}, allFeatures())
	require.NoError(t, s.Browse(fn))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates := make(chan error, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, s, out, func(err error) { updates <- err })
	}()

	// the watcher starts asynchronously, so keep writing until it sees one
	timeout := time.After(10 * time.Second)
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case err := <-updates:
			require.NoError(t, err)
			break loop
		case <-tick.C:
			require.NoError(t, os.WriteFile(fn, []byte("1,2\n3,4\n"), 0666))
		case <-timeout:
			t.Fatal("no replot after writing the watched file")
		}
	}
	tick.Stop()
	time.Sleep(3 * watchLag)
	for len(updates) > 0 {
		<-updates
	}

	// a save that truncates and then writes in pieces is plotted once done
	fp, err := os.Create(fn)
	require.NoError(t, err)
	_, err = fp.WriteString("1,2,3,4\n")
	require.NoError(t, err)
	time.Sleep(watchLag / 5)
	_, err = fp.WriteString("5,6,7,8\n")
	require.NoError(t, err)
	require.NoError(t, fp.Close())

	select {
	case err := <-updates:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("no replot after writing the watched file")
	}
	require.NotNil(t, s.Table)
	rows, cols := s.Table.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 4, cols)
	assert.FileExists(t, out)

	cancel()
	assert.NoError(t, <-done)
}
