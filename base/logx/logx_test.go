// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	l := LevelFromFlags(true, false, false)
	if l != slog.LevelDebug {
		t.Errorf("expected LevelFromFlags(true, false, false) = %v, but got %v", slog.LevelDebug, l)
	}
	l = LevelFromFlags(false, true, true)
	if l != slog.LevelInfo {
		t.Errorf("expected LevelFromFlags(false, true, true) = %v, but got %v", slog.LevelInfo, l)
	}
	l = LevelFromFlags(false, false, true)
	if l != slog.LevelError {
		t.Errorf("expected LevelFromFlags(false, false, true) = %v, but got %v", slog.LevelError, l)
	}
	l = LevelFromFlags(false, false, false)
	if l != slog.LevelWarn {
		t.Errorf("expected LevelFromFlags(false, false, false) = %v, but got %v", slog.LevelWarn, l)
	}
}

func TestHandler(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()
	UserLevel = slog.LevelInfo

	buf := &bytes.Buffer{}
	lg := slog.New(NewHandler(buf))
	lg.Debug("hidden")
	lg.Info("loaded table", "rows", 3)
	lg.With("file", "a.csv").WithGroup("dims").Warn("odd", "cols", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO loaded table rows=3")
	assert.Contains(t, out, "WARN odd file=a.csv dims.cols=4")
}

func TestPrint(t *testing.T) {
	prevLevel, prevOut := UserLevel, Stdout
	defer func() { UserLevel, Stdout = prevLevel, prevOut }()

	buf := &bytes.Buffer{}
	Stdout = buf
	UserLevel = slog.LevelWarn
	PrintlnInfo("not shown")
	Println(slog.LevelWarn, "shown")
	assert.Equal(t, "shown\n", buf.String())
	UserLevel = slog.LevelInfo
	PrintlnInfo("replotted", "a.csv")
	assert.Equal(t, "shown\nreplotted a.csv\n", buf.String())
}
