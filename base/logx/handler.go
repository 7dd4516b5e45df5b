// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default logger to be a [Handler] writing
// to [os.Stderr], with the level determined by [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Handler is a [slog.Handler] that writes one line per record, with
// the level rendered in a color appropriate for the terminal.
// Records below [UserLevel] are dropped.
type Handler struct {
	out   *termenv.Output
	mu    *sync.Mutex
	attrs []slog.Attr
	group string
}

// NewHandler returns a new [Handler] writing to the given writer.
// Colors are only used when the writer is a terminal that supports them.
func NewHandler(w io.Writer) *Handler {
	return &Handler{out: termenv.NewOutput(w), mu: &sync.Mutex{}}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	sb := &strings.Builder{}
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(sb, h.group, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if h.group == "" {
		nh.group = name
	} else {
		nh.group = h.group + "." + name
	}
	return &nh
}

// levelString returns the colored level prefix for the given level.
func (h *Handler) levelString(level slog.Level) string {
	var c termenv.Color
	switch {
	case level >= slog.LevelError:
		c = termenv.ANSIBrightRed
	case level >= slog.LevelWarn:
		c = termenv.ANSIYellow
	case level >= slog.LevelInfo:
		c = termenv.ANSICyan
	default:
		c = termenv.ANSIBrightBlack
	}
	return h.out.String(level.String()).Foreground(c).Bold().String()
}

func writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := a.Key
		if group != "" {
			prefix = group + "." + prefix
		}
		for _, ga := range a.Value.Group() {
			writeAttr(sb, prefix, ga)
		}
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	fmt.Fprintf(sb, " %s=%v", key, a.Value.Any())
}
