// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchLag is how long a watched file must be left alone after
// a change before it is replotted.
const watchLag = 100 * time.Millisecond

// Watch replots the selected file of the session each time it is
// written, until the context is done. If out is not empty, each new
// plot is saved to it, replacing any existing file. The result of
// each replot is passed to updated, if not nil.
func Watch(ctx context.Context, s *Session, out string, updated func(err error)) error {
	if s.Filename == "" {
		return ErrNoFile
	}
	fn, err := filepath.Abs(s.Filename)
	if err != nil {
		return err
	}
	watch, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watch.Close()
	// editors often replace a file instead of writing it, so the
	// directory is watched instead of the file
	if err := watch.Add(filepath.Dir(fn)); err != nil {
		return err
	}
	slog.Info("watching", "file", fn)
	lag := time.NewTimer(watchLag)
	lag.Stop()
	defer lag.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watch.Events:
			if !ok {
				return nil
			}
			if event.Name != fn || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			lag.Reset(watchLag)
		case <-lag.C:
			err := replot(s, out)
			if err != nil {
				slog.Error("replot", "file", fn, "err", err)
			}
			if updated != nil {
				updated(err)
			}
		case err, ok := <-watch.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher", "err", err)
		}
	}
}

func replot(s *Session, out string) error {
	if err := s.Plot(); err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	return s.Figure.Save(out)
}
