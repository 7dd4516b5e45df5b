// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Stdout is where the print functions write. Tests may replace it.
var Stdout io.Writer = os.Stdout

// Println prints the given values with [fmt.Fprintln] if [UserLevel]
// is at or below the given level.
func Println(level slog.Level, a ...any) {
	if UserLevel <= level {
		fmt.Fprintln(Stdout, a...)
	}
}

// PrintlnInfo is equivalent to [Println] with [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	Println(slog.LevelInfo, a...)
}
