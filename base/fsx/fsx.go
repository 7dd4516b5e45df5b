// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Bios-Marcel/wastebasket/v2"
	"github.com/mitchellh/go-homedir"
)

// ExpandHome expands a leading ~ in the given path to the user's
// home directory and cleans the result. Empty paths are returned as is.
func ExpandHome(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	ep, err := homedir.Expand(path)
	if err != nil {
		return path, err
	}
	return filepath.Clean(ep), nil
}

// FileExists checks whether the given file exists, returning true if so,
// false if not, and an error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Trash moves the given file to the platform trash can instead of
// deleting it, so that a file about to be overwritten can be recovered.
func Trash(path string) error {
	return wastebasket.Trash(path)
}
