// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("bad thing")
	assert.Equal(t, err, Log(err))
}

func TestLog1(t *testing.T) {
	assert.Equal(t, 12, Log1(strconv.Atoi("12")))
	assert.Equal(t, 0, Log1(strconv.Atoi("twelve")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, 3, Must1(strconv.Atoi("3")))
	assert.Panics(t, func() { Must1(strconv.Atoi("x")) })
}

func TestIgnore1(t *testing.T) {
	assert.Equal(t, 0, Ignore1(strconv.Atoi("x")))
}

func TestReexports(t *testing.T) {
	base := New("base")
	wrapped := fmt.Errorf("context: %w", base)
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Unwrap(wrapped))
	var ne *strconv.NumError
	_, err := strconv.Atoi("x")
	assert.True(t, As(err, &ne))
	joined := Join(base, New("other"))
	assert.True(t, Is(joined, base))
}

func TestCallerInfo(t *testing.T) {
	info := func() string { return CallerInfo() }()
	assert.Contains(t, info, "errors_test.go")
}
