// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("link failed")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "link failed")
}

func TestLog1(t *testing.T) {
	buf := captureLog(t)
	assert.Equal(t, 3, Log1(3, nil))
	assert.Empty(t, buf.String())

	assert.Equal(t, 0, Log1(0, New("no context: 7")))
	assert.Contains(t, buf.String(), "no context: 7")
}

func TestMust(t *testing.T) {
	assert.Equal(t, "ok", Must1("ok", nil))
	assert.Panics(t, func() { Must1("", New("boom")) })
}

func TestWrap(t *testing.T) {
	base := New("base")
	wrapped := fmt.Errorf("outer: %w", base)
	assert.True(t, Is(wrapped, base))
	assert.True(t, Is(Join(New("a"), wrapped), base))
}
