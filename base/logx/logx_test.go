// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserLevelDefault(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, UserLevel.Level())
	assert.Equal(t, LevelFromFlags(false, false, false), UserLevel.Level())
}

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
	var buf bytes.Buffer
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelInfo)
	lg := slog.New(NewHandler(&buf, lv))

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.Info("window created", "width", 800, "title", "LearnOpenGL")
	assert.Equal(t, "INFO  window created width=800 title=LearnOpenGL\n", buf.String())

	buf.Reset()
	lg.With("shader", "vertex").WithGroup("gl").Error("compile failed", "log", "0:1: syntax error")
	assert.Equal(t, "ERROR compile failed shader=vertex gl.log=\"0:1: syntax error\"\n", buf.String())

	buf.Reset()
	lv.Set(slog.LevelDebug)
	lg.Debug("frame", "n", 1)
	assert.Equal(t, "DEBUG frame n=1\n", buf.String())
}

func TestDefaultLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)
	old := UserLevel.Level()
	defer UserLevel.Set(old)
	UserLevel.Set(slog.LevelDebug)
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
