// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"testing"

	"cogentcore.org/learngl/base/logx"
	"cogentcore.org/learngl/cli"
	"cogentcore.org/learngl/config"
	"cogentcore.org/learngl/gpu"
	"cogentcore.org/learngl/gpu/gputest"
	"cogentcore.org/learngl/render"
	"cogentcore.org/learngl/system"
	"cogentcore.org/learngl/system/systemtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func testConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	require.NoError(t, cli.SetFromDefaults(cfg))
	return cfg
}

// newTestApp returns an app on fake platform and GL
// whose window closes after the given number of frames.
func newTestApp(t *testing.T, frames int, scene render.Scene) (*App, *systemtest.Platform, *gputest.Recorder) {
	pl := &systemtest.Platform{CloseAfter: frames}
	gl := gputest.NewRecorder()
	a := &App{
		Config:   testConfig(t),
		Platform: pl,
		LoadGL: func(win system.Window) (gpu.GL, error) {
			return gl, nil
		},
		Scene: scene,
	}
	return a, pl, gl
}

func TestRunHelloWindow(t *testing.T) {
	a, pl, gl := newTestApp(t, 3, nil)
	assert.Equal(t, ExitOK, a.Run())

	assert.Equal(t, 1, pl.Inits)
	assert.Equal(t, 1, pl.Terminates)
	require.Len(t, pl.Windows, 1)
	win := pl.Windows[0]
	assert.True(t, win.Current)
	assert.True(t, win.Destroyed)
	assert.Equal(t, 3, win.Swaps)

	want := system.WindowOptions{
		Title: "LearnOpenGL", Size: image.Pt(800, 600),
		GLMajor: 3, GLMinor: 3, CoreProfile: true,
	}
	assert.Equal(t, want, pl.Options[0])
	assert.Equal(t, [4]int32{0, 0, 800, 600}, gl.CurrentViewport)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.3, 1.0}, gl.CurrentClearColor)
	assert.Zero(t, gl.Count("DrawArrays"))
}

func TestRunHelloTriangle(t *testing.T) {
	a, pl, gl := newTestApp(t, 4, render.NewTriangle(nil))
	assert.Equal(t, ExitOK, a.Run())
	assert.Equal(t, 4, gl.Count("DrawArrays"))
	assert.Zero(t, gl.Live(), "all GPU objects are released")
	assert.Equal(t, 1, pl.Terminates)
}

func TestRunWindowFailure(t *testing.T) {
	logs := captureLog(t)
	a, pl, _ := newTestApp(t, 1, nil)
	pl.WindowErr = errors.New("no display")
	assert.Equal(t, ExitFailure, a.Run())
	assert.Equal(t, 1, pl.Inits)
	assert.Equal(t, 1, pl.Terminates)
	assert.Contains(t, logs.String(), "failed to create window")
	assert.Contains(t, logs.String(), "no display")
}

func TestRunLoadGLFailure(t *testing.T) {
	logs := captureLog(t)
	a, pl, gl := newTestApp(t, 1, render.NewTriangle(nil))
	a.LoadGL = func(win system.Window) (gpu.GL, error) {
		return nil, errors.New("no GL functions")
	}
	assert.Equal(t, ExitFailure, a.Run())
	assert.Equal(t, 1, pl.Terminates)
	require.Len(t, pl.Windows, 1)
	assert.True(t, pl.Windows[0].Destroyed)
	assert.Zero(t, pl.Windows[0].Swaps)
	assert.Empty(t, gl.Calls)
	assert.Contains(t, logs.String(), "failed to initialize OpenGL")
}

func TestRunInitFailure(t *testing.T) {
	captureLog(t)
	a, pl, _ := newTestApp(t, 1, nil)
	pl.InitErr = errors.New("no windowing system")
	assert.Equal(t, ExitFailure, a.Run())
	assert.Zero(t, pl.Terminates)
	assert.Empty(t, pl.Windows)
}

func TestRunInvalidConfig(t *testing.T) {
	captureLog(t)
	a, pl, _ := newTestApp(t, 1, nil)
	a.Config.Width = 0
	assert.Equal(t, ExitFailure, a.Run())
	assert.Zero(t, pl.Inits)
}

func TestRunSetupFailure(t *testing.T) {
	captureLog(t)
	tr := render.NewTriangle(nil)
	tr.VertexFile = "missing.vert"
	a, pl, gl := newTestApp(t, 1, tr)
	assert.Equal(t, ExitFailure, a.Run())
	assert.Zero(t, gl.Live())
	assert.Equal(t, 1, pl.Terminates)
}

func TestRunDefaultConfig(t *testing.T) {
	a, pl, _ := newTestApp(t, 1, nil)
	a.Config = nil
	assert.Equal(t, ExitOK, a.Run())
	require.NotNil(t, a.Config)
	assert.Equal(t, "LearnOpenGL", pl.Options[0].Title)
}

func TestRunWatchShaders(t *testing.T) {
	a, _, gl := newTestApp(t, 2, render.NewTriangle(nil))
	a.Config.ShaderDir = t.TempDir()
	a.Config.WatchShaders = true
	assert.Equal(t, ExitOK, a.Run())
	assert.Zero(t, gl.Live())
}

func TestRunResize(t *testing.T) {
	a, pl, gl := newTestApp(t, 0, nil)
	a.LoadGL = func(win system.Window) (gpu.GL, error) {
		w := win.(*systemtest.Window)
		w.Resize(image.Pt(1024, 768))
		w.CloseAfter = 1
		return gl, nil
	}
	assert.Equal(t, ExitOK, a.Run())
	assert.Equal(t, 1, pl.Windows[0].Swaps)
	assert.Equal(t, [4]int32{0, 0, 1024, 768}, gl.CurrentViewport)
}

func TestRunLogLevel(t *testing.T) {
	old := logx.UserLevel.Level()
	t.Cleanup(func() { logx.UserLevel.Set(old) })

	a, _, _ := newTestApp(t, 1, nil)
	assert.Equal(t, ExitOK, a.Run())
	assert.Equal(t, slog.LevelWarn, logx.UserLevel.Level())

	a, _, _ = newTestApp(t, 1, nil)
	a.Config.Verbose = true
	assert.Equal(t, ExitOK, a.Run())
	assert.Equal(t, slog.LevelInfo, logx.UserLevel.Level())

	a, _, _ = newTestApp(t, 1, nil)
	a.Config.Debug = true
	a.Config.Quiet = true
	assert.Equal(t, ExitOK, a.Run())
	assert.Equal(t, slog.LevelDebug, logx.UserLevel.Level())
}
