// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"
	"time"

	"cogentcore.org/learngl/events/key"
	"cogentcore.org/learngl/gpu"
	"cogentcore.org/learngl/system"
)

// CloseKey is the key that closes the window.
const CloseKey = key.CodeEscape

// Loop is the immediate-mode frame loop: one clear, at most one
// scene draw, one event poll and one buffer swap per frame.
type Loop struct {
	Window system.Window
	GL     gpu.GL

	// Scene is drawn every frame after the clear; nil draws nothing.
	Scene Scene

	// ClearColor is the RGBA color the window is cleared to.
	ClearColor [4]float32

	// FPSInterval is the interval between frame rate reports
	// at debug level; 0 disables them.
	FPSInterval time.Duration

	// Reload, when set, signals that the scene's shaders should be
	// rebuilt; this is done at the start of the next frame.
	Reload <-chan struct{}

	frames     int
	statFrames int
	statStart  time.Time
	now        func() time.Time
}

// NewLoop returns a new loop for the given window, context and scene,
// clearing to the given color.
func NewLoop(win system.Window, gl gpu.GL, scene Scene, clearColor [4]float32) *Loop {
	return &Loop{Window: win, GL: gl, Scene: scene, ClearColor: clearColor, now: time.Now}
}

// Frames returns the number of frames rendered so far.
func (lp *Loop) Frames() int {
	return lp.frames
}

// ProcessInput requests the window to close when [CloseKey] is pressed.
func (lp *Loop) ProcessInput() {
	if lp.Window.Key(CloseKey) == key.Press {
		lp.Window.SetShouldClose(true)
	}
}

// Frame renders one frame.
func (lp *Loop) Frame() {
	lp.reload()
	lp.ProcessInput()

	c := lp.ClearColor
	lp.GL.ClearColor(c[0], c[1], c[2], c[3])
	lp.GL.Clear(gpu.ColorBufferBit)
	if lp.Scene != nil {
		lp.Scene.Draw(lp.GL)
	}

	lp.Window.PollEvents()
	lp.Window.SwapBuffers()
	lp.frames++
	lp.stats()
}

// Run renders frames until the window is signaled to close,
// returning the number of frames rendered.
func (lp *Loop) Run() int {
	lp.statStart = lp.clock()
	for !lp.Window.ShouldClose() {
		lp.Frame()
	}
	return lp.frames
}

func (lp *Loop) reload() {
	if lp.Reload == nil {
		return
	}
	select {
	case <-lp.Reload:
	default:
		return
	}
	rl, ok := lp.Scene.(Reloader)
	if !ok {
		return
	}
	slog.Info("render: reloading shaders", "scene", rl.Name())
	rl.Reload(lp.GL)
}

func (lp *Loop) clock() time.Time {
	if lp.now == nil {
		lp.now = time.Now
	}
	return lp.now()
}

func (lp *Loop) stats() {
	if lp.FPSInterval <= 0 {
		return
	}
	lp.statFrames++
	now := lp.clock()
	if lp.statStart.IsZero() {
		lp.statStart = now
		return
	}
	dur := now.Sub(lp.statStart)
	if dur < lp.FPSInterval {
		return
	}
	fps := float64(lp.statFrames) / dur.Seconds()
	slog.Debug("render: frame rate", "fps", int(fps+0.5), "frames", lp.frames)
	lp.statFrames = 0
	lp.statStart = now
}
