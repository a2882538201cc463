// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package desktop

import (
	"image"

	"cogentcore.org/learngl/events/key"
	"cogentcore.org/learngl/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a GLFW window with an OpenGL context.
type Window struct {
	system.WindowBase

	// Glw is the underlying GLFW window, nil once destroyed.
	Glw *glfw.Window
}

var _ system.Window = (*Window)(nil)

func newWindow(glw *glfw.Window) *Window {
	w := &Window{Glw: glw}
	glw.SetFramebufferSizeCallback(w.FramebufferSizeEvent)
	glw.SetKeyCallback(w.KeyEvent)
	glw.SetCloseCallback(w.CloseEvent)
	return w
}

func (w *Window) MakeContextCurrent() {
	w.Glw.MakeContextCurrent()
}

func (w *Window) ShouldClose() bool {
	return w.Glw.ShouldClose()
}

func (w *Window) SetShouldClose(close bool) {
	w.Glw.SetShouldClose(close)
}

func (w *Window) Key(code key.Codes) key.Actions {
	gk, ok := glfwKeys[code]
	if !ok {
		return key.Release
	}
	return GlfwAction(w.Glw.GetKey(gk))
}

// PollEvents processes all pending events of all windows,
// which is how GLFW works.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Glw.SwapBuffers()
}

func (w *Window) FramebufferSize() image.Point {
	width, height := w.Glw.GetFramebufferSize()
	return image.Pt(width, height)
}

// Destroy destroys the window. It is safe to call more than once.
func (w *Window) Destroy() {
	if w.Glw == nil {
		return
	}
	w.Glw.Destroy()
	w.Glw = nil
}
