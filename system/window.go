// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"

	"cogentcore.org/learngl/events"
	"cogentcore.org/learngl/events/key"
)

// WindowOptions are the options used when creating a [Window].
type WindowOptions struct {

	// Title is the window title.
	Title string

	// Size is the requested size of the window in screen coordinates.
	Size image.Point

	// GLMajor and GLMinor are the requested OpenGL context version.
	GLMajor, GLMinor int

	// CoreProfile requests a core profile context.
	CoreProfile bool

	// ForwardCompat requests a forward compatible context,
	// which macOS requires for core profiles.
	ForwardCompat bool

	// Fixed makes the window not resizable by the user.
	Fixed bool
}

// Window is an operating system window with an associated
// OpenGL context. It must only be used from the main OS thread.
type Window interface {

	// MakeContextCurrent makes the window's context current
	// on the calling thread.
	MakeContextCurrent()

	// ShouldClose returns whether the window has been
	// signaled to close.
	ShouldClose() bool

	// SetShouldClose sets the close flag of the window.
	SetShouldClose(close bool)

	// Key returns the last reported action of the given key,
	// [key.Press] or [key.Release].
	Key(code key.Codes) key.Actions

	// PollEvents processes the pending events without blocking,
	// delivering them to [Window.Events] listeners.
	PollEvents()

	// SwapBuffers swaps the back buffer that was just rendered
	// with the front buffer shown on screen.
	SwapBuffers()

	// FramebufferSize returns the current size of the
	// framebuffer in pixels.
	FramebufferSize() image.Point

	// Events returns the listeners that receive the window's
	// events, such as [events.WindowResize].
	Events() *events.Listeners

	// Destroy destroys the window and its context.
	Destroy()
}

// WindowBase provides the event listeners for implementations of [Window].
type WindowBase struct {
	Listeners events.Listeners
}

func (w *WindowBase) Events() *events.Listeners {
	return &w.Listeners
}

// Send delivers the event to the window's listeners.
func (w *WindowBase) Send(ev *events.Event) {
	w.Listeners.Call(ev)
}
