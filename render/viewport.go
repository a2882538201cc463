// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"cogentcore.org/learngl/events"
	"cogentcore.org/learngl/gpu"
	"cogentcore.org/learngl/system"
)

// Viewport owns the GL viewport and keeps it covering
// the whole framebuffer of a window.
type Viewport struct {
	GL gpu.GL

	// Rect is the current viewport rectangle.
	Rect image.Rectangle
}

// NewViewport returns a new viewport for the given context.
func NewViewport(gl gpu.GL) *Viewport {
	return &Viewport{GL: gl}
}

// Resize sets the viewport to (0, 0, size.X, size.Y).
// Negative sizes are treated as 0.
func (vp *Viewport) Resize(size image.Point) {
	size.X = max(size.X, 0)
	size.Y = max(size.Y, 0)
	vp.Rect = image.Rectangle{Max: size}
	vp.GL.Viewport(0, 0, int32(size.X), int32(size.Y))
}

// Attach sets the viewport to the current framebuffer size of
// the window and subscribes to its resize events.
func (vp *Viewport) Attach(win system.Window) {
	vp.Resize(win.FramebufferSize())
	win.Events().Add(events.WindowResize, func(ev *events.Event) {
		vp.Resize(ev.Size)
	})
}
