// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"testing"

	"cogentcore.org/learngl/gpu/gputest"
	"cogentcore.org/learngl/system/systemtest"
	"github.com/stretchr/testify/assert"
)

func TestViewportResize(t *testing.T) {
	sizes := []image.Point{
		{800, 600}, {1, 1}, {0, 0}, {0, 480}, {1920, 0}, {3840, 2160}, {333, 777},
	}
	gl := gputest.NewRecorder()
	vp := NewViewport(gl)
	for _, sz := range sizes {
		vp.Resize(sz)
		assert.Equal(t, [4]int32{0, 0, int32(sz.X), int32(sz.Y)}, gl.CurrentViewport, "size %v", sz)
		assert.Equal(t, image.Rectangle{Max: sz}, vp.Rect)
	}
}

func TestViewportNegative(t *testing.T) {
	gl := gputest.NewRecorder()
	vp := NewViewport(gl)
	vp.Resize(image.Pt(-5, 10))
	assert.Equal(t, [4]int32{0, 0, 0, 10}, gl.CurrentViewport)
}

func TestViewportAttach(t *testing.T) {
	gl := gputest.NewRecorder()
	win := systemtest.NewWindow(image.Pt(1600, 1200))
	vp := NewViewport(gl)
	vp.Attach(win)
	assert.Equal(t, [4]int32{0, 0, 1600, 1200}, gl.CurrentViewport)

	win.Resize(image.Pt(640, 480))
	assert.Equal(t, [4]int32{0, 0, 1600, 1200}, gl.CurrentViewport, "applied on poll")
	win.PollEvents()
	assert.Equal(t, [4]int32{0, 0, 640, 480}, gl.CurrentViewport)

	win.Resize(image.Pt(0, 0))
	win.PollEvents()
	assert.Equal(t, [4]int32{0, 0, 0, 0}, gl.CurrentViewport)
	assert.Equal(t, 3, gl.Count("Viewport"))
}
