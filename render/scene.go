// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the per-frame render loop, the viewport
// that follows the window size, and the scenes drawn by the examples.
package render

import "cogentcore.org/learngl/gpu"

// Scene is something drawn once per frame after the clear.
// All methods are called on the render thread with the context current.
type Scene interface {

	// Name returns the name of the scene, for logging.
	Name() string

	// Setup creates the GPU resources of the scene, once,
	// before the first frame. Shader compile and link failures
	// are logged and are not errors.
	Setup(gl gpu.GL) error

	// Draw issues the draw calls of the scene.
	Draw(gl gpu.GL)

	// Release deletes the GPU resources of the scene.
	Release(gl gpu.GL)
}

// Reloader is a [Scene] that can rebuild its shaders while running.
type Reloader interface {
	Scene

	// Reload rebuilds the shaders from their sources.
	Reload(gl gpu.GL)
}

// Clear is the empty [Scene]: the window is only cleared.
type Clear struct{}

func (Clear) Name() string { return "clear" }

func (Clear) Setup(gl gpu.GL) error { return nil }

func (Clear) Draw(gl gpu.GL) {}

func (Clear) Release(gl gpu.GL) {}
