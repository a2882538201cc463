// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hellotriangle draws one orange triangle every frame
// until Escape is pressed or the window is closed.
package main

import (
	"os"
	"runtime"

	"cogentcore.org/learngl/cmd/internal/example"
	"cogentcore.org/learngl/config"
	"cogentcore.org/learngl/render"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	os.Exit(example.Main("hellotriangle", "Draws a triangle with a minimal shader pipeline.", func(cfg *config.Config) render.Scene {
		return render.NewTriangle(&render.Sources{Dir: cfg.ShaderDir})
	}))
}
