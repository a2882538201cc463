// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hellowindow opens a window with an OpenGL 3.3 core
// context and clears it every frame until Escape is pressed
// or the window is closed.
package main

import (
	"os"
	"runtime"

	"cogentcore.org/learngl/cmd/internal/example"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	os.Exit(example.Main("hellowindow", "Opens a window and clears it every frame.", nil))
}
