// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Package desktop implements the [system.Platform] on
// desktop operating systems using GLFW.
package desktop

import (
	"fmt"
	"log/slog"

	"cogentcore.org/learngl/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// App is the GLFW [system.Platform]. GLFW must only be
// used from the main OS thread, which callers must lock
// with runtime.LockOSThread before using it.
type App struct {
	windows []*Window
}

// NewApp returns a new GLFW platform.
func NewApp() *App {
	return &App{}
}

func (a *App) Name() string {
	return "glfw " + glfw.GetVersionString()
}

func (a *App) Init() error {
	return glfw.Init()
}

func (a *App) Terminate() {
	for _, w := range a.windows {
		w.Destroy()
	}
	a.windows = nil
	glfw.Terminate()
}

// NewWindow sets the context window hints from the options
// and creates the window.
func (a *App) NewWindow(opts *system.WindowOptions) (system.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	if opts.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(opts.ForwardCompat))
	glfw.WindowHint(glfw.Resizable, glfwBool(!opts.Fixed))

	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	w := newWindow(glw)
	a.windows = append(a.windows, w)
	slog.Debug("desktop: created window", "title", opts.Title, "size", opts.Size,
		"gl", fmt.Sprintf("%d.%d", opts.GLMajor, opts.GLMinor), "core", opts.CoreProfile)
	return w, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
