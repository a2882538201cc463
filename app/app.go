// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs an example program: it sets up a window
// with an OpenGL context, sets up a scene, and renders it
// until the window is closed.
package app

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/learngl/base/errors"
	"cogentcore.org/learngl/base/logx"
	"cogentcore.org/learngl/cli"
	"cogentcore.org/learngl/config"
	"cogentcore.org/learngl/gpu"
	"cogentcore.org/learngl/render"
	"cogentcore.org/learngl/system"
)

// Exit codes returned by [App.Run].
const (
	ExitOK      = 0
	ExitFailure = -1
)

// App is an example program.
type App struct {

	// Config is the configuration; nil uses the defaults.
	Config *config.Config

	// Platform is the windowing platform.
	Platform system.Platform

	// LoadGL loads the OpenGL functions for the context of the
	// given window, which is current.
	LoadGL func(win system.Window) (gpu.GL, error)

	// Scene is the scene drawn every frame; nil only clears.
	Scene render.Scene
}

// Run runs the app and returns the process exit code:
// [ExitOK] when the window was closed, and [ExitFailure]
// when the window or the OpenGL context could not be set up.
func (a *App) Run() int {
	if errors.Log(a.run()) != nil {
		return ExitFailure
	}
	return ExitOK
}

func (a *App) config() (*config.Config, error) {
	if a.Config != nil {
		return a.Config, nil
	}
	cfg := &config.Config{}
	if err := cli.SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	a.Config = cfg
	return cfg, nil
}

// WindowOptions returns the window options for the given config.
func WindowOptions(cfg *config.Config) *system.WindowOptions {
	return &system.WindowOptions{
		Title:         cfg.Title,
		Size:          image.Pt(cfg.Width, cfg.Height),
		GLMajor:       cfg.GLMajor,
		GLMinor:       cfg.GLMinor,
		CoreProfile:   cfg.CoreProfile,
		ForwardCompat: cfg.ForwardCompat,
	}
}

func (a *App) run() (err error) {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	logx.UserLevel.Set(logx.LevelFromFlags(cfg.Debug, cfg.Verbose, cfg.Quiet))
	if err := cfg.Validate(); err != nil {
		return err
	}

	ss, err := system.Init(a.Platform)
	if err != nil {
		return err
	}
	defer ss.Terminate()

	win, err := ss.NewWindow(WindowOptions(cfg))
	if err != nil {
		return err
	}
	defer win.Destroy()
	win.MakeContextCurrent()

	gl, err := a.LoadGL(win)
	if err != nil {
		return fmt.Errorf("app: failed to initialize OpenGL: %w", err)
	}
	slog.Info("app: OpenGL context", "version", gl.GetString(gpu.Version), "renderer", gl.GetString(gpu.Renderer), "glsl", gl.GetString(gpu.ShadingLanguageVersion))

	render.NewViewport(gl).Attach(win)

	scene := a.Scene
	if scene == nil {
		scene = render.Clear{}
	}
	err = scene.Setup(gl)
	defer scene.Release(gl)
	if err != nil {
		return fmt.Errorf("app: failed to set up %s: %w", scene.Name(), err)
	}

	lp := render.NewLoop(win, gl, scene, cfg.ClearColor)
	lp.FPSInterval = time.Duration(float64(cfg.FPSInterval) * float64(time.Second))
	if cfg.WatchShaders {
		w, werr := render.WatchShaders(cfg.ShaderDir)
		if werr != nil {
			return werr
		}
		defer func() {
			err = errors.Join(err, w.Close())
		}()
		lp.Reload = w.C
	}

	st := time.Now()
	n := lp.Run()
	slog.Debug("app: window closed", "frames", n, "elapsed", time.Since(st).Round(time.Millisecond))
	return nil
}
