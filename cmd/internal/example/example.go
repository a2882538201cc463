// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package example contains the main function shared
// by the example commands.
package example

import (
	"log/slog"
	"os"

	"cogentcore.org/learngl/app"
	"cogentcore.org/learngl/base/errors"
	"cogentcore.org/learngl/base/logx"
	"cogentcore.org/learngl/cli"
	"cogentcore.org/learngl/config"
	"cogentcore.org/learngl/gpu"
	"cogentcore.org/learngl/gpu/glcore"
	"cogentcore.org/learngl/render"
	"cogentcore.org/learngl/system"
	"cogentcore.org/learngl/system/driver"
	"github.com/spf13/pflag"
)

// Main reads the config from the command line and config files,
// runs the example with the scene returned by newScene, and
// returns the process exit code. It must be called on the main
// OS thread, locked with [runtime.LockOSThread].
func Main(name, about string, newScene func(cfg *config.Config) render.Scene) int {
	logx.SetDefaultLogger()
	opts := &cli.Options{
		AppName:      name,
		AppAbout:     about,
		DefaultFiles: []string{"learngl.toml", "learngl.yaml"},
		SearchPaths:  []string{"."},
	}
	cfg := &config.Config{}
	file, err := cli.Config(opts, cfg, os.Args[1:]...)
	if errors.Is(err, pflag.ErrHelp) {
		return app.ExitOK
	}
	if errors.Log(err) != nil {
		return app.ExitFailure
	}
	if file != "" {
		slog.Debug("read config file", "file", file)
	}

	a := &app.App{
		Config:   cfg,
		Platform: driver.Platform(),
		LoadGL: func(win system.Window) (gpu.GL, error) {
			return glcore.Init()
		},
	}
	if newScene != nil {
		a.Scene = newScene(cfg)
	}
	return a.Run()
}
