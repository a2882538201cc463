// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct shared by the example programs.
package config

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Config is the main config struct that contains all of
// the configuration options for the example programs.
// The defaults reproduce the LearnOpenGL tutorial exactly.
type Config struct {

	// the window title
	Title string `default:"LearnOpenGL" desc:"the window title"`

	// the initial window width in screen coordinates
	Width int `default:"800" desc:"the initial window width"`

	// the initial window height in screen coordinates
	Height int `default:"600" desc:"the initial window height"`

	// the requested OpenGL context major version
	GLMajor int `default:"3" desc:"the requested OpenGL context major version"`

	// the requested OpenGL context minor version
	GLMinor int `default:"3" desc:"the requested OpenGL context minor version"`

	// whether to request a core profile context
	CoreProfile bool `default:"true" desc:"whether to request a core profile context"`

	// whether to request a forward compatible context (required on macOS)
	ForwardCompat bool `desc:"whether to request a forward compatible context (required on macOS)"`

	// the RGBA color the window is cleared to every frame
	ClearColor [4]float32 `default:"0.2 0.3 0.3 1" desc:"the RGBA color the window is cleared to every frame"`

	// a directory with shader files overriding the embedded ones
	ShaderDir string `desc:"a directory with shader files overriding the embedded ones"`

	// whether to watch ShaderDir and relink the shaders when they change
	WatchShaders bool `desc:"whether to watch the shader directory and relink the shaders when they change"`

	// the interval in seconds between frame rate reports at debug level; 0 disables them
	FPSInterval float32 `default:"10" desc:"the interval in seconds between frame rate reports; 0 disables them"`

	// show debug messages
	Debug bool `flag:"d,debug" desc:"show debug messages"`

	// show informational messages
	Verbose bool `flag:"v,verbose" desc:"show informational messages"`

	// only show errors
	Quiet bool `flag:"q,quiet" desc:"only show errors"`
}

// Validate checks the config for values that cannot work and
// clamps the clear color components into [0, 1].
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Width, c.Height)
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3) {
		return fmt.Errorf("config: OpenGL %d.%d is too old; at least 3.3 is required", c.GLMajor, c.GLMinor)
	}
	if c.FPSInterval < 0 {
		return fmt.Errorf("config: negative FPSInterval %g", c.FPSInterval)
	}
	for i, v := range c.ClearColor {
		if math32.IsNaN(v) {
			return fmt.Errorf("config: clear color component %d is NaN", i)
		}
		c.ClearColor[i] = math32.Min(math32.Max(v, 0), 1)
	}
	if c.WatchShaders && c.ShaderDir == "" {
		return fmt.Errorf("config: WatchShaders requires a ShaderDir")
	}
	return nil
}
