// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Title      string     `default:"LearnOpenGL" desc:"the window title"`
	Width      int        `default:"800" desc:"the window width"`
	GLMajor    int        `default:"3"`
	ClearColor [4]float32 `default:"0.2 0.3 0.3 1"`
	Verbose    bool       `flag:"v,verbose"`
	Skipped    string     `flag:"-"`
}

func testOptions(dir string) *Options {
	return &Options{
		AppName:      "learngl",
		AppAbout:     "test app",
		DefaultFiles: []string{"learngl.toml"},
		SearchPaths:  []string{dir},
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &testConfig{}
	file, err := Config(testOptions(t.TempDir()), cfg)
	require.NoError(t, err)
	assert.Empty(t, file)
	assert.Equal(t, "LearnOpenGL", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 3, cfg.GLMajor)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.3, 1}, cfg.ClearColor)
}

func TestConfigFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "learngl.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Title = \"From File\"\nWidth = 1024\n"), 0o644))

	cfg := &testConfig{}
	file, err := Config(testOptions(dir), cfg, "--width", "640", "-v")
	require.NoError(t, err)
	assert.Equal(t, fn, file)
	assert.Equal(t, "From File", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.True(t, cfg.Verbose)
}

func TestConfigExplicitYAML(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("title: Yaml\nclearcolor: [0, 0, 0, 1]\n"), 0o644))

	cfg := &testConfig{}
	file, err := Config(testOptions(dir), cfg, "--config", fn, "--clear-color", "1 1 1 1")
	require.NoError(t, err)
	assert.Equal(t, fn, file)
	assert.Equal(t, "Yaml", cfg.Title)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, cfg.ClearColor)
}

func TestConfigErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := &testConfig{}
	_, err := Config(testOptions(dir), cfg, "--help")
	assert.ErrorIs(t, err, pflag.ErrHelp)

	_, err = Config(testOptions(dir), cfg, "--width", "wide")
	assert.Error(t, err)

	_, err = Config(testOptions(dir), cfg, "--skipped", "x")
	assert.Error(t, err)

	fn := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Unknown = 1\n"), 0o644))
	_, err = Config(testOptions(dir), cfg, "--config", fn)
	assert.Error(t, err)

	_, err = Config(testOptions(dir), cfg, "--config", filepath.Join(dir, "x.json"))
	assert.Error(t, err)
}

func TestKebab(t *testing.T) {
	assert.Equal(t, "gl-major", kebab("GLMajor"))
	assert.Equal(t, "clear-color", kebab("ClearColor"))
	assert.Equal(t, "fps-interval", kebab("FPSInterval"))
	assert.Equal(t, "title", kebab("Title"))
}
