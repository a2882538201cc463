// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"strings"
	"testing"
	"time"

	"cogentcore.org/learngl/gpu/gputest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSources(t *testing.T) {
	var src *Sources
	for _, name := range []string{"triangle.vert", "triangle.frag"} {
		s, err := src.Load(name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(s, "#version 330 core"), name)
		assert.Empty(t, gputest.CheckGLSL(s), name)
	}
	vs, err := src.Load("triangle.vert")
	require.NoError(t, err)
	assert.Contains(t, vs, "layout (location = 0) in vec3 aPos;")
	fs, err := src.Load("triangle.frag")
	require.NoError(t, err)
	assert.Contains(t, fs, "vec4(1.0f, 0.5f, 0.2f, 1.0f)")

	_, err = src.Load("missing.vert")
	assert.Error(t, err)
}

func TestSourcesOverride(t *testing.T) {
	dir := t.TempDir()
	writeShader(t, dir, "triangle.frag", blueFrag)
	src := &Sources{Dir: dir}

	fs, err := src.Load("triangle.frag")
	require.NoError(t, err)
	assert.Equal(t, blueFrag, fs)

	vs, err := src.Load("triangle.vert")
	require.NoError(t, err)
	assert.Contains(t, vs, "aPos", "falls back to the embedded source")
}

func TestWatchShaders(t *testing.T) {
	dir := t.TempDir()
	w, err := WatchShaders(dir)
	require.NoError(t, err)
	defer w.Close()

	writeShader(t, dir, "notes.txt", "not a shader")
	writeShader(t, dir, "triangle.frag", blueFrag)
	select {
	case <-w.C:
	case <-time.After(5 * time.Second):
		t.Fatal("no change signaled for triangle.frag")
	}
}

func TestWatchShadersMissingDir(t *testing.T) {
	_, err := WatchShaders(t.TempDir() + "/missing")
	assert.Error(t, err)
}

func TestWatcherClose(t *testing.T) {
	w, err := WatchShaders(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}

func TestSourcesInclude(t *testing.T) {
	dir := t.TempDir()
	writeShader(t, dir, "color.glsl", "const vec4 color = vec4(0.0f, 1.0f, 0.0f, 1.0f);")
	writeShader(t, dir, "common.glsl", "#include \"color.glsl\"\n")
	writeShader(t, dir, "triangle.frag", `#version 330 core
#include "common.glsl"
out vec4 FragColor;
void main()
{
    FragColor = color;
}`)
	src := &Sources{Dir: dir}
	fs, err := src.Load("triangle.frag")
	require.NoError(t, err)
	assert.Contains(t, fs, "// #include \"common.glsl\"")
	assert.Contains(t, fs, "// #include \"color.glsl\"")
	assert.Contains(t, fs, "const vec4 color")
	assert.True(t, strings.HasPrefix(fs, "#version 330 core\n"))
	assert.Empty(t, gputest.CheckGLSL(fs))
}

func TestSourcesIncludeErrors(t *testing.T) {
	dir := t.TempDir()
	writeShader(t, dir, "loop.glsl", `#include "loop.glsl"`)
	src := &Sources{Dir: dir}

	_, err := src.Include("a.frag", `#include "loop.glsl"`)
	assert.ErrorContains(t, err, "nested")

	_, err = src.Include("b.frag", `#include "missing.glsl"`)
	assert.ErrorContains(t, err, "b.frag:1")

	_, err = src.Include("c.frag", "void main() {}\n#include missing.glsl")
	assert.ErrorContains(t, err, "malformed #include")

	out, err := src.Include("d.frag", "void main() {}")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", out)
}
