// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"
	"strings"
)

// Shader manages a single shader stage: its source and
// the GPU handle of the compiled shader object.
type Shader struct {

	// Name is a unique name for the shader, used in log messages.
	Name string

	// Type is the shader stage.
	Type ShaderTypes

	// Source is the GLSL source code.
	Source string

	// Result is the result of the last [Shader.Compile].
	Result Result

	handle uint32
}

// NewShader returns a new shader of the given type, name and source.
func NewShader(typ ShaderTypes, name, src string) *Shader {
	return &Shader{Type: typ, Name: name, Source: src}
}

// Compile creates the shader object and compiles the source for it.
// Compile failures are logged and reported in the returned [Result]
// but the shader object is kept, so that a program can still be
// assembled from it; linking will then fail in turn.
// Context must be current.
func (sh *Shader) Compile(gl GL) Result {
	sh.Release(gl)
	sh.handle = gl.CreateShader(sh.Type)
	gl.ShaderSource(sh.handle, sh.Source)
	gl.CompileShader(sh.handle)

	sh.Result = Result{OK: gl.ShaderCompiled(sh.handle)}
	sh.Result.Log = strings.TrimRight(gl.ShaderInfoLog(sh.handle), "\x00\n ")
	if !sh.Result.OK {
		slog.Error("gpu.Shader: compilation failed", "shader", sh.Name, "type", sh.Type, "log", sh.Result.Log)
	}
	return sh.Result
}

// Handle returns the GPU handle for this shader, 0 if not compiled.
func (sh *Shader) Handle() uint32 {
	return sh.handle
}

// Release deletes the shader object. A linked program keeps
// its own copy of the compiled code, so shaders can be
// released right after linking.
func (sh *Shader) Release(gl GL) {
	if sh.handle == 0 {
		return
	}
	gl.DeleteShader(sh.handle)
	sh.handle = 0
}
