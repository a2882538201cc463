// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Program manages a set of shaders linked into one
// executable pipeline object.
type Program struct {

	// Name is the name of the program, used in log messages.
	Name string

	// Result is the result of the last [Program.Link].
	Result Result

	shaders map[ShaderTypes]*Shader
	handle  uint32
}

// NewProgram returns a new empty program with the given name.
func NewProgram(name string) *Program {
	return &Program{Name: name}
}

// AddShader adds shader of given type, unique name and source code.
// There can only be one shader of each type.
func (pr *Program) AddShader(typ ShaderTypes, name, src string) (*Shader, error) {
	if pr.shaders == nil {
		pr.shaders = make(map[ShaderTypes]*Shader)
	}
	if _, has := pr.shaders[typ]; has {
		return nil, fmt.Errorf("gpu.Program %s: shader of type %v already added", pr.Name, typ)
	}
	sh := NewShader(typ, name, src)
	pr.shaders[typ] = sh
	return sh, nil
}

// Shaders returns the shaders in stage order.
func (pr *Program) Shaders() []*Shader {
	shs := make([]*Shader, 0, len(pr.shaders))
	for _, sh := range pr.shaders {
		shs = append(shs, sh)
	}
	sort.Slice(shs, func(i, j int) bool { return shs[i].Type < shs[j].Type })
	return shs
}

// Compile compiles all shaders, returning a combined result
// whose log names each shader that failed.
func (pr *Program) Compile(gl GL) Result {
	res := Result{OK: true}
	var logs []string
	for _, sh := range pr.Shaders() {
		sr := sh.Compile(gl)
		if !sr.OK {
			res.OK = false
			logs = append(logs, fmt.Sprintf("%s: %s", sh.Name, sr.Log))
		}
	}
	res.Log = strings.Join(logs, "\n")
	return res
}

// Link creates the program object, attaches the compiled shaders
// and links them. Link failures are logged and reported in the
// returned [Result] and are not fatal. Context must be current.
func (pr *Program) Link(gl GL) Result {
	pr.releaseProgram(gl)
	pr.handle = gl.CreateProgram()
	for _, sh := range pr.Shaders() {
		if sh.Handle() != 0 {
			gl.AttachShader(pr.handle, sh.Handle())
		}
	}
	gl.LinkProgram(pr.handle)

	pr.Result = Result{OK: gl.ProgramLinked(pr.handle)}
	pr.Result.Log = strings.TrimRight(gl.ProgramInfoLog(pr.handle), "\x00\n ")
	if !pr.Result.OK {
		slog.Error("gpu.Program: linking failed", "program", pr.Name, "log", pr.Result.Log)
	}
	return pr.Result
}

// Build compiles all the shaders, links the program, and releases
// the shader objects, which are no longer needed after linking.
// It returns the first failing result, or the link result.
func (pr *Program) Build(gl GL) Result {
	cres := pr.Compile(gl)
	lres := pr.Link(gl)
	pr.ReleaseShaders(gl)
	if !cres.OK {
		return cres
	}
	return lres
}

// Handle returns the GPU handle for this program, 0 if not linked.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Use makes this the active program for subsequent draw calls.
func (pr *Program) Use(gl GL) {
	gl.UseProgram(pr.handle)
}

// ReleaseShaders deletes the individual shader objects.
func (pr *Program) ReleaseShaders(gl GL) {
	for _, sh := range pr.Shaders() {
		sh.Release(gl)
	}
}

// Release deletes the shader objects and the program object.
func (pr *Program) Release(gl GL) {
	pr.ReleaseShaders(gl)
	pr.releaseProgram(gl)
}

func (pr *Program) releaseProgram(gl GL) {
	if pr.handle == 0 {
		return
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
}
