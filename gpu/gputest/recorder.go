// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a recording [gpu.GL] for tests
// that need no graphics driver or window.
package gputest

import (
	"fmt"

	"cogentcore.org/learngl/gpu"
)

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Attrib is the recorded layout of one vertex attribute.
type Attrib struct {
	Size       int32
	Type       gpu.Types
	Normalized bool
	Stride     int32
	Offset     int
	Enabled    bool
}

// Shader is a recorded shader object.
type Shader struct {
	Type     gpu.ShaderTypes
	Source   string
	Compiled bool
	Log      string
}

// Program is a recorded program object.
type Program struct {
	Attached []uint32
	Linked   bool
	Log      string
}

// Recorder is a [gpu.GL] that records every call and keeps
// just enough state to check what a real context would do.
// Shader sources are checked with [CheckGLSL].
type Recorder struct {

	// Calls are all the calls made, in order.
	Calls []Call

	// CurrentViewport is the current viewport rectangle (x, y, width, height).
	CurrentViewport [4]int32

	// CurrentClearColor is the current clear color.
	CurrentClearColor [4]float32

	// BoundVertexArray is the currently bound vertex array.
	BoundVertexArray uint32

	// BoundBuffer is the buffer bound to each target.
	BoundBuffer map[gpu.BufferTargets]uint32

	// CurrentProgram is the program in use.
	CurrentProgram uint32

	// Buffers is the data uploaded to each buffer.
	Buffers map[uint32][]float32

	// BufferUsage is the usage hint given for each buffer.
	BufferUsage map[uint32]gpu.BufferUsages

	// Attribs are the attribute layouts of each vertex array.
	Attribs map[uint32]map[uint32]Attrib

	// Strings are returned by GetString.
	Strings map[gpu.Strings]string

	vertexArrays map[uint32]bool
	shaders      map[uint32]*Shader
	programs     map[uint32]*Program
	next         uint32
}

var _ gpu.GL = (*Recorder)(nil)

// NewRecorder returns a new empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		BoundBuffer:  map[gpu.BufferTargets]uint32{},
		Buffers:      map[uint32][]float32{},
		BufferUsage:  map[uint32]gpu.BufferUsages{},
		Attribs:      map[uint32]map[uint32]Attrib{},
		vertexArrays: map[uint32]bool{},
		shaders:      map[uint32]*Shader{},
		programs:     map[uint32]*Program{},
		Strings: map[gpu.Strings]string{
			gpu.Vendor:                 "gputest",
			gpu.Renderer:               "Recorder",
			gpu.Version:                "3.3.0 Core Profile",
			gpu.ShadingLanguageVersion: "3.30",
		},
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) newHandle() uint32 {
	r.next++
	return r.next
}

// Names returns the names of all recorded calls, in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times the named call was made.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls with the given name.
func (r *Recorder) Filter(name string) []Call {
	var cs []Call
	for _, c := range r.Calls {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// Reset clears the recorded calls but keeps all state.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Live returns the number of vertex arrays, buffers, shaders,
// and programs that have been created and not deleted.
func (r *Recorder) Live() int {
	return len(r.vertexArrays) + len(r.Buffers) + len(r.shaders) + len(r.programs)
}

// ShaderObject returns the recorded shader, nil if it does not exist.
func (r *Recorder) ShaderObject(handle uint32) *Shader {
	return r.shaders[handle]
}

// ProgramObject returns the recorded program, nil if it does not exist.
func (r *Recorder) ProgramObject(handle uint32) *Program {
	return r.programs[handle]
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", x, y, width, height)
	r.CurrentViewport = [4]int32{x, y, width, height}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
	r.CurrentClearColor = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear(mask gpu.ClearBits) {
	r.record("Clear", mask)
}

func (r *Recorder) GenVertexArray() uint32 {
	h := r.newHandle()
	r.record("GenVertexArray", h)
	r.vertexArrays[h] = true
	return h
}

func (r *Recorder) BindVertexArray(vao uint32) {
	r.record("BindVertexArray", vao)
	r.BoundVertexArray = vao
}

func (r *Recorder) DeleteVertexArray(vao uint32) {
	r.record("DeleteVertexArray", vao)
	delete(r.vertexArrays, vao)
	delete(r.Attribs, vao)
	if r.BoundVertexArray == vao {
		r.BoundVertexArray = 0
	}
}

func (r *Recorder) GenBuffer() uint32 {
	h := r.newHandle()
	r.record("GenBuffer", h)
	r.Buffers[h] = nil
	return h
}

func (r *Recorder) BindBuffer(target gpu.BufferTargets, buf uint32) {
	r.record("BindBuffer", target, buf)
	r.BoundBuffer[target] = buf
}

func (r *Recorder) BufferData(target gpu.BufferTargets, data []float32, usage gpu.BufferUsages) {
	r.record("BufferData", target, len(data), usage)
	buf := r.BoundBuffer[target]
	if buf == 0 {
		return
	}
	r.Buffers[buf] = append([]float32(nil), data...)
	r.BufferUsage[buf] = usage
}

func (r *Recorder) DeleteBuffer(buf uint32) {
	r.record("DeleteBuffer", buf)
	delete(r.Buffers, buf)
	delete(r.BufferUsage, buf)
	for t, b := range r.BoundBuffer {
		if b == buf {
			r.BoundBuffer[t] = 0
		}
	}
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, typ gpu.Types, normalized bool, stride int32, offset int) {
	r.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
	as := r.vaoAttribs()
	at := as[index]
	at.Size, at.Type, at.Normalized, at.Stride, at.Offset = size, typ, normalized, stride, offset
	as[index] = at
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
	as := r.vaoAttribs()
	at := as[index]
	at.Enabled = true
	as[index] = at
}

func (r *Recorder) vaoAttribs() map[uint32]Attrib {
	as := r.Attribs[r.BoundVertexArray]
	if as == nil {
		as = map[uint32]Attrib{}
		r.Attribs[r.BoundVertexArray] = as
	}
	return as
}

func (r *Recorder) CreateShader(typ gpu.ShaderTypes) uint32 {
	h := r.newHandle()
	r.record("CreateShader", typ, h)
	r.shaders[h] = &Shader{Type: typ}
	return h
}

func (r *Recorder) ShaderSource(shader uint32, src string) {
	r.record("ShaderSource", shader)
	if sh := r.shaders[shader]; sh != nil {
		sh.Source = src
	}
}

func (r *Recorder) CompileShader(shader uint32) {
	r.record("CompileShader", shader)
	sh := r.shaders[shader]
	if sh == nil {
		return
	}
	sh.Log = CheckGLSL(sh.Source)
	sh.Compiled = sh.Log == ""
}

func (r *Recorder) ShaderCompiled(shader uint32) bool {
	sh := r.shaders[shader]
	return sh != nil && sh.Compiled
}

func (r *Recorder) ShaderInfoLog(shader uint32) string {
	if sh := r.shaders[shader]; sh != nil {
		return sh.Log
	}
	return ""
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.record("DeleteShader", shader)
	delete(r.shaders, shader)
}

func (r *Recorder) CreateProgram() uint32 {
	h := r.newHandle()
	r.record("CreateProgram", h)
	r.programs[h] = &Program{}
	return h
}

func (r *Recorder) AttachShader(program, shader uint32) {
	r.record("AttachShader", program, shader)
	if pr := r.programs[program]; pr != nil {
		pr.Attached = append(pr.Attached, shader)
	}
}

// LinkProgram links successfully when exactly one compiled vertex
// shader and one compiled fragment shader are attached.
func (r *Recorder) LinkProgram(program uint32) {
	r.record("LinkProgram", program)
	pr := r.programs[program]
	if pr == nil {
		return
	}
	stages := map[gpu.ShaderTypes]int{}
	pr.Log = ""
	for _, h := range pr.Attached {
		sh := r.shaders[h]
		if sh == nil || !sh.Compiled {
			pr.Log = fmt.Sprintf("error: shader %d attached to program %d is not compiled", h, program)
			break
		}
		stages[sh.Type]++
	}
	if pr.Log == "" {
		for _, st := range []gpu.ShaderTypes{gpu.VertexShader, gpu.FragmentShader} {
			if stages[st] != 1 {
				pr.Log = fmt.Sprintf("error: program %d needs exactly one %v, has %d", program, st, stages[st])
				break
			}
		}
	}
	pr.Linked = pr.Log == ""
}

func (r *Recorder) ProgramLinked(program uint32) bool {
	pr := r.programs[program]
	return pr != nil && pr.Linked
}

func (r *Recorder) ProgramInfoLog(program uint32) string {
	if pr := r.programs[program]; pr != nil {
		return pr.Log
	}
	return ""
}

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram", program)
	r.CurrentProgram = program
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram", program)
	delete(r.programs, program)
	if r.CurrentProgram == program {
		r.CurrentProgram = 0
	}
}

func (r *Recorder) DrawArrays(mode gpu.Primitives, first, count int32) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) GetString(name gpu.Strings) string {
	return r.Strings[name]
}
