// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides the OpenGL objects used by the examples
// (shaders, programs, vertex arrays and buffers) on top of the
// [GL] interface, which is implemented by package glcore for
// real contexts and by package gputest for tests.
package gpu

// GL is the subset of the OpenGL 3.3 core API used by the examples.
// All methods must be called on the thread where the context is current.
type GL interface {
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearBits)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(target BufferTargets, buf uint32)
	BufferData(target BufferTargets, data []float32, usage BufferUsages)
	DeleteBuffer(buf uint32)

	VertexAttribPointer(index uint32, size int32, typ Types, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	CreateShader(typ ShaderTypes) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	DrawArrays(mode Primitives, first, count int32)

	GetString(name Strings) string
}
