// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glcore implements [gpu.GL] on the OpenGL 3.3 core
// profile bindings of github.com/go-gl/gl.
package glcore

import (
	"fmt"
	"strings"

	"cogentcore.org/learngl/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Context is a [gpu.GL] for the OpenGL context that was
// current when [Init] was called.
type Context struct{}

var _ gpu.GL = (*Context)(nil)

// Init resolves the OpenGL function pointers for the current context,
// which must have been made current on this thread beforehand.
func Init() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glcore: failed to load OpenGL functions: %w", err)
	}
	return &Context{}, nil
}

var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}

var glTypes = map[gpu.Types]uint32{
	gpu.Float32: gl.FLOAT,
	gpu.Int32:   gl.INT,
	gpu.Uint32:  gl.UNSIGNED_INT,
}

var glPrimitives = map[gpu.Primitives]uint32{
	gpu.Points:    gl.POINTS,
	gpu.Lines:     gl.LINES,
	gpu.Triangles: gl.TRIANGLES,
}

var glTargets = map[gpu.BufferTargets]uint32{
	gpu.ArrayBuffer:        gl.ARRAY_BUFFER,
	gpu.ElementArrayBuffer: gl.ELEMENT_ARRAY_BUFFER,
}

var glUsages = map[gpu.BufferUsages]uint32{
	gpu.StreamDraw:  gl.STREAM_DRAW,
	gpu.StaticDraw:  gl.STATIC_DRAW,
	gpu.DynamicDraw: gl.DYNAMIC_DRAW,
}

var glStrings = map[gpu.Strings]uint32{
	gpu.Vendor:                 gl.VENDOR,
	gpu.Renderer:               gl.RENDERER,
	gpu.Version:                gl.VERSION,
	gpu.ShadingLanguageVersion: gl.SHADING_LANGUAGE_VERSION,
}

func clearMask(mask gpu.ClearBits) uint32 {
	var m uint32
	if mask&gpu.ColorBufferBit != 0 {
		m |= gl.COLOR_BUFFER_BIT
	}
	if mask&gpu.DepthBufferBit != 0 {
		m |= gl.DEPTH_BUFFER_BIT
	}
	if mask&gpu.StencilBufferBit != 0 {
		m |= gl.STENCIL_BUFFER_BIT
	}
	return m
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear(mask gpu.ClearBits) {
	gl.Clear(clearMask(mask))
}

func (c *Context) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (c *Context) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (c *Context) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (c *Context) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (c *Context) BindBuffer(target gpu.BufferTargets, buf uint32) {
	gl.BindBuffer(glTargets[target], buf)
}

func (c *Context) BufferData(target gpu.BufferTargets, data []float32, usage gpu.BufferUsages) {
	if len(data) == 0 {
		gl.BufferData(glTargets[target], 0, nil, glUsages[usage])
		return
	}
	gl.BufferData(glTargets[target], len(data)*gpu.Float32.Bytes(), gl.Ptr(data), glUsages[usage])
}

func (c *Context) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, typ gpu.Types, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, glTypes[typ], normalized, stride, gl.PtrOffset(offset))
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *Context) CreateShader(typ gpu.ShaderTypes) uint32 {
	return gl.CreateShader(glShaders[typ])
}

// ShaderSource sets the source of the shader. The source does not need
// to be null terminated; the terminator is added when missing.
func (c *Context) ShaderSource(shader uint32, src string) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	csources, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (c *Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (c *Context) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))
	return gl.GoStr(gl.Str(msg))
}

func (c *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (c *Context) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(msg))
	return gl.GoStr(gl.Str(msg))
}

func (c *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *Context) DrawArrays(mode gpu.Primitives, first, count int32) {
	gl.DrawArrays(glPrimitives[mode], first, count)
}

func (c *Context) GetString(name gpu.Strings) string {
	return gl.GoStr(gl.GetString(glStrings[name]))
}
