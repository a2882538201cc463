// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// See: https://www.khronos.org/opengl/wiki/Data_Type_(GLSL)

// Types is a list of supported GPU data types for vertex attributes.
type Types int32

const (
	UndefinedType Types = iota
	Float32
	Int32
	Uint32
)

// Bytes returns the number of bytes of one element of the type.
func (tp Types) Bytes() int {
	switch tp {
	case Float32, Int32, Uint32:
		return 4
	}
	return 0
}

func (tp Types) String() string {
	switch tp {
	case Float32:
		return "Float32"
	case Int32:
		return "Int32"
	case Uint32:
		return "Uint32"
	}
	return "UndefinedType"
}

// ShaderTypes is a list of the GPU shader stages used here.
type ShaderTypes int32

const (
	UnknownShader ShaderTypes = iota

	// VertexShader runs once per vertex and sets its position.
	VertexShader

	// FragmentShader runs once per covered pixel and sets its color.
	FragmentShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "VertexShader"
	case FragmentShader:
		return "FragmentShader"
	}
	return fmt.Sprintf("ShaderTypes(%d)", int32(st))
}

// Primitives are the kinds of geometric primitives a draw call assembles.
type Primitives int32

const (
	Points Primitives = iota
	Lines
	Triangles
)

// BufferTargets are the binding points for buffer objects.
type BufferTargets int32

const (
	ArrayBuffer BufferTargets = iota
	ElementArrayBuffer
)

// BufferUsages are hints for how buffer data will be used.
type BufferUsages int32

const (
	// StreamDraw data is set only once and used by the GPU at most a few times.
	StreamDraw BufferUsages = iota

	// StaticDraw data is set only once and used many times.
	StaticDraw

	// DynamicDraw data is changed a lot and used many times.
	DynamicDraw
)

// ClearBits select the buffers cleared by [GL.Clear].
type ClearBits uint32

const (
	ColorBufferBit ClearBits = 1 << iota
	DepthBufferBit
	StencilBufferBit
)

// Strings name the informational strings of [GL.GetString].
type Strings int32

const (
	Vendor Strings = iota
	Renderer
	Version
	ShadingLanguageVersion
)
