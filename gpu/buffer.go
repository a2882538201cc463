// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Attribute describes how one vertex shader input is read
// from the currently bound array buffer.
type Attribute struct {

	// Index is the attribute location, as in layout (location = 0).
	Index uint32

	// Components is the number of components per vertex (1 to 4).
	Components int32

	// Type is the type of each component.
	Type Types

	// Normalized maps integer values into [-1, 1] or [0, 1].
	Normalized bool

	// Stride is the byte offset between consecutive vertices;
	// 0 means tightly packed, which [Attribute.Apply] computes.
	Stride int32

	// Offset is the byte offset of the first component in the buffer.
	Offset int
}

// ByteStride returns the stride in bytes, computing the
// tightly packed stride when Stride is 0.
func (at *Attribute) ByteStride() int32 {
	if at.Stride != 0 {
		return at.Stride
	}
	return at.Components * int32(at.Type.Bytes())
}

// Apply describes the attribute layout to the currently
// bound vertex array and enables it.
func (at *Attribute) Apply(gl GL) {
	gl.VertexAttribPointer(at.Index, at.Components, at.Type, at.Normalized, at.ByteStride(), at.Offset)
	gl.EnableVertexAttribArray(at.Index)
}

// VertexArray is a vertex array object, which groups
// the vertex attribute state for drawing.
type VertexArray struct {
	handle uint32
}

// NewVertexArray allocates and binds a new vertex array.
func NewVertexArray(gl GL) *VertexArray {
	va := &VertexArray{handle: gl.GenVertexArray()}
	va.Bind(gl)
	return va
}

// Handle returns the GPU handle, 0 after release.
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// Bind makes this the current vertex array.
func (va *VertexArray) Bind(gl GL) {
	gl.BindVertexArray(va.handle)
}

// Release deletes the vertex array object.
func (va *VertexArray) Release(gl GL) {
	if va.handle == 0 {
		return
	}
	gl.DeleteVertexArray(va.handle)
	va.handle = 0
}

// Buffer is a buffer object holding float vertex data.
type Buffer struct {

	// Target is the binding point of the buffer.
	Target BufferTargets

	// Usage is the usage hint given when uploading data.
	Usage BufferUsages

	handle uint32
	n      int
}

// NewBuffer allocates and binds a new buffer for the given target and usage.
func NewBuffer(gl GL, target BufferTargets, usage BufferUsages) *Buffer {
	bf := &Buffer{Target: target, Usage: usage, handle: gl.GenBuffer()}
	bf.Bind(gl)
	return bf
}

// Handle returns the GPU handle, 0 after release.
func (bf *Buffer) Handle() uint32 {
	return bf.handle
}

// Len returns the number of values last uploaded.
func (bf *Buffer) Len() int {
	return bf.n
}

// Bind binds the buffer to its target.
func (bf *Buffer) Bind(gl GL) {
	gl.BindBuffer(bf.Target, bf.handle)
}

// Upload copies the data into the buffer, which must be bound.
func (bf *Buffer) Upload(gl GL, data []float32) {
	gl.BufferData(bf.Target, data, bf.Usage)
	bf.n = len(data)
}

// Release deletes the buffer object.
func (bf *Buffer) Release(gl GL) {
	if bf.handle == 0 {
		return
	}
	gl.DeleteBuffer(bf.handle)
	bf.handle = 0
}
