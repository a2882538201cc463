// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"

	"cogentcore.org/learngl/gpu"
)

// TriangleVertices are the three vertices of the triangle in
// normalized device coordinates, three floats (x, y, z) each.
var TriangleVertices = [9]float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

const coordsPerVertex = 3

// Triangle is the [Scene] that draws one hardcoded triangle with
// a minimal vertex and fragment shader.
type Triangle struct {

	// Sources loads the shader sources; nil uses the embedded ones.
	Sources *Sources

	// VertexFile and FragmentFile are the shader file names.
	VertexFile, FragmentFile string

	// Program is the linked shader program.
	Program *gpu.Program

	// VAO groups the vertex attribute state.
	VAO *gpu.VertexArray

	// VBO holds the vertex data.
	VBO *gpu.Buffer

	// Layout describes the position attribute at location 0.
	Layout gpu.Attribute

	// Result is the result of the last shader build.
	Result gpu.Result
}

// NewTriangle returns a new triangle scene with shaders loaded from sources.
func NewTriangle(sources *Sources) *Triangle {
	return &Triangle{
		Sources:      sources,
		VertexFile:   "triangle.vert",
		FragmentFile: "triangle.frag",
		Layout:       gpu.Attribute{Index: 0, Components: coordsPerVertex, Type: gpu.Float32},
	}
}

func (tr *Triangle) Name() string {
	return "triangle"
}

// Setup uploads the vertex data, describes its layout, builds the
// shader program, and leaves the program active and the vertex array
// bound, since they are the only ones ever drawn with.
func (tr *Triangle) Setup(gl gpu.GL) error {
	tr.VAO = gpu.NewVertexArray(gl)
	tr.VBO = gpu.NewBuffer(gl, gpu.ArrayBuffer, gpu.StaticDraw)
	tr.VBO.Upload(gl, TriangleVertices[:])
	tr.Layout.Apply(gl)

	pr, err := tr.newProgram()
	if err != nil {
		return err
	}
	tr.Result = pr.Build(gl)
	tr.Program = pr
	tr.Program.Use(gl)
	tr.VAO.Bind(gl)
	return nil
}

func (tr *Triangle) newProgram() (*gpu.Program, error) {
	vs, err := tr.Sources.Load(tr.VertexFile)
	if err != nil {
		return nil, err
	}
	fs, err := tr.Sources.Load(tr.FragmentFile)
	if err != nil {
		return nil, err
	}
	pr := gpu.NewProgram(tr.Name())
	if _, err := pr.AddShader(gpu.VertexShader, tr.VertexFile, vs); err != nil {
		return nil, err
	}
	if _, err := pr.AddShader(gpu.FragmentShader, tr.FragmentFile, fs); err != nil {
		return nil, err
	}
	return pr, nil
}

// Draw draws the uploaded vertices, three for the one triangle.
func (tr *Triangle) Draw(gl gpu.GL) {
	gl.DrawArrays(gpu.Triangles, 0, int32(tr.VBO.Len()/coordsPerVertex))
}

// Reload rebuilds the program from the current sources. The new
// program replaces the old one only when it links; otherwise the
// old one stays in use.
func (tr *Triangle) Reload(gl gpu.GL) {
	pr, err := tr.newProgram()
	if err != nil {
		slog.Error("render: reloading triangle shaders", "err", err)
		return
	}
	tr.Result = pr.Build(gl)
	if !tr.Result.OK {
		slog.Warn("render: keeping previous triangle shaders")
		pr.Release(gl)
		if tr.Program != nil {
			tr.Program.Use(gl)
		}
		return
	}
	if tr.Program != nil {
		tr.Program.Release(gl)
	}
	tr.Program = pr
	tr.Program.Use(gl)
}

// Release deletes the program, the vertex buffer and the vertex array.
func (tr *Triangle) Release(gl gpu.GL) {
	if tr.Program != nil {
		tr.Program.Release(gl)
	}
	if tr.VBO != nil {
		tr.VBO.Release(gl)
	}
	if tr.VAO != nil {
		tr.VAO.Release(gl)
	}
}
