package main

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"

	"github.com/nkhanhtrn/opengl-projects/glcore"
)

var upperTriangleData = f32.Bytes(binary.LittleEndian,
	0.0, 0.5, 0.0, // top
	0.5, 0.0, 0.0, // right
	-0.5, 0.0, 0.0, // left
)

var lowerTriangleData = f32.Bytes(binary.LittleEndian,
	0.5, 0.0, 0.0, // right
	-0.5, 0.0, 0.0, // left
	0.0, -0.5, 0.0, // bottom
)

const (
	coordsPerVertex = 3
	floatSize       = 4
	vertexStride    = coordsPerVertex * floatSize
)

// position is bound with layout (location = 0) in vertexShader.
var position = glcore.Attrib{Value: 0}

// mesh is a vertex buffer together with the vertex array describing its
// layout.
type mesh struct {
	vao   glcore.VertexArray
	vbo   glcore.Buffer
	count int
}

// uploadMesh copies data into a new buffer and records the position
// attribute layout in a new vertex array.  Both bindings are reset before
// returning.
func uploadMesh(glctx glcore.Context, data []byte) mesh {
	m := mesh{
		vao:   glctx.CreateVertexArray(),
		vbo:   glctx.CreateBuffer(),
		count: len(data) / vertexStride,
	}

	glctx.BindVertexArray(m.vao)
	glctx.BindBuffer(glcore.ARRAY_BUFFER, m.vbo)
	glctx.BufferData(glcore.ARRAY_BUFFER, data, glcore.STATIC_DRAW)
	glctx.VertexAttribPointer(position, coordsPerVertex, glcore.FLOAT, false, vertexStride, 0)
	glctx.EnableVertexAttribArray(position)

	glctx.BindBuffer(glcore.ARRAY_BUFFER, glcore.Buffer{})
	glctx.BindVertexArray(glcore.VertexArray{})
	return m
}

func (m mesh) release(glctx glcore.Context) {
	glctx.DeleteVertexArray(m.vao)
	glctx.DeleteBuffer(m.vbo)
}
