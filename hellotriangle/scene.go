package main

import (
	"log"

	"github.com/nkhanhtrn/opengl-projects/glcore"
	"github.com/nkhanhtrn/opengl-projects/glprog"
)

// layer is one triangle and the program used to shade it.
type layer struct {
	program glcore.Program
	mesh    mesh
}

// scene holds every GL object the program creates.  The objects live until
// release is called.
type scene struct {
	background [4]float32
	layers     []layer
	released   bool
}

// newScene compiles the shaders, links one program per fragment color and
// uploads both triangles.  Compile and link failures are logged and the
// possibly broken objects are used anyway.
func newScene(glctx glcore.Context, background [4]float32) *scene {
	vs := compile(glctx, glcore.VERTEX_SHADER, vertexShader)
	orange := compile(glctx, glcore.FRAGMENT_SHADER, orangeFragmentShader)
	yellow := compile(glctx, glcore.FRAGMENT_SHADER, yellowFragmentShader)

	orangeProgram := link(glctx, vs, orange)
	yellowProgram := link(glctx, vs, yellow)

	// the programs keep their own reference to the compiled stages
	glctx.DeleteShader(vs)
	glctx.DeleteShader(orange)
	glctx.DeleteShader(yellow)

	return &scene{
		background: background,
		layers: []layer{
			{program: orangeProgram, mesh: uploadMesh(glctx, upperTriangleData)},
			{program: yellowProgram, mesh: uploadMesh(glctx, lowerTriangleData)},
		},
	}
}

func compile(glctx glcore.Context, ty glcore.Enum, src string) glcore.Shader {
	s, err := glprog.CompileShader(glctx, ty, src)
	if err != nil {
		log.Printf("error creating GL shader: %v", err)
	}
	return s
}

func link(glctx glcore.Context, shaders ...glcore.Shader) glcore.Program {
	p, err := glprog.LinkProgram(glctx, shaders...)
	if err != nil {
		log.Printf("error linking GL program: %v", err)
	}
	return p
}

// draw renders a single frame.
func (s *scene) draw(glctx glcore.Context) {
	glctx.ClearColor(s.background[0], s.background[1], s.background[2], s.background[3])
	glctx.Clear(glcore.COLOR_BUFFER_BIT)

	for _, l := range s.layers {
		glctx.UseProgram(l.program)
		glctx.BindVertexArray(l.mesh.vao)
		glctx.DrawArrays(glcore.TRIANGLES, 0, l.mesh.count)
	}

	glctx.BindVertexArray(glcore.VertexArray{})
}

// release deletes the vertex arrays, buffers and programs.  Calls after the
// first have no effect.
func (s *scene) release(glctx glcore.Context) {
	if s.released {
		return
	}
	s.released = true
	for _, l := range s.layers {
		l.mesh.release(glctx)
	}
	for _, l := range s.layers {
		glctx.DeleteProgram(l.program)
	}
}
