package glcoretest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkhanhtrn/opengl-projects/glcore"
)

func TestVertexArrayCapturesBoundBuffer(t *testing.T) {
	c := New()
	va := c.CreateVertexArray()
	b := c.CreateBuffer()

	c.BindVertexArray(va)
	c.BindBuffer(glcore.ARRAY_BUFFER, b)
	c.BufferData(glcore.ARRAY_BUFFER, []byte{1, 2, 3, 4}, glcore.STATIC_DRAW)
	c.VertexAttribPointer(glcore.Attrib{Value: 0}, 3, glcore.FLOAT, false, 12, 0)
	c.EnableVertexAttribArray(glcore.Attrib{Value: 0})
	c.BindBuffer(glcore.ARRAY_BUFFER, glcore.Buffer{})

	attr := c.VertexArrays[va.Value].Attribs[0]
	require.NotNil(t, attr)
	assert.Equal(t, b, attr.Buffer)
	assert.True(t, attr.Enabled)
	assert.Equal(t, []byte{1, 2, 3, 4}, c.Buffers[b.Value].Data)
	assert.Equal(t, glcore.STATIC_DRAW, c.Buffers[b.Value].Usage)
}

func TestDrawRecordsBindings(t *testing.T) {
	c := New()
	p := c.CreateProgram()
	va := c.CreateVertexArray()

	c.UseProgram(p)
	c.BindVertexArray(va)
	c.DrawArrays(glcore.TRIANGLES, 0, 3)

	require.Len(t, c.Draws, 1)
	assert.Equal(t, Draw{Program: p, VertexArray: va, Mode: glcore.TRIANGLES, First: 0, Count: 3}, c.Draws[0])
}

func TestLeakedAndDoubleDelete(t *testing.T) {
	c := New()
	p := c.CreateProgram()
	b := c.CreateBuffer()
	va := c.CreateVertexArray()

	assert.Len(t, c.Leaked(), 3)

	c.DeleteProgram(p)
	c.DeleteBuffer(b)
	c.DeleteVertexArray(va)
	assert.Empty(t, c.Leaked())
	assert.Empty(t, c.DeletedMoreThanOnce())

	c.DeleteBuffer(b)
	assert.Equal(t, []string{"buffer 2"}, c.DeletedMoreThanOnce())
}

func TestLinkRequiresCompiledStages(t *testing.T) {
	c := New()
	c.CompileError = func(ty glcore.Enum, _ string) string {
		if ty == glcore.FRAGMENT_SHADER {
			return "bad fragment"
		}
		return ""
	}
	vs := c.CreateShader(glcore.VERTEX_SHADER)
	c.CompileShader(vs)
	fs := c.CreateShader(glcore.FRAGMENT_SHADER)
	c.CompileShader(fs)

	assert.Equal(t, int(glcore.TRUE), c.GetShaderi(vs, glcore.COMPILE_STATUS))
	assert.Equal(t, int(glcore.FALSE), c.GetShaderi(fs, glcore.COMPILE_STATUS))
	assert.Equal(t, "bad", c.GetShaderInfoLog(fs, 4))

	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.LinkProgram(p)
	assert.Equal(t, int(glcore.FALSE), c.GetProgrami(p, glcore.LINK_STATUS))
	assert.Equal(t, "error: no fragment shader attached", c.GetProgramInfoLog(p, 512))

	c.AttachShader(p, fs)
	c.LinkProgram(p)
	assert.Equal(t, int(glcore.FALSE), c.GetProgrami(p, glcore.LINK_STATUS))
}
