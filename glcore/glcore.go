/*
Package glcore describes the small slice of OpenGL 3.3 core that the programs
in this repository use.  The shape of Context follows the gl.Context interface
from golang.org/x/mobile/gl so that drawing code can be written against an
interface and driven either by a real context (see package gl33) or by the
recording context in package glcoretest.

Object handles are small structs wrapping the driver's name, as in
golang.org/x/mobile/gl, so a zero value means "no object" and can be passed to
the Bind functions to unbind.
*/
package glcore

// Enum is a GLenum or GLbitfield value.
type Enum uint32

// Attrib identifies the location of a vertex attribute.
type Attrib struct {
	Value uint
}

// Shader is a compiled shader stage.
type Shader struct {
	Value uint32
}

// Program is a linked shader program.
type Program struct {
	Value uint32
}

// Buffer is a GPU buffer object.
type Buffer struct {
	Value uint32
}

// VertexArray is a vertex array object.
type VertexArray struct {
	Value uint32
}

// Values match the OpenGL 3.3 core headers.
const (
	FALSE Enum = 0
	TRUE  Enum = 1

	TRIANGLES Enum = 0x0004

	FLOAT Enum = 0x1406

	COLOR_BUFFER_BIT Enum = 0x00004000

	ARRAY_BUFFER Enum = 0x8892
	STATIC_DRAW  Enum = 0x88E4

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
)

// Context is an OpenGL context.  All methods must be called from the thread
// the context is current on.
type Context interface {
	CreateShader(ty Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	// GetShaderi returns a parameter of s, e.g. COMPILE_STATUS.
	GetShaderi(s Shader, pname Enum) int
	// GetShaderInfoLog reads at most bufSize-1 bytes of the info log of s.
	GetShaderInfoLog(s Shader, bufSize int) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	// GetProgrami returns a parameter of p, e.g. LINK_STATUS.
	GetProgrami(p Program, pname Enum) int
	// GetProgramInfoLog reads at most bufSize-1 bytes of the info log of p.
	GetProgramInfoLog(p Program, bufSize int) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, src []byte, usage Enum)
	DeleteBuffer(b Buffer)

	CreateVertexArray() VertexArray
	BindVertexArray(va VertexArray)
	DeleteVertexArray(va VertexArray)

	// VertexAttribPointer describes attribute dst of the bound vertex array
	// as reading from the buffer bound to ARRAY_BUFFER.  Stride and offset
	// are in bytes.
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)
	EnableVertexAttribArray(a Attrib)

	Viewport(x, y, width, height int)
	ClearColor(red, green, blue, alpha float32)
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int)
}
