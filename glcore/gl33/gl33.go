// Package gl33 implements glcore.Context on top of the OpenGL 3.3 core
// bindings from github.com/go-gl/gl.
package gl33

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/nkhanhtrn/opengl-projects/glcore"
)

// Init loads the OpenGL function pointers for the context that is current on
// the calling thread.  It must be called after the window's context has been
// made current and before any other function in this package.
func Init() error {
	err := gl.Init()
	if err != nil {
		return fmt.Errorf("gl.Init failed: %w", err)
	}
	return nil
}

// Version returns the GL_VERSION string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Context is a glcore.Context that issues calls to the current OpenGL
// context.  The zero value is ready to use once Init has succeeded.
type Context struct{}

var _ glcore.Context = Context{}

func (Context) CreateShader(ty glcore.Enum) glcore.Shader {
	return glcore.Shader{Value: gl.CreateShader(uint32(ty))}
}

func (Context) ShaderSource(s glcore.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(s.Value, 1, csrc, nil)
}

func (Context) CompileShader(s glcore.Shader) {
	gl.CompileShader(s.Value)
}

func (Context) GetShaderi(s glcore.Shader, pname glcore.Enum) int {
	var params int32
	gl.GetShaderiv(s.Value, uint32(pname), &params)
	return int(params)
}

func (Context) GetShaderInfoLog(s glcore.Shader, bufSize int) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]byte, bufSize)
	var n int32
	gl.GetShaderInfoLog(s.Value, int32(bufSize), &n, &buf[0])
	return string(buf[:n])
}

func (Context) DeleteShader(s glcore.Shader) {
	gl.DeleteShader(s.Value)
}

func (Context) CreateProgram() glcore.Program {
	return glcore.Program{Value: gl.CreateProgram()}
}

func (Context) AttachShader(p glcore.Program, s glcore.Shader) {
	gl.AttachShader(p.Value, s.Value)
}

func (Context) LinkProgram(p glcore.Program) {
	gl.LinkProgram(p.Value)
}

func (Context) GetProgrami(p glcore.Program, pname glcore.Enum) int {
	var params int32
	gl.GetProgramiv(p.Value, uint32(pname), &params)
	return int(params)
}

func (Context) GetProgramInfoLog(p glcore.Program, bufSize int) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]byte, bufSize)
	var n int32
	gl.GetProgramInfoLog(p.Value, int32(bufSize), &n, &buf[0])
	return string(buf[:n])
}

func (Context) UseProgram(p glcore.Program) {
	gl.UseProgram(p.Value)
}

func (Context) DeleteProgram(p glcore.Program) {
	gl.DeleteProgram(p.Value)
}

func (Context) CreateBuffer() glcore.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return glcore.Buffer{Value: b}
}

func (Context) BindBuffer(target glcore.Enum, b glcore.Buffer) {
	gl.BindBuffer(uint32(target), b.Value)
}

func (Context) BufferData(target glcore.Enum, src []byte, usage glcore.Enum) {
	if len(src) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(src), gl.Ptr(src), uint32(usage))
}

func (Context) DeleteBuffer(b glcore.Buffer) {
	gl.DeleteBuffers(1, &b.Value)
}

func (Context) CreateVertexArray() glcore.VertexArray {
	var va uint32
	gl.GenVertexArrays(1, &va)
	return glcore.VertexArray{Value: va}
}

func (Context) BindVertexArray(va glcore.VertexArray) {
	gl.BindVertexArray(va.Value)
}

func (Context) DeleteVertexArray(va glcore.VertexArray) {
	gl.DeleteVertexArrays(1, &va.Value)
}

func (Context) VertexAttribPointer(dst glcore.Attrib, size int, ty glcore.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(dst.Value), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (Context) EnableVertexAttribArray(a glcore.Attrib) {
	gl.EnableVertexAttribArray(uint32(a.Value))
}

func (Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (Context) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (Context) Clear(mask glcore.Enum) {
	gl.Clear(uint32(mask))
}

func (Context) DrawArrays(mode glcore.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}
