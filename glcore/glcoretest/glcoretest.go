/*
Package glcoretest provides an in-memory glcore.Context for tests.  The
Context records the objects that are created and deleted, the state that is
bound when each draw call is issued, and the current viewport.  No rendering
takes place.

Shaders compile successfully unless CompileError returns a non-empty log for
their source.  Programs link when every attached shader compiled and both a
vertex and a fragment stage are attached.
*/
package glcoretest

import (
	"fmt"
	"sort"

	"github.com/nkhanhtrn/opengl-projects/glcore"
)

// Draw is a recorded DrawArrays call along with the bindings in effect.
type Draw struct {
	Program     glcore.Program
	VertexArray glcore.VertexArray
	Mode        glcore.Enum
	First       int
	Count       int
}

// AttribPointer is the recorded layout of one vertex attribute.
type AttribPointer struct {
	Buffer     glcore.Buffer
	Size       int
	Type       glcore.Enum
	Normalized bool
	Stride     int
	Offset     int
	Enabled    bool
}

// ShaderState is the recorded state of a shader object.
type ShaderState struct {
	Type     glcore.Enum
	Source   string
	Compiled bool
	Log      string
	Deleted  int
}

// ProgramState is the recorded state of a program object.
type ProgramState struct {
	Attached []glcore.Shader
	Linked   bool
	Log      string
	Deleted  int
}

// BufferState is the recorded state of a buffer object.
type BufferState struct {
	Data    []byte
	Usage   glcore.Enum
	Deleted int
}

// VertexArrayState is the recorded state of a vertex array object.
type VertexArrayState struct {
	Attribs map[uint]*AttribPointer
	Deleted int
}

// Context is a recording glcore.Context.  The zero value is not usable, call
// New.
type Context struct {
	// CompileError, if not nil, is called when a shader is compiled.  A
	// non-empty return value fails the compilation and becomes the info log.
	CompileError func(ty glcore.Enum, src string) string

	Shaders      map[uint32]*ShaderState
	Programs     map[uint32]*ProgramState
	Buffers      map[uint32]*BufferState
	VertexArrays map[uint32]*VertexArrayState

	ArrayBuffer      glcore.Buffer
	BoundVertexArray glcore.VertexArray
	CurrentProgram   glcore.Program

	ViewportRect [4]int
	ClearRGBA    [4]float32
	Clears       []glcore.Enum
	Draws        []Draw

	next uint32
}

var _ glcore.Context = (*Context)(nil)

// New returns an empty Context.
func New() *Context {
	return &Context{
		Shaders:      make(map[uint32]*ShaderState),
		Programs:     make(map[uint32]*ProgramState),
		Buffers:      make(map[uint32]*BufferState),
		VertexArrays: make(map[uint32]*VertexArrayState),
	}
}

func (c *Context) name() uint32 {
	c.next++
	return c.next
}

func (c *Context) shader(s glcore.Shader) *ShaderState {
	st, ok := c.Shaders[s.Value]
	if !ok {
		panic(fmt.Sprintf("glcoretest: unknown shader %d", s.Value))
	}
	return st
}

func (c *Context) program(p glcore.Program) *ProgramState {
	st, ok := c.Programs[p.Value]
	if !ok {
		panic(fmt.Sprintf("glcoretest: unknown program %d", p.Value))
	}
	return st
}

func (c *Context) CreateShader(ty glcore.Enum) glcore.Shader {
	s := glcore.Shader{Value: c.name()}
	c.Shaders[s.Value] = &ShaderState{Type: ty}
	return s
}

func (c *Context) ShaderSource(s glcore.Shader, src string) {
	c.shader(s).Source = src
}

func (c *Context) CompileShader(s glcore.Shader) {
	st := c.shader(s)
	st.Log = ""
	if c.CompileError != nil {
		st.Log = c.CompileError(st.Type, st.Source)
	}
	st.Compiled = st.Log == ""
}

func (c *Context) GetShaderi(s glcore.Shader, pname glcore.Enum) int {
	st := c.shader(s)
	switch pname {
	case glcore.COMPILE_STATUS:
		if st.Compiled {
			return int(glcore.TRUE)
		}
		return int(glcore.FALSE)
	}
	panic(fmt.Sprintf("glcoretest: unsupported shader parameter %#x", pname))
}

func (c *Context) GetShaderInfoLog(s glcore.Shader, bufSize int) string {
	return truncate(c.shader(s).Log, bufSize)
}

func (c *Context) DeleteShader(s glcore.Shader) {
	c.shader(s).Deleted++
}

func (c *Context) CreateProgram() glcore.Program {
	p := glcore.Program{Value: c.name()}
	c.Programs[p.Value] = &ProgramState{}
	return p
}

func (c *Context) AttachShader(p glcore.Program, s glcore.Shader) {
	c.shader(s)
	st := c.program(p)
	st.Attached = append(st.Attached, s)
}

func (c *Context) LinkProgram(p glcore.Program) {
	st := c.program(p)
	st.Linked = false
	st.Log = ""
	var vertex, fragment bool
	for _, s := range st.Attached {
		sh := c.shader(s)
		if !sh.Compiled {
			st.Log = fmt.Sprintf("error: shader %d was not compiled successfully", s.Value)
			return
		}
		switch sh.Type {
		case glcore.VERTEX_SHADER:
			vertex = true
		case glcore.FRAGMENT_SHADER:
			fragment = true
		}
	}
	switch {
	case !vertex:
		st.Log = "error: no vertex shader attached"
	case !fragment:
		st.Log = "error: no fragment shader attached"
	default:
		st.Linked = true
	}
}

func (c *Context) GetProgrami(p glcore.Program, pname glcore.Enum) int {
	st := c.program(p)
	switch pname {
	case glcore.LINK_STATUS:
		if st.Linked {
			return int(glcore.TRUE)
		}
		return int(glcore.FALSE)
	}
	panic(fmt.Sprintf("glcoretest: unsupported program parameter %#x", pname))
}

func (c *Context) GetProgramInfoLog(p glcore.Program, bufSize int) string {
	return truncate(c.program(p).Log, bufSize)
}

func (c *Context) UseProgram(p glcore.Program) {
	if p.Value != 0 {
		c.program(p)
	}
	c.CurrentProgram = p
}

func (c *Context) DeleteProgram(p glcore.Program) {
	c.program(p).Deleted++
	if c.CurrentProgram == p {
		c.CurrentProgram = glcore.Program{}
	}
}

func (c *Context) CreateBuffer() glcore.Buffer {
	b := glcore.Buffer{Value: c.name()}
	c.Buffers[b.Value] = &BufferState{}
	return b
}

func (c *Context) BindBuffer(target glcore.Enum, b glcore.Buffer) {
	if target != glcore.ARRAY_BUFFER {
		panic(fmt.Sprintf("glcoretest: unsupported buffer target %#x", target))
	}
	c.ArrayBuffer = b
}

func (c *Context) BufferData(target glcore.Enum, src []byte, usage glcore.Enum) {
	if target != glcore.ARRAY_BUFFER {
		panic(fmt.Sprintf("glcoretest: unsupported buffer target %#x", target))
	}
	st, ok := c.Buffers[c.ArrayBuffer.Value]
	if !ok {
		panic("glcoretest: BufferData with no buffer bound")
	}
	st.Data = append([]byte(nil), src...)
	st.Usage = usage
}

func (c *Context) DeleteBuffer(b glcore.Buffer) {
	st, ok := c.Buffers[b.Value]
	if !ok {
		panic(fmt.Sprintf("glcoretest: unknown buffer %d", b.Value))
	}
	st.Deleted++
	if c.ArrayBuffer == b {
		c.ArrayBuffer = glcore.Buffer{}
	}
}

func (c *Context) CreateVertexArray() glcore.VertexArray {
	va := glcore.VertexArray{Value: c.name()}
	c.VertexArrays[va.Value] = &VertexArrayState{Attribs: make(map[uint]*AttribPointer)}
	return va
}

func (c *Context) BindVertexArray(va glcore.VertexArray) {
	if va.Value != 0 {
		if _, ok := c.VertexArrays[va.Value]; !ok {
			panic(fmt.Sprintf("glcoretest: unknown vertex array %d", va.Value))
		}
	}
	c.BoundVertexArray = va
}

func (c *Context) DeleteVertexArray(va glcore.VertexArray) {
	st, ok := c.VertexArrays[va.Value]
	if !ok {
		panic(fmt.Sprintf("glcoretest: unknown vertex array %d", va.Value))
	}
	st.Deleted++
	if c.BoundVertexArray == va {
		c.BoundVertexArray = glcore.VertexArray{}
	}
}

func (c *Context) boundVertexArray() *VertexArrayState {
	st, ok := c.VertexArrays[c.BoundVertexArray.Value]
	if !ok {
		panic("glcoretest: no vertex array bound")
	}
	return st
}

func (c *Context) VertexAttribPointer(dst glcore.Attrib, size int, ty glcore.Enum, normalized bool, stride, offset int) {
	va := c.boundVertexArray()
	a, ok := va.Attribs[dst.Value]
	if !ok {
		a = &AttribPointer{}
		va.Attribs[dst.Value] = a
	}
	a.Buffer = c.ArrayBuffer
	a.Size = size
	a.Type = ty
	a.Normalized = normalized
	a.Stride = stride
	a.Offset = offset
}

func (c *Context) EnableVertexAttribArray(attr glcore.Attrib) {
	va := c.boundVertexArray()
	a, ok := va.Attribs[attr.Value]
	if !ok {
		a = &AttribPointer{}
		va.Attribs[attr.Value] = a
	}
	a.Enabled = true
}

func (c *Context) Viewport(x, y, width, height int) {
	c.ViewportRect = [4]int{x, y, width, height}
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	c.ClearRGBA = [4]float32{red, green, blue, alpha}
}

func (c *Context) Clear(mask glcore.Enum) {
	c.Clears = append(c.Clears, mask)
}

func (c *Context) DrawArrays(mode glcore.Enum, first, count int) {
	c.Draws = append(c.Draws, Draw{
		Program:     c.CurrentProgram,
		VertexArray: c.BoundVertexArray,
		Mode:        mode,
		First:       first,
		Count:       count,
	})
}

// Leaked returns a description of every program, buffer and vertex array
// that was never deleted.  Shaders are not included.
func (c *Context) Leaked() []string {
	var leaked []string
	for name, st := range c.Programs {
		if st.Deleted == 0 {
			leaked = append(leaked, fmt.Sprintf("program %d", name))
		}
	}
	for name, st := range c.Buffers {
		if st.Deleted == 0 {
			leaked = append(leaked, fmt.Sprintf("buffer %d", name))
		}
	}
	for name, st := range c.VertexArrays {
		if st.Deleted == 0 {
			leaked = append(leaked, fmt.Sprintf("vertex array %d", name))
		}
	}
	sort.Strings(leaked)
	return leaked
}

// DeletedMoreThanOnce returns a description of every object, shaders
// included, that was deleted more than once.
func (c *Context) DeletedMoreThanOnce() []string {
	var objs []string
	for name, st := range c.Shaders {
		if st.Deleted > 1 {
			objs = append(objs, fmt.Sprintf("shader %d", name))
		}
	}
	for name, st := range c.Programs {
		if st.Deleted > 1 {
			objs = append(objs, fmt.Sprintf("program %d", name))
		}
	}
	for name, st := range c.Buffers {
		if st.Deleted > 1 {
			objs = append(objs, fmt.Sprintf("buffer %d", name))
		}
	}
	for name, st := range c.VertexArrays {
		if st.Deleted > 1 {
			objs = append(objs, fmt.Sprintf("vertex array %d", name))
		}
	}
	sort.Strings(objs)
	return objs
}

// truncate mimics glGet*InfoLog, which writes at most bufSize-1 characters.
func truncate(log string, bufSize int) string {
	if bufSize <= 0 {
		return ""
	}
	if len(log) > bufSize-1 {
		return log[:bufSize-1]
	}
	return log
}
