/*
Package glprog compiles shader stages and links them into programs.  It plays
the role glutil.CreateProgram plays for golang.org/x/mobile/gl but keeps the
stages separate, so a single compiled vertex stage can be linked into more
than one program.

Failures are reported as errors that carry the driver's info log.  The
returned object is valid either way, so a caller may log the error and carry
on rendering with it.

	vs, err := glprog.CompileShader(glctx, glcore.VERTEX_SHADER, vertexShader)
	if err != nil {
		log.Printf("error compiling vertex shader: %v", err)
	}
*/
package glprog

import (
	"fmt"

	"github.com/nkhanhtrn/opengl-projects/glcore"
)

// InfoLogSize is the size of the buffer used to read info logs.  Longer logs
// are truncated.
const InfoLogSize = 512

// StageName returns a human readable name for a shader type.
func StageName(ty glcore.Enum) string {
	switch ty {
	case glcore.VERTEX_SHADER:
		return "vertex"
	case glcore.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("shader(%#x)", uint32(ty))
	}
}

// CompileShader creates a shader of type ty from src and compiles it.  If
// compilation fails the shader is still returned along with an error
// containing the info log.
func CompileShader(glctx glcore.Context, ty glcore.Enum, src string) (glcore.Shader, error) {
	s := glctx.CreateShader(ty)
	glctx.ShaderSource(s, src)
	glctx.CompileShader(s)
	if glctx.GetShaderi(s, glcore.COMPILE_STATUS) == int(glcore.FALSE) {
		infoLog := glctx.GetShaderInfoLog(s, InfoLogSize)
		return s, fmt.Errorf("%s shader compilation failed: %s", StageName(ty), infoLog)
	}
	return s, nil
}

// LinkProgram creates a program, attaches shaders and links it.  If linking
// fails the program is still returned along with an error containing the
// info log.  The shaders are not deleted.
func LinkProgram(glctx glcore.Context, shaders ...glcore.Shader) (glcore.Program, error) {
	p := glctx.CreateProgram()
	for _, s := range shaders {
		glctx.AttachShader(p, s)
	}
	glctx.LinkProgram(p)
	if glctx.GetProgrami(p, glcore.LINK_STATUS) == int(glcore.FALSE) {
		infoLog := glctx.GetProgramInfoLog(p, InfoLogSize)
		return p, fmt.Errorf("program linking failed: %s", infoLog)
	}
	return p, nil
}
