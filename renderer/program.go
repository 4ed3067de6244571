package renderer

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/felipepegoraro/opengl-mpu6050/shader"
)

// newProgram compiles and links a program. Failures do not abort: the
// program handle is always returned together with the collected diagnostics,
// and a broken program simply renders nothing.
func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, []error) {
	var diags []error

	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER, shader.Vertex)
	if err != nil {
		diags = append(diags, err)
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER, shader.Fragment)
	if err != nil {
		diags = append(diags, err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		diags = append(diags, &shader.LinkError{Log: shader.CleanLog(logText)})
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, diags
}

func compileShader(source string, shaderType uint32, stage shader.Stage) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(logText))
		return sh, &shader.CompileError{Stage: stage, Log: shader.CleanLog(logText)}
	}
	return sh, nil
}
