package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/felipepegoraro/opengl-mpu6050/options"
	"github.com/felipepegoraro/opengl-mpu6050/shader"
)

// glInitOnce guards the loading of GL function pointers.
var glInitOnce sync.Once

// RenderContext owns the GPU resources of the cube: one shader program and
// its vertex array, vertex buffer and index buffer.
type RenderContext struct {
	program    uint32
	vao        uint32
	vbo        uint32
	ibo        uint32
	indexCount int32
	projLoc    int32
	mvLoc      int32

	opts   options.RenderOptions
	proj   mgl32.Mat4
	width  int
	height int

	// Diagnostics holds the shader compile and link failures of the program.
	Diagnostics []error
}

// NewRenderContext needs a current GL context. Shader problems are logged
// and recorded in Diagnostics; only a failure to load GL is returned.
func NewRenderContext(opts options.RenderOptions, fbWidth, fbHeight int) (*RenderContext, error) {
	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	rc := &RenderContext{opts: opts}

	vertexSource := loadSource(opts.VertexShader)
	fragmentSource := loadSource(opts.FragmentShader)
	rc.program, rc.Diagnostics = newProgram(vertexSource, fragmentSource)
	for _, d := range rc.Diagnostics {
		log.Printf("shader: %v", d)
	}

	rc.projLoc = gl.GetUniformLocation(rc.program, gl.Str(shader.ProjMatrixUniform+"\x00"))
	rc.mvLoc = gl.GetUniformLocation(rc.program, gl.Str(shader.MVMatrixUniform+"\x00"))

	rc.setupCube()
	rc.SetViewport(fbWidth, fbHeight)
	return rc, nil
}

func loadSource(path string) string {
	src, err := shader.LoadSource(path)
	if err != nil {
		log.Printf("shader: %v", err)
	}
	return src
}

func (rc *RenderContext) setupCube() {
	gl.GenVertexArrays(1, &rc.vao)
	gl.BindVertexArray(rc.vao)

	gl.GenBuffers(1, &rc.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rc.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(CubeVertices)*floatSize, gl.Ptr(CubeVertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &rc.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rc.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(CubeIndices)*4, gl.Ptr(CubeIndices), gl.STATIC_DRAW)
	rc.indexCount = int32(len(CubeIndices))

	gl.VertexAttribPointer(shader.PositionAttrib, positionFloats, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(shader.PositionAttrib)
	gl.VertexAttribPointer(shader.UVAttrib, uvFloats, gl.FLOAT, false, vertexStride, gl.PtrOffset(positionFloats*floatSize))
	gl.EnableVertexAttribArray(shader.UVAttrib)

	// The element buffer binding is part of the VAO state and stays bound.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// SetViewport resizes the GL viewport and recomputes the projection.
func (rc *RenderContext) SetViewport(width, height int) {
	rc.width, rc.height = width, height
	rc.proj = Projection(rc.opts, width, height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Size returns the framebuffer size the projection was built for.
func (rc *RenderContext) Size() (int, int) {
	return rc.width, rc.height
}

// Program returns the shader program handle. It is non-zero even when the
// shaders failed to compile.
func (rc *RenderContext) Program() uint32 {
	return rc.program
}

// Destroy releases the vertex array, the buffers and the program, in that order.
func (rc *RenderContext) Destroy() {
	gl.DeleteVertexArrays(1, &rc.vao)
	gl.DeleteBuffers(1, &rc.vbo)
	gl.DeleteBuffers(1, &rc.ibo)
	gl.DeleteProgram(rc.program)
}
