package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/felipepegoraro/opengl-mpu6050/orientation"
)

// Draw renders the cube at the attitude of s.
func (f *FrameRenderer) Draw(rc *RenderContext, s orientation.Sample) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(rc.program)

	mv := f.ModelView(s)
	gl.UniformMatrix4fv(rc.projLoc, 1, false, &rc.proj[0])
	gl.UniformMatrix4fv(rc.mvLoc, 1, false, &mv[0])

	gl.BindVertexArray(rc.vao)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.DrawElements(gl.TRIANGLES, rc.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}
