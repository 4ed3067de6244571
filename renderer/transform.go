package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/felipepegoraro/opengl-mpu6050/options"
	"github.com/felipepegoraro/opengl-mpu6050/orientation"
)

// ViewMatrix moves the world by the negated camera offset. The camera never rotates.
func ViewMatrix(camera mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(-camera.X(), -camera.Y(), -camera.Z())
}

// ModelView returns view * rotate(s).
func ModelView(camera mgl32.Vec3, rotate orientation.RotationFunc, s orientation.Sample) mgl32.Mat4 {
	return ViewMatrix(camera).Mul4(rotate(s))
}

// Projection builds the perspective matrix for a framebuffer. A zero height
// (minimized window) falls back to a square aspect.
func Projection(opts options.RenderOptions, width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(opts.FovDeg), aspect, opts.Near, opts.Far)
}

// FrameRenderer turns a sample into the per-frame uniforms and draw call.
type FrameRenderer struct {
	camera mgl32.Vec3
	rotate orientation.RotationFunc
}

func NewFrameRenderer(opts options.RenderOptions) (*FrameRenderer, error) {
	rotate, err := orientation.ByName(opts.Rotation)
	if err != nil {
		return nil, fmt.Errorf("frame renderer: %w", err)
	}
	return &FrameRenderer{
		camera: mgl32.Vec3(opts.Camera),
		rotate: rotate,
	}, nil
}

// ModelView is the matrix uploaded as mv_matrix for s.
func (f *FrameRenderer) ModelView(s orientation.Sample) mgl32.Mat4 {
	return ModelView(f.camera, f.rotate, s)
}
