package renderer

import (
	"github.com/felipepegoraro/opengl-mpu6050/graphics"
	"github.com/felipepegoraro/opengl-mpu6050/options"
	"github.com/felipepegoraro/opengl-mpu6050/orientation"
)

// Renderer draws the cube into a window context.
type Renderer struct {
	context graphics.Context
	scene   *RenderContext
	frame   *FrameRenderer
}

func NewRenderer(ctx graphics.Context, opts options.RenderOptions) (*Renderer, error) {
	frame, err := NewFrameRenderer(opts)
	if err != nil {
		return nil, err
	}

	ctx.MakeCurrent()
	width, height := ctx.GetFramebufferSize()
	scene, err := NewRenderContext(opts, width, height)
	if err != nil {
		return nil, err
	}
	return &Renderer{context: ctx, scene: scene, frame: frame}, nil
}

// RenderFrame follows framebuffer resizes and draws s.
func (r *Renderer) RenderFrame(s orientation.Sample) {
	fbWidth, fbHeight := r.context.GetFramebufferSize()
	if w, h := r.scene.Size(); fbWidth != w || fbHeight != h {
		r.scene.SetViewport(fbWidth, fbHeight)
	}
	r.frame.Draw(r.scene, s)
}

// Shutdown releases the GPU resources. The window belongs to the caller.
func (r *Renderer) Shutdown() {
	r.scene.Destroy()
}
