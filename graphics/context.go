package graphics

// Context defines the interface for an OpenGL context bound to a window.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	// EndFrame presents the back buffer and processes pending window events.
	EndFrame()
	GetFramebufferSize() (int, int)
}
