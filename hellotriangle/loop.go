package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/nkhanhtrn/opengl-projects/glcore"
)

// window is the part of *glfw.Window the render loop uses.
type window interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	GetKey(key glfw.Key) glfw.Action
	SwapBuffers()
}

var _ window = (*glfw.Window)(nil)

// processInput requests that w close once Escape is pressed.
func processInput(w window) {
	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}
}

// renderLoop draws s into w until the window is asked to close and returns
// the number of frames drawn.  pollEvents processes pending window events,
// normally glfw.PollEvents.
func renderLoop(w window, glctx glcore.Context, s *scene, pollEvents func()) int {
	frames := 0
	for !w.ShouldClose() {
		pollEvents()
		processInput(w)

		s.draw(glctx)

		w.SwapBuffers()
		frames++
	}
	return frames
}

// framebufferSizeCallback keeps the viewport the size of the framebuffer.
func framebufferSizeCallback(glctx glcore.Context) glfw.FramebufferSizeCallback {
	return func(_ *glfw.Window, width, height int) {
		glctx.Viewport(0, 0, width, height)
	}
}
