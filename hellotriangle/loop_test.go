package main

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkhanhtrn/opengl-projects/glcore"
	"github.com/nkhanhtrn/opengl-projects/glcore/glcoretest"
)

// fakeWindow presses Escape once escapeAfter frames have been swapped.
type fakeWindow struct {
	escapeAfter int
	shouldClose bool
	swaps       int
	polls       int
	destroyed   int
	resize      glfw.FramebufferSizeCallback
}

func (w *fakeWindow) ShouldClose() bool         { return w.shouldClose }
func (w *fakeWindow) SetShouldClose(value bool) { w.shouldClose = value }
func (w *fakeWindow) SwapBuffers()              { w.swaps++ }
func (w *fakeWindow) Destroy()                  { w.destroyed++ }

func (w *fakeWindow) SetFramebufferSizeCallback(cbfun glfw.FramebufferSizeCallback) glfw.FramebufferSizeCallback {
	prev := w.resize
	w.resize = cbfun
	return prev
}

func (w *fakeWindow) GetKey(key glfw.Key) glfw.Action {
	if key == glfw.KeyEscape && w.swaps >= w.escapeAfter {
		return glfw.Press
	}
	return glfw.Release
}

func TestProcessInputEscape(t *testing.T) {
	w := &fakeWindow{escapeAfter: 1}

	processInput(w)
	assert.False(t, w.shouldClose)

	w.swaps = 1
	processInput(w)
	assert.True(t, w.shouldClose)
}

func TestRenderLoopStopsOnEscape(t *testing.T) {
	captureLog(t)
	glctx := glcoretest.New()
	s := newScene(glctx, defaultConfig.Background)
	w := &fakeWindow{escapeAfter: 4}

	frames := renderLoop(w, glctx, s, func() { w.polls++ })

	// escape is seen during the fifth frame, which still completes
	assert.Equal(t, 5, frames)
	assert.Equal(t, 5, w.swaps)
	assert.Equal(t, 5, w.polls)
	assert.True(t, w.shouldClose)

	require.Len(t, glctx.Draws, 2*frames)
	for _, d := range glctx.Draws {
		assert.Equal(t, glcore.TRIANGLES, d.Mode)
		assert.Equal(t, 0, d.First)
		assert.Equal(t, 3, d.Count)
	}
	assert.Len(t, glctx.Clears, frames)
}

func TestRenderLoopAlreadyClosing(t *testing.T) {
	captureLog(t)
	glctx := glcoretest.New()
	s := newScene(glctx, defaultConfig.Background)
	w := &fakeWindow{shouldClose: true}

	frames := renderLoop(w, glctx, s, func() { w.polls++ })

	assert.Zero(t, frames)
	assert.Zero(t, w.polls)
	assert.Empty(t, glctx.Draws)
}

func TestFramebufferSizeCallback(t *testing.T) {
	glctx := glcoretest.New()
	resize := framebufferSizeCallback(glctx)

	resize(nil, 1024, 768)
	assert.Equal(t, [4]int{0, 0, 1024, 768}, glctx.ViewportRect)

	resize(nil, 320, 200)
	assert.Equal(t, [4]int{0, 0, 320, 200}, glctx.ViewportRect)
}

func TestDefaultConfig(t *testing.T) {
	assert.Equal(t, 800, defaultConfig.Width)
	assert.Equal(t, 600, defaultConfig.Height)
	assert.Equal(t, 3, defaultConfig.Major)
	assert.Equal(t, 3, defaultConfig.Minor)
}
