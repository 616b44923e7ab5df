// Command hellotriangle opens a window and draws two triangles, an orange one
// pointing up and a yellow one pointing down, using two shader programs that
// share a vertex stage.  Press Escape or close the window to quit.
//
//	$ go install github.com/nkhanhtrn/opengl-projects/hellotriangle && hellotriangle
//
// An OpenGL 3.3 core profile driver is required.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/nkhanhtrn/opengl-projects/glcore"
	"github.com/nkhanhtrn/opengl-projects/glcore/gl33"
)

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

type config struct {
	Width, Height int
	Title         string
	// GL context version, core profile.
	Major, Minor int
	Background   [4]float32
}

var defaultConfig = config{
	Width:      800,
	Height:     600,
	Title:      "Learn OpenGL",
	Major:      3,
	Minor:      3,
	Background: [4]float32{0.2, 0.3, 0.3, 1.0},
}

func main() {
	os.Exit(run(defaultConfig, glfwPlatform))
}

type resizer interface {
	SetFramebufferSizeCallback(cbfun glfw.FramebufferSizeCallback) glfw.FramebufferSizeCallback
}

// appWindow is the part of *glfw.Window that run uses.
type appWindow interface {
	window
	resizer
	Destroy()
}

var _ appWindow = (*glfw.Window)(nil)

// platform holds the windowing and loader entry points run depends on.
type platform struct {
	init         func() error
	terminate    func()
	createWindow func(cfg config) (appWindow, error)
	loadGL       func() (glcore.Context, error)
	pollEvents   func()
}

var glfwPlatform = platform{
	init:      glfw.Init,
	terminate: glfw.Terminate,
	createWindow: func(cfg config) (appWindow, error) {
		w, err := createWindow(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	},
	loadGL: func() (glcore.Context, error) {
		err := gl33.Init()
		if err != nil {
			return nil, err
		}
		log.Printf("OpenGL version %s", gl33.Version())
		return gl33.Context{}, nil
	},
	pollEvents: glfw.PollEvents,
}

// run returns the process exit status.
func run(cfg config, p platform) int {
	err := p.init()
	if err != nil {
		log.Printf("failed to initialize GLFW: %v", err)
		return -1
	}
	defer p.terminate()

	w, err := p.createWindow(cfg)
	if err != nil {
		log.Printf("failed to create GLFW window: %v", err)
		return -1
	}
	defer w.Destroy()

	glctx, err := p.loadGL()
	if err != nil {
		log.Printf("failed to initialize OpenGL: %v", err)
		return -1
	}

	s := start(w, glctx, cfg)
	defer s.release(glctx)

	renderLoop(w, glctx, s, p.pollEvents)
	return 0
}

// start sizes the viewport to the window, keeps it in sync on resize and
// builds the scene.
func start(w resizer, glctx glcore.Context, cfg config) *scene {
	glctx.Viewport(0, 0, cfg.Width, cfg.Height)
	w.SetFramebufferSizeCallback(framebufferSizeCallback(glctx))
	return newScene(glctx, cfg.Background)
}

// createWindow opens a window with a core profile context of the configured
// version and makes its context current.  glfw.Init must have succeeded.
func createWindow(cfg config) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	w.MakeContextCurrent()
	return w, nil
}
