package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/pointpixel/engine/core"
)

// GLFWWindow implements core.Window on a GLFW window with an OpenGL 2.0
// context. It owns the GLFW library: it is initialised here and terminated
// in Destroy.
type GLFWWindow struct {
	w        *glfw.Window
	onCursor func(x, y float64)
}

// NewGLFWWindow must run on the thread that will drive the window; the
// render goroutine is locked to its OS thread for this reason.
func NewGLFWWindow(cfg core.WindowConfig, vsync bool) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// Fixed-function points need a legacy context.
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.SetPos(cfg.X, cfg.Y)
	win.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gw := &GLFWWindow{w: win}
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if gw.onCursor != nil {
			gw.onCursor(x, y)
		}
	})
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	core.Logger().Debug("glfw window", "width", cfg.Width, "height", cfg.Height)
	return gw, nil
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                             { glfw.PollEvents() }
func (g *GLFWWindow) WaitEvents()                             { glfw.WaitEvents() }
func (g *GLFWWindow) SwapBuffers()                            { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                       { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                           { g.w.SetShouldClose(true) }
func (g *GLFWWindow) Time() float64                           { return glfw.GetTime() }
func (g *GLFWWindow) Size() (int, int)                        { return g.w.GetSize() }
func (g *GLFWWindow) SetSize(w, h int)                        { g.w.SetSize(w, h) }
func (g *GLFWWindow) Position() (int, int)                    { return g.w.GetPos() }
func (g *GLFWWindow) SetPosition(x, y int)                    { g.w.SetPos(x, y) }
func (g *GLFWWindow) SetTitle(t string)                       { g.w.SetTitle(t) }
func (g *GLFWWindow) SetCursorCallback(cb func(x, y float64)) { g.onCursor = cb }
func (g *GLFWWindow) FramebufferSize() (int, int)             { return g.w.GetFramebufferSize() }

func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}
