package platform

import (
	"sync"

	"github.com/hubastard/pointpixel/engine/core"
	glbackend "github.com/hubastard/pointpixel/engine/gfx/gl"
	"github.com/hubastard/pointpixel/engine/gfx/soft"
)

// softWindow is a window presenting a soft.Canvas.
type softWindow interface {
	core.Window
	attach(c *soft.Canvas)
}

func softCanvas(win core.Window) (core.Canvas, error) {
	c := soft.New()
	if sw, ok := win.(softWindow); ok {
		sw.attach(c)
	}
	return c, nil
}

// GLFW is the desktop backend: a GLFW window drawn with OpenGL points.
func GLFW(vsync bool) core.Backend {
	return core.Backend{
		NewWindow: func(cfg core.WindowConfig) (core.Window, error) {
			w, err := NewGLFWWindow(cfg, vsync)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
		NewCanvas: func(win core.Window) (core.Canvas, error) {
			r, err := glbackend.NewPointRenderer(win)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	}
}

// Terminal draws into the controlling terminal with half-block cells.
func Terminal() core.Backend {
	return core.Backend{
		NewWindow: func(cfg core.WindowConfig) (core.Window, error) {
			w, err := NewTermWindow(cfg)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
		NewCanvas: softCanvas,
	}
}

// Framebuffer draws onto a Linux framebuffer device such as /dev/fb0.
func Framebuffer(path string) core.Backend {
	return core.Backend{
		NewWindow: func(cfg core.WindowConfig) (core.Window, error) {
			w, err := NewFBWindow(cfg, path)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
		NewCanvas: softCanvas,
	}
}

// Headless renders offscreen; the window it creates is kept for inspection.
type Headless struct {
	MaxFrames int
	FPS       float64

	mu  sync.Mutex
	win *ImageWindow
}

func NewHeadless(maxFrames int) *Headless {
	return &Headless{MaxFrames: maxFrames, FPS: 60}
}

func (h *Headless) Backend() core.Backend {
	return core.Backend{
		NewWindow: func(cfg core.WindowConfig) (core.Window, error) {
			w := NewImageWindow(cfg, h.MaxFrames, h.FPS)
			h.mu.Lock()
			h.win = w
			h.mu.Unlock()
			return w, nil
		},
		NewCanvas: softCanvas,
	}
}

// Window returns the window created by the backend, nil before that.
func (h *Headless) Window() *ImageWindow {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.win
}
