package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/hubastard/pointpixel/engine/colors"
	"github.com/hubastard/pointpixel/engine/core"
)

// PointRenderer draws point batches with the fixed-function pipeline
// (glBegin(GL_POINTS)). The window's context must be current on the calling
// thread.
type PointRenderer struct {
	win       core.Window
	pointSize float32
	clear     colors.Color
	color     colors.Color
}

// framebufferSizer is implemented by windows whose framebuffer differs from
// their size in screen coordinates (HiDPI).
type framebufferSizer interface {
	FramebufferSize() (int, int)
}

func NewPointRenderer(win core.Window) (*PointRenderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	core.Logger().Info("GL context",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	r := &PointRenderer{win: win, pointSize: 1, clear: colors.Black, color: colors.White}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.POINT_SMOOTH)
	return r, nil
}

// Project maps logical (0,0) to the top-left pixel and (w,h) to the
// bottom-right corner of the framebuffer.
func (r *PointRenderer) Project(w, h int) {
	fw, fh := r.win.Size()
	if fs, ok := r.win.(framebufferSizer); ok {
		fw, fh = fs.FramebufferSize()
	}
	gl.Viewport(0, 0, int32(fw), int32(fh))

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(w), float64(h), 0, 0, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

func (r *PointRenderer) SetPointSize(px float32)      { r.pointSize = px }
func (r *PointRenderer) SetClearColor(c colors.Color) { r.clear = c }

// SetColor is legal inside a batch.
func (r *PointRenderer) SetColor(c colors.Color) {
	r.color = c
	gl.Color4f(c[0], c[1], c[2], c[3])
}

func (r *PointRenderer) Begin() {
	gl.PointSize(r.pointSize)
	gl.Color4f(r.color[0], r.color[1], r.color[2], r.color[3])
	gl.Begin(gl.POINTS)
}

func (r *PointRenderer) Point(x, y float32) { gl.Vertex2f(x, y) }
func (r *PointRenderer) End()               { gl.End() }

func (r *PointRenderer) Clear() {
	c := r.clear
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *PointRenderer) Shutdown() { gl.Finish() }
