package platform

import (
	"image"
	"image/draw"
	"sync"
	"sync/atomic"

	"github.com/hubastard/pointpixel/engine/core"
	"github.com/hubastard/pointpixel/engine/gfx/soft"
)

// ImageWindow is an offscreen core.Window. Its clock advances a fixed step
// per frame, so runs are reproducible, and it closes itself after a frame
// limit (0 means no limit).
type ImageWindow struct {
	maxFrames int
	step      float64
	frames    int
	closed    atomic.Bool
	canvas    *soft.Canvas
	onCursor  func(x, y float64)

	mu    sync.Mutex
	title string
	x, y  int
	w, h  int
	last  *image.RGBA
}

func NewImageWindow(cfg core.WindowConfig, maxFrames int, fps float64) *ImageWindow {
	if fps <= 0 {
		fps = 60
	}
	return &ImageWindow{
		maxFrames: maxFrames,
		step:      1 / fps,
		title:     cfg.Title,
		x:         cfg.X,
		y:         cfg.Y,
		w:         cfg.Width,
		h:         cfg.Height,
	}
}

func (iw *ImageWindow) attach(c *soft.Canvas) { iw.canvas = c }

func (iw *ImageWindow) PollEvents() {}
func (iw *ImageWindow) WaitEvents() {}

// SwapBuffers keeps a physical-size copy of the frame.
func (iw *ImageWindow) SwapBuffers() {
	iw.frames++
	if iw.maxFrames > 0 && iw.frames >= iw.maxFrames {
		iw.closed.Store(true)
	}
	if iw.canvas == nil {
		return
	}
	w, h := iw.canvas.PhysicalSize()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	iw.canvas.Present(img, image.Point{})

	iw.mu.Lock()
	iw.last = img
	iw.mu.Unlock()
}

// Frame returns the last presented frame, nil before the first one.
func (iw *ImageWindow) Frame() *image.RGBA {
	iw.mu.Lock()
	defer iw.mu.Unlock()
	if iw.last == nil {
		return nil
	}
	out := image.NewRGBA(iw.last.Bounds())
	draw.Draw(out, out.Bounds(), iw.last, image.Point{}, draw.Src)
	return out
}

// MoveCursor feeds a physical pointer position, as a real window would on a
// mouse move.
func (iw *ImageWindow) MoveCursor(x, y float64) {
	if iw.onCursor != nil {
		iw.onCursor(x, y)
	}
}

func (iw *ImageWindow) ShouldClose() bool { return iw.closed.Load() }
func (iw *ImageWindow) RequestClose()     { iw.closed.Store(true) }
func (iw *ImageWindow) Destroy()          {}
func (iw *ImageWindow) Time() float64     { return float64(iw.frames) * iw.step }

func (iw *ImageWindow) Size() (int, int) {
	iw.mu.Lock()
	defer iw.mu.Unlock()
	return iw.w, iw.h
}

func (iw *ImageWindow) SetSize(w, h int) {
	iw.mu.Lock()
	iw.w, iw.h = w, h
	iw.mu.Unlock()
}

func (iw *ImageWindow) Position() (int, int) {
	iw.mu.Lock()
	defer iw.mu.Unlock()
	return iw.x, iw.y
}

func (iw *ImageWindow) SetPosition(x, y int) {
	iw.mu.Lock()
	iw.x, iw.y = x, y
	iw.mu.Unlock()
}

func (iw *ImageWindow) SetTitle(t string) {
	iw.mu.Lock()
	iw.title = t
	iw.mu.Unlock()
}

func (iw *ImageWindow) SetCursorCallback(cb func(x, y float64)) { iw.onCursor = cb }
