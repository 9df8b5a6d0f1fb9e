package core

import (
	"sync"

	"github.com/hubastard/pointpixel/engine/colors"
	"github.com/hubastard/pointpixel/engine/geom"
)

// fakeWindow is a scripted Window. The clock advances by step on every
// Time call.
type fakeWindow struct {
	mu        sync.Mutex
	cfg       WindowConfig
	w, h      int
	x, y      int
	title     string
	closed    bool
	destroyed bool
	swaps     int
	polls     int
	waits     int
	now, step float64
	onCursor  func(x, y float64)
	moves     [][2]float64 // delivered on the next poll
}

func (f *fakeWindow) PollEvents() {
	f.mu.Lock()
	f.polls++
	moves := f.moves
	f.moves = nil
	cb := f.onCursor
	f.mu.Unlock()
	for _, m := range moves {
		cb(m[0], m[1])
	}
}

func (f *fakeWindow) WaitEvents() {
	f.mu.Lock()
	f.waits++
	f.mu.Unlock()
}

func (f *fakeWindow) SwapBuffers() {
	f.mu.Lock()
	f.swaps++
	f.mu.Unlock()
}

func (f *fakeWindow) ShouldClose() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeWindow) RequestClose() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func (f *fakeWindow) Destroy() {
	f.mu.Lock()
	f.destroyed = true
	f.mu.Unlock()
}

func (f *fakeWindow) Time() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.now
	f.now += f.step
	return t
}

func (f *fakeWindow) Size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.w, f.h
}

func (f *fakeWindow) SetSize(w, h int) {
	f.mu.Lock()
	f.w, f.h = w, h
	f.mu.Unlock()
}

func (f *fakeWindow) Position() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.x, f.y
}

func (f *fakeWindow) SetPosition(x, y int) {
	f.mu.Lock()
	f.x, f.y = x, y
	f.mu.Unlock()
}

func (f *fakeWindow) SetTitle(t string) {
	f.mu.Lock()
	f.title = t
	f.mu.Unlock()
}

func (f *fakeWindow) SetCursorCallback(cb func(x, y float64)) {
	f.mu.Lock()
	f.onCursor = cb
	f.mu.Unlock()
}

func (f *fakeWindow) queueMove(x, y float64) {
	f.mu.Lock()
	f.moves = append(f.moves, [2]float64{x, y})
	f.mu.Unlock()
}

// fakeCanvas records batches and points. Only the render goroutine touches
// it while the loop runs; tests read it after Wait.
type fakeCanvas struct {
	projected  []geom.Vec2i
	pointSize  float32
	color      colors.Color
	inBatch    bool
	batches    int
	clears     int
	points     []geom.Vec2f
	outOfBatch int
	shutdown   bool
}

func (c *fakeCanvas) Project(w, h int)           { c.projected = append(c.projected, geom.V(w, h)) }
func (c *fakeCanvas) SetPointSize(px float32)    { c.pointSize = px }
func (c *fakeCanvas) SetClearColor(colors.Color) {}
func (c *fakeCanvas) SetColor(col colors.Color)  { c.color = col }
func (c *fakeCanvas) End()                       { c.inBatch = false }
func (c *fakeCanvas) Clear()                     { c.clears++ }
func (c *fakeCanvas) Shutdown()                  { c.shutdown = true }

func (c *fakeCanvas) Begin() {
	c.inBatch = true
	c.batches++
}

func (c *fakeCanvas) Point(x, y float32) {
	if !c.inBatch {
		c.outOfBatch++
	}
	c.points = append(c.points, geom.Vec2f{X: x, Y: y})
}

type fakeBackend struct {
	win       *fakeWindow
	canvas    *fakeCanvas
	windowErr error
	nilWindow bool
	canvasErr error
	requested []WindowConfig
}

func newFakeBackend(step float64) *fakeBackend {
	return &fakeBackend{win: &fakeWindow{step: step}, canvas: &fakeCanvas{}}
}

func (b *fakeBackend) backend() Backend {
	return Backend{
		NewWindow: func(cfg WindowConfig) (Window, error) {
			b.requested = append(b.requested, cfg)
			if b.windowErr != nil {
				return nil, b.windowErr
			}
			if b.nilWindow {
				return nil, nil
			}
			b.win.cfg = cfg
			b.win.w, b.win.h = cfg.Width, cfg.Height
			b.win.x, b.win.y = cfg.X, cfg.Y
			b.win.title = cfg.Title
			return b.win, nil
		},
		NewCanvas: func(Window) (Canvas, error) {
			if b.canvasErr != nil {
				return nil, b.canvasErr
			}
			return b.canvas, nil
		},
	}
}
