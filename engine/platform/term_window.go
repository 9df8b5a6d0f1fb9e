package platform

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/pointpixel/engine/core"
	"github.com/hubastard/pointpixel/engine/gfx/soft"
)

// halfBlock shows two vertically stacked pixels in one cell: the upper one
// as foreground, the lower one as background.
const halfBlock = '▀'

// TermWindow implements core.Window on a terminal. A physical pixel is half a
// character cell, so a cell row holds two pixel rows.
type TermWindow struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	start  time.Time

	mu       sync.Mutex
	title    string
	w, h     int
	onCursor func(x, y float64)

	closed atomic.Bool
	canvas *soft.Canvas
	frame  *image.RGBA
}

func NewTermWindow(cfg core.WindowConfig) (*TermWindow, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	tw := &TermWindow{
		screen: screen,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
		start:  time.Now(),
		title:  cfg.Title,
		w:      cfg.Width,
		h:      cfg.Height,
		frame:  image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
	}
	go tw.pump()

	cols, rows := screen.Size()
	core.Logger().Debug("terminal window", "cols", cols, "rows", rows, "width", cfg.Width, "height", cfg.Height)
	return tw, nil
}

// pump forwards tcell events until the screen is finalised.
func (t *TermWindow) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// attach binds the canvas presented by SwapBuffers.
func (t *TermWindow) attach(c *soft.Canvas) { t.canvas = c }

func (t *TermWindow) PollEvents() {
	for {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			return
		}
	}
}

func (t *TermWindow) WaitEvents() {
	select {
	case ev := <-t.events:
		t.handle(ev)
	case <-t.quit:
		return
	}
	t.PollEvents()
}

func (t *TermWindow) handle(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || e.Rune() == 'q' {
			t.closed.Store(true)
		}
	case *tcell.EventMouse:
		x, y := e.Position()
		t.mu.Lock()
		cb := t.onCursor
		t.mu.Unlock()
		if cb != nil {
			cb(float64(x), float64(y*2))
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// SwapBuffers scales the canvas into the physical frame and paints it with
// half blocks.
func (t *TermWindow) SwapBuffers() {
	if t.canvas == nil {
		return
	}
	t.mu.Lock()
	w, h := t.w, t.h
	t.mu.Unlock()
	if b := t.frame.Bounds(); b.Dx() != w || b.Dy() != h {
		t.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	t.canvas.Present(t.frame, image.Point{})

	cols, rows := t.screen.Size()
	for cy := 0; cy < rows && cy*2 < h; cy++ {
		for cx := 0; cx < cols && cx < w; cx++ {
			top := t.frame.RGBAAt(cx, cy*2)
			bottom := t.frame.RGBAAt(cx, cy*2+1)
			style := tcell.StyleDefault.Foreground(termColor(top)).Background(termColor(bottom))
			t.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

func termColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *TermWindow) ShouldClose() bool { return t.closed.Load() }
func (t *TermWindow) RequestClose()     { t.closed.Store(true) }
func (t *TermWindow) Time() float64     { return time.Since(t.start).Seconds() }

func (t *TermWindow) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w, t.h
}

func (t *TermWindow) SetSize(w, h int) {
	t.mu.Lock()
	t.w, t.h = w, h
	t.mu.Unlock()
}

// Position is always the top-left corner of the terminal.
func (t *TermWindow) Position() (int, int) { return 0, 0 }
func (t *TermWindow) SetPosition(int, int) {}

func (t *TermWindow) SetTitle(title string) {
	t.mu.Lock()
	t.title = title
	t.mu.Unlock()
}

func (t *TermWindow) SetCursorCallback(cb func(x, y float64)) {
	t.mu.Lock()
	t.onCursor = cb
	t.mu.Unlock()
}

func (t *TermWindow) Destroy() {
	close(t.quit)
	t.screen.Fini()
}
