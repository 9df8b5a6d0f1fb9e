//go:build linux

package platform

import (
	"fmt"
	"image"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/hubastard/pointpixel/engine/core"
	"github.com/hubastard/pointpixel/engine/gfx/soft"
)

// FBWindow implements core.Window on a Linux framebuffer device. The
// "window" is a rectangle of the screen at Position; there is no pointer,
// and SIGINT/SIGTERM request a close.
type FBWindow struct {
	dev    *fb.Device
	sig    chan os.Signal
	start  time.Time
	closed atomic.Bool
	canvas *soft.Canvas

	mu   sync.Mutex
	x, y int
	w, h int
}

func NewFBWindow(cfg core.WindowConfig, path string) (*FBWindow, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %q: %w", path, err)
	}
	b := dev.Bounds()
	core.Logger().Info("framebuffer open", "path", path, "width", b.Dx(), "height", b.Dy())

	f := &FBWindow{
		dev:   dev,
		sig:   make(chan os.Signal, 1),
		start: time.Now(),
		x:     cfg.X,
		y:     cfg.Y,
		w:     cfg.Width,
		h:     cfg.Height,
	}
	signal.Notify(f.sig, os.Interrupt, syscall.SIGTERM)
	return f, nil
}

func (f *FBWindow) attach(c *soft.Canvas) { f.canvas = c }

func (f *FBWindow) PollEvents() {
	select {
	case <-f.sig:
		f.closed.Store(true)
	default:
	}
}

// WaitEvents blocks for a signal or a 60 Hz tick, whichever comes first;
// the device produces no events of its own.
func (f *FBWindow) WaitEvents() {
	select {
	case <-f.sig:
		f.closed.Store(true)
	case <-time.After(time.Second / 60):
	}
}

// SwapBuffers blits the scaled canvas straight onto the device.
func (f *FBWindow) SwapBuffers() {
	if f.canvas == nil {
		return
	}
	f.mu.Lock()
	at := image.Pt(f.x, f.y)
	f.mu.Unlock()
	f.canvas.Present(f.dev, f.dev.Bounds().Min.Add(at))
}

func (f *FBWindow) ShouldClose() bool { return f.closed.Load() }
func (f *FBWindow) RequestClose()     { f.closed.Store(true) }
func (f *FBWindow) Time() float64     { return time.Since(f.start).Seconds() }

func (f *FBWindow) Size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.w, f.h
}

func (f *FBWindow) SetSize(w, h int) {
	f.mu.Lock()
	f.w, f.h = w, h
	f.mu.Unlock()
}

func (f *FBWindow) Position() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.x, f.y
}

func (f *FBWindow) SetPosition(x, y int) {
	f.mu.Lock()
	f.x, f.y = x, y
	f.mu.Unlock()
}

func (f *FBWindow) SetTitle(string)                      {}
func (f *FBWindow) SetCursorCallback(func(x, y float64)) {}

func (f *FBWindow) Destroy() {
	signal.Stop(f.sig)
	f.dev.Close()
}
