package core

import (
	"fmt"
	"runtime"

	"github.com/hubastard/pointpixel/engine/profiler"
)

// run is the render goroutine: start gate, window setup, frame loop,
// teardown. Any error is kept in r.err for Start/Wait.
func (r *Renderer) run() {
	defer close(r.done)
	defer r.setState(StateClosed)

	// Graphics contexts are bound to the thread that made them current.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	r.setState(StateWaitingForStart)
	<-r.gate

	if err := r.loop(); err != nil {
		Logger().Error("render loop failed", "err", err)
		r.err = err
	}
}

func (r *Renderer) loop() error {
	r.setState(StateInitializing)

	cfg := r.Config()
	if err := cfg.validate(); err != nil {
		return err
	}

	win, err := r.backend.NewWindow(WindowConfig{
		Title:  cfg.Title,
		X:      cfg.X,
		Y:      cfg.Y,
		Width:  cfg.Width * cfg.PointScale,
		Height: cfg.Height * cfg.PointScale,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}
	if win == nil {
		return ErrWindowCreation
	}

	canvas, err := r.backend.NewCanvas(win)
	if err != nil || canvas == nil {
		win.Destroy()
		if err == nil {
			return ErrCanvasCreation
		}
		return fmt.Errorf("%w: %w", ErrCanvasCreation, err)
	}
	Logger().Info("window created", "title", cfg.Title,
		"width", cfg.Width*cfg.PointScale, "height", cfg.Height*cfg.PointScale, "scale", cfg.PointScale)

	canvas.SetPointSize(float32(cfg.PointScale))
	canvas.SetClearColor(cfg.ClearColor)
	canvas.SetColor(cfg.DrawColor)
	canvas.Project(cfg.Width, cfg.Height)

	win.SetCursorCallback(func(x, y float64) {
		r.cursor.handleMove(x, y, r.PointScale())
	})

	r.mu.Lock()
	r.win = win
	r.mu.Unlock()
	r.canvas = canvas

	r.hooks.get(&r.hooks.begin)(r)

	r.setState(StateRunning)
	for !win.ShouldClose() {
		r.frame(win, canvas)
	}

	r.setState(StateFinishing)
	r.hooks.get(&r.hooks.finish)(r)

	r.canvas = nil
	canvas.Shutdown()
	r.mu.Lock()
	r.win = nil
	r.mu.Unlock()
	win.Destroy()
	Logger().Info("window destroyed", "frames", r.Frames())
	return nil
}

func (r *Renderer) frame(win Window, canvas Canvas) {
	defer profiler.Start("frame")()

	cfg := r.Config()
	if cfg.WaitEvents {
		win.WaitEvents()
	} else {
		win.PollEvents()
	}

	r.timer.Advance(win.Time())
	r.publishTiming()

	if r.reproject.Swap(false) {
		canvas.Project(cfg.Width, cfg.Height)
	}
	if cfg.AutoClear {
		canvas.Clear()
	}

	endTick := profiler.Start("tick")
	canvas.Begin()
	r.hooks.get(&r.hooks.tick)(r)
	canvas.End()
	endTick()

	endSwap := profiler.Start("swap")
	win.SwapBuffers()
	endSwap()

	r.hooks.get(&r.hooks.tickLate)(r)
}
