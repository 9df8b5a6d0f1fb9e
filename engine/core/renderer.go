package core

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/hubastard/pointpixel/engine/colors"
	"github.com/hubastard/pointpixel/engine/geom"
	"github.com/hubastard/pointpixel/engine/gfx/shapes"
	"github.com/hubastard/pointpixel/engine/text"
)

// Renderer owns the render goroutine, its window and the point canvas.
//
// New spawns the goroutine, which parks at the start gate until Start is
// called. Until then the renderer can be configured freely; Construct is
// rejected afterwards. The loop ends only when the window reports a close
// request (see Close).
type Renderer struct {
	backend Backend

	mu     sync.Mutex // guards cfg and win
	cfg    Config
	win    Window
	canvas Canvas // render goroutine only

	hooks  *hookSlots
	cursor cursor

	timer     FrameTimer // render goroutine only
	deltaBits atomic.Uint64
	fps       atomic.Uint64
	frames    atomic.Uint64

	reproject atomic.Bool
	running   atomic.Bool
	state     atomic.Int32

	startOnce sync.Once
	gate      chan struct{}
	done      chan struct{}
	err       error // written before done is closed
}

// New creates a renderer and its render goroutine.
func New(cfg Config, backend Backend) *Renderer {
	r := &Renderer{
		backend: backend,
		cfg:     cfg,
		hooks:   newHookSlots(),
		gate:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go r.run()
	return r
}

// Construct sets title, initial position, logical size and point scale. It
// is only valid before Start.
func (r *Renderer) Construct(title string, position, size geom.Vec2i, pointScale int) error {
	if r.running.Load() {
		return ErrAlreadyStarted
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg := r.cfg
	cfg.Title = title
	cfg.X, cfg.Y = position.X, position.Y
	cfg.Width, cfg.Height = size.X, size.Y
	cfg.PointScale = pointScale
	if err := cfg.validate(); err != nil {
		return err
	}
	r.cfg = cfg
	return nil
}

// SetJoinOnStart selects whether Start blocks until the loop has ended.
func (r *Renderer) SetJoinOnStart(join bool) {
	r.mu.Lock()
	r.cfg.JoinOnStart = join
	r.mu.Unlock()
}

// SetAutoClear clears the canvas before every Tick. Takes effect on the
// next frame.
func (r *Renderer) SetAutoClear(on bool) {
	r.mu.Lock()
	r.cfg.AutoClear = on
	r.mu.Unlock()
}

// SetWaitEvents makes the loop block on window events instead of polling.
func (r *Renderer) SetWaitEvents(on bool) {
	r.mu.Lock()
	r.cfg.WaitEvents = on
	r.mu.Unlock()
}

// Config returns a copy of the current configuration.
func (r *Renderer) Config() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg
}

// Start opens the start gate. Only the first call has an effect; later calls
// return nil immediately. With JoinOnStart the first call blocks until the
// loop ends and returns its error.
func (r *Renderer) Start() error {
	opened := false
	r.startOnce.Do(func() {
		r.running.Store(true)
		close(r.gate)
		opened = true
	})
	if !opened {
		return nil
	}
	Logger().Debug("renderer started")

	if r.Config().JoinOnStart {
		return r.Wait()
	}
	return nil
}

// Wait blocks until the render goroutine has returned and reports its error.
func (r *Renderer) Wait() error {
	<-r.done
	return r.err
}

// Done is closed when the render goroutine has returned.
func (r *Renderer) Done() <-chan struct{} { return r.done }

// Err returns the loop error once the render goroutine has returned, nil
// before that.
func (r *Renderer) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

func (r *Renderer) IsRunning() bool { return r.running.Load() }
func (r *Renderer) State() State    { return State(r.state.Load()) }

func (r *Renderer) setState(s State) {
	r.state.Store(int32(s))
	Logger().Debug("render loop", "state", s)
}

// Close asks the window to close; the loop finishes after the current frame.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.win != nil {
		r.win.RequestClose()
	}
}

// ---- timing & input ----

// DeltaTime is the time in seconds between the last two frames; 0 on the
// first frame.
func (r *Renderer) DeltaTime() float64 { return math.Float64frombits(r.deltaBits.Load()) }

// FPS is the frame count of the last completed second.
func (r *Renderer) FPS() uint { return uint(r.fps.Load()) }

// Frames is the number of frames started so far.
func (r *Renderer) Frames() uint64 { return r.frames.Load() }

// Cursor is the last pointer position in logical points.
func (r *Renderer) Cursor() geom.Vec2i { return r.cursor.load() }

func (r *Renderer) publishTiming() {
	r.deltaBits.Store(math.Float64bits(r.timer.Delta()))
	r.fps.Store(uint64(r.timer.FPS()))
	r.frames.Store(r.timer.Frames())
}

// ---- windowing ----

// SetWindowSize changes the logical size. A live window is resized at once
// and the canvas projection follows on the next frame.
func (r *Renderer) SetWindowSize(size geom.Vec2i) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg.Width, r.cfg.Height = size.X, size.Y
	if r.win != nil {
		r.win.SetSize(size.X*r.cfg.PointScale, size.Y*r.cfg.PointScale)
		r.reproject.Store(true)
	}
}

// WindowSize reports the logical size, read back from the live window when
// there is one.
func (r *Renderer) WindowSize() geom.Vec2i {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.win != nil {
		w, h := r.win.Size()
		return geom.Vec2i{X: w, Y: h}.Div(r.cfg.PointScale)
	}
	return geom.Vec2i{X: r.cfg.Width, Y: r.cfg.Height}
}

func (r *Renderer) SetWindowPosition(pos geom.Vec2i) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg.X, r.cfg.Y = pos.X, pos.Y
	if r.win != nil {
		r.win.SetPosition(pos.X, pos.Y)
	}
}

func (r *Renderer) WindowPosition() geom.Vec2i {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.win != nil {
		x, y := r.win.Position()
		return geom.Vec2i{X: x, Y: y}
	}
	return geom.Vec2i{X: r.cfg.X, Y: r.cfg.Y}
}

func (r *Renderer) SetWindowTitle(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg.Title = title
	if r.win != nil {
		r.win.SetTitle(title)
	}
}

func (r *Renderer) WindowTitle() string { return r.Config().Title }
func (r *Renderer) PointScale() int     { return r.Config().PointScale }

// ---- drawing (render goroutine, inside Tick) ----

// DrawPoint plots one point, centred on its pixel.
func (r *Renderer) DrawPoint(p geom.Vec2i) {
	if r.canvas == nil {
		return
	}
	r.canvas.Point(float32(p.X)+0.5, float32(p.Y)+0.5)
}

func (r *Renderer) DrawLine(p0, p1 geom.Vec2i) { shapes.Line(p0, p1, r.DrawPoint) }

func (r *Renderer) DrawRect(topLeft, size geom.Vec2i) { shapes.Rect(topLeft, size, r.DrawPoint) }

// DrawRectFill fills the rectangle; a zero width or height draws nothing.
func (r *Renderer) DrawRectFill(topLeft, size geom.Vec2i) { shapes.RectFill(topLeft, size, r.DrawPoint) }

// DrawText writes s with the built-in bitmap font, top-left at p.
func (r *Renderer) DrawText(p geom.Vec2i, s string) { text.Default().Draw(p, s, r.DrawPoint) }

// DrawClear repaints the whole frame with the clear colour and reopens the
// batch.
func (r *Renderer) DrawClear() {
	if r.canvas == nil {
		return
	}
	r.canvas.End()
	r.canvas.Clear()
	r.canvas.Begin()
}

// SetColor sets the colour of the following points.
func (r *Renderer) SetColor(c colors.Color) {
	r.mu.Lock()
	r.cfg.DrawColor = c
	r.mu.Unlock()
	if r.canvas != nil {
		r.canvas.SetColor(c)
	}
}
