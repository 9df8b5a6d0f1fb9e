package core

import "github.com/hubastard/pointpixel/engine/colors"

// Hooks are the per-phase callbacks the render loop invokes on its own
// goroutine. Each receives the renderer that runs them.
type Hooks interface {
	OnBegin(r *Renderer)    // once, after the window exists
	OnTick(r *Renderer)     // every frame, inside the open point batch
	OnTickLate(r *Renderer) // every frame, after the frame was presented
	OnFinish(r *Renderer)   // once, before the window is destroyed
}

// NopHooks can be embedded to implement only some phases.
type NopHooks struct{}

func (NopHooks) OnBegin(*Renderer)    {}
func (NopHooks) OnTick(*Renderer)     {}
func (NopHooks) OnTickLate(*Renderer) {}
func (NopHooks) OnFinish(*Renderer)   {}

// Window abstraction. Sizes and positions are physical pixels.
type Window interface {
	PollEvents()
	WaitEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	Destroy()
	Time() float64 // monotonic seconds
	Size() (int, int)
	SetSize(w, h int)
	Position() (int, int)
	SetPosition(x, y int)
	SetTitle(title string)
	SetCursorCallback(cb func(x, y float64))
}

// Canvas receives point batches. Coordinates are logical points.
type Canvas interface {
	Project(w, h int) // (0,0) top-left, (w,h) bottom-right
	SetPointSize(px float32)
	SetClearColor(c colors.Color)
	SetColor(c colors.Color)
	Begin()
	Point(x, y float32)
	End()
	Clear()
	Shutdown()
}

// WindowConfig is what a backend needs to open a window.
type WindowConfig struct {
	Title         string
	X, Y          int
	Width, Height int // physical pixels
}

// Backend creates the window and the canvas drawing into it. Both are called
// on the render goroutine, which is locked to its OS thread.
type Backend struct {
	NewWindow func(WindowConfig) (Window, error)
	NewCanvas func(Window) (Canvas, error)
}

// Config for a renderer. Width and Height are logical points; the window is
// PointScale times larger in each axis.
type Config struct {
	Title         string
	X, Y          int
	Width, Height int
	PointScale    int
	ClearColor    colors.Color
	DrawColor     colors.Color
	AutoClear     bool // clear before every Tick
	JoinOnStart   bool // Start blocks until the loop ends
	WaitEvents    bool // block on window events instead of polling
}

func DefaultConfig() Config {
	return Config{
		Title:      "PointRenderPixel",
		X:          33,
		Y:          33,
		Width:      256,
		Height:     256,
		PointScale: 4,
		ClearColor: colors.Black,
		DrawColor:  colors.White,
	}
}

func (c Config) validate() error {
	if c.PointScale < 1 {
		return invalidConfig("point scale %d < 1", c.PointScale)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return invalidConfig("window size %dx%d", c.Width, c.Height)
	}
	return nil
}
