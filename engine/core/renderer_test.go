package core

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hubastard/pointpixel/engine/colors"
	"github.com/hubastard/pointpixel/engine/geom"
)

// closeAfter installs a Tick hook that runs each and closes the window on
// frame n.
func closeAfter(r *Renderer, n int, each func(r *Renderer, frame int)) {
	frame := 0
	r.SetOnTick(func(r *Renderer) {
		frame++
		if each != nil {
			each(r, frame)
		}
		if frame == n {
			r.Close()
		}
	})
}

func waitState(t *testing.T, r *Renderer, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for r.State() != want {
		if time.Now().After(deadline) {
			t.Fatalf("state = %v, want %v", r.State(), want)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestThreeFrameScenario(t *testing.T) {
	fb := newFakeBackend(1.0 / 60)
	r := New(DefaultConfig(), fb.backend())
	if err := r.Construct("Test", geom.V(0, 0), geom.V(100, 100), 2); err != nil {
		t.Fatalf("Construct: %v", err)
	}

	var events []string
	r.SetOnBegin(func(*Renderer) { events = append(events, "begin") })
	closeAfter(r, 3, func(r *Renderer, _ int) {
		events = append(events, "tick")
		r.DrawPoint(geom.V(5, 5))
	})
	r.SetOnTickLate(func(*Renderer) { events = append(events, "late") })
	r.SetOnFinish(func(*Renderer) { events = append(events, "finish") })
	r.SetJoinOnStart(true)

	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	want := "begin tick late tick late tick late finish"
	if got := strings.Join(events, " "); got != want {
		t.Fatalf("events = %q, want %q", got, want)
	}
	if len(fb.requested) != 1 {
		t.Fatalf("NewWindow called %d times, want 1", len(fb.requested))
	}
	if req := fb.requested[0]; req.Width != 200 || req.Height != 200 || req.Title != "Test" {
		t.Fatalf("requested window %+v, want 200x200 titled Test", req)
	}
	if len(fb.canvas.points) != 3 || fb.canvas.outOfBatch != 0 {
		t.Fatalf("points = %v (outside batch %d), want 3 inside", fb.canvas.points, fb.canvas.outOfBatch)
	}
	for _, p := range fb.canvas.points {
		if p != (geom.Vec2f{X: 5.5, Y: 5.5}) {
			t.Fatalf("point %v, want centred {5.5 5.5}", p)
		}
	}
	if fb.canvas.pointSize != 2 || fb.canvas.projected[0] != geom.V(100, 100) {
		t.Fatalf("canvas point size %v projection %v", fb.canvas.pointSize, fb.canvas.projected)
	}
	if fb.win.swaps != 3 || !fb.win.destroyed || !fb.canvas.shutdown {
		t.Fatalf("swaps=%d destroyed=%v shutdown=%v", fb.win.swaps, fb.win.destroyed, fb.canvas.shutdown)
	}
	if s := r.State(); s != StateClosed {
		t.Fatalf("state = %v, want closed", s)
	}
}

func TestStartGateIsSingleShot(t *testing.T) {
	fb := newFakeBackend(0.01)
	r := New(DefaultConfig(), fb.backend())

	waitState(t, r, StateWaitingForStart)
	time.Sleep(10 * time.Millisecond)
	if r.State() != StateWaitingForStart || r.IsRunning() {
		t.Fatalf("loop left the gate before Start: state=%v running=%v", r.State(), r.IsRunning())
	}

	begins := 0
	r.SetOnBegin(func(*Renderer) { begins++ })
	closeAfter(r, 2, nil)

	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.Start(); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if err := r.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if err := r.Start(); err != nil {
		t.Fatalf("Start after close: %v", err)
	}
	if err := r.Wait(); err != nil {
		t.Fatalf("second Wait: %v", err)
	}

	if begins != 1 || len(fb.requested) != 1 || r.Frames() != 2 {
		t.Fatalf("begins=%d windows=%d frames=%d, want 1/1/2", begins, len(fb.requested), r.Frames())
	}
	if !r.IsRunning() {
		t.Fatal("IsRunning reset after the loop ended")
	}
}

func TestWindowCreationFailure(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*fakeBackend)
		wantErr error
	}{
		{"error", func(b *fakeBackend) { b.windowErr = errors.New("no display") }, ErrWindowCreation},
		{"nil window", func(b *fakeBackend) { b.nilWindow = true }, ErrWindowCreation},
		{"canvas", func(b *fakeBackend) { b.canvasErr = errors.New("no gl") }, ErrCanvasCreation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := newFakeBackend(0.01)
			tt.setup(fb)
			r := New(DefaultConfig(), fb.backend())
			called := false
			r.SetOnBegin(func(*Renderer) { called = true })
			r.SetOnFinish(func(*Renderer) { called = true })
			r.SetJoinOnStart(true)

			err := r.Start()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Start() = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(r.Err(), tt.wantErr) || !errors.Is(r.Wait(), tt.wantErr) {
				t.Fatalf("Err/Wait lost the failure: %v / %v", r.Err(), r.Wait())
			}
			if called {
				t.Fatal("hooks ran without a window")
			}
			if tt.wantErr == ErrCanvasCreation && !fb.win.destroyed {
				t.Fatal("window leaked after canvas failure")
			}
		})
	}
}

func TestWindowCreationFailureMessage(t *testing.T) {
	fb := newFakeBackend(0.01)
	fb.windowErr = errors.New("no display")
	r := New(DefaultConfig(), fb.backend())
	r.Start()
	err := r.Wait()
	if err == nil || !strings.Contains(err.Error(), "window creation failed") {
		t.Fatalf("err = %v, want window creation failed", err)
	}
}

func TestConstructValidation(t *testing.T) {
	r := New(DefaultConfig(), newFakeBackend(0.01).backend())
	tests := []struct {
		name  string
		size  geom.Vec2i
		scale int
	}{
		{"zero scale", geom.V(10, 10), 0},
		{"zero width", geom.V(0, 10), 1},
		{"negative height", geom.V(10, -1), 1},
	}
	for _, tt := range tests {
		if err := r.Construct("x", geom.V(0, 0), tt.size, tt.scale); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: Construct() = %v, want ErrInvalidConfig", tt.name, err)
		}
	}
	if got := r.Config(); got.Title != "PointRenderPixel" || got.PointScale != 4 {
		t.Fatalf("rejected Construct changed config: %+v", got)
	}
}

func TestInvalidConfigFailsBeforeWindow(t *testing.T) {
	fb := newFakeBackend(0.01)
	cfg := DefaultConfig()
	cfg.PointScale = 0
	r := New(cfg, fb.backend())
	r.Start()
	if err := r.Wait(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Wait() = %v, want ErrInvalidConfig", err)
	}
	if len(fb.requested) != 0 {
		t.Fatal("window requested with invalid config")
	}
}

func TestConstructAfterStart(t *testing.T) {
	fb := newFakeBackend(0.01)
	r := New(DefaultConfig(), fb.backend())
	closeAfter(r, 1, nil)
	r.Start()
	if err := r.Construct("late", geom.V(0, 0), geom.V(10, 10), 1); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("Construct after Start = %v, want ErrAlreadyStarted", err)
	}
	if err := r.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestTimingPublished(t *testing.T) {
	fb := newFakeBackend(0.25)
	r := New(DefaultConfig(), fb.backend())
	var firstDelta = -1.0
	closeAfter(r, 9, func(r *Renderer, frame int) {
		if frame == 1 {
			firstDelta = r.DeltaTime()
		}
	})
	r.SetJoinOnStart(true)
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	if firstDelta != 0 {
		t.Fatalf("first frame delta = %v, want 0", firstDelta)
	}
	if r.DeltaTime() != 0.25 || r.FPS() != 4 || r.Frames() != 9 {
		t.Fatalf("delta=%v fps=%d frames=%d, want 0.25/4/9", r.DeltaTime(), r.FPS(), r.Frames())
	}
}

func TestCursorInPoints(t *testing.T) {
	fb := newFakeBackend(0.01)
	r := New(DefaultConfig(), fb.backend())
	if err := r.Construct("c", geom.V(0, 0), geom.V(50, 50), 2); err != nil {
		t.Fatal(err)
	}
	var seen []geom.Vec2i
	closeAfter(r, 2, func(r *Renderer, frame int) {
		seen = append(seen, r.Cursor())
		if frame == 1 {
			fb.win.queueMove(-0.5, 99.9)
		}
	})
	fb.win.queueMove(11, 7)
	r.SetJoinOnStart(true)
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	want := []geom.Vec2i{geom.V(5, 3), geom.V(-1, 49)}
	if len(seen) != 2 || seen[0] != want[0] || seen[1] != want[1] {
		t.Fatalf("cursor = %v, want %v", seen, want)
	}
}

func TestLiveWindowSetters(t *testing.T) {
	fb := newFakeBackend(0.01)
	r := New(DefaultConfig(), fb.backend())
	if got := r.WindowSize(); got != geom.V(256, 256) {
		t.Fatalf("cached WindowSize() = %v", got)
	}

	var size, pos geom.Vec2i
	closeAfter(r, 2, func(r *Renderer, frame int) {
		if frame != 1 {
			return
		}
		r.SetWindowSize(geom.V(50, 40))
		r.SetWindowPosition(geom.V(7, 8))
		r.SetWindowTitle("renamed")
		size, pos = r.WindowSize(), r.WindowPosition()
	})
	r.SetJoinOnStart(true)
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}

	if fb.win.w != 200 || fb.win.h != 160 || size != geom.V(50, 40) {
		t.Fatalf("window %dx%d, WindowSize %v", fb.win.w, fb.win.h, size)
	}
	if pos != geom.V(7, 8) || fb.win.title != "renamed" || r.WindowTitle() != "renamed" {
		t.Fatalf("pos %v title %q/%q", pos, fb.win.title, r.WindowTitle())
	}
	if n := len(fb.canvas.projected); n != 2 || fb.canvas.projected[1] != geom.V(50, 40) {
		t.Fatalf("projections = %v, want re-projection to 50x40", fb.canvas.projected)
	}
}

func TestHookReplacedWhileRunning(t *testing.T) {
	fb := newFakeBackend(0.01)
	r := New(DefaultConfig(), fb.backend())
	var calls []string
	r.SetOnTick(func(r *Renderer) {
		calls = append(calls, "old")
		r.SetOnTick(func(r *Renderer) {
			calls = append(calls, "new")
			r.Close()
		})
	})
	r.SetJoinOnStart(true)
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(calls, ","); got != "old,new" {
		t.Fatalf("calls = %s, want old,new", got)
	}
}

func TestFrameOptions(t *testing.T) {
	fb := newFakeBackend(0.01)
	cfg := DefaultConfig()
	cfg.WaitEvents = true
	cfg.AutoClear = true
	cfg.JoinOnStart = true
	r := New(cfg, fb.backend())
	closeAfter(r, 3, func(r *Renderer, frame int) {
		if frame == 2 {
			r.SetColor(colors.Red)
			r.DrawClear()
		}
	})
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	if fb.win.waits != 3 || fb.win.polls != 0 {
		t.Fatalf("waits=%d polls=%d, want 3/0", fb.win.waits, fb.win.polls)
	}
	if fb.canvas.clears != 4 || fb.canvas.batches != 4 {
		t.Fatalf("clears=%d batches=%d, want 4/4", fb.canvas.clears, fb.canvas.batches)
	}
	if fb.canvas.color != colors.Red {
		t.Fatalf("color = %v, want red", fb.canvas.color)
	}
}

func TestDrawingWithoutCanvasIsIgnored(t *testing.T) {
	r := New(DefaultConfig(), newFakeBackend(0.01).backend())
	r.DrawPoint(geom.V(1, 1))
	r.DrawRectFill(geom.V(0, 0), geom.V(0, 5))
	r.DrawClear()
	r.Close()
	if r.Err() != nil {
		t.Fatalf("Err() before loop end = %v", r.Err())
	}
}

func TestFrameOptionsChangedWhileRunning(t *testing.T) {
	fb := newFakeBackend(0.01)
	r := New(DefaultConfig(), fb.backend())
	r.SetJoinOnStart(true)
	closeAfter(r, 3, func(r *Renderer, frame int) {
		if frame == 1 {
			r.SetWaitEvents(true)
			r.SetAutoClear(true)
		}
	})
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	if fb.win.polls != 1 || fb.win.waits != 2 {
		t.Fatalf("polls=%d waits=%d, want 1/2", fb.win.polls, fb.win.waits)
	}
	if fb.canvas.clears != 2 {
		t.Fatalf("clears = %d, want 2", fb.canvas.clears)
	}
}
