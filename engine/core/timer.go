package core

// FrameTimer derives delta time and frames per second from a clock sampled
// once per frame. FPS is the frame count of the last completed one-second
// window.
type FrameTimer struct {
	started bool
	last    float64
	delta   float64
	frames  uint
	fps     uint
	accum   float64
	total   uint64
}

// Advance records a frame at time now (seconds). It returns true when a
// one-second window closed and FPS was updated.
func (t *FrameTimer) Advance(now float64) bool {
	if t.started {
		t.delta = now - t.last
	} else {
		t.started = true
		t.delta = 0
	}
	t.last = now
	t.total++

	t.frames++
	t.accum += t.delta
	if t.accum < 1.0 {
		return false
	}
	t.fps = t.frames
	t.frames = 0
	t.accum = 0
	return true
}

func (t *FrameTimer) Delta() float64 { return t.delta }
func (t *FrameTimer) FPS() uint      { return t.fps }
func (t *FrameTimer) Frames() uint64 { return t.total }
