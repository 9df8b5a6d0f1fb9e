// Package profiler records nested timing spans from the render loop into a
// fixed ring and writes them as a speedscope evented profile.
//
// Recording is off until Enable is called; Start is then cheap enough to
// wrap every frame.
package profiler

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

var ErrNoSpans = errors.New("profiler: no spans recorded")

// Enable starts recording into a ring holding the latest capacity span
// edges. Calling it again discards what was recorded.
func Enable(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	rec.reset(capacity)
}

// Disable stops recording. Recorded spans stay available to Write.
func Disable() { rec.on.Store(false) }

func Enabled() bool { return rec.on.Load() }

// Start opens a span and returns the func closing it:
//
//	defer profiler.Start("frame")()
func Start(name string) func() {
	if !rec.on.Load() {
		return func() {}
	}
	id := names.id(name)
	begin := now()
	rec.push(edge{at: begin, name: id, open: true})
	return func() {
		end := max(now(), begin)
		rec.push(edge{at: end, name: id})
	}
}

// Write dumps the recorded spans to path. The file is replaced atomically.
func Write(path string) error {
	doc, err := build(rec.snapshot(), names.list())
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

var now = func() int64 { return time.Now().UnixNano() }

// ---------- ring ----------

type edge struct {
	at   int64
	name int
	open bool
}

type ring struct {
	mu    sync.RWMutex
	on    atomic.Bool
	next  atomic.Uint64
	edges []edge
}

var rec ring

func (r *ring) reset(capacity int) {
	r.mu.Lock()
	r.edges = make([]edge, capacity)
	r.next.Store(0)
	r.mu.Unlock()
	r.on.Store(true)
}

func (r *ring) push(e edge) {
	r.mu.RLock()
	if n := uint64(len(r.edges)); n > 0 {
		r.edges[(r.next.Add(1)-1)%n] = e
	}
	r.mu.RUnlock()
}

// snapshot returns the kept edges oldest first.
func (r *ring) snapshot() []edge {
	r.mu.Lock()
	defer r.mu.Unlock()
	total, size := r.next.Load(), uint64(len(r.edges))
	if total == 0 || size == 0 {
		return nil
	}
	first := uint64(0)
	if total > size {
		first = total - size
	}
	out := make([]edge, 0, total-first)
	for i := first; i < total; i++ {
		out = append(out, r.edges[i%size])
	}
	return out
}

// ---------- span names ----------

type nameTable struct {
	mu  sync.Mutex
	ids map[string]int
	all []string
}

var names = nameTable{ids: map[string]int{}}

func (t *nameTable) id(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[name]; ok {
		return id
	}
	t.ids[name] = len(t.all)
	t.all = append(t.all, name)
	return len(t.all) - 1
}

func (t *nameTable) list() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.all...)
}
