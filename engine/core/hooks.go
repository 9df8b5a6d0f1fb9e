package core

import "sync"

// HookFunc fills a single hook slot.
type HookFunc func(r *Renderer)

// hookSlots holds the four replaceable callbacks. A slot may be swapped from
// any goroutine; the loop picks the new one up the next time it runs that
// phase.
type hookSlots struct {
	mu                            sync.RWMutex
	begin, tick, tickLate, finish HookFunc
}

func nop(*Renderer) {}

func newHookSlots() *hookSlots {
	return &hookSlots{begin: nop, tick: nop, tickLate: nop, finish: nop}
}

func orNop(f HookFunc) HookFunc {
	if f == nil {
		return nop
	}
	return f
}

func (h *hookSlots) set(slot *HookFunc, f HookFunc) {
	h.mu.Lock()
	*slot = orNop(f)
	h.mu.Unlock()
}

func (h *hookSlots) get(slot *HookFunc) HookFunc {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return *slot
}

func (h *hookSlots) install(hooks Hooks) {
	if hooks == nil {
		hooks = NopHooks{}
	}
	h.mu.Lock()
	h.begin = hooks.OnBegin
	h.tick = hooks.OnTick
	h.tickLate = hooks.OnTickLate
	h.finish = hooks.OnFinish
	h.mu.Unlock()
}

// SetOnBegin replaces the Begin slot; nil restores the no-op.
func (r *Renderer) SetOnBegin(f HookFunc) { r.hooks.set(&r.hooks.begin, f) }

// SetOnTick replaces the Tick slot; nil restores the no-op.
func (r *Renderer) SetOnTick(f HookFunc) { r.hooks.set(&r.hooks.tick, f) }

// SetOnTickLate replaces the TickLate slot; nil restores the no-op.
func (r *Renderer) SetOnTickLate(f HookFunc) { r.hooks.set(&r.hooks.tickLate, f) }

// SetOnFinish replaces the Finish slot; nil restores the no-op.
func (r *Renderer) SetOnFinish(f HookFunc) { r.hooks.set(&r.hooks.finish, f) }

// SetHooks fills all four slots from h.
func (r *Renderer) SetHooks(h Hooks) { r.hooks.install(h) }
