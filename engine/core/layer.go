package core

// LayerStack runs several Hooks as one. Begin, Tick and TickLate visit the
// layers in push order; Finish visits them in reverse.
type LayerStack struct{ list []Hooks }

func (ls *LayerStack) Push(l Hooks) { ls.list = append(ls.list, l) }
func (ls *LayerStack) Pop() (Hooks, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) ForEach(f func(Hooks)) {
	for _, l := range ls.list {
		f(l)
	}
}

func (ls *LayerStack) ForEachReverse(f func(Hooks)) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		f(ls.list[i])
	}
}

func (ls *LayerStack) OnBegin(r *Renderer)    { ls.ForEach(func(l Hooks) { l.OnBegin(r) }) }
func (ls *LayerStack) OnTick(r *Renderer)     { ls.ForEach(func(l Hooks) { l.OnTick(r) }) }
func (ls *LayerStack) OnTickLate(r *Renderer) { ls.ForEach(func(l Hooks) { l.OnTickLate(r) }) }
func (ls *LayerStack) OnFinish(r *Renderer)   { ls.ForEachReverse(func(l Hooks) { l.OnFinish(r) }) }
