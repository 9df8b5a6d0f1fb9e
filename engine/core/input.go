package core

import (
	"math"
	"sync/atomic"

	"github.com/hubastard/pointpixel/engine/geom"
)

// cursor keeps the last pointer position in logical points, packed into one
// word so the window callback and any reader never race.
type cursor struct{ v atomic.Uint64 }

func (c *cursor) store(p geom.Vec2i) {
	c.v.Store(uint64(uint32(int32(p.X)))<<32 | uint64(uint32(int32(p.Y))))
}

func (c *cursor) load() geom.Vec2i {
	v := c.v.Load()
	return geom.Vec2i{X: int(int32(uint32(v >> 32))), Y: int(int32(uint32(v)))}
}

// handleMove converts a physical pointer position into points.
func (c *cursor) handleMove(x, y float64, scale int) {
	s := float64(scale)
	c.store(geom.Vec2i{X: int(math.Floor(x / s)), Y: int(math.Floor(y / s))})
}
