// Package pointpixel gives access to the process-wide point renderer.
//
//	r := pointpixel.GetInstance()
//	r.Construct("demo", geom.V(40, 40), geom.V(160, 120), 4)
//	r.SetOnTick(func(r *core.Renderer) { r.DrawLine(geom.V(0, 0), geom.V(159, 119)) })
//	r.SetJoinOnStart(true)
//	if err := r.Start(); err != nil {
//		log.Fatal(err)
//	}
package pointpixel

import (
	"sync"

	"github.com/hubastard/pointpixel/engine/core"
	"github.com/hubastard/pointpixel/engine/platform"
)

var (
	once     sync.Once
	instance *core.Renderer
)

// GetInstance returns the renderer, creating it with the default config and
// the GLFW backend on first use.
func GetInstance() *core.Renderer {
	return Instance(platform.GLFW(true))
}

// Instance returns the renderer, creating it with backend on first use.
// Later calls return the same renderer and ignore backend.
func Instance(backend core.Backend) *core.Renderer {
	once.Do(func() {
		instance = core.New(core.DefaultConfig(), backend)
	})
	return instance
}
