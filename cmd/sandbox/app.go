package main

import (
	"fmt"
	"image"

	"github.com/hubastard/pointpixel/engine/core"
	"github.com/hubastard/pointpixel/engine/text"
)

// App holds what the layers share.
type App struct {
	title   string
	sprite  *image.RGBA
	font    *text.Font
	lastFPS uint
}

// OnTickLate shows the frame rate in the title once per second.
func (a *App) OnTickLate(r *core.Renderer) {
	if fps := r.FPS(); fps != a.lastFPS {
		a.lastFPS = fps
		r.SetWindowTitle(fmt.Sprintf("%s (%d fps)", a.title, fps))
	}
}
