package main

import (
	"fmt"
	"log/slog"

	"github.com/hubastard/pointpixel/engine/colors"
	"github.com/hubastard/pointpixel/engine/core"
	"github.com/hubastard/pointpixel/engine/geom"
)

// ------- stats overlay -------
type LayerDebug struct {
	core.NopHooks
	app *App
}

func (l *LayerDebug) OnTick(r *core.Renderer) {
	font := l.app.font
	r.SetColor(colors.White)
	font.Draw(geom.V(4, 3), fmt.Sprintf("%d fps", r.FPS()), r.DrawPoint)

	r.SetColor(colors.Gray)
	font.Draw(geom.V(4, 3+font.LineHeight()), fmt.Sprintf("frame %d", r.Frames()), r.DrawPoint)
}

func (l *LayerDebug) OnFinish(r *core.Renderer) {
	slog.Info("sandbox finished", "frames", r.Frames(), "fps", r.FPS())
}
