package main

import (
	"log/slog"
	"math"

	"github.com/hubastard/pointpixel/engine/colors"
	"github.com/hubastard/pointpixel/engine/core"
	"github.com/hubastard/pointpixel/engine/geom"
)

// ------- shapes demo -------
type Layer2D struct {
	core.NopHooks
	app *App
	t   float64
}

func (l *Layer2D) OnBegin(r *core.Renderer) {
	slog.Info("sandbox begin", "size", r.WindowSize(), "scale", r.PointScale())
}

func (l *Layer2D) OnTick(r *core.Renderer) {
	l.t += r.DeltaTime()
	size := r.WindowSize()

	// frame
	r.SetColor(colors.Yellow)
	r.DrawRect(geom.V(1, 1), size.Sub(geom.V(3, 3)))

	// sweeping hand
	c := size.Div(2)
	radius := float64(min(c.X, c.Y) - 4)
	end := geom.V(c.X+int(radius*math.Cos(l.t)), c.Y+int(radius*math.Sin(l.t)))
	r.SetColor(colors.Cyan)
	r.DrawLine(c, end)

	// pulsing square; at size 0 nothing is drawn
	pulse := int(4 + 4*math.Sin(l.t*3))
	r.SetColor(colors.Magenta)
	r.DrawRectFill(geom.V(4, size.Y-5), geom.V(pulse, -pulse))

	if l.app.sprite != nil {
		l.drawSprite(r, geom.V(size.X-l.app.sprite.Rect.Dx()-4, size.Y-l.app.sprite.Rect.Dy()-4))
	}

	// cursor crosshair
	cur := r.Cursor()
	r.SetColor(colors.Red)
	r.DrawLine(cur.Sub(geom.V(2, 0)), cur.Add(geom.V(2, 0)))
	r.DrawLine(cur.Sub(geom.V(0, 2)), cur.Add(geom.V(0, 2)))
}

func (l *Layer2D) drawSprite(r *core.Renderer, at geom.Vec2i) {
	img := l.app.sprite
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.RGBAAt(x, y)
			if px.A < 128 {
				continue
			}
			r.SetColor(colors.FromColor(px))
			r.DrawPoint(at.Add(geom.V(x-b.Min.X, y-b.Min.Y)))
		}
	}
}
