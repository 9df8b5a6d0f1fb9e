// Package text draws strings as points from font coverage masks.
package text

import (
	"image"

	"github.com/hubastard/pointpixel/engine/geom"
	"github.com/hubastard/pointpixel/engine/gfx/shapes"
	"golang.org/x/image/math/fixed"
)

// coverage above half intensity lights a point
const threshold = 0x8000

// Draw plots s with its top-left corner at p. Newlines start a new line
// LineHeight points further down.
func (f *Font) Draw(p geom.Vec2i, s string, plot shapes.PlotFunc) {
	dot := fixed.P(p.X, p.Y+f.Ascent)
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			dot.X = fixed.I(p.X)
			dot.Y += fixed.I(f.LineHeight())
			prev = -1
			continue
		}
		if prev >= 0 {
			dot.X += f.Face.Kern(prev, r)
		}

		dr, mask, mp, adv, ok := f.Face.Glyph(dot, r)
		if !ok {
			dr, mask, mp, adv, ok = f.Face.Glyph(dot, '?')
		}
		if ok {
			plotMask(dr, mask, mp, plot)
		}
		dot.X += adv
		prev = r
	}
}

func plotMask(dr image.Rectangle, mask image.Image, mp image.Point, plot shapes.PlotFunc) {
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
			if a >= threshold {
				plot(geom.Vec2i{X: x, Y: y})
			}
		}
	}
}

// Measure returns the width and height in points that Draw covers for s.
func (f *Font) Measure(s string) geom.Vec2i {
	var w, lineW fixed.Int26_6
	lines := 1
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			w = max(w, lineW)
			lineW = 0
			lines++
			prev = -1
			continue
		}
		if prev >= 0 {
			lineW += f.Face.Kern(prev, r)
		}
		adv, ok := f.Face.GlyphAdvance(r)
		if !ok {
			adv, _ = f.Face.GlyphAdvance('?')
		}
		lineW += adv
		prev = r
	}
	w = max(w, lineW)

	h := f.Ascent + f.Descent + (lines-1)*f.LineHeight()
	return geom.Vec2i{X: w.Ceil(), Y: h}
}
