// Package soft implements a CPU point canvas. Points land on a logical
// image (one pixel per point) which is scaled up to physical pixels when a
// window presents it.
package soft

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/hubastard/pointpixel/engine/colors"
	xdraw "golang.org/x/image/draw"
)

type Canvas struct {
	img      *image.RGBA
	color    color.RGBA
	clear    color.RGBA
	scale    int
	batching bool
	points   int
}

func New() *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, 1, 1)),
		color: colors.White.RGBA8(),
		clear: colors.Black.RGBA8(),
		scale: 1,
	}
}

// Project resizes the logical image to w x h points. Contents are cleared
// when the size changes.
func (c *Canvas) Project(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	if b := c.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	c.Clear()
}

func (c *Canvas) SetPointSize(px float32) {
	if s := int(px); s >= 1 {
		c.scale = s
	}
}

func (c *Canvas) SetColor(col colors.Color)      { c.color = col.RGBA8() }
func (c *Canvas) SetClearColor(col colors.Color) { c.clear = col.RGBA8() }

func (c *Canvas) Begin() {
	c.batching = true
	c.points = 0
}

// Point sets the pixel containing (x, y). Points outside a batch or outside
// the image are dropped.
func (c *Canvas) Point(x, y float32) {
	if !c.batching {
		return
	}
	px, py := int(math.Floor(float64(x))), int(math.Floor(float64(y)))
	if !(image.Point{X: px, Y: py}).In(c.img.Rect) {
		return
	}
	c.img.SetRGBA(px, py, c.color)
	c.points++
}

func (c *Canvas) End() { c.batching = false }

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.clear), image.Point{}, draw.Src)
}

func (c *Canvas) Shutdown() {}

// Image returns the logical image. It is replaced by Project.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Points reports how many points the current (or last) batch set.
func (c *Canvas) Points() int { return c.points }

// PhysicalSize is the logical size multiplied by the point size.
func (c *Canvas) PhysicalSize() (int, int) {
	b := c.img.Bounds()
	return b.Dx() * c.scale, b.Dy() * c.scale
}

// Present scales the logical image by the point size into dst at offset.
func (c *Canvas) Present(dst draw.Image, offset image.Point) {
	w, h := c.PhysicalSize()
	r := image.Rect(0, 0, w, h).Add(offset)
	xdraw.NearestNeighbor.Scale(dst, r, c.img, c.img.Bounds(), xdraw.Src, nil)
}
