// Package shapes turns geometry into lattice points. Every function is
// stateless and reports each point through a PlotFunc, so callers decide
// where the points land (a GL batch, an image, a test recorder).
package shapes

import "github.com/hubastard/pointpixel/engine/geom"

// PlotFunc receives one lattice point.
type PlotFunc func(p geom.Vec2i)

// Line walks the Bresenham line between p0 and p1, both endpoints included.
// The walk always starts at the lesser endpoint (x, then y), so swapping the
// arguments yields the same points.
func Line(p0, p1 geom.Vec2i, plot PlotFunc) {
	if p1.Less(p0) {
		p0, p1 = p1, p0
	}

	dx := geom.Abs(p1.X - p0.X)
	dy := -geom.Abs(p1.Y - p0.Y)
	sx, sy := geom.Sign(p1.X-p0.X), geom.Sign(p1.Y-p0.Y)
	err := dx + dy

	x, y := p0.X, p0.Y
	for {
		plot(geom.Vec2i{X: x, Y: y})
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Rect outlines the rectangle spanning topLeft..topLeft+size with four lines.
func Rect(topLeft, size geom.Vec2i, plot PlotFunc) {
	tr := topLeft.Add(geom.Vec2i{X: size.X})
	br := topLeft.Add(size)
	bl := topLeft.Add(geom.Vec2i{Y: size.Y})

	Line(topLeft, tr, plot)
	Line(tr, br, plot)
	Line(br, bl, plot)
	Line(bl, topLeft, plot)
}

// RectFill plots one point per lattice cell of the rectangle. The far edge is
// exclusive and negative sizes grow up/left from topLeft. A rectangle with a
// zero dimension covers no cells and plots nothing.
func RectFill(topLeft, size geom.Vec2i, plot PlotFunc) {
	if size.X == 0 || size.Y == 0 {
		return
	}
	sx, sy := geom.Sign(size.X), geom.Sign(size.Y)
	end := topLeft.Add(size)

	for y := topLeft.Y; y != end.Y; y += sy {
		for x := topLeft.X; x != end.X; x += sx {
			plot(geom.Vec2i{X: x, Y: y})
		}
	}
}

// Collect runs draw with a recorder and returns the plotted points in order.
func Collect(draw func(PlotFunc)) []geom.Vec2i {
	var pts []geom.Vec2i
	draw(func(p geom.Vec2i) { pts = append(pts, p) })
	return pts
}
