package geom

// Vec2i is an integer 2D vector. Drawing coordinates are in logical points.
type Vec2i struct{ X, Y int }

// Vec2f is a float 2D vector.
type Vec2f struct{ X, Y float32 }

func V(x, y int) Vec2i { return Vec2i{X: x, Y: y} }

func (v Vec2i) Add(o Vec2i) Vec2i     { return Vec2i{v.X + o.X, v.Y + o.Y} }
func (v Vec2i) Sub(o Vec2i) Vec2i     { return Vec2i{v.X - o.X, v.Y - o.Y} }
func (v Vec2i) Mul(k int) Vec2i       { return Vec2i{v.X * k, v.Y * k} }
func (v Vec2i) Div(k int) Vec2i       { return Vec2i{v.X / k, v.Y / k} }
func (v Vec2i) Float() Vec2f          { return Vec2f{float32(v.X), float32(v.Y)} }
func (v Vec2i) Less(o Vec2i) bool     { return v.X < o.X || (v.X == o.X && v.Y < o.Y) }
func (v Vec2i) Positive() bool        { return v.X > 0 && v.Y > 0 }
func (v Vec2f) Add(o Vec2f) Vec2f     { return Vec2f{v.X + o.X, v.Y + o.Y} }
func (v Vec2f) Scale(k float32) Vec2f { return Vec2f{v.X * k, v.Y * k} }

// Sign returns -1, 0 or 1.
func Sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
