package colors

import "image/color"

// Color is a straight-alpha RGBA colour with components in [0..1].
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGBA implements color.Color (alpha-premultiplied, 16 bits per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	a = unit16(c[3])
	r = unit16(c[0]) * a / 0xffff
	g = unit16(c[1]) * a / 0xffff
	b = unit16(c[2]) * a / 0xffff
	return
}

// RGBA8 converts to an 8-bit premultiplied color.RGBA.
func (c Color) RGBA8() color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromColor converts any image colour into a Color.
func FromColor(in color.Color) Color {
	n := color.NRGBAModel.Convert(in).(color.NRGBA)
	return Color{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}

func unit16(f float32) uint32 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 0xffff
	}
	return uint32(f*0xffff + 0.5)
}
