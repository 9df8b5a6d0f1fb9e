package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Font is a glyph source whose coverage masks are turned into points.
// One mask pixel becomes one logical point.
type Font struct {
	Face                     font.Face
	Ascent, Descent, LineGap int
	closeFace                func()
}

var defaultFont = newFont(basicfont.Face7x13, nil)

// Default returns the built-in 7x13 bitmap font.
func Default() *Font { return defaultFont }

func (f *Font) Close() {
	if f != nil && f.closeFace != nil {
		f.closeFace()
		f.closeFace = nil
	}
}

// LoadTTF parses a TrueType/OpenType file at the given pixel size. Small
// sizes (8..16) read best at one point per pixel.
func LoadTTF(path string, sizePx float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return newFont(face, func() { _ = face.Close() }), nil
}

func newFont(face font.Face, closeFace func()) *Font {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	return &Font{
		Face:      face,
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   max(m.Height.Ceil()-ascent-descent, 0),
		closeFace: closeFace,
	}
}

// LineHeight is the distance between consecutive baselines, in points.
func (f *Font) LineHeight() int { return f.Ascent + f.Descent + f.LineGap }
