package gfxfont

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Fonter returns a tinyfont view of f so the font can drive tinyfont
// and tinyterm consumers directly. Concurrent access is not safe due to
// internal glyph reuse.
func (f *Font) Fonter() tinyfont.Fonter {
	return &fonter{f: f}
}

type fonter struct {
	f *Font
	g bridgeGlyph
}

func (fr *fonter) GetYAdvance() uint8 { return fr.f.YAdvance }

func (fr *fonter) GetGlyph(r rune) tinyfont.Glypher {
	fr.g = bridgeGlyph{f: fr.f, r: r}
	return &fr.g
}

type bridgeGlyph struct {
	f *Font
	r rune
}

func (g *bridgeGlyph) lookup() (Glyph, bool) {
	r := g.r
	if r < 0 || r > 0xFF {
		r = '?'
	}
	if gl, ok := g.f.Glyph(byte(r)); ok {
		return gl, true
	}
	return g.f.Glyph('?')
}

func (g *bridgeGlyph) Info() tinyfont.GlyphInfo {
	gl, ok := g.lookup()
	if !ok {
		return tinyfont.GlyphInfo{Rune: g.r}
	}
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    gl.Width,
		Height:   gl.Height,
		XAdvance: gl.XAdvance,
		XOffset:  gl.XOffset,
		YOffset:  gl.YOffset,
	}
}

func (g *bridgeGlyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	gl, ok := g.lookup()
	if !ok {
		return
	}
	for yy := 0; yy < int(gl.Height); yy++ {
		for xx := 0; xx < int(gl.Width); xx++ {
			if g.f.SetBit(gl, xx, yy) {
				display.SetPixel(x+int16(gl.XOffset)+int16(xx), y+int16(gl.YOffset)+int16(yy), c)
			}
		}
	}
}
