// Package gfxfont models bitmap fonts for the rasterizer: a built-in
// fixed 5x8 table and externally generated proportional fonts.
//
// Fonts are read-only once built and are referenced, not owned, by the
// devices drawing with them; a font must outlive every device using it.
package gfxfont

// Glyph describes one character of a proportional font. Offsets are
// relative to the text baseline; the bitmap is packed MSB-first in the
// shared Bitmap blob starting at BitmapOffset.
type Glyph struct {
	BitmapOffset uint16
	Width        uint8
	Height       uint8
	XAdvance     uint8
	XOffset      int8
	YOffset      int8
}

// Font is a proportional bitmap font covering the contiguous character
// range First..Last.
type Font struct {
	Bitmap   []byte
	Glyphs   []Glyph
	First    byte
	Last     byte
	YAdvance uint8
}

// Glyph returns the glyph record for c, or false when c is outside the
// font's range.
func (f *Font) Glyph(c byte) (Glyph, bool) {
	if f == nil || c < f.First || c > f.Last {
		return Glyph{}, false
	}
	i := int(c - f.First)
	if i >= len(f.Glyphs) {
		return Glyph{}, false
	}
	return f.Glyphs[i], true
}

// SetBit reports whether pixel (x, y) of g is set. Out-of-range
// coordinates and truncated bitmaps read as unset.
func (f *Font) SetBit(g Glyph, x, y int) bool {
	if x < 0 || y < 0 || x >= int(g.Width) || y >= int(g.Height) {
		return false
	}
	bit := y*int(g.Width) + x
	i := int(g.BitmapOffset) + bit/8
	if i >= len(f.Bitmap) {
		return false
	}
	return f.Bitmap[i]&(0x80>>(uint(bit)&7)) != 0
}
