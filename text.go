package gfx

import (
	"fmt"
	"io"

	"github.com/qubicos/gfx/gfxfont"
	"github.com/qubicos/gfx/pixel"
)

// SetCursor moves the text cursor.
func (d *Device) SetCursor(x, y int16) {
	d.cursorX, d.cursorY = x, y
}

// Cursor returns the text cursor position.
func (d *Device) Cursor() (x, y int16) { return d.cursorX, d.cursorY }

// SetTextColor sets the foreground and makes the background
// transparent.
func (d *Device) SetTextColor(c pixel.Color) {
	d.textColor, d.textBg = c, c
}

// SetTextColorBG sets foreground and opaque background. Opaque
// backgrounds only apply to the classic fixed-cell font.
func (d *Device) SetTextColorBG(c, bg pixel.Color) {
	d.textColor, d.textBg = c, bg
}

// SetTextSize sets the integer glyph magnification. Zero is treated as
// one.
func (d *Device) SetTextSize(s uint8) {
	if s < 1 {
		s = 1
	}
	d.textSize = s
}

// SetTextWrap controls wrapping at the right edge.
func (d *Device) SetTextWrap(on bool) { d.wrap = on }

// SetCP437 enables true CP437 indexing for the classic font. Off keeps
// the historical off-by-one above codepoint 176 that old sketches
// depend on.
func (d *Device) SetCP437(on bool) { d.cp437 = on }

// SetFont selects a proportional font, or nil to return to the classic
// font. The cursor shifts by six pixels so the baseline convention of
// the new font family lines up with the old cursor position.
func (d *Device) SetFont(f *gfxfont.Font) {
	if f != nil && d.font == nil {
		d.cursorY += 6
	} else if f == nil && d.font != nil {
		d.cursorY -= 6
	}
	d.font = f
}

// Font returns the current proportional font, nil for the classic one.
func (d *Device) Font() *gfxfont.Font { return d.font }

// Write renders p at the cursor, implementing io.Writer so a Device
// works with fmt. It always reports len(p) written.
func (d *Device) Write(p []byte) (int, error) {
	for _, c := range p {
		d.stepText(c, &d.cursorX, &d.cursorY, func(gx, gy int16, c byte) {
			d.DrawChar(gx, gy, c, d.textColor, d.textBg, d.textSize)
		})
	}
	return len(p), nil
}

// WriteString renders s at the cursor.
func (d *Device) WriteString(s string) (int, error) {
	return io.WriteString(d, s)
}

// Printf formats and renders at the cursor.
func (d *Device) Printf(format string, args ...any) {
	fmt.Fprintf(d, format, args...)
}

// Println renders the operands followed by a newline.
func (d *Device) Println(args ...any) {
	fmt.Fprintln(d, args...)
}

// stepText advances (*x, *y) across one character: newline and carriage
// return handling, wrap, and x-advance. When the character has visible
// ink, visit is called with the glyph origin before the advance. Both
// the draw path and TextBounds step through here, so layout decisions
// cannot diverge between measuring and rendering.
func (d *Device) stepText(c byte, x, y *int16, visit func(gx, gy int16, c byte)) {
	width := d.Width()
	size := int16(d.textSize)

	if d.font == nil {
		switch c {
		case '\n':
			*x = 0
			*y += size * 8
		case '\r':
		default:
			if d.wrap && *x+size*6 > width {
				*x = 0
				*y += size * 8
			}
			visit(*x, *y, c)
			*x += size * 6
		}
		return
	}

	switch c {
	case '\n':
		*x = 0
		*y += size * int16(d.font.YAdvance)
	case '\r':
	default:
		g, ok := d.font.Glyph(c)
		if !ok {
			return
		}
		if g.Width > 0 && g.Height > 0 {
			if d.wrap && *x+size*(int16(g.XOffset)+int16(g.Width)) > width {
				*x = 0
				*y += size * int16(d.font.YAdvance)
			}
			visit(*x, *y, c)
		}
		*x += size * int16(g.XAdvance)
	}
}

// DrawChar renders a single character with explicit colors and size,
// inside its own write. For the classic font (x, y) is the top-left of
// the 6x8 cell and bg != fg paints the cell background; proportional
// fonts take (x, y) as the baseline origin and have no background mode,
// since overlapping variable-width glyphs make background erase
// ill-defined.
func (d *Device) DrawChar(x, y int16, c byte, fg, bg pixel.Color, size uint8) {
	s := int16(size)
	if s < 1 {
		s = 1
	}
	if d.font == nil {
		d.drawClassicChar(x, y, c, fg, bg, s)
		return
	}
	d.drawFontChar(x, y, c, fg, s)
}

func (d *Device) drawClassicChar(x, y int16, c byte, fg, bg pixel.Color, s int16) {
	maxW, maxH := d.sink.Size()
	if x >= maxW || y >= maxH || int32(x)+int32(s)*6-1 < 0 || int32(y)+int32(s)*8-1 < 0 {
		return
	}
	cc := gfxfont.ClassicIndex(c, d.cp437)

	d.sink.BeginWrite()
	for i := int16(0); i < 5; i++ {
		line := gfxfont.ClassicColumn(cc, int(i))
		for j := int16(0); j < 8; j, line = j+1, line>>1 {
			if line&1 != 0 {
				if s == 1 {
					d.WritePixel(x+i, y+j, fg)
				} else {
					d.WriteFillRect(x+i*s, y+j*s, s, s, fg)
				}
			} else if bg != fg {
				if s == 1 {
					d.WritePixel(x+i, y+j, bg)
				} else {
					d.WriteFillRect(x+i*s, y+j*s, s, s, bg)
				}
			}
		}
	}
	if bg != fg {
		// Opaque mode also paints the cell's spacing column.
		if s == 1 {
			d.WriteVLine(x+5, y, 8, bg)
		} else {
			d.WriteFillRect(x+5*s, y, s, 8*s, bg)
		}
	}
	d.sink.EndWrite()
}

func (d *Device) drawFontChar(x, y int16, c byte, fg pixel.Color, s int16) {
	g, ok := d.font.Glyph(c)
	if !ok || g.Width == 0 || g.Height == 0 {
		return
	}

	maxW, maxH := d.sink.Size()
	gx := int32(x) + int32(g.XOffset)*int32(s)
	gy := int32(y) + int32(g.YOffset)*int32(s)
	if !boxVisible(gx, gy, gx+int32(g.Width)*int32(s)-1, gy+int32(g.Height)*int32(s)-1, maxW, maxH) {
		return
	}

	xo, yo := int16(g.XOffset), int16(g.YOffset)

	d.sink.BeginWrite()
	for yy := int16(0); yy < int16(g.Height); yy++ {
		for xx := int16(0); xx < int16(g.Width); xx++ {
			if !d.font.SetBit(g, int(xx), int(yy)) {
				continue
			}
			if s == 1 {
				d.WritePixel(x+xo+xx, y+yo+yy, fg)
			} else {
				d.WriteFillRect(x+(xo+xx)*s, y+(yo+yy)*s, s, s, fg)
			}
		}
	}
	d.sink.EndWrite()
}

// TextBounds measures the bounding box the string would cover if drawn
// with the cursor starting at (x, y). It replays the exact stepping
// logic of the draw path.
func (d *Device) TextBounds(s string, x, y int16) (x1, y1 int16, w, h uint16) {
	scrW, scrH := d.sink.Size()
	minX, minY := scrW, scrH
	maxX, maxY := int16(-1), int16(-1)
	size := int16(d.textSize)
	if size < 1 {
		size = 1
	}

	x1, y1 = x, y
	for i := 0; i < len(s); i++ {
		d.stepText(s[i], &x, &y, func(gx, gy int16, c byte) {
			var bx1, by1, bx2, by2 int16
			if d.font == nil {
				bx1, by1 = gx, gy
				bx2 = gx + size*6 - 1
				by2 = gy + size*8 - 1
			} else {
				g, ok := d.font.Glyph(c)
				if !ok {
					return
				}
				bx1 = gx + int16(g.XOffset)*size
				by1 = gy + int16(g.YOffset)*size
				bx2 = bx1 + int16(g.Width)*size - 1
				by2 = by1 + int16(g.Height)*size - 1
			}
			minX = min16(minX, bx1)
			minY = min16(minY, by1)
			maxX = max16(maxX, bx2)
			maxY = max16(maxY, by2)
		})
	}

	if maxX >= minX {
		x1 = minX
		w = uint16(maxX - minX + 1)
	}
	if maxY >= minY {
		y1 = minY
		h = uint16(maxY - minY + 1)
	}
	return x1, y1, w, h
}
