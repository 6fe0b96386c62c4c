package gfx

import "github.com/qubicos/gfx/pixel"

// Bitmap blits. Sources are raw in-memory arrays supplied by the
// caller: 1-bit bitmaps are packed MSB-first with rows padded to a
// whole byte (LSB-first for the X-bitmap variant), 8-bit sources carry
// raw color values, 16-bit sources are RGB565. Masks are 1-bit,
// MSB-first, byte-padded rows.

// DrawBitmap blits a 1-bit bitmap: set bits become fg, clear bits stay
// transparent.
func (d *Device) DrawBitmap(x, y int16, bitmap []byte, w, h int16, fg pixel.Color) {
	if !d.blitVisible(x, y, w, h) {
		return
	}
	byteWidth := (w + 7) / 8
	var b byte

	d.sink.BeginWrite()
	for j := int16(0); j < h; j, y = j+1, y+1 {
		for i := int16(0); i < w; i++ {
			if i&7 != 0 {
				b <<= 1
			} else {
				b = bitmapByte(bitmap, int(j)*int(byteWidth)+int(i)/8)
			}
			if b&0x80 != 0 {
				d.WritePixel(x+i, y, fg)
			}
		}
	}
	d.sink.EndWrite()
}

// DrawBitmapOpaque blits a 1-bit bitmap drawing both states: set bits
// become fg, clear bits bg.
func (d *Device) DrawBitmapOpaque(x, y int16, bitmap []byte, w, h int16, fg, bg pixel.Color) {
	if !d.blitVisible(x, y, w, h) {
		return
	}
	byteWidth := (w + 7) / 8
	var b byte

	d.sink.BeginWrite()
	for j := int16(0); j < h; j, y = j+1, y+1 {
		for i := int16(0); i < w; i++ {
			if i&7 != 0 {
				b <<= 1
			} else {
				b = bitmapByte(bitmap, int(j)*int(byteWidth)+int(i)/8)
			}
			if b&0x80 != 0 {
				d.WritePixel(x+i, y, fg)
			} else {
				d.WritePixel(x+i, y, bg)
			}
		}
	}
	d.sink.EndWrite()
}

// DrawXBitmap blits a 1-bit bitmap in X-bitmap order, where
// left-to-right runs LSB to MSB.
func (d *Device) DrawXBitmap(x, y int16, bitmap []byte, w, h int16, fg pixel.Color) {
	if !d.blitVisible(x, y, w, h) {
		return
	}
	byteWidth := (w + 7) / 8
	var b byte

	d.sink.BeginWrite()
	for j := int16(0); j < h; j, y = j+1, y+1 {
		for i := int16(0); i < w; i++ {
			if i&7 != 0 {
				b >>= 1
			} else {
				b = bitmapByte(bitmap, int(j)*int(byteWidth)+int(i)/8)
			}
			if b&0x01 != 0 {
				d.WritePixel(x+i, y, fg)
			}
		}
	}
	d.sink.EndWrite()
}

// DrawGrayscaleBitmap blits an 8-bit source, each byte used directly as
// a raw color value.
func (d *Device) DrawGrayscaleBitmap(x, y int16, bitmap []byte, w, h int16) {
	if !d.blitVisible(x, y, w, h) {
		return
	}
	d.sink.BeginWrite()
	for j := int16(0); j < h; j, y = j+1, y+1 {
		for i := int16(0); i < w; i++ {
			d.WritePixel(x+i, y, pixel.Color(bitmapByte(bitmap, int(j)*int(w)+int(i))))
		}
	}
	d.sink.EndWrite()
}

// DrawGrayscaleBitmapMasked is DrawGrayscaleBitmap gated by a 1-bit
// mask; only pixels with a set mask bit are emitted.
func (d *Device) DrawGrayscaleBitmapMasked(x, y int16, bitmap, mask []byte, w, h int16) {
	if !d.blitVisible(x, y, w, h) {
		return
	}
	maskWidth := (w + 7) / 8
	var b byte

	d.sink.BeginWrite()
	for j := int16(0); j < h; j, y = j+1, y+1 {
		for i := int16(0); i < w; i++ {
			if i&7 != 0 {
				b <<= 1
			} else {
				b = bitmapByte(mask, int(j)*int(maskWidth)+int(i)/8)
			}
			if b&0x80 != 0 {
				d.WritePixel(x+i, y, pixel.Color(bitmapByte(bitmap, int(j)*int(w)+int(i))))
			}
		}
	}
	d.sink.EndWrite()
}

// DrawRGBBitmap blits a row-major RGB565 source through the address
// window, pushing whole clipped rows as spans.
func (d *Device) DrawRGBBitmap(x, y int16, colors []pixel.Color, w, h int16) {
	maxW, maxH := d.sink.Size()
	cx, cy, cw, ch, ok := clipRect(x, y, w, h, maxW, maxH)
	if !ok || w <= 0 {
		return
	}
	// Top-left of the clipped area within the source.
	bx := int(cx - x)
	by := int(cy - y)

	d.sink.BeginWrite()
	d.sink.SetWindow(cx, cy, cw, ch)
	for j := 0; j < int(ch); j++ {
		row := (by+j)*int(w) + bx
		if row < 0 || row+int(cw) > len(colors) {
			break
		}
		d.sink.WriteSpan(colors[row : row+int(cw)])
	}
	d.sink.EndWrite()
}

// DrawRGBBitmapMasked blits an RGB565 source gated by a 1-bit mask,
// composing non-rectangular sprites. Masked blits are per-pixel; there
// is no span fast path.
func (d *Device) DrawRGBBitmapMasked(x, y int16, colors []pixel.Color, mask []byte, w, h int16) {
	if !d.blitVisible(x, y, w, h) {
		return
	}
	maskWidth := (w + 7) / 8
	var b byte

	d.sink.BeginWrite()
	for j := int16(0); j < h; j, y = j+1, y+1 {
		for i := int16(0); i < w; i++ {
			if i&7 != 0 {
				b <<= 1
			} else {
				b = bitmapByte(mask, int(j)*int(maskWidth)+int(i)/8)
			}
			if b&0x80 != 0 {
				idx := int(j)*int(w) + int(i)
				if idx < len(colors) {
					d.WritePixel(x+i, y, colors[idx])
				}
			}
		}
	}
	d.sink.EndWrite()
}

// blitVisible is the shared clip-reject for per-pixel blits: no
// transaction opens when the destination box misses the screen.
func (d *Device) blitVisible(x, y, w, h int16) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	maxW, maxH := d.sink.Size()
	return boxVisible(int32(x), int32(y), int32(x)+int32(w)-1, int32(y)+int32(h)-1, maxW, maxH)
}

// bitmapByte reads a source byte, treating truncated sources as blank
// rather than faulting.
func bitmapByte(p []byte, i int) byte {
	if i < 0 || i >= len(p) {
		return 0
	}
	return p[i]
}
