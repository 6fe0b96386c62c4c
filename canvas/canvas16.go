package canvas

import (
	"github.com/qubicos/gfx"
	"github.com/qubicos/gfx/pixel"
)

// Canvas16 is an RGB565 sink storing two bytes per pixel,
// little-endian, row-major over the raw grid.
type Canvas16 struct {
	buf  []byte
	w, h int16
	rot  gfx.Rotation
	win  window
}

// New16 allocates a w x h RGB565 canvas.
func New16(w, h int16) *Canvas16 {
	c := &Canvas16{w: w, h: h}
	if w > 0 && h > 0 {
		c.buf = make([]byte, int(w)*int(h)*2)
	}
	return c
}

// Buffer exposes the backing bytes (little-endian RGB565 pairs). The
// canvas keeps ownership.
func (c *Canvas16) Buffer() []byte { return c.buf }

// RawSize returns the pre-rotation dimensions.
func (c *Canvas16) RawSize() (w, h int16) { return c.w, c.h }

func (c *Canvas16) Size() (w, h int16) { return logicalSize(c.rot, c.w, c.h) }

func (c *Canvas16) SetRotation(r gfx.Rotation) { c.rot = r & 3 }

func (c *Canvas16) Rotation() gfx.Rotation { return c.rot }

func (c *Canvas16) BeginWrite() {}
func (c *Canvas16) EndWrite()   {}

func (c *Canvas16) SetWindow(x, y, w, h int16) { c.win.set(x, y, w) }

func (c *Canvas16) WritePixel(x, y int16, col pixel.Color) {
	rx, ry := rawPoint(c.rot, x, y, c.w, c.h)
	c.setRaw(rx, ry, col)
}

func (c *Canvas16) WriteSpan(colors []pixel.Color) {
	for _, col := range colors {
		x, y := c.win.next()
		c.WritePixel(x, y, col)
	}
}

func (c *Canvas16) WriteSolid(col pixel.Color, n int) {
	for i := 0; i < n; i++ {
		x, y := c.win.next()
		c.WritePixel(x, y, col)
	}
}

// SetPixel writes one pixel with bounds checking in logical
// coordinates.
func (c *Canvas16) SetPixel(x, y int16, col pixel.Color) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.WritePixel(x, y, col)
}

// Pixel reads one pixel back in logical coordinates.
func (c *Canvas16) Pixel(x, y int16) pixel.Color {
	w, h := c.Size()
	if c.buf == nil || x < 0 || y < 0 || x >= w || y >= h {
		return 0
	}
	rx, ry := rawPoint(c.rot, x, y, c.w, c.h)
	off := (int(ry)*int(c.w) + int(rx)) * 2
	return pixel.Color(uint16(c.buf[off]) | uint16(c.buf[off+1])<<8)
}

// FillScreen fills the surface, short-circuiting to a single byte fill
// when both color bytes are equal.
func (c *Canvas16) FillScreen(col pixel.Color) {
	hi, lo := byte(col>>8), byte(col)
	if hi == lo {
		for i := range c.buf {
			c.buf[i] = lo
		}
		return
	}
	for i := 0; i+1 < len(c.buf); i += 2 {
		c.buf[i] = lo
		c.buf[i+1] = hi
	}
}

// Fill implements the whole-surface fill capability.
func (c *Canvas16) Fill(col pixel.Color) { c.FillScreen(col) }

// WriteHLine fills a pre-clipped horizontal run, contiguously at
// rotation 0 and 180, per pixel otherwise.
func (c *Canvas16) WriteHLine(x, y, w int16, col pixel.Color) {
	if c.buf == nil || w <= 0 {
		return
	}
	switch c.rot & 3 {
	case 0, 2:
		sx := x
		if c.rot&3 == 2 {
			sx = x + w - 1
		}
		rx, ry := rawPoint(c.rot, sx, y, c.w, c.h)
		if ry < 0 || ry >= c.h || rx < 0 || int(rx)+int(w) > int(c.w) {
			return
		}
		hi, lo := byte(col>>8), byte(col)
		off := (int(ry)*int(c.w) + int(rx)) * 2
		for i := 0; i < int(w); i++ {
			c.buf[off] = lo
			c.buf[off+1] = hi
			off += 2
		}
	default:
		for i := int16(0); i < w; i++ {
			c.WritePixel(x+i, y, col)
		}
	}
}

// WriteRect fills a pre-clipped rectangle row by row.
func (c *Canvas16) WriteRect(x, y, w, h int16, col pixel.Color) {
	for j := int16(0); j < h; j++ {
		c.WriteHLine(x, y+j, w, col)
	}
}

func (c *Canvas16) setRaw(x, y int16, col pixel.Color) {
	if c.buf == nil || x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	off := (int(y)*int(c.w) + int(x)) * 2
	c.buf[off] = byte(col)
	c.buf[off+1] = byte(col >> 8)
}
