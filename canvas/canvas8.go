package canvas

import (
	"github.com/qubicos/gfx"
	"github.com/qubicos/gfx/pixel"
)

// Canvas8 is an 8-bit sink, one byte per pixel; the low byte of the
// color is stored as a raw value.
type Canvas8 struct {
	buf  []byte
	w, h int16
	rot  gfx.Rotation
	win  window
}

// New8 allocates a w x h 8-bit canvas.
func New8(w, h int16) *Canvas8 {
	c := &Canvas8{w: w, h: h}
	if w > 0 && h > 0 {
		c.buf = make([]byte, int(w)*int(h))
	}
	return c
}

// Buffer exposes the backing bytes, row-major over the raw grid. The
// canvas keeps ownership.
func (c *Canvas8) Buffer() []byte { return c.buf }

// RawSize returns the pre-rotation dimensions.
func (c *Canvas8) RawSize() (w, h int16) { return c.w, c.h }

func (c *Canvas8) Size() (w, h int16) { return logicalSize(c.rot, c.w, c.h) }

func (c *Canvas8) SetRotation(r gfx.Rotation) { c.rot = r & 3 }

func (c *Canvas8) Rotation() gfx.Rotation { return c.rot }

func (c *Canvas8) BeginWrite() {}
func (c *Canvas8) EndWrite()   {}

func (c *Canvas8) SetWindow(x, y, w, h int16) { c.win.set(x, y, w) }

func (c *Canvas8) WritePixel(x, y int16, col pixel.Color) {
	rx, ry := rawPoint(c.rot, x, y, c.w, c.h)
	c.setRaw(rx, ry, byte(col))
}

func (c *Canvas8) WriteSpan(colors []pixel.Color) {
	for _, col := range colors {
		x, y := c.win.next()
		c.WritePixel(x, y, col)
	}
}

func (c *Canvas8) WriteSolid(col pixel.Color, n int) {
	for i := 0; i < n; i++ {
		x, y := c.win.next()
		c.WritePixel(x, y, col)
	}
}

// SetPixel writes one pixel with bounds checking in logical
// coordinates.
func (c *Canvas8) SetPixel(x, y int16, col pixel.Color) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.WritePixel(x, y, col)
}

// Pixel reads one pixel back in logical coordinates.
func (c *Canvas8) Pixel(x, y int16) byte {
	w, h := c.Size()
	if c.buf == nil || x < 0 || y < 0 || x >= w || y >= h {
		return 0
	}
	rx, ry := rawPoint(c.rot, x, y, c.w, c.h)
	return c.buf[int(ry)*int(c.w)+int(rx)]
}

// FillScreen fills the buffer with the color's low byte in one pass.
func (c *Canvas8) FillScreen(col pixel.Color) {
	b := byte(col)
	for i := range c.buf {
		c.buf[i] = b
	}
}

// Fill implements the whole-surface fill capability.
func (c *Canvas8) Fill(col pixel.Color) { c.FillScreen(col) }

// WriteHLine fills a pre-clipped horizontal run. At rotation 0 and 180
// the run is contiguous in the raw buffer and fills directly; at 90 and
// 270 a logical horizontal is a raw column, so it conservatively falls
// back to per-pixel writes.
func (c *Canvas8) WriteHLine(x, y, w int16, col pixel.Color) {
	if c.buf == nil || w <= 0 {
		return
	}
	switch c.rot & 3 {
	case 0, 2:
		sx := x
		if c.rot&3 == 2 {
			// Point reflection reverses the run; start from the raw
			// position of the logical right end.
			sx = x + w - 1
		}
		rx, ry := rawPoint(c.rot, sx, y, c.w, c.h)
		if ry < 0 || ry >= c.h || rx < 0 || int(rx)+int(w) > int(c.w) {
			return
		}
		row := int(ry) * int(c.w)
		b := byte(col)
		for i := 0; i < int(w); i++ {
			c.buf[row+int(rx)+i] = b
		}
	default:
		for i := int16(0); i < w; i++ {
			c.WritePixel(x+i, y, col)
		}
	}
}

// WriteRect fills a pre-clipped rectangle row by row.
func (c *Canvas8) WriteRect(x, y, w, h int16, col pixel.Color) {
	for j := int16(0); j < h; j++ {
		c.WriteHLine(x, y+j, w, col)
	}
}

func (c *Canvas8) setRaw(x, y int16, b byte) {
	if c.buf == nil || x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.buf[int(y)*int(c.w)+int(x)] = b
}
