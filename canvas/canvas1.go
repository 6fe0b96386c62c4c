package canvas

import (
	"github.com/qubicos/gfx"
	"github.com/qubicos/gfx/pixel"
)

// Canvas1 is a monochrome sink packing 8 pixels per byte, MSB first,
// with each row padded to a whole byte. Any nonzero color is "on".
type Canvas1 struct {
	buf  []byte
	w, h int16
	rot  gfx.Rotation
	win  window
}

// New1 allocates a w x h monochrome canvas.
func New1(w, h int16) *Canvas1 {
	c := &Canvas1{w: w, h: h}
	if w > 0 && h > 0 {
		c.buf = make([]byte, (int(w)+7)/8*int(h))
	}
	return c
}

// Buffer exposes the backing bytes, row-major from the top-left of the
// raw (unrotated) grid. The canvas keeps ownership.
func (c *Canvas1) Buffer() []byte { return c.buf }

// RawSize returns the pre-rotation dimensions.
func (c *Canvas1) RawSize() (w, h int16) { return c.w, c.h }

func (c *Canvas1) Size() (w, h int16) { return logicalSize(c.rot, c.w, c.h) }

func (c *Canvas1) SetRotation(r gfx.Rotation) { c.rot = r & 3 }

func (c *Canvas1) Rotation() gfx.Rotation { return c.rot }

func (c *Canvas1) BeginWrite() {}
func (c *Canvas1) EndWrite()   {}

func (c *Canvas1) SetWindow(x, y, w, h int16) { c.win.set(x, y, w) }

func (c *Canvas1) WritePixel(x, y int16, col pixel.Color) {
	rx, ry := rawPoint(c.rot, x, y, c.w, c.h)
	c.setRaw(rx, ry, col != 0)
}

func (c *Canvas1) WriteSpan(colors []pixel.Color) {
	for _, col := range colors {
		x, y := c.win.next()
		c.WritePixel(x, y, col)
	}
}

func (c *Canvas1) WriteSolid(col pixel.Color, n int) {
	on := col != 0
	for i := 0; i < n; i++ {
		x, y := c.win.next()
		rx, ry := rawPoint(c.rot, x, y, c.w, c.h)
		c.setRaw(rx, ry, on)
	}
}

// SetPixel writes one pixel with bounds checking in logical
// coordinates.
func (c *Canvas1) SetPixel(x, y int16, col pixel.Color) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.WritePixel(x, y, col)
}

// Pixel reads one pixel back in logical coordinates.
func (c *Canvas1) Pixel(x, y int16) bool {
	w, h := c.Size()
	if c.buf == nil || x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	rx, ry := rawPoint(c.rot, x, y, c.w, c.h)
	i := int(ry)*((int(c.w)+7)/8) + int(rx)/8
	return c.buf[i]&(0x80>>(uint(rx)&7)) != 0
}

// FillScreen sets every pixel in one memory pass keyed by the color's
// truthiness.
func (c *Canvas1) FillScreen(col pixel.Color) {
	b := byte(0x00)
	if col != 0 {
		b = 0xFF
	}
	for i := range c.buf {
		c.buf[i] = b
	}
}

// Fill implements the whole-surface fill capability.
func (c *Canvas1) Fill(col pixel.Color) { c.FillScreen(col) }

// WriteRect fills a pre-clipped rectangle per pixel.
func (c *Canvas1) WriteRect(x, y, w, h int16, col pixel.Color) {
	on := col != 0
	for j := int16(0); j < h; j++ {
		for i := int16(0); i < w; i++ {
			rx, ry := rawPoint(c.rot, x+i, y+j, c.w, c.h)
			c.setRaw(rx, ry, on)
		}
	}
}

func (c *Canvas1) setRaw(x, y int16, on bool) {
	if c.buf == nil || x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i := int(y)*((int(c.w)+7)/8) + int(x)/8
	mask := byte(0x80) >> (uint(x) & 7)
	if on {
		c.buf[i] |= mask
	} else {
		c.buf[i] &^= mask
	}
}
