package gfx

import (
	"image/color"

	"github.com/qubicos/gfx/gfxfont"
	"github.com/qubicos/gfx/pixel"
)

// Device rasterizes shapes and text onto a Sink.
//
// Draw* and Fill* methods are self-contained: each clips first, opens
// exactly one write on the sink only when something survives clipping,
// and closes it before returning. Write* methods are their
// transaction-free counterparts for composition inside a write the
// caller already holds open.
type Device struct {
	sink Sink

	cursorX, cursorY int16
	textColor        pixel.Color
	textBg           pixel.Color
	textSize         uint8
	wrap             bool
	cp437            bool
	font             *gfxfont.Font
}

// NewDevice builds a rasterizer over s. Text defaults: white on
// transparent, size 1, wrapping on, classic font.
func NewDevice(s Sink) *Device {
	return &Device{
		sink:      s,
		textColor: pixel.White,
		textBg:    pixel.White,
		textSize:  1,
		wrap:      true,
	}
}

// Sink returns the underlying pixel target.
func (d *Device) Sink() Sink { return d.sink }

// Size returns the rotation-adjusted dimensions of the sink.
func (d *Device) Size() (w, h int16) { return d.sink.Size() }

func (d *Device) Width() int16 {
	w, _ := d.sink.Size()
	return w
}

func (d *Device) Height() int16 {
	_, h := d.sink.Size()
	return h
}

// SetRotation forwards to the sink when it supports reorientation.
func (d *Device) SetRotation(r Rotation) {
	if rs, ok := d.sink.(RotationSetter); ok {
		rs.SetRotation(r)
	}
}

// InvertDisplay forwards to the sink when it supports inversion.
func (d *Device) InvertDisplay(on bool) {
	if inv, ok := d.sink.(Inverter); ok {
		inv.SetInverted(on)
	}
}

// Display flushes the sink when it buffers output. Sinks without a
// flush step report success.
func (d *Device) Display() error {
	if f, ok := d.sink.(Flusher); ok {
		return f.Display()
	}
	return nil
}

// SetPixel implements drivers.Displayer so tinyfont and tinyterm can
// render through a Device onto any sink.
func (d *Device) SetPixel(x, y int16, c color.RGBA) {
	d.DrawPixel(x, y, pixel.FromRGBA(c))
}

// DrawPixel writes one clipped pixel inside its own write.
func (d *Device) DrawPixel(x, y int16, c pixel.Color) {
	w, h := d.sink.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	d.sink.BeginWrite()
	d.sink.WritePixel(x, y, c)
	d.sink.EndWrite()
}

// WritePixel writes one clipped pixel inside an already open write.
func (d *Device) WritePixel(x, y int16, c pixel.Color) {
	w, h := d.sink.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	d.sink.WritePixel(x, y, c)
}

// FillRect fills a rectangle. A negative extent grows away from the
// origin; fully clipped rectangles cost nothing.
func (d *Device) FillRect(x, y, w, h int16, c pixel.Color) {
	maxW, maxH := d.sink.Size()
	cx, cy, cw, ch, ok := clipRect(x, y, w, h, maxW, maxH)
	if !ok {
		return
	}
	d.sink.BeginWrite()
	d.fillRectClipped(cx, cy, cw, ch, c)
	d.sink.EndWrite()
}

// WriteFillRect is FillRect without the transaction.
func (d *Device) WriteFillRect(x, y, w, h int16, c pixel.Color) {
	maxW, maxH := d.sink.Size()
	cx, cy, cw, ch, ok := clipRect(x, y, w, h, maxW, maxH)
	if !ok {
		return
	}
	d.fillRectClipped(cx, cy, cw, ch, c)
}

func (d *Device) fillRectClipped(x, y, w, h int16, c pixel.Color) {
	if rw, ok := d.sink.(RectWriter); ok {
		rw.WriteRect(x, y, w, h, c)
		return
	}
	d.sink.SetWindow(x, y, w, h)
	d.sink.WriteSolid(c, int(w)*int(h))
}

// DrawHLine draws a horizontal run starting at (x, y).
func (d *Device) DrawHLine(x, y, w int16, c pixel.Color) {
	maxW, maxH := d.sink.Size()
	if y < 0 || y >= maxH {
		return
	}
	cx, cw, ok := clipSpan(x, w, maxW)
	if !ok {
		return
	}
	d.sink.BeginWrite()
	d.hlineClipped(cx, y, cw, c)
	d.sink.EndWrite()
}

// WriteHLine is DrawHLine without the transaction.
func (d *Device) WriteHLine(x, y, w int16, c pixel.Color) {
	maxW, maxH := d.sink.Size()
	if y < 0 || y >= maxH {
		return
	}
	cx, cw, ok := clipSpan(x, w, maxW)
	if !ok {
		return
	}
	d.hlineClipped(cx, y, cw, c)
}

func (d *Device) hlineClipped(x, y, w int16, c pixel.Color) {
	if hw, ok := d.sink.(HLineWriter); ok {
		hw.WriteHLine(x, y, w, c)
		return
	}
	d.fillRectClipped(x, y, w, 1, c)
}

// DrawVLine draws a vertical run starting at (x, y).
func (d *Device) DrawVLine(x, y, h int16, c pixel.Color) {
	maxW, maxH := d.sink.Size()
	if x < 0 || x >= maxW {
		return
	}
	cy, ch, ok := clipSpan(y, h, maxH)
	if !ok {
		return
	}
	d.sink.BeginWrite()
	d.vlineClipped(x, cy, ch, c)
	d.sink.EndWrite()
}

// WriteVLine is DrawVLine without the transaction.
func (d *Device) WriteVLine(x, y, h int16, c pixel.Color) {
	maxW, maxH := d.sink.Size()
	if x < 0 || x >= maxW {
		return
	}
	cy, ch, ok := clipSpan(y, h, maxH)
	if !ok {
		return
	}
	d.vlineClipped(x, cy, ch, c)
}

func (d *Device) vlineClipped(x, y, h int16, c pixel.Color) {
	if vw, ok := d.sink.(VLineWriter); ok {
		vw.WriteVLine(x, y, h, c)
		return
	}
	d.fillRectClipped(x, y, 1, h, c)
}

// DrawRect outlines a rectangle.
func (d *Device) DrawRect(x, y, w, h int16, c pixel.Color) {
	maxW, maxH := d.sink.Size()
	nx, ny, nw, nh, ok := normalizeRect(x, y, w, h)
	if !ok || !boxVisible(int32(nx), int32(ny), int32(nx)+int32(nw)-1, int32(ny)+int32(nh)-1, maxW, maxH) {
		return
	}
	d.sink.BeginWrite()
	d.WriteHLine(nx, ny, nw, c)
	d.WriteHLine(nx, ny+nh-1, nw, c)
	d.WriteVLine(nx, ny, nh, c)
	d.WriteVLine(nx+nw-1, ny, nh, c)
	d.sink.EndWrite()
}

// FillScreen fills the whole surface.
func (d *Device) FillScreen(c pixel.Color) {
	if f, ok := d.sink.(Filler); ok {
		f.Fill(c)
		return
	}
	w, h := d.sink.Size()
	d.FillRect(0, 0, w, h, c)
}

// DrawLine draws a line between two points, inclusive. Horizontal and
// vertical lines route to span fills.
func (d *Device) DrawLine(x0, y0, x1, y1 int16, c pixel.Color) {
	switch {
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		d.DrawVLine(x0, y0, y1-y0+1, c)
	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		d.DrawHLine(x0, y0, x1-x0+1, c)
	default:
		maxW, maxH := d.sink.Size()
		if !boxVisible(int32(x0), int32(y0), int32(x1), int32(y1), maxW, maxH) {
			return
		}
		d.sink.BeginWrite()
		d.writeDiagonal(x0, y0, x1, y1, c)
		d.sink.EndWrite()
	}
}

// WriteLine is DrawLine without the transaction.
func (d *Device) WriteLine(x0, y0, x1, y1 int16, c pixel.Color) {
	switch {
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		d.WriteVLine(x0, y0, y1-y0+1, c)
	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		d.WriteHLine(x0, y0, x1-x0+1, c)
	default:
		d.writeDiagonal(x0, y0, x1, y1, c)
	}
}

// writeDiagonal runs integer Bresenham over the major axis, swapping
// axes for steep slopes. Pixels are clipped one by one so offscreen
// endpoints are safe.
func (d *Device) writeDiagonal(x0, y0, x1, y1 int16, c pixel.Color) {
	steep := abs16(y1-y0) > abs16(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs16(y1 - y0)
	err := dx / 2
	ystep := int16(-1)
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			d.WritePixel(y0, x0, c)
		} else {
			d.WritePixel(x0, y0, c)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// normalizeRect flips negative extents so (x, y) is the top-left
// corner. ok is false for empty rectangles.
func normalizeRect(x, y, w, h int16) (int16, int16, int16, int16, bool) {
	if w == 0 || h == 0 {
		return 0, 0, 0, 0, false
	}
	if w < 0 {
		x += w + 1
		w = -w
	}
	if h < 0 {
		y += h + 1
		h = -h
	}
	return x, y, w, h, true
}
