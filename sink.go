// Package gfx rasterizes shape requests into pixel and span writes on a
// Sink: lines, circles, triangles, rectangles, bitmaps and text, all
// clipped to the sink's visible area before anything is written.
//
// A Sink is any transactional pixel target: an SPI-style display bus
// (package spitft), an in-memory canvas (package canvas), or an adapted
// tinygo driver (DisplayerSink). Rendering is single-threaded and
// synchronous; a sink holds at most one open write at a time.
package gfx

import (
	"tinygo.org/x/drivers"

	"github.com/qubicos/gfx/pixel"
)

// Rotation selects one of four quarter-turn orientations.
type Rotation uint8

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// Odd reports whether the rotation swaps width and height.
func (r Rotation) Odd() bool { return r&1 != 0 }

// Sink is the minimal pixel target the rasterizer draws on.
//
// BeginWrite and EndWrite bracket one logical drawing operation; they
// do not nest. SetWindow declares the rectangular region the following
// span writes fill in row-major order; callers must pass in-bounds,
// positive parameters. WritePixel writes exactly one pixel with no
// bounds checking; clipping is the caller's job. All writes happen
// inside an open write.
type Sink interface {
	Size() (w, h int16)
	BeginWrite()
	EndWrite()
	SetWindow(x, y, w, h int16)
	WritePixel(x, y int16, c pixel.Color)
	WriteSpan(colors []pixel.Color)
	WriteSolid(c pixel.Color, n int)
}

// Optional sink capabilities, discovered by type assertion. A sink
// implements these only where it has a faster native path; the
// rasterizer's generic fallbacks stay correct without them. Geometry
// passed to the Write* capability methods is pre-clipped.

// RectWriter fills an axis-aligned rectangle natively.
type RectWriter interface {
	WriteRect(x, y, w, h int16, c pixel.Color)
}

// HLineWriter fills a horizontal run natively.
type HLineWriter interface {
	WriteHLine(x, y, w int16, c pixel.Color)
}

// VLineWriter fills a vertical run natively.
type VLineWriter interface {
	WriteVLine(x, y, h int16, c pixel.Color)
}

// Filler clears the whole surface natively.
type Filler interface {
	Fill(c pixel.Color)
}

// RotationSetter reorients the sink's logical coordinate space.
type RotationSetter interface {
	SetRotation(r Rotation)
}

// Inverter toggles display color inversion.
type Inverter interface {
	SetInverted(on bool)
}

// Flusher pushes buffered pixels to the physical output.
type Flusher interface {
	Display() error
}

// DisplayerSink adapts a tinygo driver's Displayer into a Sink. Windowed
// span writes are emulated with a cursor over per-pixel SetPixel calls;
// Display is forwarded.
type DisplayerSink struct {
	disp drivers.Displayer
	win  window
}

// NewDisplayerSink wraps disp. The displayer must clip or tolerate any
// coordinates its Size admits.
func NewDisplayerSink(disp drivers.Displayer) *DisplayerSink {
	return &DisplayerSink{disp: disp}
}

func (s *DisplayerSink) Size() (w, h int16) { return s.disp.Size() }
func (s *DisplayerSink) BeginWrite()        {}
func (s *DisplayerSink) EndWrite()          {}

func (s *DisplayerSink) SetWindow(x, y, w, h int16) { s.win.set(x, y, w) }

func (s *DisplayerSink) WritePixel(x, y int16, c pixel.Color) {
	s.disp.SetPixel(x, y, c.RGBA())
}

func (s *DisplayerSink) WriteSpan(colors []pixel.Color) {
	for _, c := range colors {
		x, y := s.win.next()
		s.disp.SetPixel(x, y, c.RGBA())
	}
}

func (s *DisplayerSink) WriteSolid(c pixel.Color, n int) {
	rgba := c.RGBA()
	for i := 0; i < n; i++ {
		x, y := s.win.next()
		s.disp.SetPixel(x, y, rgba)
	}
}

// Display implements Flusher.
func (s *DisplayerSink) Display() error { return s.disp.Display() }

// window tracks the cursor of an emulated address window.
type window struct {
	x, y, w int16
	cx, cy  int16
}

func (w *window) set(x, y, wid int16) {
	w.x, w.y, w.w = x, y, wid
	w.cx, w.cy = 0, 0
}

func (w *window) next() (x, y int16) {
	x, y = w.x+w.cx, w.y+w.cy
	w.cx++
	if w.cx >= w.w {
		w.cx = 0
		w.cy++
	}
	return x, y
}
