package gfx_test

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/qubicos/gfx"
	"github.com/qubicos/gfx/canvas"
	"github.com/qubicos/gfx/pixel"
)

// recorder is a bare Sink capturing every write for inspection. It has
// no optional capabilities, so every draw exercises the generic
// fallback paths, and it flags writes that land out of bounds or
// outside an open write.
type recorder struct {
	w, h int16

	begins, ends int
	open         bool
	badTxn       bool
	oob          bool

	pix map[[2]int16]pixel.Color

	winX, winY, winW int16
	cx, cy           int16
	lastWin          [4]int16
	windows          int
	solidPixels      int
}

func newRecorder(w, h int16) *recorder {
	return &recorder{w: w, h: h, pix: make(map[[2]int16]pixel.Color)}
}

func (r *recorder) Size() (int16, int16) { return r.w, r.h }

func (r *recorder) BeginWrite() {
	if r.open {
		r.badTxn = true
	}
	r.open = true
	r.begins++
}

func (r *recorder) EndWrite() {
	if !r.open {
		r.badTxn = true
	}
	r.open = false
	r.ends++
}

func (r *recorder) SetWindow(x, y, w, h int16) {
	r.winX, r.winY, r.winW = x, y, w
	r.cx, r.cy = 0, 0
	r.lastWin = [4]int16{x, y, w, h}
	r.windows++
}

func (r *recorder) put(x, y int16, c pixel.Color) {
	if !r.open {
		r.badTxn = true
	}
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		r.oob = true
		return
	}
	r.pix[[2]int16{x, y}] = c
}

func (r *recorder) WritePixel(x, y int16, c pixel.Color) { r.put(x, y, c) }

func (r *recorder) WriteSpan(colors []pixel.Color) {
	for _, c := range colors {
		r.put(r.winX+r.cx, r.winY+r.cy, c)
		r.advance()
	}
}

func (r *recorder) WriteSolid(c pixel.Color, n int) {
	r.solidPixels += n
	for i := 0; i < n; i++ {
		r.put(r.winX+r.cx, r.winY+r.cy, c)
		r.advance()
	}
}

func (r *recorder) advance() {
	r.cx++
	if r.cx >= r.winW {
		r.cx = 0
		r.cy++
	}
}

func (r *recorder) check(t *testing.T) {
	t.Helper()
	if r.oob {
		t.Fatalf("sink received out-of-bounds coordinates")
	}
	if r.badTxn {
		t.Fatalf("sink received writes outside an open write")
	}
	if r.begins != r.ends {
		t.Fatalf("unbalanced writes: %d begins, %d ends", r.begins, r.ends)
	}
}

// minimalSink hides every optional capability of the wrapped sink, so a
// Device on it can only use the base Sink interface.
type minimalSink struct{ s gfx.Sink }

func (m minimalSink) Size() (int16, int16)                 { return m.s.Size() }
func (m minimalSink) BeginWrite()                          { m.s.BeginWrite() }
func (m minimalSink) EndWrite()                            { m.s.EndWrite() }
func (m minimalSink) SetWindow(x, y, w, h int16)           { m.s.SetWindow(x, y, w, h) }
func (m minimalSink) WritePixel(x, y int16, c pixel.Color) { m.s.WritePixel(x, y, c) }
func (m minimalSink) WriteSpan(colors []pixel.Color)       { m.s.WriteSpan(colors) }
func (m minimalSink) WriteSolid(c pixel.Color, n int)      { m.s.WriteSolid(c, n) }

func TestFillRectClipsToIntersection(t *testing.T) {
	rec := newRecorder(100, 100)
	d := gfx.NewDevice(rec)

	d.FillRect(-5, 10, 20, 5, pixel.Red)
	rec.check(t)

	if rec.lastWin != [4]int16{0, 10, 15, 5} {
		t.Fatalf("window = %v, want [0 10 15 5]", rec.lastWin)
	}
	if rec.solidPixels != 75 {
		t.Fatalf("solid pixels = %d, want 75", rec.solidPixels)
	}
	if len(rec.pix) != 75 {
		t.Fatalf("painted %d pixels, want 75", len(rec.pix))
	}
}

func TestOffscreenDrawsOpenNoWrite(t *testing.T) {
	rec := newRecorder(100, 100)
	d := gfx.NewDevice(rec)

	d.FillRect(200, 200, 10, 10, pixel.Red)
	d.FillRect(10, 10, 0, 5, pixel.Red)
	d.DrawHLine(-50, 10, 20, pixel.Red)
	d.DrawVLine(10, 100, 20, pixel.Red)
	d.DrawRect(120, 0, 10, 10, pixel.Red)
	d.DrawLine(101, 110, 150, 160, pixel.Red)
	d.DrawCircle(200, 200, 5, pixel.Red)
	d.FillCircle(-50, -50, 5, pixel.Red)
	d.DrawTriangle(101, 101, 110, 110, 105, 120, pixel.Red)
	d.FillTriangle(101, 101, 110, 110, 105, 120, pixel.Red)
	d.DrawPixel(-1, 0, pixel.Red)

	if rec.begins != 0 {
		t.Fatalf("%d writes opened for fully clipped draws, want 0", rec.begins)
	}
	if len(rec.pix) != 0 {
		t.Fatalf("%d pixels painted, want 0", len(rec.pix))
	}
}

func TestDrawVisibleOpensOneWrite(t *testing.T) {
	rec := newRecorder(100, 100)
	d := gfx.NewDevice(rec)

	d.FillRect(10, 10, 5, 5, pixel.Red)
	d.DrawCircle(50, 50, 10, pixel.Red)
	d.DrawRect(0, 0, 30, 30, pixel.Red)
	rec.check(t)
	if rec.begins != 3 {
		t.Fatalf("%d writes opened, want 3", rec.begins)
	}
}

func TestDrawLineEndpointSymmetry(t *testing.T) {
	cases := []struct{ x0, y0, x1, y1 int16 }{
		{3, 4, 40, 11},
		{40, 11, 3, 4},
		{5, 5, 12, 30},
		{0, 0, 49, 49},
		{10, 20, 10, 2},
		{2, 7, 30, 7},
	}

	forward := newRecorder(50, 50)
	reverse := newRecorder(50, 50)
	df := gfx.NewDevice(forward)
	dr := gfx.NewDevice(reverse)

	for _, tc := range cases {
		df.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, pixel.White)
		dr.DrawLine(tc.x1, tc.y1, tc.x0, tc.y0, pixel.White)
	}
	forward.check(t)
	reverse.check(t)

	if len(forward.pix) != len(reverse.pix) {
		t.Fatalf("pixel counts differ: %d vs %d", len(forward.pix), len(reverse.pix))
	}
	for p := range forward.pix {
		if _, ok := reverse.pix[p]; !ok {
			t.Fatalf("pixel %v drawn forward but not reversed", p)
		}
	}
}

func TestDrawLineIncludesEndpoints(t *testing.T) {
	rec := newRecorder(50, 50)
	d := gfx.NewDevice(rec)

	d.DrawLine(3, 4, 20, 17, pixel.White)
	rec.check(t)
	for _, p := range [][2]int16{{3, 4}, {20, 17}} {
		if _, ok := rec.pix[p]; !ok {
			t.Fatalf("endpoint %v not drawn", p)
		}
	}
}

func TestDrawRectOutline(t *testing.T) {
	rec := newRecorder(50, 50)
	d := gfx.NewDevice(rec)

	d.DrawRect(5, 6, 10, 4, pixel.White)
	rec.check(t)

	for x := int16(5); x < 15; x++ {
		for y := int16(6); y < 10; y++ {
			_, got := rec.pix[[2]int16{x, y}]
			border := x == 5 || x == 14 || y == 6 || y == 9
			if got != border {
				t.Fatalf("pixel (%d, %d): painted = %v, want %v", x, y, got, border)
			}
		}
	}
	if len(rec.pix) != 2*10+2*2 {
		t.Fatalf("painted %d pixels, want %d", len(rec.pix), 2*10+2*2)
	}
}

func TestFillScreenGenericCoversAll(t *testing.T) {
	rec := newRecorder(8, 4)
	d := gfx.NewDevice(rec)

	d.FillScreen(pixel.Blue)
	rec.check(t)
	if len(rec.pix) != 32 {
		t.Fatalf("painted %d pixels, want 32", len(rec.pix))
	}
}

// TestCapabilityPathsAgree renders the same scene twice on identical
// canvases, once with the canvas's native fast paths visible and once
// with them hidden, and expects bit-identical buffers.
func TestCapabilityPathsAgree(t *testing.T) {
	native := canvas.New16(64, 64)
	hidden := canvas.New16(64, 64)
	dn := gfx.NewDevice(native)
	dh := gfx.NewDevice(minimalSink{hidden})

	scene := func(d *gfx.Device) {
		d.FillScreen(pixel.Navy)
		d.FillRect(5, 5, 20, 10, pixel.Red)
		d.DrawRect(2, 2, 60, 60, pixel.White)
		d.DrawHLine(-3, 30, 70, pixel.Yellow)
		d.DrawVLine(30, -3, 70, pixel.Cyan)
		d.DrawLine(1, 60, 60, 3, pixel.Green)
		d.DrawCircle(40, 40, 12, pixel.Magenta)
		d.FillCircle(20, 45, 8, pixel.Orange)
		d.DrawRoundRect(10, 20, 30, 25, 6, pixel.White)
		d.FillRoundRect(35, 8, 24, 18, 5, pixel.DarkGreen)
		d.DrawTriangle(8, 8, 55, 20, 30, 58, pixel.Pink)
		d.FillTriangle(12, 50, 25, 35, 40, 55, pixel.Olive)
		d.SetCursor(4, 30)
		d.SetTextColor(pixel.White)
		d.WriteString("Hi!")
		d.SetCursor(4, 40)
		d.SetTextColorBG(pixel.Black, pixel.Yellow)
		d.SetTextSize(2)
		d.WriteString("Go")
	}
	scene(dn)
	scene(dh)

	if !bytes.Equal(native.Buffer(), hidden.Buffer()) {
		t.Fatalf("native and generic paths rendered different buffers")
	}
}

type fakeDisplayer struct {
	w, h      int16
	pix       map[[2]int16]color.RGBA
	displayed int
}

func (f *fakeDisplayer) Size() (int16, int16) { return f.w, f.h }
func (f *fakeDisplayer) SetPixel(x, y int16, c color.RGBA) {
	f.pix[[2]int16{x, y}] = c
}
func (f *fakeDisplayer) Display() error {
	f.displayed++
	return nil
}

func TestDisplayerSink(t *testing.T) {
	fd := &fakeDisplayer{w: 32, h: 32, pix: make(map[[2]int16]color.RGBA)}
	d := gfx.NewDevice(gfx.NewDisplayerSink(fd))

	d.FillRect(2, 3, 4, 2, pixel.Red)
	if len(fd.pix) != 8 {
		t.Fatalf("painted %d pixels, want 8", len(fd.pix))
	}
	if got, ok := fd.pix[[2]int16{5, 4}]; !ok || got.R < 0xF0 || got.G != 0 || got.B != 0 {
		t.Fatalf("pixel (5, 4) = %v, ok = %v", got, ok)
	}
	if err := d.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if fd.displayed != 1 {
		t.Fatalf("Display forwarded %d times, want 1", fd.displayed)
	}
}
