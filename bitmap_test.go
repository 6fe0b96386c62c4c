package gfx_test

import (
	"testing"

	"github.com/qubicos/gfx"
	"github.com/qubicos/gfx/canvas"
	"github.com/qubicos/gfx/pixel"
)

func TestDrawBitmapTransparent(t *testing.T) {
	rec := newRecorder(32, 32)
	d := gfx.NewDevice(rec)

	// 8x2, MSB first: 0xA5 = 10100101, 0x5A = 01011010.
	d.DrawBitmap(3, 4, []byte{0xA5, 0x5A}, 8, 2, pixel.White)
	rec.check(t)

	rows := [2]byte{0xA5, 0x5A}
	count := 0
	for j := int16(0); j < 2; j++ {
		for i := int16(0); i < 8; i++ {
			_, got := rec.pix[[2]int16{3 + i, 4 + j}]
			want := rows[j]&(0x80>>uint(i)) != 0
			if got != want {
				t.Fatalf("bit (%d, %d): painted = %v, want %v", i, j, got, want)
			}
			if want {
				count++
			}
		}
	}
	if len(rec.pix) != count {
		t.Fatalf("painted %d pixels, want %d", len(rec.pix), count)
	}
}

func TestDrawXBitmapBitOrder(t *testing.T) {
	msb := newRecorder(32, 32)
	lsb := newRecorder(32, 32)

	// The same byte blitted in both orders paints mirrored rows.
	gfx.NewDevice(msb).DrawBitmap(0, 0, []byte{0xC1}, 8, 1, pixel.White)
	gfx.NewDevice(lsb).DrawXBitmap(0, 0, []byte{0xC1}, 8, 1, pixel.White)
	msb.check(t)
	lsb.check(t)

	for i := int16(0); i < 8; i++ {
		_, m := msb.pix[[2]int16{i, 0}]
		_, l := lsb.pix[[2]int16{7 - i, 0}]
		if m != l {
			t.Fatalf("bit %d: msb = %v, mirrored lsb = %v", i, m, l)
		}
	}
}

func TestDrawBitmapOpaquePaintsBoth(t *testing.T) {
	rec := newRecorder(32, 32)
	d := gfx.NewDevice(rec)

	d.DrawBitmapOpaque(0, 0, []byte{0xF0}, 8, 1, pixel.White, pixel.Red)
	rec.check(t)

	if len(rec.pix) != 8 {
		t.Fatalf("painted %d pixels, want 8", len(rec.pix))
	}
	for i := int16(0); i < 8; i++ {
		want := pixel.Red
		if i < 4 {
			want = pixel.White
		}
		if got := rec.pix[[2]int16{i, 0}]; got != want {
			t.Fatalf("pixel %d = %#04x, want %#04x", i, got, want)
		}
	}
}

func TestDrawBitmapOffscreenNoWrite(t *testing.T) {
	rec := newRecorder(32, 32)
	d := gfx.NewDevice(rec)

	d.DrawBitmap(100, 100, []byte{0xFF}, 8, 1, pixel.White)
	d.DrawBitmap(0, 0, []byte{0xFF}, 0, 1, pixel.White)
	d.DrawRGBBitmap(100, 100, make([]pixel.Color, 8), 4, 2)
	if rec.begins != 0 {
		t.Fatalf("%d writes opened for offscreen blits, want 0", rec.begins)
	}
}

func TestDrawBitmapTruncatedSourceIsBlank(t *testing.T) {
	rec := newRecorder(32, 32)
	d := gfx.NewDevice(rec)

	// Source holds one row but the blit asks for two; the missing row
	// reads as clear bits.
	d.DrawBitmap(0, 0, []byte{0xFF}, 8, 2, pixel.White)
	rec.check(t)
	if len(rec.pix) != 8 {
		t.Fatalf("painted %d pixels, want 8", len(rec.pix))
	}
}

func TestDrawGrayscaleBitmap(t *testing.T) {
	rec := newRecorder(32, 32)
	d := gfx.NewDevice(rec)

	d.DrawGrayscaleBitmap(1, 1, []byte{0x10, 0x20, 0x30, 0x40}, 2, 2)
	rec.check(t)
	if got := rec.pix[[2]int16{2, 2}]; got != 0x40 {
		t.Fatalf("pixel (2, 2) = %#04x, want 0x40", got)
	}
}

func TestDrawGrayscaleBitmapMasked(t *testing.T) {
	rec := newRecorder(32, 32)
	d := gfx.NewDevice(rec)

	// Mask 0x80: only the first pixel of the row passes.
	d.DrawGrayscaleBitmapMasked(0, 0, []byte{0x11, 0x22}, []byte{0x80}, 2, 1)
	rec.check(t)
	if len(rec.pix) != 1 {
		t.Fatalf("painted %d pixels, want 1", len(rec.pix))
	}
	if got := rec.pix[[2]int16{0, 0}]; got != 0x11 {
		t.Fatalf("pixel (0, 0) = %#04x, want 0x11", got)
	}
}

func TestDrawRGBBitmap(t *testing.T) {
	c := canvas.New16(10, 10)
	d := gfx.NewDevice(c)

	src := []pixel.Color{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	d.DrawRGBBitmap(2, 3, src, 4, 4)

	for j := int16(0); j < 4; j++ {
		for i := int16(0); i < 4; i++ {
			want := src[int(j)*4+int(i)]
			if got := c.Pixel(2+i, 3+j); got != want {
				t.Fatalf("pixel (%d, %d) = %d, want %d", 2+i, 3+j, got, want)
			}
		}
	}
}

func TestDrawRGBBitmapClipped(t *testing.T) {
	c := canvas.New16(10, 10)
	d := gfx.NewDevice(c)

	src := []pixel.Color{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	// Bottom-right corner: only the source's top-left 2x2 lands.
	d.DrawRGBBitmap(8, 8, src, 4, 4)
	for _, tc := range []struct {
		x, y int16
		want pixel.Color
	}{
		{8, 8, 1}, {9, 8, 2}, {8, 9, 5}, {9, 9, 6},
	} {
		if got := c.Pixel(tc.x, tc.y); got != tc.want {
			t.Fatalf("pixel (%d, %d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}

	// Top-left corner: the source's bottom-right 3x3 lands at the origin.
	c2 := canvas.New16(10, 10)
	gfx.NewDevice(c2).DrawRGBBitmap(-1, -1, src, 4, 4)
	if got := c2.Pixel(0, 0); got != 6 {
		t.Fatalf("pixel (0, 0) = %d, want 6", got)
	}
	if got := c2.Pixel(2, 2); got != 16 {
		t.Fatalf("pixel (2, 2) = %d, want 16", got)
	}
}

func TestDrawRGBBitmapMasked(t *testing.T) {
	rec := newRecorder(32, 32)
	d := gfx.NewDevice(rec)

	src := []pixel.Color{100, 200, 300, 400}
	d.DrawRGBBitmapMasked(0, 0, src, []byte{0x80, 0x80}, 2, 2)
	rec.check(t)

	// One mask byte per row, MSB first: only the first pixel of each
	// row passes.
	if len(rec.pix) != 2 {
		t.Fatalf("painted %d pixels, want 2", len(rec.pix))
	}
	if got := rec.pix[[2]int16{0, 0}]; got != 100 {
		t.Fatalf("pixel (0, 0) = %d, want 100", got)
	}
	if got := rec.pix[[2]int16{0, 1}]; got != 300 {
		t.Fatalf("pixel (0, 1) = %d, want 300", got)
	}
}
