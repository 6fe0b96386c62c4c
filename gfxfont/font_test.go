package gfxfont

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

func TestClassicIndex(t *testing.T) {
	cases := []struct {
		c     byte
		cp437 bool
		want  byte
	}{
		{'A', false, 'A'},
		{'A', true, 'A'},
		{175, false, 175},
		{176, false, 177},
		{200, false, 201},
		{254, false, 255},
		{176, true, 176},
		{200, true, 200},
	}
	for _, tc := range cases {
		if got := ClassicIndex(tc.c, tc.cp437); got != tc.want {
			t.Fatalf("ClassicIndex(%d, %v) = %d, want %d", tc.c, tc.cp437, got, tc.want)
		}
	}
}

func TestClassicColumn(t *testing.T) {
	wantA := [5]byte{0x7E, 0x11, 0x11, 0x11, 0x7E}
	for i, want := range wantA {
		if got := ClassicColumn('A', i); got != want {
			t.Fatalf("column %d of 'A' = %#02x, want %#02x", i, got, want)
		}
	}
	for i := 0; i < 5; i++ {
		if got := ClassicColumn(' ', i); got != 0 {
			t.Fatalf("space column %d = %#02x, want 0", i, got)
		}
	}
	if ClassicColumn(0x1F, 0) != 0 || ClassicColumn(0x7F, 0) != 0 {
		t.Fatalf("out-of-table characters must be blank")
	}
	if ClassicColumn('A', 5) != 0 || ClassicColumn('A', -1) != 0 {
		t.Fatalf("out-of-range columns must be blank")
	}
}

var bridgeFont = &Font{
	Bitmap: []byte{0xF0, 0xE0},
	Glyphs: []Glyph{
		{BitmapOffset: 0, Width: 2, Height: 2, XAdvance: 4, XOffset: 1, YOffset: -2},
		{BitmapOffset: 1, Width: 1, Height: 3, XAdvance: 3, XOffset: 0, YOffset: -3},
	},
	First:    '>',
	Last:     '?',
	YAdvance: 11,
}

func TestGlyphLookup(t *testing.T) {
	if _, ok := bridgeFont.Glyph('>'); !ok {
		t.Fatalf("first glyph not found")
	}
	if _, ok := bridgeFont.Glyph('?'); !ok {
		t.Fatalf("last glyph not found")
	}
	if _, ok := bridgeFont.Glyph('@'); ok {
		t.Fatalf("lookup past the range succeeded")
	}
	if _, ok := bridgeFont.Glyph('='); ok {
		t.Fatalf("lookup before the range succeeded")
	}
	var nilFont *Font
	if _, ok := nilFont.Glyph('A'); ok {
		t.Fatalf("nil font lookup succeeded")
	}
}

func TestSetBit(t *testing.T) {
	g, _ := bridgeFont.Glyph('>')
	// 0xF0 over a 2x2 glyph: all four bits set.
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if !bridgeFont.SetBit(g, x, y) {
				t.Fatalf("bit (%d, %d) unset", x, y)
			}
		}
	}
	if bridgeFont.SetBit(g, 2, 0) || bridgeFont.SetBit(g, 0, 2) || bridgeFont.SetBit(g, -1, 0) {
		t.Fatalf("out-of-range bits read as set")
	}

	truncated := &Font{
		Bitmap: nil,
		Glyphs: []Glyph{{Width: 2, Height: 2}},
		First:  'a', Last: 'a',
	}
	tg, _ := truncated.Glyph('a')
	if truncated.SetBit(tg, 0, 0) {
		t.Fatalf("truncated bitmap read as set")
	}
}

func TestFonterInfo(t *testing.T) {
	fr := bridgeFont.Fonter()
	if got := fr.GetYAdvance(); got != 11 {
		t.Fatalf("YAdvance = %d, want 11", got)
	}

	info := fr.GetGlyph('>').Info()
	g, _ := bridgeFont.Glyph('>')
	if info.Width != g.Width || info.Height != g.Height || info.XAdvance != g.XAdvance ||
		info.XOffset != g.XOffset || info.YOffset != g.YOffset {
		t.Fatalf("bridge info %+v does not match glyph %+v", info, g)
	}
}

func TestFonterFallback(t *testing.T) {
	fr := bridgeFont.Fonter()
	info := fr.GetGlyph('Z').Info()
	q, _ := bridgeFont.Glyph('?')
	if info.Width != q.Width || info.XAdvance != q.XAdvance {
		t.Fatalf("missing rune did not fall back to '?': %+v", info)
	}
}

type gridDisplayer struct {
	pix map[[2]int16]bool
}

func (g *gridDisplayer) Size() (int16, int16) { return 64, 64 }
func (g *gridDisplayer) SetPixel(x, y int16, _ color.RGBA) {
	g.pix[[2]int16{x, y}] = true
}
func (g *gridDisplayer) Display() error { return nil }

func TestFonterDraw(t *testing.T) {
	var _ tinyfont.Fonter = bridgeFont.Fonter()

	disp := &gridDisplayer{pix: make(map[[2]int16]bool)}
	bridgeFont.Fonter().GetGlyph('>').Draw(disp, 10, 10, color.RGBA{R: 0xFF, A: 0xFF})

	g, _ := bridgeFont.Glyph('>')
	count := 0
	for y := 0; y < int(g.Height); y++ {
		for x := 0; x < int(g.Width); x++ {
			if !bridgeFont.SetBit(g, x, y) {
				continue
			}
			count++
			p := [2]int16{10 + int16(g.XOffset) + int16(x), 10 + int16(g.YOffset) + int16(y)}
			if !disp.pix[p] {
				t.Fatalf("glyph bit (%d, %d) not drawn at %v", x, y, p)
			}
		}
	}
	if len(disp.pix) != count {
		t.Fatalf("drew %d pixels, want %d", len(disp.pix), count)
	}
}
