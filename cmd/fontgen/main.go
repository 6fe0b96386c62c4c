// Command fontgen rasterizes a TTF/OTF font at a fixed size into a Go
// source file declaring a gfxfont.Font table.
//
//	fontgen -font sans.ttf -size 9 -dpi 141 -name Sans9pt -pkg myfonts -out sans9pt.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/qubicos/gfx/gfxfont"
)

func main() {
	var (
		fontPath = flag.String("font", "", "Input TTF/OTF file.")
		size     = flag.Float64("size", 9, "Point size.")
		dpi      = flag.Float64("dpi", 141, "Target display density.")
		first    = flag.Int("first", 0x20, "First character code.")
		last     = flag.Int("last", 0x7E, "Last character code.")
		name     = flag.String("name", "", "Go identifier for the font variable.")
		pkg      = flag.String("pkg", "fonts", "Package name of the generated file.")
		outPath  = flag.String("out", "", "Output .go file.")
	)
	flag.Parse()

	if *fontPath == "" || *name == "" || *outPath == "" {
		fatalf("usage: fontgen -font in.ttf -size 9 [-dpi 141] [-first 0x20 -last 0x7E] -name Sans9pt [-pkg fonts] -out sans9pt.go")
	}
	if *first < 0 || *last > 0xFF || *first > *last {
		fatalf("bad character range %#x..%#x", *first, *last)
	}

	f, err := generate(*fontPath, *size, *dpi, byte(*first), byte(*last))
	if err != nil {
		fatalf("generate: %v", err)
	}
	src := render(f, *pkg, *name)
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func generate(path string, size, dpi float64, first, last byte) (*gfxfont.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	defer face.Close()

	out := &gfxfont.Font{
		First:    first,
		Last:     last,
		YAdvance: uint8(roundFixed(face.Metrics().Height)),
	}

	var blob bytes.Buffer
	for code := int(first); code <= int(last); code++ {
		dr, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, rune(code))
		g := gfxfont.Glyph{BitmapOffset: uint16(blob.Len())}
		if ok && dr.Dx() > 0 && dr.Dy() > 0 {
			g.Width = uint8(dr.Dx())
			g.Height = uint8(dr.Dy())
			g.XOffset = int8(dr.Min.X)
			g.YOffset = int8(dr.Min.Y)
			g.XAdvance = uint8(roundFixed(adv))
			packGlyph(&blob, mask, maskp, dr)
		} else {
			// No ink (space and friends): advance only.
			g.XAdvance = uint8(roundFixed(adv))
		}
		out.Glyphs = append(out.Glyphs, g)
	}
	out.Bitmap = blob.Bytes()
	return out, nil
}

// packGlyph thresholds the rasterized alpha mask at half coverage and
// packs it MSB-first, row-major, with no row padding.
func packGlyph(blob *bytes.Buffer, mask image.Image, maskp image.Point, dr image.Rectangle) {
	var acc byte
	var n uint
	for yy := 0; yy < dr.Dy(); yy++ {
		for xx := 0; xx < dr.Dx(); xx++ {
			a := color.AlphaModel.Convert(mask.At(maskp.X+xx, maskp.Y+yy)).(color.Alpha).A
			acc <<= 1
			if a >= 0x80 {
				acc |= 1
			}
			n++
			if n == 8 {
				blob.WriteByte(acc)
				acc, n = 0, 0
			}
		}
	}
	if n > 0 {
		blob.WriteByte(acc << (8 - n))
	}
}

// roundFixed rounds a 26.6 value to the nearest whole pixel.
func roundFixed(v fixed.Int26_6) int {
	return int(v+32) >> 6
}

func render(f *gfxfont.Font, pkg, name string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by fontgen. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	fmt.Fprintf(&b, "import \"github.com/qubicos/gfx/gfxfont\"\n\n")
	fmt.Fprintf(&b, "var %s = &gfxfont.Font{\n", name)

	fmt.Fprintf(&b, "\tBitmap: []byte{")
	for i, v := range f.Bitmap {
		if i%12 == 0 {
			fmt.Fprintf(&b, "\n\t\t")
		}
		fmt.Fprintf(&b, "0x%02X, ", v)
	}
	fmt.Fprintf(&b, "\n\t},\n")

	fmt.Fprintf(&b, "\tGlyphs: []gfxfont.Glyph{\n")
	for i, g := range f.Glyphs {
		code := int(f.First) + i
		fmt.Fprintf(&b, "\t\t{BitmapOffset: %d, Width: %d, Height: %d, XAdvance: %d, XOffset: %d, YOffset: %d}, // %#02x %q\n",
			g.BitmapOffset, g.Width, g.Height, g.XAdvance, g.XOffset, g.YOffset, code, rune(code))
	}
	fmt.Fprintf(&b, "\t},\n")

	fmt.Fprintf(&b, "\tFirst: %#02x,\n\tLast: %#02x,\n\tYAdvance: %d,\n}\n", f.First, f.Last, f.YAdvance)
	return b.Bytes()
}
