// Package imageload decodes uncompressed BMP files into the raw
// in-memory arrays the rasterizer blits: MSB-first bit rows for
// Device.DrawBitmap and RGB565 rows for Device.DrawRGBBitmap.
package imageload

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"

	"github.com/qubicos/gfx/pixel"
)

// ErrFormat reports a file this package cannot decode.
var ErrFormat = errors.New("imageload: unsupported BMP format")

type bmpInfo struct {
	dataOff  int
	width    int
	height   int // negative source height means top-down rows
	topDown  bool
	bpp      int
	comp     uint32
	redMask  uint32
	grnMask  uint32
	bluMask  uint32
	rowBytes int
}

func parseHeader(data []byte) (bmpInfo, error) {
	var info bmpInfo
	if len(data) < 54 || data[0] != 'B' || data[1] != 'M' {
		return info, fmt.Errorf("%w: missing BM signature", ErrFormat)
	}
	info.dataOff = int(binary.LittleEndian.Uint32(data[10:]))
	dibSize := int(binary.LittleEndian.Uint32(data[14:]))
	if dibSize < 40 || 14+dibSize > len(data) {
		return info, fmt.Errorf("%w: short DIB header", ErrFormat)
	}
	info.width = int(int32(binary.LittleEndian.Uint32(data[18:])))
	info.height = int(int32(binary.LittleEndian.Uint32(data[22:])))
	if info.height < 0 {
		info.topDown = true
		info.height = -info.height
	}
	info.bpp = int(binary.LittleEndian.Uint16(data[28:]))
	info.comp = binary.LittleEndian.Uint32(data[30:])
	if info.comp == 3 && dibSize >= 52 {
		info.redMask = binary.LittleEndian.Uint32(data[54:])
		info.grnMask = binary.LittleEndian.Uint32(data[58:])
		info.bluMask = binary.LittleEndian.Uint32(data[62:])
	}

	if info.width <= 0 || info.height <= 0 || info.width > 0x7FFF || info.height > 0x7FFF {
		return info, fmt.Errorf("%w: bad dimensions %dx%d", ErrFormat, info.width, info.height)
	}
	// Rows are padded to 32-bit boundaries.
	info.rowBytes = (info.width*info.bpp + 31) / 32 * 4
	if info.dataOff < 14+dibSize || info.dataOff+info.rowBytes*info.height > len(data) {
		return info, fmt.Errorf("%w: truncated pixel data", ErrFormat)
	}
	return info, nil
}

func (info bmpInfo) row(data []byte, y int) []byte {
	src := y
	if !info.topDown {
		src = info.height - 1 - y
	}
	off := info.dataOff + src*info.rowBytes
	return data[off : off+info.rowBytes]
}

// LoadMono decodes a 1-bit uncompressed BMP into MSB-first byte-padded
// rows, top-down, ready for Device.DrawBitmap.
func LoadMono(r io.Reader) (bits []byte, w, h int16, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("bmp: %w", err)
	}
	info, err := parseHeader(data)
	if err != nil {
		return nil, 0, 0, err
	}
	if info.bpp != 1 || info.comp != 0 {
		return nil, 0, 0, fmt.Errorf("%w: want 1bpp uncompressed, got %dbpp comp=%d", ErrFormat, info.bpp, info.comp)
	}

	dstRow := (info.width + 7) / 8
	bits = make([]byte, dstRow*info.height)
	for y := 0; y < info.height; y++ {
		br := bitreader.NewReader(bytes.NewReader(info.row(data, y)))
		for x := 0; x < info.width; x++ {
			set, err := br.Read1()
			if err != nil {
				return nil, 0, 0, fmt.Errorf("bmp: row %d: %w", y, err)
			}
			if set {
				bits[y*dstRow+x/8] |= 0x80 >> (uint(x) & 7)
			}
		}
	}
	return bits, int16(info.width), int16(info.height), nil
}

// LoadRGB565 decodes a 16-bit (565 bitfields or 555) or 24-bit
// uncompressed BMP into RGB565 rows, top-down, ready for
// Device.DrawRGBBitmap.
func LoadRGB565(r io.Reader) (colors []pixel.Color, w, h int16, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("bmp: %w", err)
	}
	info, err := parseHeader(data)
	if err != nil {
		return nil, 0, 0, err
	}

	var decode func(row []byte, x int) pixel.Color
	switch {
	case info.bpp == 24 && info.comp == 0:
		decode = func(row []byte, x int) pixel.Color {
			b, g, rr := row[x*3], row[x*3+1], row[x*3+2]
			return pixel.FromRGB(rr, g, b)
		}
	case info.bpp == 16 && info.comp == 3 && info.redMask == 0xF800 && info.grnMask == 0x07E0 && info.bluMask == 0x001F:
		// Already 565; pass through.
		decode = func(row []byte, x int) pixel.Color {
			return pixel.Color(binary.LittleEndian.Uint16(row[x*2:]))
		}
	case info.bpp == 16 && (info.comp == 0 || (info.comp == 3 && info.redMask == 0x7C00)):
		// 555: widen green from 5 to 6 bits.
		decode = func(row []byte, x int) pixel.Color {
			v := binary.LittleEndian.Uint16(row[x*2:])
			rr := (v >> 10) & 0x1F
			g5 := (v >> 5) & 0x1F
			b := v & 0x1F
			return pixel.Color(rr<<11 | (g5<<1|g5>>4)<<5 | b)
		}
	default:
		return nil, 0, 0, fmt.Errorf("%w: want 16/24bpp uncompressed, got %dbpp comp=%d", ErrFormat, info.bpp, info.comp)
	}

	colors = make([]pixel.Color, info.width*info.height)
	for y := 0; y < info.height; y++ {
		row := info.row(data, y)
		for x := 0; x < info.width; x++ {
			colors[y*info.width+x] = decode(row, x)
		}
	}
	return colors, int16(info.width), int16(info.height), nil
}
