package gfx

import "github.com/qubicos/gfx/pixel"

// DataWriter receives raw pixel bytes in bus order.
type DataWriter interface {
	WriteData(p []byte)
}

// DefaultBlockPixels is the staging block used when a SpanWriter is
// built without an explicit size.
const DefaultBlockPixels = 32

// SpanWriter batches solid runs and pixel spans into bounded block
// transfers toward a byte-oriented bus. Colors go out as big-endian
// RGB565. The staging buffer is allocated once; arbitrarily large runs
// are chunked so working memory stays fixed.
type SpanWriter struct {
	dst DataWriter
	buf []byte
}

// NewSpanWriter builds a writer staging up to blockPixels pixels per
// transfer. Non-positive blockPixels selects DefaultBlockPixels.
func NewSpanWriter(dst DataWriter, blockPixels int) *SpanWriter {
	if blockPixels <= 0 {
		blockPixels = DefaultBlockPixels
	}
	return &SpanWriter{dst: dst, buf: make([]byte, blockPixels*2)}
}

// WriteSolid emits n copies of c. Runs of at most four pixels skip the
// staging fill and go out directly.
func (s *SpanWriter) WriteSolid(c pixel.Color, n int) {
	if n <= 0 {
		return
	}
	hi, lo := c.BigEndian()

	if n <= 4 {
		var tmp [8]byte
		for i := 0; i < n; i++ {
			tmp[2*i] = hi
			tmp[2*i+1] = lo
		}
		s.dst.WriteData(tmp[:2*n])
		return
	}

	fill := len(s.buf) / 2
	if fill > n {
		fill = n
	}
	for i := 0; i < fill; i++ {
		s.buf[2*i] = hi
		s.buf[2*i+1] = lo
	}
	for n > 0 {
		chunk := fill
		if chunk > n {
			chunk = n
		}
		s.dst.WriteData(s.buf[:2*chunk])
		n -= chunk
	}
}

// WriteSpan emits the colors in sequence.
func (s *SpanWriter) WriteSpan(colors []pixel.Color) {
	block := len(s.buf) / 2
	for len(colors) > 0 {
		chunk := block
		if chunk > len(colors) {
			chunk = len(colors)
		}
		for i, c := range colors[:chunk] {
			s.buf[2*i], s.buf[2*i+1] = c.BigEndian()
		}
		s.dst.WriteData(s.buf[:2*chunk])
		colors = colors[chunk:]
	}
}
