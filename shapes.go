package gfx

import "github.com/qubicos/gfx/pixel"

// Quadrants selects which quarters of a circle outline to plot.
type Quadrants uint8

const (
	QuadTopLeft Quadrants = 1 << iota
	QuadTopRight
	QuadBottomRight
	QuadBottomLeft

	QuadAll = QuadTopLeft | QuadTopRight | QuadBottomRight | QuadBottomLeft
)

// Sides selects which half of a disc the filled quadrant helper sweeps.
type Sides uint8

const (
	SideRight Sides = 1 << iota
	SideLeft

	SideBoth = SideRight | SideLeft
)

// DrawCircle outlines a circle using the midpoint algorithm: 8-way
// symmetric points per step, incremental decision variable, no floating
// point.
func (d *Device) DrawCircle(x0, y0, r int16, c pixel.Color) {
	if r < 0 {
		return
	}
	maxW, maxH := d.sink.Size()
	if !boxVisible(int32(x0)-int32(r), int32(y0)-int32(r), int32(x0)+int32(r), int32(y0)+int32(r), maxW, maxH) {
		return
	}

	f := 1 - r
	ddfx := int16(1)
	ddfy := -2 * r
	x := int16(0)
	y := r

	d.sink.BeginWrite()
	d.WritePixel(x0, y0+r, c)
	d.WritePixel(x0, y0-r, c)
	d.WritePixel(x0+r, y0, c)
	d.WritePixel(x0-r, y0, c)

	for x < y {
		if f >= 0 {
			y--
			ddfy += 2
			f += ddfy
		}
		x++
		ddfx += 2
		f += ddfx

		d.WritePixel(x0+x, y0+y, c)
		d.WritePixel(x0-x, y0+y, c)
		d.WritePixel(x0+x, y0-y, c)
		d.WritePixel(x0-x, y0-y, c)
		d.WritePixel(x0+y, y0+x, c)
		d.WritePixel(x0-y, y0+x, c)
		d.WritePixel(x0+y, y0-x, c)
		d.WritePixel(x0-y, y0-x, c)
	}
	d.sink.EndWrite()
}

// FillCircle fills a disc. Span lengths are computed in int16, so the
// radius must stay below 16384.
func (d *Device) FillCircle(x0, y0, r int16, c pixel.Color) {
	if r < 0 {
		return
	}
	maxW, maxH := d.sink.Size()
	if !boxVisible(int32(x0)-int32(r), int32(y0)-int32(r), int32(x0)+int32(r), int32(y0)+int32(r), maxW, maxH) {
		return
	}
	d.sink.BeginWrite()
	d.WriteVLine(x0, y0-r, 2*r+1, c)
	d.WriteCircleQuadrantsFilled(x0, y0, r, SideBoth, 0, c)
	d.sink.EndWrite()
}

// WriteCircleQuadrants plots the selected quarters of a circle outline
// around (x0, y0). It is the corner piece of DrawRoundRect and runs
// inside the caller's open write.
func (d *Device) WriteCircleQuadrants(x0, y0, r int16, q Quadrants, c pixel.Color) {
	f := 1 - r
	ddfx := int16(1)
	ddfy := -2 * r
	x := int16(0)
	y := r

	for x < y {
		if f >= 0 {
			y--
			ddfy += 2
			f += ddfy
		}
		x++
		ddfx += 2
		f += ddfx

		if q&QuadBottomRight != 0 {
			d.WritePixel(x0+x, y0+y, c)
			d.WritePixel(x0+y, y0+x, c)
		}
		if q&QuadTopRight != 0 {
			d.WritePixel(x0+x, y0-y, c)
			d.WritePixel(x0+y, y0-x, c)
		}
		if q&QuadBottomLeft != 0 {
			d.WritePixel(x0-y, y0+x, c)
			d.WritePixel(x0-x, y0+y, c)
		}
		if q&QuadTopLeft != 0 {
			d.WritePixel(x0-y, y0-x, c)
			d.WritePixel(x0-x, y0-y, c)
		}
	}
}

// WriteCircleQuadrantsFilled sweeps vertical spans over the selected
// half-discs. delta stretches each span downward, which is how round
// rectangle fills bridge the straight middle without drawing any seam
// twice; the x/y step guards keep spans from landing on the same column
// twice for the same reason. Span lengths are computed in int16, so
// r plus delta must stay below 16384.
func (d *Device) WriteCircleQuadrantsFilled(x0, y0, r int16, s Sides, delta int16, c pixel.Color) {
	f := 1 - r
	ddfx := int16(1)
	ddfy := -2 * r
	x := int16(0)
	y := r
	px := x
	py := y

	delta++

	for x < y {
		if f >= 0 {
			y--
			ddfy += 2
			f += ddfy
		}
		x++
		ddfx += 2
		f += ddfx

		if x < y+1 {
			if s&SideRight != 0 {
				d.WriteVLine(x0+x, y0-y, 2*y+delta, c)
			}
			if s&SideLeft != 0 {
				d.WriteVLine(x0-x, y0-y, 2*y+delta, c)
			}
		}
		if y != py {
			if s&SideRight != 0 {
				d.WriteVLine(x0+py, y0-px, 2*px+delta, c)
			}
			if s&SideLeft != 0 {
				d.WriteVLine(x0-py, y0-px, 2*px+delta, c)
			}
			py = y
		}
		px = x
	}
}

// DrawRoundRect outlines a rounded rectangle. The radius is clamped to
// half the shorter side.
func (d *Device) DrawRoundRect(x, y, w, h, r int16, c pixel.Color) {
	maxW, maxH := d.sink.Size()
	nx, ny, nw, nh, ok := normalizeRect(x, y, w, h)
	if !ok || !boxVisible(int32(nx), int32(ny), int32(nx)+int32(nw)-1, int32(ny)+int32(nh)-1, maxW, maxH) {
		return
	}
	if max := min16(nw, nh) / 2; r > max {
		r = max
	}
	if r < 0 {
		r = 0
	}

	d.sink.BeginWrite()
	d.WriteHLine(nx+r, ny, nw-2*r, c)
	d.WriteHLine(nx+r, ny+nh-1, nw-2*r, c)
	d.WriteVLine(nx, ny+r, nh-2*r, c)
	d.WriteVLine(nx+nw-1, ny+r, nh-2*r, c)
	d.WriteCircleQuadrants(nx+r, ny+r, r, QuadTopLeft, c)
	d.WriteCircleQuadrants(nx+nw-r-1, ny+r, r, QuadTopRight, c)
	d.WriteCircleQuadrants(nx+nw-r-1, ny+nh-r-1, r, QuadBottomRight, c)
	d.WriteCircleQuadrants(nx+r, ny+nh-r-1, r, QuadBottomLeft, c)
	d.sink.EndWrite()
}

// FillRoundRect fills a rounded rectangle: one straight center slab plus
// two filled corner sweeps.
func (d *Device) FillRoundRect(x, y, w, h, r int16, c pixel.Color) {
	maxW, maxH := d.sink.Size()
	nx, ny, nw, nh, ok := normalizeRect(x, y, w, h)
	if !ok || !boxVisible(int32(nx), int32(ny), int32(nx)+int32(nw)-1, int32(ny)+int32(nh)-1, maxW, maxH) {
		return
	}
	if max := min16(nw, nh) / 2; r > max {
		r = max
	}
	if r < 0 {
		r = 0
	}

	d.sink.BeginWrite()
	d.WriteFillRect(nx+r, ny, nw-2*r, nh, c)
	d.WriteCircleQuadrantsFilled(nx+nw-r-1, ny+r, r, SideRight, nh-2*r-1, c)
	d.WriteCircleQuadrantsFilled(nx+r, ny+r, r, SideLeft, nh-2*r-1, c)
	d.sink.EndWrite()
}

// DrawTriangle outlines a triangle.
func (d *Device) DrawTriangle(x0, y0, x1, y1, x2, y2 int16, c pixel.Color) {
	maxW, maxH := d.sink.Size()
	minX := min16(min16(x0, x1), x2)
	minY := min16(min16(y0, y1), y2)
	maxX := max16(max16(x0, x1), x2)
	maxY := max16(max16(y0, y1), y2)
	if !boxVisible(int32(minX), int32(minY), int32(maxX), int32(maxY), maxW, maxH) {
		return
	}
	d.sink.BeginWrite()
	d.WriteLine(x0, y0, x1, y1, c)
	d.WriteLine(x1, y1, x2, y2, c)
	d.WriteLine(x2, y2, x0, y0, c)
	d.sink.EndWrite()
}

// FillTriangle fills a triangle by scanline: vertices sorted by y, the
// upper and lower halves interpolated with accumulated integer delta
// sums so no scanline needs a division pair.
func (d *Device) FillTriangle(x0, y0, x1, y1, x2, y2 int16, c pixel.Color) {
	maxW, maxH := d.sink.Size()
	minX := min16(min16(x0, x1), x2)
	minY := min16(min16(y0, y1), y2)
	maxX := max16(max16(x0, x1), x2)
	maxY := max16(max16(y0, y1), y2)
	if !boxVisible(int32(minX), int32(minY), int32(maxX), int32(maxY), maxW, maxH) {
		return
	}

	// Sort by ascending y.
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	d.sink.BeginWrite()
	defer d.sink.EndWrite()

	if y0 == y2 {
		// Degenerate flat triangle: one span from min to max x.
		a, b := x0, x0
		if x1 < a {
			a = x1
		} else if x1 > b {
			b = x1
		}
		if x2 < a {
			a = x2
		} else if x2 > b {
			b = x2
		}
		d.WriteHLine(a, y0, b-a+1, c)
		return
	}

	dx01 := int32(x1 - x0)
	dy01 := int32(y1 - y0)
	dx02 := int32(x2 - x0)
	dy02 := int32(y2 - y0)
	dx12 := int32(x2 - x1)
	dy12 := int32(y2 - y1)
	var sa, sb int32

	// Upper half: edges 0-1 and 0-2. For a flat-bottomed triangle the
	// y1 scanline belongs here (the lower loop would divide by zero);
	// otherwise it is left to the lower half.
	last := y1 - 1
	if y1 == y2 {
		last = y1
	}

	y := y0
	for ; y <= last; y++ {
		a := int32(x0) + sa/dy01
		b := int32(x0) + sb/dy02
		sa += dx01
		sb += dx02
		if a > b {
			a, b = b, a
		}
		d.WriteHLine(int16(a), y, int16(b-a+1), c)
	}

	// Lower half: edges 1-2 and 0-2.
	sa = dx12 * int32(y-y1)
	sb = dx02 * int32(y-y0)
	for ; y <= y2; y++ {
		a := int32(x1) + sa/dy12
		b := int32(x0) + sb/dy02
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		d.WriteHLine(int16(a), y, int16(b-a+1), c)
	}
}
