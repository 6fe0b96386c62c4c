package gfx

// Pure clipping helpers. Negative extents are normalized to positive by
// shifting the origin backward; results are the exact geometric
// intersection with [0,max) per axis. All arithmetic widens to int32 so
// int16 coordinate sums cannot wrap.

// clipSpan clips the 1-D run [p, p+n) to [0, max). ok is false when
// nothing of the run remains.
func clipSpan(p, n, max int16) (cp, cn int16, ok bool) {
	start := int32(p)
	length := int32(n)
	if length < 0 {
		start += length + 1
		length = -length
	}
	end := start + length - 1
	if length == 0 || max <= 0 || start >= int32(max) || end < 0 {
		return 0, 0, false
	}
	if start < 0 {
		start = 0
	}
	if end >= int32(max) {
		end = int32(max) - 1
	}
	return int16(start), int16(end - start + 1), true
}

// clipRect clips the rectangle (x, y, w, h) to [0,maxW) x [0,maxH).
func clipRect(x, y, w, h, maxW, maxH int16) (cx, cy, cw, ch int16, ok bool) {
	cx, cw, okx := clipSpan(x, w, maxW)
	cy, ch, oky := clipSpan(y, h, maxH)
	if !okx || !oky {
		return 0, 0, 0, 0, false
	}
	return cx, cy, cw, ch, true
}

// boxVisible reports whether the bounding box (x0,y0)-(x1,y1),
// inclusive and in any corner order, intersects [0,maxW) x [0,maxH).
func boxVisible(x0, y0, x1, y1 int32, maxW, maxH int16) bool {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return x0 < int32(maxW) && y0 < int32(maxH) && x1 >= 0 && y1 >= 0 && maxW > 0 && maxH > 0
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

func min16(a, b int16) int16 {
	if a < b {
		return a
	}
	return b
}

func max16(a, b int16) int16 {
	if a > b {
		return a
	}
	return b
}
