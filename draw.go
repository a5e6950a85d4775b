package framebuf

// Fill sets every pixel in the framebuffer to col.
func (fb *FrameBuffer) Fill(col uint32) {
	fb.FillRect(0, 0, fb.width, fb.height, col)
}

// FillRect paints the rectangle (x,y,w,h), clipped to the framebuffer
// bounds, using the format's fast-path fill.
func (fb *FrameBuffer) FillRect(x, y, w, h int, col uint32) {
	cx, cy, cw, ch, ok := fb.clipRect(x, y, w, h)
	if !ok {
		return
	}
	formatTable[fb.format].fillRect(fb, cx, cy, cw, ch, col)
}

// HLine draws a horizontal line of length w starting at (x,y).
func (fb *FrameBuffer) HLine(x, y, w int, col uint32) {
	fb.FillRect(x, y, w, 1, col)
}

// VLine draws a vertical line of length h starting at (x,y).
func (fb *FrameBuffer) VLine(x, y, h int, col uint32) {
	fb.FillRect(x, y, 1, h, col)
}

// Rect draws the outline of the rectangle (x,y,w,h): top, bottom,
// left and right edges as four independent fills.
func (fb *FrameBuffer) Rect(x, y, w, h int, col uint32) {
	if w <= 0 || h <= 0 {
		return
	}
	fb.HLine(x, y, w, col)
	fb.HLine(x, y+h-1, w, col)
	fb.VLine(x, y, h, col)
	fb.VLine(x+w-1, y, h, col)
}

// FillRectOutline draws a filled rectangle; an alias kept for callers
// that prefer an explicit name over overloading Rect with a fill flag.
func (fb *FrameBuffer) FillRectOutline(x, y, w, h int, col uint32) {
	fb.FillRect(x, y, w, h, col)
}

// Line draws the segment from (x1,y1) to (x2,y2) using integer
// Bresenham stepping, per spec.md §4.C. Each plotted point is clipped
// independently; points off the framebuffer are skipped rather than
// aborting the whole line.
func (fb *FrameBuffer) Line(x1, y1, x2, y2 int, col uint32) {
	steep := abs(y2-y1) > abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := x2 - x1
	dy := abs(y2 - y1)
	ystep := 1
	if y1 > y2 {
		ystep = -1
	}

	err := 2*dy - dx
	y := y1
	for i := 0; i < dx; i++ {
		x := x1 + i
		if steep {
			fb.SetPixel(y, x, col)
		} else {
			fb.SetPixel(x, y, col)
		}
		if err >= 0 {
			y += ystep
			err += 2 * (dy - dx)
		} else {
			err += 2 * dy
		}
	}
	if steep {
		fb.SetPixel(y2, x2, col)
	} else {
		fb.SetPixel(x2, y2, col)
	}
}

// Circle draws a circle of radius r centered at (x,y) using the
// midpoint (Bresenham) circle algorithm. When fill is true the disc
// is painted with per-row fill_rects instead of an 8-point outline.
func (fb *FrameBuffer) Circle(x, y, r int, col uint32, fill bool) {
	if r < 0 {
		return
	}
	px, py := r, 0
	err := 1 - r

	plot := func(cx, cy int) {
		if fill {
			fb.HLine(x-cx, y+cy, 2*cx+1, col)
			fb.HLine(x-cx, y-cy, 2*cx+1, col)
		} else {
			fb.SetPixel(x+cx, y+cy, col)
			fb.SetPixel(x-cx, y+cy, col)
			fb.SetPixel(x+cx, y-cy, col)
			fb.SetPixel(x-cx, y-cy, col)
		}
	}
	plotOctants := func(cx, cy int) {
		if fill {
			fb.HLine(x-cy, y+cx, 2*cy+1, col)
			fb.HLine(x-cy, y-cx, 2*cy+1, col)
		} else {
			fb.SetPixel(x+cy, y+cx, col)
			fb.SetPixel(x-cy, y+cx, col)
			fb.SetPixel(x+cy, y-cx, col)
			fb.SetPixel(x-cy, y-cx, col)
		}
	}

	for px >= py {
		plot(px, py)
		plotOctants(px, py)

		py++
		if err < 0 {
			err += 2*py + 1
		} else {
			px--
			err += 2*(py-px) + 1
		}
	}
}

// Triangle draws the triangle (x0,y0)-(x1,y1)-(x2,y2). When fill is
// false it draws three lines; when true it uses the scan-line fill
// from spec.md §4.C.
func (fb *FrameBuffer) Triangle(x0, y0, x1, y1, x2, y2 int, col uint32, fill bool) {
	if !fill {
		fb.Line(x0, y0, x1, y1, col)
		fb.Line(x1, y1, x2, y2, col)
		fb.Line(x2, y2, x0, y0, col)
		return
	}

	// sort vertices ascending by y
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	if y0 == y2 {
		// degenerate: everything on one scanline
		minX, maxX := x0, x0
		for _, x := range [...]int{x1, x2} {
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
		fb.HLine(minX, y0, maxX-minX+1, col)
		return
	}

	dy01 := y1 - y0
	if dy01 == 0 {
		dy01 = 1
	}
	dy02 := y2 - y0
	if dy02 == 0 {
		dy02 = 1
	}
	dy12 := y2 - y1
	if dy12 == 0 {
		dy12 = 1
	}

	dx01 := x1 - x0
	dx02 := x2 - x0
	dx12 := x2 - x1

	sa, sb := 0, 0
	for y := y0; y <= y1; y++ {
		ax := x0 + sa/dy01
		bx := x0 + sb/dy02
		sa += dx01
		sb += dx02
		if ax > bx {
			ax, bx = bx, ax
		}
		fb.HLine(ax, y, bx-ax+1, col)
	}

	// sb carries over from the loop above: after processing row y1 it
	// already holds the edge02 accumulator for row y1+1, so the second
	// half picks up right where the first left off (spec.md §4.C's
	// "(y1,y2]" range — row y1 itself was already drawn above).
	sa = 0
	for y := y1 + 1; y <= y2; y++ {
		sa += dx12
		ax := x1 + sa/dy12
		bx := x0 + sb/dy02
		sb += dx02
		if ax > bx {
			ax, bx = bx, ax
		}
		fb.HLine(ax, y, bx-ax+1, col)
	}
}

// Traingle is a deprecated alias for Triangle: the misspelling is the
// symbol the original binding actually exposed (spec.md §9).
func (fb *FrameBuffer) Traingle(x0, y0, x1, y1, x2, y2 int, col uint32, fill bool) {
	fb.Triangle(x0, y0, x1, y1, x2, y2, col, fill)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
