package framebuf

// NoKey is the sentinel passed to Blit/BlitRegion to disable color-key
// transparency, matching the original binding's default key=-1.
const NoKey int64 = -1

// Blit copies src's entire bitmap into fb at (x,y). Source and
// destination rectangles are clipped jointly; pixels equal to key are
// skipped when key != NoKey. Self-overlap (src == fb) is undefined,
// per spec.md §4.D.
func (fb *FrameBuffer) Blit(src *FrameBuffer, x, y int, key int64) {
	fb.BlitRegion(src, 0, 0, src.width, src.height, x, y, key)
}

// BlitRegion copies the sub-rectangle (sx,sy,sw,sh) of src into fb at
// (x,y), jointly clipping the source window against src's bounds and
// the destination window against fb's bounds. It is the Go-native
// equivalent of the windowed blit some framebuf ports expose beyond
// the whole-bitmap Blit documented in spec.md §4.D.
func (fb *FrameBuffer) BlitRegion(src *FrameBuffer, sx, sy, sw, sh, x, y int, key int64) {
	if sw <= 0 || sh <= 0 {
		return
	}

	// Clip the source window to src's bounds, carrying the same
	// adjustment over to the destination origin.
	if sx < 0 {
		sw += sx
		x -= sx
		sx = 0
	}
	if sy < 0 {
		sh += sy
		y -= sy
		sy = 0
	}
	if sx+sw > src.width {
		sw = src.width - sx
	}
	if sy+sh > src.height {
		sh = src.height - sy
	}
	if sw <= 0 || sh <= 0 {
		return
	}

	// Clip the destination window to fb's bounds, carrying the
	// adjustment back onto the source window.
	if x < 0 {
		sw += x
		sx -= x
		x = 0
	}
	if y < 0 {
		sh += y
		sy -= y
		y = 0
	}
	if x+sw > fb.width {
		sw = fb.width - x
	}
	if y+sh > fb.height {
		sh = fb.height - y
	}
	if sw <= 0 || sh <= 0 {
		return
	}

	srcOps := formatTable[src.format]
	for row := 0; row < sh; row++ {
		for col := 0; col < sw; col++ {
			v := srcOps.getPixel(src, sx+col, sy+row)
			if key != NoKey && int64(v) == key {
				continue
			}
			fb.SetPixel(x+col, y+row, v)
		}
	}
}

// Scroll shifts the entire framebuffer by (dx,dy) in place. Iteration
// direction is chosen so writes never clobber a read that's still
// pending (spec.md §4.D): right-to-left when dx>=0, bottom-to-top
// when dy>=0, and the mirror image otherwise. Pixels that would read
// from outside the framebuffer are left unmodified; Scroll never
// clears the vacated region (spec.md §9 Open Question, preserved).
func (fb *FrameBuffer) Scroll(dx, dy int) {
	ops := formatTable[fb.format]

	xs, xe, xstep := 0, fb.width, 1
	if dx >= 0 {
		xs, xe, xstep = fb.width-1, -1, -1
	}
	ys, ye, ystep := 0, fb.height, 1
	if dy >= 0 {
		ys, ye, ystep = fb.height-1, -1, -1
	}

	for y := ys; y != ye; y += ystep {
		sy := y - dy
		if sy < 0 || sy >= fb.height {
			continue
		}
		for x := xs; x != xe; x += xstep {
			sx := x - dx
			if sx < 0 || sx >= fb.width {
				continue
			}
			ops.setPixel(fb, x, y, ops.getPixel(fb, sx, sy))
		}
	}
}
