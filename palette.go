package framebuf

// resolveColor maps a decoded 0xRRGGBB color to the palette index
// nearest to it when fb is PL8 and a palette has been installed via
// SetPalette; every other format (and a PL8 framebuffer with no
// palette) passes col through untouched, preserving §4.E/§4.H's
// "paint the decoded color directly" behavior.
func (fb *FrameBuffer) resolveColor(col uint32) uint32 {
	if fb.format != PL8 || len(fb.palette) == 0 {
		return col
	}
	return uint32(nearestPaletteIndex(fb.palette, col))
}

// nearestPaletteIndex returns the index of the palette entry closest
// to col in RGB888 space, by squared Euclidean distance.
func nearestPaletteIndex(palette []uint32, col uint32) int {
	r, g, b := int(col>>16&0xFF), int(col>>8&0xFF), int(col&0xFF)

	best, bestDist := 0, -1
	for i, p := range palette {
		pr, pg, pb := int(p>>16&0xFF), int(p>>8&0xFF), int(p&0xFF)
		dr, dg, db := r-pr, g-pg, b-pb
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

// paletteResolvingPainter adapts a *FrameBuffer into the bmp.Painter
// and gif.Painter interfaces, resolving decoded colors to palette
// indexes before writing when fb targets PL8 with a palette set.
type paletteResolvingPainter struct{ fb *FrameBuffer }

func (p paletteResolvingPainter) SetPixel(x, y int, col uint32) {
	p.fb.SetPixel(x, y, p.fb.resolveColor(col))
}

func (p paletteResolvingPainter) FillRect(x, y, w, h int, col uint32) {
	p.fb.FillRect(x, y, w, h, p.fb.resolveColor(col))
}
