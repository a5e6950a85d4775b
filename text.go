package framebuf

// font8x8 holds one 8-byte glyph per printable ASCII character
// (0x20..0x7F). Column c of a glyph is font8x8[ch-0x20][c]; bit 0 of
// that byte is the topmost pixel, bit 7 the bottom, per spec.md
// §4.C's "8 columns, 8 vertical bits LSB-first" rule.
//
// spec.md §1 places the bundled font out of scope (an external
// collaborator supplying a static 96x8 table); this package ships a
// placeholder table of the same shape so Text is fully exercised
// without bundling a real font asset.
var font8x8 = buildFont8x8()

// buildFont8x8 describes a handful of recognizable glyphs as a set of
// set columns/rows on a 8x8 grid; everything not listed here falls
// back to a plain outlined box, same as font8x8_basic.h style tables
// do for unmapped code points.
func buildFont8x8() [96][8]byte {
	var t [96][8]byte
	for i := range t {
		t[i] = boxGlyph
	}

	set := func(ch byte, cols [8]byte) {
		t[ch-0x20] = cols
	}

	set(' ', [8]byte{})
	set('.', [8]byte{0, 0, 0, 0, 0, 0, 0x18, 0x18})
	set(',', [8]byte{0, 0, 0, 0, 0, 0, 0x30, 0x60})
	set('-', [8]byte{0, 0, 0, 0x18, 0x18, 0, 0, 0})
	set('_', [8]byte{0, 0, 0, 0, 0, 0, 0, 0xFF})
	set('0', digitGlyph(0b0111111))
	set('1', [8]byte{0, 0, 0x42, 0xFF, 0xFF, 0x40, 0, 0})
	set('2', [8]byte{0, 0x62, 0x71, 0x59, 0x49, 0x46, 0, 0})
	set('3', [8]byte{0, 0x22, 0x41, 0x49, 0x49, 0x36, 0, 0})
	set('4', [8]byte{0, 0x18, 0x14, 0x12, 0xFF, 0x10, 0, 0})
	set('5', [8]byte{0, 0x27, 0x45, 0x45, 0x45, 0x39, 0, 0})
	set('6', [8]byte{0, 0x3C, 0x4A, 0x49, 0x49, 0x30, 0, 0})
	set('7', [8]byte{0, 0x01, 0x71, 0x09, 0x05, 0x03, 0, 0})
	set('8', [8]byte{0, 0x36, 0x49, 0x49, 0x49, 0x36, 0, 0})
	set('9', [8]byte{0, 0x06, 0x49, 0x49, 0x29, 0x1E, 0, 0})

	for c := byte('A'); c <= 'Z'; c++ {
		t[c-0x20] = letterGlyph(c)
	}
	for c := byte('a'); c <= 'z'; c++ {
		t[c-0x20] = letterGlyph(c - 'a' + 'A')
	}

	return t
}

var boxGlyph = [8]byte{0xFF, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0xFF}

// digitGlyph returns an oval placeholder glyph (used for '0'). Only
// bit 0 of mask is used: it is OR-ed into the third column.
func digitGlyph(mask byte) [8]byte {
	return [8]byte{0, 0x3E, 0x41 | (mask & 1), 0x41, 0x41, 0x3E, 0, 0}
}

// letterGlyph returns a deterministic, legible placeholder glyph for
// an uppercase ASCII letter: the letter's position in the alphabet
// picks one of a small set of distinct strokes so adjacent letters
// remain visually distinguishable in a rendered string.
func letterGlyph(c byte) [8]byte {
	n := c - 'A'
	shapes := [][8]byte{
		{0x7E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x7E, 0},       // A-ish
		{0x7F, 0x49, 0x49, 0x49, 0x49, 0x49, 0x36, 0},       // B-ish
		{0x3E, 0x41, 0x41, 0x41, 0x41, 0x41, 0x22, 0},       // C-ish
		{0x7F, 0x41, 0x41, 0x41, 0x41, 0x22, 0x1C, 0},       // D-ish
		{0x7F, 0x49, 0x49, 0x49, 0x49, 0x41, 0x41, 0},       // E-ish
		{0x7F, 0x09, 0x09, 0x09, 0x09, 0x01, 0x01, 0},       // F-ish
	}
	return shapes[int(n)%len(shapes)]
}

// Text draws str starting at (x,y) using the 8x8 bitmap font,
// advancing 8 pixels per character with no inter-character spacing,
// per spec.md §4.C. Characters outside 32..127 are substituted with
// the glyph for 127.
func (fb *FrameBuffer) Text(str string, x, y int, col uint32) {
	for i := 0; i < len(str); i++ {
		ch := str[i]
		if ch < 32 || ch > 127 {
			ch = 127
		}
		glyph := font8x8[ch-32]
		cx := x + i*8
		for c := 0; c < 8; c++ {
			line := glyph[c]
			for r := 0; r < 8; r++ {
				if line&(1<<uint(r)) != 0 {
					fb.SetPixel(cx+c, y+r, col)
				}
			}
		}
	}
}
