package framebuf

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestAccessors(t *testing.T) {
	c := qt.New(t)
	fb := newTestFB(c, 12, 9, RGB565)
	c.Assert(fb.Width(), qt.Equals, 12)
	c.Assert(fb.Height(), qt.Equals, 9)
	c.Assert(fb.Stride(), qt.Equals, 12)
	c.Assert(fb.Format(), qt.Equals, RGB565)
}

func TestNewFrameBuffer1IsMVLSB(t *testing.T) {
	c := qt.New(t)
	fb, err := NewFrameBuffer1(make([]byte, 8), 8, 8, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(fb.Format(), qt.Equals, MVLSB)
}

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	c := qt.New(t)
	_, err := New(make([]byte, 100), 0, 8, PL8, 0)
	c.Assert(err, qt.IsNotNil)
	_, err = New(make([]byte, 100), 8, -1, PL8, 0)
	c.Assert(err, qt.IsNotNil)
}

func TestBufferLengthMatchesTrueByteSize(t *testing.T) {
	c := qt.New(t)
	// 16x16 MVLSB: 8 rows packed per byte-row, so Buffer() must report
	// stride*2 bytes, not stride*height (spec.md §9 Open Question).
	fb, err := New(make([]byte, 32), 16, 16, MVLSB, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(len(fb.Buffer()), qt.Equals, 32)
}

func TestSetPaletteRoundtrips(t *testing.T) {
	c := qt.New(t)
	fb := newTestFB(c, 4, 4, PL8)
	pal := []uint32{0x000000, 0xFF0000, 0x00FF00, 0x0000FF}
	fb.SetPalette(pal)
	c.Assert(fb.palette, qt.DeepEquals, pal)
}
