package framebuf

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestNearestPaletteIndex(t *testing.T) {
	c := qt.New(t)
	pal := []uint32{0x000000, 0xFF0000, 0x00FF00, 0x0000FF}

	c.Assert(nearestPaletteIndex(pal, 0x010000), qt.Equals, 0)
	c.Assert(nearestPaletteIndex(pal, 0xFE0101), qt.Equals, 1)
	c.Assert(nearestPaletteIndex(pal, 0x01FE01), qt.Equals, 2)
	c.Assert(nearestPaletteIndex(pal, 0x0101FE), qt.Equals, 3)
}

func TestResolveColorOnlyAffectsPL8WithPalette(t *testing.T) {
	c := qt.New(t)
	pal := []uint32{0x000000, 0xFFFFFF}

	pl8 := newTestFB(c, 1, 1, PL8)
	pl8.SetPalette(pal)
	c.Assert(pl8.resolveColor(0xFFFFFF), qt.Equals, uint32(1))

	pl8NoPalette := newTestFB(c, 1, 1, PL8)
	c.Assert(pl8NoPalette.resolveColor(0xFFFFFF), qt.Equals, uint32(0xFFFFFF))

	rgb := newTestFB(c, 1, 1, RGB565)
	rgb.SetPalette(pal)
	c.Assert(rgb.resolveColor(0xFFFFFF), qt.Equals, uint32(0xFFFFFF))
}
