package framebuf

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

// S4 from spec.md §8 (Bresenham line, the as-implemented plotted set).
func TestScenarioS4Line(t *testing.T) {
	c := qt.New(t)
	fb := newTestFB(c, 8, 8, MVLSB)
	fb.Line(0, 0, 4, 2, 1)

	want := map[[2]int]bool{
		{0, 0}: true, {1, 1}: true, {2, 1}: true, {3, 2}: true, {4, 2}: true,
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v, _ := fb.Pixel(x, y)
			got := v != 0
			c.Assert(got, qt.Equals, want[[2]int{x, y}], qt.Commentf("(%d,%d)", x, y))
		}
	}
}

// S5 from spec.md §8: degenerate filled triangle, all vertices on one
// scanline.
func TestScenarioS5TriangleDegenerate(t *testing.T) {
	c := qt.New(t)
	fb := newTestFB(c, 8, 8, PL8)
	fb.Triangle(0, 5, 3, 5, 6, 5, 1, true)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v, _ := fb.Pixel(x, y)
			want := uint32(0)
			if y == 5 && x >= 0 && x <= 6 {
				want = 1
			}
			c.Assert(v, qt.Equals, want, qt.Commentf("(%d,%d)", x, y))
		}
	}
}

// TestTriangleFillDiamond exercises both scanline halves of the filled
// triangle algorithm (spec.md §4.C) with a non-degenerate apex-right
// triangle, where the right edge (edge01 then edge12) grows then
// shrinks back to the left edge (edge02, flat at x=0).
func TestTriangleFillDiamond(t *testing.T) {
	c := qt.New(t)
	fb := newTestFB(c, 6, 6, PL8)
	fb.Triangle(0, 0, 4, 2, 0, 4, 1, true)

	wantRowSpan := map[int][2]int{
		0: {0, 0},
		1: {0, 2},
		2: {0, 4},
		3: {0, 2},
		4: {0, 0},
	}
	for y := 0; y < 6; y++ {
		span, wantRow := wantRowSpan[y]
		for x := 0; x < 6; x++ {
			v, _ := fb.Pixel(x, y)
			want := uint32(0)
			if wantRow && x >= span[0] && x <= span[1] {
				want = 1
			}
			c.Assert(v, qt.Equals, want, qt.Commentf("(%d,%d)", x, y))
		}
	}
}

func TestClippingIsNoop(t *testing.T) {
	c := qt.New(t)
	fb := newTestFB(c, 4, 4, PL8)
	before := append([]byte(nil), fb.Buffer()...)

	fb.FillRect(10, 10, 2, 2, 1)
	fb.Rect(-5, -5, 1, 1, 1)
	fb.Line(100, 100, 200, 200, 1)
	fb.Circle(100, 100, 3, 1, true)

	c.Assert(fb.Buffer(), qt.DeepEquals, before)
}

func TestRectOutline(t *testing.T) {
	c := qt.New(t)
	fb := newTestFB(c, 6, 6, PL8)
	fb.Rect(1, 1, 4, 4, 1)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			v, _ := fb.Pixel(x, y)
			onEdge := (x == 1 || x == 4) && y >= 1 && y <= 4 ||
				(y == 1 || y == 4) && x >= 1 && x <= 4
			want := uint32(0)
			if onEdge {
				want = 1
			}
			c.Assert(v, qt.Equals, want, qt.Commentf("(%d,%d)", x, y))
		}
	}
}

func TestCircleFilledIsSymmetric(t *testing.T) {
	c := qt.New(t)
	fb := newTestFB(c, 21, 21, PL8)
	fb.Circle(10, 10, 8, 1, true)

	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			v, _ := fb.Pixel(x, y)
			mirrored, _ := fb.Pixel(20-x, 20-y)
			c.Assert(v, qt.Equals, mirrored, qt.Commentf("(%d,%d)", x, y))
		}
	}
}

func TestText(t *testing.T) {
	c := qt.New(t)
	fb := newTestFB(c, 16, 8, MHMSB)
	fb.Text("A", 0, 0, 1)

	// Some pixel in the glyph's column range should be set; an empty
	// render would mean the font table lookup broke.
	any := false
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if v, _ := fb.Pixel(x, y); v != 0 {
				any = true
			}
		}
	}
	c.Assert(any, qt.IsTrue)
}

func TestTraingleAliasMatchesTriangle(t *testing.T) {
	c := qt.New(t)
	a := newTestFB(c, 10, 10, PL8)
	b := newTestFB(c, 10, 10, PL8)

	a.Triangle(1, 1, 8, 2, 4, 8, 1, true)
	b.Traingle(1, 1, 8, 2, 4, 8, 1, true)

	c.Assert(a.Buffer(), qt.DeepEquals, b.Buffer())
}
