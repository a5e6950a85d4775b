package gif

import (
	"errors"
	"io"
)

// errPaletteIndex is returned when a decoded pixel refers to a palette
// entry outside [0, numcolors), per spec.md §4.H.
var errPaletteIndex = errors.New("gif: palette index out of range")

// imageDescriptor is a GIF image descriptor (spec.md §3): the
// rectangle a frame paints into, plus the interlace flag.
type imageDescriptor struct {
	XOff, YOff, Width, Height int
	Interlace                bool
}

// Painter is the subset of framebuf.FrameBuffer the GIF decoder
// paints through. FrameBuffer.FillRect satisfies it directly.
type Painter interface {
	FillRect(x, y, w, h int, col uint32)
}

// clearRectCap is the hard-coded sanity limit on a disposal-2
// pre-clear strip, carried over from the original display-target
// implementation this package is distilled from (spec.md §4.H, §9).
const clearRectCap = 320

// interlaceOrder returns, for a height-row interlaced image, the
// sequence of destination row offsets in the 4-pass order spec.md
// §4.H and the GLOSSARY describe: starts {0,4,2,1}, steps {8,8,4,2}.
func interlaceOrder(height int) []int {
	starts := [4]int{0, 4, 2, 1}
	steps := [4]int{8, 8, 4, 2}
	order := make([]int, 0, height)
	for p := 0; p < 4; p++ {
		for y := starts[p]; y < height; y += steps[p] {
			order = append(order, y)
		}
	}
	return order
}

// renderFrameWithDisposal2Bug paints one decoded GIF frame through p,
// pulling palette indexes one byte at a time from src and run-length
// compressing each scanline into fill_rect calls, per spec.md §4.H. It
// also preserves the quirk noted in spec.md §9: when a pixel's index
// equals the transparent index AND the frame's disposal method is 2,
// the original paints it with palette[index] instead of the
// background color. We keep that behavior rather than silently fixing it.
func renderFrameWithDisposal2Bug(p Painter, desc imageDescriptor, src io.ByteReader, palette ColorTable, transparent, disposal int, originX, originY int) error {
	var rows []int
	if desc.Interlace {
		rows = interlaceOrder(desc.Height)
	}

	for n := 0; n < desc.Height; n++ {
		y := n
		if desc.Interlace {
			y = rows[n]
		}
		outY := originY + desc.YOff + y

		oldIndex := -1
		runStart := 0
		flush := func(end int) {
			if oldIndex < 0 || end <= runStart {
				return
			}
			if oldIndex != transparent || disposal == 2 {
				// palette.at was already validated when this index was
				// pulled, below.
				color, _ := palette.at(oldIndex)
				p.FillRect(originX+desc.XOff+runStart, outY, end-runStart, 1, color)
			}
		}

		for x := 0; x < desc.Width; x++ {
			b, err := src.ReadByte()
			if err != nil {
				return err
			}
			idx := int(b)
			if idx < 0 || idx >= palette.N {
				return errPaletteIndex
			}
			if idx != oldIndex {
				flush(x)
				oldIndex = idx
				runStart = x
			}
		}
		flush(desc.Width)
	}
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// clearDisposal2 clears the part of prev's rectangle that falls
// outside cur's rectangle to bg, in up to four strips (top, bottom,
// left, right), per spec.md §4.H. Each strip is skipped if empty or
// if either extent exceeds clearRectCap.
func clearDisposal2(p Painter, prev, cur imageDescriptor, originX, originY int, bg uint32) {
	px0, py0 := originX+prev.XOff, originY+prev.YOff
	px1, py1 := px0+prev.Width, py0+prev.Height
	cx0, cy0 := originX+cur.XOff, originY+cur.YOff
	cx1, cy1 := cx0+cur.Width, cy0+cur.Height

	strip := func(x, y, w, h int) {
		if w <= 0 || h <= 0 || w > clearRectCap || h > clearRectCap {
			return
		}
		p.FillRect(x, y, w, h, bg)
	}

	if py0 < cy0 {
		strip(px0, py0, px1-px0, cy0-py0)
	}
	if py1 > cy1 {
		strip(px0, cy1, px1-px0, py1-cy1)
	}
	top, bot := max(py0, cy0), min(py1, cy1)
	if px0 < cx0 {
		strip(px0, top, cx0-px0, bot-top)
	}
	if px1 > cx1 {
		strip(cx1, top, px1-cx1, bot-top)
	}
}
