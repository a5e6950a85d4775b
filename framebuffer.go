// Package framebuf implements an embedded 2D framebuffer graphics
// library: it owns no display hardware, only a caller-provided byte
// buffer interpreted as a pixel grid in one of seven packings, plus
// drawing primitives and BMP/GIF decoders that paint into it.
package framebuf

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned by New when the requested Format is
// not one of the seven recognized pixel packings.
var ErrInvalidFormat = errors.New("framebuf: invalid pixel format")

// ErrBufferTooSmall is returned by New when buf cannot hold a pixel
// grid of the requested dimensions in the requested format.
var ErrBufferTooSmall = errors.New("framebuf: buffer too small")

// FrameBuffer is a non-owning view over a caller-supplied byte buffer,
// interpreted as a width x height grid of pixels in one of the
// supported Formats. The buffer must outlive every call made against
// the FrameBuffer; FrameBuffer never allocates or frees it.
type FrameBuffer struct {
	buf     []byte
	width   int
	height  int
	stride  int
	format  Format
	palette []uint32
}

// New constructs a FrameBuffer over buf. stride is in pixels; pass 0
// to default it to width. The effective stride is rounded up to the
// format's required alignment (spec.md §3) before buf's length is
// validated.
func New(buf []byte, width, height int, format Format, stride int) (*FrameBuffer, error) {
	if !format.valid() {
		return nil, fmt.Errorf("framebuf: New: %w: %v", ErrInvalidFormat, int(format))
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("framebuf: New: non-positive dimension %dx%d", width, height)
	}
	if stride <= 0 {
		stride = width
	}
	stride = roundStride(format, stride)

	need := byteLen(format, stride, height)
	if len(buf) < need {
		return nil, fmt.Errorf("framebuf: New: %w: need %d bytes for %dx%d %v, got %d", ErrBufferTooSmall, need, width, height, format, len(buf))
	}

	return &FrameBuffer{
		buf:    buf,
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// NewFrameBuffer1 is the legacy constructor: it always produces an
// MVLSB framebuffer, matching the original binding's FrameBuffer1.
func NewFrameBuffer1(buf []byte, width, height, stride int) (*FrameBuffer, error) {
	return New(buf, width, height, MVLSB, stride)
}

// Width returns the framebuffer's logical pixel width.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the framebuffer's logical pixel height.
func (fb *FrameBuffer) Height() int { return fb.height }

// Stride returns the effective row stride, in pixels.
func (fb *FrameBuffer) Stride() int { return fb.stride }

// Format returns the pixel format the framebuffer was constructed with.
func (fb *FrameBuffer) Format() Format { return fb.format }

// Buffer returns the backing byte span actually addressed by pixel
// operations: stride*height scaled by the format's true bits-per-pixel,
// not the over-counting stride*height*unit formula the original
// binding used for get_buffer (see DESIGN.md's Open Questions).
func (fb *FrameBuffer) Buffer() []byte {
	return fb.buf[:byteLen(fb.format, fb.stride, fb.height)]
}

// SetPalette installs a lookup table consulted by image loaders
// (internal/bmp, internal/gif) when painting into a PL8 destination:
// it lets a loader resolve a decoded RGB888 color to the palette
// index nearest to it. PL8 itself stores the raw index passed to
// SetPixel/Pixel untouched — spec.md's GLOSSARY is explicit that PL8
// applies no palette on its own.
func (fb *FrameBuffer) SetPalette(p []uint32) { fb.palette = p }

func (fb *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.width && y < fb.height
}

// SetPixel writes col at (x,y), converted per the framebuffer's
// format. Out-of-bounds coordinates are silently ignored.
func (fb *FrameBuffer) SetPixel(x, y int, col uint32) {
	if !fb.inBounds(x, y) {
		return
	}
	formatTable[fb.format].setPixel(fb, x, y, col)
}

// Pixel reads the pixel at (x,y) in its format-canonical
// representation. ok is false for an out-of-bounds coordinate.
func (fb *FrameBuffer) Pixel(x, y int) (col uint32, ok bool) {
	if !fb.inBounds(x, y) {
		return 0, false
	}
	return formatTable[fb.format].getPixel(fb, x, y), true
}

// clipRect intersects (x,y,w,h) with the framebuffer bounds. ok is
// false when the result is empty.
func (fb *FrameBuffer) clipRect(x, y, w, h int) (cx, cy, cw, ch int, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	x1, y1 := x+w, y+h
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x1 > fb.width {
		x1 = fb.width
	}
	if y1 > fb.height {
		y1 = fb.height
	}
	if x1 <= x || y1 <= y {
		return 0, 0, 0, 0, false
	}
	return x, y, x1 - x, y1 - y, true
}
