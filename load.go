package framebuf

import (
	"fmt"
	"io"
	"os"

	"github.com/flga/framebuf/internal/bmp"
	"github.com/flga/framebuf/internal/gif"
)

// LoadBMP reads a 24 or 32 bpp uncompressed BMP from path and paints
// it into fb at (x,y), matching spec.md §4.E. A BMP with an
// unsupported bit depth, or a file that can't be opened, aborts
// cleanly without touching fb and returns the underlying error.
func (fb *FrameBuffer) LoadBMP(path string, x, y int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("framebuf: LoadBMP: %w", err)
	}
	defer f.Close()
	return fb.LoadBMPReader(f, x, y)
}

// LoadBMPReader is LoadBMP over an already-open reader, for callers
// that supply their own filesystem collaborator (spec.md §6).
func (fb *FrameBuffer) LoadBMPReader(r io.Reader, x, y int) error {
	return bmp.Decode(r, paletteResolvingPainter{fb}, x, y)
}

// GIFOptions configures LoadGIF's playback behavior.
type GIFOptions struct {
	// Callback is invoked after each frame is composited, before the
	// next frame starts decoding, per spec.md §4.F and §6.
	Callback func()

	// Cancel is polled between the 10ms sleep ticks between frames;
	// once it returns true, playback stops before the next frame
	// without an error, the Go-native stand-in for clearing the
	// original's gif_decoding flag (spec.md §5).
	Cancel func() bool

	// Sleep overrides the per-tick delay hook; nil uses a real-time
	// sleep. Tests pass a no-op or counting func here.
	Sleep func(ms int)
}

// LoadGIF decodes the animated GIF at path, painting each frame into
// fb at (x,y), per spec.md §4.F-H.
func (fb *FrameBuffer) LoadGIF(path string, x, y int, opts GIFOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("framebuf: LoadGIF: %w", err)
	}
	defer f.Close()
	return fb.LoadGIFReader(f, x, y, opts)
}

// LoadGIFReader is LoadGIF over an already-open reader.
func (fb *FrameBuffer) LoadGIFReader(r io.Reader, x, y int, opts GIFOptions) error {
	return gif.Decode(r, paletteResolvingPainter{fb}, gif.Options{
		OriginX:   x,
		OriginY:   y,
		OnFrame:   opts.Callback,
		Cancelled: opts.Cancel,
		Sleep:     opts.Sleep,
	})
}
