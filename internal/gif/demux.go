// Package gif implements the GIF87a/89a demuxer, LZW decompressor and
// frame compositor spec.md §4.F-H describe: it reads a GIF byte stream
// and paints each frame through a Painter, driving an optional
// per-frame callback and a cancellable inter-frame delay.
package gif

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrBadSignature is returned when the first six bytes of the stream
// are neither "GIF87a" nor "GIF89a".
var ErrBadSignature = errors.New("gif: bad signature")

const (
	introImage     = 0x2C
	introExtension = 0x21
	introTrailer   = 0x3B

	extGraphicsControl = 0xF9
)

// Options configures a Decode call. Zero value is a usable default:
// no callback, no cancellation, real-time sleeps.
type Options struct {
	// OriginX, OriginY offset every painted pixel, matching the
	// x,y parameters FrameBuffer.LoadGIF accepts.
	OriginX, OriginY int

	// OnFrame, if non-nil, is invoked after each frame is
	// composited, the global color table restored and the
	// inter-frame delay elapsed, per spec.md §4.F.
	OnFrame func()

	// Cancelled is polled between each 10ms sleep tick; once it
	// returns true, Decode stops before drawing another frame and
	// returns nil. A nil Cancelled never stops the decode early.
	Cancelled func() bool

	// Sleep overrides the per-tick delay hook (default time.Sleep),
	// the Go-native stand-in for the host's sleep_ms(n) collaborator
	// (spec.md §1).
	Sleep func(ms int)
}

type graphicsControl struct {
	Delay       int
	Disposal    int
	Transparent int
}

func defaultGCE() graphicsControl {
	return graphicsControl{Transparent: -1}
}

// Decode reads a full GIF stream from r, painting each frame through p
// until the trailer, EOF, or cancellation.
func Decode(r io.Reader, p Painter, opts Options) error {
	br := bufio.NewReader(r)

	if err := checkSignature(br); err != nil {
		return err
	}

	screen, global, _, err := readLogicalScreen(br)
	if err != nil {
		return err
	}
	backup := global

	gce := defaultGCE()
	var prevDesc *imageDescriptor
	prevDisposal := 0

	for {
		intro, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch intro {
		case introTrailer:
			return nil

		case introExtension:
			if err := readExtension(br, &gce); err != nil {
				return err
			}

		case introImage:
			desc, table, usedLocal, err := readImageDescriptor(br, global)
			if err != nil {
				return err
			}

			if prevDesc != nil && prevDisposal == 2 {
				bg, _ := table.at(int(screen.BackgroundColorIndex))
				clearDisposal2(p, *prevDesc, desc, opts.OriginX, opts.OriginY, bg)
			}

			minCodeSize, err := br.ReadByte()
			if err != nil {
				return err
			}
			sub := newSubBlockReader(br)
			lzw, err := newLZWDecoder(sub, int(minCodeSize))
			if err != nil {
				return err
			}

			if err := renderFrameWithDisposal2Bug(p, desc, lzw, table, gce.Transparent, gce.Disposal, opts.OriginX, opts.OriginY); err != nil && err != io.EOF {
				return fmt.Errorf("gif: decoding frame: %w", err)
			}
			if err := sub.skipToEnd(); err != nil && err != io.EOF {
				return err
			}

			if usedLocal {
				global = backup
			}

			prevDesc = &desc
			prevDisposal = gce.Disposal

			// §4.F orders this sleep before the callback; §6 describes
			// the callback firing "before the inter-frame sleep" —
			// the two sections of the spec disagree. We follow §4.F's
			// explicit step order.
			if err := sleepInterFrame(gce.Delay, opts); err != nil {
				return err
			}
			if opts.OnFrame != nil {
				opts.OnFrame()
			}

			gce = defaultGCE()

			if opts.Cancelled != nil && opts.Cancelled() {
				return nil
			}

		default:
			return fmt.Errorf("gif: unexpected block introducer 0x%02X", intro)
		}
	}
}

func checkSignature(r io.Reader) error {
	var sig [6]byte
	if _, err := io.ReadFull(r, sig[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	s := string(sig[:])
	if s != "GIF87a" && s != "GIF89a" {
		return fmt.Errorf("%w: %q", ErrBadSignature, s)
	}
	return nil
}

func readLogicalScreen(r io.Reader) (logicalScreen, ColorTable, bool, error) {
	var buf [7]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return logicalScreen{}, ColorTable{}, false, fmt.Errorf("gif: reading logical screen descriptor: %w", err)
	}
	packed := buf[4]
	screen := logicalScreen{
		Width:                int(buf[0]) | int(buf[1])<<8,
		Height:                int(buf[2]) | int(buf[3])<<8,
		BackgroundColorIndex: buf[5],
	}
	hasGlobal := packed&0x80 != 0

	var table ColorTable
	var err error
	if hasGlobal {
		table, err = readColorTable(r, tableSize(packed))
		if err != nil {
			return screen, table, false, err
		}
	}
	return screen, table, hasGlobal, nil
}

type logicalScreen struct {
	Width, Height        int
	BackgroundColorIndex byte
}

func readImageDescriptor(r io.Reader, global ColorTable) (imageDescriptor, ColorTable, bool, error) {
	var buf [9]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return imageDescriptor{}, ColorTable{}, false, fmt.Errorf("gif: reading image descriptor: %w", err)
	}
	desc := imageDescriptor{
		XOff:      int(buf[0]) | int(buf[1])<<8,
		YOff:      int(buf[2]) | int(buf[3])<<8,
		Width:     int(buf[4]) | int(buf[5])<<8,
		Height:    int(buf[6]) | int(buf[7])<<8,
		Interlace: buf[8]&0x40 != 0,
	}

	flags := buf[8]
	if flags&0x80 == 0 {
		return desc, global, false, nil
	}

	local, err := readColorTable(r, tableSize(flags))
	if err != nil {
		return desc, ColorTable{}, false, err
	}
	return desc, local, true, nil
}

func readExtension(r io.Reader, gce *graphicsControl) error {
	label, err := readByte(r)
	if err != nil {
		return err
	}
	if label != extGraphicsControl {
		return drainSubBlocks(r)
	}

	size, err := readByte(r)
	if err != nil {
		return err
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return err
	}
	if err := drainSubBlocks(r); err != nil {
		return err
	}
	if len(data) < 4 {
		return nil
	}
	flags := data[0]
	delay := int(data[1]) | int(data[2])<<8
	transparent := -1
	if flags&0x1 != 0 {
		transparent = int(data[3])
	}
	*gce = graphicsControl{
		Delay:       delay,
		Disposal:    int(flags>>2) & 0x7,
		Transparent: transparent,
	}
	return nil
}

func readByte(r io.Reader) (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// sleepInterFrame waits max(delay,10)*10 milliseconds in 10ms ticks,
// checking opts.Cancelled between ticks so a caller can interrupt
// playback promptly, per spec.md §5.
func sleepInterFrame(delayCentiseconds int, opts Options) error {
	delay := delayCentiseconds
	if delay < 10 {
		delay = 10
	}
	remaining := delay * 10

	sleep := opts.Sleep
	if sleep == nil {
		sleep = func(ms int) { time.Sleep(time.Duration(ms) * time.Millisecond) }
	}

	for remaining > 0 {
		if opts.Cancelled != nil && opts.Cancelled() {
			return nil
		}
		tick := 10
		if tick > remaining {
			tick = remaining
		}
		sleep(tick)
		remaining -= tick
	}
	return nil
}
