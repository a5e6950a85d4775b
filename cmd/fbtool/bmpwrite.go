package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/flga/framebuf"
)

// dumpBMP writes fb out as an uncompressed 24bpp bottom-up BMP,
// converting each format's canonical pixel representation to RGB888
// the same way the original binding's color-input convention does
// for RGB565 (spec.md §3) and treating indexed/mono formats as
// grayscale intensities for display purposes.
func dumpBMP(fb *framebuf.FrameBuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	width, height := fb.Width(), fb.Height()
	rowBytes := width * 3
	pixelDataSize := rowBytes * height
	offBits := uint32(14 + 40)
	fileSize := offBits + uint32(pixelDataSize)

	// BITMAPFILEHEADER
	w.WriteString("BM")
	binary.Write(w, binary.LittleEndian, fileSize)
	binary.Write(w, binary.LittleEndian, uint16(0))
	binary.Write(w, binary.LittleEndian, uint16(0))
	binary.Write(w, binary.LittleEndian, offBits)

	// BITMAPINFOHEADER
	binary.Write(w, binary.LittleEndian, uint32(40))
	binary.Write(w, binary.LittleEndian, int32(width))
	binary.Write(w, binary.LittleEndian, int32(height))
	binary.Write(w, binary.LittleEndian, uint16(1))
	binary.Write(w, binary.LittleEndian, uint16(24))
	binary.Write(w, binary.LittleEndian, uint32(0))
	binary.Write(w, binary.LittleEndian, uint32(pixelDataSize))
	binary.Write(w, binary.LittleEndian, int32(2835))
	binary.Write(w, binary.LittleEndian, int32(2835))
	binary.Write(w, binary.LittleEndian, uint32(0))
	binary.Write(w, binary.LittleEndian, uint32(0))

	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			r, g, b := pixelToRGB(fb, x, y)
			w.WriteByte(b)
			w.WriteByte(g)
			w.WriteByte(r)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing bmp: %w", err)
	}
	return nil
}

func pixelToRGB(fb *framebuf.FrameBuffer, x, y int) (r, g, b byte) {
	v, ok := fb.Pixel(x, y)
	if !ok {
		return 0, 0, 0
	}
	switch fb.Format() {
	case framebuf.RGB565:
		r = byte((v>>11)&0x1F) << 3
		g = byte((v>>5)&0x3F) << 2
		b = byte(v&0x1F) << 3
	case framebuf.PL8:
		r, g, b = byte(v), byte(v), byte(v)
	case framebuf.GS4_HMSB:
		gray := byte(v) * 17
		r, g, b = gray, gray, gray
	case framebuf.GS2_HMSB:
		gray := byte(v) * 85
		r, g, b = gray, gray, gray
	default: // monochrome formats
		if v != 0 {
			r, g, b = 0xFF, 0xFF, 0xFF
		}
	}
	return
}
