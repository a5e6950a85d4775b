package framebuf

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	stdgif "image/gif"
	"testing"

	qt "github.com/frankban/quicktest"
)

func buildMinimalBMP(t *testing.T, width, height int, topToBottomRows [][]uint32) []byte {
	t.Helper()
	bytesPerPixel := 3
	rowBytes := width * bytesPerPixel
	pixelData := make([]byte, 0, rowBytes*height)
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			col := topToBottomRows[y][x]
			pixelData = append(pixelData, byte(col), byte(col>>8), byte(col>>16))
		}
	}

	const fileHeaderSize, infoHeaderSize = 14, 40
	offBits := uint32(fileHeaderSize + infoHeaderSize)

	buf := &bytes.Buffer{}
	buf.WriteString("BM")
	binary.Write(buf, binary.LittleEndian, offBits+uint32(len(pixelData)))
	binary.Write(buf, binary.LittleEndian, uint16(0))
	binary.Write(buf, binary.LittleEndian, uint16(0))
	binary.Write(buf, binary.LittleEndian, offBits)

	binary.Write(buf, binary.LittleEndian, uint32(infoHeaderSize))
	binary.Write(buf, binary.LittleEndian, int32(width))
	binary.Write(buf, binary.LittleEndian, int32(height))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(24))
	binary.Write(buf, binary.LittleEndian, uint32(0))
	binary.Write(buf, binary.LittleEndian, uint32(len(pixelData)))
	binary.Write(buf, binary.LittleEndian, int32(0))
	binary.Write(buf, binary.LittleEndian, int32(0))
	binary.Write(buf, binary.LittleEndian, uint32(0))
	binary.Write(buf, binary.LittleEndian, uint32(0))

	buf.Write(pixelData)
	return buf.Bytes()
}

func TestLoadBMPReaderPaintsIntoFrameBuffer(t *testing.T) {
	c := qt.New(t)
	rows := [][]uint32{
		{0xFF0000, 0x00FF00},
		{0x0000FF, 0xFFFFFF},
	}
	data := buildMinimalBMP(t, 2, 2, rows)

	fb := newTestFB(c, 4, 4, PL8)
	fb.SetPalette([]uint32{0x000000, 0xFF0000, 0x00FF00, 0x0000FF, 0xFFFFFF})
	err := fb.LoadBMPReader(bytes.NewReader(data), 1, 1)
	c.Assert(err, qt.IsNil)

	want := map[[2]int]uint32{
		{1, 1}: 1, // 0xFF0000
		{2, 1}: 2, // 0x00FF00
		{1, 2}: 3, // 0x0000FF
		{2, 2}: 4, // 0xFFFFFF
	}
	for coord, idx := range want {
		v, _ := fb.Pixel(coord[0], coord[1])
		c.Assert(v, qt.Equals, idx, qt.Commentf("%v", coord))
	}
}

func TestLoadGIFReaderPaintsAndCallsBack(t *testing.T) {
	c := qt.New(t)
	pal := color.Palette{
		color.RGBA{0, 0, 0, 0xFF},
		color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	}
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), pal)
	img.SetColorIndex(0, 0, 1)
	img.SetColorIndex(1, 1, 1)

	var gifBytes bytes.Buffer
	c.Assert(stdgif.Encode(&gifBytes, img, nil), qt.IsNil)

	fb := newTestFB(c, 4, 4, RGB565)
	frames := 0
	err := fb.LoadGIFReader(bytes.NewReader(gifBytes.Bytes()), 0, 0, GIFOptions{
		Sleep:    func(int) {},
		Callback: func() { frames++ },
	})
	c.Assert(err, qt.IsNil)
	c.Assert(frames, qt.Equals, 1)

	v, _ := fb.Pixel(0, 0)
	c.Assert(v, qt.Equals, uint32(0xFFFF)) // white in RGB565
}
