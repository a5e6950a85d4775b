package gif

import (
	"errors"
	"io"
)

// errCorruptStream is returned when the LZW code stream references a
// dictionary entry that can't exist yet (anything other than the
// legitimate "string + its own first character" KwKwK case), or when
// the prefix chain cycles back on itself. Either aborts the current
// decode call cleanly, per spec.md §7.
var errCorruptStream = errors.New("gif: corrupt lzw stream")

// bitReader packs codes of a caller-chosen width out of a byte stream,
// LSB-first, spanning byte boundaries as needed. It is the idiomatic
// equivalent of the 300-byte sliding refill window spec.md §4.G
// describes: externally it behaves the same (codes of varying width
// read transparently across GIF sub-block boundaries), but threads the
// accumulator through an io.ByteReader instead of hand-managing
// a fixed window.
type bitReader struct {
	src   io.ByteReader
	acc   uint32
	nbits uint
}

func (b *bitReader) readCode(size int) (int, error) {
	for b.nbits < uint(size) {
		c, err := b.src.ReadByte()
		if err != nil {
			return 0, err
		}
		b.acc |= uint32(c) << b.nbits
		b.nbits += 8
	}
	mask := uint32(1)<<uint(size) - 1
	code := int(b.acc & mask)
	b.acc >>= uint(size)
	b.nbits -= uint(size)
	return code, nil
}

// lzwDecoder implements the GIF-flavored variable-width LZW
// decompressor described in spec.md §4.G: a clear code that resets
// the dictionary, an end code, the KwKwK special case, and a
// prefix/suffix dictionary of up to 4096 entries unwound onto a
// LIFO stack one output code at a time.
type lzwDecoder struct {
	br *bitReader

	minCodeSize int
	clearCode   int
	endCode     int

	codeSize    int
	maxCodeSize int
	nextCode    int

	prefix [4096]int
	suffix [4096]byte

	oldCode   int
	firstCode int

	stack []byte
	ended bool
}

func newLZWDecoder(r io.ByteReader, minCodeSize int) (*lzwDecoder, error) {
	if minCodeSize < 2 || minCodeSize > 8 {
		return nil, errCorruptStream
	}
	d := &lzwDecoder{
		br:          &bitReader{src: r},
		minCodeSize: minCodeSize,
		stack:       make([]byte, 0, 4096),
	}
	d.clearCode = 1 << minCodeSize
	d.endCode = d.clearCode + 1
	d.resetDict()
	return d, nil
}

func (d *lzwDecoder) resetDict() {
	d.codeSize = d.minCodeSize + 1
	d.maxCodeSize = 2 << d.minCodeSize
	d.nextCode = d.clearCode + 2
	for i := 0; i < d.clearCode; i++ {
		d.suffix[i] = byte(i)
	}
}

// ReadByte returns the next decompressed byte, per spec.md's "emission
// is LIFO off the decompression stack; the frame compositor pulls one
// byte at a time."
func (d *lzwDecoder) ReadByte() (byte, error) {
	for len(d.stack) == 0 {
		if d.ended {
			return 0, io.EOF
		}
		if err := d.decodeNext(); err != nil {
			return 0, err
		}
	}
	b := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return b, nil
}

// decodeNext reads one LZW code and pushes the bytes it expands to
// onto d.stack, in an order such that popping the stack (last pushed
// first) yields them in forward output order.
func (d *lzwDecoder) decodeNext() error {
	code, err := d.br.readCode(d.codeSize)
	if err != nil {
		return err
	}

	if code == d.clearCode {
		d.resetDict()
		for code == d.clearCode {
			code, err = d.br.readCode(d.codeSize)
			if err != nil {
				return err
			}
		}
		if code == d.endCode {
			d.ended = true
			return io.EOF
		}
		d.oldCode = code
		d.firstCode = code
		d.stack = append(d.stack, byte(code))
		return nil
	}

	if code == d.endCode {
		d.ended = true
		return io.EOF
	}

	incoming := code
	work := code
	if code >= d.nextCode {
		if code != d.nextCode {
			return errCorruptStream
		}
		d.stack = append(d.stack, byte(d.firstCode))
		work = d.oldCode
	}

	for work >= d.clearCode {
		if work == d.prefix[work] {
			return errCorruptStream
		}
		d.stack = append(d.stack, d.suffix[work])
		work = d.prefix[work]
	}
	d.firstCode = int(d.suffix[work])
	d.stack = append(d.stack, byte(d.firstCode))

	if d.nextCode < 4096 {
		d.prefix[d.nextCode] = d.oldCode
		d.suffix[d.nextCode] = byte(d.firstCode)
		d.nextCode++
		if d.nextCode >= d.maxCodeSize && d.codeSize < 12 {
			d.maxCodeSize *= 2
			d.codeSize++
		}
	}
	d.oldCode = incoming
	return nil
}
