package gif

import "io"

// subBlockReader presents a sequence of GIF data sub-blocks (a length
// byte 1..255 followed by that many bytes, terminated by a
// zero-length block) as a flat byte stream, crossing sub-block
// boundaries transparently, per spec.md §4.G.
type subBlockReader struct {
	r         io.Reader
	remaining int
	done      bool
}

func newSubBlockReader(r io.Reader) *subBlockReader {
	return &subBlockReader{r: r}
}

func (s *subBlockReader) ReadByte() (byte, error) {
	for s.remaining == 0 {
		if s.done {
			return 0, io.EOF
		}
		var lenBuf [1]byte
		if _, err := io.ReadFull(s.r, lenBuf[:]); err != nil {
			return 0, err
		}
		if lenBuf[0] == 0 {
			s.done = true
			return 0, io.EOF
		}
		s.remaining = int(lenBuf[0])
	}
	var b [1]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		return 0, err
	}
	s.remaining--
	return b[0], nil
}

// skipToEnd discards the remainder of the current sub-block plus every
// following sub-block up to and including the terminator, leaving the
// reader positioned right after the block sequence. Used once a frame
// has consumed its pixel data but the encoder padded extra sub-blocks.
func (s *subBlockReader) skipToEnd() error {
	for {
		for s.remaining > 0 {
			n, err := io.CopyN(io.Discard, s.r, int64(s.remaining))
			s.remaining -= int(n)
			if err != nil {
				return err
			}
		}
		if s.done {
			return nil
		}
		var lenBuf [1]byte
		if _, err := io.ReadFull(s.r, lenBuf[:]); err != nil {
			return err
		}
		if lenBuf[0] == 0 {
			s.done = true
			return nil
		}
		s.remaining = int(lenBuf[0])
	}
}

// drainSubBlocks reads and discards sub-blocks up to and including the
// terminating zero-length block, used to skip extension payloads and
// trailing image data this decoder doesn't otherwise interpret.
func drainSubBlocks(r io.Reader) error {
	for {
		var lenBuf [1]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return err
		}
		if lenBuf[0] == 0 {
			return nil
		}
		if _, err := io.CopyN(io.Discard, r, int64(lenBuf[0])); err != nil {
			return err
		}
	}
}
