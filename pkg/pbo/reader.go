package pbo

import (
	"encoding/binary"
	"io"
)

// maxFilenameLen bounds a single NUL-terminated filename read from the TOC,
// mirroring binconfig.MaxInlineStringLen for the same reason: a hostile or
// truncated archive must not make the reader buffer unbounded memory.
const maxFilenameLen = 10 * 1024

// byteReader is a minimal positional reader over the archive stream: fixed
// little-endian integers and NUL-terminated strings, plus seek/tell. It is
// unexported; callers go through Archive/Entry/Unpack.
type byteReader struct {
	r   io.ReadSeeker
	pos int64
}

func newByteReader(r io.ReadSeeker) *byteReader {
	return &byteReader{r: r}
}

func (b *byteReader) readFull(buf []byte) error {
	n, err := io.ReadFull(b.r, buf)
	b.pos += int64(n)
	if err != nil {
		return ErrUnexpectedEOF
	}
	return nil
}

func (b *byteReader) u32() (uint32, error) {
	var buf [4]byte
	if err := b.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// cString reads a NUL-terminated byte string, bounded by maxFilenameLen.
func (b *byteReader) cString() (string, error) {
	var out []byte
	var cur [1]byte
	for {
		n, err := b.r.Read(cur[:])
		if n == 1 {
			b.pos++
		}
		if err != nil {
			if len(out) > 0 || err != io.EOF {
				return "", ErrMalformedString
			}
			return "", ErrUnexpectedEOF
		}
		if cur[0] == 0 {
			return string(out), nil
		}
		if len(out) >= maxFilenameLen {
			return "", ErrMalformedString
		}
		out = append(out, cur[0])
	}
}

func (b *byteReader) seek(offset int64) error {
	pos, err := b.r.Seek(offset, io.SeekStart)
	if err != nil {
		return err
	}
	b.pos = pos
	return nil
}

func (b *byteReader) tell() int64 {
	return b.pos
}
