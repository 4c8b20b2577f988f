package binconfig

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// MaxInlineStringLen bounds a single NUL-terminated string read directly
// from the stream. The original tool used a fixed tmp[10240] scratch buffer
// (original_source/bin2cpp.c); this is that same bound, with the string
// buffer grown on demand up to it rather than allocated at a fixed size.
const MaxInlineStringLen = 10 * 1024

// ByteReader is a positional reader over a config byte stream: fixed-width
// little-endian integers, a 32-bit float, NUL-terminated byte strings, and
// seek/tell. It takes exclusive ownership of r for the session.
type ByteReader struct {
	r   io.ReadSeeker
	pos int64
}

// NewByteReader wraps r for positional reads starting at the current offset.
func NewByteReader(r io.ReadSeeker) *ByteReader {
	return &ByteReader{r: r}
}

func (b *ByteReader) readFull(buf []byte) error {
	n, err := io.ReadFull(b.r, buf)
	b.pos += int64(n)
	if err != nil {
		return ErrUnexpectedEOF
	}
	return nil
}

// U8 reads one unsigned byte.
func (b *ByteReader) U8() (byte, error) {
	var buf [1]byte
	if err := b.readFull(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// U16 reads a 2-byte little-endian unsigned integer.
func (b *ByteReader) U16() (uint16, error) {
	var buf [2]byte
	if err := b.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// U32 reads a 4-byte little-endian unsigned integer.
func (b *ByteReader) U32() (uint32, error) {
	var buf [4]byte
	if err := b.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// I32 reads a 4-byte little-endian signed integer.
func (b *ByteReader) I32() (int32, error) {
	v, err := b.U32()
	return int32(v), err
}

// F32 reads a 4-byte little-endian IEEE-754 float.
func (b *ByteReader) F32() (float32, error) {
	v, err := b.U32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// CString reads a NUL-terminated byte string, bounded by MaxInlineStringLen.
// Exceeding the bound yields ErrMalformedString, as does hitting EOF after
// at least one byte of the string; EOF before any byte has been read yields
// ErrUnexpectedEOF.
func (b *ByteReader) CString() ([]byte, error) {
	var out []byte
	var cur [1]byte
	for {
		n, err := b.r.Read(cur[:])
		if n == 1 {
			b.pos++
		}
		if err != nil {
			if len(out) > 0 || err != io.EOF {
				return nil, ErrMalformedString
			}
			return nil, ErrUnexpectedEOF
		}
		if cur[0] == 0 {
			return out, nil
		}
		if len(out) >= MaxInlineStringLen {
			return nil, ErrMalformedString
		}
		out = append(out, cur[0])
	}
}

// Seek moves the read cursor to an absolute offset.
func (b *ByteReader) Seek(offset int64) error {
	pos, err := b.r.Seek(offset, io.SeekStart)
	if err != nil {
		return fmt.Errorf("binconfig: seek to %d: %w", offset, err)
	}
	b.pos = pos
	return nil
}

// Tell returns the current read offset.
func (b *ByteReader) Tell() int64 {
	return b.pos
}

// VarInt reads the format's variable-length unsigned integer: one byte b0;
// if the high bit is clear the value is b0, otherwise one more byte b1
// follows and the value is b0 + (b1-1)*128 (the high bit of b0 stays part
// of the value; it is only a continuation flag, not masked out). Grounded
// on original_source/bin2cpp.c's read_int, which never masks number before
// adding the second byte's contribution.
func (b *ByteReader) VarInt() (uint32, error) {
	b0, err := b.U8()
	if err != nil {
		return 0, err
	}
	if b0&0x80 == 0 {
		return uint32(b0), nil
	}
	b1, err := b.U8()
	if err != nil {
		return 0, err
	}
	if b1 == 0 {
		return 0, ErrInvalidVarInt
	}
	return uint32(b0) + uint32(b1-1)*128, nil
}
