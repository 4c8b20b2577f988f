package pbo

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// ChecksumMode selects how Unpack verifies a decompressed entry's trailing
// checksum. The original tool's verify loop has a one-byte-past-the-end
// off-by-one; ChecksumMode lets a caller pick which behavior to match.
type ChecksumMode int

const (
	// ChecksumInclusive sums RealSize+1 bytes, like original_source/pbo_read.c's
	// `while (ptr <= result + size)` loop. out has no byte past its end, so
	// the last decompressed byte is counted a second time in its place.
	// Default.
	ChecksumInclusive ChecksumMode = iota
	// ChecksumExact sums exactly RealSize bytes of decompressed output.
	ChecksumExact
)

// Unpack reads entry's stored bytes from r (using archive's data region
// start and entry's DataOffset/StoredSize) and returns its decoded
// contents. Stored entries (RealSize == 0) are returned verbatim; packed
// entries are decompressed and their trailing checksum is verified per
// mode. A checksum mismatch is returned as ErrChecksumMismatch alongside
// the (still valid) decompressed bytes — callers that want to treat it as
// a warning can check for that specific error and keep the data; anything
// else is fatal.
func Unpack(r io.ReadSeeker, archive *Archive, entry *Entry, mode ChecksumMode) ([]byte, error) {
	if _, err := r.Seek(archive.DataRegionStart+int64(entry.DataOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("pbo: seek to entry %q: %w", entry.Filename, err)
	}

	stored := make([]byte, entry.StoredSize)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, fmt.Errorf("pbo: read entry %q: %w", entry.Filename, ErrUnexpectedEOF)
	}

	if entry.IsStored() {
		return stored, nil
	}

	if len(stored) < 4 {
		return nil, ErrTruncatedCompressed
	}

	payload := stored[:len(stored)-4]
	wantChecksum := binary.LittleEndian.Uint32(stored[len(stored)-4:])

	out, err := decompress(payload, entry.RealSize)
	if err != nil {
		return nil, err
	}

	gotChecksum := computeChecksum(out, mode)
	if gotChecksum != wantChecksum {
		return out, ErrChecksumMismatch
	}
	return out, nil
}

// decompress implements the archive's LZSS-variant compression scheme: a
// flag byte selects literal-or-backreference for each of the following 8
// tokens, and a 2-byte backreference decodes to (rpos, rlen) against the
// growing output buffer, handled per the copy rules in copyBackref.
//
// Grounded line-for-line on original_source/pbo_read.c's unpack_data.
func decompress(payload []byte, realSize uint32) ([]byte, error) {
	out := make([]byte, 0, realSize)
	n := len(payload)
	cursor := 0

	for cursor < n && uint32(len(out)) < realSize {
		flag := payload[cursor]
		cursor++

		for bit := 0; bit < 8 && cursor < n && uint32(len(out)) < realSize; bit++ {
			if flag&(1<<uint(bit)) != 0 {
				if cursor >= n {
					return out, ErrTruncatedCompressed
				}
				out = appendClipped(out, payload[cursor:cursor+1], realSize)
				cursor++
				continue
			}

			if cursor+1 >= n {
				return out, ErrTruncatedCompressed
			}
			b1, b2 := payload[cursor], payload[cursor+1]
			cursor += 2

			s := len(out)
			rpos := s - int(b1) - 256*int(b2>>4)
			rlen := int(b2&0x0F) + 3

			var err error
			out, err = copyBackref(out, rpos, rlen, realSize)
			if err != nil {
				return nil, err
			}
		}
	}

	if uint32(len(out)) < realSize {
		return out, ErrTruncatedCompressed
	}
	return out, nil
}

// copyBackref applies the decoder's five copy rules, in priority order,
// appending at most enough bytes to reach limit.
func copyBackref(out []byte, rpos, rlen int, limit uint32) ([]byte, error) {
	s := len(out)

	// Rule 1: all-negative.
	if rpos+rlen < 0 {
		return appendClipped(out, bytes.Repeat([]byte{' '}, rlen), limit), nil
	}

	// Rule 2: straddle — pad with spaces, then continue with rpos = 0.
	if rpos < 0 {
		pad := -rpos
		out = appendClipped(out, bytes.Repeat([]byte{' '}, pad), limit)
		rlen -= pad
		rpos = 0
		s = len(out)
		if rlen <= 0 || uint32(s) >= limit {
			return out, nil
		}
	}

	// Rule 5: invalid reference into unwritten future output.
	if rpos > s {
		return nil, ErrCorruptBackref
	}

	// Rule 3: non-overlapping.
	if rpos+rlen <= s {
		return appendClipped(out, out[rpos:rpos+rlen], limit), nil
	}

	// Rule 4: overlapping run-length extension. chunk is fixed at the gap
	// between rpos and the buffer length at the moment the backref was
	// decoded; each iteration re-copies that same source window (or a
	// smaller tail of it on the final iteration), which is what produces
	// the byte-repeat behavior for runs like rpos = s-1, rlen = 5.
	chunk := s - rpos
	for rlen > 0 && uint32(len(out)) < limit {
		c := chunk
		if c > rlen {
			c = rlen
		}
		if c <= 0 {
			return nil, ErrCorruptBackref
		}
		out = appendClipped(out, out[rpos:rpos+c], limit)
		rlen -= c
	}
	return out, nil
}

// appendClipped appends data to out but never grows out past limit bytes.
func appendClipped(out []byte, data []byte, limit uint32) []byte {
	room := int64(limit) - int64(len(out))
	if room <= 0 {
		return out
	}
	if int64(len(data)) > room {
		data = data[:room]
	}
	return append(out, data...)
}

// computeChecksum sums the unsigned byte values of out. ChecksumInclusive
// additionally adds the last byte of out once more, standing in for the
// one-past-the-end byte that the original tool's verify loop reads.
func computeChecksum(out []byte, mode ChecksumMode) uint32 {
	var sum uint32
	for _, b := range out {
		sum += uint32(b)
	}
	if mode == ChecksumInclusive && len(out) > 0 {
		sum += uint32(out[len(out)-1])
	}
	return sum
}
