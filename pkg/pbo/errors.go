package pbo

import "errors"

// Sentinel errors returned while reading a PBO archive and decompressing
// its entries. ErrChecksumMismatch is non-fatal by default: Unpack still
// returns the decompressed bytes alongside it.
var (
	ErrUnexpectedEOF       = errors.New("pbo: unexpected end of stream")
	ErrMalformedString     = errors.New("pbo: unterminated or over-long filename")
	ErrUnknownPboHeader    = errors.New("pbo: malformed table-of-contents entry")
	ErrCorruptBackref      = errors.New("pbo: back-reference into unwritten output")
	ErrTruncatedCompressed = errors.New("pbo: compressed stream truncated before real_size reached")
	ErrChecksumMismatch    = errors.New("pbo: checksum mismatch")
	ErrUnsafeEntryPath     = errors.New("pbo: entry path escapes output directory")
)
