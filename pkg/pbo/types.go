// Package pbo decodes the packed archive format (PBO): a table-of-contents
// parser followed by a per-entry LZ-style decompressor with a running
// additive checksum.
package pbo

// PackMethod distinguishes a stored entry from a packed one. The wire value
// is whatever the archive's pack_method field carries; RealSize == 0 is the
// authoritative "stored" signal, not PackMethod itself.
type PackMethod uint32

const (
	PackStored PackMethod = 0
)

// Entry is a single table-of-contents record.
type Entry struct {
	Filename   string
	PackMethod PackMethod
	RealSize   uint32 // uncompressed length; 0 => stored verbatim
	Reserved   uint32
	Timestamp  uint32
	StoredSize uint32 // bytes occupied in the data region
	DataOffset uint64 // offset relative to Archive.DataRegionStart
}

// IsStored reports whether the entry's data region bytes are the literal
// file contents (no decompression needed).
func (e *Entry) IsStored() bool {
	return e.RealSize == 0
}

// Archive is the parsed table of contents plus the start of the data
// region. ProductVersion holds the extra string carried by a distinguished
// "product" pseudo-header, when present.
type Archive struct {
	Entries         []Entry
	DataRegionStart int64
	ProductVersion  string
}
