package pbo

import (
	"io"
	"strings"
)

// productFilename is the distinguished pseudo-header's case-insensitive
// filename (original_source/pbo_read.c:98 uses strcasecmp).
const productFilename = "product"

// ReadTOC reads table-of-contents entries from the current position of r
// until the terminating empty-filename header. It does not read entry
// payload bytes; Archive.DataRegionStart is the offset immediately after
// the terminator, and each entry's DataOffset is assigned by accumulating
// StoredSize in TOC order starting at 0, i.e. relative to DataRegionStart.
//
// Grounded on original_source/pbo_read.c's read_pbo/read_entry: the
// terminator is detected and the loop exits without attempting to read its
// five trailing integer fields, and a leading "product" header is
// special-cased to read one extra string in place of the five integers and
// does not occupy a data-region slot.
func ReadTOC(r io.ReadSeeker) (*Archive, error) {
	br := newByteReader(r)

	archive := &Archive{}
	var offset uint64

	for {
		filename, err := br.cString()
		if err != nil {
			return nil, err
		}

		if filename == "" {
			break
		}

		if strings.EqualFold(filename, productFilename) {
			version, err := br.cString()
			if err != nil {
				return nil, err
			}
			archive.ProductVersion = version
			continue
		}

		packMethod, err := br.u32()
		if err != nil {
			return nil, ErrUnknownPboHeader
		}
		realSize, err := br.u32()
		if err != nil {
			return nil, ErrUnknownPboHeader
		}
		reserved, err := br.u32()
		if err != nil {
			return nil, ErrUnknownPboHeader
		}
		timestamp, err := br.u32()
		if err != nil {
			return nil, ErrUnknownPboHeader
		}
		storedSize, err := br.u32()
		if err != nil {
			return nil, ErrUnknownPboHeader
		}

		archive.Entries = append(archive.Entries, Entry{
			Filename:   filename,
			PackMethod: PackMethod(packMethod),
			RealSize:   realSize,
			Reserved:   reserved,
			Timestamp:  timestamp,
			StoredSize: storedSize,
			DataOffset: offset,
		})
		offset += uint64(storedSize)
	}

	archive.DataRegionStart = br.tell()
	return archive, nil
}
