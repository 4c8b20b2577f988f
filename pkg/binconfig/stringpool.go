package binconfig

// StringPool is a session-local, grow-on-demand id -> string memoization
// table. The first read of an id consumes a NUL-terminated string from the
// stream and stores it; every later read of that same id is satisfied from
// the table without touching the stream.
//
// This replaces the original tool's fixed string_table[20000] array and its
// sizeof(tmp) bounds check (original_source/bin2cpp.c) with a sparse map:
// ids are accepted however large the stream claims, and are only rejected
// indirectly, via MaxInlineStringLen on the string body itself.
type StringPool struct {
	entries map[uint32][]byte
}

// NewStringPool returns an empty pool.
func NewStringPool() *StringPool {
	return &StringPool{entries: make(map[uint32][]byte)}
}

// ReadIndexed reads a VarInt id from r; if the id has already been seen in
// this session it returns the stored string without consuming further
// bytes, otherwise it reads a NUL-terminated string, stores it, and
// returns it.
func (p *StringPool) ReadIndexed(r *ByteReader) ([]byte, error) {
	id, err := r.VarInt()
	if err != nil {
		return nil, err
	}
	if s, ok := p.entries[id]; ok {
		return s, nil
	}
	s, err := r.CString()
	if err != nil {
		return nil, err
	}
	p.entries[id] = s
	return s, nil
}

// ReadInline reads a NUL-terminated string with no pool interaction, for
// "simple" strings in the config grammar (e.g. a class's parent name).
func (p *StringPool) ReadInline(r *ByteReader) ([]byte, error) {
	return r.CString()
}
