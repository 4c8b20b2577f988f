package binconfig

// Entry tags.
const (
	tagClass   = 0x00
	tagScalar  = 0x01
	tagArray   = 0x02
	tagDefines = 0x63

	scalarKindString = 0x00
	scalarKindFloat  = 0x01
	scalarKindInt    = 0x02

	arrayKindString = 0x00
	arrayKindFloat  = 0x01
	arrayKindInt    = 0x02
	arrayKindArray  = 0x03
)

// headerSize is the opaque 7-byte framing header skipped before decoding
// begins. Its contents (magic/version) are not validated here.
const headerSize = 7

// ConfigDecoder is a recursive-descent parser over the bin-config grammar,
// driven by a ByteReader and a session-local StringPool, and emitting
// events to a Sink in strict stream order.
//
// The grammar is implemented with native Go recursion rather than an
// explicit work stack: the original tool's read_entry/read_array
// (original_source/bin2cpp.c) are themselves directly recursive, real game
// config trees are shallow (a few dozen levels at most), and the Sink
// interface already exposes the event shape an explicit-stack rewrite would
// need, should pathologically deep input ever require one.
type ConfigDecoder struct {
	r    *ByteReader
	pool *StringPool
}

// NewConfigDecoder constructs a decoder over r, with a fresh string pool.
func NewConfigDecoder(r *ByteReader) *ConfigDecoder {
	return &ConfigDecoder{r: r, pool: NewStringPool()}
}

// Decode skips the framing header and decodes the single root entry into
// sink. Any malformed tag, truncated field, or pool miss with no inline
// follow-up aborts the session and returns the corresponding error.
func (d *ConfigDecoder) Decode(sink Sink) error {
	if err := d.r.Seek(headerSize); err != nil {
		return err
	}
	return d.decodeEntry(sink)
}

func (d *ConfigDecoder) decodeEntry(sink Sink) error {
	tag, err := d.r.U8()
	if err != nil {
		return err
	}

	switch tag {
	case tagClass:
		return d.decodeClass(sink)
	case tagScalar:
		return d.decodeScalar(sink)
	case tagArray:
		return d.decodeArrayAssignment(sink)
	case tagDefines:
		return d.decodeDefines(sink)
	default:
		return ErrUnknownEntryTag
	}
}

func (d *ConfigDecoder) decodeClass(sink Sink) error {
	name, err := d.pool.ReadIndexed(d.r)
	if err != nil {
		return err
	}
	parent, err := d.pool.ReadInline(d.r)
	if err != nil {
		return err
	}
	n, err := d.r.VarInt()
	if err != nil {
		return err
	}

	sink.EnterClass(name, parent)
	for i := uint32(0); i < n; i++ {
		if err := d.decodeEntry(sink); err != nil {
			return err
		}
	}
	sink.LeaveClass()
	return nil
}

func (d *ConfigDecoder) decodeScalar(sink Sink) error {
	kind, err := d.r.U8()
	if err != nil {
		return err
	}
	name, err := d.pool.ReadIndexed(d.r)
	if err != nil {
		return err
	}

	value, err := d.decodeScalarValue(kind)
	if err != nil {
		return err
	}
	sink.Scalar(name, value)
	return nil
}

func (d *ConfigDecoder) decodeScalarValue(kind byte) (ScalarValue, error) {
	switch kind {
	case scalarKindString:
		s, err := d.pool.ReadIndexed(d.r)
		if err != nil {
			return ScalarValue{}, err
		}
		return ScalarValue{Kind: ScalarString, Str: s}, nil
	case scalarKindFloat:
		f, err := d.r.F32()
		if err != nil {
			return ScalarValue{}, err
		}
		return ScalarValue{Kind: ScalarFloat32, F32: f}, nil
	case scalarKindInt:
		v, err := d.r.I32()
		if err != nil {
			return ScalarValue{}, err
		}
		return ScalarValue{Kind: ScalarInt32, I32: v}, nil
	default:
		return ScalarValue{}, ErrUnknownScalarKind
	}
}

func (d *ConfigDecoder) decodeArrayAssignment(sink Sink) error {
	name, err := d.pool.ReadIndexed(d.r)
	if err != nil {
		return err
	}
	sink.ArrayBegin(name)
	if err := d.decodeArrayBody(sink); err != nil {
		return err
	}
	sink.ArrayEnd()
	return nil
}

// decodeArrayBody reads the array's element count and then each element in
// turn, emitting ArrayElement events (and recursing for nested arrays).
func (d *ConfigDecoder) decodeArrayBody(sink Sink) error {
	n, err := d.r.VarInt()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		elem, err := d.decodeArrayElement(sink)
		if err != nil {
			return err
		}
		sink.ArrayElement(elem)
	}
	return nil
}

func (d *ConfigDecoder) decodeArrayElement(sink Sink) (ArrayElement, error) {
	kind, err := d.r.U8()
	if err != nil {
		return ArrayElement{}, err
	}

	switch kind {
	case arrayKindString:
		s, err := d.pool.ReadIndexed(d.r)
		if err != nil {
			return ArrayElement{}, err
		}
		return ArrayElement{Kind: ElementString, Str: s}, nil
	case arrayKindFloat:
		f, err := d.r.F32()
		if err != nil {
			return ArrayElement{}, err
		}
		return ArrayElement{Kind: ElementFloat32, F32: f}, nil
	case arrayKindInt:
		v, err := d.r.I32()
		if err != nil {
			return ArrayElement{}, err
		}
		return ArrayElement{Kind: ElementInt32, I32: v}, nil
	case arrayKindArray:
		nested, err := d.decodeNestedArray(sink)
		if err != nil {
			return ArrayElement{}, err
		}
		return ArrayElement{Kind: ElementArray, Array: nested}, nil
	default:
		return ArrayElement{}, ErrUnknownArrayKind
	}
}

// decodeNestedArray decodes an array body nested inside an array element.
// It builds the element slice directly rather than emitting per-element
// sink events: the Sink interface delivers a nested array to its parent as
// a single ArrayElement(Kind: ElementArray) carrying that slice, fired once
// by the enclosing decodeArrayBody/decodeArrayElement call.
func (d *ConfigDecoder) decodeNestedArray(sink Sink) ([]ArrayElement, error) {
	n, err := d.r.VarInt()
	if err != nil {
		return nil, err
	}
	elems := make([]ArrayElement, 0, n)
	for i := uint32(0); i < n; i++ {
		elem, err := d.decodeArrayElement(sink)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

// decodeDefines reads the 3 reserved bytes and then (name, i32) pairs until
// a clean EOF between pairs. The original tool's read loop has no real
// terminator and walks off the end of the buffer on well-formed input; this
// stops cleanly at the first EOF that falls exactly between pairs instead.
func (d *ConfigDecoder) decodeDefines(sink Sink) error {
	var reserved [3]byte
	for i := range reserved {
		b, err := d.r.U8()
		if err != nil {
			return err
		}
		reserved[i] = b
	}

	for {
		name, err := d.pool.ReadInline(d.r)
		if err == ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return err
		}
		value, err := d.r.I32()
		if err != nil {
			if err == ErrUnexpectedEOF {
				return ErrDefinesTruncatedPair
			}
			return err
		}
		sink.Define(name, value)
	}
}
