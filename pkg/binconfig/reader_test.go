package binconfig

import (
	"bytes"
	"testing"
)

func TestVarIntBoundaries(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"single byte max", []byte{0x7F}, 127},
		{"two byte min continuation", []byte{0x80, 0x01}, 128},
		{"two byte high base", []byte{0xFF, 0x01}, 255},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewByteReader(bytes.NewReader(tc.in))
			got, err := r.VarInt()
			if err != nil {
				t.Fatalf("VarInt() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("VarInt() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestVarIntInvalidContinuation(t *testing.T) {
	r := NewByteReader(bytes.NewReader([]byte{0x80, 0x00}))
	if _, err := r.VarInt(); err != ErrInvalidVarInt {
		t.Fatalf("VarInt() error = %v, want ErrInvalidVarInt", err)
	}
}

func TestCStringBasic(t *testing.T) {
	r := NewByteReader(bytes.NewReader([]byte("hello\x00world")))
	s, err := r.CString()
	if err != nil {
		t.Fatalf("CString() error = %v", err)
	}
	if string(s) != "hello" {
		t.Errorf("CString() = %q, want %q", s, "hello")
	}
}

func TestCStringEmpty(t *testing.T) {
	r := NewByteReader(bytes.NewReader([]byte{0x00}))
	s, err := r.CString()
	if err != nil {
		t.Fatalf("CString() error = %v", err)
	}
	if len(s) != 0 {
		t.Errorf("CString() = %q, want empty", s)
	}
}

func TestCStringUnterminatedIsMalformed(t *testing.T) {
	r := NewByteReader(bytes.NewReader([]byte("abc")))
	if _, err := r.CString(); err != ErrMalformedString {
		t.Fatalf("CString() error = %v, want ErrMalformedString", err)
	}
}

func TestCStringOverLongIsMalformed(t *testing.T) {
	long := bytes.Repeat([]byte{'a'}, MaxInlineStringLen+1)
	long = append(long, 0)
	r := NewByteReader(bytes.NewReader(long))
	if _, err := r.CString(); err != ErrMalformedString {
		t.Fatalf("CString() error = %v, want ErrMalformedString", err)
	}
}

func TestSeekTell(t *testing.T) {
	r := NewByteReader(bytes.NewReader([]byte{1, 2, 3, 4, 5}))
	if err := r.Seek(3); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if r.Tell() != 3 {
		t.Fatalf("Tell() = %d, want 3", r.Tell())
	}
	b, err := r.U8()
	if err != nil {
		t.Fatalf("U8() error = %v", err)
	}
	if b != 4 {
		t.Errorf("U8() = %d, want 4", b)
	}
}
