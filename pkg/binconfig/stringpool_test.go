package binconfig

import (
	"bytes"
	"testing"
)

func TestStringPoolReadIndexedFirstReadConsumesString(t *testing.T) {
	data := []byte{0x05, 'h', 'i', 0x00} // id 5, inline string "hi"
	r := NewByteReader(bytes.NewReader(data))
	pool := NewStringPool()

	got, err := pool.ReadIndexed(r)
	if err != nil {
		t.Fatalf("ReadIndexed() error = %v", err)
	}
	if string(got) != "hi" {
		t.Errorf("ReadIndexed() = %q, want %q", got, "hi")
	}
}

func TestStringPoolReadIndexedCachesByID(t *testing.T) {
	// Two back-to-back reads of the same id: the first consumes the inline
	// string and caches it, the second carries no string bytes at all and
	// must be served entirely from the cache.
	data := []byte{0x05, 'h', 'i', 0x00, 0x05}
	r := NewByteReader(bytes.NewReader(data))
	pool := NewStringPool()

	first, err := pool.ReadIndexed(r)
	if err != nil {
		t.Fatalf("first ReadIndexed() error = %v", err)
	}
	second, err := pool.ReadIndexed(r)
	if err != nil {
		t.Fatalf("second ReadIndexed() error = %v", err)
	}
	if string(first) != "hi" || string(second) != "hi" {
		t.Errorf("ReadIndexed() = %q, %q, want both %q", first, second, "hi")
	}
}

func TestStringPoolReadIndexedDistinctIDs(t *testing.T) {
	data := []byte{0x01, 'a', 0x00, 0x02, 'b', 0x00}
	r := NewByteReader(bytes.NewReader(data))
	pool := NewStringPool()

	a, err := pool.ReadIndexed(r)
	if err != nil {
		t.Fatalf("ReadIndexed(1) error = %v", err)
	}
	b, err := pool.ReadIndexed(r)
	if err != nil {
		t.Fatalf("ReadIndexed(2) error = %v", err)
	}
	if string(a) != "a" || string(b) != "b" {
		t.Errorf("ReadIndexed() = %q, %q, want %q, %q", a, b, "a", "b")
	}
}

func TestStringPoolReadInlineDoesNotCache(t *testing.T) {
	data := []byte("parent\x00")
	r := NewByteReader(bytes.NewReader(data))
	pool := NewStringPool()

	got, err := pool.ReadInline(r)
	if err != nil {
		t.Fatalf("ReadInline() error = %v", err)
	}
	if string(got) != "parent" {
		t.Errorf("ReadInline() = %q, want %q", got, "parent")
	}
	if len(pool.entries) != 0 {
		t.Errorf("len(pool.entries) = %d, want 0 (ReadInline must not touch the pool)", len(pool.entries))
	}
}
