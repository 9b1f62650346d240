package keystream

import (
	"fmt"
	"math/bits"
)

// Table is an immutable circular key table.
// The zero value is not usable; construct tables with New or Lookup.
type Table struct {
	key []byte
}

// New returns a Table holding a private copy of key.
func New(key []byte) (Table, error) {
	if len(key) == 0 {
		return Table{}, ErrEmptyTable
	}

	owned := make([]byte, len(key))
	copy(owned, key)

	return Table{key: owned}, nil
}

// Len returns the number of bytes in the table.
func (t Table) Len() int {
	return len(t.key)
}

// Bytes returns a copy of the key material.
func (t Table) Bytes() []byte {
	out := make([]byte, len(t.key))
	copy(out, t.key)

	return out
}

// Start maps a 32-bit seed (the container checksum) onto a starting cursor.
func (t Table) Start(seed uint32) int {
	return int(uint64(seed) % uint64(len(t.key)))
}

// Transform decodes a single byte at the given cursor and returns the
// decoded byte together with the next cursor.
func (t Table) Transform(b byte, cursor int) (byte, int) {
	return ReverseBits(b ^ t.key[cursor]), t.next(cursor)
}

// Invert is the encoding counterpart of Transform:
// Transform(Invert(b, c)) yields b for the same cursor c.
func (t Table) Invert(b byte, cursor int) (byte, int) {
	return ReverseBits(b) ^ t.key[cursor], t.next(cursor)
}

// NewStream returns a Stream positioned at cursor.
func (t Table) NewStream(cursor int) (*Stream, error) {
	if cursor < 0 || cursor >= len(t.key) {
		return nil, fmt.Errorf("cursor %d out of range [0, %d)", cursor, len(t.key))
	}

	return &Stream{table: t, cursor: cursor}, nil
}

func (t Table) next(cursor int) int {
	cursor++
	if cursor == len(t.key) {
		return 0
	}

	return cursor
}

// ReverseBits mirrors the bit order of b (bit 0 <-> bit 7, bit 1 <-> bit 6, ...).
func ReverseBits(b byte) byte {
	return bits.Reverse8(b)
}

// Stream applies the keyed transform to consecutive bytes, carrying the cursor
// across calls. A Stream belongs to a single decode and must not be shared.
type Stream struct {
	table  Table
	cursor int
}

// Cursor returns the position of the next key byte.
func (s *Stream) Cursor() int {
	return s.cursor
}

// Decode transforms src into dst in arrival order. dst must be at least len(src)
// bytes; dst and src may overlap entirely.
func (s *Stream) Decode(dst, src []byte) {
	_ = dst[:len(src)]

	for i, b := range src {
		dst[i], s.cursor = s.table.Transform(b, s.cursor)
	}
}

// Encode is the inverse of Decode.
func (s *Stream) Encode(dst, src []byte) {
	_ = dst[:len(src)]

	for i, b := range src {
		dst[i], s.cursor = s.table.Invert(b, s.cursor)
	}
}
