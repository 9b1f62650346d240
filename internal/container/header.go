package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/idelchi/apdec/internal/keystream"
)

// HeaderSize is the length of the checksum that prefixes every container.
const HeaderSize = 4

// Header is the fixed prefix of a container.
type Header struct {
	// Checksum is the Adler-32 of the plaintext payload.
	Checksum uint32
}

// ReadHeader consumes exactly HeaderSize bytes from r.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, ErrTruncatedHeader
		}

		return Header{}, fmt.Errorf("reading header: %w", err)
	}

	return Header{Checksum: binary.LittleEndian.Uint32(buf[:])}, nil
}

// Cursor returns the keystream position the payload starts at.
func (h Header) Cursor(table keystream.Table) int {
	return table.Start(h.Checksum)
}

// MarshalBinary encodes the header in its on-disk form.
func (h Header) MarshalBinary() ([]byte, error) {
	return binary.LittleEndian.AppendUint32(make([]byte, 0, HeaderSize), h.Checksum), nil
}
