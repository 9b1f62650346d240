package container

import (
	"errors"
	"fmt"
	"io"

	"github.com/idelchi/apdec/internal/keystream"
)

// Encoder wraps plaintext payloads into containers.
type Encoder struct {
	codec
}

// NewEncoder returns an Encoder for the given table.
func NewEncoder(table keystream.Table, opts ...Option) (*Encoder, error) {
	c, err := newCodec(table, opts)
	if err != nil {
		return nil, err
	}

	return &Encoder{codec: c}, nil
}

// Encode reads the payload twice: once to compute the checksum that seeds the
// keystream, once more to obfuscate it. It returns the number of bytes written.
func (e *Encoder) Encode(r io.ReadSeeker, w io.Writer) (int64, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("locating payload start: %w", err)
	}

	src := progressReader{r: r}

	buf, release := getBuffer(e.bufferSize)
	defer release()

	digest := e.newHash()
	if _, err := io.CopyBuffer(digest, src, buf); err != nil {
		return 0, fmt.Errorf("hashing payload: %w", err)
	}

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewinding payload: %w", err)
	}

	header := Header{Checksum: digest.Sum32()}

	raw, _ := header.MarshalBinary() //nolint:errcheck // never fails

	written, err := w.Write(raw)
	if err != nil {
		return int64(written), fmt.Errorf("writing header: %w", err)
	}

	total := int64(written)

	stream, err := e.table.NewStream(header.Cursor(e.table))
	if err != nil {
		return total, err
	}

	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			stream.Encode(chunk, chunk)

			written, err := w.Write(chunk)
			total += int64(written)

			if err != nil {
				return total, fmt.Errorf("writing payload: %w", err)
			}
		}

		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return total, fmt.Errorf("reading payload: %w", readErr)
		}
	}

	return total, nil
}

// EncodeBytes returns the container for an in-memory payload.
func (e *Encoder) EncodeBytes(payload []byte) []byte {
	digest := e.newHash()
	digest.Write(payload) //nolint:errcheck // hash.Hash never returns an error

	header := Header{Checksum: digest.Sum32()}

	out, _ := header.MarshalBinary() //nolint:errcheck // never fails
	out = append(out, make([]byte, len(payload))...)

	// The cursor is always in range: Start reduces modulo the table length.
	stream, _ := e.table.NewStream(header.Cursor(e.table)) //nolint:errcheck
	stream.Encode(out[HeaderSize:], payload)

	return out
}
