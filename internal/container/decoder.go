package container

import (
	"errors"
	"fmt"
	"hash"
	"hash/adler32"
	"io"

	"github.com/idelchi/apdec/internal/keystream"
)

// Option configures a Decoder or Encoder.
type Option func(*codec)

// WithBufferSize sets the read chunk size. It affects memory use only, never the output.
func WithBufferSize(size int) Option {
	return func(c *codec) {
		c.bufferSize = size
	}
}

// WithChecksum replaces the Adler-32 rolling checksum.
func WithChecksum(newHash func() hash.Hash32) Option {
	return func(c *codec) {
		c.newHash = newHash
	}
}

// codec holds the settings shared by Decoder and Encoder.
type codec struct {
	table      keystream.Table
	bufferSize int
	newHash    func() hash.Hash32
}

func newCodec(table keystream.Table, opts []Option) (codec, error) {
	c := codec{
		table:      table,
		bufferSize: DefaultBufferSize,
		newHash:    adler32.New,
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.table.Len() == 0 {
		return codec{}, keystream.ErrEmptyTable
	}

	if c.bufferSize <= 0 {
		return codec{}, fmt.Errorf("%w: %d", ErrInvalidBufferSize, c.bufferSize)
	}

	return c, nil
}

// Decoder turns containers back into their plaintext payloads.
// A Decoder holds no per-file state and may be shared between goroutines.
type Decoder struct {
	codec
}

// NewDecoder returns a Decoder for the given table.
func NewDecoder(table keystream.Table, opts ...Option) (*Decoder, error) {
	c, err := newCodec(table, opts)
	if err != nil {
		return nil, err
	}

	return &Decoder{codec: c}, nil
}

// Decode reads a whole container from r and returns the verified payload.
// On a checksum mismatch the payload is discarded and a *ChecksumMismatchError is returned.
// A reader that keeps returning no data and no error fails with io.ErrNoProgress.
func (d *Decoder) Decode(r io.Reader) ([]byte, error) {
	r = progressReader{r: r}

	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	stream, err := d.table.NewStream(header.Cursor(d.table))
	if err != nil {
		return nil, err
	}

	digest := d.newHash()

	buf, release := getBuffer(d.bufferSize)
	defer release()

	var out []byte

	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			stream.Decode(chunk, chunk)

			out = append(out, chunk...)

			digest.Write(chunk) //nolint:errcheck // hash.Hash never returns an error
		}

		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return nil, fmt.Errorf("reading payload: %w", readErr)
		}
	}

	if actual := digest.Sum32(); actual != header.Checksum {
		return nil, &ChecksumMismatchError{Expected: header.Checksum, Actual: actual}
	}

	if out == nil {
		out = []byte{}
	}

	return out, nil
}

// DecodeTo decodes r and, once the checksum has been verified, writes the payload to w.
// Nothing is written to w when decoding fails.
func (d *Decoder) DecodeTo(r io.Reader, w io.Writer) (int64, error) {
	payload, err := d.Decode(r)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(payload)
	if err != nil {
		return int64(n), fmt.Errorf("writing payload: %w", err)
	}

	return int64(n), nil
}
