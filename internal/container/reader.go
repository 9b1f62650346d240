package container

import "io"

// maxConsecutiveEmptyReads bounds how often a Read may return (0, nil) in a row.
const maxConsecutiveEmptyReads = 100

// progressReader fails with io.ErrNoProgress once the underlying reader
// stops making progress without reporting an error.
type progressReader struct {
	r io.Reader
}

func (p progressReader) Read(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	for range maxConsecutiveEmptyReads {
		n, err := p.r.Read(buf)
		if n > 0 || err != nil {
			return n, err
		}
	}

	return 0, io.ErrNoProgress
}
