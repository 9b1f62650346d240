package container

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedHeader is returned when fewer than HeaderSize bytes precede the payload.
	ErrTruncatedHeader = errors.New("truncated header")
	// ErrChecksumMismatch is matched by every *ChecksumMismatchError.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrInvalidBufferSize is returned for non-positive read buffer sizes.
	ErrInvalidBufferSize = errors.New("buffer size must be positive")
)

// ChecksumMismatchError reports a decoded payload whose digest disagrees with the header.
// It usually means the wrong variant was selected or the input is corrupt.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("adler32 mismatch: expected 0x%08X, got 0x%08X", e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrChecksumMismatch) hold.
func (e *ChecksumMismatchError) Is(target error) bool {
	return target == ErrChecksumMismatch
}
