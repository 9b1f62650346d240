package batch

import "errors"

var (
	// ErrUnrecognizedExtension is returned when no output name can be derived for an input.
	ErrUnrecognizedExtension = errors.New("couldn't determine the output filename")
	// ErrJobsFailed is returned by ProcessFiles when at least one file failed.
	ErrJobsFailed = errors.New("some files failed")
)
