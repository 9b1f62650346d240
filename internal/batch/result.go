package batch

// Result represents the outcome of processing a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path, empty on failure
	Output string

	// Output size in bytes (the would-be size in dry runs)
	OutputSize int64

	// Any error that occurred during processing
	Error error
}
