package batch

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/apdec/internal/config"
	"github.com/idelchi/apdec/internal/container"
	"github.com/idelchi/apdec/internal/fileutil"
)

// Processor handles the decoding and encoding of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// decoder verifies and strips containers
	decoder *container.Decoder

	// encoder builds containers
	encoder *container.Encoder

	// results channels processing outcomes to the printer goroutine
	results chan Result

	stdout io.Writer
	stderr io.Writer
}

// NewProcessor creates a new Processor with the given configuration.
// The key table is resolved once and shared read-only by every job.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	table, err := cfg.Table()
	if err != nil {
		return nil, fmt.Errorf("selecting key table: %w", err)
	}

	bufferSize, err := cfg.BufferBytes()
	if err != nil {
		return nil, err
	}

	decoder, err := container.NewDecoder(table, container.WithBufferSize(bufferSize))
	if err != nil {
		return nil, fmt.Errorf("creating decoder: %w", err)
	}

	encoder, err := container.NewEncoder(table, container.WithBufferSize(bufferSize))
	if err != nil {
		return nil, fmt.Errorf("creating encoder: %w", err)
	}

	return &Processor{
		cfg:     cfg,
		decoder: decoder,
		encoder: encoder,
		results: make(chan Result, len(cfg.Files)),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}, nil
}

// SetOutput redirects progress and error reporting.
func (p *Processor) SetOutput(stdout, stderr io.Writer) {
	p.stdout = stdout
	p.stderr = stderr
}

// ProcessFiles concurrently processes all files specified in the configuration.
// A failing file never stops the others. It returns the number of successfully
// processed files, the number of failures and the total output size; err is
// non-nil when at least one file failed.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(p.stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++

			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				verb := "Processed"
				if p.cfg.Dry {
					verb = "Verified"
				}

				fmt.Fprintf(p.stdout, "%s %q -> %q\n", verb, result.Input, result.Output)
			}

			if p.cfg.Delete && !p.cfg.Dry {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(p.stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Fprintf(p.stdout, "Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			result := p.processFile(file)

			p.results <- result

			return result.Error
		})
	}

	// Jobs never cancel each other; Wait only reports the first failure.
	_ = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if errored > 0 {
		return processed, errored, totalSize, fmt.Errorf("%w: %d of %d", ErrJobsFailed, errored, len(p.cfg.Files))
	}

	return processed, errored, totalSize, nil
}

// processFile runs one job and converts its outcome into a Result.
func (p *Processor) processFile(filename string) Result {
	var (
		outPath string
		size    int64
		err     error
	)

	if p.cfg.Encode {
		outPath, size, err = p.encodeFile(filename)
	} else {
		outPath, size, err = p.decodeFile(filename)
	}

	if err != nil {
		return Result{Input: filename, Error: err}
	}

	return Result{Input: filename, Output: outPath, OutputSize: size}
}

// decodeFile verifies a container and, unless in a dry run, writes its payload.
// The output file is only created once the checksum has matched.
func (p *Processor) decodeFile(filename string) (outPath string, size int64, err error) {
	outPath, err = OutputPath(filename)
	if err != nil {
		return "", 0, err
	}

	inFile, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return "", 0, fmt.Errorf("opening input file: %w", err)
	}
	defer inFile.Close()

	payload, err := p.decoder.Decode(inFile)
	if err != nil {
		return "", 0, fmt.Errorf("decoding file: %w", err)
	}

	if err := inFile.Close(); err != nil {
		return "", 0, fmt.Errorf("closing input file: %w", err)
	}

	if p.cfg.Dry {
		return outPath, int64(len(payload)), nil
	}

	size, err = p.writeAtomic(filename, outPath, bytes.NewReader(payload))

	return outPath, size, err
}

// encodeFile wraps a payload into a container.
func (p *Processor) encodeFile(filename string) (outPath string, size int64, err error) {
	outPath, err = EncodedPath(filename)
	if err != nil {
		return "", 0, err
	}

	inFile, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return "", 0, fmt.Errorf("opening input file: %w", err)
	}
	defer inFile.Close()

	if p.cfg.Dry {
		size, err = p.encoder.Encode(inFile, io.Discard)
		if err != nil {
			return "", 0, fmt.Errorf("encoding file: %w", err)
		}

		return outPath, size, nil
	}

	pipeReader, pipeWriter := io.Pipe()
	encoded := make(chan struct{})

	go func() {
		defer close(encoded)

		_, encodeErr := p.encoder.Encode(inFile, pipeWriter)
		pipeWriter.CloseWithError(encodeErr) //nolint:errcheck,gosec // always nil
	}()

	size, err = p.writeAtomic(filename, outPath, pipeReader)

	pipeReader.Close() //nolint:errcheck,gosec // unblocks the encoder if the write failed
	<-encoded

	if err != nil {
		return "", 0, fmt.Errorf("encoding file: %w", err)
	}

	return outPath, size, nil
}

// writeAtomic copies r into a temp file next to outPath and renames it into place.
func (p *Processor) writeAtomic(filename, outPath string, r io.Reader) (size int64, err error) {
	tc, err := fileutil.NewTempContext(filename, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	size, err = io.Copy(tc.TmpFile, r)
	if err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}

	if err = tc.Commit(p.cfg.PreserveTimestamps); err != nil {
		return 0, err
	}

	return size, nil
}
