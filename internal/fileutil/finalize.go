// Package fileutil provides the atomic output handling shared by decode and encode.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ownerReadWrite is the mode of every file written by the tool before umask.
const ownerReadWrite = 0o644

// TempContext holds state for an atomic file write operation.
type TempContext struct {
	SrcInfo os.FileInfo
	TmpFile *os.File
	TmpName string
	outPath string
}

// NewTempContext stats the source file and creates a hidden temp file next to outPath.
// Caller must defer CleanupOnError.
func NewTempContext(filename, outPath string) (*TempContext, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("getting file info for %q: %w", filename, err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".apdec-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &TempContext{
		SrcInfo: info,
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
		outPath: outPath,
	}, nil
}

// Commit finalizes the temp file and renames it over the output path.
// With preserveTimestamps the source modification time is copied onto the temp
// file before the rename. The rename is the last step: a failed Commit leaves no output.
func (tc *TempContext) Commit(preserveTimestamps bool) error {
	if err := os.Chmod(tc.TmpName, ownerReadWrite); err != nil {
		return fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tc.TmpFile.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if preserveTimestamps {
		modTime := tc.SrcInfo.ModTime()

		if err := os.Chtimes(tc.TmpName, modTime, modTime); err != nil {
			return fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	if err := os.Rename(tc.TmpName, tc.outPath); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}

	return nil
}

// CleanupOnError closes the temp file and removes it if the write failed.
func (tc *TempContext) CleanupOnError(errp *error) {
	tc.TmpFile.Close() //nolint:errcheck,gosec // best-effort cleanup, may already be closed

	if *errp != nil {
		os.Remove(tc.TmpName) //nolint:errcheck,gosec // best-effort cleanup
	}
}
