package batch

import (
	"fmt"
	"path/filepath"
	"strings"
)

//nolint:gochecknoglobals // fixed extension maps
var (
	decodedExtensions = map[string]string{
		"aud": "mp3",
		"pnz": "png",
	}
	encodedExtensions = map[string]string{
		"mp3": "AUD",
		"png": "PNZ",
	}
)

// OutputPath maps a container path to the path of its decoded payload.
// Extensions are matched case-insensitively: a.AUD -> a.mp3, b.pnz -> b.png.
func OutputPath(input string) (string, error) {
	return swapExtension(input, decodedExtensions)
}

// EncodedPath is the inverse of OutputPath: a.mp3 -> a.AUD, b.png -> b.PNZ.
func EncodedPath(input string) (string, error) {
	return swapExtension(input, encodedExtensions)
}

// DecodablePatterns returns case-insensitive find -path patterns for every container extension.
func DecodablePatterns() []string {
	return patternsFor(decodedExtensions)
}

// EncodablePatterns returns case-insensitive find -path patterns for every payload extension.
func EncodablePatterns() []string {
	return patternsFor(encodedExtensions)
}

func swapExtension(input string, mapping map[string]string) (string, error) {
	ext := filepath.Ext(input)

	replacement, ok := mapping[strings.ToLower(strings.TrimPrefix(ext, "."))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedExtension, input)
	}

	return strings.TrimSuffix(input, ext) + "." + replacement, nil
}

func patternsFor(mapping map[string]string) []string {
	patterns := make([]string, 0, len(mapping))

	for ext := range mapping {
		patterns = append(patterns, "*."+ext)
	}

	return patterns
}
