package filter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Patterns are the raw include/exclude settings before compilation.
type Patterns struct {
	Include     []string
	Exclude     []string
	IncludeFrom string
	ExcludeFrom string
}

// Build merges inline and file-based patterns and compiles them.
// When no include pattern is given at all, defaults is used instead.
func (p Patterns) Build(defaults []string) (*Filter, error) {
	includes := append([]string{}, p.Include...)
	excludes := append([]string{}, p.Exclude...)

	if p.IncludeFrom != "" {
		patterns, err := LoadPatterns(p.IncludeFrom)
		if err != nil {
			return nil, fmt.Errorf("loading include patterns: %w", err)
		}

		includes = append(includes, patterns...)
	}

	if p.ExcludeFrom != "" {
		patterns, err := LoadPatterns(p.ExcludeFrom)
		if err != nil {
			return nil, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, patterns...)
	}

	if len(p.Include) == 0 && p.IncludeFrom == "" {
		includes = append(includes, defaults...)
	}

	return NewFilter(includes, excludes)
}

// LoadPatterns reads a JSONC file holding an array of glob patterns.
func LoadPatterns(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", path, err)
	}

	var patterns []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &patterns); err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", path, err)
	}

	return patterns, nil
}
