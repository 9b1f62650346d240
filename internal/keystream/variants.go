package keystream

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultVariant names the table used when none is selected.
const DefaultVariant = "legacy"

// variants maps a container format variant to its compiled-in table.
//
//nolint:gochecknoglobals // read-only after package initialization
var variants = map[string]Table{
	DefaultVariant: {key: legacyKey[:]},
}

// Lookup returns the table registered for the named variant (case-insensitive).
func Lookup(name string) (Table, error) {
	table, ok := variants[strings.ToLower(name)]
	if !ok {
		return Table{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownVariant, name, strings.Join(Variants(), ", "))
	}

	return table, nil
}

// Variants lists the registered variant names in sorted order.
func Variants() []string {
	return slices.Sorted(maps.Keys(variants))
}
