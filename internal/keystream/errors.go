package keystream

import "errors"

var (
	// ErrEmptyTable is returned when constructing a table from no key material.
	ErrEmptyTable = errors.New("key table is empty")
	// ErrUnknownVariant is returned when no table is registered under the requested name.
	ErrUnknownVariant = errors.New("unknown variant")
)
