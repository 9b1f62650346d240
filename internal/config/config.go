// Package config holds the runtime configuration shared by all commands.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"

	"github.com/idelchi/apdec/internal/keystream"
)

// ErrUsage is returned when a command is invoked without any input paths.
var ErrUsage = errors.New("no input files given")

// Filters groups the include/exclude options applied while walking directories.
type Filters struct {
	Include     []string
	Exclude     []string
	IncludeFrom string `mapstructure:"include-from" validate:"omitempty,file"`
	ExcludeFrom string `mapstructure:"exclude-from" validate:"omitempty,file"`
}

// Config holds the application's configuration.
type Config struct {
	// Show the configuration and exit
	Show bool

	// Number of parallel workers
	Parallel int `validate:"min=1"`

	// Suppress non-error output
	Quiet bool

	// Print a summary after processing
	Stats bool

	// Verify inputs without writing any output
	Dry bool `validate:"exclusive=Delete"`

	// Delete the input after a successful run
	Delete bool

	// Copy the input's modification time onto the output
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// Name of the compiled-in key table
	Variant string `validate:"required,variant"`

	// Read chunk size, in human-readable form (e.g. "4KiB")
	BufferSize string `mapstructure:"buffer-size" validate:"required,bytesize"`

	// Directory walking filters
	Filters `mapstructure:",squash"`

	// Set by the encode command
	Encode bool `mapstructure:"-"`

	// Positional arguments
	Files []string `mapstructure:"-" validate:"min=1"`
}

// Display returns the value of the Show field.
func (c Config) Display() bool {
	return c.Show
}

// Validate validates the configuration against the struct tags and custom rules.
func (c Config) Validate() error {
	if len(c.Files) == 0 {
		return ErrUsage
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := registerValidations(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

// Table resolves the configured variant to its key table.
func (c Config) Table() (keystream.Table, error) {
	return keystream.Lookup(c.Variant)
}

// BufferBytes returns the parsed read buffer size.
func (c Config) BufferBytes() (int, error) {
	size, err := humanize.ParseBytes(c.BufferSize)
	if err != nil {
		return 0, fmt.Errorf("parsing buffer size %q: %w", c.BufferSize, err)
	}

	return int(size), nil //nolint:gosec // bounded by the bytesize validation
}

// String renders the configuration for --show.
func (c Config) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "variant:             %s\n", c.Variant)
	fmt.Fprintf(&b, "buffer-size:         %s\n", c.BufferSize)
	fmt.Fprintf(&b, "parallel:            %d\n", c.Parallel)
	fmt.Fprintf(&b, "encode:              %t\n", c.Encode)
	fmt.Fprintf(&b, "dry:                 %t\n", c.Dry)
	fmt.Fprintf(&b, "delete:              %t\n", c.Delete)
	fmt.Fprintf(&b, "preserve-timestamps: %t\n", c.PreserveTimestamps)
	fmt.Fprintf(&b, "quiet:               %t\n", c.Quiet)
	fmt.Fprintf(&b, "stats:               %t\n", c.Stats)
	fmt.Fprintf(&b, "include:             %v\n", c.Include)
	fmt.Fprintf(&b, "exclude:             %v\n", c.Exclude)
	fmt.Fprintf(&b, "include-from:        %s\n", c.IncludeFrom)
	fmt.Fprintf(&b, "exclude-from:        %s\n", c.ExcludeFrom)
	fmt.Fprintf(&b, "files:               %v\n", c.Files)

	return b.String()
}
