// Command apdec decodes AUD/PNZ game asset containers into MP3/PNG files.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/apdec/internal/commands"
	"github.com/idelchi/apdec/internal/config"
)

// version is set at build time with -ldflags.
//
//nolint:gochecknoglobals
var version = "unknown - unofficial & generated by unknown"

func main() {
	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		os.Exit(1)
	}
}
