package commands

import (
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/apdec/internal/config"
	"github.com/idelchi/apdec/internal/container"
	"github.com/idelchi/apdec/internal/keystream"
	"github.com/idelchi/apdec/internal/logic"
)

// NewRootCommand creates the root command, which decodes the given containers.
// Flags shared with the subcommands are registered as persistent flags.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "apdec [flags] FILE1.AUD [FILE2.PNZ] [DIR] [...]"
	root.Short = "Decode AUD/PNZ game asset containers"
	root.Long = `Decode AUD and PNZ game asset containers into their MP3 and PNG payloads.

Every payload is verified against the Adler-32 checksum stored in its container
before anything is written; files that fail verification produce no output.
Directories are walked recursively for *.aud and *.pnz files (case-insensitive).
All flags can also be set through APDEC_<FLAG> environment variables.`

	root.SilenceUsage = true
	root.SilenceErrors = true
	root.Args = cobra.ArbitraryArgs
	root.PreRunE = preRun(cfg)
	root.RunE = runE(cfg, logic.Run)

	flags := root.PersistentFlags()

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.Bool("stats", false, "Print a summary after processing")
	flags.Bool("dry", false, "Verify inputs without writing any output")
	flags.BoolP("delete", "d", false, "Delete the input file after successful processing")
	flags.BoolP("preserve-timestamps", "p", false, "Copy the input modification time onto the output")

	flags.String("variant", keystream.DefaultVariant, "Key table variant of the containers")
	flags.String("buffer-size", humanize.IBytes(container.DefaultBufferSize), "Read buffer size (e.g. 4KiB, 128KiB)")

	flags.StringSlice("include", nil, "Glob patterns selecting files inside directories (find -ipath semantics)")
	flags.StringSlice("exclude", nil, "Glob patterns excluding files inside directories (find -ipath semantics)")
	flags.String("include-from", "", "JSONC file with an array of include patterns")
	flags.String("exclude-from", "", "JSONC file with an array of exclude patterns")

	root.AddCommand(NewEncodeCommand(cfg), NewVariantsCommand())

	return root
}
