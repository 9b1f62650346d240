package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/apdec/internal/config"
	"github.com/idelchi/apdec/internal/logic"
)

// NewEncodeCommand creates a new cobra command for the encode subcommand.
func NewEncodeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encode [flags] FILE1.mp3 [FILE2.png] [DIR] [...]",
		Aliases: []string{"enc"},
		Short:   "Wrap MP3/PNG files into AUD/PNZ containers",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Encode = true

			return preRun(cfg)(cmd, args)
		},
		RunE: runE(cfg, logic.Run),
	}
}
