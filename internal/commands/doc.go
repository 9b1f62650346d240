// Package commands provides the command-line interface for the apdec tool.
//
// It implements commands for:
//   - decoding AUD/PNZ containers (the root command)
//   - encoding MP3/PNG payloads back into containers
//   - listing the compiled-in key table variants
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/apdec/internal/config"
)

// envPrefix namespaces environment overrides, e.g. APDEC_PARALLEL=4.
const envPrefix = "apdec"

// preRun returns a PreRunE handler that binds flags and environment variables
// into cfg, stores the positional args in cfg.Files and validates the result.
// Without any positional args it prints the usage and fails.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			cmd.SetOut(cmd.ErrOrStderr())

			if err := cmd.Usage(); err != nil {
				return fmt.Errorf("printing usage: %w", err)
			}

			return config.ErrUsage
		}

		v := viper.New()
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := v.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Files = args

		return cfg.Validate()
	}
}

// runE executes the configured operation, or prints the configuration with --show.
func runE(
	cfg *config.Config,
	run func(*config.Config, io.Writer, io.Writer) error,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if cfg.Display() {
			fmt.Fprint(cmd.OutOrStdout(), cfg)

			return nil
		}

		return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
}
