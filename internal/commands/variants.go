package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/apdec/internal/keystream"
)

// NewVariantsCommand lists the compiled-in key tables.
func NewVariantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the supported container variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range keystream.Variants() {
				table, err := keystream.Lookup(name)
				if err != nil {
					return err
				}

				marker := ""
				if name == keystream.DefaultVariant {
					marker = " (default)"
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d-byte key%s\n", name, table.Len(), marker)
			}

			return nil
		},
	}
}
