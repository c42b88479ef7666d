package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/stockpile/internal/ui"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all items with count and total value",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Listing(a.store.View(), a.cfg.Currency))
			return nil
		},
	}
}
