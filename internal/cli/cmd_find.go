package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/stockpile/internal/ui"
)

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "find <name>",
		Aliases: []string{"search"},
		Short:   "Show one item's price and quantity",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.store.SearchItem(args[0])
			if !res.OK {
				return rejected(res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Item(res.Item, a.cfg.Currency))
			return nil
		},
	}
}
