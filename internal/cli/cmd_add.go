package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/stockpile/internal/inventory"
	"github.com/idilsaglam/stockpile/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add <name> <price> <quantity>",
		Short:   "Add a new item",
		Example: `  stockpile add Widget 2.50 10` + "\n" + `  stockpile add "Hex bolt M6" 0.12 500`,
		Args:    usageArgs(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := inventory.ParsePrice(args[1])
			if err != nil {
				return err
			}
			qty, err := inventory.ParseQuantity(args[2])
			if err != nil {
				return err
			}
			res, err := a.store.AddItem(args[0], price, qty)
			if err != nil {
				return err
			}
			if !res.OK {
				return rejected(res)
			}
			ui.OK(cmd.OutOrStdout(), res.Notice)
			return nil
		},
	}
}
