package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/stockpile/internal/inventory"
	"github.com/idilsaglam/stockpile/internal/ui"
)

func newAdjustCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "adjust <name> <delta>",
		Short: "Change an item's quantity by delta (floors at zero)",
		Long: "Adds delta to the stored quantity. Withdrawing more than is on hand\n" +
			"leaves the quantity at 0. Put -- before a negative delta.",
		Example: `  stockpile adjust Widget 5` + "\n" + `  stockpile adjust Widget -- -3`,
		Args:    usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := inventory.ParseDelta(args[1])
			if err != nil {
				return err
			}
			res, err := a.store.UpdateItem(args[0], delta)
			if err != nil {
				return err
			}
			if !res.OK {
				return rejected(res)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("%s (now %d)", res.Notice, res.Item.Quantity))
			return nil
		},
	}
}
