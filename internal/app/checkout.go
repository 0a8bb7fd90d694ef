package app

import (
	"github.com/spf13/cobra"
)

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <member-id> <book-ids>",
		Short: "Withdraw one or more books for a member",
		Long: `Withdraw books for a member. Book IDs are comma-separated.

The whole batch is validated first: duplicate IDs or a malformed member
ID reject the request before anything changes. Per-book failures (an
unknown ID, a book already on loan) stop the batch but keep the books
withdrawn before the failure.

Examples:
  lendctl checkout suii 5
  lendctl checkout suii 1,2,3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseBookIDs(args[1])
			if err != nil {
				return err
			}
			return renderOutcome(newCirculation().Checkout(args[0], ids))
		},
	}
}
