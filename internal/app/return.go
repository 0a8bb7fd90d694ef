package app

import (
	"github.com/spf13/cobra"
)

func newReturnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "return <book-ids>",
		Short: "Return one or more books to the shelf",
		Long: `Return books. Book IDs are comma-separated.

Per-book failures (an unknown ID, a book already on the shelf) stop the
batch but keep the books returned before the failure. Books brought back
after the loan period produce a warning alongside the success message.

Examples:
  lendctl return 5
  lendctl return 1,2,3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseBookIDs(args[0])
			if err != nil {
				return err
			}
			return renderOutcome(newCirculation().Return(ids))
		},
	}
}
