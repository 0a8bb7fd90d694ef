package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the catalog against the loan ledger",
		Long: `Check that the two data files agree: every book marked as held has
exactly one open loan for the same member, every shelved book has none,
and no loan references an unknown book.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			violations := lib.Verify()
			if len(violations) == 0 {
				ok("catalog and ledger agree")
				return nil
			}

			for _, v := range violations {
				warn("%s", v)
			}
			return fmt.Errorf("%d inconsistencies found", len(violations))
		},
	}
}
