package app

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/lendctl/internal/catalog"
	"github.com/blackwell-systems/lendctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newLoansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loans <member-id>",
		Short: "Show the books a member currently holds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID := args[0]

			held := lib.Catalog().Filter(func(b *catalog.Book) bool {
				return b.Member == memberID
			})
			if len(held) == 0 {
				fmt.Printf("%s holds no books\n", memberID)
				return nil
			}

			now := time.Now()
			header("Books held by %s", memberID)
			for _, b := range held {
				line := fmt.Sprintf("  %-4d %-30s %s", b.ID, b.Title, b.Author)
				if loan, found := lib.Ledger().MostRecentOpenForBook(b.ID); found {
					line += "  out since " + util.FormatDate(loan.Checkout)
					if util.OlderThanDays(loan.Checkout, now, cfg.Library.LoanPeriodDays) {
						line += " " + color.RedString("(overdue)")
					}
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
