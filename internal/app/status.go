package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/blackwell-systems/lendctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type statusOutput struct {
	Books   int `json:"books"`
	OnShelf int `json:"on_shelf"`
	OnLoan  int `json:"on_loan"`
	Overdue int `json:"overdue"`
	Loans   int `json:"loan_records"`
	Members int `json:"members_with_loans"`
}

func newStatusCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show library totals and overdue counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := collectStatus(time.Now())

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printStatusText(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func collectStatus(now time.Time) statusOutput {
	var result statusOutput

	result.Books = lib.Catalog().Len()
	holders := make(map[string]bool)
	for _, b := range lib.Catalog().All() {
		if b.OnShelf() {
			result.OnShelf++
			continue
		}
		result.OnLoan++
		holders[b.Member] = true
		if loan, found := lib.Ledger().MostRecentOpenForBook(b.ID); found &&
			util.OlderThanDays(loan.Checkout, now, cfg.Library.LoanPeriodDays) {
			result.Overdue++
		}
	}
	result.Loans = lib.Ledger().Len()
	result.Members = len(holders)

	return result
}

func printStatusText(result statusOutput) {
	header("Library status")
	fmt.Printf("  %d books: %d on shelf, %d on loan\n", result.Books, result.OnShelf, result.OnLoan)
	fmt.Printf("  %d loan records, %d members holding books\n", result.Loans, result.Members)
	if result.Overdue > 0 {
		fmt.Printf("  %s %d book(s) overdue\n", color.RedString("✗"), result.Overdue)
	} else {
		fmt.Printf("  %s nothing overdue\n", color.GreenString("✓"))
	}
}
