package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/blackwell-systems/lendctl/internal/search"
	"github.com/blackwell-systems/lendctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type searchRow struct {
	ID           int    `json:"id"`
	Genre        string `json:"genre"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	PurchaseDate string `json:"purchase_date"`
	Member       string `json:"member"`
	Overdue      bool   `json:"overdue"`
}

func newSearchCmd() *cobra.Command {
	var (
		by         string
		ignoreCase bool
		contains   bool
		sortBy     string
		desc       bool
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search the catalog by any book attribute",
		Long: `Search the catalog. Matches are exact unless --contains is set.
Books whose current loan has run past the loan period are highlighted.

Attributes: id, genre, title, author, purchase_date, member.

Examples:
  lendctl search "Sinful Duty"
  lendctl search --by author --contains poe --ignore-case
  lendctl search --by genre Crime --sort purchase_date --desc
  lendctl search --by id 5 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := search.NewService(lib.Catalog(), lib.Ledger(),
				search.WithLoanPeriod(cfg.Library.LoanPeriodDays))

			results, err := svc.Search(search.Query{
				Attribute:  by,
				Term:       args[0],
				IgnoreCase: ignoreCase,
				Contains:   contains,
				SortBy:     sortBy,
				Descending: desc,
			})
			if err != nil {
				return err
			}

			if jsonOut {
				return printSearchJSON(results)
			}
			printSearchText(results)
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "title", "Attribute to match against")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Case-insensitive matching")
	cmd.Flags().BoolVarP(&contains, "contains", "c", false, "Substring matching instead of exact")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort results by attribute (default: catalog order)")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func printSearchText(results []search.Result) {
	if len(results) == 0 {
		fmt.Println("no matches")
		return
	}

	for _, r := range results {
		b := r.Book
		holder := b.Member
		if b.OnShelf() {
			holder = color.GreenString("on shelf")
		}
		line := fmt.Sprintf("  %-4d %-10s %-30s %-15s %s  %s",
			b.ID, b.Genre, b.Title, b.Author, util.FormatDate(b.PurchaseDate), holder)
		if r.Highlight {
			fmt.Println(color.RedString(line))
		} else {
			fmt.Println(line)
		}
	}
	fmt.Printf("\n%d match(es)\n", len(results))
}

func printSearchJSON(results []search.Result) error {
	rows := make([]searchRow, len(results))
	for i, r := range results {
		rows[i] = searchRow{
			ID:           r.Book.ID,
			Genre:        r.Book.Genre,
			Title:        r.Book.Title,
			Author:       r.Book.Author,
			PurchaseDate: util.FormatDate(r.Book.PurchaseDate),
			Member:       r.Book.Member,
			Overdue:      r.Highlight,
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
