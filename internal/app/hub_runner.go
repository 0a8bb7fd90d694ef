package app

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/blackwell-systems/lendctl/internal/tui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// runHub launches the interactive hub menu and routes to selected action
func runHub() error {
	for {
		status := collectStatus(time.Now())
		ctx := tui.HubContext{
			BookCount:    status.Books,
			OnLoanCount:  status.OnLoan,
			OverdueCount: status.Overdue,
		}

		action, err := tui.RunHub(ctx)
		if err != nil {
			return err
		}

		var cmdErr error
		switch action {
		case "checkout":
			cmdErr = runCheckoutPrompt()
		case "return":
			cmdErr = runReturnPrompt()
		case "search":
			cmdErr = runSearchPrompt()
		case "recommend":
			cmdErr = runMemberPrompt("Recommend Titles", newRecommendCmd())
		case "loans":
			cmdErr = runMemberPrompt("Member Loans", newLoansCmd())
		case "status":
			cmdErr = executeQuiet(newStatusCmd())
		case "verify":
			cmdErr = executeQuiet(newVerifyCmd())
		case "quit", "":
			return nil
		default:
			return fmt.Errorf("unknown action: %s", action)
		}

		// errExitOne means renderOutcome already showed the failure.
		if cmdErr != nil && !errors.Is(cmdErr, errExitOne) {
			fmt.Println()
			fmt.Println(color.RedString("Operation failed: %v", cmdErr))
		}

		fmt.Println()
		fmt.Println(color.CyanString("Press Enter to return to menu..."))
		var dummy string
		_, _ = fmt.Scanln(&dummy)
	}
}

// executeQuiet runs a sub-command with explicit args, keeping cobra's own
// error and usage printing out of the hub loop.
func executeQuiet(cmd *cobra.Command, args ...string) error {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs(append([]string{}, args...))
	return cmd.Execute()
}

// prompt reads one trimmed line from stdin.
func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func runCheckoutPrompt() error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println()
	header("Checkout Books")
	fmt.Println()
	member, err := prompt(reader, "Member ID: ")
	if err != nil {
		return err
	}
	ids, err := prompt(reader, "Book IDs (comma-separated): ")
	if err != nil {
		return err
	}

	return executeQuiet(newCheckoutCmd(), member, ids)
}

func runReturnPrompt() error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println()
	header("Return Books")
	fmt.Println()
	ids, err := prompt(reader, "Book IDs (comma-separated): ")
	if err != nil {
		return err
	}

	return executeQuiet(newReturnCmd(), ids)
}

func runSearchPrompt() error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println()
	header("Search Catalog")
	fmt.Println()
	attr, err := prompt(reader, "Attribute (id/genre/title/author/purchase_date/member) [title]: ")
	if err != nil {
		return err
	}
	if attr == "" {
		attr = "title"
	}
	term, err := prompt(reader, "Search term: ")
	if err != nil {
		return err
	}

	return executeQuiet(newSearchCmd(), "--by", attr, "--contains", "--ignore-case", term)
}

func runMemberPrompt(title string, cmd *cobra.Command) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println()
	header("%s", title)
	fmt.Println()
	member, err := prompt(reader, "Member ID: ")
	if err != nil {
		return err
	}
	if member == "" {
		return fmt.Errorf("member ID cannot be empty")
	}

	return executeQuiet(cmd, member)
}
