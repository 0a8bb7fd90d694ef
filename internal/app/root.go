package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/blackwell-systems/lendctl/internal/circulation"
	"github.com/blackwell-systems/lendctl/internal/config"
	"github.com/blackwell-systems/lendctl/internal/library"
	"github.com/blackwell-systems/lendctl/internal/tui"
	"github.com/blackwell-systems/lendctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	lib *library.Library

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
)

var rootCmd = &cobra.Command{
	Use:   "lendctl",
	Short: "Run a small library's circulation desk from two CSV files",
	Long: `lendctl tracks a book catalog and its loan ledger in two flat CSV
files: database.csv for the catalog and logfile.csv for every checkout
and return ever made.

Run 'lendctl' with no arguments to launch the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand provided and in TUI mode, launch hub
		if tui.ShouldUseTUI(cmd) {
			return runHub()
		}
		// Otherwise show help
		return cmd.Help()
	},
}

// errExitOne signals a failed circulation outcome whose message has already
// been printed by renderOutcome.
var errExitOne = errors.New("operation failed")

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errExitOne) {
			fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/lendctl/config.yml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// init and version run without opening the data files.
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		lib, err = library.Open(library.Files{
			BooksPath: cfg.BooksPath(),
			LoansPath: cfg.LoansPath(),
		})
		if err != nil {
			return fmt.Errorf("opening library: %w", err)
		}
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newInitCmd(),
		newCheckoutCmd(),
		newReturnCmd(),
		newLoansCmd(),
		newSearchCmd(),
		newRecommendCmd(),
		newStatusCmd(),
		newVerifyCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

// renderOutcome prints the error, warning and success fields of a circulation
// outcome in that order. All three can be present at once: a batch that
// failed partway still commits the books processed before the failure.
// Returns errExitOne when the outcome carries an error.
func renderOutcome(out circulation.Outcome) error {
	if out.Err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗"), out.Err)
	}
	if out.Warning != "" {
		warn("%s", out.Warning)
	}
	if out.Success != "" {
		ok("%s", out.Success)
	}
	if out.Err != nil {
		return errExitOne
	}
	return nil
}

// parseBookIDs splits a comma-separated ID list into ints.
func parseBookIDs(arg string) ([]int, error) {
	var ids []int
	for _, field := range strings.Split(arg, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("a book ID is invalid (not a number): %q", field)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// newCirculation builds the circulation service with the configured policy.
func newCirculation() *circulation.Service {
	return circulation.NewService(lib,
		circulation.WithLoanPeriod(cfg.Library.LoanPeriodDays),
		circulation.WithMemberIDLength(cfg.Library.MemberIDLength),
	)
}
