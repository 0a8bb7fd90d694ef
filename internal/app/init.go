package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/lendctl/internal/catalog"
	"github.com/blackwell-systems/lendctl/internal/config"
	"github.com/blackwell-systems/lendctl/internal/ledger"
	"github.com/blackwell-systems/lendctl/internal/util"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the config file and empty data files",
		Long: `Write the config file and create the data directory with an empty
catalog and loan ledger. Existing data files are left untouched.

Examples:
  lendctl init
  lendctl init --data-dir ~/library`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dataDir != "" {
				cfg.Library.DataDir = dataDir
			}

			if err := config.Save(cfg, flagConfig); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			path := flagConfig
			if path == "" {
				path = config.DefaultPath()
			}
			ok("wrote config to %s", path)

			if err := util.EnsureDir(config.ExpandHome(cfg.Library.DataDir)); err != nil {
				return fmt.Errorf("creating data directory: %w", err)
			}

			for _, create := range []struct {
				path  string
				write func() error
			}{
				{cfg.BooksPath(), func() error { return catalog.Save(cfg.BooksPath(), nil) }},
				{cfg.LoansPath(), func() error { return ledger.Save(cfg.LoansPath(), nil) }},
			} {
				if _, err := os.Stat(create.path); err == nil {
					warn("%s already exists, leaving it alone", create.path)
					continue
				}
				if err := create.write(); err != nil {
					return fmt.Errorf("creating %s: %w", create.path, err)
				}
				ok("created %s", create.path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory for the data files")

	return cmd
}
