package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// appVersion is set from main via SetVersion.
var appVersion = "dev"

// SetVersion records the build version for the version command.
func SetVersion(v string) {
	appVersion = v
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lendctl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lendctl %s\n", appVersion)
		},
	}
}
