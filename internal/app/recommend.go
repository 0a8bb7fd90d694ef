package app

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/blackwell-systems/lendctl/internal/recommend"
	"github.com/blackwell-systems/lendctl/internal/tui"
	"github.com/spf13/cobra"
)

const maxBarWidth = 40

func newRecommendCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "recommend <member-id>",
		Short: "Suggest titles for a member",
		Long: `Suggest up to ten unread titles for a member, scored by how much
the member borrows each genre and how popular each title is with
everyone else. Members with no history get titles from two randomly
chosen genres.

Examples:
  lendctl recommend suii
  lendctl recommend suii --seed 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []recommend.Option{
				recommend.WithFallbackGenres(cfg.Recommend.FallbackGenres),
			}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, recommend.WithRand(rand.New(rand.NewSource(seed))))
			}

			engine := recommend.NewEngine(lib.Catalog(), lib.Ledger(), opts...)
			scored, err := engine.Recommend(args[0])
			if errors.Is(err, recommend.ErrCannotRecommend) {
				warn("not enough unread titles to recommend anything for %s", args[0])
				return nil
			}
			if err != nil {
				return err
			}

			header("Recommended for %s", args[0])
			printScoreChart(scored)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the no-history genre pick")

	return cmd
}

// printScoreChart draws a horizontal bar per title, widths scaled to the top
// score.
func printScoreChart(scored []recommend.Scored) {
	top := scored[0].Score
	if top == 0 {
		top = 1
	}
	for _, s := range scored {
		width := s.Score * maxBarWidth / top
		if width < 1 {
			width = 1
		}
		bar := tui.StyleHighlight.Render(strings.Repeat("█", width))
		fmt.Printf("  %-30s %s %d\n", s.Title, bar, s.Score)
	}
}
