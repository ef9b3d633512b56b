package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"quiz-game/internal/domain"
)

// NewScoresCmd builds the CLI subcommand that prints the leaderboard.
func NewScoresCmd(configPath, dbPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Show all recorded scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			service, closeFn, err := buildService(ctx, *configPath, *dbPath, *verbose)
			if err != nil {
				return err
			}
			defer closeFn()

			rows, err := service.Leaderboard(ctx)
			if err != nil {
				return err
			}
			formatScoreTable(os.Stdout, rows)
			return nil
		},
	}
}

func formatScoreTable(out io.Writer, rows []domain.ScoreRow) {
	if len(rows) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USERNAME\tLEVEL\tSCORE")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\n", row.Username, row.Difficulty, row.Score)
	}
	w.Flush()
}
