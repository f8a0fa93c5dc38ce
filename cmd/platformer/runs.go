package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/platcore/internal/infrastructure/storage"
)

func newRunsCmd(_ *cliOptions) *cobra.Command {
	var (
		limit  int
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List the best runs",
		Long: `Show the run history, best first: finished runs, then the furthest
level, fewest deaths and fewest frames.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := storage.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.TopRuns(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				fmt.Fprintln(out, "Run 'platformer play' to set the first one!")
				return nil
			}

			fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-6s  %-8s  %s\n", "Rank", "Result", "Level", "Deaths", "Stomps", "Frames", "Date")
			fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-6s  %-8s  %s\n", "----", "------", "-----", "------", "------", "------", "----")
			for i, r := range runs {
				result := "-"
				if r.Finished {
					result = "finished"
				}
				fmt.Fprintf(out, "  %-4d  %-8s  %-5d  %-6d  %-6d  %-8d  %s\n",
					i+1, result, r.LevelReached, r.Deaths, r.Stomps, r.Frames, r.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", storage.DefaultLimit, "Number of runs to show")
	cmd.Flags().StringVar(&dbPath, "db", storage.DefaultPath(), "Path to the run history database")
	return cmd
}
