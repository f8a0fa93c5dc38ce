package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/platcore/internal/application/replay"
	"github.com/younwookim/platcore/internal/application/session"
	"github.com/younwookim/platcore/internal/infrastructure/config"
)

func newReplayCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Replay a recording without a window",
		Long: `Feed a recorded run back into the simulation and print the resulting
stats. The levels named in the recording are loaded from the config.

Examples:
  platformer replay run.msgpack
  platformer replay replay_20240301_120000.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger(os.Stderr)
			if err != nil {
				return err
			}
			loader, err := opts.loader()
			if err != nil {
				return err
			}

			data, err := replay.Load(args[0])
			if err != nil {
				return err
			}
			physics, err := loader.LoadPhysics()
			if err != nil {
				return err
			}
			levels, err := loadReplayLevels(loader, data.Levels)
			if err != nil {
				return err
			}

			s, err := session.New(session.Options{
				Levels:  levels,
				Params:  physics.Params(),
				ScreenW: float64(physics.Display.ScreenWidth),
				ScreenH: float64(physics.Display.ScreenHeight),
				Logger:  logger,
			})
			if err != nil {
				return err
			}

			r := replay.NewReplayer(*data)
			stats, err := replay.Run(s, r)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "replayed %d/%d frames\n", r.CurrentFrame(), r.TotalFrames())
			fmt.Fprintln(out, formatStats(stats))
			return nil
		},
	}
}

func loadReplayLevels(loader *config.Loader, ids []string) ([]*config.LevelConfig, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("replay names no levels: %w", session.ErrNoLevels)
	}
	levels := make([]*config.LevelConfig, 0, len(ids))
	for _, id := range ids {
		lc, err := loader.LoadLevel(id)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lc)
	}
	return levels, nil
}
