package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/platcore/internal/application/game"
	"github.com/younwookim/platcore/internal/application/replay"
	"github.com/younwookim/platcore/internal/application/scene/playing"
	"github.com/younwookim/platcore/internal/application/session"
	"github.com/younwookim/platcore/internal/application/system"
	"github.com/younwookim/platcore/internal/infrastructure/storage"
)

func newPlayCmd(opts *cliOptions) *cobra.Command {
	var (
		recordPath string
		dbPath     string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		Long: `Play the levels in order. The run is saved to the run history when
the window closes.

Controls:
  Left/Right, A/D   - Move
  Space, Up, W      - Jump (hold for a longer jump)
  Esc               - Pause
  R                 - Restart the level
  Q                 - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := opts.logger(os.Stderr)
			if err != nil {
				return err
			}
			loader, err := opts.loader()
			if err != nil {
				return err
			}
			cfg, err := loader.LoadAll()
			if err != nil {
				return err
			}

			display := cfg.Physics.Display
			s, err := session.New(session.Options{
				Levels:  cfg.Levels,
				Params:  cfg.Physics.Params(),
				ScreenW: float64(display.ScreenWidth),
				ScreenH: float64(display.ScreenHeight),
				Logger:  logger,
			})
			if err != nil {
				return err
			}

			var rec *replay.Recorder
			if recordPath != "" {
				ids := make([]string, len(cfg.Levels))
				for i, lc := range cfg.Levels {
					ids[i] = lc.ID
				}
				rec = replay.NewRecorder(ids)
				logger.Info("recording enabled", "path", recordPath)
			}

			scene := playing.New(playing.Options{
				Session:    s,
				Input:      system.NewInputSystem(system.DefaultBindings()),
				Recorder:   rec,
				RecordPath: recordPath,
				Logger:     logger,
				ScreenW:    display.ScreenWidth,
				ScreenH:    display.ScreenHeight,
			})
			g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate)

			ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
			ebiten.SetWindowTitle("Platformer")
			ebiten.SetTPS(display.Framerate)

			runErr := ebiten.RunGame(g)
			if !g.Done() {
				// window closed by the OS, scene never saw a quit
				scene.OnExit()
			}

			if err := saveRun(dbPath, s.Stats()); err != nil {
				logger.Warn("run not saved", "err", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatStats(s.Stats()))
			return runErr
		},
	}

	cmd.Flags().StringVar(&recordPath, "record", "", "Record input to file (.msgpack for binary, JSON otherwise)")
	cmd.Flags().StringVar(&dbPath, "db", storage.DefaultPath(), "Path to the run history database")
	return cmd
}

// saveRun stores the stats of a run that got past its first frame
func saveRun(dbPath string, stats session.Stats) error {
	if stats.Frames == 0 {
		return nil
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveRun(storage.Run{
		LevelReached: stats.LevelReached,
		Deaths:       stats.Deaths,
		Stomps:       stats.Stomps,
		Frames:       stats.Frames,
		Finished:     stats.Finished,
	})
	return err
}

func formatStats(stats session.Stats) string {
	result := "gave up"
	if stats.Finished {
		result = "finished"
	}
	return fmt.Sprintf("%s: level %d, %d deaths, %d stomps, %d frames",
		result, stats.LevelReached, stats.Deaths, stats.Stomps, stats.Frames)
}
