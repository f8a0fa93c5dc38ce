// platformer is a tile platformer: run and jump through a short sequence of
// levels, stomping slimes and avoiding lava, until the last coin is taken.
//
// Usage:
//
//	platformer play              - Open the game window
//	platformer replay <file>     - Replay a recording headless and print stats
//	platformer runs              - List the best runs
//
// Global flags:
//
//	--config <dir>      - Load configs from dir instead of the built-in ones
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/platcore/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// cliOptions holds the persistent flags
type cliOptions struct {
	configDir string
	logLevel  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "platformer",
		Short: "Tile platformer with replays and run history",
		Long: `Run and jump through the bundled levels. Touch lava and the level
restarts, land on a slime to stomp it, grab the coin to move on.

Examples:
  platformer play
  platformer play --record run.msgpack
  platformer replay run.msgpack
  platformer runs --limit 5`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configDir, "config", "", "Config directory (default: built-in configs)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(newPlayCmd(opts))
	root.AddCommand(newReplayCmd(opts))
	root.AddCommand(newRunsCmd(opts))
	return root
}

// logger builds the command logger writing to w
func (o *cliOptions) logger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", o.logLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	}), nil
}

// loader returns a config loader over --config or the embedded configs
func (o *cliOptions) loader() (*config.Loader, error) {
	if o.configDir != "" {
		return config.NewLoader(o.configDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
