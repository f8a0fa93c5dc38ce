package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/platcore/internal/application/scene"
	"github.com/younwookim/platcore/internal/application/session"
	"github.com/younwookim/platcore/internal/application/system"
)

var colorComplete = color.RGBA{20, 60, 30, 255}

// Complete is shown after the last level. Esc or Q ends the game.
type Complete struct {
	input   *system.InputSystem
	stats   session.Stats
	screenW int
	screenH int
}

// NewComplete creates the end screen for a finished run
func NewComplete(input *system.InputSystem, stats session.Stats, screenW, screenH int) *Complete {
	return &Complete{input: input, stats: stats, screenW: screenW, screenH: screenH}
}

// Update waits for the quit or pause key
func (c *Complete) Update(_ float64) (scene.Scene, error) {
	cmds := c.input.GetCommands()
	if cmds.Quit || cmds.Pause {
		return nil, ebiten.Termination
	}
	return nil, nil
}

// Draw renders the run summary
func (c *Complete) Draw(screen *ebiten.Image) {
	screen.Fill(colorComplete)
	ebitenutil.DebugPrintAt(screen, c.summary(), c.screenW/2-80, c.screenH/2-40)
}

func (c *Complete) summary() string {
	seconds := float64(c.stats.Frames) / float64(ebiten.TPS())
	return fmt.Sprintf("ALL LEVELS COMPLETE\n\nTime:   %.1fs\nDeaths: %d\nStomps: %d\n\nPress ESC to quit",
		seconds, c.stats.Deaths, c.stats.Stomps)
}

// Stats returns the finished run's statistics
func (c *Complete) Stats() session.Stats {
	return c.stats
}

func (c *Complete) OnEnter() {}

func (c *Complete) OnExit() {}
