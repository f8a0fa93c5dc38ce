// Package game provides the ebiten.Game that drives Scene transitions.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/platcore/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	done    bool
}

// New creates a new Game with the given initial scene running at tps
// updates per second. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Any error, including ebiten.Termination, exits the current scene first.
func (g *Game) Update() error {
	if g.done {
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		g.done = true
		g.current.OnExit()
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the running scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Done reports whether the game has stopped
func (g *Game) Done() bool {
	return g.done
}

// IsTermination reports whether err is a clean shutdown request
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
