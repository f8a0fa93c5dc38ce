// Package scene defines the screens the game loop switches between.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game (playing, complete).
//
// The game loop delegates Update and Draw to the current scene and switches
// to whatever non-nil scene Update returns.
type Scene interface {
	// Update advances the scene by one frame of dt seconds.
	// Returning ebiten.Termination ends the game cleanly.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the game ends.
	OnExit()
}
