package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/platcore/internal/domain/entity"
)

// KeyFunc reports the state of a key
type KeyFunc func(ebiten.Key) bool

// Bindings maps each control to the keys that trigger it
type Bindings struct {
	Left    []ebiten.Key
	Right   []ebiten.Key
	Jump    []ebiten.Key
	Pause   []ebiten.Key
	Restart []ebiten.Key
	Quit    []ebiten.Key
}

// DefaultBindings returns arrows/space plus WASD
func DefaultBindings() Bindings {
	return Bindings{
		Left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Jump:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
		Pause:   []ebiten.Key{ebiten.KeyEscape},
		Restart: []ebiten.Key{ebiten.KeyR},
		Quit:    []ebiten.Key{ebiten.KeyQ},
	}
}

// Commands are one-shot requests outside the simulation
type Commands struct {
	Pause   bool
	Restart bool
	Quit    bool
}

// InputSystem handles player input
type InputSystem struct {
	bindings    Bindings
	pressed     KeyFunc
	justPressed KeyFunc
}

// NewInputSystem creates an input system polling ebiten's keyboard state
func NewInputSystem(b Bindings) *InputSystem {
	return NewInputSystemWithKeys(b, ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// NewInputSystemWithKeys creates an input system over custom key sources
func NewInputSystemWithKeys(b Bindings, pressed, justPressed KeyFunc) *InputSystem {
	return &InputSystem{
		bindings:    b,
		pressed:     pressed,
		justPressed: justPressed,
	}
}

// GetInput reads the held controls for this frame
func (s *InputSystem) GetInput() entity.Input {
	return entity.Input{
		Left:  anyKey(s.pressed, s.bindings.Left),
		Right: anyKey(s.pressed, s.bindings.Right),
		Jump:  anyKey(s.pressed, s.bindings.Jump),
	}
}

// GetCommands reads the keys pressed this frame
func (s *InputSystem) GetCommands() Commands {
	return Commands{
		Pause:   anyKey(s.justPressed, s.bindings.Pause),
		Restart: anyKey(s.justPressed, s.bindings.Restart),
		Quit:    anyKey(s.justPressed, s.bindings.Quit),
	}
}

func anyKey(f KeyFunc, keys []ebiten.Key) bool {
	for _, k := range keys {
		if f(k) {
			return true
		}
	}
	return false
}
