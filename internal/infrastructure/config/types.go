package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/platcore/internal/domain/entity"
	"github.com/younwookim/platcore/internal/domain/geom"
)

// ErrInvalidPhysics is returned by Validate for unusable tuning values
var ErrInvalidPhysics = errors.New("invalid physics config")

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig   `json:"display"`
	Physics PhysicsSettings `json:"physics"`
	Player  PlayerConfig    `json:"player"`
	Box     BoxConfig       `json:"box"`
	Walker  WalkerConfig    `json:"walker"`
	Goal    SizeConfig      `json:"goal"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	Gravity          float64 `json:"gravity"`
	GravityJumping   float64 `json:"gravityJumping"`
	TerminalVelocity float64 `json:"terminalVelocity"`
	GroundFriction   float64 `json:"groundFriction"` // when not accelerating
	MovingFriction   float64 `json:"movingFriction"` // while accelerating
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s SizeConfig) vec() geom.Vec { return geom.V(s.Width, s.Height) }

type PlayerConfig struct {
	Size            SizeConfig `json:"size"`
	Speed           float64    `json:"speed"`
	JumpStrength    float64    `json:"jumpStrength"`
	CoyoteFrames    int        `json:"coyoteFrames"`
	LongJumpFrames  int        `json:"longJumpFrames"`
	LongJumpDivisor float64    `json:"longJumpDivisor"`
}

type BoxConfig struct {
	Size float64 `json:"size"`
}

type WalkerConfig struct {
	Size  SizeConfig `json:"size"`
	Speed float64    `json:"speed"`
}

// Params converts the file format into the tuning used by the simulation.
// Tile size is left at its default; the level builder derives it from the
// screen and the level grid.
func (c *PhysicsConfig) Params() entity.Params {
	p := entity.DefaultParams()
	p.Gravity = c.Physics.Gravity
	p.GravityJumping = c.Physics.GravityJumping
	p.TerminalVelocity = c.Physics.TerminalVelocity
	p.GroundFriction = c.Physics.GroundFriction
	p.MovingFriction = c.Physics.MovingFriction
	p.PlayerSize = c.Player.Size.vec()
	p.PlayerSpeed = c.Player.Speed
	p.JumpStrength = c.Player.JumpStrength
	p.CoyoteFrames = c.Player.CoyoteFrames
	p.LongJumpFrames = c.Player.LongJumpFrames
	p.LongJumpDivisor = c.Player.LongJumpDivisor
	p.BoxSize = c.Box.Size
	p.WalkerSize = c.Walker.Size.vec()
	p.WalkerSpeed = c.Walker.Speed
	p.GoalSize = c.Goal.vec()
	return p
}

// Validate checks the values the simulation divides by or sizes with
func (c *PhysicsConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Display.ScreenWidth > 0 && c.Display.ScreenHeight > 0, "display size"},
		{c.Display.Framerate > 0, "framerate"},
		{c.Display.Scale > 0, "scale"},
		{positive(c.Player.Size), "player size"},
		{c.Box.Size > 0, "box size"},
		{positive(c.Walker.Size), "walker size"},
		{positive(c.Goal), "goal size"},
		{c.Player.LongJumpDivisor != 0, "long jump divisor"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidPhysics, chk.what)
		}
	}
	return nil
}

func positive(s SizeConfig) bool {
	return s.Width > 0 && s.Height > 0
}
