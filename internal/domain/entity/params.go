package entity

import "github.com/younwookim/platcore/internal/domain/geom"

// Params holds the tunable physics constants.
// Units are pixels and frames; every value is applied once per tick.
type Params struct {
	// World
	Gravity          float64 // downward force per unit mass while falling
	GravityJumping   float64 // downward force per unit mass while ascending
	TerminalVelocity float64 // max downward speed

	// Friction coefficients
	GroundFriction float64 // idle (no input acceleration)
	MovingFriction float64 // while accelerating

	// Player
	PlayerSize      geom.Vec
	PlayerSpeed     float64
	JumpStrength    float64
	CoyoteFrames    int
	LongJumpFrames  int
	LongJumpDivisor float64 // sustained long-jump force = JumpStrength / LongJumpDivisor

	// Other variants
	BoxSize     float64
	WalkerSize  geom.Vec
	WalkerSpeed float64
	GoalSize    geom.Vec

	// Tile is the size of one level cell; bricks, hazards, platforms and
	// reversers are built from it. Set per level by the level builder.
	Tile geom.Vec
}

// DefaultParams returns the stock tuning
func DefaultParams() Params {
	return Params{
		Gravity:          3,
		GravityJumping:   2,
		TerminalVelocity: 30,
		GroundFriction:   0.3,
		MovingFriction:   0.07,
		PlayerSize:       geom.V(30, 30),
		PlayerSpeed:      1,
		JumpStrength:     15,
		CoyoteFrames:     10,
		LongJumpFrames:   10,
		LongJumpDivisor:  15,
		BoxSize:          30,
		WalkerSize:       geom.V(20, 20),
		WalkerSpeed:      1,
		GoalSize:         geom.V(20, 20),
		Tile:             geom.V(40, 40),
	}
}
