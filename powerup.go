package main

import "shooter-server/internal/collision"

const (
	PowerupSize    = 24.0
	PowerupFallVY  = 80.0 // pixels/s drift toward the player
	PowerupTimeout = 12.0 // seconds before an uncollected powerup fades
)

// Powerup drifts down from a killed enemy until collected or expired
type Powerup struct {
	ID    string
	Kind  PowerupTypeDef
	X, Y  float64
	Life  float64
	Alive bool
}

// NewPowerup drops a rolled powerup at the given position
func NewPowerup(x, y float64) *Powerup {
	return &Powerup{
		ID:    GenerateID(4),
		Kind:  RollPowerupType(),
		X:     Clamp(x, PowerupSize/2, WorldWidth-PowerupSize/2),
		Y:     y,
		Life:  PowerupTimeout,
		Alive: true,
	}
}

// Update drifts the powerup down and expires it
func (pu *Powerup) Update(dt float64) {
	if !pu.Alive {
		return
	}
	pu.Y += PowerupFallVY * dt
	pu.Life -= dt
	if pu.Life <= 0 || pu.Y > WorldHeight+PowerupSize {
		pu.Alive = false
	}
}

// Bounds implements collision.Collidable
func (pu *Powerup) Bounds() collision.Rect {
	return centerBox(pu.X, pu.Y, PowerupSize, PowerupSize)
}

// ToState converts to protocol state
func (pu *Powerup) ToState() PowerupState {
	return PowerupState{
		ID:   pu.ID,
		Kind: pu.Kind.Name,
		X:    round1(pu.X),
		Y:    round1(pu.Y),
	}
}
