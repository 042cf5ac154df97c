package main

import (
	"math"

	"shooter-server/internal/collision"
)

const (
	DebrisMinSize  = 18.0 // radius
	DebrisMaxSize  = 30.0
	DebrisMinSpeed = 8.0 // pixels/s, slow enough to count as static
	DebrisMaxSpeed = 25.0
	DebrisSpinMin  = 0.3
	DebrisSpinMax  = 1.2
)

// Debris is a slow rock drifting across the field. It barely moves
// between frames, so the engine treats it as a static object.
type Debris struct {
	ID       string
	X, Y     float64
	VX, VY   float64
	Size     float64 // radius
	Rotation float64
	Spin     float64
	Alive    bool
}

// NewDebris spawns a rock just outside a random edge, drifting inward
func NewDebris() *Debris {
	d := &Debris{
		ID:       GenerateID(4),
		Size:     randRange(DebrisMinSize, DebrisMaxSize),
		Rotation: randFloat() * math.Pi * 2,
		Spin:     randRange(DebrisSpinMin, DebrisSpinMax),
		Alive:    true,
	}
	if randFloat() < 0.5 {
		d.Spin = -d.Spin
	}

	speed := randRange(DebrisMinSpeed, DebrisMaxSpeed)
	if randFloat() < 0.5 {
		// From the left, drifting right
		d.X = -d.Size
		d.Y = randRange(d.Size, WorldHeight*0.6)
		d.VX = speed
	} else {
		// From the right, drifting left
		d.X = WorldWidth + d.Size
		d.Y = randRange(d.Size, WorldHeight*0.6)
		d.VX = -speed
	}
	d.VY = randRange(-3, 3)
	return d
}

// Update drifts the rock and despawns it once fully off the field
func (d *Debris) Update(dt float64) {
	if !d.Alive {
		return
	}
	d.X += d.VX * dt
	d.Y += d.VY * dt
	d.Rotation += d.Spin * dt

	margin := d.Size * 2
	if d.X < -margin || d.X > WorldWidth+margin ||
		d.Y < -margin || d.Y > WorldHeight+margin {
		d.Alive = false
	}
}

// Bounds implements collision.Collidable
func (d *Debris) Bounds() collision.Rect {
	return centerBox(d.X, d.Y, d.Size*2, d.Size*2)
}

// Radius implements collision.CircleBounded
func (d *Debris) Radius() float64 {
	return d.Size
}

// ToState converts to protocol state
func (d *Debris) ToState() DebrisState {
	return DebrisState{
		ID: d.ID,
		X:  round1(d.X),
		Y:  round1(d.Y),
		R:  math.Round(d.Rotation*100) / 100,
		S:  round1(d.Size),
	}
}
