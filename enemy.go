package main

import (
	"math"

	"shooter-server/internal/collision"
)

const (
	enemyWeaveAmp  = 40.0 // pixels of horizontal sway
	enemyWeaveFreq = 1.5  // sway cycles per second
	bossHoverY     = 80.0 // boss holds this line instead of descending
	bossStrafe     = 120.0
)

// Enemy descends from the top of the field. The boss type is the
// exception: it drops to its hover line and strafes there until killed.
type Enemy struct {
	ID    string
	Type  EnemyTypeDef
	X, Y  float64
	HP    int
	MaxHP int
	Alive bool

	Speed    float64 // pixels/s after difficulty scaling
	FireCD   float64
	weaveT   float64 // phase accumulator for the sway
	strafeVX float64 // boss only
}

// NewEnemy spawns an enemy of the given type above the top edge at a
// random column. level is the difficulty level (wave - 1).
func NewEnemy(def EnemyTypeDef, level int) *Enemy {
	hp := def.Health
	if def.Name == "boss" {
		hp = int(BossHealthScale.Value(level))
	} else {
		hp = int(math.Ceil(float64(def.Health) * EnemyHealthScale.Value(level)))
	}

	e := &Enemy{
		ID:     GenerateID(4),
		Type:   def,
		X:      randRange(def.Width/2, WorldWidth-def.Width/2),
		Y:      -def.Height/2 - randRange(10, 60),
		HP:     hp,
		MaxHP:  hp,
		Alive:  true,
		Speed:  def.Speed * EnemySpeedScale.Value(level),
		weaveT: randFloat() * math.Pi * 2,
	}
	if def.Name == "boss" {
		e.strafeVX = bossStrafe
		if randFloat() < 0.5 {
			e.strafeVX = -e.strafeVX
		}
	}
	if def.FireRate > 0 {
		// Stagger the first shot so a wave doesn't fire in sync
		e.FireCD = randFloat() / def.FireRate
	}
	return e
}

// Update moves the enemy one tick
func (e *Enemy) Update(dt float64) {
	if !e.Alive {
		return
	}

	if e.Type.Name == "boss" {
		if e.Y < bossHoverY {
			e.Y += e.Speed * dt
		} else {
			e.X += e.strafeVX * dt
			if e.X < e.Type.Width/2 {
				e.X = e.Type.Width / 2
				e.strafeVX = -e.strafeVX
			} else if e.X > WorldWidth-e.Type.Width/2 {
				e.X = WorldWidth - e.Type.Width/2
				e.strafeVX = -e.strafeVX
			}
		}
	} else {
		e.Y += e.Speed * dt
		e.weaveT += enemyWeaveFreq * math.Pi * 2 * dt
		e.X += math.Cos(e.weaveT) * enemyWeaveAmp * enemyWeaveFreq * dt
		e.X = Clamp(e.X, e.Type.Width/2, WorldWidth-e.Type.Width/2)

		// Past the bottom: re-enter from the top at a new column
		if e.Y > WorldHeight+e.Type.Height/2 {
			e.X = randRange(e.Type.Width/2, WorldWidth-e.Type.Width/2)
			e.Y = -e.Type.Height/2 - randRange(10, 60)
		}
	}

	if e.FireCD > 0 {
		e.FireCD -= dt
	}
}

// CanFire returns true when the enemy's fire cooldown has elapsed.
// Enemies hold fire until they are fully on the field.
func (e *Enemy) CanFire() bool {
	return e.Alive && e.Type.FireRate > 0 && e.FireCD <= 0 && e.Y > e.Type.Height/2
}

// ResetFireCD rearms the fire cooldown after a shot
func (e *Enemy) ResetFireCD() {
	e.FireCD = 1.0 / e.Type.FireRate
}

// TakeDamage reduces HP and returns true if the enemy died
func (e *Enemy) TakeDamage(dmg int) bool {
	if !e.Alive {
		return false
	}
	e.HP -= dmg
	if e.HP <= 0 {
		e.HP = 0
		e.Alive = false
		return true
	}
	return false
}

// Bounds implements collision.Collidable
func (e *Enemy) Bounds() collision.Rect {
	return centerBox(e.X, e.Y, e.Type.Width, e.Type.Height)
}

// Radius implements collision.CircleBounded
func (e *Enemy) Radius() float64 {
	return e.Type.Radius
}

// ToState converts to protocol state
func (e *Enemy) ToState() EnemyState {
	return EnemyState{
		ID:    e.ID,
		Type:  e.Type.Name,
		X:     round1(e.X),
		Y:     round1(e.Y),
		HP:    e.HP,
		MaxHP: e.MaxHP,
	}
}
