package main

import "shooter-server/internal/collision"

// Player is one ship at the bottom of the field
type Player struct {
	ID   string
	Name string
	X, Y float64

	HP    int
	MaxHP int
	Lives int
	Alive bool

	Score     int
	Kills     int
	BossKills int
	Deaths    int
	Powerups  int // collected this run

	Power  int     // extra parallel bullets, 0..MaxPowerLevel-1
	FireCD float64 // fire cooldown remaining

	InvulnT  float64 // immunity remaining after a hit
	ShieldT  float64 // shield powerup remaining
	RapidT   float64 // rapid-fire powerup remaining
	DoubleT  float64 // double-points powerup remaining
	RespawnT float64 // delay before the next life starts

	Input ClientInput

	AuthPlayerID int64 // 0 = guest without an account
}

// NewPlayer creates a player on a fresh life at the bottom center
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		X:     WorldWidth / 2,
		Y:     WorldHeight - PlayerHeight/2 - 10,
		HP:    PlayerMaxHP,
		MaxHP: PlayerMaxHP,
		Lives: PlayerLives,
		Alive: true,
	}
}

// Update moves the player one tick (dt in seconds)
func (p *Player) Update(dt float64) {
	if !p.Alive {
		if p.Lives > 0 {
			p.RespawnT -= dt
			if p.RespawnT <= 0 {
				p.respawn()
			}
		}
		return
	}

	if p.Input.Left {
		p.X -= PlayerSpeed * dt
	}
	if p.Input.Right {
		p.X += PlayerSpeed * dt
	}
	p.X = Clamp(p.X, PlayerWidth/2, WorldWidth-PlayerWidth/2)

	if p.FireCD > 0 {
		p.FireCD -= dt
	}
	if p.InvulnT > 0 {
		p.InvulnT -= dt
	}
	if p.ShieldT > 0 {
		p.ShieldT -= dt
	}
	if p.RapidT > 0 {
		p.RapidT -= dt
	}
	if p.DoubleT > 0 {
		p.DoubleT -= dt
	}
}

// respawn starts the next life at the bottom center with full HP and a
// fresh immunity window. Powerup timers and power level do not survive.
func (p *Player) respawn() {
	p.X = WorldWidth / 2
	p.Y = WorldHeight - PlayerHeight/2 - 10
	p.HP = p.MaxHP
	p.Alive = true
	p.FireCD = 0
	p.InvulnT = InvulnDuration
	p.ShieldT = 0
	p.RapidT = 0
	p.DoubleT = 0
	p.Power = 0
	p.RespawnT = 0
}

// ResetForRun restores the player for the start of a new run. Identity
// and account link survive, score and lives do not.
func (p *Player) ResetForRun() {
	p.Score = 0
	p.Kills = 0
	p.BossKills = 0
	p.Deaths = 0
	p.Powerups = 0
	p.Lives = PlayerLives
	p.Input = ClientInput{}
	p.respawn()
}

// TakeHit applies damage and returns true if it cost a life. Hits during
// immunity or with an active shield do nothing.
func (p *Player) TakeHit(dmg int) bool {
	if !p.Alive || p.InvulnT > 0 || p.ShieldT > 0 {
		return false
	}
	p.HP -= dmg
	if p.HP <= 0 {
		p.HP = 0
		p.Alive = false
		p.Lives--
		p.Deaths++
		p.RespawnT = RespawnDelay
		return true
	}
	p.InvulnT = InvulnDuration
	return false
}

// ApplyPowerup applies a powerup's effect
func (p *Player) ApplyPowerup(def PowerupTypeDef) {
	switch def.Name {
	case "health":
		p.HP += def.Heal
		if p.HP > p.MaxHP {
			p.HP = p.MaxHP
		}
	case "power":
		p.Power += def.Power
		if p.Power > MaxPowerLevel-1 {
			p.Power = MaxPowerLevel - 1
		}
	case "shield":
		p.ShieldT = def.Duration
	case "rapidfire":
		p.RapidT = def.Duration
	case "doublepoints":
		p.DoubleT = def.Duration
	}
	p.Powerups++
}

// AddScore credits points, doubled while the double-points timer runs
func (p *Player) AddScore(points int) {
	if p.DoubleT > 0 {
		points *= 2
	}
	p.Score += points
}

// CanFire returns true if the player can fire this tick
func (p *Player) CanFire() bool {
	return p.Alive && p.Input.Fire && p.FireCD <= 0
}

// fireCooldown returns the cooldown to apply after a shot
func (p *Player) fireCooldown() float64 {
	cd := FireCooldown
	if p.RapidT > 0 {
		cd /= PowerupTypeByName("rapidfire").FireMul
	}
	return cd
}

// Out reports whether the player has no lives left
func (p *Player) Out() bool {
	return !p.Alive && p.Lives <= 0
}

// Bounds implements collision.Collidable
func (p *Player) Bounds() collision.Rect {
	return centerBox(p.X, p.Y, PlayerWidth, PlayerHeight)
}

// Radius implements collision.CircleBounded
func (p *Player) Radius() float64 {
	return PlayerRadius
}

// ToState converts to protocol state
func (p *Player) ToState() PlayerState {
	return PlayerState{
		ID:     p.ID,
		Name:   p.Name,
		X:      round1(p.X),
		Y:      round1(p.Y),
		HP:     p.HP,
		MaxHP:  p.MaxHP,
		Lives:  p.Lives,
		Score:  p.Score,
		Power:  p.Power,
		Alive:  p.Alive,
		Shield: p.ShieldT > 0,
		Invuln: p.InvulnT > 0,
	}
}
