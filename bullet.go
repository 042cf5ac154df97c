package main

import "shooter-server/internal/collision"

// Bullet is a projectile, either player fire going up or enemy fire
// going down. Bullets die when they leave the field.
type Bullet struct {
	ID      string
	OwnerID string
	X, Y    float64
	VX, VY  float64
	W, H    float64
	Damage  int
	Enemy   bool
	Alive   bool
}

// NewBullet fires a player bullet straight up. offsetX shifts the muzzle
// for multi-shot power levels.
func NewBullet(p *Player, offsetX float64) *Bullet {
	return &Bullet{
		ID:      GenerateID(3),
		OwnerID: p.ID,
		X:       p.X + offsetX,
		Y:       p.Y - PlayerHeight/2,
		VY:      -BulletSpeed,
		W:       BulletWidth,
		H:       BulletHeight,
		Damage:  BulletDamage,
		Alive:   true,
	}
}

// NewEnemyBullet fires an enemy bullet straight down from the enemy's nose
func NewEnemyBullet(e *Enemy) *Bullet {
	return &Bullet{
		ID:      GenerateID(3),
		OwnerID: e.ID,
		X:       e.X,
		Y:       e.Y + e.Type.Height/2,
		VY:      EnemyBulletSpeed,
		W:       EnemyBulletWidth,
		H:       EnemyBulletHeight,
		Damage:  EnemyBulletDamage,
		Enemy:   true,
		Alive:   true,
	}
}

// Update moves the bullet one tick
func (b *Bullet) Update(dt float64) {
	if !b.Alive {
		return
	}
	b.X += b.VX * dt
	b.Y += b.VY * dt

	if b.Y < -b.H || b.Y > WorldHeight+b.H || b.X < -b.W || b.X > WorldWidth+b.W {
		b.Alive = false
	}
}

// Bounds implements collision.Collidable
func (b *Bullet) Bounds() collision.Rect {
	return centerBox(b.X, b.Y, b.W, b.H)
}

// Radius implements collision.CircleBounded
func (b *Bullet) Radius() float64 {
	return EnemyBulletRadius
}

// ToState converts to protocol state
func (b *Bullet) ToState() BulletState {
	return BulletState{
		ID:    b.ID,
		X:     round1(b.X),
		Y:     round1(b.Y),
		Enemy: b.Enemy,
	}
}
