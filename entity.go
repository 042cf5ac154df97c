package main

import "shooter-server/internal/collision"

// Collision groups. Every entity is indexed under exactly one of these
// each frame; the check passes in game.go pair them up.
const (
	GroupPlayer      collision.Group = "player"
	GroupEnemy       collision.Group = "enemy"
	GroupBullet      collision.Group = "bullet"
	GroupEnemyBullet collision.Group = "enemybullet"
	GroupPowerup     collision.Group = "powerup"
	GroupDebris      collision.Group = "debris"
)

// centerBox builds a collision rect from a center point and a size
func centerBox(cx, cy, w, h float64) collision.Rect {
	return collision.Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}
