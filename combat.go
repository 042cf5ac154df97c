package main

import "shooter-server/internal/collision"

// Collision pass callbacks. All run on the game loop under the game
// mutex, after the engine has finished its scan, so they are free to kill
// and move entities.

// onBulletEnemy resolves a player bullet hitting an enemy
func (g *Game) onBulletEnemy(a, b collision.Collidable) {
	bullet, ok := a.(*Bullet)
	if !ok {
		return
	}
	enemy, ok := b.(*Enemy)
	if !ok {
		return
	}
	if !bullet.Alive || !enemy.Alive {
		return
	}
	bullet.Alive = false
	if enemy.TakeDamage(bullet.Damage) {
		g.killEnemy(enemy, bullet.OwnerID)
	}
}

// onPlayerEnemy resolves a ship ramming an enemy: the enemy is destroyed
// without points and the player takes contact damage
func (g *Game) onPlayerEnemy(a, b collision.Collidable) {
	player, ok := a.(*Player)
	if !ok {
		return
	}
	enemy, ok := b.(*Enemy)
	if !ok {
		return
	}
	if !player.Alive || !enemy.Alive {
		return
	}
	enemy.Alive = false
	g.spawner.NoteKill(enemy)
	g.broadcastMsg(Envelope{T: MsgExplosion, Data: ExplosionMsg{X: round1(enemy.X), Y: round1(enemy.Y), Kind: enemy.Type.Name}})
	g.hitPlayer(player, RamDamage)
}

// onPlayerEnemyBullet resolves enemy fire hitting a ship
func (g *Game) onPlayerEnemyBullet(a, b collision.Collidable) {
	player, ok := a.(*Player)
	if !ok {
		return
	}
	bullet, ok := b.(*Bullet)
	if !ok {
		return
	}
	if !player.Alive || !bullet.Alive {
		return
	}
	bullet.Alive = false
	g.hitPlayer(player, bullet.Damage)
}

// onPlayerPowerup resolves a ship collecting a powerup
func (g *Game) onPlayerPowerup(a, b collision.Collidable) {
	player, ok := a.(*Player)
	if !ok {
		return
	}
	powerup, ok := b.(*Powerup)
	if !ok {
		return
	}
	if !player.Alive || !powerup.Alive {
		return
	}
	powerup.Alive = false
	player.ApplyPowerup(powerup.Kind)
	g.broadcastMsg(Envelope{T: MsgPowerup, Data: PowerupPickupMsg{PlayerID: player.ID, Kind: powerup.Kind.Name}})
	g.track(EvtPowerup, player.AuthPlayerID, `{"kind":"`+powerup.Kind.Name+`"}`)
}

// onPlayerDebris resolves a ship grazing drifting debris. The rock
// survives the contact.
func (g *Game) onPlayerDebris(a, b collision.Collidable) {
	player, ok := a.(*Player)
	if !ok {
		return
	}
	if _, ok := b.(*Debris); !ok {
		return
	}
	if !player.Alive {
		return
	}
	g.hitPlayer(player, DebrisDamage)
}

// killEnemy credits the kill, rolls a powerup drop and announces the
// explosion
func (g *Game) killEnemy(enemy *Enemy, killerID string) {
	points := enemy.Type.Points
	if killer, ok := g.players[killerID]; ok {
		before := killer.Score
		killer.AddScore(points)
		killer.Kills++
		if enemy.Type.Name == "boss" {
			killer.BossKills++
		}
		g.score += killer.Score - before
	} else {
		g.score += points
	}
	g.spawner.NoteKill(enemy)

	g.broadcastMsg(Envelope{T: MsgExplosion, Data: ExplosionMsg{X: round1(enemy.X), Y: round1(enemy.Y), Kind: enemy.Type.Name}})
	if enemy.Type.Name == "boss" {
		g.track(EvtBossKill, 0, "")
	}

	if randFloat() < PowerupDropChance {
		g.powerups = append(g.powerups, NewPowerup(enemy.X, enemy.Y))
	}
}

// hitPlayer applies damage to a player and handles death bookkeeping
func (g *Game) hitPlayer(p *Player, dmg int) {
	if !p.TakeHit(dmg) {
		return
	}
	g.sendTo(p.ID, Envelope{T: MsgDeath, Data: DeathMsg{Lives: p.Lives}})
	g.broadcastMsg(Envelope{T: MsgExplosion, Data: ExplosionMsg{X: round1(p.X), Y: round1(p.Y), Kind: "player"}})
	g.track(EvtPlayerDeath, p.AuthPlayerID, "")
}
