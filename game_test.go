package main

import (
	"testing"
)

func TestGameAddRemovePlayer(t *testing.T) {
	g := newTestGame()
	p := g.AddPlayer("TestPilot")
	if p.Name != "TestPilot" {
		t.Errorf("expected name TestPilot, got %s", p.Name)
	}
	if g.PlayerCount() != 1 {
		t.Errorf("expected 1 player, got %d", g.PlayerCount())
	}

	g.RemovePlayer(p.ID)
	if g.PlayerCount() != 0 {
		t.Errorf("expected 0 players, got %d", g.PlayerCount())
	}
}

func TestGamePlayerCap(t *testing.T) {
	g := newTestGame()
	for i := 0; i < maxPlayersPerSession; i++ {
		if g.AddPlayer("P") == nil {
			t.Fatalf("expected player %d to fit", i+1)
		}
	}
	if g.AddPlayer("Overflow") != nil {
		t.Error("expected the session to be full")
	}
}

func TestGameHandleInput(t *testing.T) {
	g := newTestGame()
	p := g.AddPlayer("Test")

	g.HandleInput(p.ID, ClientInput{Left: true, Fire: true})

	g.mu.RLock()
	player := g.players[p.ID]
	g.mu.RUnlock()

	if !player.Input.Left || !player.Input.Fire {
		t.Error("expected input applied to the player")
	}

	// Unknown player: no panic
	g.HandleInput("ghost", ClientInput{Fire: true})
}

func TestGameStartRun(t *testing.T) {
	g := newTestGame()
	p := g.AddPlayer("Starter")
	p.Score = 500
	g.enemies = append(g.enemies, NewEnemy(EnemyTypeByName("regular"), 0))
	g.bullets = append(g.bullets, NewBullet(p, 0))

	g.HandleStart(p.ID)

	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.started {
		t.Error("expected the run to start")
	}
	if len(g.enemies) != 0 || len(g.bullets) != 0 {
		t.Error("expected a clean field")
	}
	if p.Score != 0 {
		t.Errorf("expected player reset, got score %d", p.Score)
	}
	if g.score != 0 {
		t.Errorf("expected session score reset, got %d", g.score)
	}
	if g.spawner.Wave() != 0 {
		t.Errorf("expected spawner reset, got wave %d", g.spawner.Wave())
	}
}

func TestGameStartIgnoredMidRun(t *testing.T) {
	g := newTestGame()
	p := g.AddPlayer("Starter")
	g.HandleStart(p.ID)
	g.mu.Lock()
	g.score = 55
	g.mu.Unlock()

	g.HandleStart(p.ID)

	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.score != 55 {
		t.Error("a second start must not reset a running game")
	}
}

func TestGameStartNeedsPlayer(t *testing.T) {
	g := newTestGame()
	g.HandleStart("nobody")

	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.started {
		t.Error("a stranger should not start the run")
	}
}

func TestGameUpdateIdle(t *testing.T) {
	g := newTestGame()
	g.AddPlayer("Idle")

	for i := 0; i < 10; i++ {
		g.update()
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.tick != 10 {
		t.Errorf("expected tick 10, got %d", g.tick)
	}
	if len(g.enemies) != 0 || len(g.debris) != 0 {
		t.Error("nothing should spawn before the run starts")
	}
}

func TestGameUpdateRunsWave(t *testing.T) {
	g := newTestGame()
	p := g.AddPlayer("Runner")
	g.HandleStart(p.ID)

	// 130 ticks is past the opening break and the first spawn delay
	for i := 0; i < 130; i++ {
		g.update()
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.spawner.Wave() != 1 {
		t.Errorf("expected wave 1, got %d", g.spawner.Wave())
	}
	if len(g.debris) == 0 {
		t.Error("expected background debris on the field")
	}
	if len(g.enemies) == 0 {
		t.Error("expected at least one enemy spawned")
	}
}

func TestGameFiresBullets(t *testing.T) {
	g := newTestGame()
	p := g.AddPlayer("Shooter")
	g.HandleStart(p.ID)
	g.HandleInput(p.ID, ClientInput{Fire: true})

	g.update()

	g.mu.RLock()
	count := len(g.bullets)
	cd := p.FireCD
	g.mu.RUnlock()

	if count != 1 {
		t.Fatalf("expected 1 bullet, got %d", count)
	}
	if cd != FireCooldown {
		t.Errorf("expected cooldown %f armed, got %f", FireCooldown, cd)
	}

	// Cooldown holds fire on the next tick
	g.update()
	g.mu.RLock()
	count = len(g.bullets)
	g.mu.RUnlock()
	if count != 1 {
		t.Errorf("expected the cooldown to hold fire, got %d bullets", count)
	}
}

func TestFireBulletsPowerLevels(t *testing.T) {
	g := newTestGame()
	p := g.AddPlayer("Gunner")

	g.fireBullets(p)
	if len(g.bullets) != 1 {
		t.Fatalf("expected 1 bullet at power 0, got %d", len(g.bullets))
	}

	g.bullets = g.bullets[:0]
	p.Power = 1
	g.fireBullets(p)
	if len(g.bullets) != 2 {
		t.Fatalf("expected 2 bullets at power 1, got %d", len(g.bullets))
	}
	if g.bullets[0].X != p.X-8 || g.bullets[1].X != p.X+8 {
		t.Error("expected symmetric muzzle offsets at power 1")
	}

	g.bullets = g.bullets[:0]
	p.Power = 2
	g.fireBullets(p)
	if len(g.bullets) != 3 {
		t.Fatalf("expected 3 bullets at power 2, got %d", len(g.bullets))
	}
}

func TestGameCompact(t *testing.T) {
	g := newTestGame()
	live := NewEnemy(EnemyTypeByName("regular"), 0)
	dead := NewEnemy(EnemyTypeByName("regular"), 0)
	dead.Alive = false
	g.enemies = append(g.enemies, live, dead)
	g.bullets = append(g.bullets, &Bullet{Alive: false}, &Bullet{Alive: true})
	g.powerups = append(g.powerups, &Powerup{Alive: false})
	g.debris = append(g.debris, &Debris{Alive: true}, &Debris{Alive: false})

	g.compact()

	if len(g.enemies) != 1 || g.enemies[0] != live {
		t.Error("expected only the live enemy kept")
	}
	if len(g.bullets) != 1 || !g.bullets[0].Alive {
		t.Error("expected only the live bullet kept")
	}
	if len(g.powerups) != 0 {
		t.Error("expected dead powerup dropped")
	}
	if len(g.debris) != 1 {
		t.Error("expected dead debris dropped")
	}
}

func TestAllPlayersOut(t *testing.T) {
	g := newTestGame()
	if g.allPlayersOut() {
		t.Error("an empty session is never out")
	}

	p := g.AddPlayer("Solo")
	if g.allPlayersOut() {
		t.Error("a live player keeps the run going")
	}

	p.Alive = false
	p.Lives = 0
	if !g.allPlayersOut() {
		t.Error("expected the run to be over")
	}
}

func TestEndRunBroadcastsGameOver(t *testing.T) {
	g := newTestGame()
	p := g.AddPlayer("Loser")
	mock := &mockBroadcaster{}
	g.SetClient(p.ID, mock)
	g.started = true
	g.score = 42
	g.spawner.startWave(3)

	g.endRun()

	if g.started {
		t.Error("expected the run stopped")
	}
	overs := mock.byType(MsgGameOver)
	if len(overs) != 1 {
		t.Fatalf("expected 1 game over message, got %d", len(overs))
	}
	data, ok := overs[0].Data.(GameOverMsg)
	if !ok || data.Score != 42 || data.Wave != 3 {
		t.Errorf("game over payload mismatch: %+v", overs[0].Data)
	}
}

func TestRemoveLastPlayerEndsRun(t *testing.T) {
	g := newTestGame()
	p1 := g.AddPlayer("A")
	p2 := g.AddPlayer("B")
	g.HandleStart(p1.ID)

	g.RemovePlayer(p1.ID)
	g.mu.RLock()
	stillOn := g.started
	g.mu.RUnlock()
	if !stillOn {
		t.Error("the run should continue while a player remains")
	}

	g.RemovePlayer(p2.ID)
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.started {
		t.Error("expected the run to end with the last player gone")
	}
}

func TestStateSnapshot(t *testing.T) {
	g := newTestGame()
	p := g.AddPlayer("Snap")
	g.enemies = append(g.enemies, NewEnemy(EnemyTypeByName("regular"), 0))
	dead := NewEnemy(EnemyTypeByName("fast"), 0)
	dead.Alive = false
	g.enemies = append(g.enemies, dead)
	g.bullets = append(g.bullets, NewBullet(p, 0))
	g.tick = 7
	g.score = 99

	state := g.stateSnapshot()

	if state.Tick != 7 || state.Score != 99 {
		t.Error("snapshot header mismatch")
	}
	if state.Started {
		t.Error("expected started flag clear")
	}
	if len(state.Players) != 1 {
		t.Errorf("expected 1 player, got %d", len(state.Players))
	}
	if len(state.Enemies) != 1 {
		t.Errorf("dead enemies must not be broadcast, got %d", len(state.Enemies))
	}
	if len(state.Bullets) != 1 {
		t.Errorf("expected 1 bullet, got %d", len(state.Bullets))
	}
}

func TestGameToggleDebug(t *testing.T) {
	g := newTestGame()
	if !g.ToggleDebug() {
		t.Error("expected debug on after the first toggle")
	}
	if g.ToggleDebug() {
		t.Error("expected debug off after the second toggle")
	}
}
