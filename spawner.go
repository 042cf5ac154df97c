package main

// Spawner drives wave progression for one game: timed enemy spawns with a
// per-wave quota, score-gated boss appearances and a steady population of
// background debris. All methods run on the game loop.
type Spawner struct {
	game *Game

	clock   float64
	wave    int
	level   int
	quota   int
	spawnT  float64
	inBreak bool
	breakT  float64

	bossAlive     bool
	nextBossScore int
	lastBossAt    float64
}

func NewSpawner(g *Game) *Spawner {
	s := &Spawner{game: g}
	s.Reset()
	return s
}

// Reset puts the spawner back into the pre-wave-1 intermission
func (s *Spawner) Reset() {
	s.clock = 0
	s.wave = 0
	s.level = 0
	s.quota = 0
	s.spawnT = 0
	s.inBreak = true
	s.breakT = 1.0
	s.bossAlive = false
	s.nextBossScore = BossInitialScore
	s.lastBossAt = -BossMinInterval
}

func (s *Spawner) Wave() int { return s.wave }

// Step advances spawn timers by dt seconds
func (s *Spawner) Step(dt float64) {
	s.clock += dt
	s.topUpDebris()

	if s.inBreak {
		s.breakT -= dt
		if s.breakT <= 0 {
			s.startWave(s.wave + 1)
		}
		return
	}

	if s.quota > 0 {
		s.spawnT -= dt
		if s.spawnT <= 0 {
			s.spawnEnemy()
			s.quota--
			s.spawnT = BaseSpawnInterval / SpawnRateScale.Value(s.level)
		}
	} else if !s.fieldHasEnemies() {
		s.inBreak = true
		s.breakT = WaveBreak
	}

	s.maybeSpawnBoss()
}

// NoteKill is called for every enemy removed in combat so the spawner can
// reopen the boss gate
func (s *Spawner) NoteKill(e *Enemy) {
	if e.Type.Name == "boss" {
		s.bossAlive = false
	}
}

func (s *Spawner) startWave(n int) {
	s.wave = n
	s.level = n - 1
	s.quota = WaveBaseQuota + WaveQuotaStep*s.level
	s.inBreak = false
	s.spawnT = 0.5
	s.game.broadcastMsg(Envelope{T: MsgWave, Data: WaveMsg{Wave: n}})
	s.game.log.Info("wave started", "wave", n, "quota", s.quota)
}

// spawnEnemy rolls a regular enemy type weighted by spawn chance. Bosses
// are excluded here; they only enter through the score gate.
func (s *Spawner) spawnEnemy() {
	total := 0.0
	for _, def := range EnemyTypes {
		if def.Name == "boss" {
			continue
		}
		total += def.SpawnChance
	}
	r := randFloat() * total
	for _, def := range EnemyTypes {
		if def.Name == "boss" {
			continue
		}
		r -= def.SpawnChance
		if r <= 0 {
			s.game.enemies = append(s.game.enemies, NewEnemy(def, s.level))
			return
		}
	}
}

// maybeSpawnBoss spawns a boss once the session score crosses the next
// threshold, with a minimum gap between appearances and never two at once
func (s *Spawner) maybeSpawnBoss() {
	if s.bossAlive || s.game.score < s.nextBossScore {
		return
	}
	if s.clock-s.lastBossAt < BossMinInterval {
		return
	}
	def := EnemyTypeByName("boss")
	s.game.enemies = append(s.game.enemies, NewEnemy(def, s.level))
	s.bossAlive = true
	s.lastBossAt = s.clock
	s.nextBossScore += BossScoreStep
	s.game.broadcastMsg(Envelope{T: MsgWave, Data: WaveMsg{Wave: s.wave}})
	s.game.log.Info("boss spawned", "wave", s.wave, "score", s.game.score)
	s.game.track(EvtBossSpawn, 0, "")
}

// topUpDebris keeps a fixed number of drifting rocks on the field. New
// rocks are registered with the collision engine as near-static so the
// index keeps their cells cached between frames.
func (s *Spawner) topUpDebris() {
	live := 0
	for _, d := range s.game.debris {
		if d.Alive {
			live++
		}
	}
	for live < DebrisTarget {
		d := NewDebris()
		s.game.debris = append(s.game.debris, d)
		s.game.eng.RegisterStatic(d)
		live++
	}
}

func (s *Spawner) fieldHasEnemies() bool {
	for _, e := range s.game.enemies {
		if e.Alive {
			return true
		}
	}
	return false
}
