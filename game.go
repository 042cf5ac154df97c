package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"shooter-server/internal/collision"
)

const (
	TickRate       = 60 // physics ticks per second
	BroadcastRate  = 30 // state broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate
)

const (
	maxPlayersPerSession = 4
	maxBulletsPerSession = 500
	optimizeEvery        = 1000 // ticks between partition retunes
)

// Broadcaster interface for sending messages to clients
type Broadcaster interface {
	SendJSON(msg interface{})
}

// Game holds the state for one co-op session: the players, the field and
// the collision engine that resolves contacts between everything on it
type Game struct {
	mu        sync.RWMutex
	log       *log.Logger
	db        *DB
	analytics *Analytics
	sessionID string

	eng     *collision.Engine
	perf    *PerfMonitor
	spawner *Spawner

	players  map[string]*Player
	enemies  []*Enemy
	bullets  []*Bullet
	powerups []*Powerup
	debris   []*Debris
	clients  map[string]Broadcaster // playerID -> client

	tick      uint64
	score     int // session score, sum of all player scoring
	started   bool
	startedAt time.Time
	running   bool
	stop      chan struct{}
}

// NewGame creates a new Game
func NewGame(sessionID string, db *DB, analytics *Analytics, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		log:       logger,
		db:        db,
		analytics: analytics,
		sessionID: sessionID,
		players:   make(map[string]*Player),
		clients:   make(map[string]Broadcaster),
		stop:      make(chan struct{}),
	}
	g.perf = NewPerfMonitor(logger)
	g.eng = collision.NewEngine(collision.Config{
		WorldWidth:  WorldWidth,
		WorldHeight: WorldHeight,
		Logger:      logger.WithPrefix("collision"),
		Sections:    g.perf,
	})
	g.spawner = NewSpawner(g)
	return g
}

// Run starts the game loop
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the game loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// AddPlayer adds a new player to the game
func (g *Game) AddPlayer(name string) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.players) >= maxPlayersPerSession {
		return nil
	}

	id := GenerateID(4)
	player := NewPlayer(id, name)
	g.players[id] = player
	return player
}

// RemovePlayer removes a player from the game
func (g *Game) RemovePlayer(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.players, id)
	delete(g.clients, id)
	if g.started && len(g.players) == 0 {
		g.started = false
	}
}

// SetClient associates a broadcaster with a player
func (g *Game) SetClient(playerID string, client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clients[playerID] = client
}

// HandleInput processes input from a player
func (g *Game) HandleInput(playerID string, input ClientInput) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.players[playerID]
	if !ok {
		return
	}
	p.Input = input
}

// HandleStart begins a run. Restarting is only possible once the previous
// run has ended.
func (g *Game) HandleStart(playerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.players[playerID]; !ok {
		return
	}
	if g.started {
		return
	}
	g.startRun()
}

// ToggleDebug flips collision debug mode and returns the new state
func (g *Game) ToggleDebug() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.eng.ToggleDebug()
}

// PlayerCount returns the number of players
func (g *Game) PlayerCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.players)
}

// startRun resets the field and all players for a fresh run
func (g *Game) startRun() {
	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]
	g.powerups = g.powerups[:0]
	g.debris = g.debris[:0]
	for _, p := range g.players {
		p.ResetForRun()
	}
	g.spawner.Reset()
	g.score = 0
	g.started = true
	g.startedAt = time.Now()
	g.log.Info("run started", "players", len(g.players))
	g.track(EvtGameStart, 0, "")
}

// update runs one game tick
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	dt := 1.0 / float64(TickRate)
	g.tick++
	g.perf.StartFrame()

	if g.started {
		g.perf.StartSection("update")
		g.stepEntities(dt)
		g.spawner.Step(dt)
		g.perf.EndSection("update")

		g.runCollisions()
		g.compact()

		if g.tick%optimizeEvery == 0 {
			g.eng.OptimizePartitioning()
		}

		if g.allPlayersOut() {
			g.endRun()
		}
	}

	if g.tick%BroadcastEvery == 0 {
		g.perf.StartSection("broadcast")
		g.broadcastState()
		g.perf.EndSection("broadcast")
	}

	g.perf.EndFrame()
}

// stepEntities advances movement, expiry and firing for everything alive
func (g *Game) stepEntities(dt float64) {
	for _, p := range g.players {
		p.Update(dt)
		if p.CanFire() && len(g.bullets) < maxBulletsPerSession {
			g.fireBullets(p)
		}
	}

	for _, e := range g.enemies {
		if !e.Alive {
			continue
		}
		e.Update(dt)
		if e.CanFire() {
			g.bullets = append(g.bullets, NewEnemyBullet(e))
			e.ResetFireCD()
		}
	}

	for _, b := range g.bullets {
		if b.Alive {
			b.Update(dt)
		}
	}
	for _, pu := range g.powerups {
		if pu.Alive {
			pu.Update(dt)
		}
	}
	for _, d := range g.debris {
		if d.Alive {
			d.Update(dt)
		}
	}
}

// fireBullets spawns this tick's shots for a player. Power level adds
// parallel bullets.
func (g *Game) fireBullets(p *Player) {
	switch p.Power {
	case 0:
		g.bullets = append(g.bullets, NewBullet(p, 0))
	case 1:
		g.bullets = append(g.bullets, NewBullet(p, -8), NewBullet(p, 8))
	default:
		g.bullets = append(g.bullets, NewBullet(p, -12), NewBullet(p, 0), NewBullet(p, 12))
	}
	p.FireCD = p.fireCooldown()
}

// runCollisions rebuilds the spatial index and runs the per-frame contact
// passes in a fixed order. Pass priority decides how often each pass
// actually scans.
func (g *Game) runCollisions() {
	g.eng.Clear()

	players := make([]collision.Collidable, 0, len(g.players))
	for _, p := range g.players {
		if p.Alive {
			g.eng.AddObject(p, GroupPlayer)
			players = append(players, p)
		}
	}

	for _, e := range g.enemies {
		if e.Alive {
			g.eng.AddObject(e, GroupEnemy)
		}
	}

	bullets := make([]collision.Collidable, 0, len(g.bullets))
	for _, b := range g.bullets {
		if !b.Alive {
			continue
		}
		if b.Enemy {
			g.eng.AddObject(b, GroupEnemyBullet)
		} else {
			g.eng.AddObject(b, GroupBullet)
			bullets = append(bullets, b)
		}
	}

	for _, pu := range g.powerups {
		if pu.Alive {
			g.eng.AddObject(pu, GroupPowerup)
		}
	}
	for _, d := range g.debris {
		if d.Alive {
			g.eng.AddObject(d, GroupDebris)
		}
	}

	g.eng.CheckCollisions(bullets, GroupEnemy, g.onBulletEnemy, false, collision.PriorityHigh)
	g.eng.CheckCollisions(players, GroupEnemy, g.onPlayerEnemy, true, collision.PriorityHigh)
	g.eng.CheckCollisions(players, GroupEnemyBullet, g.onPlayerEnemyBullet, true, collision.PriorityHigh)
	g.eng.CheckCollisions(players, GroupPowerup, g.onPlayerPowerup, false, collision.PriorityMedium)
	g.eng.CheckCollisions(players, GroupDebris, g.onPlayerDebris, true, collision.PriorityLow)

	g.eng.CleanupCachedData()
}

// compact drops dead entities so the slices stay small
func (g *Game) compact() {
	enemies := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Alive {
			enemies = append(enemies, e)
		}
	}
	g.enemies = enemies

	bullets := g.bullets[:0]
	for _, b := range g.bullets {
		if b.Alive {
			bullets = append(bullets, b)
		}
	}
	g.bullets = bullets

	powerups := g.powerups[:0]
	for _, pu := range g.powerups {
		if pu.Alive {
			powerups = append(powerups, pu)
		}
	}
	g.powerups = powerups

	debris := g.debris[:0]
	for _, d := range g.debris {
		if d.Alive {
			debris = append(debris, d)
		}
	}
	g.debris = debris
}

func (g *Game) allPlayersOut() bool {
	if len(g.players) == 0 {
		return false
	}
	for _, p := range g.players {
		if !p.Out() {
			return false
		}
	}
	return true
}

// endRun closes out the run: announces game over, then records stats,
// highscores and achievements off the game loop
func (g *Game) endRun() {
	g.started = false
	wave := g.spawner.Wave()
	duration := time.Since(g.startedAt).Seconds()
	g.log.Info("game over", "score", g.score, "wave", wave, "seconds", int(duration))

	g.broadcastMsg(Envelope{T: MsgGameOver, Data: GameOverMsg{Score: g.score, Wave: wave}})
	g.track(EvtGameOver, 0, fmt.Sprintf(`{"score":%d,"wave":%d}`, g.score, wave))

	if g.db == nil {
		return
	}
	results := make([]runResult, 0, len(g.players))
	for _, p := range g.players {
		results = append(results, runResult{
			authID:   p.AuthPlayerID,
			kills:    p.Kills,
			bosses:   p.BossKills,
			deaths:   p.Deaths,
			powerups: p.Powerups,
			score:    p.Score,
			client:   g.clients[p.ID],
		})
	}
	go g.recordResults(results, wave, duration)
}

// runResult is a per-player snapshot taken at game over, written to the
// database outside the game loop
type runResult struct {
	authID   int64
	kills    int
	bosses   int
	deaths   int
	powerups int
	score    int
	client   Broadcaster
}

func (g *Game) recordResults(results []runResult, wave int, duration float64) {
	for _, r := range results {
		if r.authID == 0 {
			continue
		}
		if err := g.db.UpdateStatsAfterRun(r.authID, r.kills, r.bosses, r.deaths, r.powerups, r.score, wave, duration); err != nil {
			g.log.Error("stats update failed", "pid", r.authID, "err", err)
			continue
		}
		if err := g.db.RecordHighscore(r.authID, r.score, wave, r.kills, duration); err != nil {
			g.log.Error("highscore insert failed", "pid", r.authID, "err", err)
		}
		for _, a := range CheckAchievements(g.db, r.authID) {
			if r.client != nil {
				r.client.SendJSON(Envelope{T: MsgAchievement, Data: AchievementMsg{ID: a.ID, Name: a.Name}})
			}
		}
	}
}

// track queues an analytics event for this session
func (g *Game) track(event string, playerID int64, data string) {
	if g.analytics == nil {
		return
	}
	g.analytics.Track(event, playerID, g.sessionID, data)
}

// stateSnapshot builds the wire state for the current tick
func (g *Game) stateSnapshot() GameState {
	state := GameState{
		Tick:     g.tick,
		Wave:     g.spawner.Wave(),
		Score:    g.score,
		Started:  g.started,
		Players:  make([]PlayerState, 0, len(g.players)),
		Enemies:  make([]EnemyState, 0, len(g.enemies)),
		Bullets:  make([]BulletState, 0, len(g.bullets)),
		Powerups: make([]PowerupState, 0, len(g.powerups)),
		Debris:   make([]DebrisState, 0, len(g.debris)),
	}
	for _, p := range g.players {
		state.Players = append(state.Players, p.ToState())
	}
	for _, e := range g.enemies {
		if e.Alive {
			state.Enemies = append(state.Enemies, e.ToState())
		}
	}
	for _, b := range g.bullets {
		if b.Alive {
			state.Bullets = append(state.Bullets, b.ToState())
		}
	}
	for _, pu := range g.powerups {
		if pu.Alive {
			state.Powerups = append(state.Powerups, pu.ToState())
		}
	}
	for _, d := range g.debris {
		if d.Alive {
			state.Debris = append(state.Debris, d.ToState())
		}
	}
	return state
}

// broadcastState sends the current game state to all clients as a binary
// msgpack frame. Binary frames carry only state; everything else stays
// JSON.
func (g *Game) broadcastState() {
	state := g.stateSnapshot()
	data, err := msgpack.Marshal(&state)
	if err != nil {
		g.log.Error("state marshal failed", "err", err)
		return
	}

	// 0xFF prefix routes the frame through WritePump's binary path
	frame := make([]byte, len(data)+1)
	frame[0] = 0xFF
	copy(frame[1:], data)

	for _, client := range g.clients {
		if c, ok := client.(*Client); ok {
			func() {
				defer func() { recover() }()
				select {
				case c.send <- frame:
				default:
				}
			}()
		}
	}

	if g.eng.Debugging() {
		g.broadcastMsg(Envelope{T: MsgDebugState, Data: g.eng.DebugSnapshot()})
	}
}

// broadcastMsg sends a message to all clients in the session
func (g *Game) broadcastMsg(msg Envelope) {
	for _, client := range g.clients {
		client.SendJSON(msg)
	}
}

// sendTo sends a message to one player's client, if any is attached
func (g *Game) sendTo(playerID string, msg Envelope) {
	if client, ok := g.clients[playerID]; ok {
		client.SendJSON(msg)
	}
}
