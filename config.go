package main

// World dimensions. Everything in the simulation lives in this box;
// the collision grid is sized from it.
const (
	WorldWidth  = 800.0
	WorldHeight = 600.0
)

// Player balance
const (
	PlayerWidth    = 50.0
	PlayerHeight   = 40.0
	PlayerRadius   = 20.0
	PlayerMaxHP    = 100
	PlayerSpeed    = 300.0 // pixels/s
	PlayerLives    = 3
	FireCooldown   = 0.25 // seconds between shots
	MaxPowerLevel  = 3
	InvulnDuration = 2.0 // seconds of immunity after taking a hit
	RespawnDelay   = 1.5 // seconds dead before the next life starts
)

// Bullet balance
const (
	BulletWidth       = 5.0
	BulletHeight      = 10.0
	BulletSpeed       = 600.0 // pixels/s, straight up
	BulletDamage      = 1
	EnemyBulletWidth  = 6.0
	EnemyBulletHeight = 12.0
	EnemyBulletSpeed  = 240.0 // pixels/s, straight down
	EnemyBulletDamage = 10
	EnemyBulletRadius = 5.0
	RamDamage         = 25 // contact damage from an enemy ship
	DebrisDamage      = 15 // contact damage from drifting debris
)

// EnemyTypeDef holds the stats for one enemy type. Speed is the baseline
// for the type; the difficulty scale multiplies it per wave.
type EnemyTypeDef struct {
	Name        string
	Width       float64
	Height      float64
	Radius      float64
	Health      int
	Speed       float64 // pixels/s at wave 1
	Points      int
	SpawnChance float64
	FireRate    float64 // shots/s, 0 = never fires
}

var EnemyTypes = []EnemyTypeDef{
	{Name: "regular", Width: 30, Height: 30, Radius: 15, Health: 1, Speed: 120, Points: 10, SpawnChance: 0.6, FireRate: 0},
	{Name: "fast", Width: 24, Height: 24, Radius: 12, Health: 1, Speed: 240, Points: 15, SpawnChance: 0.2, FireRate: 0},
	{Name: "tank", Width: 40, Height: 40, Radius: 20, Health: 4, Speed: 60, Points: 25, SpawnChance: 0.15, FireRate: 0.2},
	{Name: "boss", Width: 80, Height: 60, Radius: 40, Health: 25, Speed: 60, Points: 150, SpawnChance: 0.05, FireRate: 1.0},
}

// EnemyTypeByName returns the def for a type name, falling back to regular
func EnemyTypeByName(name string) EnemyTypeDef {
	for _, def := range EnemyTypes {
		if def.Name == name {
			return def
		}
	}
	return EnemyTypes[0]
}

// PowerupTypeDef holds the stats for one powerup type. Chance values are
// weights for the drop roll; they need not sum to 1.
type PowerupTypeDef struct {
	Name     string
	Chance   float64
	Heal     int
	Power    int
	Duration float64 // seconds, 0 = instant effect
	FireMul  float64
	ScoreMul float64
}

var PowerupTypes = []PowerupTypeDef{
	{Name: "health", Chance: 0.4, Heal: 20},
	{Name: "power", Chance: 0.3, Power: 1},
	{Name: "shield", Chance: 0.2, Duration: 5.0},
	{Name: "rapidfire", Chance: 0.1, Duration: 8.0, FireMul: 2.0},
	{Name: "doublepoints", Chance: 0.1, Duration: 10.0, ScoreMul: 2.0},
}

// PowerupTypeByName returns the def for a type name, falling back to health
func PowerupTypeByName(name string) PowerupTypeDef {
	for _, def := range PowerupTypes {
		if def.Name == name {
			return def
		}
	}
	return PowerupTypes[0]
}

// RollPowerupType picks a powerup type weighted by the Chance column
func RollPowerupType() PowerupTypeDef {
	total := 0.0
	for _, def := range PowerupTypes {
		total += def.Chance
	}
	roll := randFloat() * total
	for _, def := range PowerupTypes {
		roll -= def.Chance
		if roll < 0 {
			return def
		}
	}
	return PowerupTypes[len(PowerupTypes)-1]
}

// ScaleDef is one difficulty curve: value(level) = min(Base + Rate*level, Max)
type ScaleDef struct {
	Base float64
	Rate float64
	Max  float64
}

// Value returns the curve at the given difficulty level
func (s ScaleDef) Value(level int) float64 {
	v := s.Base + s.Rate*float64(level)
	if v > s.Max {
		return s.Max
	}
	return v
}

// Difficulty scaling curves, indexed by level (wave - 1).
// EnemySpeedScale and SpawnRateScale are multipliers on the type baselines;
// EnemyHealthScale multiplies type health; BossHealthScale is absolute HP.
var (
	EnemySpeedScale  = ScaleDef{Base: 1.0, Rate: 0.05, Max: 2.5}
	SpawnRateScale   = ScaleDef{Base: 1.0, Rate: 0.02, Max: 2.5}
	EnemyHealthScale = ScaleDef{Base: 1.0, Rate: 0.03, Max: 2.0}
	BossHealthScale  = ScaleDef{Base: 25.0, Rate: 0.1, Max: 50.0}
)

// Boss spawn gating
const (
	BossInitialScore = 1000 // first boss once the session score reaches this
	BossScoreStep    = 500  // then another every this many points
	BossMinInterval  = 30.0 // seconds between boss spawns, regardless of score
)

// Spawner balance
const (
	BaseSpawnInterval = 2.0  // seconds between enemy spawns at wave 1
	PowerupDropChance = 0.15 // chance a killed enemy drops a powerup
	WaveBaseQuota     = 8    // enemies in wave 1
	WaveQuotaStep     = 2    // extra enemies per wave
	WaveBreak         = 3.0  // seconds of calm between waves
	DebrisTarget      = 5    // drifting debris kept on the field
)
