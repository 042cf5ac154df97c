package main

import "encoding/json"

// Client -> Server message types
const (
	MsgJoin     = "join"
	MsgLeave    = "leave"
	MsgInput    = "input"
	MsgCreate   = "create" // create session
	MsgList     = "list"   // list sessions
	MsgCheck    = "check"  // check if session exists
	MsgStart    = "start"  // start (or restart) the run
	MsgDebug    = "debug"  // toggle collision debug overlay
	MsgRegister = "register"
	MsgLogin    = "login"
	MsgAuth     = "auth" // resume with a stored token
	MsgGuest    = "guest"
)

// Server -> Client message types
const (
	MsgState       = "state"
	MsgWelcome     = "welcome"
	MsgSessions    = "sessions"
	MsgJoined      = "joined"
	MsgCreated     = "created" // session created, client should navigate
	MsgChecked     = "checked" // session check response
	MsgError       = "error"
	MsgWave        = "wave"
	MsgExplosion   = "explosion"
	MsgPowerup     = "powerup"
	MsgDeath       = "death"
	MsgGameOver    = "gameover"
	MsgDebugState  = "debugstate" // collision grid overlay data
	MsgAuthOK      = "authok"
	MsgAchievement = "achievement"
)

// Envelope wraps all outgoing messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages; json.RawMessage defers payload decoding
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// ClientInput is the player's held controls
type ClientInput struct {
	Left  bool `json:"l"`
	Right bool `json:"r"`
	Fire  bool `json:"f"`
}

// JoinMsg is sent when a player wants to join a session
type JoinMsg struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
}

// CreateMsg is sent when a player wants to create a session
type CreateMsg struct {
	Name        string `json:"name"`
	SessionName string `json:"sname"`
}

// CheckMsg is sent by a client to check if a session exists
type CheckMsg struct {
	SID string `json:"sid"`
}

// CheckedMsg is the response to a session check
type CheckedMsg struct {
	SID     string `json:"sid"`
	Exists  bool   `json:"exists"`
	Name    string `json:"name,omitempty"`
	Players int    `json:"players,omitempty"`
}

// RegisterMsg creates an account
type RegisterMsg struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginMsg authenticates an existing account
type LoginMsg struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthMsg resumes a session with a stored token
type AuthMsg struct {
	Token string `json:"token"`
}

// AuthOKMsg confirms authentication
type AuthOKMsg struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	PlayerID int64  `json:"pid"`
}

// PlayerState is broadcast per player each state frame
type PlayerState struct {
	ID     string  `json:"id" msgpack:"id"`
	Name   string  `json:"n" msgpack:"n"`
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	HP     int     `json:"hp" msgpack:"hp"`
	MaxHP  int     `json:"mhp" msgpack:"mhp"`
	Lives  int     `json:"lv" msgpack:"lv"`
	Score  int     `json:"sc" msgpack:"sc"`
	Power  int     `json:"pw" msgpack:"pw"`
	Alive  bool    `json:"a" msgpack:"a"`
	Shield bool    `json:"sh,omitempty" msgpack:"sh,omitempty"`
	Invuln bool    `json:"iv,omitempty" msgpack:"iv,omitempty"`
}

// EnemyState is broadcast per enemy
type EnemyState struct {
	ID    string  `json:"id" msgpack:"id"`
	Type  string  `json:"t" msgpack:"t"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	HP    int     `json:"hp" msgpack:"hp"`
	MaxHP int     `json:"mhp" msgpack:"mhp"`
}

// BulletState is broadcast per bullet, player and enemy fire alike
type BulletState struct {
	ID    string  `json:"id" msgpack:"id"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	Enemy bool    `json:"e,omitempty" msgpack:"e,omitempty"`
}

// PowerupState is broadcast per drifting powerup
type PowerupState struct {
	ID   string  `json:"id" msgpack:"id"`
	Kind string  `json:"k" msgpack:"k"`
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
}

// DebrisState is broadcast per debris rock
type DebrisState struct {
	ID string  `json:"id" msgpack:"id"`
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
	R  float64 `json:"r" msgpack:"r"`
	S  float64 `json:"s" msgpack:"s"` // size (radius)
}

// GameState is the full state frame, sent msgpack-encoded as a binary
// WebSocket message
type GameState struct {
	Tick     uint64         `json:"tick" msgpack:"tick"`
	Wave     int            `json:"w" msgpack:"w"`
	Score    int            `json:"sc" msgpack:"sc"`
	Started  bool           `json:"st" msgpack:"st"`
	Players  []PlayerState  `json:"p" msgpack:"p"`
	Enemies  []EnemyState   `json:"e" msgpack:"e"`
	Bullets  []BulletState  `json:"b" msgpack:"b"`
	Powerups []PowerupState `json:"pu" msgpack:"pu"`
	Debris   []DebrisState  `json:"d" msgpack:"d"`
}

// WelcomeMsg is sent to a player when they join
type WelcomeMsg struct {
	ID string `json:"id"`
}

// WaveMsg announces a new wave
type WaveMsg struct {
	Wave int `json:"w"`
}

// ExplosionMsg is feedback for a destroyed entity
type ExplosionMsg struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Kind string  `json:"k"` // enemy type, "player" or "debris"
}

// PowerupPickupMsg is feedback for a collected powerup
type PowerupPickupMsg struct {
	PlayerID string `json:"pid"`
	Kind     string `json:"k"`
}

// DeathMsg notifies a player they lost a life
type DeathMsg struct {
	Lives int `json:"lv"`
}

// GameOverMsg ends the run
type GameOverMsg struct {
	Score int `json:"sc"`
	Wave  int `json:"w"`
}

// AchievementMsg announces a newly unlocked achievement
type AchievementMsg struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SessionInfo is used in the session list
type SessionInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Players int    `json:"players"`
}

// ErrorMsg sends an error to the client
type ErrorMsg struct {
	Msg string `json:"msg"`
}
