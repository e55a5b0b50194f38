package protocol

import (
	"github.com/Dvij-Joshi/neon-glide-arena/config"
	"github.com/Dvij-Joshi/neon-glide-arena/game"
)

// Payloads fanned out to peers.

type RoomCreated struct {
	Code   string `json:"code"`
	HostID string `json:"hostId"`
}

type RoomJoined struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
	HostID   string `json:"hostId"`
}

type PlayerInfo struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Side  game.Side `json:"side"`
	Ready bool      `json:"ready"`
	Goals int       `json:"goals"`
}

type LobbySnapshot struct {
	Code    string             `json:"code"`
	Status  string             `json:"status"`
	HostID  string             `json:"hostId"`
	Config  config.MatchConfig `json:"config"`
	Players []PlayerInfo       `json:"players"`
}

type GameStart struct {
	Config  config.MatchConfig `json:"config"`
	Players []PlayerInfo       `json:"players"`
}

type OpponentMove struct {
	PlayerID string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// PuckHit is a relayed hit event, authoritative on receipt: it overrides the
// receiver's hit grace window, unlike a routine PuckUpdate.
type PuckHit struct {
	PlayerID string  `json:"playerId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	VX       float64 `json:"vx"`
	VY       float64 `json:"vy"`
}

type TimerUpdate struct {
	Seconds int `json:"seconds"`
}

type Score struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

type MVP struct {
	Name  string `json:"name"`
	Goals int    `json:"goals"`
}

type GameOver struct {
	Winner string `json:"winner"` // "left", "right" or "draw"
	Score  Score  `json:"score"`
	MVP    MVP    `json:"mvp"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}
