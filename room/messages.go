package room

import "github.com/Dvij-Joshi/neon-glide-arena/game"

// Conn is the transport seam: the room never touches websockets directly.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once per peer after the create/join/quick-join request.
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	PlayerID string
	HostID   string
	Err      error
}

// ToggleReady flips the player's ready flag while waiting.
type ToggleReady struct {
	PlayerID string
}

// SwitchTeam requests a side change; capacity violations silently no-op.
type SwitchTeam struct {
	PlayerID string
	Side     game.Side
}

// StartGame is accepted from the host only; precondition failures come back
// on Reply.
type StartGame struct {
	PlayerID string
	Reply    chan<- error
}

// PaddleMove is a peer's own paddle position, relayed to the rest of the room.
type PaddleMove struct {
	PlayerID string
	X, Y     float64
}

// PuckSync is the host's routine authoritative puck broadcast.
type PuckSync struct {
	PlayerID     string
	X, Y, VX, VY float64
}

// PuckHit is a peer's locally predicted paddle-puck impact. It sets the
// room's last toucher and is relayed as authoritative.
type PuckHit struct {
	PlayerID     string
	X, Y, VX, VY float64
}

// GoalReport is an independently detected goal, subject to the debounce
// window.
type GoalReport struct {
	PlayerID string
	Side     game.Side
}

// Leave: issued on disconnect or an explicit leave. Idempotent.
type Leave struct {
	PlayerID string
}
