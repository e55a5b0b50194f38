package protocol

import "github.com/Dvij-Joshi/neon-glide-arena/game"

// Payloads coming in from peers. Every gameplay payload names its room
// explicitly; the server never infers room membership from the connection.

type CreateRoom struct {
	Mode     string `json:"mode"`
	HostName string `json:"hostName,omitempty"`
}

type JoinRoom struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type QuickJoin struct {
	Name string `json:"name"`
}

type ToggleReady struct {
	Code string `json:"code"`
}

type SwitchTeam struct {
	Code string    `json:"code"`
	Side game.Side `json:"side"`
}

type StartGame struct {
	Code string `json:"code"`
}

// PaddleMove is a peer's own paddle position, rate-limited by the sender.
type PaddleMove struct {
	Code string  `json:"code"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// PuckState carries puck position and velocity. Used by the host's routine
// sync and by any peer's hit broadcast.
type PuckState struct {
	Code string  `json:"code,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VX   float64 `json:"vx"`
	VY   float64 `json:"vy"`
}

type GoalScored struct {
	Code string    `json:"code"`
	Side game.Side `json:"side"`
}

type LeaveRoom struct {
	Code string `json:"code"`
}
