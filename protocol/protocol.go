package protocol

import (
	"encoding/json"
)

// Client → server message types.
const (
	MsgCreateRoom  = "createRoom"
	MsgJoinRoom    = "joinRoom"
	MsgQuickJoin   = "quickJoin"
	MsgToggleReady = "toggleReady"
	MsgSwitchTeam  = "switchTeam"
	MsgStartGame   = "startGame"
	MsgPaddleMove  = "paddleMove"
	MsgPuckSync    = "puckSync"
	MsgPuckHit     = "puckHit"
	MsgGoalScored  = "goalScored"
	MsgLeaveRoom   = "leaveRoom"
)

// Server → client message types.
const (
	MsgRoomCreated  = "roomCreated"
	MsgRoomJoined   = "roomJoined"
	MsgLobbyUpdate  = "lobbyUpdate"
	MsgGameStart    = "gameStart"
	MsgOpponentMove = "opponentMove"
	MsgPuckUpdate   = "puckUpdate"
	MsgTimerUpdate  = "timerUpdate"
	MsgScoreUpdate  = "scoreUpdate"
	MsgGameOver     = "gameOver"
	MsgError        = "error"
)

// Replication tuning. Peers emit paddle positions at most PaddleSendHz; the
// guest ignores authoritative puck deltas below SnapThreshold and keeps its
// own prediction for HitGraceMillis after a locally detected hit.
const (
	PaddleSendHz       = 33
	HitGraceMillis     = 200
	SnapThreshold      = 10.0
	PaddleLerpFraction = 0.3
	GoalDebounceMillis = 3000
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
