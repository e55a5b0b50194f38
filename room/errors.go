package room

import "errors"

var (
	ErrRoomNotFound  = errors.New("room not found, please check the code")
	ErrGameStarted   = errors.New("game already started")
	ErrRoomFull      = errors.New("room is full")
	ErrNotHost       = errors.New("only the host can start the game")
	ErrNeedBothSides = errors.New("need at least 1 player per team")
	ErrNotAllReady   = errors.New("all players must be ready to start")
)
