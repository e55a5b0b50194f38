package network

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Dvij-Joshi/neon-glide-arena/protocol"
	"github.com/Dvij-Joshi/neon-glide-arena/room"
)

const (
	readLimit     = 1 << 20 // 1MB
	readDeadline  = 60 * time.Second
	writeDeadline = 10 * time.Second
	pingEvery     = 25 * time.Second
	sendBuffer    = 256
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Server bridges websocket peers to room actors.
type Server struct {
	manager *room.Manager
	logger  *slog.Logger
}

func NewServer(manager *room.Manager, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{manager: manager, logger: logger}
}

// ServeWS upgrades the connection and runs the peer's read loop until it
// disconnects.
func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	p := &peer{
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		done:    make(chan struct{}),
		manager: s.manager,
		logger:  s.logger,
	}
	go p.writePump()
	p.readPump()
}

// peer is one connected player. It implements room.Conn, so room actors can
// fan out to it; Send never blocks them.
type peer struct {
	conn    *websocket.Conn
	send    chan []byte
	done    chan struct{}
	manager *room.Manager
	logger  *slog.Logger

	closeOnce sync.Once

	// set once on join; only the readPump goroutine touches these
	playerID string
	roomCode string
}

var (
	errPeerClosed = errors.New("peer connection closed")
	errSendFull   = errors.New("peer send buffer full")
)

func (p *peer) Send(b []byte) error {
	select {
	case <-p.done:
		return errPeerClosed
	case p.send <- b:
		return nil
	default:
		// A peer that cannot drain its buffer gets evicted rather than
		// stalling the room.
		return errSendFull
	}
}

func (p *peer) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
		_ = p.conn.Close()
	})
	return nil
}

func (p *peer) readPump() {
	defer func() {
		p.leaveCurrentRoom()
		_ = p.Close()
	}()

	p.conn.SetReadLimit(readLimit)
	_ = p.conn.SetReadDeadline(time.Now().Add(readDeadline))
	p.conn.SetPongHandler(func(string) error {
		_ = p.conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	for {
		_, msg, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				p.logger.Error("websocket read error", "error", err, "player_id", p.playerID)
			}
			return
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			p.sendError("malformed message")
			continue
		}
		p.handleMessage(env)
	}
}

func (p *peer) writePump() {
	ticker := time.NewTicker(pingEvery)
	defer func() {
		ticker.Stop()
		_ = p.Close()
	}()

	for {
		select {
		case <-p.done:
			return
		case msg := <-p.send:
			_ = p.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = p.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (p *peer) handleMessage(env protocol.Envelope) {
	switch env.T {
	case protocol.MsgCreateRoom:
		payload, err := protocol.DecodePayload[protocol.CreateRoom](env)
		if err != nil {
			p.sendError("malformed message")
			return
		}
		r := p.manager.CreateRoom(payload.Mode)
		if res, ok := p.join(r, payload.HostName); ok {
			p.reply(protocol.MsgRoomCreated, protocol.RoomCreated{
				Code: r.Code, HostID: res.HostID,
			})
		}

	case protocol.MsgJoinRoom:
		payload, err := protocol.DecodePayload[protocol.JoinRoom](env)
		if err != nil {
			p.sendError("malformed message")
			return
		}
		r, ok := p.manager.Room(payload.Code)
		if !ok {
			p.sendError(room.ErrRoomNotFound.Error())
			return
		}
		if res, ok := p.join(r, payload.Name); ok {
			p.reply(protocol.MsgRoomJoined, protocol.RoomJoined{
				Code: r.Code, PlayerID: res.PlayerID, HostID: res.HostID,
			})
		}

	case protocol.MsgQuickJoin:
		payload, err := protocol.DecodePayload[protocol.QuickJoin](env)
		if err != nil {
			p.sendError("malformed message")
			return
		}
		r := p.manager.QuickJoinRoom()
		if res, ok := p.join(r, payload.Name); ok {
			p.reply(protocol.MsgRoomJoined, protocol.RoomJoined{
				Code: r.Code, PlayerID: res.PlayerID, HostID: res.HostID,
			})
		}

	case protocol.MsgToggleReady:
		payload, err := protocol.DecodePayload[protocol.ToggleReady](env)
		if err != nil {
			return
		}
		p.forward(payload.Code, room.ToggleReady{PlayerID: p.playerID})

	case protocol.MsgSwitchTeam:
		payload, err := protocol.DecodePayload[protocol.SwitchTeam](env)
		if err != nil {
			return
		}
		p.forward(payload.Code, room.SwitchTeam{PlayerID: p.playerID, Side: payload.Side})

	case protocol.MsgStartGame:
		payload, err := protocol.DecodePayload[protocol.StartGame](env)
		if err != nil {
			return
		}
		r, ok := p.manager.Room(payload.Code)
		if !ok {
			p.sendError(room.ErrRoomNotFound.Error())
			return
		}
		reply := make(chan error, 1)
		r.Inbox <- room.StartGame{PlayerID: p.playerID, Reply: reply}
		if err := <-reply; err != nil {
			p.sendError(err.Error())
		}

	case protocol.MsgPaddleMove:
		payload, err := protocol.DecodePayload[protocol.PaddleMove](env)
		if err != nil {
			return
		}
		p.forward(payload.Code, room.PaddleMove{PlayerID: p.playerID, X: payload.X, Y: payload.Y})

	case protocol.MsgPuckSync:
		payload, err := protocol.DecodePayload[protocol.PuckState](env)
		if err != nil {
			return
		}
		p.forward(payload.Code, room.PuckSync{
			PlayerID: p.playerID,
			X:        payload.X, Y: payload.Y, VX: payload.VX, VY: payload.VY,
		})

	case protocol.MsgPuckHit:
		payload, err := protocol.DecodePayload[protocol.PuckState](env)
		if err != nil {
			return
		}
		p.forward(payload.Code, room.PuckHit{
			PlayerID: p.playerID,
			X:        payload.X, Y: payload.Y, VX: payload.VX, VY: payload.VY,
		})

	case protocol.MsgGoalScored:
		payload, err := protocol.DecodePayload[protocol.GoalScored](env)
		if err != nil {
			return
		}
		p.forward(payload.Code, room.GoalReport{PlayerID: p.playerID, Side: payload.Side})

	case protocol.MsgLeaveRoom:
		p.leaveCurrentRoom()

	default:
		p.logger.Debug("unknown message type", "type", env.T, "player_id", p.playerID)
	}
}

// join sends the Join command and waits for the actor's verdict.
func (p *peer) join(r *room.Room, name string) (room.JoinResult, bool) {
	if p.roomCode != "" {
		p.leaveCurrentRoom()
	}
	reply := make(chan room.JoinResult, 1)
	r.Inbox <- room.Join{Conn: p, Name: name, Reply: reply}
	res := <-reply
	if res.Err != nil {
		p.sendError(res.Err.Error())
		return res, false
	}
	p.playerID = res.PlayerID
	p.roomCode = r.Code
	p.logger.Info("player joined", "room_code", r.Code, "player_id", res.PlayerID)
	return res, true
}

// forward routes a gameplay command by the room code carried on the payload.
// A stale code is a no-op, never an error.
func (p *peer) forward(code string, cmd any) {
	if p.playerID == "" {
		return
	}
	r, ok := p.manager.Room(code)
	if !ok {
		return
	}
	select {
	case r.Inbox <- cmd:
	case <-p.done:
	}
}

func (p *peer) leaveCurrentRoom() {
	if p.roomCode == "" {
		return
	}
	if r, ok := p.manager.Room(p.roomCode); ok {
		r.Inbox <- room.Leave{PlayerID: p.playerID}
	}
	p.roomCode = ""
	p.playerID = ""
}

func (p *peer) reply(t string, payload any) {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		return
	}
	_ = p.Send(b)
}

func (p *peer) sendError(message string) {
	p.reply(protocol.MsgError, protocol.ErrorMessage{Message: message})
}
