package room

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Dvij-Joshi/neon-glide-arena/config"
	"github.com/Dvij-Joshi/neon-glide-arena/game"
	"github.com/Dvij-Joshi/neon-glide-arena/protocol"
)

type Status string

const (
	StatusWaiting Status = "waiting"
	StatusPlaying Status = "playing"
	StatusEnded   Status = "ended"
)

// Player is one roster entry. Slice position in Room.players is join order.
type Player struct {
	ID    string
	Name  string
	Side  game.Side
	Ready bool
	Goals int
}

// Room is a single match lobby and its running game. All state below the
// Inbox is owned exclusively by the Run goroutine: joins, team switches,
// goals and disconnects are serialized by the actor loop, so two concurrent
// goal reports can never both pass the debounce check. The countdown lives
// inside the same loop and therefore can never fire against a deleted room.
type Room struct {
	Inbox chan any

	Code      string            // short join code, e.g. "AB12"
	QuickJoin bool              // legacy auto-balance lobby, reused until full
	OnEmpty   func(code string) // called when the last player leaves

	cfg    config.MatchConfig
	status Status

	players []*Player // join order
	conns   map[string]Conn
	hostID  string

	score        protocol.Score
	timerSeconds int
	lastGoalAt   time.Time
	lastTouchID  string
	mvpStats     map[string]int

	now       func() time.Time // injectable for debounce tests
	tickEvery time.Duration    // countdown interval, one second in production

	logger   *slog.Logger
	quit     chan struct{}
	stopOnce sync.Once

	// published for the manager's lock-free room picking
	count    atomic.Int32
	joinable atomic.Bool
}

func New(cfg config.MatchConfig, logger *slog.Logger) *Room {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Room{
		Inbox:        make(chan any, 256),
		cfg:          cfg,
		status:       StatusWaiting,
		conns:        make(map[string]Conn),
		mvpStats:     make(map[string]int),
		timerSeconds: config.MatchSeconds,
		now:          time.Now,
		tickEvery:    time.Second,
		logger:       logger,
		quit:         make(chan struct{}),
	}
	r.joinable.Store(true)
	return r
}

func (r *Room) Stop() {
	r.stopOnce.Do(func() { close(r.quit) })
}

// NumPlayers returns the current roster size, readable from any goroutine.
func (r *Room) NumPlayers() int {
	return int(r.count.Load())
}

// Joinable reports whether the room is waiting and has a free slot.
func (r *Room) Joinable() bool {
	return r.joinable.Load()
}

// Config returns the immutable match configuration.
func (r *Room) Config() config.MatchConfig {
	return r.cfg
}

func (r *Room) Run() {
	ticker := time.NewTicker(r.tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			if r.handleCommand(cmd) {
				// Match just started: align the countdown with it.
				ticker.Reset(r.tickEvery)
			}
		case <-ticker.C:
			r.tickCountdown()
		}
	}
}

// handleCommand dispatches one inbound command. The return value reports
// whether a match started, so Run can realign the countdown ticker.
func (r *Room) handleCommand(cmd any) bool {
	switch c := cmd.(type) {
	case Join:
		res := r.handleJoin(c)
		if c.Reply != nil {
			c.Reply <- res
		}
	case ToggleReady:
		r.handleToggleReady(c)
	case SwitchTeam:
		r.handleSwitchTeam(c)
	case StartGame:
		return r.handleStart(c)
	case PaddleMove:
		r.handlePaddleMove(c)
	case PuckSync:
		r.handlePuckSync(c)
	case PuckHit:
		r.handlePuckHit(c)
	case GoalReport:
		r.handleGoal(c)
	case Leave:
		r.handleLeave(c.PlayerID)
	}
	return false
}

func (r *Room) handleJoin(cmd Join) JoinResult {
	if r.status != StatusWaiting {
		return JoinResult{Err: ErrGameStarted}
	}
	if len(r.players) >= r.cfg.MaxPlayers() {
		return JoinResult{Err: ErrRoomFull}
	}

	id := uuid.NewString()
	name := cmd.Name
	if name == "" {
		name = fmt.Sprintf("Player %d", len(r.players)+1)
	}
	p := &Player{ID: id, Name: name, Side: r.balancedSide()}
	r.players = append(r.players, p)
	r.conns[id] = cmd.Conn
	r.mvpStats[id] = 0
	if len(r.players) == 1 {
		r.hostID = id
	}
	r.publishMeta()
	r.broadcastLobby()
	return JoinResult{PlayerID: id, HostID: r.hostID}
}

// balancedSide picks the least-populated side, ties to left.
func (r *Room) balancedSide() game.Side {
	left, right := r.sideCounts()
	if left <= right {
		return game.SideLeft
	}
	return game.SideRight
}

func (r *Room) sideCounts() (left, right int) {
	for _, p := range r.players {
		if p.Side == game.SideLeft {
			left++
		} else {
			right++
		}
	}
	return left, right
}

func (r *Room) handleToggleReady(cmd ToggleReady) {
	if r.status != StatusWaiting {
		return
	}
	p := r.findPlayer(cmd.PlayerID)
	if p == nil {
		return
	}
	p.Ready = !p.Ready
	r.broadcastLobby()
}

func (r *Room) handleSwitchTeam(cmd SwitchTeam) {
	if r.status != StatusWaiting {
		return
	}
	if cmd.Side != game.SideLeft && cmd.Side != game.SideRight {
		return
	}
	p := r.findPlayer(cmd.PlayerID)
	if p == nil {
		return
	}

	// Capacity counts the destination's current occupants minus the
	// requester; a full side is a silent no-op, no broadcast.
	occupants := 0
	for _, other := range r.players {
		if other.Side == cmd.Side && other.ID != cmd.PlayerID {
			occupants++
		}
	}
	if occupants >= r.cfg.MaxPerTeam {
		return
	}

	p.Side = cmd.Side
	p.Ready = false // switching always requires re-confirming readiness
	r.broadcastLobby()
}

func (r *Room) handleStart(cmd StartGame) bool {
	fail := func(err error) bool {
		if cmd.Reply != nil {
			cmd.Reply <- err
		}
		return false
	}
	if r.status != StatusWaiting {
		return fail(ErrGameStarted)
	}
	if cmd.PlayerID != r.hostID {
		return fail(ErrNotHost)
	}
	left, right := r.sideCounts()
	if left < 1 || right < 1 {
		return fail(ErrNeedBothSides)
	}
	for _, p := range r.players {
		if !p.Ready {
			return fail(ErrNotAllReady)
		}
	}

	r.status = StatusPlaying
	r.score = protocol.Score{}
	r.timerSeconds = config.MatchSeconds
	r.lastGoalAt = time.Time{}
	r.lastTouchID = ""
	for _, p := range r.players {
		r.mvpStats[p.ID] = 0
		p.Goals = 0
	}
	r.publishMeta()

	r.logger.Info("match started", "room_code", r.Code, "players", len(r.players))
	r.broadcast(protocol.MsgGameStart, protocol.GameStart{
		Config:  r.cfg,
		Players: r.playerInfos(),
	})
	if cmd.Reply != nil {
		cmd.Reply <- nil
	}
	return true
}

func (r *Room) tickCountdown() {
	if r.status != StatusPlaying {
		return
	}
	r.timerSeconds--
	r.broadcast(protocol.MsgTimerUpdate, protocol.TimerUpdate{Seconds: r.timerSeconds})
	if r.timerSeconds <= 0 {
		r.endGame("timeout")
	}
}

func (r *Room) handlePaddleMove(cmd PaddleMove) {
	if r.status != StatusPlaying {
		return
	}
	if _, ok := r.conns[cmd.PlayerID]; !ok {
		return
	}
	r.relayExcept(cmd.PlayerID, protocol.MsgOpponentMove, protocol.OpponentMove{
		PlayerID: cmd.PlayerID, X: cmd.X, Y: cmd.Y,
	})
}

func (r *Room) handlePuckSync(cmd PuckSync) {
	if r.status != StatusPlaying {
		return
	}
	if _, ok := r.conns[cmd.PlayerID]; !ok {
		return
	}
	// Relayed unvalidated: the protocol tolerates rather than prevents a
	// peer publishing false puck state.
	r.relayExcept(cmd.PlayerID, protocol.MsgPuckUpdate, protocol.PuckState{
		X: cmd.X, Y: cmd.Y, VX: cmd.VX, VY: cmd.VY,
	})
}

func (r *Room) handlePuckHit(cmd PuckHit) {
	if r.status != StatusPlaying {
		return
	}
	if _, ok := r.conns[cmd.PlayerID]; !ok {
		return
	}
	// The sender claims the touch; goals credit the last toucher.
	r.lastTouchID = cmd.PlayerID
	r.relayExcept(cmd.PlayerID, protocol.MsgPuckHit, protocol.PuckHit{
		PlayerID: cmd.PlayerID, X: cmd.X, Y: cmd.Y, VX: cmd.VX, VY: cmd.VY,
	})
}

func (r *Room) handleGoal(cmd GoalReport) {
	if r.status != StatusPlaying {
		return
	}
	if _, ok := r.conns[cmd.PlayerID]; !ok {
		return
	}
	if cmd.Side != game.SideLeft && cmd.Side != game.SideRight {
		return
	}

	// Host and guests all detect goals against their own shadow puck, so
	// one physical goal arrives as several reports. Accept the first and
	// silently drop the rest of the window.
	now := r.now()
	if now.Sub(r.lastGoalAt) < protocol.GoalDebounceMillis*time.Millisecond {
		return
	}
	r.lastGoalAt = now

	if cmd.Side == game.SideLeft {
		r.score.Left++
	} else {
		r.score.Right++
	}

	// Credit the last toucher, but only for a goal on their own side's
	// behalf; an own-goal deflection earns nobody credit.
	if p := r.findPlayer(r.lastTouchID); p != nil && p.Side == cmd.Side {
		r.mvpStats[p.ID]++
		p.Goals++
	}

	r.logger.Info("goal accepted",
		"room_code", r.Code, "side", cmd.Side,
		"left", r.score.Left, "right", r.score.Right)
	r.broadcast(protocol.MsgScoreUpdate, r.score)

	if r.score.Left >= config.WinScore || r.score.Right >= config.WinScore {
		r.endGame("score limit")
	}
}

func (r *Room) endGame(reason string) {
	r.status = StatusEnded
	r.publishMeta()

	winner := "draw"
	if r.score.Left > r.score.Right {
		winner = string(game.SideLeft)
	} else if r.score.Right > r.score.Left {
		winner = string(game.SideRight)
	}

	// MVP ties resolve to the earliest joiner; iterating the roster slice
	// keeps that deterministic where a map walk would not be.
	mvp := protocol.MVP{Name: "None", Goals: -1}
	for _, p := range r.players {
		if g := r.mvpStats[p.ID]; g > mvp.Goals {
			mvp = protocol.MVP{Name: p.Name, Goals: g}
		}
	}

	r.logger.Info("match ended",
		"room_code", r.Code, "reason", reason, "winner", winner,
		"left", r.score.Left, "right", r.score.Right)
	r.broadcast(protocol.MsgGameOver, protocol.GameOver{
		Winner: winner,
		Score:  r.score,
		MVP:    mvp,
	})
}

// handleLeave removes a player. Safe to call for ids already gone, so a
// disconnect racing an explicit leave is harmless.
func (r *Room) handleLeave(playerID string) {
	idx := -1
	for i, p := range r.players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	wasHost := playerID == r.hostID

	r.players = append(r.players[:idx], r.players[idx+1:]...)
	if c, ok := r.conns[playerID]; ok {
		_ = c.Close()
		delete(r.conns, playerID)
	}
	r.publishMeta()

	if len(r.players) == 0 {
		if r.OnEmpty != nil && r.Code != "" {
			r.OnEmpty(r.Code)
		}
		return
	}

	if wasHost {
		// Earliest joined remaining player inherits physics authority.
		r.hostID = r.players[0].ID
		r.logger.Info("host migrated", "room_code", r.Code, "host_id", r.hostID)
	}
	r.broadcastLobby()
}

func (r *Room) findPlayer(id string) *Player {
	if id == "" {
		return nil
	}
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) playerInfos() []protocol.PlayerInfo {
	out := make([]protocol.PlayerInfo, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, protocol.PlayerInfo{
			ID: p.ID, Name: p.Name, Side: p.Side, Ready: p.Ready, Goals: p.Goals,
		})
	}
	return out
}

func (r *Room) lobbySnapshot() protocol.LobbySnapshot {
	return protocol.LobbySnapshot{
		Code:    r.Code,
		Status:  string(r.status),
		HostID:  r.hostID,
		Config:  r.cfg,
		Players: r.playerInfos(),
	}
}

func (r *Room) broadcastLobby() {
	r.broadcast(protocol.MsgLobbyUpdate, r.lobbySnapshot())
}

func (r *Room) broadcast(t string, payload any) {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		return
	}
	var failed []string
	for id, c := range r.conns {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.handleLeave(id)
	}
}

func (r *Room) relayExcept(senderID, t string, payload any) {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		return
	}
	var failed []string
	for id, c := range r.conns {
		if id == senderID {
			continue
		}
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.handleLeave(id)
	}
}

func (r *Room) publishMeta() {
	r.count.Store(int32(len(r.players)))
	r.joinable.Store(r.status == StatusWaiting && len(r.players) < r.cfg.MaxPlayers())
}
