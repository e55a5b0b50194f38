package room

import (
	"crypto/rand"
	"log/slog"
	"math/big"
	"sync"

	"github.com/Dvij-Joshi/neon-glide-arena/config"
)

// RoomInfo is returned by the API for the room list.
type RoomInfo struct {
	Code    string `json:"code"`
	Players int    `json:"players"`
}

// Manager holds rooms by code. Rooms are created via CreateRoom or QuickJoinRoom
// and removed as soon as their last player leaves; an empty room never
// lingers in the registry.
type Manager struct {
	mu     sync.RWMutex
	rooms  map[string]*Room
	logger *slog.Logger
}

func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		rooms:  make(map[string]*Room),
		logger: logger,
	}
}

// CreateRoom makes a room for the given mode under a fresh code and starts
// its actor.
func (m *Manager) CreateRoom(mode string) *Room {
	return m.create(mode, false)
}

// QuickJoinRoom returns an open quick-join lobby, reusing a waiting non-full
// one before creating another.
func (m *Manager) QuickJoinRoom() *Room {
	m.mu.RLock()
	for _, r := range m.rooms {
		if r.QuickJoin && r.Joinable() {
			m.mu.RUnlock()
			return r
		}
	}
	m.mu.RUnlock()
	return m.create("1v1", true)
}

func (m *Manager) create(mode string, quick bool) *Room {
	cfg, ok := config.ModeConfig(mode)
	if !ok {
		m.logger.Warn("unknown mode, using 1v1", "mode", mode)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := generateCode(4)
		if _, exists := m.rooms[code]; exists {
			continue
		}
		r := New(cfg, m.logger)
		r.Code = code
		r.QuickJoin = quick
		r.OnEmpty = func(c string) {
			m.removeRoom(c)
		}
		m.rooms[code] = r
		go r.Run()
		m.logger.Info("room created", "room_code", code, "mode", mode, "quick_join", quick)
		return r
	}
}

// Room looks up a room by code.
func (m *Manager) Room(code string) (*Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

// ListRooms returns all active rooms with code and player count.
func (m *Manager) ListRooms() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, RoomInfo{Code: code, Players: r.NumPlayers()})
	}
	return out
}

func (m *Manager) removeRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		r.Stop()
		delete(m.rooms, code)
		m.logger.Info("room removed", "room_code", code)
	}
}

// Stop shuts down every room actor.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for code, r := range m.rooms {
		r.Stop()
		delete(m.rooms, code)
	}
	m.logger.Info("room manager stopped")
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
