// Package client holds the peer-side half of the replication protocol:
// puck prediction with reconciliation against host broadcasts, remote paddle
// interpolation, and outbound paddle rate limiting. It is pure logic with an
// injected clock so bots and tests can drive it without a socket.
package client

import (
	"math"
	"time"

	"github.com/Dvij-Joshi/neon-glide-arena/game"
	"github.com/Dvij-Joshi/neon-glide-arena/protocol"
)

const hitGrace = protocol.HitGraceMillis * time.Millisecond

// Reconciler owns a peer's local puck shadow. Every frame the owner calls
// Predict; authoritative updates from the host are merged through
// ApplyAuthoritative, and relayed hit events through ApplyHit.
type Reconciler struct {
	Puck game.Puck

	params game.Params
	arena  game.Arena

	lastLocalHit time.Time
	now          func() time.Time
}

func NewReconciler(a game.Arena, params game.Params, now func() time.Time) *Reconciler {
	if now == nil {
		now = time.Now
	}
	return &Reconciler{
		Puck:   game.NewPuck(a),
		params: params,
		arena:  a,
		now:    now,
	}
}

// Predict advances the local shadow one frame and reports any locally
// detected goal, which the owner forwards as a goal report.
func (rc *Reconciler) Predict() game.Goal {
	return game.Step(&rc.Puck, rc.params, rc.arena)
}

// StrikeWith tests a paddle against the shadow puck. On contact it applies
// the impulse locally, opens the hit grace window, and returns the puck
// state to broadcast as a hit event, so the hit feels instant to the striker
// while remote peers adopt the same impulse.
func (rc *Reconciler) StrikeWith(pad *game.Paddle) (protocol.PuckState, bool) {
	now := rc.now()
	if !game.Collide(pad, &rc.Puck, now) {
		return protocol.PuckState{}, false
	}
	rc.lastLocalHit = now
	return rc.state(), true
}

// ApplyAuthoritative merges a routine host puck sync. Inside the hit grace
// window the update is ignored entirely: the host has not yet observed the
// bounce we just predicted, and adopting its state would erase it. Outside
// the window, position snaps only when the delta exceeds the noise
// threshold; velocity is always adopted. Applying the same update twice
// leaves the same state as applying it once.
func (rc *Reconciler) ApplyAuthoritative(upd protocol.PuckState) {
	if rc.now().Sub(rc.lastLocalHit) < hitGrace {
		return
	}
	dx := upd.X - rc.Puck.X
	dy := upd.Y - rc.Puck.Y
	if math.Hypot(dx, dy) > protocol.SnapThreshold {
		rc.Puck.X = upd.X
		rc.Puck.Y = upd.Y
	}
	rc.Puck.VX = upd.VX
	rc.Puck.VY = upd.VY
}

// ApplyHit adopts a relayed hit event unconditionally. A hit outranks the
// grace window: the sender predicted the impact at their own paddle, which
// is better information than our shadow has.
func (rc *Reconciler) ApplyHit(upd protocol.PuckState) {
	rc.Puck.X = upd.X
	rc.Puck.Y = upd.Y
	rc.Puck.VX = upd.VX
	rc.Puck.VY = upd.VY
}

// ResetPuck recenters the shadow, as after an accepted goal.
func (rc *Reconciler) ResetPuck() {
	rc.Puck.Reset(rc.arena)
}

func (rc *Reconciler) state() protocol.PuckState {
	return protocol.PuckState{
		X: rc.Puck.X, Y: rc.Puck.Y, VX: rc.Puck.VX, VY: rc.Puck.VY,
	}
}
