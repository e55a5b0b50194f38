package client

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dvij-Joshi/neon-glide-arena/game"
	"github.com/Dvij-Joshi/neon-glide-arena/protocol"
)

func newTestReconciler() (*Reconciler, *time.Time) {
	now := time.Unix(1000, 0)
	a := game.Arena{Width: 1200, Height: 600, GoalWidth: 220}
	rc := NewReconciler(a, game.PrototypeParams(), func() time.Time { return now })
	return rc, &now
}

func TestApplyAuthoritativeSnapsLargeDelta(t *testing.T) {
	rc, _ := newTestReconciler()
	rc.Puck.X = 100
	rc.Puck.Y = 100

	rc.ApplyAuthoritative(protocol.PuckState{X: 400, Y: 300, VX: 3, VY: -2})
	assert.Equal(t, 400.0, rc.Puck.X)
	assert.Equal(t, 300.0, rc.Puck.Y)
	assert.Equal(t, 3.0, rc.Puck.VX)
	assert.Equal(t, -2.0, rc.Puck.VY)
}

func TestApplyAuthoritativeIgnoresSmallDeltaButAdoptsVelocity(t *testing.T) {
	rc, _ := newTestReconciler()
	rc.Puck.X = 400
	rc.Puck.Y = 300

	// 5 units off: below the noise threshold, position stays put.
	rc.ApplyAuthoritative(protocol.PuckState{X: 403, Y: 304, VX: 7, VY: 1})
	assert.Equal(t, 400.0, rc.Puck.X)
	assert.Equal(t, 300.0, rc.Puck.Y)
	assert.Equal(t, 7.0, rc.Puck.VX, "velocity adopted even when position is not")
	assert.Equal(t, 1.0, rc.Puck.VY)
}

func TestApplyAuthoritativeIsIdempotent(t *testing.T) {
	rc, _ := newTestReconciler()
	rc.Puck.X = 100
	rc.Puck.Y = 100

	upd := protocol.PuckState{X: 500, Y: 200, VX: -4, VY: 6}
	rc.ApplyAuthoritative(upd)
	once := rc.Puck
	rc.ApplyAuthoritative(upd)
	assert.Equal(t, once, rc.Puck, "re-applying an update must not double-integrate")
}

func TestHitGraceWindowShieldsPrediction(t *testing.T) {
	rc, now := newTestReconciler()

	// Drive the puck into a paddle to open the grace window.
	pad := game.Paddle{ID: "me", X: rc.Puck.X - 30, Y: rc.Puck.Y, Radius: game.PaddleRadius, Side: game.SideLeft}
	hit, ok := rc.StrikeWith(&pad)
	require.True(t, ok)
	assert.InDelta(t, game.HitImpulse, math.Hypot(hit.VX, hit.VY), 1e-9)
	predicted := rc.Puck

	// Inside 200ms: routine syncs cannot erase the predicted bounce.
	*now = now.Add(100 * time.Millisecond)
	rc.ApplyAuthoritative(protocol.PuckState{X: 50, Y: 50, VX: 0, VY: 0})
	assert.Equal(t, predicted, rc.Puck)

	// After the grace expires the host wins again.
	*now = now.Add(200 * time.Millisecond)
	rc.ApplyAuthoritative(protocol.PuckState{X: 50, Y: 50, VX: 0, VY: 0})
	assert.Equal(t, 50.0, rc.Puck.X)
}

func TestApplyHitOverridesGraceWindow(t *testing.T) {
	rc, _ := newTestReconciler()

	pad := game.Paddle{ID: "me", X: rc.Puck.X - 30, Y: rc.Puck.Y, Radius: game.PaddleRadius, Side: game.SideLeft}
	_, ok := rc.StrikeWith(&pad)
	require.True(t, ok)

	// A relayed hit event lands even while our own grace window is open.
	rc.ApplyHit(protocol.PuckState{X: 900, Y: 150, VX: -8, VY: 2})
	assert.Equal(t, 900.0, rc.Puck.X)
	assert.Equal(t, -8.0, rc.Puck.VX)
}

func TestPredictDetectsGoal(t *testing.T) {
	rc, _ := newTestReconciler()
	rc.Puck.X = game.PuckRadius + 1
	rc.Puck.Y = 300
	rc.Puck.VX = -10

	goal := rc.Predict()
	assert.Equal(t, game.GoalRight, goal)

	rc.ResetPuck()
	assert.Equal(t, 600.0, rc.Puck.X)
	assert.Equal(t, 300.0, rc.Puck.Y)
	assert.Zero(t, rc.Puck.VX)
}

