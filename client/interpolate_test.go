package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dvij-Joshi/neon-glide-arena/protocol"
)

func TestInterpolatorBlendsTowardTarget(t *testing.T) {
	it := NewInterpolator()
	it.Observe("p2", 100, 100)

	// New target: each frame closes 30% of the remaining gap, never snaps.
	it.Observe("p2", 200, 100)
	it.Advance()
	x, y, ok := it.At("p2")
	require.True(t, ok)
	assert.InDelta(t, 130.0, x, 1e-9)
	assert.Equal(t, 100.0, y)

	it.Advance()
	x, _, _ = it.At("p2")
	assert.InDelta(t, 151.0, x, 1e-9)
	assert.Less(t, x, 200.0, "remote paddles are blended, not snapped")
}

func TestInterpolatorFirstObservationSnaps(t *testing.T) {
	it := NewInterpolator()
	it.Observe("p3", 640, 360)
	x, y, ok := it.At("p3")
	require.True(t, ok)
	assert.Equal(t, 640.0, x)
	assert.Equal(t, 360.0, y)
}

func TestInterpolatorForget(t *testing.T) {
	it := NewInterpolator()
	it.Observe("p2", 1, 2)
	it.Forget("p2")
	_, _, ok := it.At("p2")
	assert.False(t, ok)
}

func TestPaddleSenderBoundsRate(t *testing.T) {
	s := NewPaddleSender()
	start := time.Unix(1000, 0)

	require.True(t, s.Allow(start))
	assert.False(t, s.Allow(start.Add(10*time.Millisecond)), "inside min interval")
	assert.True(t, s.Allow(start.Add(40*time.Millisecond)))

	// Over one second the send count stays near the configured rate even if
	// the render loop runs much faster.
	s = NewPaddleSender()
	sent := 0
	for ms := 0; ms < 1000; ms++ {
		if s.Allow(start.Add(time.Duration(ms) * time.Millisecond)) {
			sent++
		}
	}
	assert.LessOrEqual(t, sent, protocol.PaddleSendHz+1)
	assert.Greater(t, sent, protocol.PaddleSendHz/2)
}
