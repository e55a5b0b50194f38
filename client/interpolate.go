package client

import "github.com/Dvij-Joshi/neon-glide-arena/protocol"

type lerpTarget struct {
	x, y             float64
	targetX, targetY float64
}

// Interpolator smooths remote paddle motion. Reported positions become
// targets; each frame the rendered position closes a fixed fraction of the
// gap, absorbing jitter and out-of-order delivery at the cost of a small lag.
type Interpolator struct {
	paddles map[string]*lerpTarget
}

func NewInterpolator() *Interpolator {
	return &Interpolator{paddles: make(map[string]*lerpTarget)}
}

// Observe records a reported position for a remote paddle. The first report
// for a paddle snaps; later ones only move the target.
func (it *Interpolator) Observe(id string, x, y float64) {
	if p, ok := it.paddles[id]; ok {
		p.targetX = x
		p.targetY = y
		return
	}
	it.paddles[id] = &lerpTarget{x: x, y: y, targetX: x, targetY: y}
}

// Advance blends every paddle toward its target by the lerp fraction.
// Called once per rendered frame.
func (it *Interpolator) Advance() {
	for _, p := range it.paddles {
		p.x += (p.targetX - p.x) * protocol.PaddleLerpFraction
		p.y += (p.targetY - p.y) * protocol.PaddleLerpFraction
	}
}

// At returns the current rendered position of a remote paddle.
func (it *Interpolator) At(id string) (x, y float64, ok bool) {
	p, ok := it.paddles[id]
	if !ok {
		return 0, 0, false
	}
	return p.x, p.y, true
}

// Forget drops a paddle, e.g. when its player leaves.
func (it *Interpolator) Forget(id string) {
	delete(it.paddles, id)
}
