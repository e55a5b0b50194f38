package game

import (
	"math"
	"time"
)

// Paddle is one player's striker. The owning peer is authoritative for its
// position; other peers interpolate toward reported positions.
type Paddle struct {
	ID     string
	X, Y   float64
	Radius float64
	Side   Side
}

// Clamp keeps the paddle inside the arena and on its own half.
func (pad *Paddle) Clamp(a Arena) {
	if pad.Y-pad.Radius < 0 {
		pad.Y = pad.Radius
	}
	if pad.Y+pad.Radius > a.Height {
		pad.Y = a.Height - pad.Radius
	}
	if pad.Side == SideLeft {
		if pad.X-pad.Radius < 0 {
			pad.X = pad.Radius
		}
		if pad.X+pad.Radius > a.Width/2 {
			pad.X = a.Width/2 - pad.Radius
		}
	} else {
		if pad.X-pad.Radius < a.Width/2 {
			pad.X = a.Width/2 + pad.Radius
		}
		if pad.X+pad.Radius > a.Width {
			pad.X = a.Width - pad.Radius
		}
	}
}

// Collide resolves a paddle-puck overlap: separate along the line of centers
// by the overlap amount (prevents tunneling and sticking), then kick the puck
// at HitImpulse along that line. The kick replaces the puck's velocity rather
// than adding to it. Returns true if contact happened.
func Collide(pad *Paddle, p *Puck, now time.Time) bool {
	dx := p.X - pad.X
	dy := p.Y - pad.Y
	dist := math.Hypot(dx, dy)
	minDist := pad.Radius + p.Radius
	if dist >= minDist {
		return false
	}

	angle := math.Atan2(dy, dx)
	overlap := minDist - dist
	p.X += math.Cos(angle) * overlap
	p.Y += math.Sin(angle) * overlap

	p.VX = math.Cos(angle) * HitImpulse
	p.VY = math.Sin(angle) * HitImpulse
	p.LastHitAt = now
	return true
}
