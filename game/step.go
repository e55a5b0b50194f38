package game

import "math"

// Goal reports which side scored on a simulation step, if any.
type Goal int

const (
	GoalNone Goal = iota
	GoalLeft
	GoalRight
)

// Step advances the puck one tick: integrate, damp, clamp speed, resolve
// walls and goal mouths. Pure; every peer runs it identically each frame.
func Step(p *Puck, params Params, a Arena) Goal {
	p.X += p.VX
	p.Y += p.VY
	p.VX *= params.Friction
	p.VY *= params.Friction

	speed := math.Hypot(p.VX, p.VY)
	if speed > params.MaxSpeed {
		scale := params.MaxSpeed / speed
		p.VX *= scale
		p.VY *= scale
	}

	if p.Y-p.Radius < 0 {
		p.Y = p.Radius
		p.VY = -p.VY * params.Restitution
	}
	if p.Y+p.Radius > a.Height {
		p.Y = a.Height - p.Radius
		p.VY = -p.VY * params.Restitution
	}

	// A breach of the left or right boundary inside the goal mouth scores
	// for the opposing side; anywhere else it is a wall.
	half := a.GoalWidth / 2
	if p.X-p.Radius < 0 {
		if p.Y > a.Height/2-half && p.Y < a.Height/2+half {
			return GoalRight
		}
		p.X = p.Radius
		p.VX = -p.VX * params.Restitution
	}
	if p.X+p.Radius > a.Width {
		if p.Y > a.Height/2-half && p.Y < a.Height/2+half {
			return GoalLeft
		}
		p.X = a.Width - p.Radius
		p.VX = -p.VX * params.Restitution
	}
	return GoalNone
}
