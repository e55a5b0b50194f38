package game

import "time"

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Arena is the playing field geometry, fixed per match.
type Arena struct {
	Width     float64
	Height    float64
	GoalWidth float64
}

// Puck is the shared simulation object. The host's copy is ground truth;
// every other peer keeps a predicted shadow of it.
type Puck struct {
	X, Y      float64
	VX, VY    float64
	Radius    float64
	LastHitAt time.Time
}

// NewPuck returns a puck at rest in the center of the arena.
func NewPuck(a Arena) Puck {
	return Puck{X: a.Width / 2, Y: a.Height / 2, Radius: PuckRadius}
}

// Reset recenters the puck and kills its velocity, as after a goal.
func (p *Puck) Reset(a Arena) {
	p.X = a.Width / 2
	p.Y = a.Height / 2
	p.VX = 0
	p.VY = 0
}

// Params select the friction variant and caps for one simulation.
type Params struct {
	Friction    float64
	MaxSpeed    float64
	Restitution float64
}

// AuthoritativeParams is the host/server-trusted tuning.
func AuthoritativeParams() Params {
	return Params{
		Friction:    FrictionAuthoritative,
		MaxSpeed:    PuckMaxSpeed,
		Restitution: WallRestitution,
	}
}

// PrototypeParams is the lighter damping used by the offline practice sim.
func PrototypeParams() Params {
	return Params{
		Friction:    FrictionPrototype,
		MaxSpeed:    PuckMaxSpeed,
		Restitution: WallRestitution,
	}
}
