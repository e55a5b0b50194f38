package game

const (
	PuckRadius   = 15.0
	PaddleRadius = 25.0

	PuckMaxSpeed = 15.0
	HitImpulse   = 12.0 // paddle strikes set puck speed to this, not add to it

	// FrictionPrototype is the light damping of the offline practice sim;
	// the trusted host sim runs heavier damping. Which one applies is a
	// Params field.
	FrictionPrototype     = 0.99
	FrictionAuthoritative = 0.985

	WallRestitution = 0.9 // bounces bleed a little speed
)
