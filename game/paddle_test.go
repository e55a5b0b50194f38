package game

import (
	"math"
	"testing"
	"time"
)

func TestCollideSeparatesAndKicks(t *testing.T) {
	pad := Paddle{ID: "p1", X: 100, Y: 100, Radius: PaddleRadius, Side: SideLeft}
	p := Puck{X: 110, Y: 100, VX: -3, VY: 2, Radius: PuckRadius}

	now := time.Now()
	if !Collide(&pad, &p, now) {
		t.Fatalf("expected contact")
	}

	dist := math.Hypot(p.X-pad.X, p.Y-pad.Y)
	if dist < pad.Radius+p.Radius-1e-9 {
		t.Fatalf("still overlapping after separation: dist=%f", dist)
	}

	// Kick replaces velocity: fixed magnitude along the line of centers.
	speed := math.Hypot(p.VX, p.VY)
	if math.Abs(speed-HitImpulse) > 1e-9 {
		t.Fatalf("kick speed = %f, want %f", speed, HitImpulse)
	}
	if p.VX <= 0 {
		t.Fatalf("kick should push puck away from paddle, vx=%f", p.VX)
	}
	if !p.LastHitAt.Equal(now) {
		t.Fatalf("LastHitAt not stamped")
	}
}

func TestCollideMissesAtDistance(t *testing.T) {
	pad := Paddle{X: 100, Y: 100, Radius: PaddleRadius}
	p := Puck{X: 300, Y: 300, VX: 1, VY: 1, Radius: PuckRadius}

	if Collide(&pad, &p, time.Now()) {
		t.Fatalf("unexpected contact")
	}
	if p.VX != 1 || p.VY != 1 {
		t.Fatalf("velocity changed on miss: vx=%f vy=%f", p.VX, p.VY)
	}
}

func TestPaddleClampToOwnHalf(t *testing.T) {
	a := Arena{Width: 1200, Height: 600, GoalWidth: 220}

	left := Paddle{X: 900, Y: -50, Radius: PaddleRadius, Side: SideLeft}
	left.Clamp(a)
	if left.X+left.Radius > a.Width/2 {
		t.Fatalf("left paddle crossed center: x=%f", left.X)
	}
	if left.Y-left.Radius < 0 {
		t.Fatalf("left paddle above arena: y=%f", left.Y)
	}

	right := Paddle{X: 100, Y: 700, Radius: PaddleRadius, Side: SideRight}
	right.Clamp(a)
	if right.X-right.Radius < a.Width/2 {
		t.Fatalf("right paddle crossed center: x=%f", right.X)
	}
	if right.Y+right.Radius > a.Height {
		t.Fatalf("right paddle below arena: y=%f", right.Y)
	}
}

func TestPuckReset(t *testing.T) {
	a := Arena{Width: 1200, Height: 600, GoalWidth: 220}
	p := Puck{X: 10, Y: 10, VX: 5, VY: -5, Radius: PuckRadius}
	p.Reset(a)
	if p.X != a.Width/2 || p.Y != a.Height/2 || p.VX != 0 || p.VY != 0 {
		t.Fatalf("reset puck = %+v", p)
	}
}
