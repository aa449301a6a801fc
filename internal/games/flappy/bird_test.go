package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestBirdStepIntegration(t *testing.T) {
	p := config.DefaultFlappyConfig().Physics
	b := Bird{X: 150, Y: 300, Velocity: 2}

	for i := 0; i < 10; i++ {
		v0, y0 := b.Velocity, b.Y
		b.Step(p)
		if b.Velocity != v0+p.Gravity {
			t.Fatalf("tick %d: velocity = %v, expected %v", i, b.Velocity, v0+p.Gravity)
		}
		if b.Y != y0+b.Velocity {
			t.Fatalf("tick %d: y = %v, expected %v", i, b.Y, y0+b.Velocity)
		}
	}
	if b.X != 150 {
		t.Errorf("X should never change, got %v", b.X)
	}
}

func TestBirdJumpIsNotAdditive(t *testing.T) {
	p := config.DefaultFlappyConfig().Physics

	for _, v := range []float64{-20, -9, 0, 4.5, 30} {
		b := Bird{Velocity: v}
		b.Jump(p)
		if b.Velocity != p.JumpForce {
			t.Errorf("Jump from velocity %v = %v, expected %v", v, b.Velocity, p.JumpForce)
		}
	}
}

func TestBirdRotationClamp(t *testing.T) {
	p := config.DefaultFlappyConfig().Physics
	tests := []struct {
		velocity float64
		expected float64
	}{
		{-20, -30}, // clamped nose-up
		{-4.5, -13.5},
		{2, 6},
		{40, 90}, // clamped nose-down
	}

	for _, tc := range tests {
		// Step adds gravity before computing rotation
		b := Bird{Velocity: tc.velocity - p.Gravity}
		b.Step(p)
		if b.Rotation != tc.expected {
			t.Errorf("velocity %v: rotation = %v, expected %v", b.Velocity, b.Rotation, tc.expected)
		}
	}
}

func TestBirdBounds(t *testing.T) {
	b := Bird{X: 150, Y: 300}
	r := b.Bounds(40)
	if r.X != 130 || r.Y != 280 || r.W != 40 || r.H != 40 {
		t.Errorf("Bounds(40) = %+v, expected {130 280 40 40}", r)
	}
}
