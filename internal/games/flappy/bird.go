package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player. X never changes during a session.
type Bird struct {
	X, Y     float64 // center, world pixels
	Velocity float64 // vertical, positive is down
	Rotation float64 // degrees, cosmetic only
}

// Step integrates one tick: gravity, position, then rotation.
func (b *Bird) Step(p config.Physics) {
	b.Velocity += p.Gravity
	b.Y += b.Velocity
	b.Rotation = core.ClampF(b.Velocity*p.RotationScale, p.MinRotation, p.MaxRotation)
}

// Jump replaces the velocity with the jump force. It does not accumulate.
func (b *Bird) Jump(p config.Physics) {
	b.Velocity = p.JumpForce
}

// Bounds returns the square hitbox of the given size.
func (b Bird) Bounds(size float64) core.Rect {
	return core.RectCentered(b.X, b.Y, size, size)
}
