// Package particles implements the short-lived cosmetic bursts drawn on top
// of the game: the explosion when the bird crashes and the sparkle when a pipe
// is cleared. Particles never influence the simulation.
package particles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Particle is a single fading dot.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Color   core.Color
}

// Engine defaults.
const (
	DefaultGravity  = 0.2
	DefaultTimeStep = 0.016

	ExplosionCount = 20
	BurstCount     = 10
)

// ExplosionColor is used when the caller does not pick one.
var ExplosionColor = core.Hex("#FF5722")

// Explosion returns count particles fanned evenly around (x, y).
func Explosion(rng *rand.Rand, x, y float64, count int, color core.Color) []Particle {
	if count <= 0 {
		count = ExplosionCount
	}
	if color == (core.Color{}) {
		color = ExplosionColor
	}
	ps := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := 3 + rng.Float64()*3
		ps = append(ps, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    1,
			MaxLife: 1,
			Size:    3 + rng.Float64()*3,
			Color:   color,
		})
	}
	return ps
}

// ScoreBurst returns count golden particles rising from around (x, y).
func ScoreBurst(rng *rand.Rand, x, y float64, count int) []Particle {
	if count <= 0 {
		count = BurstCount
	}
	ps := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		ps = append(ps, Particle{
			X:       x + (rng.Float64()-0.5)*30,
			Y:       y + (rng.Float64()-0.5)*30,
			VX:      (rng.Float64() - 0.5) * 2,
			VY:      -2 - rng.Float64()*2,
			Life:    1,
			MaxLife: 1,
			Size:    4 + rng.Float64()*4,
			Color:   core.HSL(45+rng.Float64()*30, 1, 0.5),
		})
	}
	return ps
}

// Update advances every particle by one step and returns the survivors in a
// new slice. The input is not modified.
func Update(ps []Particle, gravity, dt float64) []Particle {
	out := make([]Particle, 0, len(ps))
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.VY += gravity
		p.Life -= dt
		if p.Life > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Render draws each particle as a circle that shrinks and fades with its
// remaining life.
func Render(dst core.Surface, ps []Particle) {
	for _, p := range ps {
		alpha := 1.0
		if p.MaxLife > 0 {
			alpha = core.ClampF(p.Life/p.MaxLife, 0, 1)
		}
		if alpha <= 0 {
			continue
		}
		dst.FillCircle(p.X, p.Y, p.Size*alpha, p.Color.WithAlpha(alpha))
	}
}
