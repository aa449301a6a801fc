package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// pipeReach stands in for the off-screen end of the lower pipe.
const pipeReach = 1e9

// HitsWorld reports whether a bird of the given size touches the ground line
// or the top of the viewport.
func HitsWorld(b Bird, size float64, field Playfield) bool {
	half := size / 2
	return b.Y+half >= field.GroundY() || b.Y-half <= 0
}

// HitsPipe reports whether the bird overlaps the pipe horizontally while
// being outside its gap vertically.
func HitsPipe(b Bird, size float64, p Pipe, width, gap float64) bool {
	box := b.Bounds(size)
	// The upper pipe starts at the viewport top, or above a bird that left it.
	y0 := math.Min(0, box.Y)
	top := core.NewRect(p.X, y0, width, p.GapTop-y0)
	bottom := core.NewRect(p.X, p.GapTop+gap, width, pipeReach)
	return box.Intersects(top) || box.Intersects(bottom)
}

// Collides is the full collision test for one tick.
func Collides(b Bird, size float64, pipes []Pipe, width, gap float64, field Playfield) bool {
	if HitsWorld(b, size, field) {
		return true
	}
	for _, p := range pipes {
		if HitsPipe(b, size, p, width, gap) {
			return true
		}
	}
	return false
}
