package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

var defaultField = Playfield{Width: 800, Height: 600, GroundHeight: 100}

func newTestStream(seed int64) *PipeStream {
	return NewPipeStream(seed, config.DefaultFlappyConfig().Obstacles)
}

func TestPipeStreamCadence(t *testing.T) {
	s := newTestStream(1)

	var spawnedAt []int
	for i := 1; i <= 350; i++ {
		if s.Tick(defaultField) {
			spawnedAt = append(spawnedAt, i)
		}
	}

	expected := []int{100, 200, 300}
	if len(spawnedAt) != len(expected) {
		t.Fatalf("spawned at %v, expected %v", spawnedAt, expected)
	}
	for i := range expected {
		if spawnedAt[i] != expected[i] {
			t.Errorf("spawn %d at tick %d, expected %d", i, spawnedAt[i], expected[i])
		}
	}
	for _, p := range s.Pipes() {
		if p.X != defaultField.Width {
			t.Errorf("pipe spawned at x=%v, expected right edge %v", p.X, defaultField.Width)
		}
	}
}

func TestPipeStreamSpawnRange(t *testing.T) {
	s := newTestStream(99)

	lo, hi := s.SpawnRange(defaultField)
	if lo != 100 || hi != 220 {
		t.Fatalf("SpawnRange = [%v, %v], expected [100, 220]", lo, hi)
	}

	for i := 0; i < 500; i++ {
		s.Spawn(defaultField)
	}
	for _, p := range s.Pipes() {
		if p.GapTop < lo || p.GapTop > hi {
			t.Fatalf("gap top %v outside [%v, %v]", p.GapTop, lo, hi)
		}
	}
}

func TestPipeStreamShortViewportClamps(t *testing.T) {
	s := newTestStream(1)

	tests := []struct {
		name   string
		height float64
		lo, hi float64
	}{
		{"margins shrink", 300, 5, 15},
		{"gap larger than sky", 250, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			field := Playfield{Width: 800, Height: tc.height, GroundHeight: 100}
			lo, hi := s.SpawnRange(field)
			if lo != tc.lo || hi != tc.hi {
				t.Errorf("SpawnRange = [%v, %v], expected [%v, %v]", lo, hi, tc.lo, tc.hi)
			}
			if lo < 0 || hi < lo {
				t.Errorf("range must be non-negative and ordered, got [%v, %v]", lo, hi)
			}
		})
	}
}

func TestPipeStreamDefaultTerminalVariesGaps(t *testing.T) {
	s := newTestStream(7)
	w, h := core.WorldSize(80, 23, 10, 20)
	field := Playfield{Width: w, Height: h, GroundHeight: 100}

	lo, hi := s.SpawnRange(field)
	if lo != 45 || hi != 135 {
		t.Errorf("SpawnRange = [%v, %v], expected [45, 135]", lo, hi)
	}

	seen := make(map[float64]bool)
	for i := 0; i < 20; i++ {
		s.Spawn(field)
	}
	for _, p := range s.Pipes() {
		if p.GapTop < lo || p.GapTop > hi {
			t.Errorf("gap top %v outside [%v, %v]", p.GapTop, lo, hi)
		}
		if p.GapTop+s.Gap() > field.GroundY() {
			t.Errorf("gap bottom %v below ground %v", p.GapTop+s.Gap(), field.GroundY())
		}
		seen[p.GapTop] = true
	}
	if len(seen) < 2 {
		t.Errorf("20 spawns produced %d distinct gap tops, expected variation", len(seen))
	}
}

func TestPipeStreamResizeAffectsNextSpawn(t *testing.T) {
	s := newTestStream(1)
	for i := 0; i < 99; i++ {
		s.Tick(defaultField)
	}

	wide := Playfield{Width: 1200, Height: 900, GroundHeight: 100}
	if !s.Tick(wide) {
		t.Fatal("expected a spawn on tick 100")
	}
	p := s.Pipes()[0]
	if p.X != 1200 {
		t.Errorf("spawn x = %v, expected live width 1200", p.X)
	}
	lo, hi := s.SpawnRange(wide)
	if p.GapTop < lo || p.GapTop > hi || hi != 520 {
		t.Errorf("gap top %v not drawn from live range [%v, %v]", p.GapTop, lo, hi)
	}
}

func TestPipeStreamScoresOnce(t *testing.T) {
	s := newTestStream(1)
	s.pipes = append(s.pipes, Pipe{X: 300, GapTop: 150})

	birdLeft := 130.0
	total := 0
	firstScoredX := 0.0
	for i := 0; i < 200; i++ {
		n := s.Advance(birdLeft)
		if n > 0 && total == 0 {
			firstScoredX = s.pipes[0].X
		}
		total += n
	}

	if total != 1 {
		t.Errorf("pipe scored %d times, expected exactly 1", total)
	}
	// Scored on the first tick the trailing edge is strictly left of the bird
	if firstScoredX+80 >= birdLeft || firstScoredX+80+3 < birdLeft {
		t.Errorf("scored with trailing edge at %v, expected first tick below %v", firstScoredX+80, birdLeft)
	}
}

func TestPipeStreamRecycling(t *testing.T) {
	s := newTestStream(1)
	// Trailing edges after one advance: 1, 0, -1
	s.pipes = append(s.pipes,
		Pipe{X: -76, GapTop: 100},
		Pipe{X: -77, GapTop: 110},
		Pipe{X: -78, GapTop: 120},
		Pipe{X: 400, GapTop: 130},
	)

	s.Advance(130)

	pipes := s.Pipes()
	if len(pipes) != 3 {
		t.Fatalf("expected 3 survivors, got %d", len(pipes))
	}
	// Survivors keep their relative order
	expected := []float64{100, 110, 130}
	for i, p := range pipes {
		if p.GapTop != expected[i] {
			t.Errorf("survivor %d gapTop = %v, expected %v", i, p.GapTop, expected[i])
		}
	}
}

func TestPipeStreamNeverDropsVisiblePipes(t *testing.T) {
	s := newTestStream(5)
	for i := 0; i < 2000; i++ {
		before := append([]Pipe(nil), s.Pipes()...)
		s.Tick(defaultField)
		s.Advance(130)

		remaining := 0
		for _, p := range s.Pipes() {
			if p.X+80 >= 0 {
				remaining++
			}
		}
		// Every pre-existing pipe that is still partly on screen must survive
		visible := 0
		for _, p := range before {
			if p.X-3+80 >= 0 {
				visible++
			}
		}
		if remaining < visible {
			t.Fatalf("tick %d: %d visible pipes before, %d after", i, visible, remaining)
		}
	}
}

func TestPipeStreamDeterminism(t *testing.T) {
	a, b := newTestStream(42), newTestStream(42)
	for i := 0; i < 1000; i++ {
		a.Tick(defaultField)
		a.Advance(130)
		b.Tick(defaultField)
		b.Advance(130)
	}
	pa, pb := a.Pipes(), b.Pipes()
	if len(pa) != len(pb) {
		t.Fatalf("pipe counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Errorf("pipe %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestPipeStreamClearKeepsSequence(t *testing.T) {
	s := newTestStream(7)
	s.Spawn(defaultField)
	first := s.Pipes()[0].GapTop

	s.Clear()
	if len(s.Pipes()) != 0 || s.Frame() != 0 {
		t.Fatal("Clear should drop pipes and rewind the frame counter")
	}
	s.Spawn(defaultField)
	if s.Pipes()[0].GapTop == first {
		t.Error("Clear should not reseed the RNG")
	}

	s.Reset(7)
	s.Spawn(defaultField)
	if s.Pipes()[0].GapTop != first {
		t.Error("Reset with the same seed should replay the sequence")
	}
}
