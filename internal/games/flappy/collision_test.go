package flappy

import "testing"

func TestHitsWorld(t *testing.T) {
	field := defaultField // ground line at 500

	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"mid air", 300, false},
		{"just above ground", 479, false},
		{"touching ground", 480, true},
		{"below ground", 520, true},
		{"just below ceiling", 21, false},
		{"touching ceiling", 20, true},
		{"above ceiling", -5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Bird{X: 150, Y: tc.y}
			if got := HitsWorld(b, 40, field); got != tc.expected {
				t.Errorf("HitsWorld(y=%v) = %v, expected %v", tc.y, got, tc.expected)
			}
		})
	}
}

func TestHitsPipe(t *testing.T) {
	p := Pipe{X: 140, GapTop: 200}
	const width, gap = 80.0, 180.0

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside gap", 150, 290, false},
		{"gap edges touching", 150, 220, false},
		{"clipping upper pipe", 150, 219, true},
		{"clipping lower pipe", 150, 361, true},
		{"well above gap", 150, 150, true},
		{"above the viewport", 150, -50, true},
		{"left of pipe", 100, 150, false},
		{"touching left face", 120, 150, false},
		{"overlapping left face", 121, 150, true},
		{"touching right face", 240, 150, false},
		{"right of pipe", 300, 450, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Bird{X: tc.x, Y: tc.y}
			if got := HitsPipe(b, 40, p, width, gap); got != tc.expected {
				t.Errorf("HitsPipe(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCollides(t *testing.T) {
	pipes := []Pipe{
		{X: 600, GapTop: 100},
		{X: 140, GapTop: 200},
	}

	if Collides(Bird{X: 150, Y: 290}, 40, pipes, 80, 180, defaultField) {
		t.Error("bird inside the gap should not collide")
	}
	if !Collides(Bird{X: 150, Y: 150}, 40, pipes, 80, 180, defaultField) {
		t.Error("bird against the second pipe should collide")
	}
	if !Collides(Bird{X: 150, Y: 490}, 40, nil, 80, 180, defaultField) {
		t.Error("bird on the ground should collide without pipes")
	}
}
