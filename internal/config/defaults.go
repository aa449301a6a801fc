package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: Physics{
			Gravity:       0.5,
			JumpForce:     -9,
			RotationScale: 3,
			MinRotation:   -30,
			MaxRotation:   90,
		},
		Bird: Bird{
			X:      150,
			StartY: 300,
			Size:   40,
		},
		Obstacles: Obstacles{
			Width:         80,
			Gap:           180,
			Speed:         3,
			SpawnInterval: 100,
			MinHeight:     100,
			CapHeight:     30,
			CapOverhang:   5,
		},
		World: World{
			GroundHeight: 100,
			Width:        800,
			Height:       600,
		},
		Particles: Particles{
			Gravity:        0.2,
			TimeStep:       0.016,
			ExplosionCount: 20,
			BurstCount:     10,
		},
		Audio: Audio{
			Muted:      true,
			Volume:     0.5,
			SampleRate: 48000,
		},
		Terminal: Terminal{
			CellWidth:  10,
			CellHeight: 20,
		},
		Storage: Storage{
			HighScoreKey: "flappyModiHighScore",
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Level:   0,
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				GapReduction:      40,
				IntervalReduction: 20,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
