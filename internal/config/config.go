// Package config provides YAML-based game configuration loading and
// difficulty presets for the flappy game.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Physics    Physics          `yaml:"physics"`
	Bird       Bird             `yaml:"bird"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	World      World            `yaml:"world"`
	Particles  Particles        `yaml:"particles"`
	Audio      Audio            `yaml:"audio"`
	Terminal   Terminal         `yaml:"terminal"`
	Storage    Storage          `yaml:"storage"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines the bird's motion parameters. Units are world pixels per tick.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpForce     float64 `yaml:"jump_force"`     // velocity set by a flap (negative is up)
	RotationScale float64 `yaml:"rotation_scale"` // degrees per unit of velocity
	MinRotation   float64 `yaml:"min_rotation"`
	MaxRotation   float64 `yaml:"max_rotation"`
}

// Bird defines the player sprite.
type Bird struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"`
	Size   float64 `yaml:"size"`
}

// Obstacles defines the pipe stream.
type Obstacles struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // ticks between pipes
	MinHeight     float64 `yaml:"min_height"`     // minimum pipe length above and below the gap
	CapHeight     float64 `yaml:"cap_height"`
	CapOverhang   float64 `yaml:"cap_overhang"`
}

// World defines the static scenery.
type World struct {
	GroundHeight float64 `yaml:"ground_height"`
	Width        float64 `yaml:"width"`  // window front end viewport
	Height       float64 `yaml:"height"` // window front end viewport
}

// Particles defines the cosmetic particle engine.
type Particles struct {
	Gravity        float64 `yaml:"gravity"`
	TimeStep       float64 `yaml:"time_step"` // life lost per tick
	ExplosionCount int     `yaml:"explosion_count"`
	BurstCount     int     `yaml:"burst_count"`
}

// Audio defines sound output.
type Audio struct {
	Muted      bool    `yaml:"muted"` // start muted
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// Terminal defines how world pixels map onto terminal cells.
type Terminal struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// Storage defines persistence keys.
type Storage struct {
	HighScoreKey string `yaml:"high_score_key"`
}

// DifficultyConfig scales the obstacle stream once per session.
type DifficultyConfig struct {
	Enabled bool          `yaml:"enabled"`
	Level   float64       `yaml:"level"` // -1.0 = easiest, 0 = as configured, 1.0 = hardest
	Scaling ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at |level| = 1.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // fraction of base speed added
	GapReduction      float64 `yaml:"gap_reduction"`      // pixels removed from the gap
	IntervalReduction int     `yaml:"interval_reduction"` // ticks removed from the spawn interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
	// DifficultyCustom names a config file level that matches no preset. It
	// cannot be selected from the command line.
	DifficultyCustom DifficultyPreset = "custom"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognised names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
}

// PresetFor names the preset a difficulty section corresponds to.
func PresetFor(d DifficultyConfig) DifficultyPreset {
	if !d.Enabled {
		return DifficultyFixed
	}
	for _, p := range []DifficultyPreset{DifficultyNormal, DifficultyEasy, DifficultyHard} {
		if clampF(d.Level, -1, 1) == LevelForPreset(p) {
			return p
		}
	}
	return DifficultyCustom
}

// LevelForPreset returns the difficulty level for a preset.
func LevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return -0.5
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// Validate reports the first setting that would make the game unplayable.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("config: obstacles.width must be positive, got %v", c.Obstacles.Width)
	case c.Obstacles.Gap <= 0:
		return fmt.Errorf("config: obstacles.gap must be positive, got %v", c.Obstacles.Gap)
	case c.Obstacles.Speed <= 0:
		return fmt.Errorf("config: obstacles.speed must be positive, got %v", c.Obstacles.Speed)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("config: obstacles.spawn_interval must be positive, got %d", c.Obstacles.SpawnInterval)
	case c.Obstacles.MinHeight < 0:
		return fmt.Errorf("config: obstacles.min_height must not be negative, got %v", c.Obstacles.MinHeight)
	case c.Bird.Size <= 0:
		return fmt.Errorf("config: bird.size must be positive, got %v", c.Bird.Size)
	case c.World.GroundHeight < 0:
		return fmt.Errorf("config: world.ground_height must not be negative, got %v", c.World.GroundHeight)
	case c.Particles.TimeStep <= 0:
		return fmt.Errorf("config: particles.time_step must be positive, got %v", c.Particles.TimeStep)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("config: terminal cell size must be positive, got %vx%v", c.Terminal.CellWidth, c.Terminal.CellHeight)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	case c.Storage.HighScoreKey == "":
		return errors.New("config: storage.high_score_key must not be empty")
	}
	return nil
}
