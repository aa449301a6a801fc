package config

import "math"

// DifficultyManager derives session constants from a difficulty level.
// The values are fixed for a whole session: obstacle speed never ramps.
type DifficultyManager struct {
	cfg   DifficultyConfig
	level float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		level: clampF(cfg.Level, -1.0, 1.0),
	}
}

// Level returns the effective level, 0 when scaling is disabled.
func (d *DifficultyManager) Level() float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return d.level
}

// Speed returns the pipe speed for the session.
func (d *DifficultyManager) Speed(baseSpeed float64) float64 {
	result := baseSpeed * (1.0 + d.Level()*d.cfg.Scaling.SpeedMultiplier)
	return math.Max(result, 0.5)
}

// GapSize returns the gap height for the session.
func (d *DifficultyManager) GapSize(baseGap float64) float64 {
	result := baseGap - d.Level()*d.cfg.Scaling.GapReduction
	if result < 100 { // Minimum playable gap for a 40px bird
		result = math.Min(baseGap, 100)
	}
	return result
}

// SpawnInterval returns the ticks between pipes for the session.
func (d *DifficultyManager) SpawnInterval(baseInterval int) int {
	result := baseInterval - int(math.Round(d.Level()*float64(d.cfg.Scaling.IntervalReduction)))
	if result < 40 { // Minimum playable spacing
		result = min(baseInterval, 40)
	}
	return result
}

// Apply writes the scaled values into the obstacle settings.
func (d *DifficultyManager) Apply(o *Obstacles) {
	o.Speed = d.Speed(o.Speed)
	o.Gap = d.GapSize(o.Gap)
	o.SpawnInterval = d.SpawnInterval(o.SpawnInterval)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
