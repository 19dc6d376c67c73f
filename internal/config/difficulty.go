package config

import "math"

// Progress is the game state difficulty is derived from.
type Progress struct {
	Level int    // Waves spawned so far
	Score int    // Current score
	Ticks uint64 // Simulation ticks since reset
}

// DifficultyManager calculates dynamic game parameters based on progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// Disabled managers report 0 so base values pass through unchanged.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		// The first wave is level 1 and plays at the initial level
		progress = float64(max(p.Level-1, 0)) / maxAt
	case "score":
		progress = float64(p.Score) / maxAt
	case "time":
		progress = float64(p.Ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// HostileSpeed returns the hostile speed in world units per tick.
// Speed grows from base to base * (1 + speedMultiplier).
func (d *DifficultyManager) HostileSpeed(base int, p Progress) int {
	level := d.Level(p)
	speed := int(math.Round(float64(base) * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)))
	return max(speed, 1)
}

// FireOdds returns the 1-in-N chance of a hostile firing on a tick.
// Fire rate grows by the same rule as speed, so odds shrink.
func (d *DifficultyManager) FireOdds(base int, p Progress) int {
	level := d.Level(p)
	odds := int(math.Round(float64(base) / (1.0 + level*d.cfg.Scaling.FireMultiplier)))
	return max(odds, 1)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
