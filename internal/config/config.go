// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders game.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all tunables of the simulation.
// Distances are in world units, rates are per simulation tick.
type InvadersConfig struct {
	World       WorldConfig      `yaml:"world"`
	Player      PlayerConfig     `yaml:"player"`
	Hostiles    HostileConfig    `yaml:"hostiles"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Waves       WaveConfig       `yaml:"waves"`
	Session     SessionConfig    `yaml:"session"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield size.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	StartX          int `yaml:"start_x"`
	StartY          int `yaml:"start_y"`
	Health          int `yaml:"health"`
	Speed           int `yaml:"speed"`
	Cooldown        int `yaml:"cooldown"`
	HealthBarGap    int `yaml:"health_bar_gap"`    // Space between sprite and bar
	HealthBarHeight int `yaml:"health_bar_height"` // Bar thickness
	BottomMargin    int `yaml:"bottom_margin"`     // Keeps the bar on screen
}

// HostileConfig defines hostile ships and where waves appear.
type HostileConfig struct {
	Speed    int `yaml:"speed"`
	Health   int `yaml:"health"`
	Cooldown int `yaml:"cooldown"`
	FireOdds int `yaml:"fire_odds"` // A hostile fires with probability 1/FireOdds per tick

	SpawnMinX        int `yaml:"spawn_min_x"`
	SpawnRightMargin int `yaml:"spawn_right_margin"` // x < world width - margin
	SpawnMinY        int `yaml:"spawn_min_y"`
	SpawnMaxY        int `yaml:"spawn_max_y"` // Exclusive
}

// ProjectileConfig defines laser behaviour for every vessel.
type ProjectileConfig struct {
	Speed  int `yaml:"speed"`
	Damage int `yaml:"damage"`
}

// WaveConfig defines wave growth and scoring.
type WaveConfig struct {
	InitialLength int `yaml:"initial_length"`
	Growth        int `yaml:"growth"`
	KillScore     int `yaml:"kill_score"`
	RamScore      int `yaml:"ram_score"`
	RamDamage     int `yaml:"ram_damage"`
}

// SessionConfig defines lives and the end-of-game delay.
type SessionConfig struct {
	Lives       int `yaml:"lives"`
	LostSeconds int `yaml:"lost_seconds"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Wave/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to hostile speed factor at max difficulty
	FireMultiplier  float64 `yaml:"fire_multiplier"`  // Added to hostile fire rate factor at max difficulty
}

// Validate reports the first setting that would make the simulation
// ill-defined.
func (c InvadersConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %dx%d", c.World.Width, c.World.Height)
	check(c.Player.Health > 0, "player.health must be positive")
	check(c.Player.Speed > 0, "player.speed must be positive")
	check(c.Player.Cooldown > 0, "player.cooldown must be positive")
	check(c.Hostiles.Speed > 0, "hostiles.speed must be positive")
	check(c.Hostiles.Cooldown > 0, "hostiles.cooldown must be positive")
	check(c.Hostiles.FireOdds > 0, "hostiles.fire_odds must be positive")
	check(c.World.Width-c.Hostiles.SpawnRightMargin > c.Hostiles.SpawnMinX,
		"hostile spawn x range is empty: [%d, %d)", c.Hostiles.SpawnMinX, c.World.Width-c.Hostiles.SpawnRightMargin)
	check(c.Hostiles.SpawnMaxY > c.Hostiles.SpawnMinY,
		"hostile spawn y range is empty: [%d, %d)", c.Hostiles.SpawnMinY, c.Hostiles.SpawnMaxY)
	check(c.Projectiles.Speed > 0, "projectiles.speed must be positive")
	check(c.Waves.InitialLength >= 0, "waves.initial_length must not be negative")
	check(c.Waves.Growth > 0, "waves.growth must be positive")
	check(c.Session.Lives > 0, "session.lives must be positive")
	check(c.Session.LostSeconds >= 0, "session.lost_seconds must not be negative")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. An empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
