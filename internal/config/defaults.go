package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
// It mirrors defaults/invaders.yaml and is used if the embedded file
// cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		World: WorldConfig{
			Width:  750,
			Height: 750,
		},
		Player: PlayerConfig{
			StartX:          300,
			StartY:          650,
			Health:          100,
			Speed:           5,
			Cooldown:        60,
			HealthBarGap:    10,
			HealthBarHeight: 10,
			BottomMargin:    15,
		},
		Hostiles: HostileConfig{
			Speed:            1,
			Health:           100,
			Cooldown:         60,
			FireOdds:         240, // 2 * 120fps, one shot per two seconds on average
			SpawnMinX:        50,
			SpawnRightMargin: 100,
			SpawnMinY:        -1500,
			SpawnMaxY:        -100,
		},
		Projectiles: ProjectileConfig{
			Speed:  4,
			Damage: 10,
		},
		Waves: WaveConfig{
			InitialLength: 3,
			Growth:        3,
			KillScore:     5,
			RamScore:      5,
			RamDamage:     10,
		},
		Session: SessionConfig{
			Lives:       5,
			LostSeconds: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				FireMultiplier:  2.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders":
		return defaultInvadersYAML
	default:
		return nil
	}
}
