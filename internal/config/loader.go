package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// appDir is the per-user directory under $HOME.
const appDir = ".invaders"

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. The result is validated.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	cfg, err := defaultInvaders()
	if err != nil {
		return cfg, err
	}

	// Custom path must exist
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("invaders.yaml"), filepath.Join("configs", "invaders.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			// A broken optional file falls through to the next location
			continue
		}
		return candidate, candidate.Validate()
	}

	return cfg, cfg.Validate()
}

// defaultInvaders decodes the embedded defaults.
func defaultInvaders() (InvadersConfig, error) {
	var cfg InvadersConfig
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, appDir, "configs", filename)
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust session based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 7
		cfg.Player.Health = 150
	case DifficultyHard:
		cfg.Session.Lives = 3
	}
}
