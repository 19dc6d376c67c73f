package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points the user config dir at an empty temp dir.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := defaultInvaders()
	if err != nil {
		t.Fatalf("defaultInvaders() failed: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded defaults differ from DefaultInvadersConfig():\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadInvadersDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if cfg.World.Width != 750 || cfg.Player.StartY != 650 || cfg.Hostiles.FireOdds != 240 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Difficulty.Enabled {
		t.Error("difficulty scaling should be off by default")
	}
}

func TestLoadInvadersPartialOverride(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "session:\n  lives: 2\nprojectiles:\n  damage: 25\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if cfg.Session.Lives != 2 || cfg.Projectiles.Damage != 25 {
		t.Errorf("overrides not applied: lives=%d damage=%d", cfg.Session.Lives, cfg.Projectiles.Damage)
	}
	if cfg.Player.Health != 100 || cfg.Waves.Growth != 3 {
		t.Error("keys absent from the file should keep their defaults")
	}
}

func TestLoadInvadersUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, appDir, "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "invaders.yaml"), []byte("waves:\n  growth: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if cfg.Waves.Growth != 4 {
		t.Errorf("user config not picked up, growth = %d", cfg.Waves.Growth)
	}
}

func TestLoadInvadersErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"bad yaml", write("bad.yaml", "world: [1, 2"), "failed to parse"},
		{"invalid values", write("invalid.yaml", "hostiles:\n  fire_odds: 0\n"), "fire_odds"},
		{"empty spawn range", write("spawn.yaml", "hostiles:\n  spawn_min_y: 0\n  spawn_max_y: 0\n"), "spawn y range"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadInvaders(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		lives   int
	}{
		{"", false, 0.0, 5},
		{DifficultyFixed, false, 0.0, 5},
		{DifficultyEasy, true, 0.0, 7},
		{DifficultyNormal, true, 0.3, 5},
		{DifficultyHard, true, 0.7, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			ApplyInvadersPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("initial level = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Session.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Session.Lives, tc.lives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}
