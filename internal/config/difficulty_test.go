package config

import "testing"

func TestDifficultyDisabledPassesBaseThrough(t *testing.T) {
	d := NewDifficultyManager(DefaultInvadersConfig().Difficulty)

	p := Progress{Level: 50, Score: 10000, Ticks: 1 << 20}
	if got := d.HostileSpeed(1, p); got != 1 {
		t.Errorf("HostileSpeed = %d, expected 1", got)
	}
	if got := d.FireOdds(240, p); got != 240 {
		t.Errorf("FireOdds = %d, expected 240", got)
	}
	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DefaultInvadersConfig().Difficulty
	cfg.Enabled = true
	cfg.Progression = ProgressionConfig{Type: "level", MaxAt: 10}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		level int
		want  float64
	}{
		{0, 0.0},
		{1, 0.0},
		{6, 0.5},
		{11, 1.0},
		{40, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(Progress{Level: tc.level}); got != tc.want {
			t.Errorf("Level(wave %d) = %v, expected %v", tc.level, got, tc.want)
		}
	}
}

func TestDifficultyScaling(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, FireMultiplier: 2.0},
	}
	d := NewDifficultyManager(cfg)

	maxed := Progress{Score: 100}
	if got := d.HostileSpeed(2, maxed); got != 4 {
		t.Errorf("HostileSpeed at max = %d, expected 4", got)
	}
	if got := d.FireOdds(240, maxed); got != 80 {
		t.Errorf("FireOdds at max = %d, expected 80", got)
	}

	d.SetInitialLevel(0.5)
	if got := d.Level(Progress{}); got != 0.5 {
		t.Errorf("Level with initial 0.5 = %v", got)
	}

	d.SetEnabled(false)
	if got := d.FireOdds(1, maxed); got != 1 {
		t.Errorf("FireOdds should never drop below 1, got %d", got)
	}
}
