package invaders

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// fixedRand returns the same value for every draw.
type fixedRand struct{ v int }

func (r fixedRand) Intn(n int) int { return min(r.v, n-1) }

func TestWaveLengthProgression(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	wc := NewWaveController(cfg, testAtlas(t), rand.New(rand.NewSource(7)))

	if wc.WaveLength() != 3 || wc.Level() != 0 || wc.Lives() != 5 || wc.Score() != 0 {
		t.Fatalf("unexpected initial state: length=%d level=%d lives=%d score=%d",
			wc.WaveLength(), wc.Level(), wc.Lives(), wc.Score())
	}

	for i, want := range []int{6, 9, 12, 15} {
		n := wc.SpawnIfCleared()
		if n != want || wc.WaveLength() != want {
			t.Fatalf("wave %d: spawned %d, length %d, expected %d", i+1, n, wc.WaveLength(), want)
		}
		if len(wc.Hostiles()) != want {
			t.Fatalf("wave %d: %d hostiles active, expected %d", i+1, len(wc.Hostiles()), want)
		}
		if wc.Level() != i+1 {
			t.Errorf("wave %d: level = %d", i+1, wc.Level())
		}

		if wc.SpawnIfCleared() != 0 {
			t.Fatal("no spawn while hostiles remain")
		}

		for _, h := range wc.Hostiles() {
			if h.X < 50 || h.X >= 650 {
				t.Errorf("spawn x %d outside [50, 650)", h.X)
			}
			if h.Y < -1500 || h.Y >= -100 {
				t.Errorf("spawn y %d outside [-1500, -100)", h.Y)
			}
		}

		wc.hostiles = nil
	}
}

func TestWaveSpawnColorsFromRand(t *testing.T) {
	wc := NewWaveController(config.DefaultInvadersConfig(), testAtlas(t), fixedRand{v: 2})
	wc.SpawnIfCleared()

	for _, h := range wc.Hostiles() {
		if h.Color != HostileBlue {
			t.Errorf("color = %s, expected blue", h.Color)
		}
		if h.X != 52 || h.Y != -1498 {
			t.Errorf("position = (%d, %d), expected (52, -1498)", h.X, h.Y)
		}
	}
}

func TestWaveKillScoresFive(t *testing.T) {
	a := testAtlas(t)
	wc := NewWaveController(config.DefaultInvadersConfig(), a, fixedRand{v: 1})
	player := NewPlayer(config.DefaultInvadersConfig().Player, a)

	target := testHostile(t, 200, 200)
	wc.hostiles = []*Hostile{target}
	player.projectiles = append(player.projectiles, NewProjectile(200, 200, player.laser))

	kills := wc.ResolvePlayerFire(player)
	if kills != 1 {
		t.Fatalf("kills = %d, expected 1", kills)
	}
	if wc.Score() != 5 {
		t.Errorf("score = %d, expected 5", wc.Score())
	}
	if len(wc.Hostiles()) != 0 || len(player.Projectiles()) != 0 {
		t.Errorf("expected hostile and projectile removed, have %d and %d",
			len(wc.Hostiles()), len(player.Projectiles()))
	}
}

func TestWaveHostileFireOdds(t *testing.T) {
	a := testAtlas(t)
	player := NewPlayer(config.DefaultInvadersConfig().Player, a)

	// Intn(240) == 0 fires
	wc := NewWaveController(config.DefaultInvadersConfig(), a, fixedRand{v: 0})
	wc.hostiles = []*Hostile{testHostile(t, 100, 100)}
	if out := wc.UpdateHostiles(player, 1); out.Shots != 1 {
		t.Errorf("shots = %d, expected 1", out.Shots)
	}

	wc = NewWaveController(config.DefaultInvadersConfig(), a, fixedRand{v: 1})
	wc.hostiles = []*Hostile{testHostile(t, 100, 100)}
	if out := wc.UpdateHostiles(player, 1); out.Shots != 0 {
		t.Errorf("shots = %d, expected 0", out.Shots)
	}
}

func TestWaveHostileEscapes(t *testing.T) {
	a := testAtlas(t)
	wc := NewWaveController(config.DefaultInvadersConfig(), a, fixedRand{v: 1})
	player := NewPlayer(config.DefaultInvadersConfig().Player, a)

	escaping := testHostile(t, 100, 700) // bottom edge at 750
	staying := testHostile(t, 500, 100)
	wc.hostiles = []*Hostile{escaping, staying}

	out := wc.UpdateHostiles(player, 1)
	if out.Escaped != 1 || wc.Lives() != 4 {
		t.Errorf("escaped=%d lives=%d, expected 1 and 4", out.Escaped, wc.Lives())
	}
	if len(wc.Hostiles()) != 1 || wc.Hostiles()[0] != staying {
		t.Error("only the escaping hostile should be removed")
	}
	if staying.Y != 101 {
		t.Errorf("hostile should descend by 1, y = %d", staying.Y)
	}
	if wc.Score() != 0 {
		t.Error("escapes should not score")
	}
}

func TestWaveDifficultyScalesHostileSpeed(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	config.ApplyInvadersPreset(&cfg, config.DifficultyHard)
	a := testAtlas(t)

	wc := NewWaveController(cfg, a, fixedRand{v: 1})
	wc.level = 11
	h := testHostile(t, 100, 100)
	wc.hostiles = []*Hostile{h}

	wc.UpdateHostiles(NewPlayer(cfg.Player, a), 1)
	if h.Y != 102 {
		t.Errorf("hostile y = %d, expected 102 at max difficulty", h.Y)
	}
}
