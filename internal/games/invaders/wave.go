package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Rand is the random source used for spawning and hostile fire.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Outcome counts what happened to hostiles during one update.
type Outcome struct {
	Rammed     int // Hostiles that collided with the player
	Escaped    int // Hostiles that passed the bottom edge
	PlayerHits int // Hostile projectiles that hit the player
	Shots      int // Hostile projectiles fired
}

// WaveController owns the hostile collection and the session counters.
type WaveController struct {
	cfg        config.InvadersConfig
	atlas      *assets.Atlas
	rng        Rand
	difficulty *config.DifficultyManager

	hostiles   []*Hostile
	score      int
	lives      int
	level      int
	waveLength int
}

// NewWaveController creates a controller in its initial state.
func NewWaveController(cfg config.InvadersConfig, atlas *assets.Atlas, rng Rand) *WaveController {
	return &WaveController{
		cfg:        cfg,
		atlas:      atlas,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		lives:      cfg.Session.Lives,
		waveLength: cfg.Waves.InitialLength,
	}
}

// Hostiles returns the active hostiles. The slice must not be modified.
func (w *WaveController) Hostiles() []*Hostile { return w.hostiles }

// Score returns the current score.
func (w *WaveController) Score() int { return w.score }

// Lives returns the remaining lives.
func (w *WaveController) Lives() int { return w.lives }

// Level returns the number of waves spawned.
func (w *WaveController) Level() int { return w.level }

// WaveLength returns the size of the current wave.
func (w *WaveController) WaveLength() int { return w.waveLength }

// Lost reports whether the session is over.
func (w *WaveController) Lost(player *Player) bool {
	return w.lives <= 0 || player.Health <= 0
}

// SpawnIfCleared starts the next wave when no hostiles remain.
// It returns the number of hostiles spawned.
func (w *WaveController) SpawnIfCleared() int {
	if len(w.hostiles) > 0 {
		return 0
	}

	w.level++
	w.waveLength += w.cfg.Waves.Growth

	h := w.cfg.Hostiles
	spanX := w.cfg.World.Width - h.SpawnRightMargin - h.SpawnMinX
	spanY := h.SpawnMaxY - h.SpawnMinY

	for i, n := 0, w.waveLength; i < n; i++ {
		x := h.SpawnMinX + w.rng.Intn(spanX)
		y := h.SpawnMinY + w.rng.Intn(spanY)
		color := HostileColors[w.rng.Intn(len(HostileColors))]

		hostile, err := NewHostile(x, y, color, w.atlas, h.Health, h.Cooldown)
		if err != nil {
			// The atlas is validated on load, every color exists
			panic(err)
		}
		w.hostiles = append(w.hostiles, hostile)
	}

	return w.waveLength
}

// UpdateHostiles moves every hostile, advances its projectiles against
// the player, rolls its fire chance and resolves ramming and escapes.
func (w *WaveController) UpdateHostiles(player *Player, ticks uint64) Outcome {
	var out Outcome

	progress := config.Progress{Level: w.level, Score: w.score, Ticks: ticks}
	speed := w.difficulty.HostileSpeed(w.cfg.Hostiles.Speed, progress)
	odds := w.difficulty.FireOdds(w.cfg.Hostiles.FireOdds, progress)
	height := w.cfg.World.Height

	kept := w.hostiles[:0]
	for _, h := range w.hostiles {
		h.Move(speed)
		out.PlayerHits += h.AdvanceProjectiles(w.cfg.Projectiles.Speed, height, player, w.cfg.Projectiles.Damage)

		if w.rng.Intn(odds) == 0 && h.Shoot() {
			out.Shots++
		}

		if core.Collide(h, player) {
			player.Damage(w.cfg.Waves.RamDamage)
			w.score += w.cfg.Waves.RamScore
			out.Rammed++
			continue
		}
		if h.Y+h.Height() > height {
			w.lives--
			out.Escaped++
			continue
		}
		kept = append(kept, h)
	}
	clear(w.hostiles[len(kept):])
	w.hostiles = kept

	return out
}

// ResolvePlayerFire advances the player's projectiles against all hostiles
// and scores the kills.
func (w *WaveController) ResolvePlayerFire(player *Player) int {
	survivors, kills := player.AdvanceProjectiles(-w.cfg.Projectiles.Speed, w.cfg.World.Height, w.hostiles)
	clear(w.hostiles[len(survivors):])
	w.hostiles = survivors
	w.score += kills * w.cfg.Waves.KillScore
	return kills
}
