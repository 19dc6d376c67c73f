// Package invaders implements the space invaders simulation.
// The game runs in fixed world units and draws through a Renderer.
package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/render"
)

// ID is the registry and score table identifier.
const ID = "invaders"

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// atlas stores the sprite atlas loaded by the CLI
var atlas *assets.Atlas

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetAtlas sets the sprite atlas used by new games.
func SetAtlas(a *assets.Atlas) {
	atlas = a
}

// Game implements the invaders session.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	atlas   *assets.Atlas

	// Fixed config for tests and embedding, bypasses the loader
	override *config.InvadersConfig

	player *Player
	waves  *WaveController

	tick      uint64
	paused    bool
	lost      bool
	lostCount int
	finished  bool

	events []core.Event
	canvas *render.Canvas
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed config and atlas.
// A nil atlas selects the embedded default.
func NewWithConfig(cfg config.InvadersConfig, a *assets.Atlas) *Game {
	return &Game{override: &cfg, atlas: a}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes or restarts the session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultTickRate
	}
	g.runtime = runtime

	if g.override != nil {
		g.cfg = *g.override
	} else {
		cfg, err := config.LoadInvaders(configPath)
		if err != nil {
			cfg = config.DefaultInvadersConfig()
		}
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	if g.atlas == nil {
		g.atlas = atlas
	}
	if g.atlas == nil {
		a, err := assets.Default()
		if err != nil {
			panic(err)
		}
		g.atlas = a
	}

	rng := rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness

	g.player = NewPlayer(g.cfg.Player, g.atlas)
	g.waves = NewWaveController(g.cfg, g.atlas, rng)

	g.tick = 0
	g.paused = false
	g.lost = false
	g.lostCount = 0
	g.finished = false
	g.events = nil
	g.canvas = nil
}

// Step advances the simulation by one tick.
// Order: pause, loss check, spawn, player input, hostiles, player fire.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.finished {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.lost {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if g.waves.Lost(g.player) {
		if !g.lost {
			g.emit(core.EventLost, g.waves.Score())
		}
		g.lost = true
		g.lostCount++
	}
	if g.lost {
		if g.lostCount > g.runtime.TickRate*g.cfg.Session.LostSeconds {
			g.finished = true
			g.emit(core.EventFinished, g.waves.Score())
		}
		return g.result()
	}

	if n := g.waves.SpawnIfCleared(); n > 0 {
		g.emit(core.EventWaveSpawned, n)
	}

	g.player.Move(in, g.cfg.Player.Speed, g.cfg.World.Width, g.cfg.World.Height, g.cfg.Player.BottomMargin)
	if in.Has(core.ActionFire) {
		g.player.Shoot()
	}

	out := g.waves.UpdateHostiles(g.player, g.tick)
	if out.PlayerHits > 0 {
		g.emit(core.EventPlayerHit, out.PlayerHits)
	}
	if out.Rammed > 0 {
		g.emit(core.EventHostileRammed, out.Rammed)
	}
	if out.Escaped > 0 {
		g.emit(core.EventHostileEscaped, out.Escaped)
	}

	if kills := g.waves.ResolvePlayerFire(g.player); kills > 0 {
		g.emit(core.EventHostileDestroyed, kills)
	}

	return g.result()
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Tick: g.tick, Value: value})
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current frame into dst, scaling world units to cells.
func (g *Game) Render(dst *core.Screen) {
	if g.canvas == nil {
		g.canvas = render.NewCanvas(g.cfg.World.Width, g.cfg.World.Height, g.atlas.MustSprite(assets.Background))
	}
	g.canvas.SetTarget(dst)
	g.Draw(g.canvas)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.waves.Score(),
		Level:    g.waves.Level(),
		Lives:    g.waves.Lives(),
		GameOver: g.finished,
		Paused:   g.paused,
	}
}

// Lost reports whether the lost overlay is showing.
func (g *Game) Lost() bool {
	return g.lost
}

// Player returns the player ship.
func (g *Game) Player() *Player {
	return g.player
}

// Waves returns the wave controller.
func (g *Game) Waves() *WaveController {
	return g.waves
}
