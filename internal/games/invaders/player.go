package invaders

import (
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player is the ship controlled by the user.
type Player struct {
	Vessel
	MaxHealth int

	barGap    int
	barHeight int
}

// NewPlayer creates the player ship from the atlas.
func NewPlayer(cfg config.PlayerConfig, atlas *assets.Atlas) *Player {
	return &Player{
		Vessel: newVessel(cfg.StartX, cfg.StartY, cfg.Health, cfg.Cooldown,
			atlas.MustSprite(assets.Player), atlas.MustSprite(assets.PlayerLaser)),
		MaxHealth: cfg.Health,
		barGap:    cfg.HealthBarGap,
		barHeight: cfg.HealthBarHeight,
	}
}

// AdvanceProjectiles ticks the cooldown and moves the player's projectiles.
// A projectile destroys the first hostile it overlaps and is spent, so it
// kills at most one hostile per tick. The hostiles slice is compacted in
// place; callers must use the returned survivors.
func (p *Player) AdvanceProjectiles(vel, boundsH int, hostiles []*Hostile) (survivors []*Hostile, kills int) {
	p.CooldownTick()

	kept := p.projectiles[:0]
	for _, proj := range p.projectiles {
		proj.Move(vel)
		if proj.OffScreen(boundsH) {
			continue
		}

		hit := slices.IndexFunc(hostiles, func(h *Hostile) bool {
			return proj.Collides(h)
		})
		if hit >= 0 {
			hostiles = slices.Delete(hostiles, hit, hit+1)
			kills++
			continue
		}
		kept = append(kept, proj)
	}
	clear(p.projectiles[len(kept):])
	p.projectiles = kept

	return hostiles, kills
}

// HealthBarWidth returns the foreground bar width in world units,
// clamped to [0, sprite width].
func (p *Player) HealthBarWidth() int {
	w := p.Width()
	if p.MaxHealth <= 0 {
		return 0
	}
	return core.Clamp(w*p.Health/p.MaxHealth, 0, w)
}

// HealthBarRect returns the full-width bar area below the sprite.
func (p *Player) HealthBarRect() core.Rect {
	return core.NewRect(p.X, p.Y+p.Height()+p.barGap, p.Width(), p.barHeight)
}

// Move applies directional input, keeping the ship and its health bar
// inside a world of size w x h.
func (p *Player) Move(in core.InputFrame, vel, w, h, bottomMargin int) {
	if in.Has(core.ActionLeft) && p.X-vel > 0 {
		p.X -= vel
	}
	if in.Has(core.ActionRight) && p.X+vel+p.Width() < w {
		p.X += vel
	}
	if in.Has(core.ActionUp) && p.Y-vel > 0 {
		p.Y -= vel
	}
	if in.Has(core.ActionDown) && p.Y+vel+p.Height()+bottomMargin < h {
		p.Y += vel
	}
}

// Draw renders the ship, its projectiles and the health bar.
func (p *Player) Draw(r Renderer) {
	p.Vessel.Draw(r)

	bar := p.HealthBarRect()
	r.DrawRect(bar.X, bar.Y, bar.W, bar.H, core.ColorRed)
	if fg := p.HealthBarWidth(); fg > 0 {
		r.DrawRect(bar.X, bar.Y, fg, bar.H, core.ColorGreen)
	}
}
