package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Damageable is anything projectiles can hurt.
type Damageable interface {
	core.Body
	Damage(n int)
}

// Vessel is the state shared by the player and hostile ships.
// Both variants embed it.
type Vessel struct {
	X, Y   int
	Health int

	sprite      *assets.Sprite
	laser       *assets.Sprite
	projectiles []*Projectile

	// 0 means ready. After a shot it counts 1..cooldownMax, then resets.
	cooldown    int
	cooldownMax int
}

func newVessel(x, y, health, cooldownMax int, sprite, laser *assets.Sprite) Vessel {
	return Vessel{
		X:           x,
		Y:           y,
		Health:      health,
		sprite:      sprite,
		laser:       laser,
		cooldownMax: max(cooldownMax, 1),
	}
}

// Pos returns the top-left corner in world units.
func (v *Vessel) Pos() (int, int) { return v.X, v.Y }

// Mask returns the ship's collision mask.
func (v *Vessel) Mask() *core.Mask { return v.sprite.Mask() }

// Width returns the sprite width in world units.
func (v *Vessel) Width() int { return v.sprite.Width() }

// Height returns the sprite height in world units.
func (v *Vessel) Height() int { return v.sprite.Height() }

// Sprite returns the ship sprite.
func (v *Vessel) Sprite() *assets.Sprite { return v.sprite }

// Damage lowers health. Health may go negative.
func (v *Vessel) Damage(n int) {
	v.Health -= n
}

// Cooldown returns the fire gate counter.
func (v *Vessel) Cooldown() int { return v.cooldown }

// Projectiles returns the projectiles in flight. The slice must not be
// modified.
func (v *Vessel) Projectiles() []*Projectile { return v.projectiles }

// Shoot fires a projectile from the vessel position if the gate is open.
// It reports whether a projectile was created.
func (v *Vessel) Shoot() bool {
	if v.cooldown != 0 {
		return false
	}
	v.projectiles = append(v.projectiles, NewProjectile(v.X, v.Y, v.laser))
	v.cooldown = 1
	return true
}

// CooldownTick advances the fire gate. Must run once per tick.
func (v *Vessel) CooldownTick() {
	switch {
	case v.cooldown >= v.cooldownMax:
		v.cooldown = 0
	case v.cooldown > 0:
		v.cooldown++
	}
}

// AdvanceProjectiles ticks the cooldown, then moves every projectile.
// Projectiles leaving [0, boundsH] are dropped; projectiles hitting target
// deal damage and are dropped. It returns the number of hits.
func (v *Vessel) AdvanceProjectiles(vel, boundsH int, target Damageable, damage int) int {
	v.CooldownTick()

	hits := 0
	kept := v.projectiles[:0]
	for _, p := range v.projectiles {
		p.Move(vel)
		if p.OffScreen(boundsH) {
			continue
		}
		if p.Collides(target) {
			target.Damage(damage)
			hits++
			continue
		}
		kept = append(kept, p)
	}
	clear(v.projectiles[len(kept):])
	v.projectiles = kept

	return hits
}

// Draw renders the ship followed by its projectiles.
func (v *Vessel) Draw(r Renderer) {
	r.DrawSprite(v.sprite, v.X, v.Y)
	for _, p := range v.projectiles {
		p.Draw(r)
	}
}
