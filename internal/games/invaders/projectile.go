package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Projectile is a laser owned by exactly one vessel.
// Positive velocity moves it down, negative up.
type Projectile struct {
	X, Y   int
	sprite *assets.Sprite
}

// NewProjectile creates a projectile at (x, y).
func NewProjectile(x, y int, sprite *assets.Sprite) *Projectile {
	return &Projectile{X: x, Y: y, sprite: sprite}
}

// Pos returns the top-left corner in world units.
func (p *Projectile) Pos() (int, int) { return p.X, p.Y }

// Mask returns the collision mask.
func (p *Projectile) Mask() *core.Mask { return p.sprite.Mask() }

// Sprite returns the projectile sprite.
func (p *Projectile) Sprite() *assets.Sprite { return p.sprite }

// Move shifts the projectile vertically.
func (p *Projectile) Move(vel int) {
	p.Y += vel
}

// OffScreen reports whether the projectile left [0, height].
func (p *Projectile) OffScreen(height int) bool {
	return p.Y < 0 || p.Y > height
}

// Collides reports whether the projectile overlaps target.
func (p *Projectile) Collides(target core.Body) bool {
	return core.Collide(p, target)
}

// Draw renders the projectile.
func (p *Projectile) Draw(r Renderer) {
	r.DrawSprite(p.sprite, p.X, p.Y)
}
