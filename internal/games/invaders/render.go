package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Renderer draws in world units. Draw calls are buffered until Present.
type Renderer interface {
	ClearAndDrawBackground()
	DrawSprite(s *assets.Sprite, x, y int)
	DrawText(text string, x, y int, color core.Color, font core.Font)
	DrawRect(x, y, w, h int, color core.Color)
	MeasureText(text string, font core.Font) int
	Present()
}

// HUD layout in world units.
const (
	hudMargin    = 10
	overlayY     = 350
	lostMessage  = "You Lost!!"
	pauseMessage = "Paused"
)

// Draw renders one frame: background, hostiles, player, HUD, overlay.
func (g *Game) Draw(r Renderer) {
	r.ClearAndDrawBackground()

	for _, h := range g.waves.Hostiles() {
		h.Draw(r)
	}
	g.player.Draw(r)

	g.drawHUD(r)

	switch {
	case g.lost:
		g.drawOverlay(r, lostMessage)
	case g.paused:
		g.drawOverlay(r, pauseMessage)
	}

	r.Present()
}

func (g *Game) drawHUD(r Renderer) {
	width := g.cfg.World.Width

	lives := fmt.Sprintf("Lives: %d", g.waves.Lives())
	r.DrawText(lives, hudMargin, hudMargin, core.ColorWhite, core.FontMain)

	level := fmt.Sprintf("Level: %d", g.waves.Level())
	r.DrawText(level, (width-r.MeasureText(level, core.FontMain))/2, hudMargin, core.ColorWhite, core.FontMain)

	score := fmt.Sprintf("Score: %d", g.waves.Score())
	r.DrawText(score, width-r.MeasureText(score, core.FontMain)-hudMargin, hudMargin, core.ColorWhite, core.FontMain)
}

func (g *Game) drawOverlay(r Renderer, text string) {
	x := g.cfg.World.Width/2 - r.MeasureText(text, core.FontTitle)/2
	r.DrawText(text, x, overlayY, core.ColorBrightWhite, core.FontTitle)
}
