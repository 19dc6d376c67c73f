// Package render draws world-unit scenes onto a terminal cell screen.
//
// The world is letterboxed: it is shown at one glyph per sprite cell when
// the terminal is large enough and squeezed into the terminal otherwise.
package render

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Glyphs for rectangles. Thin rectangles use the upper half block.
const (
	rectGlyph     = '█'
	thinRectGlyph = '▀'
)

// Canvas buffers draw calls on an internal screen and copies the finished
// frame to the target on Present.
type Canvas struct {
	worldW, worldH int
	cellW, cellH   int // World units per glyph at full size
	background     *assets.Sprite

	buf *core.Screen
	dst *core.Screen

	// Viewport in cells
	viewX, viewY int
	viewW, viewH int
}

// NewCanvas creates a canvas for a worldW x worldH world. The background
// sprite is tiled over the viewport and defines the glyph cell size.
func NewCanvas(worldW, worldH int, background *assets.Sprite) *Canvas {
	cellW, cellH := background.CellSize()
	return &Canvas{
		worldW:     worldW,
		worldH:     worldH,
		cellW:      cellW,
		cellH:      cellH,
		background: background,
		buf:        core.NewScreen(0, 0),
	}
}

// SetTarget selects the screen Present copies to and fits the viewport.
func (c *Canvas) SetTarget(dst *core.Screen) {
	c.dst = dst
	if c.buf.Width() != dst.Width() || c.buf.Height() != dst.Height() {
		c.buf.Resize(dst.Width(), dst.Height())
	}

	c.viewW = max(min(dst.Width(), c.worldW/c.cellW), 1)
	c.viewH = max(min(dst.Height(), c.worldH/c.cellH), 1)
	c.viewX = max((dst.Width()-c.viewW)/2, 0)
	c.viewY = max((dst.Height()-c.viewH)/2, 0)
}

// Viewport returns the area of the target the world is drawn into.
func (c *Canvas) Viewport() core.Rect {
	return core.NewRect(c.viewX, c.viewY, c.viewW, c.viewH)
}

// CellX maps a world x coordinate to a screen column.
func (c *Canvas) CellX(wx int) int {
	return c.viewX + floorDiv(wx*c.viewW, c.worldW)
}

// CellY maps a world y coordinate to a screen row.
func (c *Canvas) CellY(wy int) int {
	return c.viewY + floorDiv(wy*c.viewH, c.worldH)
}

// ClearAndDrawBackground blanks the buffer and tiles the background.
func (c *Canvas) ClearAndDrawBackground() {
	c.buf.Clear()

	bg := c.background
	for y, n := 0, c.viewH; y < n; y++ {
		for x, n := 0, c.viewW; x < n; x++ {
			g := bg.Glyph(x%bg.Cols(), y%bg.Rows())
			if g == ' ' {
				continue
			}
			c.buf.SetCell(c.viewX+x, c.viewY+y, core.Cell{Rune: g, Color: bg.Color})
		}
	}
}

// DrawSprite draws the opaque glyphs of s with its top-left at (x, y).
// Glyphs outside the viewport are clipped.
func (c *Canvas) DrawSprite(s *assets.Sprite, x, y int) {
	cw, ch := s.CellSize()
	for row, n := 0, s.Rows(); row < n; row++ {
		for col, n := 0, s.Cols(); col < n; col++ {
			g := s.Glyph(col, row)
			if g == ' ' {
				continue
			}
			c.setClipped(c.CellX(x+col*cw), c.CellY(y+row*ch), core.Cell{Rune: g, Color: s.Color})
		}
	}
}

// DrawText writes text starting at world (x, y). The title font is bold.
func (c *Canvas) DrawText(text string, x, y int, color core.Color, font core.Font) {
	cx, cy := c.CellX(x), c.CellY(y)
	bold := font == core.FontTitle
	for _, r := range text {
		c.setClipped(cx, cy, core.Cell{Rune: r, Color: color, Bold: bold})
		cx++
	}
}

// DrawRect fills a world rectangle. Any non-empty rectangle covers at least
// one cell.
func (c *Canvas) DrawRect(x, y, w, h int, color core.Color) {
	if w <= 0 || h <= 0 {
		return
	}

	x0, y0 := c.CellX(x), c.CellY(y)
	x1 := max(c.CellX(x+w), x0+1)
	y1 := max(c.CellY(y+h), y0+1)

	glyph := rectGlyph
	if h*2 <= c.cellH {
		glyph = thinRectGlyph
	}

	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.setClipped(cx, cy, core.Cell{Rune: glyph, Color: color})
		}
	}
}

// MeasureText returns the world width text occupies in any font.
func (c *Canvas) MeasureText(text string, _ core.Font) int {
	cols := utf8.RuneCountInString(text)
	if c.viewW <= 0 {
		return cols * c.cellW
	}
	// Round up so right-aligned text never spills past the edge
	return (cols*c.worldW + c.viewW - 1) / c.viewW
}

// Present copies the finished frame to the target.
func (c *Canvas) Present() {
	if c.dst == nil {
		return
	}
	c.dst.CopyFrom(c.buf)
}

// Frame returns the internal buffer holding the last drawn frame.
func (c *Canvas) Frame() *core.Screen {
	return c.buf
}

func (c *Canvas) setClipped(x, y int, cell core.Cell) {
	if x < c.viewX || x >= c.viewX+c.viewW || y < c.viewY || y >= c.viewY+c.viewH {
		return
	}
	c.buf.SetCell(x, y, cell)
}

// floorDiv divides rounding toward negative infinity, so objects above the
// world top map to rows above the viewport.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
