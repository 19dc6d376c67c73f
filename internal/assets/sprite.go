package assets

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Sprite is a glyph bitmap with a derived collision mask.
// Each glyph covers CellW x CellH world units.
type Sprite struct {
	Name  string
	Color core.Color

	glyphs [][]rune
	cols   int
	cellW  int
	cellH  int
	mask   *core.Mask
}

// NewSprite builds a sprite from art rows. Spaces are transparent; every other
// glyph is opaque. Short rows are padded with transparent glyphs.
func NewSprite(name string, color core.Color, art []string, cellW, cellH int) (*Sprite, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("assets: sprite %q: invalid cell size %dx%d", name, cellW, cellH)
	}
	if len(art) == 0 {
		return nil, fmt.Errorf("assets: sprite %q: empty art", name)
	}

	cols := 0
	for _, row := range art {
		cols = max(cols, utf8.RuneCountInString(row))
	}
	if cols == 0 {
		return nil, fmt.Errorf("assets: sprite %q: empty art", name)
	}

	s := &Sprite{
		Name:   name,
		Color:  color,
		glyphs: make([][]rune, len(art)),
		cols:   cols,
		cellW:  cellW,
		cellH:  cellH,
		mask:   core.NewMask(cols*cellW, len(art)*cellH),
	}

	opaque := 0
	for y, row := range art {
		s.glyphs[y] = make([]rune, cols)
		x := 0
		for _, r := range row {
			s.glyphs[y][x] = r
			if r != ' ' {
				s.mask.FillRect(core.NewRect(x*cellW, y*cellH, cellW, cellH))
				opaque++
			}
			x++
		}
		for ; x < cols; x++ {
			s.glyphs[y][x] = ' '
		}
	}
	if opaque == 0 {
		return nil, fmt.Errorf("assets: sprite %q: no opaque glyphs", name)
	}

	return s, nil
}

// Width returns the sprite width in world units.
func (s *Sprite) Width() int { return s.cols * s.cellW }

// Height returns the sprite height in world units.
func (s *Sprite) Height() int { return len(s.glyphs) * s.cellH }

// Cols returns the number of glyph columns.
func (s *Sprite) Cols() int { return s.cols }

// Rows returns the number of glyph rows.
func (s *Sprite) Rows() int { return len(s.glyphs) }

// CellSize returns the world size of one glyph.
func (s *Sprite) CellSize() (w, h int) { return s.cellW, s.cellH }

// Glyph returns the glyph at (col, row), or a space when out of range.
func (s *Sprite) Glyph(col, row int) rune {
	if row < 0 || row >= len(s.glyphs) || col < 0 || col >= s.cols {
		return ' '
	}
	return s.glyphs[row][col]
}

// Mask returns the collision mask in world units.
func (s *Sprite) Mask() *core.Mask { return s.mask }
