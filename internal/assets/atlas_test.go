package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestDefaultAtlasHasRequiredSprites(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	for _, name := range RequiredSprites() {
		s, ok := a.Sprite(name)
		if !ok {
			t.Errorf("missing sprite %q", name)
			continue
		}
		if s.Mask().Count() == 0 {
			t.Errorf("sprite %q has an empty mask", name)
		}
	}

	for _, c := range HostileColors {
		ship, laser, ok := a.Hostile(c)
		if !ok || ship == nil || laser == nil {
			t.Errorf("Hostile(%q) not available", c)
		}
	}
	if _, _, ok := a.Hostile("purple"); ok {
		t.Error("Hostile(purple) should not exist")
	}
}

func TestNewSpriteMask(t *testing.T) {
	s, err := NewSprite("probe", core.ColorRed, []string{"# ", " #", "#"}, 10, 5)
	if err != nil {
		t.Fatalf("NewSprite() failed: %v", err)
	}

	if s.Width() != 20 || s.Height() != 15 {
		t.Fatalf("size = %dx%d, expected 20x15", s.Width(), s.Height())
	}
	if s.Mask().Count() != 3*10*5 {
		t.Errorf("mask count = %d, expected %d", s.Mask().Count(), 3*10*5)
	}

	tests := []struct {
		x, y   int
		opaque bool
	}{
		{0, 0, true},
		{9, 4, true},
		{10, 0, false},
		{15, 7, true},
		{5, 7, false},
		{5, 12, true},
		{15, 12, false}, // padded short row
	}
	for _, tc := range tests {
		if got := s.Mask().At(tc.x, tc.y); got != tc.opaque {
			t.Errorf("mask At(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.opaque)
		}
	}

	if s.Glyph(1, 2) != ' ' {
		t.Errorf("padded glyph = %q, expected space", s.Glyph(1, 2))
	}
}

func TestNewSpriteErrors(t *testing.T) {
	tests := []struct {
		name  string
		art   []string
		cellW int
		cellH int
	}{
		{"no rows", nil, 10, 10},
		{"blank rows", []string{"", ""}, 10, 10},
		{"fully transparent", []string{"   "}, 10, 10},
		{"zero cell", []string{"#"}, 0, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSprite("x", core.ColorDefault, tc.art, tc.cellW, tc.cellH); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseMissingSprite(t *testing.T) {
	manifest := `
cell: {w: 10, h: 25}
sprites:
  player:
    art: ['#']
`
	_, err := Parse([]byte(manifest))
	if err == nil {
		t.Fatal("expected error for incomplete manifest")
	}
	if !strings.Contains(err.Error(), "missing sprite") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseUnknownColor(t *testing.T) {
	manifest := `
cell: {w: 10, h: 25}
sprites:
  player:
    color: chartreuse
    art: ['#']
`
	if _, err := Parse([]byte(manifest)); err == nil {
		t.Fatal("expected error for unknown color")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.yaml")
	if err := os.WriteFile(path, defaultManifest, 0o600); err != nil {
		t.Fatal(err)
	}

	a, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if a.MustSprite(Player).Name != Player {
		t.Error("player sprite not loaded")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestParseCorruptManifest(t *testing.T) {
	if _, err := Parse([]byte("sprites: [this is: not a map")); err == nil {
		t.Error("expected a parse error")
	}
}
