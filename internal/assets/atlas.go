// Package assets loads the sprite atlas used by the game.
// Sprites are described by a YAML manifest; the default manifest is embedded.
package assets

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

//go:embed sprites.yaml
var defaultManifest []byte

// Sprite names every atlas must provide.
const (
	Player      = "player"
	PlayerLaser = "player_laser"
	Background  = "background"
)

// HostileColors lists the hostile appearance variants in manifest order.
var HostileColors = []string{"red", "green", "blue"}

// ShipName returns the sprite name of a hostile ship variant.
func ShipName(color string) string { return color + "_ship" }

// LaserName returns the sprite name of a hostile laser variant.
func LaserName(color string) string { return color + "_laser" }

// RequiredSprites returns every sprite name the game needs.
func RequiredSprites() []string {
	names := []string{Player, PlayerLaser, Background}
	for _, c := range HostileColors {
		names = append(names, ShipName(c), LaserName(c))
	}
	return names
}

// manifest is the YAML structure of a sprite manifest.
type manifest struct {
	Cell struct {
		W int `yaml:"w"`
		H int `yaml:"h"`
	} `yaml:"cell"`
	Sprites map[string]manifestSprite `yaml:"sprites"`
}

type manifestSprite struct {
	Color string   `yaml:"color"`
	Art   []string `yaml:"art"`
}

// Atlas holds every loaded sprite. It is immutable after loading.
type Atlas struct {
	sprites map[string]*Sprite
}

// Parse builds an atlas from manifest bytes and checks that every required
// sprite is present.
func Parse(data []byte) (*Atlas, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: cannot parse manifest: %w", err)
	}

	a := &Atlas{sprites: make(map[string]*Sprite, len(m.Sprites))}

	// Sorted for deterministic error reporting
	names := make([]string, 0, len(m.Sprites))
	for name := range m.Sprites {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ms := m.Sprites[name]
		color, err := core.ParseColor(ms.Color)
		if err != nil {
			return nil, fmt.Errorf("assets: sprite %q: %w", name, err)
		}
		s, err := NewSprite(name, color, ms.Art, m.Cell.W, m.Cell.H)
		if err != nil {
			return nil, err
		}
		a.sprites[name] = s
	}

	for _, name := range RequiredSprites() {
		if _, ok := a.sprites[name]; !ok {
			return nil, fmt.Errorf("assets: missing sprite %q", name)
		}
	}

	return a, nil
}

// Load reads a sprite manifest from path. An empty path loads the embedded
// default manifest.
func Load(path string) (*Atlas, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read manifest %s: %w", path, err)
	}
	return Parse(data)
}

var loadDefault = sync.OnceValues(func() (*Atlas, error) {
	return Parse(defaultManifest)
})

// Default returns the atlas built from the embedded manifest.
func Default() (*Atlas, error) {
	return loadDefault()
}

// Sprite returns a sprite by name.
func (a *Atlas) Sprite(name string) (*Sprite, bool) {
	s, ok := a.sprites[name]
	return s, ok
}

// Hostile returns the ship and laser sprites for a hostile color.
func (a *Atlas) Hostile(color string) (ship, laser *Sprite, ok bool) {
	ship, shipOK := a.sprites[ShipName(color)]
	laser, laserOK := a.sprites[LaserName(color)]
	if !shipOK || !laserOK {
		return nil, nil, false
	}
	return ship, laser, true
}

// MustSprite returns a required sprite. Parse guarantees required sprites
// exist, so a miss is a programming error.
func (a *Atlas) MustSprite(name string) *Sprite {
	s, ok := a.sprites[name]
	if !ok {
		panic(fmt.Sprintf("assets: sprite %q not loaded", name))
	}
	return s
}
