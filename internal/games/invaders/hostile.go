package invaders

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/assets"
)

// ErrUnknownColor is returned when a hostile color has no sprites.
var ErrUnknownColor = errors.New("invaders: unknown hostile color")

// HostileColor selects a hostile's ship and laser sprites.
type HostileColor int

const (
	HostileRed HostileColor = iota
	HostileGreen
	HostileBlue
)

// HostileColors lists every valid color in spawn order.
var HostileColors = []HostileColor{HostileRed, HostileGreen, HostileBlue}

// String returns the manifest name of the color.
func (c HostileColor) String() string {
	switch c {
	case HostileRed:
		return "red"
	case HostileGreen:
		return "green"
	case HostileBlue:
		return "blue"
	default:
		return fmt.Sprintf("HostileColor(%d)", int(c))
	}
}

// ParseHostileColor maps a name to a color.
func ParseHostileColor(s string) (HostileColor, error) {
	for _, c := range HostileColors {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Hostile is a descending enemy ship.
type Hostile struct {
	Vessel
	Color HostileColor
}

// NewHostile creates a hostile of the given color.
func NewHostile(x, y int, color HostileColor, atlas *assets.Atlas, health, cooldown int) (*Hostile, error) {
	ship, laser, ok := atlas.Hostile(color.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColor, color)
	}
	return &Hostile{
		Vessel: newVessel(x, y, health, cooldown, ship, laser),
		Color:  color,
	}, nil
}

// Move descends by vel.
func (h *Hostile) Move(vel int) {
	h.Y += vel
}
