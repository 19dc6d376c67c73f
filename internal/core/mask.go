package core

// Mask is a per-cell opacity map used for precise collision tests.
// Coordinates are in world units relative to the owner's top-left corner.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates a fully transparent mask of the given size.
func NewMask(w, h int) *Mask {
	w = max(w, 0)
	h = max(h, 0)
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height.
func (m *Mask) Height() int { return m.h }

// Set marks (x, y) as opaque. Out-of-range points are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = true
}

// FillRect marks every point of r (clipped to the mask) as opaque.
func (m *Mask) FillRect(r Rect) {
	r = r.Intersect(NewRect(0, 0, m.w, m.h))
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			m.bits[y*m.w+x] = true
		}
	}
}

// At reports whether (x, y) is opaque. Out-of-range points are transparent.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Count returns the number of opaque points.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether other, placed at (offX, offY) relative to m,
// shares at least one opaque point with m.
func (m *Mask) Overlap(other *Mask, offX, offY int) bool {
	if m == nil || other == nil {
		return false
	}
	r := NewRect(0, 0, m.w, m.h).Intersect(NewRect(offX, offY, other.w, other.h))
	if r.Empty() {
		return false
	}
	for y := r.Y; y < r.Bottom(); y++ {
		row := m.bits[y*m.w : (y+1)*m.w]
		orow := other.bits[(y-offY)*other.w : (y-offY+1)*other.w]
		for x := r.X; x < r.Right(); x++ {
			if row[x] && orow[x-offX] {
				return true
			}
		}
	}
	return false
}

// Body is anything with a world position and a collision mask.
type Body interface {
	Pos() (x, y int)
	Mask() *Mask
}

// Collide reports whether two bodies have overlapping opaque points.
// The result is symmetric in its arguments.
func Collide(a, b Body) bool {
	ax, ay := a.Pos()
	bx, by := b.Pos()
	return a.Mask().Overlap(b.Mask(), bx-ax, by-ay)
}
