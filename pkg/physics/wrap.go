package physics

import "math"

// Bounds is the playfield, centred on the origin and given by half-extents.
type Bounds struct {
	HalfWidth  float64
	HalfHeight float64
}

// Contains reports whether p lies inside the bounds (edges included).
func (b Bounds) Contains(p Vector2D) bool {
	return math.Abs(p.X) <= b.HalfWidth && math.Abs(p.Y) <= b.HalfHeight
}

// Expand returns the bounds grown by margin on every side.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{HalfWidth: b.HalfWidth + margin, HalfHeight: b.HalfHeight + margin}
}

// Wrap mirrors each out-of-bounds coordinate to the opposite side by
// flipping its sign. Axes are handled independently, so a corner crossing
// flips both. The second result reports whether anything changed.
func (b Bounds) Wrap(p Vector2D) (Vector2D, bool) {
	wrapped := false
	if math.Abs(p.X) > b.HalfWidth {
		p.X = -p.X
		wrapped = true
	}
	if math.Abs(p.Y) > b.HalfHeight {
		p.Y = -p.Y
		wrapped = true
	}
	return p, wrapped
}
