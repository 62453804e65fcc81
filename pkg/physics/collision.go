// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are overlapping.
// Touching circles (distance equal to the radius sum) do not collide.
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// ContainsPoint reports whether p lies strictly inside the circle.
func (c Circle) ContainsPoint(p Vector2D) bool {
	return c.Collides(Circle{Center: p})
}
