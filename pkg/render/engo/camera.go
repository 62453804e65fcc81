// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// Camera maps playfield coordinates onto the window. The whole playfield is
// kept in view and zoom scales it about the window center.
type Camera struct {
	bounds physics.Bounds

	// Window size in pixels
	width  float32
	height float32

	zoom    float32
	minZoom float32
	maxZoom float32
}

// NewCamera creates a camera fitting bounds into a width x height window
func NewCamera(bounds physics.Bounds, width, height float32) *Camera {
	return &Camera{
		bounds:  bounds,
		width:   width,
		height:  height,
		zoom:    1.0,
		minZoom: 0.25,
		maxZoom: 4.0,
	}
}

// Resize updates the window size
func (c *Camera) Resize(width, height float32) {
	c.width = width
	c.height = height
}

// Scale returns pixels per world unit
func (c *Camera) Scale() float32 {
	if c.bounds.HalfWidth <= 0 || c.bounds.HalfHeight <= 0 {
		return c.zoom
	}
	sx := c.width / float32(2*c.bounds.HalfWidth)
	sy := c.height / float32(2*c.bounds.HalfHeight)
	return min(sx, sy) * c.zoom
}

// SetZoom sets the zoom level, clamped to the camera's limits
func (c *Camera) SetZoom(zoom float32) {
	c.zoom = c.clampZoom(zoom)
}

// Zoom returns the current zoom level
func (c *Camera) Zoom() float32 {
	return c.zoom
}

func (c *Camera) clampZoom(zoom float32) float32 {
	if zoom < c.minZoom {
		return c.minZoom
	}
	if zoom > c.maxZoom {
		return c.maxZoom
	}
	return zoom
}

// WorldToScreen converts a playfield position to window pixels. Screen Y
// grows downwards.
func (c *Camera) WorldToScreen(pos physics.Vector2D) engo.Point {
	s := c.Scale()
	return engo.Point{
		X: c.width/2 + float32(pos.X)*s,
		Y: c.height/2 - float32(pos.Y)*s,
	}
}

// ScreenToWorld is the inverse of WorldToScreen
func (c *Camera) ScreenToWorld(p engo.Point) physics.Vector2D {
	s := c.Scale()
	return physics.Vector2D{
		X: float64((p.X - c.width/2) / s),
		Y: float64((c.height/2 - p.Y) / s),
	}
}
