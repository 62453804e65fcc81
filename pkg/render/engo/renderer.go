// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// SpriteSystem is the part of common.RenderSystem the renderer drives
type SpriteSystem interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent

	seen bool
}

// EngoRenderer implements entity.Renderer by keeping one engo entity per
// simulation entity. Entities not drawn between Clear and Present are removed.
type EngoRenderer struct {
	system SpriteSystem
	camera *Camera
	style  Style

	colors  map[string]color.Color // by player ID
	owners  map[entity.ID]string   // rocket ID to player ID, for projectile colors
	sprites map[entity.ID]*sprite
}

// NewEngoRenderer creates a renderer. Players are colored in the order of
// playerIDs.
func NewEngoRenderer(system SpriteSystem, camera *Camera, style Style, playerIDs []string) *EngoRenderer {
	colors := make(map[string]color.Color, len(playerIDs))
	for i, id := range playerIDs {
		colors[id] = style.PlayerColor(i)
	}
	return &EngoRenderer{
		system:  system,
		camera:  camera,
		style:   style,
		colors:  colors,
		owners:  make(map[entity.ID]string),
		sprites: make(map[entity.ID]*sprite),
	}
}

// Len returns the number of live sprites
func (r *EngoRenderer) Len() int {
	return len(r.sprites)
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	for _, s := range r.sprites {
		s.seen = false
	}
	clear(r.owners)
}

// Present implements entity.Renderer
func (r *EngoRenderer) Present() {
	for id, s := range r.sprites {
		if !s.seen {
			r.system.Remove(s.BasicEntity)
			delete(r.sprites, id)
		}
	}
}

// RenderSun implements entity.Renderer
func (r *EngoRenderer) RenderSun(sun *entity.Sun) {
	s := r.getOrCreate(sun.ID, sunShape())
	s.Color = r.style.Sun
	r.place(s, sun.Position, 2*sun.Radius)
}

// RenderRocket implements entity.Renderer
func (r *EngoRenderer) RenderRocket(rocket *entity.Rocket) {
	r.owners[rocket.ID] = rocket.PlayerID

	s := r.getOrCreate(rocket.ID, rocketShape())
	s.Color = r.playerColor(rocket.PlayerID)
	r.place(s, rocket.Position, rocket.CollisionRadius())
	s.Rotation = screenRotation(rocket.Rotation)
}

// RenderProjectile implements entity.Renderer
func (r *EngoRenderer) RenderProjectile(projectile *entity.Projectile) {
	s := r.getOrCreate(projectile.ID, projectileShape())
	s.Color = r.style.Projectile
	if owner, ok := r.owners[projectile.OwnerID]; ok {
		s.Color = r.playerColor(owner)
	}
	r.place(s, projectile.Position, projectileSize)
}

func (r *EngoRenderer) getOrCreate(id entity.ID, shape common.Drawable) *sprite {
	s, exists := r.sprites[id]
	if !exists {
		s = &sprite{
			BasicEntity:     ecs.NewBasic(),
			RenderComponent: common.RenderComponent{Drawable: shape},
		}
		r.sprites[id] = s
		r.system.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	}
	s.seen = true
	return s
}

// place centers a size x size box (world units) on pos
func (r *EngoRenderer) place(s *sprite, pos physics.Vector2D, size float64) {
	px := float32(size) * r.camera.Scale()
	center := r.camera.WorldToScreen(pos)
	s.Position = engo.Point{X: center.X - px/2, Y: center.Y - px/2}
	s.Width = px
	s.Height = px
}

func (r *EngoRenderer) playerColor(playerID string) color.Color {
	if c, ok := r.colors[playerID]; ok {
		return c
	}
	return r.style.Neutral
}

// screenRotation converts a heading (radians, counter-clockwise from +X) into
// engo's clockwise degrees for a shape that points up.
func screenRotation(heading float64) float32 {
	deg := math.Mod(90-heading*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return float32(deg)
}
