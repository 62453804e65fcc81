// pkg/render/engo/renderer_test.go
package engo

import (
	"math"
	"testing"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/input"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// recordingSystem stands in for common.RenderSystem, which needs a GL context
type recordingSystem struct {
	added   map[uint64]*common.RenderComponent
	spaces  map[uint64]*common.SpaceComponent
	removed []uint64
}

func newRecordingSystem() *recordingSystem {
	return &recordingSystem{
		added:  make(map[uint64]*common.RenderComponent),
		spaces: make(map[uint64]*common.SpaceComponent),
	}
}

func (s *recordingSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	s.added[basic.ID()] = render
	s.spaces[basic.ID()] = space
}

func (s *recordingSystem) Remove(basic ecs.BasicEntity) {
	s.removed = append(s.removed, basic.ID())
	delete(s.added, basic.ID())
	delete(s.spaces, basic.ID())
}

func newTestRenderer() (*EngoRenderer, *recordingSystem) {
	system := newRecordingSystem()
	camera := NewCamera(testBounds, 1020, 760)
	return NewEngoRenderer(system, camera, DefaultStyle(), []string{"p1", "p2"}), system
}

func newTestRocket(id entity.ID, playerID string, pos physics.Vector2D) *entity.Rocket {
	return entity.NewRocket(id, entity.RocketSpec{
		PlayerID:        playerID,
		Position:        pos,
		MaxSpeed:        150,
		CollisionRadius: 50,
		Controls:        input.Controls{RotateLeft: "A", RotateRight: "D", Accelerate: "S", Fire: "W"},
	})
}

func TestEngoRenderer_TracksEntitiesAcrossFrames(t *testing.T) {
	r, system := newTestRenderer()
	sun := entity.NewSun(1, physics.Vector2D{}, 50)
	rocket := newTestRocket(2, "p1", physics.Vector2D{X: -400, Y: 200})
	shot := entity.NewProjectile(3, 2, physics.Vector2D{X: -350, Y: 200}, 0, 300)

	r.Clear()
	r.RenderSun(sun)
	r.RenderRocket(rocket)
	r.RenderProjectile(shot)
	r.Present()

	if r.Len() != 3 || len(system.added) != 3 {
		t.Fatalf("Expected 3 sprites, got %d (system has %d)", r.Len(), len(system.added))
	}

	// Second frame without the projectile drops its sprite only.
	r.Clear()
	r.RenderSun(sun)
	r.RenderRocket(rocket)
	r.Present()

	if r.Len() != 2 {
		t.Errorf("Expected 2 sprites after the projectile retired, got %d", r.Len())
	}
	if len(system.removed) != 1 {
		t.Errorf("Expected 1 removal, got %d", len(system.removed))
	}
	if len(system.added) != 2 {
		t.Errorf("Expected sprites to be reused, system has %d", len(system.added))
	}
}

func TestEngoRenderer_PlacesSprites(t *testing.T) {
	r, system := newTestRenderer()

	r.Clear()
	r.RenderSun(entity.NewSun(1, physics.Vector2D{}, 50))
	r.Present()

	var space *common.SpaceComponent
	for _, s := range system.spaces {
		space = s
	}
	if space == nil {
		t.Fatal("Expected a sun sprite")
	}
	if space.Width != 100 || space.Height != 100 {
		t.Errorf("Expected a 100x100 sun, got %fx%f", space.Width, space.Height)
	}
	if expected := (engo.Point{X: 460, Y: 330}); space.Position != expected {
		t.Errorf("Expected sun at %v, got %v", expected, space.Position)
	}
}

func TestEngoRenderer_ColorsByPlayer(t *testing.T) {
	r, system := newTestRenderer()
	style := DefaultStyle()

	r.Clear()
	r.RenderRocket(newTestRocket(2, "p2", physics.Vector2D{X: 400}))
	r.RenderProjectile(entity.NewProjectile(3, 2, physics.Vector2D{X: 300}, 0, 300))
	r.RenderProjectile(entity.NewProjectile(4, 99, physics.Vector2D{X: 200}, 0, 300))
	r.Present()

	tests := []struct {
		name     string
		id       entity.ID
		expected any
	}{
		{"rocket_uses_player_color", 2, style.PlayerColor(1)},
		{"projectile_uses_owner_color", 3, style.PlayerColor(1)},
		{"orphan_projectile", 4, style.Projectile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := r.sprites[tt.id]
			if s == nil {
				t.Fatalf("No sprite for entity %d", tt.id)
			}
			if s.Color != tt.expected {
				t.Errorf("Expected color %v, got %v", tt.expected, s.Color)
			}
			if system.added[s.BasicEntity.ID()] == nil {
				t.Error("Expected sprite to be registered with the system")
			}
		})
	}
}

func TestScreenRotation(t *testing.T) {
	tests := []struct {
		heading  float64
		expected float32
	}{
		{math.Pi / 2, 0},
		{0, 90},
		{math.Pi, 270},
		{-math.Pi / 2, 180},
	}

	for _, tt := range tests {
		if got := screenRotation(tt.heading); math.Abs(float64(got-tt.expected)) > 1e-4 {
			t.Errorf("screenRotation(%f) = %f, want %f", tt.heading, got, tt.expected)
		}
	}
}

func TestStyle_PlayerColor(t *testing.T) {
	style := DefaultStyle()

	if style.PlayerColor(0) != style.Players[0] {
		t.Error("Expected first player color")
	}
	if style.PlayerColor(len(style.Players)) != style.Neutral {
		t.Error("Expected neutral color past the palette")
	}
	if style.PlayerColor(-1) != style.Neutral {
		t.Error("Expected neutral color for a negative index")
	}
}
