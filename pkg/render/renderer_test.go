// pkg/render/renderer_test.go
package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/logging"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// newDebugRenderer returns a NullRenderer whose debug output lands in buf
func newDebugRenderer(t *testing.T, buf *bytes.Buffer) *NullRenderer {
	t.Helper()
	t.Setenv(logging.LevelEnvVar, "DEBUG")
	return NewNullRenderer(logging.NewLoggerWithWriter(buf))
}

func TestNullRenderer_Present_CountsFrames(t *testing.T) {
	var buf bytes.Buffer
	renderer := newDebugRenderer(t, &buf)

	renderer.Clear()
	renderer.Present()
	renderer.Present()

	if renderer.Frames() != 2 {
		t.Errorf("Expected 2 frames, got %d", renderer.Frames())
	}
	if !strings.Contains(buf.String(), "frame presented") {
		t.Errorf("Expected log to contain 'frame presented', got: %s", buf.String())
	}
}

func TestNullRenderer_RenderEntities_LogsDetails(t *testing.T) {
	tests := []struct {
		name     string
		render   func(r *NullRenderer)
		expected []string
	}{
		{
			name: "rocket",
			render: func(r *NullRenderer) {
				r.RenderRocket(testRocket(physics.Vector2D{X: 12, Y: -3}, 0))
			},
			expected: []string{"RenderRocket called", `"player":"p1"`, `"x":12`},
		},
		{
			name: "sun",
			render: func(r *NullRenderer) {
				r.RenderSun(entity.NewSun(7, physics.Vector2D{}, 50))
			},
			expected: []string{"RenderSun called", `"sun_id":7`, `"radius":50`},
		},
		{
			name: "projectile",
			render: func(r *NullRenderer) {
				r.RenderProjectile(entity.NewProjectile(9, 1, physics.Vector2D{X: 5, Y: 6}, 0, 300))
			},
			expected: []string{"RenderProjectile called", `"projectile_id":9`, `"owner_id":1`},
		},
		{
			name: "nil_rocket",
			render: func(r *NullRenderer) {
				r.RenderRocket(nil)
			},
			expected: []string{"nil rocket"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderer := newDebugRenderer(t, &buf)

			tt.render(renderer)

			for _, want := range tt.expected {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("Expected log to contain %s, got: %s", want, buf.String())
				}
			}
		})
	}
}

func TestNullRenderer_NilEntitiesAndLogger(t *testing.T) {
	renderer := NewNullRenderer(nil)

	renderer.RenderSun(nil)
	renderer.RenderProjectile(nil)
	renderer.RenderRocket(nil)
	renderer.Present()

	if renderer.Frames() != 1 {
		t.Errorf("Expected 1 frame, got %d", renderer.Frames())
	}
}

func TestNullRenderer_ImplementsRenderer(t *testing.T) {
	var _ entity.Renderer = NewNullRenderer(nil)
	var _ entity.Renderer = NewTerminalRenderer(&bytes.Buffer{}, 1, 1, 1)
}
