// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/logging"
)

// NullRenderer draws nothing and logs each call at debug level.
type NullRenderer struct {
	logger *logging.Logger
	frames uint64
}

// NewNullRenderer creates a NullRenderer. A nil logger discards output.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NullRenderer{logger: logger}
}

// Frames returns how many frames have been presented
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.frames++
	d.logger.Debug(context.Background(), "frame presented", "frame", d.frames)
}

// RenderSun implements entity.Renderer.
func (d *NullRenderer) RenderSun(sun *entity.Sun) {
	if sun == nil {
		return
	}
	d.logger.Debug(context.Background(), "RenderSun called",
		"sun_id", sun.ID,
		"radius", sun.Radius,
	)
}

// RenderProjectile implements entity.Renderer.
func (d *NullRenderer) RenderProjectile(projectile *entity.Projectile) {
	if projectile == nil {
		return
	}
	d.logger.Debug(context.Background(), "RenderProjectile called",
		"projectile_id", projectile.ID,
		"owner_id", projectile.OwnerID,
		"x", projectile.Position.X,
		"y", projectile.Position.Y,
	)
}

// RenderRocket implements entity.Renderer.
func (d *NullRenderer) RenderRocket(rocket *entity.Rocket) {
	if rocket == nil {
		d.logger.Debug(context.Background(), "RenderRocket called with nil rocket")
		return
	}
	d.logger.Debug(context.Background(), "RenderRocket called",
		"rocket_id", rocket.ID,
		"player", rocket.PlayerID,
		"x", rocket.Position.X,
		"y", rocket.Position.Y,
		"rotation", rocket.Rotation,
	)
}
