package entity

// Renderer draws one frame of the arena. A frame is Clear, then the sun,
// rockets and projectiles in that order, then Present. Renderers must not
// modify the entities they are given.
type Renderer interface {
	Clear()
	RenderSun(sun *Sun)
	RenderRocket(rocket *Rocket)
	RenderProjectile(projectile *Projectile)
	Present()
}
