package physics

// GravityField is a single inverse-square attractor.
type GravityField struct {
	Source    Vector2D
	Constant  float64
	MinRadius float64 // dead-zone: no pull closer than this
}

// Acceleration returns the pull the field exerts at pos. The second result
// is false inside the dead-zone, where no force is applied.
func (f GravityField) Acceleration(pos Vector2D) (Vector2D, bool) {
	toSource := f.Source.Sub(pos)
	distance := toSource.Length()
	if distance < f.MinRadius || distance == 0 {
		return Vector2D{}, false
	}

	force := f.Constant / (distance * distance)
	return toSource.Normalize().Scale(force), true
}

// Apply adds the field's pull to state's velocity, caps it at MaxSpeed and
// integrates the resulting displacement. It reports whether any force was
// applied; inside the dead-zone the state is left untouched.
func (f GravityField) Apply(state *FlightState, deltaTime float64) bool {
	accel, ok := f.Acceleration(state.Position)
	if !ok {
		return false
	}

	state.Velocity = state.Velocity.Add(accel.Scale(deltaTime)).ClampLength(state.MaxSpeed)
	state.Position = state.Position.Add(state.Velocity.Scale(deltaTime))
	return true
}
