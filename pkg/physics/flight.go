package physics

import "math"

// DualRotatePolicy decides what a rocket does when both rotate controls are held.
type DualRotatePolicy int

const (
	// DualRotateCancel treats the opposing inputs as no input and stops the spin.
	DualRotateCancel DualRotatePolicy = iota
	// DualRotateForced locks the spin to FlightParams.ForcedRotationSpeed.
	DualRotateForced
)

// String returns the configuration name of the policy.
func (p DualRotatePolicy) String() string {
	switch p {
	case DualRotateForced:
		return "forced"
	default:
		return "cancel"
	}
}

// DualRotatePolicyFromString converts a configuration name to a policy.
// Unknown names fall back to DualRotateCancel.
func DualRotatePolicyFromString(s string) DualRotatePolicy {
	if s == "forced" {
		return DualRotateForced
	}
	return DualRotateCancel
}

// FlightParams holds the tuning constants shared by all rockets.
type FlightParams struct {
	ThrustAcceleration  float64 // speed units per second
	AngularAcceleration float64 // radians per second squared
	MaxRotationSpeed    float64 // radians per second
	DualRotate          DualRotatePolicy
	ForcedRotationSpeed float64
}

// FlightInput is one rocket's resolved controls for a single tick.
type FlightInput struct {
	Accelerate  bool
	RotateLeft  bool
	RotateRight bool
}

// FlightState tracks rocket physics
type FlightState struct {
	Position      Vector2D
	Velocity      Vector2D
	Rotation      float64 // radians, forward is (cos, sin)
	Speed         float64
	RotationSpeed float64
	MaxSpeed      float64
}

// Fly advances a rocket's thrust, spin, heading, velocity and position by
// deltaTime seconds. Velocity is rebuilt from heading and speed, discarding
// whatever gravity added on the previous tick.
func Fly(state *FlightState, params FlightParams, deltaTime float64, in FlightInput) {
	updateThrust(state, params.ThrustAcceleration, deltaTime, in.Accelerate)
	updateSpin(state, params, deltaTime, in)

	state.Rotation = NormalizeAngle(state.Rotation + state.RotationSpeed*deltaTime)
	state.Velocity = FromAngle(state.Rotation, state.Speed)
	state.Position = state.Position.Add(state.Velocity.Scale(deltaTime))
}

// RotationInput maps the rotate controls to -1, 0 or +1. Left is
// counter-clockwise (+1). The second result reports that both were held.
func RotationInput(in FlightInput) (float64, bool) {
	switch {
	case in.RotateLeft && in.RotateRight:
		return 0, true
	case in.RotateLeft:
		return 1, false
	case in.RotateRight:
		return -1, false
	default:
		return 0, false
	}
}

func updateThrust(state *FlightState, accel, deltaTime float64, accelerate bool) {
	if accelerate {
		state.Speed += accel * deltaTime
	} else {
		state.Speed -= accel * deltaTime
	}
	state.Speed = clamp(state.Speed, 0, state.MaxSpeed)
}

func updateSpin(state *FlightState, params FlightParams, deltaTime float64, in FlightInput) {
	input, both := RotationInput(in)
	switch {
	case both && params.DualRotate == DualRotateForced:
		state.RotationSpeed = params.ForcedRotationSpeed
	case both:
		state.RotationSpeed = 0
	default:
		state.RotationSpeed += input * params.AngularAcceleration * deltaTime
	}
	state.RotationSpeed = clamp(state.RotationSpeed, -params.MaxRotationSpeed, params.MaxRotationSpeed)
}

// NormalizeAngle wraps an angle into [-pi, pi].
func NormalizeAngle(angle float64) float64 {
	return math.Remainder(angle, 2*math.Pi)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(v, hi))
}
