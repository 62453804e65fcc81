package physics

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func testGravityField() GravityField {
	return GravityField{Source: Vector2D{}, Constant: 1.2e8, MinRadius: 70}
}

func TestGravityField_Acceleration(t *testing.T) {
	field := testGravityField()

	tests := []struct {
		name      string
		position  Vector2D
		applied   bool
		magnitude float64
	}{
		{"far_away", Vector2D{X: 1000, Y: 0}, true, 120},
		{"dead_zone_edge", Vector2D{X: 0, Y: 70}, true, 1.2e8 / 4900},
		{"inside_dead_zone", Vector2D{X: 30, Y: 40}, false, 0},
		{"at_source", Vector2D{}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accel, ok := field.Acceleration(tt.position)
			if ok != tt.applied {
				t.Fatalf("Expected applied=%v, got %v", tt.applied, ok)
			}
			if !accel.IsFinite() {
				t.Fatalf("Acceleration is not finite: %v", accel)
			}
			if math.Abs(accel.Length()-tt.magnitude) > 1e-6 {
				t.Errorf("Expected magnitude %f, got %f", tt.magnitude, accel.Length())
			}
			if ok && accel.Normalize().Add(tt.position.Normalize()).Length() > 1e-9 {
				t.Errorf("Acceleration %v does not point at the source", accel)
			}
		})
	}
}

func TestGravityField_Apply_DeadZoneLeavesStateUntouched(t *testing.T) {
	state := &FlightState{
		Position: Vector2D{X: 10, Y: -20},
		Velocity: Vector2D{X: 5, Y: 5},
		MaxSpeed: 150,
	}
	before := *state

	if testGravityField().Apply(state, 1.0/60) {
		t.Error("Expected gravity to be skipped inside the dead-zone")
	}
	if *state != before {
		t.Errorf("Expected state unchanged, got %+v", *state)
	}
}

func TestGravityField_Apply_IntegratesDisplacement(t *testing.T) {
	state := &FlightState{Position: Vector2D{X: 1000, Y: 0}, MaxSpeed: 150}

	if !testGravityField().Apply(state, 0.5) {
		t.Fatal("Expected gravity to be applied")
	}
	// a = 120 towards origin, v = 60, dx = 30
	if !almostEqual(state.Velocity.X, -60) || !almostEqual(state.Velocity.Y, 0) {
		t.Errorf("Expected velocity {-60 0}, got %v", state.Velocity)
	}
	if !almostEqual(state.Position.X, 970) {
		t.Errorf("Expected x 970, got %f", state.Position.X)
	}
}

func TestGravityField_Apply_VelocityNeverExceedsMaxSpeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		field := testGravityField()
		maxSpeed := rapid.Float64Range(1, 500).Draw(t, "maxSpeed")
		state := &FlightState{
			Position: Vector2D{
				X: rapid.Float64Range(-2000, 2000).Draw(t, "x"),
				Y: rapid.Float64Range(-2000, 2000).Draw(t, "y"),
			},
			Velocity: FromAngle(
				rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "heading"),
				rapid.Float64Range(0, maxSpeed).Draw(t, "speed"),
			),
			MaxSpeed: maxSpeed,
		}
		distance := state.Position.Length()
		dt := rapid.Float64Range(1e-4, 0.1).Draw(t, "dt")

		applied := field.Apply(state, dt)
		if applied && distance < field.MinRadius {
			t.Fatalf("gravity applied at distance %f inside dead-zone", distance)
		}
		if !state.Position.IsFinite() || !state.Velocity.IsFinite() {
			t.Fatalf("non-finite state after gravity: %+v", *state)
		}
		if state.Velocity.Length() > maxSpeed+1e-9 {
			t.Fatalf("|v| = %f exceeds max speed %f", state.Velocity.Length(), maxSpeed)
		}
	})
}

func TestFlightAndGravity_DriftTowardsSun(t *testing.T) {
	params := testFlightParams()
	field := testGravityField()
	const dt = 1.0 / 60

	start := Vector2D{X: -400, Y: 200}
	state := &FlightState{
		Position: start,
		Rotation: start.Scale(-1).Angle(),
		MaxSpeed: 150,
	}

	prev := state.Position.Length()
	for i := 0; i < 600; i++ {
		Fly(state, params, dt, FlightInput{})
		field.Apply(state, dt)

		distance := state.Position.Length()
		if !state.Position.IsFinite() || !state.Velocity.IsFinite() {
			t.Fatalf("tick %d: non-finite state %+v", i, *state)
		}
		if distance > prev+epsilon {
			t.Fatalf("tick %d: distance increased from %f to %f", i, prev, distance)
		}
		if state.Velocity.Length() > state.MaxSpeed+epsilon {
			t.Fatalf("tick %d: |v| = %f exceeds %f", i, state.Velocity.Length(), state.MaxSpeed)
		}
		prev = distance
	}

	if prev >= start.Length()-1 {
		t.Errorf("Expected measurable drift towards the sun, distance %f -> %f", start.Length(), prev)
	}
}
