// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-spacewars/pkg/input"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// Fire modes
const (
	FireModePress = "press" // one shot per key press
	FireModeHeld  = "held"  // fire whenever the cooldown allows while held
)

var (
	// ErrTooFewPlayers is returned when a match is configured with fewer than two rockets.
	ErrTooFewPlayers = errors.New("at least two players are required")
	// ErrOverlappingBindings is returned when two players share a key.
	ErrOverlappingBindings = errors.New("players share key bindings")
	// ErrUnboundedProjectiles is returned when wrapped projectiles have no lifetime.
	ErrUnboundedProjectiles = errors.New("wrapped projectiles need a lifetime")
)

// MatchConfig contains configuration for a spacewars match
type MatchConfig struct {
	Bounds    BoundsConfig    `json:"bounds" yaml:"bounds"`
	Sun       SunConfig       `json:"sun" yaml:"sun"`
	Players   []PlayerConfig  `json:"players" yaml:"players"`
	Physics   PhysicsConfig   `json:"physics" yaml:"physics"`
	Weapon    WeaponConfig    `json:"weapon" yaml:"weapon"`
	Collision CollisionConfig `json:"collision" yaml:"collision"`
	Rules     GameRules       `json:"rules" yaml:"rules"`
}

// BoundsConfig holds the playfield half-extents
type BoundsConfig struct {
	HalfWidth  float64 `json:"halfWidth" yaml:"halfWidth"`
	HalfHeight float64 `json:"halfHeight" yaml:"halfHeight"`
}

// SunConfig places the sun
type SunConfig struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// PlayerConfig contains configuration for one player's rocket
type PlayerConfig struct {
	ID   string  `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	// HeadingDeg is the spawn heading. When unset the rocket faces the sun.
	HeadingDeg      *float64       `json:"headingDeg,omitempty" yaml:"headingDeg,omitempty"`
	MaxSpeed        float64        `json:"maxSpeed" yaml:"maxSpeed"`
	CollisionRadius float64        `json:"collisionRadius" yaml:"collisionRadius"`
	CooldownMs      int            `json:"cooldownMs" yaml:"cooldownMs"`
	Controls        input.Controls `json:"controls" yaml:"controls"`
}

// PhysicsConfig contains flight and gravity tuning. Angles are in degrees.
type PhysicsConfig struct {
	ThrustAcceleration     float64 `json:"thrustAcceleration" yaml:"thrustAcceleration"`
	AngularAccelerationDeg float64 `json:"angularAccelerationDeg" yaml:"angularAccelerationDeg"`
	MaxRotationSpeedDeg    float64 `json:"maxRotationSpeedDeg" yaml:"maxRotationSpeedDeg"`
	DualRotate             string  `json:"dualRotate" yaml:"dualRotate"`
	ForcedRotationSpeedDeg float64 `json:"forcedRotationSpeedDeg" yaml:"forcedRotationSpeedDeg"`
	Gravity                float64 `json:"gravity" yaml:"gravity"`
	MinGravityRadius       float64 `json:"minGravityRadius" yaml:"minGravityRadius"`
}

// WeaponConfig contains projectile settings shared by all rockets
type WeaponConfig struct {
	ProjectileSpeed float64 `json:"projectileSpeed" yaml:"projectileSpeed"`
	SpawnOffset     float64 `json:"spawnOffset" yaml:"spawnOffset"`
	RetireMargin    float64 `json:"retireMargin" yaml:"retireMargin"`
	FireMode        string  `json:"fireMode" yaml:"fireMode"`
	WrapProjectiles bool    `json:"wrapProjectiles" yaml:"wrapProjectiles"`
	// ProjectileLifetime is the flight time in seconds before a projectile
	// is retired. Zero means projectiles only retire off the playfield, which
	// is not allowed together with WrapProjectiles.
	ProjectileLifetime float64 `json:"projectileLifetime" yaml:"projectileLifetime"`
}

// CollisionConfig contains the collision tolerances
type CollisionConfig struct {
	SunMargin    float64 `json:"sunMargin" yaml:"sunMargin"`
	RocketMargin float64 `json:"rocketMargin" yaml:"rocketMargin"`
	HitRadius    float64 `json:"hitRadius" yaml:"hitRadius"`
}

// GameRules contains match pacing configuration
type GameRules struct {
	TickRate    int     `json:"tickRate" yaml:"tickRate"`
	MinDelta    float64 `json:"minDelta" yaml:"minDelta"`
	MaxDelta    float64 `json:"maxDelta" yaml:"maxDelta"`
	RoundsToWin int     `json:"roundsToWin" yaml:"roundsToWin"`
}

// LoadConfig loads a configuration from a JSON or YAML file. Values absent
// from the file keep their defaults.
func LoadConfig(path string) (*MatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig saves a configuration, as YAML when path ends in .yaml or .yml
// and as indented JSON otherwise.
func SaveConfig(config *MatchConfig, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// DefaultConfig returns the classic two-player duel
func DefaultConfig() *MatchConfig {
	return &MatchConfig{
		Bounds: BoundsConfig{HalfWidth: 510, HalfHeight: 380},
		Sun:    SunConfig{X: 0, Y: 0, Radius: 50},
		Players: []PlayerConfig{
			{
				ID:              "p1",
				Name:            "Player 1",
				X:               -400,
				Y:               200,
				MaxSpeed:        150,
				CollisionRadius: 50,
				CooldownMs:      500,
				Controls:        input.Controls{RotateLeft: "A", RotateRight: "D", Accelerate: "S", Fire: "W"},
			},
			{
				ID:              "p2",
				Name:            "Player 2",
				X:               400,
				Y:               -200,
				MaxSpeed:        150,
				CollisionRadius: 50,
				CooldownMs:      300,
				Controls:        input.Controls{RotateLeft: "J", RotateRight: "L", Accelerate: "K", Fire: "I"},
			},
		},
		Physics: PhysicsConfig{
			ThrustAcceleration:     50,
			AngularAccelerationDeg: 50,
			MaxRotationSpeedDeg:    70,
			DualRotate:             physics.DualRotateCancel.String(),
			ForcedRotationSpeedDeg: 0,
			Gravity:                1.2e8,
			MinGravityRadius:       70,
		},
		Weapon: WeaponConfig{
			ProjectileSpeed: 300,
			SpawnOffset:     50,
			RetireMargin:    130,
			FireMode:        FireModePress,
			WrapProjectiles: false,
		},
		Collision: CollisionConfig{
			SunMargin:    20,
			RocketMargin: 10,
			HitRadius:    30,
		},
		Rules: GameRules{
			TickRate:    60,
			MinDelta:    1e-6,
			MaxDelta:    0.1,
			RoundsToWin: 3,
		},
	}
}

// ValidationError reports an invalid configuration field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func positive(field string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Message: fmt.Sprintf("must be positive, got %v", v)}
	}
	return nil
}

// Validate checks the configuration for values the simulation cannot run with.
func (c *MatchConfig) Validate() error {
	if len(c.Players) < 2 {
		return fmt.Errorf("%d players configured: %w", len(c.Players), ErrTooFewPlayers)
	}

	checks := []error{
		positive("bounds.halfWidth", c.Bounds.HalfWidth),
		positive("bounds.halfHeight", c.Bounds.HalfHeight),
		positive("sun.radius", c.Sun.Radius),
		positive("physics.thrustAcceleration", c.Physics.ThrustAcceleration),
		positive("physics.maxRotationSpeedDeg", c.Physics.MaxRotationSpeedDeg),
		positive("weapon.projectileSpeed", c.Weapon.ProjectileSpeed),
		positive("collision.hitRadius", c.Collision.HitRadius),
		positive("rules.maxDelta", c.Rules.MaxDelta),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	if c.Physics.Gravity < 0 || c.Physics.MinGravityRadius < 0 {
		return &ValidationError{Field: "physics.gravity", Message: "gravity and dead-zone must not be negative"}
	}
	if c.Rules.TickRate <= 0 {
		return &ValidationError{Field: "rules.tickRate", Message: fmt.Sprintf("must be positive, got %d", c.Rules.TickRate)}
	}
	if c.Rules.MinDelta <= 0 || c.Rules.MinDelta > c.Rules.MaxDelta {
		return &ValidationError{Field: "rules.minDelta", Message: "must be positive and not above maxDelta"}
	}
	if c.Weapon.ProjectileLifetime < 0 || math.IsNaN(c.Weapon.ProjectileLifetime) || math.IsInf(c.Weapon.ProjectileLifetime, 0) {
		return &ValidationError{Field: "weapon.projectileLifetime", Message: fmt.Sprintf("must be zero or positive, got %v", c.Weapon.ProjectileLifetime)}
	}
	if c.Weapon.WrapProjectiles && c.Weapon.ProjectileLifetime == 0 {
		return fmt.Errorf("weapon.wrapProjectiles: %w", ErrUnboundedProjectiles)
	}
	switch c.Weapon.FireMode {
	case FireModePress, FireModeHeld:
	default:
		return &ValidationError{Field: "weapon.fireMode", Message: fmt.Sprintf("unknown mode %q", c.Weapon.FireMode)}
	}
	switch c.Physics.DualRotate {
	case physics.DualRotateCancel.String(), physics.DualRotateForced.String():
	default:
		return &ValidationError{Field: "physics.dualRotate", Message: fmt.Sprintf("unknown policy %q", c.Physics.DualRotate)}
	}

	ids := make(map[string]bool, len(c.Players))
	for i, p := range c.Players {
		field := fmt.Sprintf("players[%d]", i)
		if p.ID == "" || ids[p.ID] {
			return &ValidationError{Field: field + ".id", Message: fmt.Sprintf("missing or duplicate id %q", p.ID)}
		}
		ids[p.ID] = true
		if err := positive(field+".maxSpeed", p.MaxSpeed); err != nil {
			return err
		}
		if err := positive(field+".collisionRadius", p.CollisionRadius); err != nil {
			return err
		}
		if p.CooldownMs < 0 {
			return &ValidationError{Field: field + ".cooldownMs", Message: "must not be negative"}
		}
		if err := p.Controls.Validate(); err != nil {
			return fmt.Errorf("%s.controls: %w", field, err)
		}
		for _, other := range c.Players[:i] {
			if shared := p.Controls.Overlap(other.Controls); len(shared) > 0 {
				return fmt.Errorf("%s and %s both bind %v: %w", other.ID, p.ID, shared, ErrOverlappingBindings)
			}
		}
	}

	return nil
}

// PlayfieldBounds returns the playfield as physics bounds
func (c *MatchConfig) PlayfieldBounds() physics.Bounds {
	return physics.Bounds{HalfWidth: c.Bounds.HalfWidth, HalfHeight: c.Bounds.HalfHeight}
}

// SunPosition returns the sun's centre
func (c *MatchConfig) SunPosition() physics.Vector2D {
	return physics.Vector2D{X: c.Sun.X, Y: c.Sun.Y}
}

// GravityField returns the sun's gravity well
func (c *MatchConfig) GravityField() physics.GravityField {
	return physics.GravityField{
		Source:    c.SunPosition(),
		Constant:  c.Physics.Gravity,
		MinRadius: c.Physics.MinGravityRadius,
	}
}

// FlightParams converts the physics section to radians
func (c *MatchConfig) FlightParams() physics.FlightParams {
	return physics.FlightParams{
		ThrustAcceleration:  c.Physics.ThrustAcceleration,
		AngularAcceleration: degToRad(c.Physics.AngularAccelerationDeg),
		MaxRotationSpeed:    degToRad(c.Physics.MaxRotationSpeedDeg),
		DualRotate:          physics.DualRotatePolicyFromString(c.Physics.DualRotate),
		ForcedRotationSpeed: degToRad(c.Physics.ForcedRotationSpeedDeg),
	}
}

// Position returns the spawn point
func (p PlayerConfig) Position() physics.Vector2D {
	return physics.Vector2D{X: p.X, Y: p.Y}
}

// Heading returns the spawn heading in radians. Without an explicit heading
// the rocket points at target.
func (p PlayerConfig) Heading(target physics.Vector2D) float64 {
	if p.HeadingDeg != nil {
		return degToRad(*p.HeadingDeg)
	}
	return target.Sub(p.Position()).Angle()
}

// Cooldown returns the weapon cooldown
func (p PlayerConfig) Cooldown() time.Duration {
	return time.Duration(p.CooldownMs) * time.Millisecond
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
