// pkg/config/env.go
package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnvironmentOverrides
const (
	EnvHalfWidth       = "SPACEWARS_HALF_WIDTH"
	EnvHalfHeight      = "SPACEWARS_HALF_HEIGHT"
	EnvGravity         = "SPACEWARS_GRAVITY"
	EnvProjectileSpeed = "SPACEWARS_PROJECTILE_SPEED"
	EnvFireMode        = "SPACEWARS_FIRE_MODE"
	EnvDualRotate      = "SPACEWARS_DUAL_ROTATE"
	EnvTickRate        = "SPACEWARS_TICK_RATE"
	EnvWrapProjectiles = "SPACEWARS_WRAP_PROJECTILES"
	EnvLifetime        = "SPACEWARS_PROJECTILE_LIFETIME"
)

// ApplyEnvironmentOverrides replaces config values with any SPACEWARS_*
// variables that are set. Unparseable values are ignored. The result is
// validated.
func ApplyEnvironmentOverrides(config *MatchConfig) error {
	config.Bounds.HalfWidth = getEnvAsFloatOrDefault(EnvHalfWidth, config.Bounds.HalfWidth)
	config.Bounds.HalfHeight = getEnvAsFloatOrDefault(EnvHalfHeight, config.Bounds.HalfHeight)
	config.Physics.Gravity = getEnvAsFloatOrDefault(EnvGravity, config.Physics.Gravity)
	config.Weapon.ProjectileSpeed = getEnvAsFloatOrDefault(EnvProjectileSpeed, config.Weapon.ProjectileSpeed)
	config.Weapon.FireMode = strings.ToLower(getEnvOrDefault(EnvFireMode, config.Weapon.FireMode))
	config.Weapon.WrapProjectiles = getEnvAsBoolOrDefault(EnvWrapProjectiles, config.Weapon.WrapProjectiles)
	config.Weapon.ProjectileLifetime = getEnvAsFloatOrDefault(EnvLifetime, config.Weapon.ProjectileLifetime)
	config.Physics.DualRotate = strings.ToLower(getEnvOrDefault(EnvDualRotate, config.Physics.DualRotate))
	config.Rules.TickRate = getEnvAsIntOrDefault(EnvTickRate, config.Rules.TickRate)

	return config.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
