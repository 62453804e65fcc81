package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
)

// ArenaPreset is a named arena layout applied on top of a configuration.
type ArenaPreset struct {
	Name        string
	Description string
	Bounds      BoundsConfig
	Sun         SunConfig
	Gravity     float64
	// Spawns holds one spawn point per player, in player order.
	Spawns [][2]float64
}

var arenaPresets = map[string]*ArenaPreset{
	"classic": {
		Name:        "Classic",
		Description: "The original 1020x760 field with a strong central sun",
		Bounds:      BoundsConfig{HalfWidth: 510, HalfHeight: 380},
		Sun:         SunConfig{Radius: 50},
		Gravity:     1.2e8,
		Spawns:      [][2]float64{{-400, 200}, {400, -200}},
	},
	"widescreen": {
		Name:        "Widescreen",
		Description: "A 16:9 field with more room to orbit",
		Bounds:      BoundsConfig{HalfWidth: 800, HalfHeight: 450},
		Sun:         SunConfig{Radius: 60},
		Gravity:     1.5e8,
		Spawns:      [][2]float64{{-650, 250}, {650, -250}},
	},
	"low_gravity": {
		Name:        "Low Gravity",
		Description: "Classic field with a weak sun, for dogfighting",
		Bounds:      BoundsConfig{HalfWidth: 510, HalfHeight: 380},
		Sun:         SunConfig{Radius: 30},
		Gravity:     3e7,
		Spawns:      [][2]float64{{-400, 200}, {400, -200}},
	},
}

// GetArenaPreset returns the named preset, or nil if it does not exist.
func GetArenaPreset(name string) *ArenaPreset {
	return arenaPresets[name]
}

// ListArenaPresets returns the names of all presets in sorted order.
func ListArenaPresets() []string {
	names := make([]string, 0, len(arenaPresets))
	for name := range arenaPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyArenaPreset overwrites the arena and spawn points of config.
// Players beyond the preset's spawn list keep their positions.
func ApplyArenaPreset(config *MatchConfig, name string) error {
	preset := GetArenaPreset(name)
	if preset == nil {
		return fmt.Errorf("unknown arena preset %q", name)
	}

	config.Bounds = preset.Bounds
	config.Sun = preset.Sun
	config.Physics.Gravity = preset.Gravity
	for i := range config.Players {
		if i >= len(preset.Spawns) {
			break
		}
		config.Players[i].X = preset.Spawns[i][0]
		config.Players[i].Y = preset.Spawns[i][1]
	}
	return nil
}

// LoadConfigWithPreset loads path, falling back to DefaultConfig when the
// file does not exist, and applies the preset when one is named.
func LoadConfigWithPreset(path, preset string) (*MatchConfig, error) {
	config, err := LoadConfig(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		config = DefaultConfig()
	}

	if preset != "" {
		if err := ApplyArenaPreset(config, preset); err != nil {
			return nil, err
		}
	}
	return config, nil
}
