package config

import "github.com/mkraev/tiltmaze/internal/maze"

// Preset is a named starting difficulty. It seeds the first attempt's
// generation parameters; after that the adaptive controller takes over
// (unless the preset pins adaptation off).
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed" // normal params, adaptation disabled
)

// ParsePreset maps a CLI string to a preset; unknown values fall back
// to normal.
func ParsePreset(s string) Preset {
	switch Preset(s) {
	case PresetEasy, PresetNormal, PresetHard, PresetFixed:
		return Preset(s)
	}
	return PresetNormal
}

// InitialParams returns the generation tunables the first attempt
// starts from.
func InitialParams(p Preset) maze.Params {
	switch p {
	case PresetEasy:
		return maze.Params{
			WallDensity:    0.40,
			Branchiness:    0.10,
			CorridorWidth:  1.20,
			RadialDensity:  0.35,
			DecoyRate:      0.05,
			PathLengthBias: 0.10,
			ExitOffset:     -1,
			ExitWidth:      3,
		}
	case PresetHard:
		return maze.Params{
			WallDensity:    0.80,
			Branchiness:    0.30,
			CorridorWidth:  0.90,
			RadialDensity:  0.70,
			DecoyRate:      0.40,
			PathLengthBias: 0.60,
			ExitOffset:     -1,
			ExitWidth:      1,
		}
	default:
		return maze.DefaultParams()
	}
}

// IsFixed reports whether the preset disables the adaptive loop.
func IsFixed(p Preset) bool {
	return p == PresetFixed
}
