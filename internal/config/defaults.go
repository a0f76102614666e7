package config

import (
	_ "embed"
)

//go:embed defaults/tiltmaze.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when even the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Maze: MazeSettings{
			Rings:       4,
			Slices:      12,
			InnerRadius: 40,
			OuterRadius: 200,
			BallRadius:  6,
		},
		Physics: PhysicsSettings{
			Gravity:       380,
			Friction:      0.995,
			MaxSpeed:      320,
			Restitution:   0.35,
			RotationSpeed: 1.6,
			TickRate:      120,
		},
		Adaptive: AdaptiveSettings{
			Enabled: true,
		},
	}
}
