// Package config provides YAML-based configuration loading and
// difficulty presets for the labyrinth game.
package config

// Config is the full game configuration.
type Config struct {
	Maze     MazeSettings     `yaml:"maze"`
	Physics  PhysicsSettings  `yaml:"physics"`
	Adaptive AdaptiveSettings `yaml:"adaptive"`
}

// MazeSettings defines the labyrinth lattice geometry. Radii are in
// world units; the renderer scales them to the terminal.
type MazeSettings struct {
	Rings       int     `yaml:"rings"`
	Slices      int     `yaml:"slices"`
	InnerRadius float64 `yaml:"inner_radius"`
	OuterRadius float64 `yaml:"outer_radius"`
	BallRadius  float64 `yaml:"ball_radius"`
}

// PhysicsSettings defines the ball simulation constants.
type PhysicsSettings struct {
	Gravity       float64 `yaml:"gravity"`        // acceleration, units/s^2
	Friction      float64 `yaml:"friction"`       // per-tick multiplicative factor
	MaxSpeed      float64 `yaml:"max_speed"`      // velocity clamp, units/s
	Restitution   float64 `yaml:"restitution"`    // bounce energy retention, 0-1
	RotationSpeed float64 `yaml:"rotation_speed"` // labyrinth turn rate, rad/s
	TickRate      float64 `yaml:"tick_rate"`      // physics simulation Hz
}

// AdaptiveSettings controls the difficulty feedback loop.
type AdaptiveSettings struct {
	Enabled bool `yaml:"enabled"`
}
