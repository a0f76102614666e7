// Package game implements the tilt labyrinth: a ball inside a rotating
// circular maze that the player steers by tilting the whole maze. Each
// escape regenerates the labyrinth with parameters tuned to how the
// previous attempt went.
package game

import (
	"math"

	"github.com/mkraev/tiltmaze/internal/adapt"
	"github.com/mkraev/tiltmaze/internal/config"
	"github.com/mkraev/tiltmaze/internal/core"
	"github.com/mkraev/tiltmaze/internal/geom"
	"github.com/mkraev/tiltmaze/internal/maze"
	"github.com/mkraev/tiltmaze/internal/physics"
	"github.com/mkraev/tiltmaze/internal/registry"
	"github.com/mkraev/tiltmaze/internal/rng"
)

// Session state constants
const (
	StatePlaying = "playing" // Ball in play
	StateEscaped = "escaped" // Exit reached, brief banner before the next maze
	StatePaused  = "paused"  // Session paused
)

// configPath stores the custom config path set via CLI
var configPath string

// preset stores the difficulty preset set via CLI
var preset config.Preset = config.PresetNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the starting difficulty preset.
func SetPreset(name string) {
	preset = config.ParsePreset(name)
}

// Game implements the tilt labyrinth game logic.
type Game struct {
	// Current labyrinth
	labyrinth *maze.Maze
	segments  []geom.Segment
	ball      physics.Ball

	// Simulation
	tuning  physics.Tuning
	stepper *physics.Stepper
	clock   physics.Clock
	angle   float64 // maze rotation in radians, CCW positive
	alpha   float64 // residual fraction from the last Advance

	// Adaptive loop
	params   maze.Params
	profile  adapt.Profile
	tracker  *adapt.Tracker
	lastSnap adapt.Snapshot
	adaptive bool

	// Session state
	state      string
	attempt    int
	completed  int
	tickCount  int
	bannerWait int // platform frames left on the escape banner
	lastTilt   int

	// Configuration
	runtime  core.RuntimeConfig
	cfg      config.Config
	baseSeed uint32

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game instance driven by the wall clock.
func New() *Game {
	return &Game{clock: physics.SystemClock{}}
}

// newWithClock is used by tests to drive the simulation deterministically.
func newWithClock(clock physics.Clock) *Game {
	return &Game{clock: clock}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "tiltmaze" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Tilt Maze" }

// Reset initializes or restarts the whole session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = cfg

	g.baseSeed = uint32(runtime.Seed) //#nosec G115 -- seed folding is intentional
	g.tuning = physics.Tuning{
		Gravity:     cfg.Physics.Gravity,
		Friction:    cfg.Physics.Friction,
		MaxSpeed:    cfg.Physics.MaxSpeed,
		Restitution: cfg.Physics.Restitution,
	}
	g.stepper = physics.NewStepper(g.clock, cfg.Physics.TickRate)

	g.params = config.InitialParams(preset)
	g.adaptive = cfg.Adaptive.Enabled && !config.IsFixed(preset)
	g.profile = adapt.Profile{}

	g.minScreenW = 40
	g.minScreenH = 20
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.attempt = 0
	g.completed = 0
	g.tickCount = 0
	g.lastSnap = adapt.Snapshot{}

	g.startAttempt()
}

// mazeConfig builds the generation config for the given attempt.
func (g *Game) mazeConfig(attempt int) maze.Config {
	return maze.Config{
		Rings:       g.cfg.Maze.Rings,
		Slices:      g.cfg.Maze.Slices,
		Seed:        rng.AttemptSeed(g.baseSeed, attempt),
		InnerRadius: g.cfg.Maze.InnerRadius,
		OuterRadius: g.cfg.Maze.OuterRadius,
		BallRadius:  g.cfg.Maze.BallRadius,
	}
}

// startAttempt generates a fresh labyrinth and puts the ball back in
// the center void. On attempts after the first the generation
// parameters come from the adaptive mapper.
func (g *Game) startAttempt() {
	g.attempt++

	if g.adaptive && g.attempt > 1 {
		g.params = adapt.MapProfileToParams(g.profile, g.params)
	}

	cfg := g.mazeConfig(g.attempt)
	g.labyrinth = maze.Generate(cfg, g.params)
	g.params = g.labyrinth.Params
	g.segments = maze.BuildSegments(g.labyrinth)

	g.ball = physics.Ball{Radius: cfg.BallRadius}
	g.tracker = adapt.NewTracker(g.labyrinth.Config)
	g.stepper.Reset()

	g.angle = 0
	g.alpha = 0
	g.lastTilt = 0
	g.bannerWait = 0
	g.state = StatePlaying
}

// Step advances the session by one platform frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
			g.stepper.Reset()
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	if g.state == StateEscaped {
		if g.bannerWait > 0 {
			g.bannerWait--
		}
		if g.bannerWait == 0 {
			g.startAttempt()
		}
		return core.StepResult{State: g.State()}
	}

	tilt := in.Tilt()
	if tilt != 0 {
		if g.lastTilt != 0 && tilt != g.lastTilt {
			g.tracker.RecordDirectionChange()
		}
		g.lastTilt = tilt
	}

	g.alpha = g.stepper.Advance(func(dt float64) {
		g.tick(tilt, dt)
	})

	return core.StepResult{State: g.State()}
}

// tick runs one fixed physics step.
func (g *Game) tick(tilt int, dt float64) {
	if g.state != StatePlaying {
		return
	}
	g.tickCount++

	g.angle += g.cfg.Physics.RotationSpeed * float64(tilt) * dt
	g.angle = wrapAngle(g.angle)

	g.tuning.Integrate(&g.ball, dt, g.angle)

	hits := physics.ResolveCollisions(&g.ball, g.segments, g.tuning.Bounce)
	if hits > 0 {
		g.tracker.RecordCollision(hits)
	}
	g.tracker.RecordTick(g.ball.Pos, g.ball.Speed(), dt)

	// The ball is out once its center clears the outer rim.
	if g.ball.Pos.Len() > g.cfg.Maze.OuterRadius+g.ball.Radius {
		g.finishAttempt()
	}
}

// finishAttempt closes the adaptive loop for an escaped labyrinth.
func (g *Game) finishAttempt() {
	g.completed++
	g.lastSnap = g.tracker.Snapshot()
	g.profile.Update(g.lastSnap)

	g.state = StateEscaped
	g.bannerWait = g.runtime.TickRate
	if g.bannerWait <= 0 {
		g.bannerWait = 60
	}
}

// wrapAngle normalizes an angle into [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Attempt:   g.attempt,
		Completed: g.completed,
		Paused:    g.state == StatePaused,
		GameOver:  false,
	}
}

func init() {
	registry.Register("tiltmaze", func() registry.Game {
		return New()
	})
}
