// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so the platform can
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mkraev/tiltmaze/internal/core"
)

// Game is the interface the platform drives. Implementations contain
// pure logic with no terminal dependencies; the platform handles input
// mapping, timing and display.
type Game interface {
	// ID returns the unique identifier used by CLI commands.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the session.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one platform frame using the polled
	// input snapshot.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the pre-cleared buffer.
	Render(dst *core.Screen)

	// State returns the current session state.
	State() core.GameState
}

// Info is metadata about a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory, typically from an init() function.
// Panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(factories))
	for id := range factories {
		out = append(out, Info{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
